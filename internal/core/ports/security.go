package ports

// PasswordHasher hashes and verifies admin passwords.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A mismatch is not an error.
	Verify(password, hash string) (bool, error)
}

// TokenService issues and validates bearer tokens for authenticated admins.
type TokenService interface {
	// Issue returns a signed token whose subject is the admin e-mail.
	Issue(email string) (string, error)

	// Subject validates token and returns the admin e-mail it was issued for.
	Subject(token string) (string, error)
}
