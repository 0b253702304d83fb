package commands

import (
	"errors"
	"strings"

	"clinic/internal/pkg/errs"
	"clinic/internal/pkg/guard"
)

var ErrCreateAdminCommandIsNotConstructed = errors.New(
	"CreateAdminCommand must be created via NewCreateAdminCommand constructor",
)

// Password length bounds for new admins. bcrypt ignores bytes past the 72nd.
const (
	minPasswordLength = 8
	maxPasswordLength = 72
)

// CreateAdminCommand provisions an operator account.
type CreateAdminCommand struct {
	name     string
	email    string
	password string
	guard    guard.ConstructorGuard
}

// NewCreateAdminCommand creates the command. E-mail is required and the password
// must have between 8 and 72 bytes.
func NewCreateAdminCommand(name, email, password string) (CreateAdminCommand, error) {
	email = strings.TrimSpace(email)

	var emailErr, passwordErr error
	if email == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		passwordErr = errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, maxPasswordLength)
	}
	if err := errors.Join(emailErr, passwordErr); err != nil {
		return CreateAdminCommand{}, err
	}

	return CreateAdminCommand{
		name:     strings.TrimSpace(name),
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAdminCommand) Validate() error {
	return c.guard.Validate(ErrCreateAdminCommandIsNotConstructed)
}

func (c CreateAdminCommand) Name() string     { return c.name }
func (c CreateAdminCommand) Email() string    { return c.email }
func (c CreateAdminCommand) Password() string { return c.password }
