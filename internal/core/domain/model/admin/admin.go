// Package admin contains the Admin entity: the clinic operator allowed to
// manage patients and appointments through the API.
package admin

import (
	"errors"
	"strings"

	"clinic/internal/core/domain/model/kernel"
	"clinic/internal/pkg/errs"
)

// ErrAdminIsNotConstructed is returned when an Admin was not built by NewAdmin or RestoreAdmin.
var ErrAdminIsNotConstructed = errors.New("Admin must be created via NewAdmin or RestoreAdmin")

// Admin is an operator account. It stores only the password hash.
type Admin struct {
	id            kernel.ID
	name          string
	email         string
	passwordHash  string
	isConstructed bool
}

// NewAdmin builds an admin that has not been persisted yet.
// The e-mail and the password hash are required; the name is informational.
func NewAdmin(name, email, passwordHash string) (*Admin, error) {
	a := &Admin{id: kernel.NewID(), name: strings.TrimSpace(name), isConstructed: true}
	if err := errors.Join(a.setEmail(email), a.setPasswordHash(passwordHash)); err != nil {
		return nil, err
	}
	return a, nil
}

// RestoreAdmin rebuilds a persisted admin.
func RestoreAdmin(id int32, name, email, passwordHash string) (*Admin, error) {
	a := &Admin{name: name, isConstructed: true}
	existing, idErr := kernel.ExistingID(id)
	if err := errors.Join(idErr, a.setEmail(email), a.setPasswordHash(passwordHash)); err != nil {
		return nil, err
	}
	a.id = existing
	return a, nil
}

// Validate ensures the admin was built through one of the constructors.
func (a *Admin) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAdminIsNotConstructed
	}
	return nil
}

func (a *Admin) ID() kernel.ID        { return a.id }
func (a *Admin) Name() string         { return a.name }
func (a *Admin) Email() string        { return a.email }
func (a *Admin) PasswordHash() string { return a.passwordHash }

func (a *Admin) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	a.email = email
	return nil
}

func (a *Admin) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	a.passwordHash = hash
	return nil
}
