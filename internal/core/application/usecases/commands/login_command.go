package commands

import (
	"errors"
	"strings"

	"clinic/internal/pkg/errs"
	"clinic/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand carries admin credentials.
type LoginCommand struct {
	email    string
	password string
	guard    guard.ConstructorGuard
}

// NewLoginCommand creates a login command. Both fields are required.
func NewLoginCommand(email, password string) (LoginCommand, error) {
	email = strings.TrimSpace(email)

	var emailErr, passwordErr error
	if email == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(emailErr, passwordErr); err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{email: email, password: password, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Email() string    { return c.email }
func (c LoginCommand) Password() string { return c.password }
