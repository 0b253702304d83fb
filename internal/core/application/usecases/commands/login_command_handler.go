package commands

import (
	"context"
	"errors"
	"fmt"

	"clinic/internal/core/application/apperrors"
	"clinic/internal/core/ports"
	"clinic/internal/pkg/errs"
)

// LoginCommandHandler authenticates an admin and issues a bearer token.
//
// Failures:
//   - unknown e-mail: NotFound
//   - wrong password: LoginFailed
//   - token signing failure: LoginFailed
//   - storage failure: Unexpected
type LoginCommandHandler struct {
	admins ports.AdminRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
}

// NewLoginCommandHandler creates a login handler.
func NewLoginCommandHandler(
	admins ports.AdminRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
) LoginCommandHandler {
	return LoginCommandHandler{admins: admins, hasher: hasher, tokens: tokens}
}

// Handle verifies the credentials and returns a signed token.
func (h LoginCommandHandler) Handle(ctx context.Context, command LoginCommand) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}

	a, err := h.admins.FindByEmail(ctx, command.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", apperrors.NotFound(
			fmt.Sprintf("An admin with the following email was not found: %s", command.Email()))
	}
	if err != nil {
		return "", apperrors.FromRepository(err, "")
	}

	ok, err := h.hasher.Verify(command.Password(), a.PasswordHash())
	if err != nil || !ok {
		return "", apperrors.LoginFailed(
			fmt.Sprintf("The provided credentials are invalid: %s", a.Email())).WithCause(err)
	}

	token, err := h.tokens.Issue(a.Email())
	if err != nil {
		return "", apperrors.LoginFailed(
			fmt.Sprintf("Could not generate JWT token for admin %s", a.Email())).WithCause(err)
	}

	return token, nil
}
