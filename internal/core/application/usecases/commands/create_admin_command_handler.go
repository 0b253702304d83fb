package commands

import (
	"context"
	"fmt"

	"clinic/internal/core/application/apperrors"
	"clinic/internal/core/domain/model/admin"
	"clinic/internal/core/ports"
)

// CreateAdminCommandHandler hashes the password and stores a new admin.
type CreateAdminCommandHandler struct {
	uowFactory AdminUoWFactory
	hasher     ports.PasswordHasher
}

// NewCreateAdminCommandHandler creates a handler for admin provisioning.
func NewCreateAdminCommandHandler(uowFactory AdminUoWFactory, hasher ports.PasswordHasher) CreateAdminCommandHandler {
	return CreateAdminCommandHandler{uowFactory: uowFactory, hasher: hasher}
}

// Handle stores the admin and returns its identifier. A taken e-mail fails with Constraint.
func (h CreateAdminCommandHandler) Handle(ctx context.Context, command CreateAdminCommand) (int32, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	hash, err := h.hasher.Hash(command.Password())
	if err != nil {
		return 0, apperrors.Unexpected(err.Error()).WithCause(err)
	}

	a, err := admin.NewAdmin(command.Name(), command.Email(), hash)
	if err != nil {
		return 0, apperrors.FromEntity(err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, apperrors.FromRepository(err, "")
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taken := fmt.Sprintf("There's already an admin registered with the email: %s", command.Email())

	id, err := uow.AdminRepository().Save(ctx, a)
	if err != nil {
		return 0, apperrors.FromRepository(err, taken)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, apperrors.FromRepository(err, taken)
	}

	return id, nil
}
