package ports

import (
	"context"

	"clinic/internal/core/domain/model/admin"
)

// AdminRepository defines the persistence contract for operator accounts.
type AdminRepository interface {
	// FindByEmail returns the admin with the given e-mail or an error matching errs.ErrObjectNotFound.
	FindByEmail(ctx context.Context, email string) (*admin.Admin, error)

	// Save stores a new admin and returns its identifier.
	// A duplicate e-mail fails with an error matching errs.ErrObjectAlreadyExists.
	Save(ctx context.Context, a *admin.Admin) (int32, error)
}
