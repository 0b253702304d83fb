package adminrepo

import (
	"context"
	"errors"

	"clinic/internal/core/domain/model/admin"
	"clinic/internal/pkg/errs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormAdminRepository implements ports.AdminRepository using GORM.
type GormAdminRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormAdminRepository creates an admin repository on db, which may be a transaction.
func NewGormAdminRepository(db *gorm.DB, logger *zap.Logger) *GormAdminRepository {
	return &GormAdminRepository{
		db:     db,
		logger: logger.With(zap.String("component", "adminrepo")),
	}
}

// FindByEmail retrieves an admin by e-mail.
func (r *GormAdminRepository) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	var dto AdminDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		r.logger.Error("finding admin", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	return toDomain(dto)
}

// Save inserts a new admin and returns the assigned identifier.
func (r *GormAdminRepository) Save(ctx context.Context, a *admin.Admin) (int32, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(a)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errs.NewObjectAlreadyExistsErrorWithCause("email", a.Email(), err)
		}
		r.logger.Error("inserting admin", zap.String("email", a.Email()), zap.Error(err))
		return 0, err
	}

	return dto.ID, nil
}
