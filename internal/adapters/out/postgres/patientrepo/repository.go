package patientrepo

import (
	"context"
	"errors"

	"clinic/internal/core/domain/model/patient"
	"clinic/internal/pkg/errs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormPatientRepository implements ports.PatientRepository using GORM.
// Storage failures are logged here and returned unchanged; uniqueness and
// foreign-key violations are reported through the errs package.
type GormPatientRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormPatientRepository creates a patient repository on db, which may be a transaction.
func NewGormPatientRepository(db *gorm.DB, logger *zap.Logger) *GormPatientRepository {
	return &GormPatientRepository{
		db:     db,
		logger: logger.With(zap.String("component", "patientrepo")),
	}
}

// ExistsByCPF reports whether a patient with the CPF is stored.
func (r *GormPatientRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&PatientDTO{}).Where("cpf = ?", cpf).Count(&count).Error
	if err != nil {
		r.logger.Error("checking patient cpf", zap.String("cpf", cpf), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// Save inserts a new patient and returns the assigned identifier.
func (r *GormPatientRepository) Save(ctx context.Context, p *patient.Patient) (int32, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(p)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errs.NewObjectAlreadyExistsErrorWithCause("cpf", p.CPF(), err)
		}
		r.logger.Error("inserting patient", zap.String("cpf", p.CPF()), zap.Error(err))
		return 0, err
	}

	return dto.ID, nil
}

// FindByID retrieves a patient by identifier.
func (r *GormPatientRepository) FindByID(ctx context.Context, id int32) (*patient.Patient, error) {
	var dto PatientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("id", id)
		}
		r.logger.Error("finding patient by id", zap.Int32("id", id), zap.Error(err))
		return nil, err
	}

	return toDomain(dto)
}

// FindByCPF retrieves a patient by CPF.
func (r *GormPatientRepository) FindByCPF(ctx context.Context, cpf string) (*patient.Patient, error) {
	var dto PatientDTO
	if err := r.db.WithContext(ctx).First(&dto, "cpf = ?", cpf).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cpf", cpf)
		}
		r.logger.Error("finding patient by cpf", zap.String("cpf", cpf), zap.Error(err))
		return nil, err
	}

	return toDomain(dto)
}

// Update writes the name of an existing patient.
func (r *GormPatientRepository) Update(ctx context.Context, p *patient.Patient) (*patient.Patient, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !p.ID().IsExisting() {
		return nil, errs.NewObjectNotFoundError("id", p.ID().String())
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).Model(&PatientDTO{}).Where("id = ?", dto.ID).Update("name", dto.Name)
	if result.Error != nil {
		r.logger.Error("updating patient", zap.Int32("id", dto.ID), zap.Error(result.Error))
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("id", dto.ID)
	}

	return p, nil
}

// DeleteByCPF removes the patient with the CPF. A patient referenced by appointments
// is kept and reported as an ObjectAlreadyExists error on the appointments relation.
func (r *GormPatientRepository) DeleteByCPF(ctx context.Context, cpf string) error {
	err := r.db.WithContext(ctx).Where("cpf = ?", cpf).Delete(&PatientDTO{}).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewObjectAlreadyExistsErrorWithCause("appointments", cpf, err)
	}

	r.logger.Error("deleting patient", zap.String("cpf", cpf), zap.Error(err))
	return err
}
