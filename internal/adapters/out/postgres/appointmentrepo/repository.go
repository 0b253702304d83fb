package appointmentrepo

import (
	"context"
	"errors"
	"time"

	"clinic/internal/core/domain/model/appointment"
	"clinic/internal/pkg/errs"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAppointmentRepository implements ports.AppointmentRepository using GORM.
type GormAppointmentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormAppointmentRepository creates an appointment repository on db, which may be a transaction.
func NewGormAppointmentRepository(db *gorm.DB, logger *zap.Logger) *GormAppointmentRepository {
	return &GormAppointmentRepository{
		db:     db,
		logger: logger.With(zap.String("component", "appointmentrepo")),
	}
}

// ExistsActiveByPatientAndTime reports whether a non-canceled appointment occupies the slot.
func (r *GormAppointmentRepository) ExistsActiveByPatientAndTime(
	ctx context.Context,
	patientID int32,
	at time.Time,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AppointmentDTO{}).
		Where("patient_id = ? AND appointment_at = ? AND canceled = ?", patientID, appointment.Naive(at), false).
		Count(&count).Error
	if err != nil {
		r.logger.Error("checking appointment slot",
			zap.Int32("patient_id", patientID), zap.Time("at", at), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// Save inserts a new appointment and returns it with the assigned identifier.
// A violation of uniq_active_appointment_slot is reported as ObjectAlreadyExists.
func (r *GormAppointmentRepository) Save(
	ctx context.Context,
	a *appointment.Appointment,
) (*appointment.Appointment, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(a)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewObjectAlreadyExistsErrorWithCause("appointment slot", dto.AppointmentAt, err)
		}
		r.logger.Error("inserting appointment",
			zap.Int32("patient_id", dto.PatientID), zap.Time("at", dto.AppointmentAt), zap.Error(err))
		return nil, err
	}

	return toDomain(dto)
}

// FindActiveByPatientAndTime returns the active appointment in the slot, or the most
// recently canceled one when the slot holds no active appointment.
func (r *GormAppointmentRepository) FindActiveByPatientAndTime(
	ctx context.Context,
	patientID int32,
	at time.Time,
) (*appointment.Appointment, error) {
	var dto AppointmentDTO
	err := r.db.WithContext(ctx).
		Where("patient_id = ? AND appointment_at = ?", patientID, appointment.Naive(at)).
		Order("canceled ASC").
		Order("id DESC").
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("appointment slot", appointment.FormatTimestamp(at))
		}
		r.logger.Error("finding appointment",
			zap.Int32("patient_id", patientID), zap.Time("at", at), zap.Error(err))
		return nil, err
	}

	return toDomain(dto)
}

// Update writes the cancellation state of an existing appointment.
func (r *GormAppointmentRepository) Update(
	ctx context.Context,
	a *appointment.Appointment,
) (*appointment.Appointment, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if !a.ID().IsExisting() {
		return nil, errs.NewObjectNotFoundError("id", a.ID().String())
	}

	dto := fromDomain(a)
	result := r.db.WithContext(ctx).
		Model(&AppointmentDTO{}).
		Where("id = ?", dto.ID).
		Select("specialty", "notes", "canceled", "canceled_at", "cancellation_reason").
		Updates(&dto)
	if result.Error != nil {
		r.logger.Error("updating appointment", zap.Int32("id", dto.ID), zap.Error(result.Error))
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("id", dto.ID)
	}

	return toDomain(dto)
}

// FindByPatientID returns all appointments of the patient in insertion order.
func (r *GormAppointmentRepository) FindByPatientID(
	ctx context.Context,
	patientID int32,
) ([]*appointment.Appointment, error) {
	var dtos []AppointmentDTO
	if err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).Order("id").Find(&dtos).Error; err != nil {
		r.logger.Error("listing appointments", zap.Int32("patient_id", patientID), zap.Error(err))
		return nil, err
	}

	return toDomainList(dtos)
}

// FindActiveBetween returns non-canceled appointments with from <= appointment_at < to.
func (r *GormAppointmentRepository) FindActiveBetween(
	ctx context.Context,
	from, to time.Time,
) ([]*appointment.Appointment, error) {
	var dtos []AppointmentDTO
	err := r.db.WithContext(ctx).
		Where("canceled = ? AND appointment_at >= ? AND appointment_at < ?",
			false, appointment.Naive(from), appointment.Naive(to)).
		Order("appointment_at").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		r.logger.Error("listing upcoming appointments", zap.Time("from", from), zap.Time("to", to), zap.Error(err))
		return nil, err
	}

	return toDomainList(dtos)
}
