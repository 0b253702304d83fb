// Package appointmentrepo persists appointments with GORM.
//
// The appointments table carries two storage rules the booking workflow relies on:
//   - a partial unique index on (patient_id, appointment_at) over non-canceled rows,
//     so at most one active appointment exists per patient and time;
//   - a foreign key to patients with ON DELETE RESTRICT, so a patient with
//     appointments cannot be deleted.
package appointmentrepo

import (
	"time"

	"clinic/internal/adapters/out/postgres/patientrepo"
	"clinic/internal/core/domain/model/appointment"
)

// AppointmentDTO is the row of the appointments table.
// AppointmentAt and CanceledAt are naive timestamps holding UTC wall-clock values.
type AppointmentDTO struct {
	ID                 int32      `gorm:"primaryKey;autoIncrement"`
	PatientID          int32      `gorm:"not null;index;uniqueIndex:uniq_active_appointment_slot,priority:1,where:canceled = false"`
	AppointmentAt      time.Time  `gorm:"type:timestamp;not null;uniqueIndex:uniq_active_appointment_slot,priority:2,where:canceled = false"`
	Specialty          string     `gorm:"type:varchar(255);not null"`
	Notes              *string    `gorm:"type:text"`
	Canceled           bool       `gorm:"not null;default:false;index"`
	CanceledAt         *time.Time `gorm:"type:timestamp"`
	CancellationReason *string    `gorm:"type:text"`

	Patient *patientrepo.PatientDTO `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName overrides GORM's default naming.
func (AppointmentDTO) TableName() string {
	return "appointments"
}

func fromDomain(a *appointment.Appointment) AppointmentDTO {
	id, _ := a.ID().Value()
	return AppointmentDTO{
		ID:                 id,
		PatientID:          a.PatientID(),
		AppointmentAt:      a.AppointmentAt(),
		Specialty:          a.Specialty(),
		Notes:              a.Notes(),
		Canceled:           a.IsCanceled(),
		CanceledAt:         a.CanceledAt(),
		CancellationReason: a.CancellationReason(),
	}
}

// toDomain rebuilds the entity. A canceled row without a reason restores with an
// empty reason.
func toDomain(dto AppointmentDTO) (*appointment.Appointment, error) {
	var cancellation *appointment.Cancellation
	if dto.Canceled {
		cancellation = &appointment.Cancellation{}
		if dto.CanceledAt != nil {
			cancellation.At = *dto.CanceledAt
		}
		if dto.CancellationReason != nil {
			cancellation.Reason = *dto.CancellationReason
		}
	}

	return appointment.RestoreAppointment(
		dto.ID,
		dto.PatientID,
		dto.AppointmentAt,
		dto.Specialty,
		dto.Notes,
		cancellation,
	)
}

func toDomainList(dtos []AppointmentDTO) ([]*appointment.Appointment, error) {
	result := make([]*appointment.Appointment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}
