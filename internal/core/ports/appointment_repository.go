package ports

import (
	"context"
	"time"

	"clinic/internal/core/domain/model/appointment"
)

// AppointmentRepository defines the persistence contract for appointments.
// Appointments are never deleted through this contract.
type AppointmentRepository interface {
	// ExistsActiveByPatientAndTime reports whether the patient already has a
	// non-canceled appointment at exactly the given time.
	ExistsActiveByPatientAndTime(ctx context.Context, patientID int32, at time.Time) (bool, error)

	// Save stores a new appointment and returns it with its storage-assigned ID.
	// A second active appointment for the same patient and time fails with an
	// error matching errs.ErrObjectAlreadyExists.
	Save(ctx context.Context, a *appointment.Appointment) (*appointment.Appointment, error)

	// FindActiveByPatientAndTime returns the appointment of the patient at the given time,
	// preferring the non-canceled one. When the slot only holds canceled appointments the
	// most recently canceled one is returned, so that a repeated cancellation sees the
	// first one's result. A slot with no appointment fails with errs.ErrObjectNotFound.
	FindActiveByPatientAndTime(ctx context.Context, patientID int32, at time.Time) (*appointment.Appointment, error)

	// Update persists the cancellation state of an existing appointment and returns the stored state.
	Update(ctx context.Context, a *appointment.Appointment) (*appointment.Appointment, error)

	// FindByPatientID returns every appointment of the patient, active and canceled,
	// in storage order.
	FindByPatientID(ctx context.Context, patientID int32) ([]*appointment.Appointment, error)

	// FindActiveBetween returns the non-canceled appointments with from <= appointment_at < to,
	// ordered by time.
	FindActiveBetween(ctx context.Context, from, to time.Time) ([]*appointment.Appointment, error)
}
