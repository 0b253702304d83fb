package appointment

import (
	"errors"
	"fmt"
	"time"

	"clinic/internal/core/domain/model/kernel"
	"clinic/internal/pkg/errs"
)

var (
	// ErrAppointmentIsNotConstructed is returned when an Appointment was not built
	// by NewAppointment or RestoreAppointment.
	ErrAppointmentIsNotConstructed = errors.New("Appointment must be created via NewAppointment or RestoreAppointment")

	// ErrCancellationIsIncomplete is returned when a canceled appointment is restored without its cancellation time.
	ErrCancellationIsIncomplete = errs.NewValueIsRequiredError("canceled appointments must carry a cancellation time")
)

// InvalidPatientIDError is returned when an appointment references a patient ID that is not positive.
type InvalidPatientIDError struct {
	PatientID int32
}

func (e *InvalidPatientIDError) Error() string {
	return fmt.Sprintf("Invalid patient ID: %d", e.PatientID)
}

// Unwrap lets callers match the error with errors.Is(err, errs.ErrValueIsInvalid).
func (e *InvalidPatientIDError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// Cancellation holds the details recorded when an appointment is canceled.
type Cancellation struct {
	At     time.Time
	Reason string
}

// Appointment is a patient's booking for a specialty at a given time.
//
// Appointment follows these invariants:
//   - patientID is always positive
//   - appointmentAt is a naive timestamp, stored in UTC without zone semantics
//   - a canceled appointment always has a cancellation time and reason (possibly empty)
//   - cancellation happens at most once
type Appointment struct {
	id            kernel.ID
	patientID     int32
	appointmentAt time.Time
	specialty     string
	notes         *string
	status        Status
	cancellation  *Cancellation
	isConstructed bool
}

// NewAppointment builds an active appointment that has not been persisted yet.
//
// Parameters:
//   - patientID: identifier of an existing patient (must be positive)
//   - appointmentAt: the booked time; zone information is dropped
//   - specialty: medical specialty, e.g. "Cardiology"
//   - notes: optional free text
//
// Returns *InvalidPatientIDError when patientID is not positive.
//
// Example:
//
//	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
//	a, err := appointment.NewAppointment(42, at, "Cardiology", nil)
//	if err != nil {
//	    // the patient reference is invalid
//	}
func NewAppointment(patientID int32, appointmentAt time.Time, specialty string, notes *string) (*Appointment, error) {
	a := &Appointment{
		id:            kernel.NewID(),
		status:        Active,
		specialty:     specialty,
		notes:         copyString(notes),
		isConstructed: true,
	}

	if err := a.setPatientID(patientID); err != nil {
		return nil, err
	}
	a.appointmentAt = Naive(appointmentAt)

	return a, nil
}

// RestoreAppointment rebuilds a persisted appointment. A nil cancellation restores an
// active appointment; a non-nil one restores a canceled appointment.
//
// Example:
//
//	a, err := appointment.RestoreAppointment(1, 42, at, "Cardiology", nil,
//	    &appointment.Cancellation{At: canceledAt, Reason: "Patient request"})
func RestoreAppointment(
	id int32,
	patientID int32,
	appointmentAt time.Time,
	specialty string,
	notes *string,
	cancellation *Cancellation,
) (*Appointment, error) {
	a := &Appointment{
		status:        Active,
		appointmentAt: Naive(appointmentAt),
		specialty:     specialty,
		notes:         copyString(notes),
		isConstructed: true,
	}

	existing, idErr := kernel.ExistingID(id)
	if err := errors.Join(
		idErr,
		a.setPatientID(patientID),
		a.restoreCancellation(cancellation),
	); err != nil {
		return nil, err
	}
	a.id = existing

	return a, nil
}

// Validate ensures the appointment was built through one of the constructors.
func (a *Appointment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAppointmentIsNotConstructed
	}
	return nil
}

// ID returns the appointment's identity.
func (a *Appointment) ID() kernel.ID {
	return a.id
}

// PatientID returns the identifier of the booked patient.
func (a *Appointment) PatientID() int32 {
	return a.patientID
}

// AppointmentAt returns the booked time.
func (a *Appointment) AppointmentAt() time.Time {
	return a.appointmentAt
}

// Specialty returns the medical specialty of the appointment.
func (a *Appointment) Specialty() string {
	return a.specialty
}

// Notes returns the optional notes, or nil.
func (a *Appointment) Notes() *string {
	return copyString(a.notes)
}

// Status returns the lifecycle state.
func (a *Appointment) Status() Status {
	return a.status
}

// IsCanceled reports whether the appointment has been canceled.
func (a *Appointment) IsCanceled() bool {
	return a.status == Canceled
}

// CanceledAt returns the cancellation time, or nil for an active appointment.
func (a *Appointment) CanceledAt() *time.Time {
	if a.cancellation == nil {
		return nil
	}
	at := a.cancellation.At
	return &at
}

// CancellationReason returns the cancellation reason, or nil for an active appointment.
func (a *Appointment) CancellationReason() *string {
	if a.cancellation == nil {
		return nil
	}
	reason := a.cancellation.Reason
	return &reason
}

// Cancel marks an active appointment as canceled at the given time with the given reason.
// An empty reason is valid. Canceling an already canceled appointment fails and leaves
// the recorded cancellation untouched.
//
// Example:
//
//	if !a.IsCanceled() {
//	    if err := a.Cancel("Patient request", time.Now()); err != nil {
//	        return err
//	    }
//	}
func (a *Appointment) Cancel(reason string, at time.Time) error {
	newStatus, err := a.status.Cancel()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.cancellation = &Cancellation{At: Naive(at), Reason: reason}
	return nil
}

func (a *Appointment) setPatientID(patientID int32) error {
	if patientID <= 0 {
		return &InvalidPatientIDError{PatientID: patientID}
	}
	a.patientID = patientID
	return nil
}

func (a *Appointment) restoreCancellation(c *Cancellation) error {
	if c == nil {
		return nil
	}
	if c.At.IsZero() {
		return ErrCancellationIsIncomplete
	}
	a.status = Canceled
	a.cancellation = &Cancellation{At: Naive(c.At), Reason: c.Reason}
	return nil
}

// Naive drops the zone of t, keeping its wall clock in UTC.
// Appointment times carry no zone: 10:00 in any zone is stored as 10:00.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
