package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic/internal/core/application/apperrors"
	"clinic/internal/core/domain/model/appointment"
	"clinic/internal/pkg/errs"
)

// BookAppointmentCommandHandler books an appointment after checking that the patient
// exists and has no other active appointment at the same time.
//
// The existence check and the insert share a transaction, and storage carries a
// unique index on active (patient_id, appointment_at) pairs. When two bookings race
// past the check, the loser's insert is rejected and reported as the same Constraint
// error the check would have produced.
//
// Example:
//
//	handler := NewBookAppointmentCommandHandler(uowFactory)
//	booked, err := handler.Handle(ctx, cmd)
//	switch {
//	case apperrors.IsPatientNotFound(err):
//	    // unknown CPF
//	case apperrors.IsConstraint(err):
//	    // slot already taken or invalid reference
//	case err != nil:
//	    // storage or parse failure
//	}
type BookAppointmentCommandHandler struct {
	uowFactory AppointmentUoWFactory
}

// NewBookAppointmentCommandHandler creates a handler for booking operations.
func NewBookAppointmentCommandHandler(uowFactory AppointmentUoWFactory) BookAppointmentCommandHandler {
	return BookAppointmentCommandHandler{uowFactory: uowFactory}
}

// Handle books the appointment and returns it with its storage-assigned ID.
func (h BookAppointmentCommandHandler) Handle(
	ctx context.Context,
	command BookAppointmentCommand,
) (*appointment.Appointment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, apperrors.FromRepository(err, "")
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	patientRepo := uow.PatientRepository()
	appointmentRepo := uow.AppointmentRepository()

	p, err := patientRepo.FindByCPF(ctx, command.PatientCPF())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, apperrors.PatientNotFound(command.PatientCPF())
	}
	if err != nil {
		return nil, apperrors.FromRepository(err, "")
	}
	patientID, persisted := p.ID().Value()
	if !persisted {
		return nil, apperrors.PatientNotFound(command.PatientCPF())
	}

	at, err := appointment.ParseTimestamp(command.AppointmentAt())
	if err != nil {
		return nil, apperrors.FromParse(err)
	}

	a, err := appointment.NewAppointment(patientID, at, command.Specialty(), command.Notes())
	if err != nil {
		return nil, apperrors.FromEntity(err)
	}

	conflict := duplicateBookingMessage(command.PatientCPF(), a.AppointmentAt())

	exists, err := appointmentRepo.ExistsActiveByPatientAndTime(ctx, patientID, a.AppointmentAt())
	if err != nil {
		return nil, apperrors.FromRepository(err, "")
	}
	if exists {
		return nil, apperrors.Constraint(conflict)
	}

	saved, err := appointmentRepo.Save(ctx, a)
	if err != nil {
		return nil, apperrors.FromRepository(err, conflict)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, apperrors.FromRepository(err, conflict)
	}

	return saved, nil
}

func duplicateBookingMessage(cpf string, at time.Time) string {
	return fmt.Sprintf("There's already an appointment for patient with CPF: %s at: %s",
		cpf, appointment.FormatTimestamp(at))
}
