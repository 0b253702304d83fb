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

// CancelAppointmentCommandHandler cancels a patient's active appointment.
// Canceling is idempotent: an appointment that is already canceled is returned as
// stored, without a write and without re-stamping the cancellation time.
type CancelAppointmentCommandHandler struct {
	uowFactory AppointmentUoWFactory
	now        func() time.Time
}

// NewCancelAppointmentCommandHandler creates a handler that stamps cancellations with the current UTC time.
func NewCancelAppointmentCommandHandler(uowFactory AppointmentUoWFactory) CancelAppointmentCommandHandler {
	return CancelAppointmentCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle cancels the appointment and returns its stored state.
func (h CancelAppointmentCommandHandler) Handle(
	ctx context.Context,
	command CancelAppointmentCommand,
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

	a, err := appointmentRepo.FindActiveByPatientAndTime(ctx, patientID, at)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, apperrors.NotFound(fmt.Sprintf("No appointment found for patient with CPF: %s at: %s",
			command.PatientCPF(), appointment.FormatTimestamp(at)))
	}
	if err != nil {
		return nil, apperrors.FromRepository(err, "")
	}

	if a.IsCanceled() {
		return a, nil
	}

	if err = a.Cancel(command.Reason(), h.now()); err != nil {
		return nil, apperrors.FromEntity(err)
	}

	updated, err := appointmentRepo.Update(ctx, a)
	if err != nil {
		return nil, apperrors.FromRepository(err, "")
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, apperrors.FromRepository(err, "")
	}

	return updated, nil
}
