package queries

import (
	"context"
	"errors"

	"clinic/internal/core/application/apperrors"
	"clinic/internal/core/domain/model/appointment"
	"clinic/internal/core/ports"
	"clinic/internal/pkg/errs"
)

// ListPatientAppointmentsQueryHandler resolves the patient by CPF and returns all of
// their appointments, active and canceled, in storage order.
type ListPatientAppointmentsQueryHandler struct {
	patients     ports.PatientRepository
	appointments ports.AppointmentRepository
}

// NewListPatientAppointmentsQueryHandler creates the handler.
func NewListPatientAppointmentsQueryHandler(
	patients ports.PatientRepository,
	appointments ports.AppointmentRepository,
) ListPatientAppointmentsQueryHandler {
	return ListPatientAppointmentsQueryHandler{patients: patients, appointments: appointments}
}

// Handle runs the query. An unknown or unpersisted patient fails with PatientNotFound.
func (h ListPatientAppointmentsQueryHandler) Handle(
	ctx context.Context,
	query ListPatientAppointmentsQuery,
) ([]*appointment.Appointment, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	p, err := h.patients.FindByCPF(ctx, query.PatientCPF())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, apperrors.PatientNotFound(query.PatientCPF())
	}
	if err != nil {
		return nil, apperrors.FromRepository(err, "")
	}

	patientID, ok := p.ID().Value()
	if !ok {
		return nil, apperrors.PatientNotFound(query.PatientCPF())
	}

	list, err := h.appointments.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, apperrors.FromRepository(err, "")
	}

	return list, nil
}
