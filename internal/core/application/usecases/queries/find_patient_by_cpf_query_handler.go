package queries

import (
	"context"
	"errors"
	"fmt"

	"clinic/internal/core/application/apperrors"
	"clinic/internal/core/domain/model/patient"
	"clinic/internal/core/ports"
	"clinic/internal/pkg/errs"
)

// FindPatientByCPFQueryHandler returns the stored patient for a CPF.
type FindPatientByCPFQueryHandler struct {
	patients ports.PatientRepository
}

// NewFindPatientByCPFQueryHandler creates the handler.
func NewFindPatientByCPFQueryHandler(patients ports.PatientRepository) FindPatientByCPFQueryHandler {
	return FindPatientByCPFQueryHandler{patients: patients}
}

// Handle runs the query. A missing patient fails with NotFound.
func (h FindPatientByCPFQueryHandler) Handle(ctx context.Context, query FindPatientByCPFQuery) (*patient.Patient, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	p, err := h.patients.FindByCPF(ctx, query.CPF())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, apperrors.NotFound(fmt.Sprintf("Patient not found by CPF: %s", query.CPF()))
	}
	if err != nil {
		return nil, apperrors.FromRepository(err, "")
	}

	return p, nil
}
