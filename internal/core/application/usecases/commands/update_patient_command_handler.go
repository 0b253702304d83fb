package commands

import (
	"context"
	"errors"

	"clinic/internal/core/application/apperrors"
	"clinic/internal/core/domain/model/patient"
	"clinic/internal/pkg/errs"
)

// UpdatePatientCommandHandler renames a patient found by CPF.
type UpdatePatientCommandHandler struct {
	uowFactory PatientUoWFactory
}

// NewUpdatePatientCommandHandler creates a handler for patient updates.
func NewUpdatePatientCommandHandler(uowFactory PatientUoWFactory) UpdatePatientCommandHandler {
	return UpdatePatientCommandHandler{uowFactory: uowFactory}
}

// Handle applies the update and returns the stored patient.
// A missing CPF fails with a NotFound error whose detail is the CPF.
func (h UpdatePatientCommandHandler) Handle(ctx context.Context, command UpdatePatientCommand) (*patient.Patient, error) {
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

	repo := uow.PatientRepository()

	p, err := repo.FindByCPF(ctx, command.CPF())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, apperrors.NotFound(command.CPF())
	}
	if err != nil {
		return nil, apperrors.FromRepository(err, "")
	}

	if name := command.Name(); name != nil {
		p.Rename(*name)
	}

	updated, err := repo.Update(ctx, p)
	if err != nil {
		return nil, apperrors.FromRepository(err, "")
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, apperrors.FromRepository(err, "")
	}

	return updated, nil
}
