package commands

import (
	"context"
	"fmt"

	"clinic/internal/core/application/apperrors"
)

// DeletePatientCommandHandler deletes a patient by CPF. Deleting an unknown CPF succeeds.
// Appointments are never deleted, so a patient who still has appointments is kept and
// the handler fails with a Constraint error.
type DeletePatientCommandHandler struct {
	uowFactory PatientUoWFactory
}

// NewDeletePatientCommandHandler creates a handler for patient deletion.
func NewDeletePatientCommandHandler(uowFactory PatientUoWFactory) DeletePatientCommandHandler {
	return DeletePatientCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the patient.
func (h DeletePatientCommandHandler) Handle(ctx context.Context, command DeletePatientCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return apperrors.FromRepository(err, "")
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	referenced := fmt.Sprintf("The patient with CPF: %s still has appointments", command.CPF())
	if err := uow.PatientRepository().DeleteByCPF(ctx, command.CPF()); err != nil {
		return apperrors.FromRepository(err, referenced)
	}

	if err := uow.Commit(ctx); err != nil {
		return apperrors.FromRepository(err, "")
	}

	return nil
}
