package commands

import (
	"context"
	"fmt"

	"clinic/internal/core/application/apperrors"
	"clinic/internal/core/domain/model/patient"
)

// RegisterPatientCommandHandler stores a new patient unless the CPF is already taken.
// A CPF registered concurrently between the check and the insert is caught by the
// unique index on patients.cpf and reported with the same Constraint message.
type RegisterPatientCommandHandler struct {
	uowFactory PatientUoWFactory
}

// NewRegisterPatientCommandHandler creates a handler for patient registration.
func NewRegisterPatientCommandHandler(uowFactory PatientUoWFactory) RegisterPatientCommandHandler {
	return RegisterPatientCommandHandler{uowFactory: uowFactory}
}

// Handle registers the patient and returns the identifier assigned by storage.
func (h RegisterPatientCommandHandler) Handle(ctx context.Context, command RegisterPatientCommand) (int32, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, apperrors.FromRepository(err, "")
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PatientRepository()
	taken := fmt.Sprintf("There's already a user registered with the CPF: %s", command.CPF())

	exists, err := repo.ExistsByCPF(ctx, command.CPF())
	if err != nil {
		return 0, apperrors.FromRepository(err, "")
	}
	if exists {
		return 0, apperrors.Constraint(taken)
	}

	id, err := repo.Save(ctx, patient.NewPatient(command.Name(), command.CPF()))
	if err != nil {
		return 0, apperrors.FromRepository(err, taken)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, apperrors.FromRepository(err, taken)
	}

	return id, nil
}
