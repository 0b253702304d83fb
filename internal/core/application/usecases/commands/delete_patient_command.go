package commands

import (
	"errors"
	"strings"

	"clinic/internal/pkg/errs"
	"clinic/internal/pkg/guard"
)

var ErrDeletePatientCommandIsNotConstructed = errors.New(
	"DeletePatientCommand must be created via NewDeletePatientCommand constructor",
)

// DeletePatientCommand removes the patient with the given CPF.
type DeletePatientCommand struct {
	cpf   string
	guard guard.ConstructorGuard
}

// NewDeletePatientCommand creates a delete command. The CPF is required.
func NewDeletePatientCommand(cpf string) (DeletePatientCommand, error) {
	cpf = strings.TrimSpace(cpf)
	if cpf == "" {
		return DeletePatientCommand{}, errs.NewValueIsRequiredError("cpf")
	}
	return DeletePatientCommand{cpf: cpf, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePatientCommand) Validate() error {
	return c.guard.Validate(ErrDeletePatientCommandIsNotConstructed)
}

func (c DeletePatientCommand) CPF() string { return c.cpf }
