package commands

import (
	"errors"
	"strings"

	"clinic/internal/pkg/errs"
	"clinic/internal/pkg/guard"
)

var ErrUpdatePatientCommandIsNotConstructed = errors.New(
	"UpdatePatientCommand must be created via NewUpdatePatientCommand constructor",
)

// UpdatePatientCommand changes the name of the patient with the given CPF.
// A nil name leaves the stored name unchanged.
type UpdatePatientCommand struct {
	cpf   string
	name  *string
	guard guard.ConstructorGuard
}

// NewUpdatePatientCommand creates an update command. The CPF is required; a present
// name must not be blank.
func NewUpdatePatientCommand(cpf string, name *string) (UpdatePatientCommand, error) {
	cpf = strings.TrimSpace(cpf)
	if cpf == "" {
		return UpdatePatientCommand{}, errs.NewValueIsRequiredError("cpf")
	}

	cmd := UpdatePatientCommand{cpf: cpf, guard: guard.NewConstructorGuard()}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return UpdatePatientCommand{}, errs.NewValueIsRequiredError("name")
		}
		cmd.name = &trimmed
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePatientCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePatientCommandIsNotConstructed)
}

func (c UpdatePatientCommand) CPF() string   { return c.cpf }
func (c UpdatePatientCommand) Name() *string { return c.name }
