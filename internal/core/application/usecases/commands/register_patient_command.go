package commands

import (
	"errors"
	"strings"

	"clinic/internal/pkg/errs"
	"clinic/internal/pkg/guard"
)

var ErrRegisterPatientCommandIsNotConstructed = errors.New(
	"RegisterPatientCommand must be created via NewRegisterPatientCommand constructor",
)

// RegisterPatientCommand registers a new patient.
type RegisterPatientCommand struct {
	name  string
	cpf   string
	guard guard.ConstructorGuard
}

// NewRegisterPatientCommand creates a registration command. Name and CPF are required.
func NewRegisterPatientCommand(name, cpf string) (RegisterPatientCommand, error) {
	cmd := RegisterPatientCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(cmd.setName(name), cmd.setCPF(cpf)); err != nil {
		return RegisterPatientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterPatientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPatientCommandIsNotConstructed)
}

func (c RegisterPatientCommand) Name() string { return c.name }
func (c RegisterPatientCommand) CPF() string  { return c.cpf }

func (c *RegisterPatientCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterPatientCommand) setCPF(cpf string) error {
	cpf = strings.TrimSpace(cpf)
	if cpf == "" {
		return errs.NewValueIsRequiredError("cpf")
	}
	c.cpf = cpf
	return nil
}
