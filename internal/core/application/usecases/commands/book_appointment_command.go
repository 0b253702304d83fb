package commands

import (
	"errors"
	"strings"

	"clinic/internal/pkg/errs"
	"clinic/internal/pkg/guard"
)

var ErrBookAppointmentCommandIsNotConstructed = errors.New(
	"BookAppointmentCommand must be created via NewBookAppointmentCommand constructor",
)

// BookAppointmentCommand requests an appointment for the patient with the given CPF.
// The timestamp stays in text form: the handler parses it after the patient lookup.
//
// Example:
//
//	cmd, err := NewBookAppointmentCommand("00011122233", "2024-01-01T10:00:00", "Cardiology", nil)
//	if err != nil {
//	    return err
//	}
//	booked, err := handler.Handle(ctx, cmd)
type BookAppointmentCommand struct {
	patientCPF    string
	appointmentAt string
	specialty     string
	notes         *string

	guard guard.ConstructorGuard
}

// NewBookAppointmentCommand creates a booking command. The patient CPF is required.
func NewBookAppointmentCommand(
	patientCPF string,
	appointmentAt string,
	specialty string,
	notes *string,
) (BookAppointmentCommand, error) {
	cmd := BookAppointmentCommand{
		appointmentAt: strings.TrimSpace(appointmentAt),
		specialty:     specialty,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setPatientCPF(patientCPF); err != nil {
		return BookAppointmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BookAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrBookAppointmentCommandIsNotConstructed)
}

func (c BookAppointmentCommand) PatientCPF() string    { return c.patientCPF }
func (c BookAppointmentCommand) AppointmentAt() string { return c.appointmentAt }
func (c BookAppointmentCommand) Specialty() string     { return c.specialty }
func (c BookAppointmentCommand) Notes() *string        { return c.notes }

func (c *BookAppointmentCommand) setPatientCPF(cpf string) error {
	cpf = strings.TrimSpace(cpf)
	if cpf == "" {
		return errs.NewValueIsRequiredError("patient cpf")
	}
	c.patientCPF = cpf
	return nil
}
