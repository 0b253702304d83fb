package commands

import (
	"errors"
	"strings"

	"clinic/internal/pkg/errs"
	"clinic/internal/pkg/guard"
)

var ErrCancelAppointmentCommandIsNotConstructed = errors.New(
	"CancelAppointmentCommand must be created via NewCancelAppointmentCommand constructor",
)

// CancelAppointmentCommand requests the cancellation of the active appointment the
// patient holds at the given time. A nil reason is recorded as an empty string.
//
// Example:
//
//	reason := "Patient request"
//	cmd, err := NewCancelAppointmentCommand("00011122233", "2024-01-01T10:00:00", &reason)
type CancelAppointmentCommand struct {
	patientCPF    string
	appointmentAt string
	reason        string

	guard guard.ConstructorGuard
}

// NewCancelAppointmentCommand creates a cancellation command. The patient CPF is required.
func NewCancelAppointmentCommand(patientCPF, appointmentAt string, reason *string) (CancelAppointmentCommand, error) {
	patientCPF = strings.TrimSpace(patientCPF)
	if patientCPF == "" {
		return CancelAppointmentCommand{}, errs.NewValueIsRequiredError("patient cpf")
	}

	cmd := CancelAppointmentCommand{
		patientCPF:    patientCPF,
		appointmentAt: strings.TrimSpace(appointmentAt),
		guard:         guard.NewConstructorGuard(),
	}
	if reason != nil {
		cmd.reason = *reason
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelAppointmentCommandIsNotConstructed)
}

func (c CancelAppointmentCommand) PatientCPF() string    { return c.patientCPF }
func (c CancelAppointmentCommand) AppointmentAt() string { return c.appointmentAt }
func (c CancelAppointmentCommand) Reason() string        { return c.reason }
