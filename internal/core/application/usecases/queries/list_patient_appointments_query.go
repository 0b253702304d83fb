// Package queries contains the read operations of the clinic.
// Queries never write; the ones that address a patient by CPF report a missing
// patient through the apperrors taxonomy, the same way the commands do.
package queries

import (
	"errors"
	"strings"

	"clinic/internal/pkg/errs"
	"clinic/internal/pkg/guard"
)

var ErrListPatientAppointmentsQueryIsNotConstructed = errors.New(
	"ListPatientAppointmentsQuery must be created via NewListPatientAppointmentsQuery constructor",
)

// ListPatientAppointmentsQuery lists every appointment of the patient with the given CPF.
//
// Example:
//
//	query, err := NewListPatientAppointmentsQuery("00011122233")
//	if err != nil {
//	    return err
//	}
//	appointments, err := handler.Handle(ctx, query)
type ListPatientAppointmentsQuery struct {
	patientCPF string
	guard      guard.ConstructorGuard
}

// NewListPatientAppointmentsQuery creates the query. The CPF is required.
func NewListPatientAppointmentsQuery(patientCPF string) (ListPatientAppointmentsQuery, error) {
	patientCPF = strings.TrimSpace(patientCPF)
	if patientCPF == "" {
		return ListPatientAppointmentsQuery{}, errs.NewValueIsRequiredError("patient cpf")
	}
	return ListPatientAppointmentsQuery{patientCPF: patientCPF, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPatientAppointmentsQuery) Validate() error {
	return q.guard.Validate(ErrListPatientAppointmentsQueryIsNotConstructed)
}

func (q ListPatientAppointmentsQuery) PatientCPF() string { return q.patientCPF }
