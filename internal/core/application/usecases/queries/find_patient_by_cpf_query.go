package queries

import (
	"errors"
	"strings"

	"clinic/internal/pkg/errs"
	"clinic/internal/pkg/guard"
)

var ErrFindPatientByCPFQueryIsNotConstructed = errors.New(
	"FindPatientByCPFQuery must be created via NewFindPatientByCPFQuery constructor",
)

// FindPatientByCPFQuery looks up one patient.
type FindPatientByCPFQuery struct {
	cpf   string
	guard guard.ConstructorGuard
}

// NewFindPatientByCPFQuery creates the query. The CPF is required.
func NewFindPatientByCPFQuery(cpf string) (FindPatientByCPFQuery, error) {
	cpf = strings.TrimSpace(cpf)
	if cpf == "" {
		return FindPatientByCPFQuery{}, errs.NewValueIsRequiredError("cpf")
	}
	return FindPatientByCPFQuery{cpf: cpf, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindPatientByCPFQuery) Validate() error {
	return q.guard.Validate(ErrFindPatientByCPFQueryIsNotConstructed)
}

func (q FindPatientByCPFQuery) CPF() string { return q.cpf }
