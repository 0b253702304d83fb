package patient

import (
	"errors"
	"fmt"

	"clinic/internal/core/domain/model/kernel"
	"clinic/internal/pkg/errs"
)

// ErrPatientIsNotConstructed is returned when a Patient was not built by NewPatient or RestorePatient.
var ErrPatientIsNotConstructed = errors.New("Patient must be created via NewPatient or RestorePatient")

// InvalidIDError is returned by RestorePatient when the stored identifier is not positive.
type InvalidIDError struct {
	ID int32
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("An invalid ID was given for a patient: %d", e.ID)
}

// Unwrap lets callers match the error with errors.Is(err, errs.ErrValueIsInvalid).
func (e *InvalidIDError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// Patient is a person registered at the clinic.
//
// Invariants:
//   - a patient built by NewPatient has a new ID until the repository stores it
//   - a restored patient always has an existing (positive) ID
//   - only the name changes after construction
type Patient struct {
	id            kernel.ID
	name          string
	cpf           string
	isConstructed bool
}

// NewPatient builds a patient that has not been persisted yet. It always succeeds:
// CPF format checks belong to the transport layer.
//
// Example:
//
//	p := patient.NewPatient("Maria Silva", "00011122233")
//	id, err := repo.Save(ctx, p)
func NewPatient(name, cpf string) *Patient {
	return &Patient{
		id:            kernel.NewID(),
		name:          name,
		cpf:           cpf,
		isConstructed: true,
	}
}

// RestorePatient rebuilds a persisted patient. It fails with *InvalidIDError when id is not positive.
func RestorePatient(id int32, name, cpf string) (*Patient, error) {
	existing, err := kernel.ExistingID(id)
	if err != nil {
		return nil, &InvalidIDError{ID: id}
	}

	return &Patient{
		id:            existing,
		name:          name,
		cpf:           cpf,
		isConstructed: true,
	}, nil
}

// Validate ensures the patient was built through one of the constructors.
func (p *Patient) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPatientIsNotConstructed
	}
	return nil
}

// ID returns the patient's identity.
func (p *Patient) ID() kernel.ID {
	return p.id
}

// Name returns the patient's full name.
func (p *Patient) Name() string {
	return p.name
}

// CPF returns the patient's national identifier.
func (p *Patient) CPF() string {
	return p.cpf
}

// Rename replaces the patient's name. The CPF and ID never change.
func (p *Patient) Rename(name string) {
	p.name = name
}
