// Package ports defines the capabilities the clinic use cases need from the outside
// world: persistence of patients, appointments and admins, transactions,
// password verification and token issuance.
// Adapters implement these interfaces; use cases depend on nothing else.
package ports

import (
	"context"

	"clinic/internal/core/domain/model/patient"
)

// PatientRepository defines the persistence contract for patients.
// Lookups that miss return an error matching errs.ErrObjectNotFound.
// Any other error is a storage failure.
type PatientRepository interface {
	// ExistsByCPF reports whether a patient with the given CPF is stored.
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)

	// Save stores a new patient and returns the identifier assigned by storage.
	// A duplicate CPF fails with an error matching errs.ErrObjectAlreadyExists.
	Save(ctx context.Context, p *patient.Patient) (int32, error)

	// FindByID returns the stored patient with the given identifier.
	FindByID(ctx context.Context, id int32) (*patient.Patient, error)

	// FindByCPF returns the stored patient with the given CPF.
	FindByCPF(ctx context.Context, cpf string) (*patient.Patient, error)

	// Update persists the name of an existing patient and returns the stored state.
	Update(ctx context.Context, p *patient.Patient) (*patient.Patient, error)

	// DeleteByCPF removes the patient with the given CPF. Deleting a missing CPF is not an error.
	// A patient still referenced by appointments is kept and the call fails with an
	// error matching errs.ErrObjectAlreadyExists.
	DeleteByCPF(ctx context.Context, cpf string) error
}
