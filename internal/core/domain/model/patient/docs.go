// Package patient contains the Patient entity of the clinic domain.
//
// A patient is identified by the storage-assigned ID once persisted and by the CPF
// (the Brazilian individual taxpayer number) as its business key. Uniqueness of the
// CPF is enforced by the repository at write time, not by this package.
package patient
