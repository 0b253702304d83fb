// Package patientrepo persists patients with GORM.
// It owns the patients table and the conversion between the Patient entity and its row.
package patientrepo

import (
	"clinic/internal/core/domain/model/patient"
)

// PatientDTO is the row of the patients table. The CPF is unique.
type PatientDTO struct {
	ID   int32  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null"`
	CPF  string `gorm:"column:cpf;type:varchar(11);not null;uniqueIndex:uniq_patients_cpf"`
}

// TableName overrides GORM's default naming.
func (PatientDTO) TableName() string {
	return "patients"
}

// fromDomain converts a patient to its row. A new patient maps to ID 0 so that
// the database assigns the identifier.
func fromDomain(p *patient.Patient) PatientDTO {
	id, _ := p.ID().Value()
	return PatientDTO{
		ID:   id,
		Name: p.Name(),
		CPF:  p.CPF(),
	}
}

func toDomain(dto PatientDTO) (*patient.Patient, error) {
	return patient.RestorePatient(dto.ID, dto.Name, dto.CPF)
}
