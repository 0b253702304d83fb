package patient_test

import (
	"testing"

	"clinic/internal/core/domain/model/patient"
	"clinic/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPatient(t *testing.T) {
	p := patient.NewPatient("Maria Silva", "00011122233")

	require.NoError(t, p.Validate())
	assert.False(t, p.ID().IsExisting())
	assert.Equal(t, "Maria Silva", p.Name())
	assert.Equal(t, "00011122233", p.CPF())
}

func TestRestorePatient(t *testing.T) {
	t.Run("should restore with positive id", func(t *testing.T) {
		p, err := patient.RestorePatient(42, "Maria Silva", "00011122233")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		v, ok := p.ID().Value()
		assert.True(t, ok)
		assert.Equal(t, int32(42), v)
	})

	for _, id := range []int32{0, -1} {
		t.Run("should fail with non positive id", func(t *testing.T) {
			p, err := patient.RestorePatient(id, "Maria Silva", "00011122233")

			require.Error(t, err)
			assert.Nil(t, p)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)

			var invalid *patient.InvalidIDError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, id, invalid.ID)
		})
	}

	t.Run("should format the invalid id message", func(t *testing.T) {
		_, err := patient.RestorePatient(0, "Maria Silva", "00011122233")

		assert.EqualError(t, err, "An invalid ID was given for a patient: 0")
	})
}

func TestPatient_Rename(t *testing.T) {
	p, err := patient.RestorePatient(1, "Maria", "00011122233")
	require.NoError(t, err)

	p.Rename("Maria Souza")

	assert.Equal(t, "Maria Souza", p.Name())
	assert.Equal(t, "00011122233", p.CPF())
}

func TestPatient_Validate(t *testing.T) {
	var nilPatient *patient.Patient
	require.ErrorIs(t, nilPatient.Validate(), patient.ErrPatientIsNotConstructed)
	require.ErrorIs(t, (&patient.Patient{}).Validate(), patient.ErrPatientIsNotConstructed)
}
