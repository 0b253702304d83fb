package admin_test

import (
	"testing"

	"clinic/internal/core/domain/model/admin"
	"clinic/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdmin(t *testing.T) {
	t.Run("should create admin", func(t *testing.T) {
		a, err := admin.NewAdmin("Clinic Admin", " admin@clinic.test ", "$2a$10$hash")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.False(t, a.ID().IsExisting())
		assert.Equal(t, "Clinic Admin", a.Name())
		assert.Equal(t, "admin@clinic.test", a.Email())
		assert.Equal(t, "$2a$10$hash", a.PasswordHash())
	})

	t.Run("should require email and hash", func(t *testing.T) {
		a, err := admin.NewAdmin("", "  ", "")

		require.Error(t, err)
		assert.Nil(t, a)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "password hash")
	})
}

func TestRestoreAdmin(t *testing.T) {
	a, err := admin.RestoreAdmin(3, "Clinic Admin", "admin@clinic.test", "hash")
	require.NoError(t, err)
	v, ok := a.ID().Value()
	assert.True(t, ok)
	assert.Equal(t, int32(3), v)

	_, err = admin.RestoreAdmin(0, "Clinic Admin", "admin@clinic.test", "hash")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero admin.Admin
	require.ErrorIs(t, zero.Validate(), admin.ErrAdminIsNotConstructed)
}
