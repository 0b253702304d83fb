package guard_test

import (
	"errors"
	"testing"

	"clinic/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("appointment must be created via NewAppointment")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type listCommand struct {
		cpf   string
		guard guard.ConstructorGuard
	}
	errListNotConstructed := errors.New("list command must be created via its constructor")

	newListCommand := func(cpf string) (listCommand, error) {
		if cpf == "" {
			return listCommand{}, errors.New("cpf is required")
		}
		return listCommand{cpf: cpf, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_marks_command", func(t *testing.T) {
		cmd, err := newListCommand("00011122233")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errListNotConstructed))
		assert.Equal(t, "00011122233", cmd.cpf)
	})

	t.Run("copies_keep_the_mark", func(t *testing.T) {
		cmd, err := newListCommand("00011122233")
		require.NoError(t, err)

		cmdCopy := cmd

		require.NoError(t, cmdCopy.guard.Validate(errListNotConstructed))
	})

	t.Run("literal_command_is_rejected", func(t *testing.T) {
		cmd := listCommand{cpf: "00011122233"}

		require.ErrorIs(t, cmd.guard.Validate(errListNotConstructed), errListNotConstructed)
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
