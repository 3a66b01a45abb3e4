//go:build unit

package employee_test

import (
	"testing"

	"car-rental-api/internal/domain/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	t.Run("all defined roles are accepted", func(t *testing.T) {
		for _, s := range []string{"Admin", "Manager", "Agent", "Mechanic"} {
			role, err := employee.NewRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, role.String())
			assert.True(t, role.IsValid())
		}
	})

	t.Run("unknown roles are rejected", func(t *testing.T) {
		for _, s := range []string{"", "admin", "Supervisor", "ADMIN"} {
			_, err := employee.NewRole(s)
			require.ErrorIs(t, err, employee.ErrInvalidRole)
		}
	})
}

func TestNewPassword(t *testing.T) {
	t.Run("minimum length password", func(t *testing.T) {
		p, err := employee.NewPassword("12345678")
		require.NoError(t, err)
		assert.Equal(t, "12345678", p.Value())
	})

	t.Run("short passwords are rejected", func(t *testing.T) {
		for _, s := range []string{"", "1234567"} {
			_, err := employee.NewPassword(s)
			require.ErrorIs(t, err, employee.ErrPasswordTooWeak)
		}
	})
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid email", input: "agent@rental.example.com"},
		{name: "empty", input: "", errIs: employee.ErrInvalidEmail},
		{name: "missing at sign", input: "agent.rental.example.com", errIs: employee.ErrInvalidEmail},
		{name: "spaces inside", input: "agent @example.com", errIs: employee.ErrInvalidEmail},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := employee.NewEmail(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}
