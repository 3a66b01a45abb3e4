//go:build unit

package customer_test

import (
	"testing"

	"car-rental-api/internal/domain/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid email", input: "jordan@example.com", want: "jordan@example.com"},
		{name: "surrounding whitespace is trimmed", input: "  jordan@example.com  ", want: "jordan@example.com"},
		{name: "plus addressing", input: "jordan+rentals@example.com", want: "jordan+rentals@example.com"},
		{name: "empty", input: "", errIs: customer.ErrInvalidEmail},
		{name: "missing at sign", input: "jordan.example.com", errIs: customer.ErrInvalidEmail},
		{name: "missing domain", input: "jordan@", errIs: customer.ErrInvalidEmail},
		{name: "missing tld", input: "jordan@example", errIs: customer.ErrInvalidEmail},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			email, err := customer.NewEmail(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, email.Value())
		})
	}
}

func TestNewDriverLicense(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid license", input: "D1234567", want: "D1234567"},
		{name: "minimum length", input: "D123", want: "D123"},
		{name: "surrounding whitespace is trimmed", input: "  D1234567  ", want: "D1234567"},
		{name: "empty", input: "", errIs: customer.ErrInvalidDriverLicense},
		{name: "too short", input: "D12", errIs: customer.ErrInvalidDriverLicense},
		{name: "whitespace only", input: "      ", errIs: customer.ErrInvalidDriverLicense},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			license, err := customer.NewDriverLicense(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, license.Value())
		})
	}
}
