//go:build unit

package rental_test

import (
	"testing"
	"time"

	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/pkg/ptr"
	"car-rental-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRental(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, rental.StatusActive, actual.Status())
		assert.Equal(t, int64(2*5000), actual.TotalAmountCents())
		assert.Equal(t, rental.DefaultSecurityDepositCents, actual.SecurityDepositCents())
		assert.Nil(t, actual.ActualReturnAt())
	})

	t.Run("discount reduces the initial total", func(t *testing.T) {
		actual, err := builder.NewRentalBuilder().WithDiscountCents(3000).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(2*5000-3000), actual.TotalAmountCents())
	})

	t.Run("total never goes below zero", func(t *testing.T) {
		actual, err := builder.NewRentalBuilder().WithDiscountCents(999999).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(0), actual.TotalAmountCents())
	})

	t.Run("negative daily rate is rejected", func(t *testing.T) {
		actual, err := builder.NewRentalBuilder().WithDailyRateCents(-1).BuildDomain()
		require.Nil(t, actual)
		require.ErrorIs(t, err, rental.ErrNegativeAmount)
	})

	t.Run("negative discount is rejected", func(t *testing.T) {
		actual, err := builder.NewRentalBuilder().WithDiscountCents(-100).BuildDomain()
		require.Nil(t, actual)
		require.ErrorIs(t, err, rental.ErrNegativeAmount)
	})
}

func TestRentalReturn(t *testing.T) {
	t.Run("return finalizes fees and telemetry", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().WithDiscountCents(1000).BuildDomain()
		require.NoError(t, err)

		now := time.Now()
		mileageEnd := ptr.To(int32(12450))
		fuelEnd := ptr.To(0.5)
		require.NoError(t, r.Return(now, mileageEnd, fuelEnd, 2000, 5000))

		assert.Equal(t, rental.StatusCompleted, r.Status())
		require.NotNil(t, r.ActualReturnAt())
		assert.Equal(t, now, *r.ActualReturnAt())
		assert.Equal(t, mileageEnd, r.MileageEnd())
		assert.Equal(t, fuelEnd, r.FuelLevelEnd())
		assert.Equal(t, int64(2*5000+2000+5000-1000), r.TotalAmountCents())
	})

	t.Run("final total is floored at zero", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().WithDiscountCents(50000).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.Return(time.Now(), nil, nil, 0, 0))
		assert.Equal(t, int64(0), r.TotalAmountCents())
	})

	t.Run("negative fees are rejected", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, r.Return(time.Now(), nil, nil, -1, 0), rental.ErrNegativeAmount)
		require.ErrorIs(t, r.Return(time.Now(), nil, nil, 0, -1), rental.ErrNegativeAmount)
		assert.Equal(t, rental.StatusActive, r.Status())
	})

	t.Run("return is rejected unless active", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.Return(time.Now(), nil, nil, 0, 0))

		require.ErrorIs(t, r.Return(time.Now(), nil, nil, 0, 0), rental.ErrNotActive)
	})
}

func TestRentalCancel(t *testing.T) {
	t.Run("cancel active rental", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.Cancel())
		assert.Equal(t, rental.StatusCancelled, r.Status())
	})

	t.Run("cancel is rejected after completion", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.Return(time.Now(), nil, nil, 0, 0))

		require.ErrorIs(t, r.Cancel(), rental.ErrNotActive)
	})
}

func TestRentalIsOverdue(t *testing.T) {
	starts := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	ends := starts.Add(48 * time.Hour)

	t.Run("active rental past its end is overdue", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().WithInterval(starts, ends).BuildDomain()
		require.NoError(t, err)

		assert.False(t, r.IsOverdue(ends.Add(-time.Minute)))
		assert.True(t, r.IsOverdue(ends.Add(time.Minute)))
	})

	t.Run("returned rental is never overdue", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().WithInterval(starts, ends).BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.Return(ends.Add(time.Hour), nil, nil, 0, 0))

		assert.False(t, r.IsOverdue(ends.Add(2*time.Hour)))
	})
}
