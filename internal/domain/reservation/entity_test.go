//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"car-rental-api/internal/domain/reservation"
	"car-rental-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, reservation.StatusActive, actual.Status())
		require.NotNil(t, actual.EstimatedCents())
		assert.Equal(t, int64(3*5000), *actual.EstimatedCents())
		require.NotNil(t, actual.SpecialRequests())
		assert.Equal(t, "Child seat", *actual.SpecialRequests())
	})

	t.Run("interval validation", func(t *testing.T) {
		base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
		runCases(t, []testCase{
			{
				name:   "start before end",
				mutate: func(b *builder.ReservationBuilder) { b.WithInterval(base, base.Add(24*time.Hour)) },
			},
			{
				name:   "start equals end",
				mutate: func(b *builder.ReservationBuilder) { b.WithInterval(base, base) },
				errIs:  reservation.ErrInvalidInterval,
			},
			{
				name:   "start after end",
				mutate: func(b *builder.ReservationBuilder) { b.WithInterval(base.Add(time.Hour), base) },
				errIs:  reservation.ErrInvalidInterval,
			},
		})
	})

	t.Run("estimated total rounds partial days up", func(t *testing.T) {
		base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
		cases := []struct {
			name     string
			duration time.Duration
			days     int64
		}{
			{name: "one hour counts as one day", duration: time.Hour, days: 1},
			{name: "exactly one day", duration: 24 * time.Hour, days: 1},
			{name: "one day and one hour", duration: 25 * time.Hour, days: 2},
			{name: "exactly three days", duration: 72 * time.Hour, days: 3},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := builder.NewReservationBuilder().
					WithInterval(base, base.Add(c.duration)).
					WithDailyRateCents(5000).
					BuildDomain()
				require.NoError(t, err)
				require.NotNil(t, actual.EstimatedCents())
				assert.Equal(t, c.days*5000, *actual.EstimatedCents())
			})
		}
	})
}

func TestReservationTransitions(t *testing.T) {
	t.Run("confirm active reservation", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.Confirm())
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
	})

	t.Run("confirm is rejected unless active", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().AsConfirmed().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, r.Confirm(), reservation.ErrNotActive)
	})

	t.Run("cancel active reservation", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.Cancel())
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("cancel confirmed reservation", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().AsConfirmed().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.Cancel())
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("cancel is rejected in terminal states", func(t *testing.T) {
		for _, status := range []reservation.Status{reservation.StatusCancelled, reservation.StatusConverted} {
			r, err := builder.NewReservationBuilder().WithStatus(status).BuildDomain()
			require.NoError(t, err)

			require.ErrorIs(t, r.Cancel(), reservation.ErrTerminal)
			assert.Equal(t, status, r.Status())
		}
	})

	t.Run("convert confirmed reservation", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().AsConfirmed().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.Convert())
		assert.Equal(t, reservation.StatusConverted, r.Status())
	})

	t.Run("convert is rejected unless confirmed", func(t *testing.T) {
		for _, status := range []reservation.Status{reservation.StatusActive, reservation.StatusCancelled, reservation.StatusConverted} {
			r, err := builder.NewReservationBuilder().WithStatus(status).BuildDomain()
			require.NoError(t, err)

			require.ErrorIs(t, r.Convert(), reservation.ErrNotConfirmed)
		}
	})

	t.Run("only active reservations accept updates", func(t *testing.T) {
		active, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		assert.True(t, active.CanUpdate())

		confirmed, err := builder.NewReservationBuilder().AsConfirmed().BuildDomain()
		require.NoError(t, err)
		assert.False(t, confirmed.CanUpdate())
	})
}

func TestIntervalOverlaps(t *testing.T) {
	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	mk := func(startDay, endDay int) reservation.Interval {
		iv, err := reservation.NewInterval(base.AddDate(0, 0, startDay), base.AddDate(0, 0, endDay))
		require.NoError(t, err)
		return iv
	}

	cases := []struct {
		name     string
		a, b     reservation.Interval
		overlaps bool
	}{
		{name: "identical intervals", a: mk(0, 4), b: mk(0, 4), overlaps: true},
		{name: "partial overlap", a: mk(0, 4), b: mk(2, 6), overlaps: true},
		{name: "containment", a: mk(0, 6), b: mk(2, 4), overlaps: true},
		{name: "back to back is not an overlap", a: mk(0, 4), b: mk(4, 7), overlaps: false},
		{name: "disjoint", a: mk(0, 2), b: mk(5, 7), overlaps: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, c.a.Overlaps(c.b))
			assert.Equal(t, c.overlaps, c.b.Overlaps(c.a))
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
