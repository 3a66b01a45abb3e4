//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/readstore"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	readstoremock "car-rental-api/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockReservationViewQueries, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation found",
			setupMock: func(mock *readstoremock.MockReservationViewQueries, id uuid.UUID) {
				row := sqlc.Reservations{
					ID:                  id,
					CustomerID:          uuid.New(),
					VehicleID:           uuid.New(),
					PickupLocationID:    uuid.New(),
					ReturnLocationID:    uuid.New(),
					StartsAt:            pgtype.Timestamptz{Time: time.Now().Add(24 * time.Hour), Valid: true},
					EndsAt:              pgtype.Timestamptz{Time: time.Now().Add(96 * time.Hour), Valid: true},
					Status:              "Active",
					SpecialRequests:     pgtype.Text{String: "Child seat", Valid: true},
					EstimatedTotalCents: pgtype.Int8{Int64: 15000, Valid: true},
					CreatedAt:           pgtype.Timestamptz{Time: time.Now(), Valid: true},
					UpdatedAt:           pgtype.Timestamptz{Time: time.Now(), Valid: true},
				}
				mock.EXPECT().GetReservation(ctx, gomock.Any(), id).Return(row, nil)
			},
			expectedError: false,
		},
		{
			name: "error: reservation not found",
			setupMock: func(mock *readstoremock.MockReservationViewQueries, id uuid.UUID) {
				mock.EXPECT().GetReservation(ctx, gomock.Any(), id).Return(sqlc.Reservations{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockReservationViewQueries, id uuid.UUID) {
				mock.EXPECT().GetReservation(ctx, gomock.Any(), id).Return(sqlc.Reservations{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
			store := readstore.NewReservationReadStoreWithQueries(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries, reservationID)

			result, err := store.FindByID(ctx, reservationID)

			if tc.expectedError {
				require.Error(t, err)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				}
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, reservationID, result.ID)
				assert.Equal(t, "Active", result.Status)
				require.NotNil(t, result.SpecialRequests)
				assert.Equal(t, "Child seat", *result.SpecialRequests)
				require.NotNil(t, result.EstimatedTotalCents)
				assert.Equal(t, int64(15000), *result.EstimatedTotalCents)
			}
		})
	}
}

func TestReservationReadStore_FindDetailByID(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()

	t.Run("joins customer, vehicle and location names into the view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		store := readstore.NewReservationReadStoreWithQueries(mockQueries, &mockDBTX{})

		row := sqlc.GetReservationDetailRow{
			ID:                  reservationID,
			CustomerID:          uuid.New(),
			VehicleID:           uuid.New(),
			PickupLocationID:    uuid.New(),
			ReturnLocationID:    uuid.New(),
			StartsAt:            pgtype.Timestamptz{Time: time.Now().Add(24 * time.Hour), Valid: true},
			EndsAt:              pgtype.Timestamptz{Time: time.Now().Add(96 * time.Hour), Valid: true},
			Status:              "Confirmed",
			EstimatedTotalCents: pgtype.Int8{Int64: 15000, Valid: true},
			CreatedAt:           pgtype.Timestamptz{Time: time.Now(), Valid: true},
			UpdatedAt:           pgtype.Timestamptz{Time: time.Now(), Valid: true},
			CustomerFirstName:   "Jordan",
			CustomerLastName:    "Smith",
			VehicleMake:         "Toyota",
			VehicleModel:        "Corolla",
			VehicleLicensePlate: "ABC-1234",
			PickupLocationName:  "Downtown Branch",
			ReturnLocationName:  "Airport Branch",
		}
		mockQueries.EXPECT().GetReservationDetail(ctx, gomock.Any(), reservationID).Return(row, nil)

		result, err := store.FindDetailByID(ctx, reservationID)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Jordan Smith", result.CustomerName)
		assert.Equal(t, "Toyota Corolla", result.VehicleLabel)
		assert.Equal(t, "ABC-1234", result.LicensePlate)
		assert.Equal(t, "Downtown Branch", result.PickupLocationName)
		assert.Equal(t, "Airport Branch", result.ReturnLocationName)
		assert.Nil(t, result.SpecialRequests)
	})

	t.Run("maps missing rows to a not-found error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		store := readstore.NewReservationReadStoreWithQueries(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetReservationDetail(ctx, gomock.Any(), reservationID).Return(sqlc.GetReservationDetailRow{}, pgx.ErrNoRows)

		result, err := store.FindDetailByID(ctx, reservationID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, result)
	})
}

func TestReservationReadStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("passes pagination through to the query layer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		store := readstore.NewReservationReadStoreWithQueries(mockQueries, &mockDBTX{})

		rows := []sqlc.Reservations{
			{ID: uuid.New(), Status: "Active"},
			{ID: uuid.New(), Status: "Confirmed"},
		}
		mockQueries.EXPECT().
			ListReservations(ctx, gomock.Any(), sqlc.ListReservationsParams{Limit: 20, Offset: 40}).
			Return(rows, nil)

		result, err := store.List(ctx, 20, 40)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, rows[0].ID, result[0].ID)
		assert.Equal(t, "Confirmed", result[1].Status)
	})

	t.Run("returns an empty slice when no rows match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		store := readstore.NewReservationReadStoreWithQueries(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().
			ListActiveReservations(ctx, gomock.Any(), sqlc.ListActiveReservationsParams{Limit: 50, Offset: 0}).
			Return([]sqlc.Reservations{}, nil)

		result, err := store.ListActive(ctx, 50, 0)

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("wraps query failures as db errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		store := readstore.NewReservationReadStoreWithQueries(mockQueries, &mockDBTX{})

		customerID := uuid.New()
		mockQueries.EXPECT().
			ListReservationsByCustomer(ctx, gomock.Any(), customerID).
			Return(nil, errDBConnectionLost)

		result, err := store.ListByCustomer(ctx, customerID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, result)
	})
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
