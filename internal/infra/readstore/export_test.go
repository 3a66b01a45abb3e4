//go:build unit

package readstore

import (
	sqlc "car-rental-api/internal/infra/sqlc/generated"
)

// Test constructors accepting the query interfaces directly so tests can
// substitute gomock implementations.

func NewReservationReadStoreWithQueries(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{queries: queries, db: db}
}
