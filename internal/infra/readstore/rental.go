package readstore

import (
	"context"
	"time"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RentalViewQueries interface {
	GetRental(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rentals, error)
	GetRentalDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRentalDetailRow, error)
	ListRentals(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRentalsParams) ([]sqlc.Rentals, error)
	ListActiveRentals(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveRentalsParams) ([]sqlc.Rentals, error)
	ListOverdueRentals(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) ([]sqlc.Rentals, error)
	ListRentalsByCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRentalsByCustomerParams) ([]sqlc.Rentals, error)
	FilterRentals(ctx context.Context, db sqlc.DBTX, arg sqlc.FilterRentalsParams) ([]sqlc.Rentals, error)
	RentalRevenueBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.RentalRevenueBetweenParams) (int64, error)
}

type RentalReadStore struct {
	queries RentalViewQueries
	db      sqlc.DBTX
}

func NewRentalReadStore(queries *sqlc.Queries, db sqlc.DBTX) *RentalReadStore {
	return &RentalReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RentalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	row, err := r.queries.GetRental(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental by ID", err)
	}
	return rowToRentalView(row)
}

func (r *RentalReadStore) FindDetailByID(ctx context.Context, id uuid.UUID) (*queries.RentalDetailView, error) {
	row, err := r.queries.GetRentalDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental detail", err)
	}

	fuelStart, err := pgconv.Float64PtrFromNumeric(row.FuelLevelStart)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid fuel level", err)
	}
	fuelEnd, err := pgconv.Float64PtrFromNumeric(row.FuelLevelEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid fuel level", err)
	}

	return &queries.RentalDetailView{
		RentalView: queries.RentalView{
			ID:                   row.ID,
			CustomerID:           row.CustomerID,
			VehicleID:            row.VehicleID,
			EmployeeID:           pgconv.UUIDPtrFromPgtype(row.EmployeeID),
			PickupLocationID:     row.PickupLocationID,
			ReturnLocationID:     row.ReturnLocationID,
			StartsAt:             pgconv.TimeFromPgtype(row.StartsAt),
			EndsAt:               pgconv.TimeFromPgtype(row.EndsAt),
			ActualReturnAt:       pgconv.TimePtrFromPgtype(row.ActualReturnAt),
			DailyRateCents:       row.DailyRateCents,
			TotalAmountCents:     row.TotalAmountCents,
			SecurityDepositCents: row.SecurityDepositCents,
			MileageStart:         pgconv.Int32PtrFromPgtype(row.MileageStart),
			MileageEnd:           pgconv.Int32PtrFromPgtype(row.MileageEnd),
			FuelLevelStart:       fuelStart,
			FuelLevelEnd:         fuelEnd,
			Status:               row.Status,
			DiscountCents:        row.DiscountCents,
			LateFeeCents:         row.LateFeeCents,
			DamageFeeCents:       row.DamageFeeCents,
			CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
		},
		CustomerName:       row.CustomerFirstName + " " + row.CustomerLastName,
		VehicleLabel:       row.VehicleMake + " " + row.VehicleModel,
		LicensePlate:       row.VehicleLicensePlate,
		PickupLocationName: row.PickupLocationName,
		ReturnLocationName: row.ReturnLocationName,
	}, nil
}

func (r *RentalReadStore) List(ctx context.Context, limit, offset int32) ([]*queries.RentalView, error) {
	rows, err := r.queries.ListRentals(ctx, r.db, sqlc.ListRentalsParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals", err)
	}
	return rowsToRentalViews(rows)
}

func (r *RentalReadStore) ListActive(ctx context.Context, limit, offset int32) ([]*queries.RentalView, error) {
	rows, err := r.queries.ListActiveRentals(ctx, r.db, sqlc.ListActiveRentalsParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active rentals", err)
	}
	return rowsToRentalViews(rows)
}

func (r *RentalReadStore) ListOverdue(ctx context.Context, now time.Time) ([]*queries.RentalView, error) {
	rows, err := r.queries.ListOverdueRentals(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue rentals", err)
	}
	return rowsToRentalViews(rows)
}

func (r *RentalReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*queries.RentalView, error) {
	rows, err := r.queries.ListRentalsByCustomer(ctx, r.db, sqlc.ListRentalsByCustomerParams{
		CustomerID: customerID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals by customer", err)
	}
	return rowsToRentalViews(rows)
}

func (r *RentalReadStore) Filter(ctx context.Context, filter queries.RentalFilter) ([]*queries.RentalView, error) {
	rows, err := r.queries.FilterRentals(ctx, r.db, sqlc.FilterRentalsParams{
		Limit:            filter.Limit,
		Offset:           filter.Offset,
		CustomerID:       pgconv.UUIDPtrToPgtype(filter.CustomerID),
		VehicleID:        pgconv.UUIDPtrToPgtype(filter.VehicleID),
		Status:           pgconv.StringPtrToPgtype(filter.Status),
		StartsFrom:       pgconv.DatePtrToPgtype(filter.StartsFrom),
		StartsTo:         pgconv.DatePtrToPgtype(filter.StartsTo),
		PickupLocationID: pgconv.UUIDPtrToPgtype(filter.PickupLocationID),
		ReturnLocationID: pgconv.UUIDPtrToPgtype(filter.ReturnLocationID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to filter rentals", err)
	}
	return rowsToRentalViews(rows)
}

func (r *RentalReadStore) RevenueBetween(ctx context.Context, from, to time.Time) (int64, error) {
	total, err := r.queries.RentalRevenueBetween(ctx, r.db, sqlc.RentalRevenueBetweenParams{
		FromDate: pgconv.DateToPgtype(from),
		ToDate:   pgconv.DateToPgtype(to),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to compute rental revenue", err)
	}
	return total, nil
}

func rowsToRentalViews(rows []sqlc.Rentals) ([]*queries.RentalView, error) {
	result := make([]*queries.RentalView, len(rows))
	for i, row := range rows {
		view, err := rowToRentalView(row)
		if err != nil {
			return nil, err
		}
		result[i] = view
	}
	return result, nil
}

func rowToRentalView(row sqlc.Rentals) (*queries.RentalView, error) {
	fuelStart, err := pgconv.Float64PtrFromNumeric(row.FuelLevelStart)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid fuel level", err)
	}
	fuelEnd, err := pgconv.Float64PtrFromNumeric(row.FuelLevelEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid fuel level", err)
	}

	return &queries.RentalView{
		ID:                   row.ID,
		CustomerID:           row.CustomerID,
		VehicleID:            row.VehicleID,
		EmployeeID:           pgconv.UUIDPtrFromPgtype(row.EmployeeID),
		PickupLocationID:     row.PickupLocationID,
		ReturnLocationID:     row.ReturnLocationID,
		StartsAt:             pgconv.TimeFromPgtype(row.StartsAt),
		EndsAt:               pgconv.TimeFromPgtype(row.EndsAt),
		ActualReturnAt:       pgconv.TimePtrFromPgtype(row.ActualReturnAt),
		DailyRateCents:       row.DailyRateCents,
		TotalAmountCents:     row.TotalAmountCents,
		SecurityDepositCents: row.SecurityDepositCents,
		MileageStart:         pgconv.Int32PtrFromPgtype(row.MileageStart),
		MileageEnd:           pgconv.Int32PtrFromPgtype(row.MileageEnd),
		FuelLevelStart:       fuelStart,
		FuelLevelEnd:         fuelEnd,
		Status:               row.Status,
		DiscountCents:        row.DiscountCents,
		LateFeeCents:         row.LateFeeCents,
		DamageFeeCents:       row.DamageFeeCents,
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
