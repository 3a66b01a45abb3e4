package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerViewQueries interface {
	GetCustomer(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Customers, error)
	GetCustomerByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Customers, error)
	ListCustomers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCustomersParams) ([]sqlc.Customers, error)
	SearchCustomers(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchCustomersParams) ([]sqlc.Customers, error)
	ListTopCustomersBySpending(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListTopCustomersBySpendingRow, error)
	GetMembershipProfileByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) (sqlc.MembershipProfiles, error)
}

type CustomerReadStore struct {
	queries CustomerViewQueries
	db      sqlc.DBTX
}

func NewCustomerReadStore(queries *sqlc.Queries, db sqlc.DBTX) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row, err := r.queries.GetCustomer(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return rowToCustomerView(row), nil
}

// FindDetailByID returns the customer with its membership profile when one
// exists; a customer without a profile is not an error.
func (r *CustomerReadStore) FindDetailByID(ctx context.Context, id uuid.UUID) (*queries.CustomerDetailView, error) {
	cust, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &queries.CustomerDetailView{CustomerView: *cust}

	profile, err := r.queries.GetMembershipProfileByCustomer(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return detail, nil
		}
		return nil, infra.WrapRepoErr("failed to find membership profile", err)
	}
	detail.Membership = rowToMembershipProfileView(profile)
	return detail, nil
}

func (r *CustomerReadStore) List(ctx context.Context, limit, offset int32) ([]*queries.CustomerView, error) {
	rows, err := r.queries.ListCustomers(ctx, r.db, sqlc.ListCustomersParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	result := make([]*queries.CustomerView, len(rows))
	for i, row := range rows {
		result[i] = rowToCustomerView(row)
	}
	return result, nil
}

func (r *CustomerReadStore) Search(ctx context.Context, term string, limit, offset int32) ([]*queries.CustomerView, error) {
	rows, err := r.queries.SearchCustomers(ctx, r.db, sqlc.SearchCustomersParams{
		Limit:  limit,
		Offset: offset,
		Term:   term,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search customers", err)
	}
	result := make([]*queries.CustomerView, len(rows))
	for i, row := range rows {
		result[i] = rowToCustomerView(row)
	}
	return result, nil
}

func (r *CustomerReadStore) TopBySpending(ctx context.Context, limit int32) ([]*queries.TopCustomerView, error) {
	rows, err := r.queries.ListTopCustomersBySpending(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list top customers", err)
	}
	result := make([]*queries.TopCustomerView, len(rows))
	for i, row := range rows {
		result[i] = &queries.TopCustomerView{
			CustomerView: queries.CustomerView{
				ID:            row.ID,
				FirstName:     row.FirstName,
				LastName:      row.LastName,
				Email:         row.Email,
				Phone:         row.Phone,
				Address:       pgconv.StringPtrFromPgtype(row.Address),
				DriverLicense: row.DriverLicense,
				DateOfBirth:   pgconv.DatePtrFromPgtype(row.DateOfBirth),
				CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
				UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
			},
			LifetimeSpendingCents: row.LifetimeSpendingCents,
			LifetimeRentals:       row.LifetimeRentals,
		}
	}
	return result, nil
}

func rowToCustomerView(row sqlc.Customers) *queries.CustomerView {
	return &queries.CustomerView{
		ID:            row.ID,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		Email:         row.Email,
		Phone:         row.Phone,
		Address:       pgconv.StringPtrFromPgtype(row.Address),
		DriverLicense: row.DriverLicense,
		DateOfBirth:   pgconv.DatePtrFromPgtype(row.DateOfBirth),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func rowToMembershipProfileView(row sqlc.MembershipProfiles) *queries.MembershipProfileView {
	return &queries.MembershipProfileView{
		ID:                    row.ID,
		CustomerID:            row.CustomerID,
		Tier:                  row.Tier,
		PointsBalance:         row.PointsBalance,
		JoinDate:              pgconv.DateFromPgtype(row.JoinDate),
		LastActivityDate:      pgconv.DatePtrFromPgtype(row.LastActivityDate),
		LifetimeRentals:       row.LifetimeRentals,
		LifetimeSpendingCents: row.LifetimeSpendingCents,
	}
}
