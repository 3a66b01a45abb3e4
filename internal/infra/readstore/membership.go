package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type MembershipViewQueries interface {
	GetMembershipProfileByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) (sqlc.MembershipProfiles, error)
}

type MembershipReadStore struct {
	queries MembershipViewQueries
	db      sqlc.DBTX
}

func NewMembershipReadStore(queries *sqlc.Queries, db sqlc.DBTX) *MembershipReadStore {
	return &MembershipReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MembershipReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*queries.MembershipProfileView, error) {
	row, err := r.queries.GetMembershipProfileByCustomer(ctx, r.db, customerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("membership profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find membership profile", err)
	}
	return rowToMembershipProfileView(row), nil
}
