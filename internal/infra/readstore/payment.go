package readstore

import (
	"context"
	"time"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentViewQueries interface {
	GetPayment(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payments, error)
	ListPaymentsByRental(ctx context.Context, db sqlc.DBTX, rentalID uuid.UUID) ([]sqlc.Payments, error)
	ListFailedPayments(ctx context.Context, db sqlc.DBTX) ([]sqlc.Payments, error)
	PaymentsReportBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.PaymentsReportBetweenParams) (sqlc.PaymentsReportBetweenRow, error)
}

type PaymentReadStore struct {
	queries PaymentViewQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries *sqlc.Queries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PaymentView, error) {
	row, err := r.queries.GetPayment(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by ID", err)
	}
	return rowToPaymentView(row), nil
}

func (r *PaymentReadStore) ListByRental(ctx context.Context, rentalID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentsByRental(ctx, r.db, rentalID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments by rental", err)
	}
	return rowsToPaymentViews(rows), nil
}

func (r *PaymentReadStore) ListFailed(ctx context.Context) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListFailedPayments(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list failed payments", err)
	}
	return rowsToPaymentViews(rows), nil
}

func (r *PaymentReadStore) ReportBetween(ctx context.Context, from, to time.Time) (*queries.PaymentsReportView, error) {
	row, err := r.queries.PaymentsReportBetween(ctx, r.db, sqlc.PaymentsReportBetweenParams{
		FromDate: pgconv.DateToPgtype(from),
		ToDate:   pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build payments report", err)
	}
	return &queries.PaymentsReportView{
		FromDate:         from,
		ToDate:           to,
		TotalAmountCents: row.TotalAmountCents,
		PaymentCount:     row.PaymentCount,
	}, nil
}

func rowsToPaymentViews(rows []sqlc.Payments) []*queries.PaymentView {
	result := make([]*queries.PaymentView, len(rows))
	for i, row := range rows {
		result[i] = rowToPaymentView(row)
	}
	return result
}

func rowToPaymentView(row sqlc.Payments) *queries.PaymentView {
	return &queries.PaymentView{
		ID:            row.ID,
		RentalID:      row.RentalID,
		PaidAt:        pgconv.TimeFromPgtype(row.PaidAt),
		AmountCents:   row.AmountCents,
		Method:        row.Method,
		TransactionID: pgconv.StringPtrFromPgtype(row.TransactionID),
		Status:        row.Status,
		Kind:          row.Kind,
	}
}
