package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"car-rental-api/internal/infra/readstore"
	"car-rental-api/internal/infra/repository"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Serializable isolation for check-then-insert sequences; serialization
// failures are retried with backoff
func (u *PostgresUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	reservationRepo shared.ReservationRepository
	rentalRepo      shared.RentalRepository
	vehicleRepo     shared.VehicleRepository
	customerRepo    shared.CustomerRepository
	membershipRepo  shared.MembershipRepository
	paymentRepo     shared.PaymentRepository
	employeeRepo    shared.EmployeeRepository
	locationRepo    shared.LocationRepository
	insuranceRepo   shared.InsuranceRepository
	incidentRepo    shared.IncidentRepository
	maintenanceRepo shared.MaintenanceRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q)
	}
	return t.reservationRepo
}

func (t *pgTx) Rentals() shared.RentalRepository {
	if t.rentalRepo == nil {
		t.rentalRepo = repository.NewRentalRepository(t.uow.q)
	}
	return t.rentalRepo
}

func (t *pgTx) Vehicles() shared.VehicleRepository {
	if t.vehicleRepo == nil {
		t.vehicleRepo = repository.NewVehicleRepository(t.uow.q)
	}
	return t.vehicleRepo
}

func (t *pgTx) Customers() shared.CustomerRepository {
	if t.customerRepo == nil {
		t.customerRepo = repository.NewCustomerRepository(t.uow.q)
	}
	return t.customerRepo
}

func (t *pgTx) Memberships() shared.MembershipRepository {
	if t.membershipRepo == nil {
		t.membershipRepo = repository.NewMembershipRepository(t.uow.q)
	}
	return t.membershipRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.uow.q)
	}
	return t.paymentRepo
}

func (t *pgTx) Employees() shared.EmployeeRepository {
	if t.employeeRepo == nil {
		t.employeeRepo = repository.NewEmployeeRepository(t.uow.q)
	}
	return t.employeeRepo
}

func (t *pgTx) Locations() shared.LocationRepository {
	if t.locationRepo == nil {
		t.locationRepo = repository.NewLocationRepository(t.uow.q)
	}
	return t.locationRepo
}

func (t *pgTx) Insurance() shared.InsuranceRepository {
	if t.insuranceRepo == nil {
		t.insuranceRepo = repository.NewInsuranceRepository(t.uow.q)
	}
	return t.insuranceRepo
}

func (t *pgTx) Incidents() shared.IncidentRepository {
	if t.incidentRepo == nil {
		t.incidentRepo = repository.NewIncidentRepository(t.uow.q)
	}
	return t.incidentRepo
}

func (t *pgTx) Maintenance() shared.MaintenanceRepository {
	if t.maintenanceRepo == nil {
		t.maintenanceRepo = repository.NewMaintenanceRepository(t.uow.q)
	}
	return t.maintenanceRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	vehicleStore     *readstore.VehicleReadStore
	reservationStore *readstore.ReservationReadStore
	rentalStore      *readstore.RentalReadStore
	insuranceStore   *readstore.InsuranceReadStore
	employeeStore    *readstore.EmployeeReadStore
}

func (r *commandReads) VehicleByID(ctx context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	if r.vehicleStore == nil {
		r.vehicleStore = readstore.NewVehicleReadStore(r.uow.q, r.dbtx)
	}

	vehicle, err := r.vehicleStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.VehicleSnapshot{
		ID:             vehicle.ID,
		DailyRateCents: vehicle.DailyRateCents,
		Availability:   vehicle.Availability,
		Mileage:        vehicle.Mileage,
	}
	return snapshot, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}

	res, err := r.reservationStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.ReservationSnapshot{
		ID:               res.ID,
		CustomerID:       res.CustomerID,
		VehicleID:        res.VehicleID,
		PickupLocationID: res.PickupLocationID,
		ReturnLocationID: res.ReturnLocationID,
		StartsAt:         res.StartsAt,
		EndsAt:           res.EndsAt,
		Status:           res.Status,
	}
	return snapshot, nil
}

func (r *commandReads) RentalByID(ctx context.Context, id uuid.UUID) (*shared.RentalSnapshot, error) {
	if r.rentalStore == nil {
		r.rentalStore = readstore.NewRentalReadStore(r.uow.q, r.dbtx)
	}

	ren, err := r.rentalStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.RentalSnapshot{
		ID:             ren.ID,
		CustomerID:     ren.CustomerID,
		VehicleID:      ren.VehicleID,
		StartsAt:       ren.StartsAt,
		EndsAt:         ren.EndsAt,
		Status:         ren.Status,
		DailyRateCents: ren.DailyRateCents,
	}
	return snapshot, nil
}

func (r *commandReads) InsurancePlanByID(ctx context.Context, id uuid.UUID) (*shared.InsurancePlanSnapshot, error) {
	if r.insuranceStore == nil {
		r.insuranceStore = readstore.NewInsuranceReadStore(r.uow.q, r.dbtx)
	}

	plan, err := r.insuranceStore.FindPlanByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.InsurancePlanSnapshot{
		ID:             plan.ID,
		DailyCostCents: plan.DailyCostCents,
		IsActive:       plan.IsActive,
	}
	return snapshot, nil
}

func (r *commandReads) EmployeeByEmail(ctx context.Context, email string) (*shared.EmployeeSnapshot, error) {
	if r.employeeStore == nil {
		r.employeeStore = readstore.NewEmployeeReadStore(r.uow.q, r.dbtx)
	}

	emp, err := r.employeeStore.FindByEmailWithHash(ctx, email)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.EmployeeSnapshot{
		ID:           emp.ID,
		Email:        emp.Email,
		Role:         emp.Role,
		PasswordHash: emp.PasswordHash,
		IsActive:     emp.IsActive,
	}
	return snapshot, nil
}
