package components

import (
	"car-rental-api/internal/infra/readstore"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/infra/uow"
	"car-rental-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerViewRepo)),
		),
		fx.Annotate(
			readstore.NewVehicleReadStore,
			fx.As(new(queries.VehicleViewRepo)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			readstore.NewRentalReadStore,
			fx.As(new(queries.RentalViewRepo)),
		),
		fx.Annotate(
			readstore.NewEmployeeReadStore,
			fx.As(new(queries.EmployeeViewRepo)),
		),
		fx.Annotate(
			readstore.NewLocationReadStore,
			fx.As(new(queries.LocationViewRepo)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentViewRepo)),
		),
		fx.Annotate(
			readstore.NewInsuranceReadStore,
			fx.As(new(queries.InsuranceViewRepo)),
		),
		fx.Annotate(
			readstore.NewIncidentReadStore,
			fx.As(new(queries.IncidentViewRepo)),
		),
		fx.Annotate(
			readstore.NewMaintenanceReadStore,
			fx.As(new(queries.MaintenanceViewRepo)),
		),
		fx.Annotate(
			readstore.NewMembershipReadStore,
			fx.As(new(queries.MembershipViewRepo)),
		),
	),
)

// Write-side repositories are constructed inside the unit of work.
var writeModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
