package components

import (
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCustomerUseCase,
		commands.NewVehicleUseCase,
		commands.NewReservationUseCase,
		commands.NewRentalUseCase,
		commands.NewEmployeeUseCase,
		commands.NewLocationUseCase,
		commands.NewPaymentUseCase,
		commands.NewInsuranceUseCase,
		commands.NewIncidentUseCase,
		commands.NewMaintenanceUseCase,
		commands.NewMembershipUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCustomerQueries,
		queries.NewVehicleQueries,
		queries.NewReservationQueries,
		queries.NewRentalQueries,
		queries.NewEmployeeQueries,
		queries.NewLocationQueries,
		queries.NewPaymentQueries,
		queries.NewInsuranceQueries,
		queries.NewIncidentQueries,
		queries.NewMaintenanceQueries,
		queries.NewMembershipQueries,
	),
)
