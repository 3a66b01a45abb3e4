package components

import (
	"car-rental-api/internal/handler"
	"car-rental-api/internal/handler/api"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCustomerHandler,
		api.NewVehicleHandler,
		api.NewReservationHandler,
		api.NewRentalHandler,
		api.NewEmployeeHandler,
		api.NewLocationHandler,
		api.NewPaymentHandler,
		api.NewInsuranceHandler,
		api.NewIncidentHandler,
		api.NewMaintenanceHandler,
		api.NewMembershipHandler,
		NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthMiddleware(jwtService *jwt.Service) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(jwtService)
}

func NewHandlers(
	auth *api.AuthHandler,
	customer *api.CustomerHandler,
	vehicle *api.VehicleHandler,
	reservation *api.ReservationHandler,
	rental *api.RentalHandler,
	employee *api.EmployeeHandler,
	location *api.LocationHandler,
	payment *api.PaymentHandler,
	insurance *api.InsuranceHandler,
	incident *api.IncidentHandler,
	maintenance *api.MaintenanceHandler,
	membership *api.MembershipHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Customer:    customer,
		Vehicle:     vehicle,
		Reservation: reservation,
		Rental:      rental,
		Employee:    employee,
		Location:    location,
		Payment:     payment,
		Insurance:   insurance,
		Incident:    incident,
		Maintenance: maintenance,
		Membership:  membership,
	}
}
