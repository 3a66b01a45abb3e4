package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"car-rental-api/internal/domain/employee"
	"car-rental-api/internal/handler/api"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Customer    *api.CustomerHandler
	Vehicle     *api.VehicleHandler
	Reservation *api.ReservationHandler
	Rental      *api.RentalHandler
	Employee    *api.EmployeeHandler
	Location    *api.LocationHandler
	Payment     *api.PaymentHandler
	Insurance   *api.InsuranceHandler
	Incident    *api.IncidentHandler
	Maintenance *api.MaintenanceHandler
	Membership  *api.MembershipHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireRoleAtLeast(employee.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		customers := apiGroup.Group("/customers")
		{
			addRoutes(customers, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Customer.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
				{Method: http.MethodGet, Path: "/top", Handler: h.Customer.Top},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Customer.Update, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Customer.Delete, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: h.Reservation.ListByCustomer},
				{Method: http.MethodGet, Path: "/:id/rentals", Handler: h.Rental.ListByCustomer},
				{Method: http.MethodGet, Path: "/:id/membership", Handler: h.Membership.Get},
				{Method: http.MethodPost, Path: "/:id/membership", Handler: h.Membership.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/:id/membership/points", Handler: h.Membership.AwardPoints, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/:id/membership/spending", Handler: h.Membership.RecordSpending, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		vehicles := apiGroup.Group("/vehicles")
		{
			addRoutes(vehicles, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Vehicle.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "", Handler: h.Vehicle.List},
				{Method: http.MethodGet, Path: "/available", Handler: h.Vehicle.ListAvailable},
				{Method: http.MethodGet, Path: "/maintenance-due", Handler: h.Vehicle.DueForMaintenance},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Vehicle.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Vehicle.Update, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPatch, Path: "/:id/availability", Handler: h.Vehicle.SetAvailability, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/:id/maintenance", Handler: h.Vehicle.MaintenanceHistory},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/active", Handler: h.Reservation.ListActive},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Update},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Reservation.Confirm},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodPost, Path: "/:id/convert", Handler: h.Reservation.Convert, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		rentals := apiGroup.Group("/rentals")
		{
			addRoutes(rentals, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Rental.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "", Handler: h.Rental.List},
				{Method: http.MethodGet, Path: "/active", Handler: h.Rental.ListActive},
				{Method: http.MethodGet, Path: "/overdue", Handler: h.Rental.ListOverdue},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Rental.Get},
				{Method: http.MethodPost, Path: "/:id/return", Handler: h.Rental.Return, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Rental.Cancel, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/:id/payments", Handler: h.Payment.ListByRental, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/:id/insurance", Handler: h.Insurance.ListByRental},
				{Method: http.MethodPost, Path: "/:id/insurance", Handler: h.Insurance.AttachToRental, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/:id/incidents", Handler: h.Incident.ListByRental, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		employees := apiGroup.Group("/employees")
		employees.Use(requireAuth)
		{
			addRoutes(employees, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Employee.Create, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodGet, Path: "", Handler: h.Employee.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Employee.Get},
				{Method: http.MethodGet, Path: "/:id/maintenance-schedule", Handler: h.Maintenance.MechanicSchedule},
			})
		}

		locations := apiGroup.Group("/locations")
		{
			addRoutes(locations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Location.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "", Handler: h.Location.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Location.Get},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(requireAuth)
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Payment.Record},
				{Method: http.MethodGet, Path: "/failed", Handler: h.Payment.ListFailed},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Payment.Get},
			})
		}

		insurancePlans := apiGroup.Group("/insurance-plans")
		{
			addRoutes(insurancePlans, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Insurance.CreatePlan, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "", Handler: h.Insurance.ListPlans},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Insurance.GetPlan},
			})
		}

		incidents := apiGroup.Group("/incidents")
		incidents.Use(requireAuth)
		{
			addRoutes(incidents, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Incident.Report},
				{Method: http.MethodGet, Path: "", Handler: h.Incident.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Incident.Get},
			})
		}

		maintenance := apiGroup.Group("/maintenance")
		maintenance.Use(requireAuth)
		{
			addRoutes(maintenance, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Maintenance.Schedule},
				{Method: http.MethodGet, Path: "/due", Handler: h.Maintenance.ListDue},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Maintenance.Get},
			})
		}

		reports := apiGroup.Group("/reports")
		reports.Use(requireAuth)
		{
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/revenue", Handler: h.Rental.RevenueReport},
				{Method: http.MethodGet, Path: "/payments", Handler: h.Payment.Report},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
