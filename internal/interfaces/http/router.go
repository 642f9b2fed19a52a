package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Peluqueria-api/internal/application/appointment"
	"github.com/jhoicas/Peluqueria-api/internal/application/auth"
	"github.com/jhoicas/Peluqueria-api/internal/application/usecase"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CustomerUC   *usecase.AccountUseCase
	EmployeeUC   *usecase.AccountUseCase
	ServiceUC    *usecase.ServiceUseCase
	Appointments *appointment.Aggregator
	Lifecycle    *appointment.Lifecycle
	StatsUC      *appointment.StatsUseCase
	LoginLimiter *RateLimiter // nil = sin límite
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := app.Group("/auth")
	if deps.LoginLimiter != nil {
		authGroup.Post("/login", RateLimit(deps.LoginLimiter), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Get("/me", AuthMiddleware(deps.AuthUC), RequireActive(), authHandler.Me)

	// Clientes y empleados comparten handler; cambia el pool del caso de uso.
	mountAccounts(app.Group("/users"), NewAccountHandler(deps.CustomerUC))
	mountAccounts(app.Group("/employees"), NewAccountHandler(deps.EmployeeUC))

	// Servicios
	services := app.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.GetByID)
	services.Patch("/:id", serviceHandler.Update)

	// Citas. /stats antes de /:id.
	appointments := app.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.Appointments, deps.Lifecycle, deps.StatsUC)
	appointments.Get("/stats",
		AuthMiddleware(deps.AuthUC), RequireActive(), RequireRole(entity.RoleEmployee),
		appointmentHandler.Stats,
	)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Get("/:id", appointmentHandler.GetByID)
	appointments.Patch("/:id", appointmentHandler.Update)
	appointments.Delete("/:id", appointmentHandler.Delete)
}

func mountAccounts(g fiber.Router, h *AccountHandler) {
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
