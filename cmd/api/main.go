package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Peluqueria-api/internal/application/appointment"
	"github.com/jhoicas/Peluqueria-api/internal/application/auth"
	"github.com/jhoicas/Peluqueria-api/internal/application/dto"
	"github.com/jhoicas/Peluqueria-api/internal/application/usecase"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
	"github.com/jhoicas/Peluqueria-api/internal/domain/repository"
	"github.com/jhoicas/Peluqueria-api/internal/infrastructure/memory"
	infmongo "github.com/jhoicas/Peluqueria-api/internal/infrastructure/mongo"
	"github.com/jhoicas/Peluqueria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Peluqueria-api/internal/interfaces/http"
	"github.com/jhoicas/Peluqueria-api/pkg/config"
	"github.com/jhoicas/Peluqueria-api/pkg/jwt"
	"github.com/jhoicas/Peluqueria-api/pkg/logger"
)

// stores repositorios del driver elegido y su cierre.
type stores struct {
	users        repository.AccountRepository
	employees    repository.AccountRepository
	services     repository.ServiceRepository
	appointments repository.AppointmentRepository
	close        func(context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := openStores(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión al almacén de datos")
	}

	tokens, err := jwt.NewService(cfg.JWT.Secret)
	if err != nil {
		log.Fatal().Err(err).Msg("servicio de tokens")
	}

	validate := dto.NewValidator()
	resolver := auth.NewIdentityResolver(st.users, st.employees)
	authUC := auth.NewAuthUseCase(resolver, tokens, cfg.JWT.TTL())
	customerUC := usecase.NewAccountUseCase(entity.PoolCustomer, resolver, validate)
	employeeUC := usecase.NewAccountUseCase(entity.PoolEmployee, resolver, validate)
	serviceUC := usecase.NewServiceUseCase(st.services, validate)
	aggregator := appointment.NewAggregator(resolver, st.services, st.appointments, validate,
		appointment.WithLogger(log.Named("appointments")))
	lifecycle := appointment.NewLifecycle(st.appointments, validate)
	statsUC := appointment.NewStatsUseCase(st.appointments, st.users, st.services)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	metrics := httpRouter.NewMetrics("peluqueria")
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Peluquería API",
		}))
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CustomerUC:   customerUC,
		EmployeeUC:   employeeUC,
		ServiceUC:    serviceUC,
		Appointments: aggregator,
		Lifecycle:    lifecycle,
		StatsUC:      statsUC,
		LoginLimiter: httpRouter.NewRateLimiter(cfg.Limiter.PerSecond, cfg.Limiter.Burst),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := st.close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cierre del almacén de datos")
	}

	log.Info().Msg("aplicación detenida")
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	switch cfg.DB.Driver {
	case config.DriverMongo:
		client, db, err := infmongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		if err := infmongo.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &stores{
			users:        infmongo.NewAccountRepository(db, infmongo.CollUsers),
			employees:    infmongo.NewAccountRepository(db, infmongo.CollEmployees),
			services:     infmongo.NewServiceRepository(db),
			appointments: infmongo.NewAppointmentRepository(db),
			close:        client.Disconnect,
		}, nil

	case config.DriverPostgres:
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			return nil, err
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return &stores{
			users:        postgres.NewAccountRepository(pool, postgres.TableUsers),
			employees:    postgres.NewAccountRepository(pool, postgres.TableEmployees),
			services:     postgres.NewServiceRepository(pool),
			appointments: postgres.NewAppointmentRepository(pool),
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case config.DriverMemory:
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &stores{
			users:        store.Users,
			employees:    store.Employees,
			services:     store.Services,
			appointments: store.Appointments,
			close:        func(context.Context) error { return nil },
		}, nil

	default:
		return nil, fmt.Errorf("driver desconocido %q", cfg.DB.Driver)
	}
}
