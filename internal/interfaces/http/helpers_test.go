package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Peluqueria-api/internal/application/appointment"
	"github.com/jhoicas/Peluqueria-api/internal/application/auth"
	"github.com/jhoicas/Peluqueria-api/internal/application/dto"
	"github.com/jhoicas/Peluqueria-api/internal/application/usecase"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
	"github.com/jhoicas/Peluqueria-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Peluqueria-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Peluqueria-api/pkg/jwt"
	"github.com/jhoicas/Peluqueria-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testJWTSecret = "test-secret-key-for-unit-tests"

type testApp struct {
	app     *fiber.App
	store   *memory.Store
	tokens  *pkgjwt.Service
	metrics *apphttp.Metrics
}

type testOptions struct {
	limiter *apphttp.RateLimiter
}

// buildTestApp arma la API completa sobre el almacén en memoria.
func buildTestApp(t *testing.T, opts ...func(*testOptions)) *testApp {
	t.Helper()
	var o testOptions
	for _, opt := range opts {
		opt(&o)
	}
	store := memory.NewStore()
	tokens, err := pkgjwt.NewService(testJWTSecret)
	require.NoError(t, err)
	v := dto.NewValidator()
	resolver := auth.NewIdentityResolver(store.Users, store.Employees)
	metrics := apphttp.NewMetrics("peluqueria_test")

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(resolver, tokens, 7*24*time.Hour),
		CustomerUC:   usecase.NewAccountUseCase(entity.PoolCustomer, resolver, v),
		EmployeeUC:   usecase.NewAccountUseCase(entity.PoolEmployee, resolver, v),
		ServiceUC:    usecase.NewServiceUseCase(store.Services, v),
		Appointments: appointment.NewAggregator(resolver, store.Services, store.Appointments, v),
		Lifecycle:    appointment.NewLifecycle(store.Appointments, v),
		StatsUC:      appointment.NewStatsUseCase(store.Appointments, store.Users, store.Services),
		LoginLimiter: o.limiter,
	})
	return &testApp{app: app, store: store, tokens: tokens, metrics: metrics}
}

// seedAccount inserta una cuenta directamente en el pool.
func (ta *testApp) seedAccount(t *testing.T, pool entity.Pool, email, plain string, active bool) *entity.User {
	t.Helper()
	hash, err := password.Hash(plain)
	require.NoError(t, err)
	u := &entity.User{
		FirstName: "Ana", LastName: "Gómez", Email: email, Phone: "3001234567",
		PasswordHash: hash, Role: pool.Role(), IsActive: active,
	}
	repo := ta.store.Users
	if pool == entity.PoolEmployee {
		repo = ta.store.Employees
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

// bearer emite un token válido para email.
func (ta *testApp) bearer(t *testing.T, email string) string {
	t.Helper()
	tok, err := ta.tokens.Issue(email, time.Hour)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza la petición con cuerpo JSON opcional y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, method, path string, body any, authHeader string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
