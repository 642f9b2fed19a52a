package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Peluqueria-api/internal/application/dto"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Peluqueria-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware + RequireActive
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	ta := buildTestApp(t)
	resp := doRequest(t, ta.app, http.MethodGet, "/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "UNAUTHORIZED", body.Code)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	ta := buildTestApp(t)
	resp := doRequest(t, ta.app, http.MethodGet, "/auth/me", nil, "Token abc")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenFirmadoConOtroSecreto(t *testing.T) {
	ta := buildTestApp(t)
	ta.seedAccount(t, entity.PoolCustomer, "a@x.com", "p", true)
	other, err := pkgjwt.NewService("otro-secreto")
	require.NoError(t, err)
	tok, err := other.Issue("a@x.com", time.Hour)
	require.NoError(t, err)

	resp := doRequest(t, ta.app, http.MethodGet, "/auth/me", nil, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	ta := buildTestApp(t)
	ta.seedAccount(t, entity.PoolCustomer, "a@x.com", "p", true)
	past, err := pkgjwt.NewService(testJWTSecret, pkgjwt.WithClock(func() time.Time { return time.Now().Add(-time.Hour) }))
	require.NoError(t, err)
	tok, err := past.Issue("a@x.com", time.Minute)
	require.NoError(t, err)

	resp := doRequest(t, ta.app, http.MethodGet, "/auth/me", nil, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// La cuenta del token no existe: 401, nunca 404.
func TestAuthMiddleware_CuentaInexistente(t *testing.T) {
	ta := buildTestApp(t)
	resp := doRequest(t, ta.app, http.MethodGet, "/auth/me", nil, ta.bearer(t, "ghost@x.com"))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.NotContains(t, body.Message, "ghost")
}

func TestAuthMe_Activo(t *testing.T) {
	ta := buildTestApp(t)
	u := ta.seedAccount(t, entity.PoolEmployee, "staff@x.com", "p", true)

	resp := doRequest(t, ta.app, http.MethodGet, "/auth/me", nil, ta.bearer(t, "staff@x.com"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[dto.AccountResponse](t, resp)
	assert.Equal(t, u.ID, body.ID)
	assert.Equal(t, entity.RoleEmployee, body.Role)
}

func TestAuthMe_Inactivo(t *testing.T) {
	ta := buildTestApp(t)
	ta.seedAccount(t, entity.PoolCustomer, "off@x.com", "p", false)

	resp := doRequest(t, ta.app, http.MethodGet, "/auth/me", nil, ta.bearer(t, "off@x.com"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INACTIVE_USER", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole (/appointments/stats)
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_EmpleadoVeEstadisticas(t *testing.T) {
	ta := buildTestApp(t)
	ta.seedAccount(t, entity.PoolEmployee, "staff@x.com", "p", true)

	resp := doRequest(t, ta.app, http.MethodGet, "/appointments/stats", nil, ta.bearer(t, "staff@x.com"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[dto.AppointmentStatsResponse](t, resp)
	assert.Equal(t, int64(0), body.TotalAppointments)
	assert.Len(t, body.ByState, 4)
}

func TestRequireRole_ClienteBloqueado(t *testing.T) {
	ta := buildTestApp(t)
	ta.seedAccount(t, entity.PoolCustomer, "a@x.com", "p", true)

	resp := doRequest(t, ta.app, http.MethodGet, "/appointments/stats", nil, ta.bearer(t, "a@x.com"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "FORBIDDEN", body.Code)
}

func TestRequireRole_SinToken(t *testing.T) {
	ta := buildTestApp(t)
	resp := doRequest(t, ta.app, http.MethodGet, "/appointments/stats", nil, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
