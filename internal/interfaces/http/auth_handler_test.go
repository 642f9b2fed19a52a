package http_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Peluqueria-api/internal/application/dto"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Peluqueria-api/internal/interfaces/http"
)

func TestLogin_EmailDesconocido(t *testing.T) {
	ta := buildTestApp(t)
	resp := doRequest(t, ta.app, http.MethodPost, "/auth/login",
		map[string]string{"email": "nouser@x.com", "password": "whatever"}, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Correo incorrecto.", body.Message)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	ta := buildTestApp(t)
	ta.seedAccount(t, entity.PoolCustomer, "a@x.com", "correcta", true)

	resp := doRequest(t, ta.app, http.MethodPost, "/auth/login",
		map[string]string{"email": "a@x.com", "password": "otra"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Contraseña incorrecta.", body.Message)
}

func TestLogin_JSONExitoso(t *testing.T) {
	ta := buildTestApp(t)
	ta.seedAccount(t, entity.PoolCustomer, "a@x.com", "correcta", true)

	resp := doRequest(t, ta.app, http.MethodPost, "/auth/login",
		map[string]string{"email": "a@x.com", "password": "correcta"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[dto.TokenResponse](t, resp)
	assert.Equal(t, "bearer", body.TokenType)

	me := doRequest(t, ta.app, http.MethodGet, "/auth/me", nil, "Bearer "+body.AccessToken)
	defer me.Body.Close()
	assert.Equal(t, http.StatusOK, me.StatusCode)
}

func TestLogin_FormularioOAuth2(t *testing.T) {
	ta := buildTestApp(t)
	ta.seedAccount(t, entity.PoolEmployee, "staff@x.com", "correcta", true)

	form := url.Values{"username": {"staff@x.com"}, "password": {"correcta"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[dto.TokenResponse](t, resp)
	assert.NotEmpty(t, body.AccessToken)
}

func TestLogin_RateLimit(t *testing.T) {
	ta := buildTestApp(t, func(o *testOptions) { o.limiter = apphttp.NewRateLimiter(0.001, 2) })
	in := map[string]string{"email": "nouser@x.com", "password": "x"}

	for i := 0; i < 2; i++ {
		resp := doRequest(t, ta.app, http.MethodPost, "/auth/login", in, "")
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
	resp := doRequest(t, ta.app, http.MethodPost, "/auth/login", in, "")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "RATE_LIMITED", body.Code)
}
