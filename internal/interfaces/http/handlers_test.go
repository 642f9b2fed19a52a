package http_test

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Peluqueria-api/internal/application/dto"
)

func createAccount(t *testing.T, ta *testApp, path, email string) dto.AccountResponse {
	t.Helper()
	resp := doRequest(t, ta.app, http.MethodPost, path, map[string]string{
		"first_name": "Ana", "last_name": "Gómez", "email": email,
		"phone": "3001234567", "password": "secreta123",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.AccountResponse](t, resp)
}

func createService(t *testing.T, ta *testApp, name string, price int64) dto.ServiceResponse {
	t.Helper()
	resp := doRequest(t, ta.app, http.MethodPost, "/services", map[string]any{
		"name": name, "duration_minutes": 30, "price": price, "img_path": "/img/x.png",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.ServiceResponse](t, resp)
}

func TestUsers_CRUD(t *testing.T) {
	ta := buildTestApp(t)
	u := createAccount(t, ta, "/users", "a@x.com")
	assert.Equal(t, "customer", u.Role)

	dup := doRequest(t, ta.app, http.MethodPost, "/employees", map[string]string{
		"first_name": "Ana", "last_name": "Gómez", "email": "a@x.com",
		"phone": "3001234567", "password": "secreta123",
	}, "")
	dup.Body.Close()
	assert.Equal(t, http.StatusConflict, dup.StatusCode, "email único entre pools")

	notInPool := doRequest(t, ta.app, http.MethodGet, "/employees/"+u.ID, nil, "")
	notInPool.Body.Close()
	assert.Equal(t, http.StatusNotFound, notInPool.StatusCode)

	empty := doRequest(t, ta.app, http.MethodPatch, "/users/"+u.ID, map[string]any{}, "")
	empty.Body.Close()
	assert.Equal(t, http.StatusBadRequest, empty.StatusCode)

	injected := doRequest(t, ta.app, http.MethodPatch, "/users/"+u.ID, map[string]any{"role": "employee"}, "")
	injected.Body.Close()
	assert.Equal(t, http.StatusBadRequest, injected.StatusCode)

	patched := doRequest(t, ta.app, http.MethodPatch, "/users/"+u.ID, map[string]any{"last_name": "Ruiz"}, "")
	require.Equal(t, http.StatusOK, patched.StatusCode)
	assert.Equal(t, "Ruiz", decode[dto.AccountResponse](t, patched).LastName)

	del := doRequest(t, ta.app, http.MethodDelete, "/users/"+u.ID, nil, "")
	del.Body.Close()
	assert.Equal(t, http.StatusNoContent, del.StatusCode)

	again := doRequest(t, ta.app, http.MethodDelete, "/users/"+u.ID, nil, "")
	again.Body.Close()
	assert.Equal(t, http.StatusNotFound, again.StatusCode)
}

func TestUsers_ValidacionDeFormato(t *testing.T) {
	ta := buildTestApp(t)
	resp := doRequest(t, ta.app, http.MethodPost, "/users", map[string]string{
		"first_name": "Ana", "last_name": "Gómez", "email": "a@x.com",
		"phone": "12345", "password": "secreta123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestUsers_PasswordDemasiadoLarga(t *testing.T) {
	ta := buildTestApp(t)
	resp := doRequest(t, ta.app, http.MethodPost, "/users", map[string]string{
		"first_name": "Ana", "last_name": "Gómez", "email": "a@x.com",
		"phone": "3001234567", "password": strings.Repeat("a", 80),
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Message, "72 bytes")

	list := doRequest(t, ta.app, http.MethodGet, "/users", nil, "")
	require.Equal(t, http.StatusOK, list.StatusCode)
	assert.Empty(t, decode[[]dto.AccountResponse](t, list))
}

func TestAppointments_FechaSinZonaSeTomaComoUTC(t *testing.T) {
	ta := buildTestApp(t)
	s := createService(t, ta, "Corte", 100)

	resp := doRequest(t, ta.app, http.MethodPost, "/appointments", map[string]any{
		"user_id": "u", "employee_id": "e", "service_ids": []string{s.ID},
		"appointment_date": "2024-05-10T15:00:00",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.AppointmentResponse](t, resp)
	assert.True(t, created.AppointmentDate.Equal(time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)))

	upd := doRequest(t, ta.app, http.MethodPatch, "/appointments/"+created.ID, map[string]any{
		"appointment_date": "2024-05-11T09:30",
	}, "")
	require.Equal(t, http.StatusOK, upd.StatusCode)
	got := decode[dto.AppointmentResponse](t, upd)
	assert.True(t, got.AppointmentDate.Equal(time.Date(2024, 5, 11, 9, 30, 0, 0, time.UTC)))

	bad := doRequest(t, ta.app, http.MethodPost, "/appointments", map[string]any{
		"user_id": "u", "employee_id": "e", "service_ids": []string{s.ID},
		"appointment_date": "mañana",
	}, "")
	bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestServices_NombreDuplicado(t *testing.T) {
	ta := buildTestApp(t)
	createService(t, ta, "Corte", 100)
	resp := doRequest(t, ta.app, http.MethodPost, "/services", map[string]any{
		"name": "Corte", "duration_minutes": 30, "price": 100, "img_path": "/img/x.png",
	}, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAppointments_Flujo(t *testing.T) {
	ta := buildTestApp(t)
	u := createAccount(t, ta, "/users", "a@x.com")
	e := createAccount(t, ta, "/employees", "staff@x.com")
	s := createService(t, ta, "Corte", 100)

	resp := doRequest(t, ta.app, http.MethodPost, "/appointments", map[string]any{
		"user_id": u.ID, "employee_id": e.ID, "service_ids": []string{s.ID},
		"appointment_date": time.Date(2024, 1, 8, 20, 30, 0, 0, time.UTC),
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.AppointmentResponse](t, resp)
	assert.Equal(t, int64(100), created.TotalCost)
	assert.Equal(t, "pending", created.State)
	assert.Equal(t, "Lunes, 8 de ene 3:30pm", created.AppointmentDateLabel)

	bad := doRequest(t, ta.app, http.MethodPatch, "/appointments/"+created.ID, map[string]any{"total_cost": 0}, "")
	bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode, "campo fuera de la lista permitida")

	badState := doRequest(t, ta.app, http.MethodPatch, "/appointments/"+created.ID, map[string]any{"state": "archivada"}, "")
	badState.Body.Close()
	assert.Equal(t, http.StatusBadRequest, badState.StatusCode)

	upd := doRequest(t, ta.app, http.MethodPatch, "/appointments/"+created.ID, map[string]any{"state": "completed"}, "")
	require.Equal(t, http.StatusOK, upd.StatusCode)
	assert.Equal(t, "completed", decode[dto.AppointmentResponse](t, upd).State)

	got := doRequest(t, ta.app, http.MethodGet, "/appointments/"+created.ID, nil, "")
	require.Equal(t, http.StatusOK, got.StatusCode)
	assert.Equal(t, "completed", decode[dto.AppointmentResponse](t, got).State)

	list := doRequest(t, ta.app, http.MethodGet, "/appointments", nil, "")
	require.Equal(t, http.StatusOK, list.StatusCode)
	assert.Len(t, decode[[]dto.AppointmentResponse](t, list), 1)

	del := doRequest(t, ta.app, http.MethodDelete, "/appointments/"+created.ID, nil, "")
	del.Body.Close()
	assert.Equal(t, http.StatusNoContent, del.StatusCode)

	gone := doRequest(t, ta.app, http.MethodGet, "/appointments/"+created.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, gone.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, gone).Code)

	missing := doRequest(t, ta.app, http.MethodPatch, "/appointments/"+created.ID, map[string]any{"state": "confirmed"}, "")
	missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestMetrics_Expuestas(t *testing.T) {
	ta := buildTestApp(t)
	doRequest(t, ta.app, http.MethodGet, "/appointments", nil, "").Body.Close()

	resp := doRequest(t, ta.app, http.MethodGet, "/metrics", nil, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), "peluqueria_test_http_requests_total")
}

func TestRutaInexistente(t *testing.T) {
	ta := buildTestApp(t)
	resp := doRequest(t, ta.app, http.MethodGet, "/nada", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}
