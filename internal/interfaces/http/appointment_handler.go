package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Peluqueria-api/internal/application/appointment"
	"github.com/jhoicas/Peluqueria-api/internal/application/dto"
)

// AppointmentHandler reservas y su ciclo de vida.
type AppointmentHandler struct {
	agg       *appointment.Aggregator
	lifecycle *appointment.Lifecycle
	stats     *appointment.StatsUseCase
}

// NewAppointmentHandler construye el handler.
func NewAppointmentHandler(agg *appointment.Aggregator, lifecycle *appointment.Lifecycle, stats *appointment.StatsUseCase) *AppointmentHandler {
	return &AppointmentHandler{agg: agg, lifecycle: lifecycle, stats: stats}
}

// Create godoc
// @Summary      Reservar cita
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAppointmentRequest  true  "cliente, empleado, servicios y fecha"
// @Success      201   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /appointments [post]
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.agg.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar citas
// @Tags         appointments
// @Produce      json
// @Success      200   {array}  dto.AppointmentResponse
// @Router       /appointments [get]
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	list, err := h.agg.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /appointments/:id
func (h *AppointmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.agg.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar estado o fecha de una cita
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID"
// @Param        body  body  dto.UpdateAppointmentRequest  true  "state y/o appointment_date"
// @Success      200   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /appointments/{id} [patch]
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAppointmentRequest
	if err := decodeStrict(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "solo se permiten los campos state y appointment_date"})
	}
	out, err := h.lifecycle.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /appointments/:id
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.agg.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats godoc
// @Summary      Tablero de citas (solo empleados)
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.AppointmentStatsResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /appointments/stats [get]
func (h *AppointmentHandler) Stats(c *fiber.Ctx) error {
	out, err := h.stats.Get(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
