package dto

import "time"

// CreateAppointmentRequest reserva de una cita. appointment_date admite RFC3339 o una fecha sin zona (UTC).
type CreateAppointmentRequest struct {
	UserID          string    `json:"user_id" validate:"required"`
	EmployeeID      string    `json:"employee_id" validate:"required"`
	ServiceIDs      []string  `json:"service_ids" validate:"required,min=1,dive,required"`
	AppointmentDate time.Time `json:"appointment_date" validate:"required"`
}

// UpdateAppointmentRequest campos permitidos en PATCH /appointments/:id.
// El handler rechaza cualquier otro campo del cuerpo.
type UpdateAppointmentRequest struct {
	State           *string    `json:"state" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	AppointmentDate *time.Time `json:"appointment_date"`
}

// AppointmentResponse cita con los datos desnormalizados.
type AppointmentResponse struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"user_id"`
	EmployeeID           string    `json:"employee_id"`
	ServiceIDs           []string  `json:"service_ids"`
	AppointmentDate      time.Time `json:"appointment_date"`
	AppointmentDateLabel string    `json:"appointment_date_label"`
	UserName             string    `json:"user_name"`
	EmployeeName         string    `json:"employee_name"`
	ServiceNames         []string  `json:"service_names"`
	TotalCost            int64     `json:"total_cost"`
	State                string    `json:"state"`
	CreatedAt            time.Time `json:"created_at"`
	CreatedAtLabel       string    `json:"created_at_label"`
	UpdatedAt            time.Time `json:"updated_at"`
	UpdatedAtLabel       string    `json:"updated_at_label"`
}

// AppointmentStatsResponse salida de GET /appointments/stats.
type AppointmentStatsResponse struct {
	TotalAppointments int64              `json:"total_appointments"`
	ByState           map[string]int64   `json:"by_state"`
	TopServices       []ServiceUsageItem `json:"top_services"`
	TotalCustomers    int64              `json:"total_customers"`
	TotalServices     int64              `json:"total_services"`
}

// ServiceUsageItem servicio y cuántas citas lo incluyen.
type ServiceUsageItem struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
