package entity

import "time"

// AppointmentState estado de una cita.
type AppointmentState string

// Convención: pending → confirmed → completed, o cualquiera → cancelled.
// La transición no se valida al actualizar.
const (
	StatePending   AppointmentState = "pending"
	StateConfirmed AppointmentState = "confirmed"
	StateCompleted AppointmentState = "completed"
	StateCancelled AppointmentState = "cancelled"
)

// AppointmentStates todos los estados, en el orden del ciclo de vida.
var AppointmentStates = []AppointmentState{StatePending, StateConfirmed, StateCompleted, StateCancelled}

// Valid indica si s es uno de los estados conocidos.
func (s AppointmentState) Valid() bool {
	for _, st := range AppointmentStates {
		if s == st {
			return true
		}
	}
	return false
}

// Appointment cita con snapshot desnormalizado de nombres y costo.
// UserName, EmployeeName, ServiceNames y TotalCost se fijan al crear y no
// siguen los cambios posteriores de las entidades referenciadas.
type Appointment struct {
	ID              string
	UserID          string
	EmployeeID      string
	ServiceIDs      []string
	AppointmentDate time.Time
	UserName        string
	EmployeeName    string
	ServiceNames    []string // mismo orden que ServiceIDs, sin los servicios inexistentes
	TotalCost       int64
	State           AppointmentState
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AppointmentPatch campos modificables de una cita. UpdatedAt siempre se escribe.
type AppointmentPatch struct {
	State           *AppointmentState
	AppointmentDate *time.Time
	UpdatedAt       time.Time
}

func (p AppointmentPatch) Apply(a *Appointment) {
	if p.State != nil {
		a.State = *p.State
	}
	if p.AppointmentDate != nil {
		a.AppointmentDate = *p.AppointmentDate
	}
	a.UpdatedAt = p.UpdatedAt
}

// AppointmentStats agregados para el tablero.
type AppointmentStats struct {
	TotalAppointments int64
	ByState           map[AppointmentState]int64
	TopServices       []ServiceUsage
	TotalCustomers    int64
	TotalServices     int64
}

// ServiceUsage número de citas que incluyen un servicio.
type ServiceUsage struct {
	Name  string
	Count int64
}
