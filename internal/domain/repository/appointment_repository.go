package repository

import (
	"context"

	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
)

// AppointmentRepository puerto de persistencia para Appointment.
type AppointmentRepository interface {
	// Create persiste la cita y asigna appointment.ID.
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	List(ctx context.Context) ([]*entity.Appointment, error)
	// Update devuelve false si ninguna cita coincidió con id.
	Update(ctx context.Context, id string, patch entity.AppointmentPatch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	// CountByState agrupa las citas por estado.
	CountByState(ctx context.Context) (map[entity.AppointmentState]int64, error)
	// TopServices agrupa por nombre de servicio y devuelve los limit más usados.
	TopServices(ctx context.Context, limit int) ([]entity.ServiceUsage, error)
}
