package appointment

import (
	"context"
	"time"

	"github.com/jhoicas/Peluqueria-api/internal/application/dto"
	"github.com/jhoicas/Peluqueria-api/internal/domain"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
	"github.com/jhoicas/Peluqueria-api/internal/domain/repository"
)

// Lifecycle actualizaciones parciales de una cita.
// No valida la legalidad de la transición de estado.
type Lifecycle struct {
	appointments repository.AppointmentRepository
	validate     *dto.Validator
	now          func() time.Time
}

// NewLifecycle construye el componente.
func NewLifecycle(appointments repository.AppointmentRepository, validate *dto.Validator, opts ...Option) *Lifecycle {
	o := applyOptions(opts)
	return &Lifecycle{appointments: appointments, validate: validate, now: o.now}
}

// Update aplica el patch y siempre refresca updated_at. Un patch sin campos solo
// refresca updated_at. Devuelve la cita releída después de escribir.
func (l *Lifecycle) Update(ctx context.Context, id string, in dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := l.validate.Struct(in); err != nil {
		return nil, err
	}
	current, err := l.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrAppointmentNotFound
	}

	patch := entity.AppointmentPatch{UpdatedAt: l.now().UTC()}
	// updated_at nunca retrocede.
	if patch.UpdatedAt.Before(current.UpdatedAt) {
		patch.UpdatedAt = current.UpdatedAt
	}
	if in.State != nil {
		st := entity.AppointmentState(*in.State)
		if !st.Valid() {
			return nil, domain.Validation("state inválido")
		}
		patch.State = &st
	}
	if in.AppointmentDate != nil {
		d := in.AppointmentDate.UTC()
		patch.AppointmentDate = &d
	}

	matched, err := l.appointments.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, domain.ErrAppointmentNotFound
	}
	updated, err := l.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrAppointmentNotFoundAfterUpdate
	}
	return toResponse(updated), nil
}
