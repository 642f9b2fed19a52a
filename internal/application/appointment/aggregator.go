// Package appointment reserva, consulta y actualiza citas con los nombres y el costo
// copiados desde clientes, empleados y servicios al momento de crearlas.
package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Peluqueria-api/internal/application/auth"
	"github.com/jhoicas/Peluqueria-api/internal/application/dto"
	"github.com/jhoicas/Peluqueria-api/internal/domain"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
	"github.com/jhoicas/Peluqueria-api/internal/domain/repository"
	"github.com/jhoicas/Peluqueria-api/pkg/logger"
)

// Option configura Aggregator y Lifecycle.
type Option func(*options)

type options struct {
	now func() time.Time
	log *logger.Logger
}

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLogger registra las resoluciones degradadas.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.log = log }
}

func applyOptions(opts []Option) options {
	o := options{now: time.Now, log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Aggregator crea, lista, obtiene y elimina citas.
type Aggregator struct {
	identities   *auth.IdentityResolver
	services     repository.ServiceRepository
	appointments repository.AppointmentRepository
	validate     *dto.Validator
	now          func() time.Time
	log          *logger.Logger
}

// NewAggregator construye el agregador.
func NewAggregator(
	identities *auth.IdentityResolver,
	services repository.ServiceRepository,
	appointments repository.AppointmentRepository,
	validate *dto.Validator,
	opts ...Option,
) *Aggregator {
	o := applyOptions(opts)
	return &Aggregator{
		identities:   identities,
		services:     services,
		appointments: appointments,
		validate:     validate,
		now:          o.now,
		log:          o.log,
	}
}

// Create reserva la cita. Cliente o empleado inexistente deja el nombre vacío;
// los servicios inexistentes se omiten de service_names y de total_cost.
func (a *Aggregator) Create(ctx context.Context, in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := a.validate.Struct(in); err != nil {
		return nil, err
	}
	names, total := a.resolveServices(ctx, in.ServiceIDs)
	now := a.now().UTC()
	appt := &entity.Appointment{
		UserID:          in.UserID,
		EmployeeID:      in.EmployeeID,
		ServiceIDs:      append([]string(nil), in.ServiceIDs...),
		AppointmentDate: in.AppointmentDate.UTC(),
		UserName:        a.resolveName(ctx, entity.PoolCustomer, in.UserID, EmptyOnMissing),
		EmployeeName:    a.resolveName(ctx, entity.PoolEmployee, in.EmployeeID, EmptyOnMissing),
		ServiceNames:    names,
		TotalCost:       total,
		State:           entity.StatePending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := a.appointments.Create(ctx, appt); err != nil {
		return nil, err
	}
	return toResponse(appt), nil
}

// List devuelve todas las citas. Las que no tienen nombres guardados se completan
// al vuelo con PlaceholderOnMissing; el registro almacenado no se modifica.
func (a *Aggregator) List(ctx context.Context) ([]*dto.AppointmentResponse, error) {
	list, err := a.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AppointmentResponse, 0, len(list))
	for _, appt := range list {
		a.repair(ctx, appt)
		out = append(out, toResponse(appt))
	}
	return out, nil
}

func (a *Aggregator) Get(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	appt, err := a.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, domain.ErrAppointmentNotFound
	}
	return toResponse(appt), nil
}

// Delete borrado definitivo; ErrAppointmentNotFound si no se eliminó nada.
func (a *Aggregator) Delete(ctx context.Context, id string) error {
	ok, err := a.appointments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (a *Aggregator) repair(ctx context.Context, appt *entity.Appointment) {
	if appt.UserName == "" {
		appt.UserName = a.resolveName(ctx, entity.PoolCustomer, appt.UserID, PlaceholderOnMissing)
	}
	if appt.EmployeeName == "" {
		appt.EmployeeName = a.resolveName(ctx, entity.PoolEmployee, appt.EmployeeID, PlaceholderOnMissing)
	}
	if len(appt.ServiceNames) == 0 && len(appt.ServiceIDs) > 0 {
		appt.ServiceNames, _ = a.resolveServices(ctx, appt.ServiceIDs)
	}
}

func (a *Aggregator) resolveName(ctx context.Context, pool entity.Pool, id string, policy MissingPolicy) string {
	u, err := a.identities.FindByField(ctx, pool, entity.FieldID, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			a.log.Warn().Err(err).Str("pool", pool.String()).Str("id", id).
				Str("policy", policy.String()).Msg("no se pudo resolver la cuenta de la cita")
		}
		return policy.Fallback(pool)
	}
	return u.FullName()
}

func (a *Aggregator) resolveServices(ctx context.Context, ids []string) ([]string, int64) {
	names := make([]string, 0, len(ids))
	var total int64
	for _, id := range ids {
		s, err := a.services.GetByID(ctx, id)
		if err != nil {
			a.log.Warn().Err(err).Str("service_id", id).Msg("no se pudo resolver el servicio de la cita")
			continue
		}
		if s == nil {
			continue
		}
		names = append(names, s.Name)
		total += s.Price
	}
	return names, total
}
