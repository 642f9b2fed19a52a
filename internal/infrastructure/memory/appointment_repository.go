package memory

import (
	"context"

	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
)

// AppointmentRepo citas en memoria.
type AppointmentRepo struct {
	c *collection[entity.Appointment]
}

func NewAppointmentRepository() *AppointmentRepo {
	return &AppointmentRepo{c: newCollection[entity.Appointment]()}
}

func (r *AppointmentRepo) Create(_ context.Context, a *entity.Appointment) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	if a.ID == "" {
		a.ID = newID()
	}
	r.c.insert(a.ID, cloneAppointment(a))
	return nil
}

// Put inserta una cita tal cual, sin pasar por el agregador (datos heredados en tests).
func (r *AppointmentRepo) Put(a *entity.Appointment) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	if a.ID == "" {
		a.ID = newID()
	}
	r.c.insert(a.ID, cloneAppointment(a))
}

func (r *AppointmentRepo) GetByID(_ context.Context, id string) (*entity.Appointment, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	if a, ok := r.c.items[id]; ok {
		return cloneAppointment(a), nil
	}
	return nil, nil
}

func (r *AppointmentRepo) List(_ context.Context) ([]*entity.Appointment, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	list := make([]*entity.Appointment, 0, len(r.c.items))
	r.c.each(func(a *entity.Appointment) { list = append(list, cloneAppointment(a)) })
	return list, nil
}

func (r *AppointmentRepo) Update(_ context.Context, id string, patch entity.AppointmentPatch) (bool, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	a, ok := r.c.items[id]
	if !ok {
		return false, nil
	}
	patch.Apply(a)
	return true, nil
}

func (r *AppointmentRepo) Delete(_ context.Context, id string) (bool, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return r.c.remove(id), nil
}

func (r *AppointmentRepo) CountByState(_ context.Context) (map[entity.AppointmentState]int64, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	out := make(map[entity.AppointmentState]int64)
	for _, a := range r.c.items {
		out[a.State]++
	}
	return out, nil
}

func (r *AppointmentRepo) TopServices(_ context.Context, limit int) ([]entity.ServiceUsage, error) {
	r.c.mu.RLock()
	counts := make(map[string]int64)
	for _, a := range r.c.items {
		for _, n := range a.ServiceNames {
			counts[n]++
		}
	}
	r.c.mu.RUnlock()

	list := make([]entity.ServiceUsage, 0, len(counts))
	for name, n := range counts {
		list = append(list, entity.ServiceUsage{Name: name, Count: n})
	}
	sortUsage(list)
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func cloneAppointment(a *entity.Appointment) *entity.Appointment {
	cp := *a
	cp.ServiceIDs = append([]string(nil), a.ServiceIDs...)
	if a.ServiceNames != nil {
		cp.ServiceNames = append([]string{}, a.ServiceNames...)
	}
	return &cp
}
