package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Peluqueria-api/internal/domain"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
)

// ServiceRepo servicios en memoria. El nombre es único.
type ServiceRepo struct {
	c *collection[entity.Service]
}

func NewServiceRepository() *ServiceRepo {
	return &ServiceRepo{c: newCollection[entity.Service]()}
}

func (r *ServiceRepo) Create(_ context.Context, service *entity.Service) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	for _, s := range r.c.items {
		if s.Name == service.Name {
			return domain.ErrServiceNameExists
		}
	}
	if service.ID == "" {
		service.ID = newID()
	}
	r.c.insert(service.ID, cloneService(service))
	return nil
}

func (r *ServiceRepo) GetByID(_ context.Context, id string) (*entity.Service, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	if s, ok := r.c.items[id]; ok {
		return cloneService(s), nil
	}
	return nil, nil
}

func (r *ServiceRepo) GetByName(_ context.Context, name string) (*entity.Service, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	for _, s := range r.c.items {
		if s.Name == name {
			return cloneService(s), nil
		}
	}
	return nil, nil
}

func (r *ServiceRepo) List(_ context.Context) ([]*entity.Service, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	list := make([]*entity.Service, 0, len(r.c.items))
	r.c.each(func(s *entity.Service) { list = append(list, cloneService(s)) })
	return list, nil
}

func (r *ServiceRepo) Update(_ context.Context, id string, patch entity.ServicePatch, updatedAt time.Time) (*entity.Service, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	s, ok := r.c.items[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		for oid, o := range r.c.items {
			if oid != id && o.Name == *patch.Name {
				return nil, domain.ErrServiceNameExists
			}
		}
	}
	patch.Apply(s)
	s.UpdatedAt = updatedAt
	return cloneService(s), nil
}

func (r *ServiceRepo) Count(_ context.Context) (int64, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	return int64(len(r.c.items)), nil
}

func cloneService(s *entity.Service) *entity.Service {
	cp := *s
	if s.Description != nil {
		d := *s.Description
		cp.Description = &d
	}
	return &cp
}
