package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Peluqueria-api/internal/domain"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
)

// AccountRepo pool de cuentas en memoria. El email es único dentro del pool.
type AccountRepo struct {
	c *collection[entity.User]
}

func NewAccountRepository() *AccountRepo {
	return &AccountRepo{c: newCollection[entity.User]()}
}

func (r *AccountRepo) Create(_ context.Context, user *entity.User) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	for _, u := range r.c.items {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = newID()
	}
	cp := *user
	r.c.insert(user.ID, &cp)
	return nil
}

func (r *AccountRepo) FindByField(_ context.Context, field entity.LookupField, value string) (*entity.User, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	switch field {
	case entity.FieldID:
		if u, ok := r.c.items[value]; ok {
			cp := *u
			return &cp, nil
		}
	case entity.FieldEmail:
		for _, u := range r.c.items {
			if u.Email == value {
				cp := *u
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *AccountRepo) List(_ context.Context) ([]*entity.User, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	list := make([]*entity.User, 0, len(r.c.items))
	r.c.each(func(u *entity.User) {
		cp := *u
		list = append(list, &cp)
	})
	return list, nil
}

func (r *AccountRepo) Update(_ context.Context, id string, patch entity.UserPatch, updatedAt time.Time) (*entity.User, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	u, ok := r.c.items[id]
	if !ok {
		return nil, nil
	}
	if patch.Email != nil {
		for oid, o := range r.c.items {
			if oid != id && o.Email == *patch.Email {
				return nil, domain.ErrEmailAlreadyExists
			}
		}
	}
	patch.Apply(u)
	u.UpdatedAt = updatedAt
	cp := *u
	return &cp, nil
}

func (r *AccountRepo) Delete(_ context.Context, id string) (bool, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return r.c.remove(id), nil
}

func (r *AccountRepo) Count(_ context.Context) (int64, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	return int64(len(r.c.items)), nil
}
