package auth

import (
	"context"
	"errors"

	"github.com/jhoicas/Peluqueria-api/internal/domain"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
	"github.com/jhoicas/Peluqueria-api/internal/domain/repository"
)

// IdentityResolver busca cuentas en los pools de clientes y empleados.
type IdentityResolver struct {
	customers repository.AccountRepository
	employees repository.AccountRepository
}

// NewIdentityResolver construye el resolver con un repositorio por pool.
func NewIdentityResolver(customers, employees repository.AccountRepository) *IdentityResolver {
	return &IdentityResolver{customers: customers, employees: employees}
}

// Repository devuelve el repositorio del pool. PoolEither no tiene repositorio propio.
func (r *IdentityResolver) Repository(pool entity.Pool) repository.AccountRepository {
	switch pool {
	case entity.PoolCustomer:
		return r.customers
	case entity.PoolEmployee:
		return r.employees
	default:
		return nil
	}
}

// FindByField resuelve una cuenta por id o email. Con PoolEither se consulta
// primero clientes y luego empleados; gana la primera coincidencia.
// Devuelve domain.ErrUserNotFound si no hay coincidencia en el pool elegido.
func (r *IdentityResolver) FindByField(ctx context.Context, pool entity.Pool, field entity.LookupField, value string) (*entity.User, error) {
	var repos []repository.AccountRepository
	switch pool {
	case entity.PoolCustomer:
		repos = []repository.AccountRepository{r.customers}
	case entity.PoolEmployee:
		repos = []repository.AccountRepository{r.employees}
	default:
		repos = []repository.AccountRepository{r.customers, r.employees}
	}
	for _, repo := range repos {
		u, err := repo.FindByField(ctx, field, value)
		if err != nil {
			return nil, err
		}
		if u != nil {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// ExistsByEmail indica si el email está registrado en cualquiera de los dos pools.
func (r *IdentityResolver) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByField(ctx, entity.PoolEither, entity.FieldEmail, email)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// EmailTakenByOther indica si email pertenece a una cuenta distinta de selfID en cualquier pool.
func (r *IdentityResolver) EmailTakenByOther(ctx context.Context, email, selfID string) (bool, error) {
	for _, repo := range []repository.AccountRepository{r.customers, r.employees} {
		u, err := repo.FindByField(ctx, entity.FieldEmail, email)
		if err != nil {
			return false, err
		}
		if u != nil && u.ID != selfID {
			return true, nil
		}
	}
	return false, nil
}
