package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
)

// AccountRepository puerto de persistencia de un pool de cuentas (users o employees).
// Las búsquedas devuelven (nil, nil) cuando no hay coincidencia.
type AccountRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByField(ctx context.Context, field entity.LookupField, value string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Update aplica el patch y devuelve la cuenta resultante, o nil si no existe.
	Update(ctx context.Context, id string, patch entity.UserPatch, updatedAt time.Time) (*entity.User, error)
	// Delete devuelve false si no existía.
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
