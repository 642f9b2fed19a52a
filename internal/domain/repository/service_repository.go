package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
)

// ServiceRepository puerto de persistencia para Service.
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	GetByName(ctx context.Context, name string) (*entity.Service, error)
	List(ctx context.Context) ([]*entity.Service, error)
	Update(ctx context.Context, id string, patch entity.ServicePatch, updatedAt time.Time) (*entity.Service, error)
	Count(ctx context.Context) (int64, error)
}
