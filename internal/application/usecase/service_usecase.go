package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Peluqueria-api/internal/application/dto"
	"github.com/jhoicas/Peluqueria-api/internal/domain"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
	"github.com/jhoicas/Peluqueria-api/internal/domain/repository"
)

// ServiceUseCase CRUD del catálogo de servicios.
type ServiceUseCase struct {
	repo     repository.ServiceRepository
	validate *dto.Validator
	now      func() time.Time
}

// NewServiceUseCase construye el caso de uso con el puerto de persistencia.
func NewServiceUseCase(repo repository.ServiceRepository, validate *dto.Validator, opts ...Option) *ServiceUseCase {
	o := applyOptions(opts)
	return &ServiceUseCase{repo: repo, validate: validate, now: o.now}
}

// Create registra el servicio; ErrServiceNameExists si el nombre ya está en uso.
func (uc *ServiceUseCase) Create(ctx context.Context, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrServiceNameExists
	}
	now := uc.now().UTC()
	s := &entity.Service{
		Name:            in.Name,
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Price:           in.Price,
		ImgPath:         in.ImgPath,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toServiceResponse(s), nil
}

func (uc *ServiceUseCase) List(ctx context.Context) ([]*dto.ServiceResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toServiceResponse(s))
	}
	return out, nil
}

func (uc *ServiceUseCase) GetByID(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrServiceNotFound
	}
	return toServiceResponse(s), nil
}

// Update aplica el patch. Patch vacío: ErrEmptyPatch; nombre de otro servicio: ErrServiceNameExists.
func (uc *ServiceUseCase) Update(ctx context.Context, id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	in.Name = trimmed(in.Name)
	patch := entity.ServicePatch{
		Name:            in.Name,
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Price:           in.Price,
		ImgPath:         in.ImgPath,
	}
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyPatch
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	if patch.Name != nil {
		other, err := uc.repo.GetByName(ctx, *patch.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrServiceNameExists
		}
	}
	s, err := uc.repo.Update(ctx, id, patch, uc.now().UTC())
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrServiceNotFound
	}
	return toServiceResponse(s), nil
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		ImgPath:         s.ImgPath,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
