package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Peluqueria-api/internal/application/auth"
	"github.com/jhoicas/Peluqueria-api/internal/application/dto"
	"github.com/jhoicas/Peluqueria-api/internal/domain"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
	"github.com/jhoicas/Peluqueria-api/internal/domain/repository"
	"github.com/jhoicas/Peluqueria-api/pkg/datefmt"
	"github.com/jhoicas/Peluqueria-api/pkg/password"
)

// AccountUseCase CRUD de cuentas de un pool (clientes o empleados).
// La unicidad del email se verifica contra ambos pools antes de escribir.
type AccountUseCase struct {
	pool     entity.Pool
	repo     repository.AccountRepository
	resolver *auth.IdentityResolver
	validate *dto.Validator
	now      func() time.Time
}

// NewAccountUseCase construye el caso de uso para el pool indicado (PoolCustomer o PoolEmployee).
// Cualquier otro pool es un error de programación y provoca panic.
func NewAccountUseCase(pool entity.Pool, resolver *auth.IdentityResolver, validate *dto.Validator, opts ...Option) *AccountUseCase {
	repo := resolver.Repository(pool)
	if repo == nil {
		panic(fmt.Sprintf("usecase: pool sin repositorio de cuentas: %v", pool))
	}
	o := applyOptions(opts)
	return &AccountUseCase{
		pool:     pool,
		repo:     repo,
		resolver: resolver,
		validate: validate,
		now:      o.now,
	}
}

// Create registra la cuenta con el rol del pool y is_active=true.
func (uc *AccountUseCase) Create(ctx context.Context, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	exists, err := uc.resolver.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	user := &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		Role:         uc.pool.Role(),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToAccountResponse(user), nil
}

// List devuelve todas las cuentas del pool.
func (uc *AccountUseCase) List(ctx context.Context) ([]*dto.AccountResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AccountResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToAccountResponse(u))
	}
	return out, nil
}

// GetByID busca solo dentro del pool; domain.ErrUserNotFound si no existe.
func (uc *AccountUseCase) GetByID(ctx context.Context, id string) (*dto.AccountResponse, error) {
	u, err := uc.resolver.FindByField(ctx, uc.pool, entity.FieldID, id)
	if err != nil {
		return nil, err
	}
	return ToAccountResponse(u), nil
}

// Update aplica el patch. Patch vacío: ErrEmptyPatch; email de otra cuenta: ErrEmailAlreadyExists.
func (uc *AccountUseCase) Update(ctx context.Context, id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	patch := entity.UserPatch{
		FirstName: trimmed(in.FirstName),
		LastName:  trimmed(in.LastName),
		Email:     trimmed(in.Email),
		Phone:     in.Phone,
		IsActive:  in.IsActive,
	}
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyPatch
	}
	in.FirstName, in.LastName, in.Email = patch.FirstName, patch.LastName, patch.Email
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	if patch.Email != nil {
		taken, err := uc.resolver.EmailTakenByOther(ctx, *patch.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	u, err := uc.repo.Update(ctx, id, patch, uc.now().UTC())
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToAccountResponse(u), nil
}

// Delete borra la cuenta; domain.ErrUserNotFound si no existía.
func (uc *AccountUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUserNotFound
	}
	return nil
}

// ToAccountResponse perfil público de una cuenta.
func ToAccountResponse(u *entity.User) *dto.AccountResponse {
	if u == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		Phone:          u.Phone,
		Role:           u.Role,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
		CreatedAtLabel: datefmt.CO(u.CreatedAt),
		UpdatedAt:      u.UpdatedAt,
		UpdatedAtLabel: datefmt.CO(u.UpdatedAt),
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
