package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Peluqueria-api/internal/application/dto"
	"github.com/jhoicas/Peluqueria-api/internal/domain"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
	"github.com/jhoicas/Peluqueria-api/pkg/password"
)

// TokenService emite y valida bearer tokens (pkg/jwt).
type TokenService interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Validate(token string) (string, error)
}

// AuthUseCase login y resolución del principal de cada petición.
type AuthUseCase struct {
	resolver *IdentityResolver
	tokens   TokenService
	loginTTL time.Duration
}

// NewAuthUseCase construye el caso de uso. loginTTL es la vigencia de los tokens emitidos en login.
func NewAuthUseCase(resolver *IdentityResolver, tokens TokenService, loginTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{resolver: resolver, tokens: tokens, loginTTL: loginTTL}
}

// Login verifica email/password en ambos pools y emite un token con sub=email.
// Email desconocido: ErrBadCredentialsEmail (mensaje fijo). Password errado: ErrBadCredentialsPassword.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.TrimSpace(in.Identifier())
	if email == "" || in.Password == "" {
		return nil, domain.Validation("email y password son requeridos")
	}
	user, err := uc.resolver.FindByField(ctx, entity.PoolEither, entity.FieldEmail, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBadCredentialsEmail
		}
		return nil, err
	}
	ok, err := password.Verify(in.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verificar password de %s: %w", user.ID, err)
	}
	if !ok {
		return nil, domain.ErrBadCredentialsPassword
	}
	token, err := uc.tokens.Issue(user.Email, uc.loginTTL)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Authenticate valida el token y resuelve el principal por email en ambos pools.
// Token inválido o cuenta inexistente se reportan igual: domain.ErrUnauthenticated.
// No revisa is_active; eso corresponde al guard posterior.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	sub, err := uc.tokens.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	user, err := uc.resolver.FindByField(ctx, entity.PoolEither, entity.FieldEmail, sub)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}
