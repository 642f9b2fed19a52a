package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Peluqueria-api/internal/application/auth"
	"github.com/jhoicas/Peluqueria-api/internal/domain"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
)

// LocalPrincipal key de c.Locals con la cuenta autenticada.
const LocalPrincipal = "principal"

// AuthMiddleware valida el Bearer Token y resuelve la cuenta por email en ambos pools.
// Token ausente, inválido o de una cuenta inexistente responden 401.
func AuthMiddleware(uc *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "formato: Bearer <token>")
		}
		principal, err := uc.Authenticate(c.UserContext(), strings.TrimSpace(parts[1]))
		if err != nil {
			return respondError(c, err)
		}
		c.Locals(LocalPrincipal, principal)
		return c.Next()
	}
}

// RequireActive rechaza cuentas con is_active=false. Debe ir después de AuthMiddleware.
func RequireActive() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil {
			return unauthorized(c, msgUnauthenticated)
		}
		if !p.IsActive {
			return respondError(c, domain.ErrInactive)
		}
		return c.Next()
	}
}

// RequireRole permite el paso solo a los roles indicados.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil {
			return unauthorized(c, msgUnauthenticated)
		}
		for _, r := range roles {
			if p.Role == r {
				return c.Next()
			}
		}
		return respondError(c, domain.ErrForbidden)
	}
}

// GetPrincipal devuelve la cuenta autenticada (después de AuthMiddleware).
func GetPrincipal(c *fiber.Ctx) *entity.User {
	p, _ := c.Locals(LocalPrincipal).(*entity.User)
	return p
}
