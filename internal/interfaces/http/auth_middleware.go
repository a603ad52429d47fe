package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Trunks-api/internal/domain"
	"github.com/jhoicas/Trunks-api/internal/domain/entity"
)

// Locals keys para la identidad del usuario autenticado en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

// TokenVerifier valida un token y devuelve el usuario vigente en el store.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token y carga en c.Locals el usuario re-leído del store.
// El rol en Locals es el del registro actual, no el del claim.
func AuthMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return respondError(c, domain.ErrMissingToken)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respondError(c, domain.ErrInvalidToken)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respondError(c, domain.ErrInvalidToken)
		}
		user, err := verifier.Verify(c.Context(), tokenString)
		if err != nil {
			// La causa (firma, expiración, usuario borrado, fallo del store) no sale al cliente
			return respondError(c, domain.ErrInvalidToken)
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUsername, user.Username)
		c.Locals(LocalRole, user.Role)
		return c.Next()
	}
}

// RequireRole permite continuar solo si el rol del usuario está entre roles.
// Debe montarse después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		if _, ok := allowed[GetRole(c)]; !ok {
			return respondError(c, domain.ErrForbidden)
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetUsername devuelve el username del contexto.
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

// GetRole devuelve el rol vigente del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
