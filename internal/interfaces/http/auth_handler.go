package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Trunks-api/internal/application/auth"
	"github.com/jhoicas/Trunks-api/internal/application/dto"
	"github.com/jhoicas/Trunks-api/internal/domain"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	metrics *Metrics
}

// NewAuthHandler construye el handler de auth. metrics puede ser nil.
func NewAuthHandler(uc *auth.AuthUseCase, metrics *Metrics) *AuthHandler {
	return &AuthHandler{uc: uc, metrics: metrics}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLogin) && h.metrics != nil {
			h.metrics.LoginFailed()
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}
