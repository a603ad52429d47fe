package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Trunks-api/internal/application/dto"
	"github.com/jhoicas/Trunks-api/internal/application/trunks"
)

// NSOTrunkHandler maneja el CRUD de troncales NSO.
type NSOTrunkHandler struct {
	uc *trunks.NSOTrunkUseCase
}

// NewNSOTrunkHandler construye el handler.
func NewNSOTrunkHandler(uc *trunks.NSOTrunkUseCase) *NSOTrunkHandler {
	return &NSOTrunkHandler{uc: uc}
}

// List godoc
// @Summary      Listar troncales NSO
// @Tags         nso-trunks
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   dto.NSOTrunkResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/nso-trunks [get]
func (h *NSOTrunkHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/nso-trunks/:id
func (h *NSOTrunkHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear troncal NSO
// @Tags         nso-trunks
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.NSOTrunkRequest  true  "serviceId, pilotNumber, channels, areaCode, status?"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/nso-trunks [post]
func (h *NSOTrunkHandler) Create(c *fiber.Ctx) error {
	var in dto.NSOTrunkRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{Message: "NSO trunk creado", ID: id})
}

// Update PUT /api/nso-trunks/:id
func (h *NSOTrunkHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.NSOTrunkRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "NSO trunk actualizado"})
}

// Delete DELETE /api/nso-trunks/:id
func (h *NSOTrunkHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "NSO trunk eliminado"})
}
