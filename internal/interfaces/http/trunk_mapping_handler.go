package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Trunks-api/internal/application/dto"
	"github.com/jhoicas/Trunks-api/internal/application/trunks"
)

// TrunkMappingHandler maneja el CRUD de asignaciones NSO→VNO.
type TrunkMappingHandler struct {
	uc *trunks.TrunkMappingUseCase
}

// NewTrunkMappingHandler construye el handler.
func NewTrunkMappingHandler(uc *trunks.TrunkMappingUseCase) *TrunkMappingHandler {
	return &TrunkMappingHandler{uc: uc}
}

// List GET /api/trunk-mappings
func (h *TrunkMappingHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/trunk-mappings/:id
func (h *TrunkMappingHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Crear asignación de canales
// @Tags         trunk-mappings
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.TrunkMappingRequest  true  "nsoTrunkId, vnoTrunkId, allocatedChannels"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/trunk-mappings [post]
func (h *TrunkMappingHandler) Create(c *fiber.Ctx) error {
	var in dto.TrunkMappingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{Message: "asignación creada", ID: id})
}

// Update PUT /api/trunk-mappings/:id
func (h *TrunkMappingHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.TrunkMappingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "asignación actualizada"})
}

// Delete DELETE /api/trunk-mappings/:id
func (h *TrunkMappingHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "asignación eliminada"})
}
