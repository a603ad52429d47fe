package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Trunks-api/internal/application/dto"
	"github.com/jhoicas/Trunks-api/internal/application/trunks"
)

// VNOTrunkHandler maneja el CRUD de troncales VNO.
type VNOTrunkHandler struct {
	uc *trunks.VNOTrunkUseCase
}

// NewVNOTrunkHandler construye el handler.
func NewVNOTrunkHandler(uc *trunks.VNOTrunkUseCase) *VNOTrunkHandler {
	return &VNOTrunkHandler{uc: uc}
}

// List godoc
// @Summary      Listar troncales VNO
// @Tags         vno-trunks
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   dto.VNOTrunkResponse
// @Router       /api/vno-trunks [get]
func (h *VNOTrunkHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/vno-trunks/:id
func (h *VNOTrunkHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Crear troncal VNO
// @Tags         vno-trunks
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.VNOTrunkRequest  true  "campos NSO más customerId (puede ser null)"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/vno-trunks [post]
func (h *VNOTrunkHandler) Create(c *fiber.Ctx) error {
	var in dto.VNOTrunkRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{Message: "VNO trunk creado", ID: id})
}

// Update PUT /api/vno-trunks/:id
func (h *VNOTrunkHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.VNOTrunkRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "VNO trunk actualizado"})
}

// Delete DELETE /api/vno-trunks/:id
func (h *VNOTrunkHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "VNO trunk eliminado"})
}
