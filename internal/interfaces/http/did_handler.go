package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Trunks-api/internal/application/dto"
	"github.com/jhoicas/Trunks-api/internal/application/trunks"
)

// DIDHandler maneja el CRUD de números DID.
type DIDHandler struct {
	uc *trunks.DIDUseCase
}

// NewDIDHandler construye el handler.
func NewDIDHandler(uc *trunks.DIDUseCase) *DIDHandler {
	return &DIDHandler{uc: uc}
}

// List GET /api/dids
func (h *DIDHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/dids/:id
func (h *DIDHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Crear DID
// @Tags         dids
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.DIDRequest  true  "didNumber, trunkId, trunkType (NSO|VNO), status?"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/dids [post]
func (h *DIDHandler) Create(c *fiber.Ctx) error {
	var in dto.DIDRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{Message: "DID creado", ID: id})
}

// Update PUT /api/dids/:id
func (h *DIDHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.DIDRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "DID actualizado"})
}

// Delete DELETE /api/dids/:id
func (h *DIDHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "DID eliminado"})
}
