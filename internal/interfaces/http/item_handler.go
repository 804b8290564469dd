package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/application/usecase"
)

// ItemHandler maneja las peticiones HTTP del catálogo de artículos.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar artículos de una organización
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items/list [post]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var in struct {
		OrgID string `json:"orgId"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(GetCaller(c), in.OrgID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener un artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ItemResponse
// @Router       /api/items/get [post]
func (h *ItemHandler) Get(c *fiber.Ctx) error {
	var in struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Get(GetCaller(c), in.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear un artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del artículo"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/items/create [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(c.UserContext(), GetCaller(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Update godoc
// @Summary      Actualizar un artículo (patch parcial)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateItemRequest  true  "Patch del artículo"
// @Success      200   {object}  map[string]string
// @Router       /api/items/update [post]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Update(c.UserContext(), GetCaller(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"id": id})
}

// Remove godoc
// @Summary      Borrado lógico de un artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/items/remove [post]
func (h *ItemHandler) Remove(c *fiber.Ctx) error {
	var in struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Remove(c.UserContext(), GetCaller(c), in.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"id": id})
}

// History godoc
// @Summary      Historia de auditoría de un artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {array}  dto.ItemHistoryResponse
// @Router       /api/items/history [post]
func (h *ItemHandler) History(c *fiber.Ctx) error {
	var in struct {
		ItemID string `json:"itemId"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.GetHistory(GetCaller(c), in.ItemID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// BatchUpdate godoc
// @Summary      Actualizar artículos en lote
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchUpdateItemsRequest  true  "Lote de patches"
// @Success      200   {object}  map[string][]string
// @Router       /api/items/batchUpdate [post]
func (h *ItemHandler) BatchUpdate(c *fiber.Ctx) error {
	var in dto.BatchUpdateItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	ids, err := h.uc.BatchUpdate(c.UserContext(), GetCaller(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"updated": ids})
}
