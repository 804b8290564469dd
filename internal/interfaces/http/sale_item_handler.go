package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/application/usecase"
)

// SaleItemHandler maneja las peticiones HTTP de líneas de venta.
type SaleItemHandler struct {
	uc *usecase.SaleItemUseCase
}

// NewSaleItemHandler construye el handler.
func NewSaleItemHandler(uc *usecase.SaleItemUseCase) *SaleItemHandler {
	return &SaleItemHandler{uc: uc}
}

// Create godoc
// @Summary      Añadir una línea a una venta
// @Tags         saleItems
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleItemRequest  true  "Datos de la línea"
// @Success      201   {object}  map[string]string
// @Router       /api/saleItems/create [post]
func (h *SaleItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(GetCaller(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Get godoc
// @Summary      Obtener una línea de venta
// @Tags         saleItems
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.SaleItemResponse
// @Router       /api/saleItems/get [post]
func (h *SaleItemHandler) Get(c *fiber.Ctx) error {
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

// List godoc
// @Summary      Listar líneas de una venta
// @Tags         saleItems
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {array}  dto.SaleItemResponse
// @Router       /api/saleItems/list [post]
func (h *SaleItemHandler) List(c *fiber.Ctx) error {
	var in struct {
		SaleID string `json:"saleId"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(GetCaller(c), in.SaleID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ListWithDetails godoc
// @Summary      Listar líneas con datos del artículo
// @Tags         saleItems
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {array}  dto.SaleItemWithDetailsResponse
// @Router       /api/saleItems/listWithDetails [post]
func (h *SaleItemHandler) ListWithDetails(c *fiber.Ctx) error {
	var in struct {
		SaleID string `json:"saleId"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ListWithDetails(GetCaller(c), in.SaleID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar una línea de venta
// @Tags         saleItems
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSaleItemRequest  true  "Patch de la línea"
// @Success      200   {object}  map[string]string
// @Router       /api/saleItems/update [post]
func (h *SaleItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Update(GetCaller(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"id": id})
}

// Delete godoc
// @Summary      Eliminar una línea de venta
// @Tags         saleItems
// @Security     Bearer
// @Accept       json
// @Router       /api/saleItems/delete [post]
func (h *SaleItemHandler) Delete(c *fiber.Ctx) error {
	var in struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Delete(GetCaller(c), in.ID); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
