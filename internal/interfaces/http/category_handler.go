package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP de categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías de una organización
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories/list [post]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener una categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.CategoryResponse
// @Router       /api/categories/get [post]
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
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
// @Summary      Crear una categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  map[string]string
// @Router       /api/categories/create [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(GetCaller(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Update godoc
// @Summary      Actualizar una categoría (patch parcial)
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCategoryRequest  true  "Patch de la categoría"
// @Success      200   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories/update [post]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
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
// @Summary      Eliminar una categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/delete [post]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
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

// Hierarchy godoc
// @Summary      Bosque de categorías de una organización
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {array}  dto.CategoryNode
// @Router       /api/categories/hierarchy [post]
func (h *CategoryHandler) Hierarchy(c *fiber.Ctx) error {
	var in struct {
		OrgID string `json:"orgId"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.GetHierarchy(GetCaller(c), in.OrgID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
