package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/application/usecase"
)

// OrganizationHandler maneja las peticiones HTTP de organizaciones. El alta no
// tiene ruta propia: llega por el webhook de identidad.
type OrganizationHandler struct {
	uc *usecase.OrganizationUseCase
}

// NewOrganizationHandler construye el handler.
func NewOrganizationHandler(uc *usecase.OrganizationUseCase) *OrganizationHandler {
	return &OrganizationHandler{uc: uc}
}

// List godoc
// @Summary      Listar las organizaciones del caller
// @Tags         organizations
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrganizationResponse
// @Router       /api/organizations/list [post]
func (h *OrganizationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListOrganizations(GetCaller(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener una organización
// @Tags         organizations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.OrganizationResponse
// @Router       /api/organizations/get [post]
func (h *OrganizationHandler) Get(c *fiber.Ctx) error {
	var in struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.GetOrganization(GetCaller(c), in.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar una organización (solo admin)
// @Tags         organizations
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.UpdateOrganizationRequest  true  "Patch de la organización"
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/organizations/update [post]
func (h *OrganizationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrganizationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.UpdateOrganization(GetCaller(c), in); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// Delete godoc
// @Summary      Eliminar una organización (solo admin)
// @Tags         organizations
// @Security     Bearer
// @Accept       json
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/organizations/delete [post]
func (h *OrganizationHandler) Delete(c *fiber.Ctx) error {
	var in struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.DeleteOrganization(GetCaller(c), in.ID); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
