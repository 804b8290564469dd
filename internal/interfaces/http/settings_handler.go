package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/application/usecase"
)

// SettingsHandler maneja las peticiones HTTP de ajustes por organización.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ajustes de una organización
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSettingsRequest  true  "Ajustes iniciales"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/settings/create [post]
func (h *SettingsHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.CreateSettings(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Get godoc
// @Summary      Obtener los ajustes de una organización
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings/get [post]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	var in struct {
		OrgID string `json:"orgId"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.GetSettings(GetCaller(c), in.OrgID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar los ajustes de una organización
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "Ajustes completos"
// @Success      200   {object}  map[string]string
// @Router       /api/settings/update [post]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.UpdateSettings(GetCaller(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"id": id})
}
