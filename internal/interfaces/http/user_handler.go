package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockpilot/stockpilot-api/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP de usuarios. Las altas y bajas llegan
// por el webhook de identidad, no por estas rutas.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Me godoc
// @Summary      Usuario autenticado actual
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/users/me [post]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.GetMe(GetCaller(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Profile godoc
// @Summary      Perfil público de un usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.UserProfileResponse
// @Router       /api/users/profile [post]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	var in struct {
		UserID string `json:"userId"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.GetUserProfile(in.UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
