package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/application/usecase"
)

// NotificationHandler maneja las peticiones HTTP del buzón de alertas.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear una alerta
// @Tags         notifications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNotificationRequest  true  "Datos de la alerta"
// @Success      201   {object}  map[string]string
// @Router       /api/notifications/create [post]
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(GetCaller(c), in)
	if err != nil {
		return fail(c, err)
	}
	// id vacío significa creación suprimida por los ajustes de la organización
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Get godoc
// @Summary      Obtener una alerta
// @Tags         notifications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.NotificationResponse
// @Router       /api/notifications/get [post]
func (h *NotificationHandler) Get(c *fiber.Ctx) error {
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
// @Summary      Listar alertas visibles del caller
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications/list [post]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCaller(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UnreadCount godoc
// @Summary      Contar alertas visibles sin leer
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /api/notifications/unreadCount [post]
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.uc.UnreadCount(GetCaller(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

// MarkRead godoc
// @Summary      Marcar una alerta como leída
// @Tags         notifications
// @Security     Bearer
// @Accept       json
// @Router       /api/notifications/markRead [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	var in struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.MarkRead(GetCaller(c), in.ID); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// Delete godoc
// @Summary      Eliminar una alerta
// @Tags         notifications
// @Security     Bearer
// @Accept       json
// @Router       /api/notifications/delete [post]
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
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

// Clear godoc
// @Summary      Despejar una pestaña del buzón
// @Tags         notifications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClearNotificationsRequest  true  "Pestaña y filtro"
// @Success      200   {object}  map[string]int
// @Router       /api/notifications/clear [post]
func (h *NotificationHandler) Clear(c *fiber.Ctx) error {
	var in dto.ClearNotificationsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	count, err := h.uc.Clear(GetCaller(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"cleared": count})
}
