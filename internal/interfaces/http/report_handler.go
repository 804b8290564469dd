package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/application/usecase"
)

// ReportHandler maneja las peticiones HTTP de reportes guardados.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Create godoc
// @Summary      Guardar un reporte
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReportRequest  true  "Datos del reporte"
// @Success      201   {object}  map[string]string
// @Router       /api/reports/create [post]
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReportRequest
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
// @Summary      Obtener un reporte
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ReportResponse
// @Router       /api/reports/get [post]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
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
// @Summary      Listar reportes de una organización
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {array}  dto.ReportResponse
// @Router       /api/reports/list [post]
func (h *ReportHandler) List(c *fiber.Ctx) error {
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

// Update godoc
// @Summary      Actualizar un reporte (patch parcial)
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateReportRequest  true  "Patch del reporte"
// @Success      200   {object}  map[string]string
// @Router       /api/reports/update [post]
func (h *ReportHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReportRequest
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
// @Summary      Eliminar un reporte
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Router       /api/reports/delete [post]
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
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

// ExportPDF godoc
// @Summary      Exportar un reporte a PDF
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/exportPdf [post]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	var in struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	pdfBytes, err := h.uc.ExportPDF(c.UserContext(), GetCaller(c), in.ID)
	if err != nil {
		return fail(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="report.pdf"`)
	return c.Send(pdfBytes)
}
