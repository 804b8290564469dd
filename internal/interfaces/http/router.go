package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockpilot/stockpilot-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC         *usecase.UserUseCase
	OrganizationUC *usecase.OrganizationUseCase
	CategoryUC     *usecase.CategoryUseCase
	ItemUC         *usecase.ItemUseCase
	SaleUC         *usecase.SaleUseCase
	SaleItemUC     *usecase.SaleItemUseCase
	NotificationUC *usecase.NotificationUseCase
	SettingsUC     *usecase.SettingsUseCase
	ReportUC       *usecase.ReportUseCase
	Webhook        *WebhookHandler
	JWTSecret      string
}

// Router registra las rutas de la API. Las operaciones van como POST
// /api/<entidad>/<operación>; el middleware de caller deja pasar peticiones
// anónimas y cada caso de uso decide qué devuelve sin identidad.
func Router(app *fiber.App, deps RouterDeps) {
	// Webhook de identidad (público, verificado por firma svix)
	app.Post("/clerk", deps.Webhook.Handle)

	api := app.Group("/api", CallerMiddleware(deps.JWTSecret))

	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/me", userHandler.Me)
	users.Post("/profile", userHandler.Profile)

	orgs := api.Group("/organizations")
	orgHandler := NewOrganizationHandler(deps.OrganizationUC)
	orgs.Post("/list", orgHandler.List)
	orgs.Post("/get", orgHandler.Get)
	orgs.Post("/update", orgHandler.Update)
	orgs.Post("/delete", orgHandler.Delete)

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/list", categoryHandler.List)
	categories.Post("/get", categoryHandler.Get)
	categories.Post("/create", categoryHandler.Create)
	categories.Post("/update", categoryHandler.Update)
	categories.Post("/delete", categoryHandler.Delete)
	categories.Post("/hierarchy", categoryHandler.Hierarchy)

	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/list", itemHandler.List)
	items.Post("/get", itemHandler.Get)
	items.Post("/create", itemHandler.Create)
	items.Post("/update", itemHandler.Update)
	items.Post("/remove", itemHandler.Remove)
	items.Post("/history", itemHandler.History)
	items.Post("/batchUpdate", itemHandler.BatchUpdate)

	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/create", saleHandler.Create)
	sales.Post("/list", saleHandler.List)
	sales.Post("/get", saleHandler.Get)
	sales.Post("/summary", saleHandler.Summary)

	saleItems := api.Group("/saleItems")
	saleItemHandler := NewSaleItemHandler(deps.SaleItemUC)
	saleItems.Post("/create", saleItemHandler.Create)
	saleItems.Post("/get", saleItemHandler.Get)
	saleItems.Post("/list", saleItemHandler.List)
	saleItems.Post("/listWithDetails", saleItemHandler.ListWithDetails)
	saleItems.Post("/update", saleItemHandler.Update)
	saleItems.Post("/delete", saleItemHandler.Delete)

	notifications := api.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Post("/create", notificationHandler.Create)
	notifications.Post("/get", notificationHandler.Get)
	notifications.Post("/list", notificationHandler.List)
	notifications.Post("/unreadCount", notificationHandler.UnreadCount)
	notifications.Post("/markRead", notificationHandler.MarkRead)
	notifications.Post("/delete", notificationHandler.Delete)
	notifications.Post("/clear", notificationHandler.Clear)

	settings := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Post("/create", settingsHandler.Create)
	settings.Post("/get", settingsHandler.Get)
	settings.Post("/update", settingsHandler.Update)

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Post("/create", reportHandler.Create)
	reports.Post("/get", reportHandler.Get)
	reports.Post("/list", reportHandler.List)
	reports.Post("/update", reportHandler.Update)
	reports.Post("/delete", reportHandler.Delete)
	reports.Post("/exportPdf", reportHandler.ExportPDF)
}
