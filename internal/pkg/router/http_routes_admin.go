package router

import (
	"github.com/neotaste/creator-portal/app/controllers"
	"github.com/neotaste/creator-portal/internal/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.RequireAdmin)
	adminGroup.Get("/", controllers.HandleAdminDashboard)

	// Review decisions
	adminGroup.Post("/videos/:uuid/approve", controllers.HandleAdminVideoApprove)
	adminGroup.Post("/videos/:uuid/reject", controllers.HandleAdminVideoReject)
	adminGroup.Post("/invoices/:uuid/approve", controllers.HandleAdminInvoiceApprove)
	adminGroup.Post("/invoices/:uuid/decline", controllers.HandleAdminInvoiceDecline)

	// Submitted document streaming
	adminGroup.Get("/files/:kind/*", controllers.HandleAdminFile)
}
