package router

import (
	apiv1 "github.com/neotaste/creator-portal/internal/api/v1"
	"github.com/neotaste/creator-portal/app/controllers"
	"github.com/neotaste/creator-portal/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")
	apiServer := apiv1.NewAPIServer()
	apiv1.RegisterHandlers(v1, apiServer)

	// Onboarding webhook, shared-secret protected, no CSRF
	app.Post("/webhooks/onboarding", middleware.WebhookAuthMiddleware(), controllers.HandleOnboardingWebhook)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
