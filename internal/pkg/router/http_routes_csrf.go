package router

import (
	"strings"
	"time"

	"github.com/neotaste/creator-portal/app/controllers"
	"github.com/neotaste/creator-portal/internal/pkg/env"
	"github.com/neotaste/creator-portal/internal/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/") || strings.HasPrefix(c.Path(), "/webhooks/")
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))
	group.Get("/", loggedInMiddleware, controllers.HandleStart)
	group.Get("/login", loggedInMiddleware, controllers.HandleAuthLogin)
	group.Post("/login", loggedInMiddleware, controllers.HandleAuthLogin)
	group.Get("/register", loggedInMiddleware, controllers.HandleAuthRegister)
	group.Post("/register", loggedInMiddleware, controllers.HandleAuthRegister)
	group.Get("/activate", loggedInMiddleware, controllers.HandleAuthActivate)
	group.Post("/activate", loggedInMiddleware, controllers.HandleAuthActivate)

	// Creator dashboard and submissions
	group.Get("/dashboard", middleware.RequireAuth, controllers.HandleDashboard)
	group.Post("/videos", middleware.RequireAuth, controllers.HandleVideoSubmit)
	group.Post("/videos/:uuid/resubmit", middleware.RequireAuth, controllers.HandleVideoResubmit)
	group.Post("/invoices", middleware.RequireAuth, controllers.HandleInvoiceSubmit)
	group.Post("/invoices/:uuid/reupload", middleware.RequireAuth, controllers.HandleInvoiceReupload)
}
