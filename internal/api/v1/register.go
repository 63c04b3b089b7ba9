package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neotaste/creator-portal/internal/pkg/middleware"
)

// RegisterHandlers attaches the v1 endpoints to the given router group.
// Everything except ping requires a logged-in session.
func RegisterHandlers(r fiber.Router, s *APIServer) {
	r.Get("/ping", s.GetPing)
	r.Get("/profile", middleware.RequireAPISessionAuth, s.GetProfile)
	r.Get("/videos/eligible", middleware.RequireAPISessionAuth, s.GetEligibleVideos)
}
