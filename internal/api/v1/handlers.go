package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neotaste/creator-portal/app/models"
	"github.com/neotaste/creator-portal/app/repository"
	"github.com/neotaste/creator-portal/internal/pkg/usercontext"
)

// APIServer implements the session-authenticated JSON API
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// Pong is the ping response payload
type Pong struct {
	Ping string `json:"ping"`
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Pong{Ping: "pong"})
}

// GetProfile returns account information for the authenticated creator.
// Security is enforced via the session middleware attached in the router.
func (s *APIServer) GetProfile(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	creator, err := repository.GetGlobalFactory().GetCreatorRepository().GetByID(userCtx.UserID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "creator not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"uuid":         creator.UUID,
		"name":         creator.Name,
		"email":        creator.Email,
		"voucher_code": creator.VoucherCode,
		"status":       creator.Status,
	})
}

// GetEligibleVideos lists the authenticated creator's approved videos that can
// still back a food expense invoice. The dashboard invoice form consumes this.
func (s *APIServer) GetEligibleVideos(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	videos, err := repository.GetGlobalFactory().GetVideoRepository().GetEligibleForExpense(userCtx.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_error",
			"message": "could not load videos",
		})
	}

	items := make([]fiber.Map, 0, len(videos))
	for _, v := range videos {
		items = append(items, eligibleVideoItem(v))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"videos": items,
	})
}

func eligibleVideoItem(v models.Video) fiber.Map {
	return fiber.Map{
		"uuid":         v.UUID,
		"title":        v.Title,
		"submitted_at": v.SubmittedAt,
	}
}
