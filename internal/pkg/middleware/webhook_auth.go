package middleware

import (
	"crypto/subtle"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/neotaste/creator-portal/internal/pkg/env"
)

// WebhookAuthMiddleware authenticates inbound webhook calls carrying the
// shared secret header. Calls without a matching secret get JSON 401.
func WebhookAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := env.GetEnv("WEBHOOK_SECRET", "")
		if secret == "" {
			log.Print("webhook middleware: WEBHOOK_SECRET not configured")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Webhook secret not configured"})
		}

		provided := extractWebhookSecret(c)
		if provided == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Missing webhook secret"})
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Invalid webhook secret"})
		}

		return c.Next()
	}
}

func extractWebhookSecret(c *fiber.Ctx) string {
	secret := strings.TrimSpace(c.Get("X-Webhook-Secret"))
	if secret != "" {
		return secret
	}
	auth := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
