package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWebhookTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/webhooks/onboarding", WebhookAuthMiddleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestWebhookAuthMiddleware_MissingSecretConfig(t *testing.T) {
	t.Setenv("WEBHOOK_SECRET", "")
	app := newWebhookTestApp()

	req := httptest.NewRequest(http.MethodPost, "/webhooks/onboarding", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestWebhookAuthMiddleware_MissingHeader(t *testing.T) {
	t.Setenv("WEBHOOK_SECRET", "s3cret")
	app := newWebhookTestApp()

	req := httptest.NewRequest(http.MethodPost, "/webhooks/onboarding", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWebhookAuthMiddleware_WrongSecret(t *testing.T) {
	t.Setenv("WEBHOOK_SECRET", "s3cret")
	app := newWebhookTestApp()

	req := httptest.NewRequest(http.MethodPost, "/webhooks/onboarding", nil)
	req.Header.Set("X-Webhook-Secret", "guess")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWebhookAuthMiddleware_HeaderSecret(t *testing.T) {
	t.Setenv("WEBHOOK_SECRET", "s3cret")
	app := newWebhookTestApp()

	req := httptest.NewRequest(http.MethodPost, "/webhooks/onboarding", nil)
	req.Header.Set("X-Webhook-Secret", "s3cret")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestWebhookAuthMiddleware_BearerToken(t *testing.T) {
	t.Setenv("WEBHOOK_SECRET", "s3cret")
	app := newWebhookTestApp()

	req := httptest.NewRequest(http.MethodPost, "/webhooks/onboarding", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
