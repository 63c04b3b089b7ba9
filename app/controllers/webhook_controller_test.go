package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOnboardingRequest(t *testing.T, body string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/webhooks/onboarding", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestOnboardingWebhookRejectsInvalidJSON(t *testing.T) {
	app := fiber.New()
	app.Post("/webhooks/onboarding", HandleOnboardingWebhook)

	resp, err := app.Test(newOnboardingRequest(t, "{not json"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestOnboardingWebhookRejectsMissingFields(t *testing.T) {
	app := fiber.New()
	app.Post("/webhooks/onboarding", HandleOnboardingWebhook)

	bodies := []string{
		`{}`,
		`{"email":"a@b.com","name":"A"}`,
		`{"email":"a@b.com","voucher_code":"CODE"}`,
		`{"name":"A","voucher_code":"CODE"}`,
		`{"email":"  ","name":"A","voucher_code":"CODE"}`,
	}

	for _, body := range bodies {
		resp, err := app.Test(newOnboardingRequest(t, body), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "body: %s", body)

		raw, readErr := io.ReadAll(resp.Body)
		require.NoError(t, readErr)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(raw, &payload))
		assert.Equal(t, false, payload["success"])
	}
}

func TestRandomPassword(t *testing.T) {
	a, err := randomPassword()
	require.NoError(t, err)
	b, err := randomPassword()
	require.NoError(t, err)

	assert.Len(t, a, 48)
	assert.NotEqual(t, a, b)
}
