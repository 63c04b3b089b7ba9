package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neotaste/creator-portal/app/repository"
)

func TestParseReviewFilter_Videos(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", func(c *fiber.Ctx) error {
		filter := parseReviewFilter(c, "video")
		assert.Equal(t, "pending", filter.Status)
		assert.Equal(t, "sophie", filter.Search)
		assert.Empty(t, filter.Type)
		require.NotNil(t, filter.DateFrom)
		assert.Equal(t, "2024-01-01", filter.DateFrom.Format("2006-01-02"))
		require.NotNil(t, filter.DateTo)
		assert.Equal(t, "2024-01-31", filter.DateTo.Format("2006-01-02"))
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin?video_status=pending&q=sophie&video_from=2024-01-01&video_to=2024-01-31", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestParseReviewFilter_Invoices(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", func(c *fiber.Ctx) error {
		filter := parseReviewFilter(c, "invoice")
		assert.Equal(t, "declined", filter.Status)
		assert.Equal(t, "food_expense", filter.Type)
		assert.Nil(t, filter.DateFrom)
		assert.Nil(t, filter.DateTo)
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin?invoice_status=declined&invoice_type=food_expense", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestParseReviewFilter_IgnoresMalformedDates(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", func(c *fiber.Ctx) error {
		filter := parseReviewFilter(c, "video")
		assert.Equal(t, repository.ReviewFilter{}, filter)
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin?video_from=01.01.2024&video_to=soon", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
