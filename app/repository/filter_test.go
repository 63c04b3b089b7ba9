package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neotaste/creator-portal/app/models"
)

func testCreator(name, email string) *models.Creator {
	return &models.Creator{Name: name, Email: email}
}

func TestFilterVideosBySearch(t *testing.T) {
	videos := []models.Video{
		{Title: "Brunch at Marlo's", Creator: testCreator("Sophie Hall", "sophie@example.com")},
		{Title: "Sunday roast review", Creator: testCreator("James Okafor", "james@example.com")},
		{Title: "Hidden ramen spot", Creator: nil},
	}

	t.Run("empty term returns input", func(t *testing.T) {
		assert.Len(t, FilterVideosBySearch(videos, "  "), 3)
	})

	t.Run("matches title", func(t *testing.T) {
		got := FilterVideosBySearch(videos, "RAMEN")
		require.Len(t, got, 1)
		assert.Equal(t, "Hidden ramen spot", got[0].Title)
	})

	t.Run("matches creator name", func(t *testing.T) {
		got := FilterVideosBySearch(videos, "sophie")
		require.Len(t, got, 1)
		assert.Equal(t, "Brunch at Marlo's", got[0].Title)
	})

	t.Run("matches creator email", func(t *testing.T) {
		got := FilterVideosBySearch(videos, "james@")
		require.Len(t, got, 1)
		assert.Equal(t, "Sunday roast review", got[0].Title)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterVideosBySearch(videos, "zzz"))
	})
}

func TestFilterInvoicesBySearch(t *testing.T) {
	invoices := []models.Invoice{
		{Creator: testCreator("Sophie Hall", "sophie@example.com")},
		{Creator: testCreator("James Okafor", "james@example.com")},
		{Creator: nil},
	}

	t.Run("empty term returns input", func(t *testing.T) {
		assert.Len(t, FilterInvoicesBySearch(invoices, ""), 3)
	})

	t.Run("matches creator name case-insensitively", func(t *testing.T) {
		got := FilterInvoicesBySearch(invoices, "OKAFOR")
		require.Len(t, got, 1)
		assert.Equal(t, "James Okafor", got[0].Creator.Name)
	})

	t.Run("nil creator never matches", func(t *testing.T) {
		assert.Empty(t, FilterInvoicesBySearch(invoices, "nobody"))
	})
}
