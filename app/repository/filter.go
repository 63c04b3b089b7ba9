package repository

import (
	"strings"

	"github.com/neotaste/creator-portal/app/models"
)

// FilterVideosBySearch narrows a video list with a case-insensitive
// substring match over creator name, creator email and video title.
// An empty term returns the input unchanged.
func FilterVideosBySearch(videos []models.Video, term string) []models.Video {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return videos
	}

	filtered := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if strings.Contains(strings.ToLower(v.Title), term) {
			filtered = append(filtered, v)
			continue
		}
		if v.Creator != nil && matchesCreator(v.Creator, term) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// FilterInvoicesBySearch narrows an invoice list with a case-insensitive
// substring match over creator name and creator email.
func FilterInvoicesBySearch(invoices []models.Invoice, term string) []models.Invoice {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return invoices
	}

	filtered := make([]models.Invoice, 0, len(invoices))
	for _, i := range invoices {
		if i.Creator != nil && matchesCreator(i.Creator, term) {
			filtered = append(filtered, i)
		}
	}
	return filtered
}

func matchesCreator(cr *models.Creator, term string) bool {
	return strings.Contains(strings.ToLower(cr.Name), term) ||
		strings.Contains(strings.ToLower(cr.Email), term)
}
