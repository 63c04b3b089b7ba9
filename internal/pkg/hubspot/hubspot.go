package hubspot

import (
	"github.com/neotaste/creator-portal/internal/pkg/env"
)

// FormConfig describes the embedded HubSpot application form on the
// landing page. The widget itself is rendered client-side by the
// HubSpot forms script.
type FormConfig struct {
	Region   string `json:"region"`
	PortalID string `json:"portalId"`
	FormID   string `json:"formId"`
}

// LoadFormConfig reads the HubSpot form settings from the environment.
func LoadFormConfig() FormConfig {
	return FormConfig{
		Region:   env.GetEnv("HUBSPOT_REGION", "eu1"),
		PortalID: env.GetEnv("HUBSPOT_PORTAL_ID", ""),
		FormID:   env.GetEnv("HUBSPOT_FORM_ID", ""),
	}
}

// IsConfigured reports whether the embed has everything it needs.
func (c FormConfig) IsConfigured() bool {
	return c.PortalID != "" && c.FormID != ""
}

// ScriptURL returns the loader script for the configured region.
func (c FormConfig) ScriptURL() string {
	return "https://js-" + c.Region + ".hsforms.net/forms/embed/v2.js"
}
