package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/neotaste/creator-portal/internal/pkg/hubspot"
	"github.com/neotaste/creator-portal/internal/pkg/statistics"
	"github.com/neotaste/creator-portal/internal/pkg/viewmodel"
)

// HandleStart renders the public landing page
func HandleStart(c *fiber.Ctx) error {
	form := hubspot.LoadFormConfig()

	return c.Render("index", fiber.Map{
		"Page":          "home",
		"FromProtected": isLoggedIn(c),
		"Username":      ExtractUsername(c),
		"Msg":           flash.Get(c),
		"Steps":         viewmodel.LandingSteps(),
		"Benefits":      viewmodel.LandingBenefits(),
		"Stats":         viewmodel.LandingStats(),
		"FAQ":           viewmodel.LandingFAQ(),
		"Testimonials":  viewmodel.LandingTestimonials(),
		"ProgramStats":  statistics.GetStatisticsData(),
		"HubSpot":       form,
		"HubSpotReady":  form.IsConfigured(),
	}, "layouts/main")
}

// HandleNudges renders the lifecycle automation catalog
func HandleNudges(c *fiber.Ctx) error {
	return c.Render("nudges", fiber.Map{
		"Page":          "nudges",
		"FromProtected": isLoggedIn(c),
		"Username":      ExtractUsername(c),
		"Msg":           flash.Get(c),
		"Timeline":      viewmodel.NudgeTimeline(),
		"Automations":   viewmodel.NudgeAutomations(),
	}, "layouts/main")
}
