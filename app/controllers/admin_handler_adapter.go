package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neotaste/creator-portal/app/repository"
)

// Global admin controller instance
var adminController *AdminController

// InitializeAdminController initializes the global admin controller with repositories
func InitializeAdminController() {
	repos := repository.GetGlobalRepositories()
	adminController = NewAdminController(repos)
}

// GetAdminController returns the global admin controller instance
func GetAdminController() *AdminController {
	if adminController == nil {
		InitializeAdminController()
	}
	return adminController
}

// Adapter functions to maintain compatibility with the router

// HandleAdminDashboard - Adapter for the review desk
func HandleAdminDashboard(c *fiber.Ctx) error {
	return GetAdminController().HandleDashboard(c)
}

// HandleAdminVideoApprove - Adapter for video approval
func HandleAdminVideoApprove(c *fiber.Ctx) error {
	return GetAdminController().HandleVideoApprove(c)
}

// HandleAdminVideoReject - Adapter for video rejection
func HandleAdminVideoReject(c *fiber.Ctx) error {
	return GetAdminController().HandleVideoReject(c)
}

// HandleAdminInvoiceApprove - Adapter for invoice approval
func HandleAdminInvoiceApprove(c *fiber.Ctx) error {
	return GetAdminController().HandleInvoiceApprove(c)
}

// HandleAdminInvoiceDecline - Adapter for invoice decline
func HandleAdminInvoiceDecline(c *fiber.Ctx) error {
	return GetAdminController().HandleInvoiceDecline(c)
}

// HandleAdminFile - Adapter for document streaming
func HandleAdminFile(c *fiber.Ctx) error {
	return GetAdminController().HandleFile(c)
}
