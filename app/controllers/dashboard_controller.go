package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/sujit-baniya/flash"

	"github.com/neotaste/creator-portal/app/repository"
	"github.com/neotaste/creator-portal/internal/pkg/review"
	"github.com/neotaste/creator-portal/internal/pkg/usercontext"
	"github.com/neotaste/creator-portal/internal/pkg/viewmodel"
)

// HandleDashboard renders the creator dashboard with all tabs
func HandleDashboard(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	repos := repository.GetGlobalRepositories()

	creator, err := repos.Creator.GetByID(userCtx.UserID)
	if err != nil {
		fiberlog.Errorf("[Dashboard] Failed to load creator %d: %v", userCtx.UserID, err)
		return flash.WithError(c, fiber.Map{
			"type":    "error",
			"message": "Could not load your account",
		}).Redirect("/login")
	}

	videos, err := repos.Video.GetByCreatorID(creator.ID)
	if err != nil {
		fiberlog.Errorf("[Dashboard] Failed to load videos for creator %d: %v", creator.ID, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not load your videos")
	}

	invoices, err := repos.Invoice.GetByCreatorID(creator.ID)
	if err != nil {
		fiberlog.Errorf("[Dashboard] Failed to load invoices for creator %d: %v", creator.ID, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not load your invoices")
	}

	submitBlocked := ""
	canSubmit := true
	if err := review.CanSubmitNewVideo(videos); err != nil {
		canSubmit = false
		var eligErr *review.EligibilityError
		if errors.As(err, &eligErr) {
			submitBlocked = eligErr.Reason
		}
	}

	payments := viewmodel.SamplePaymentHistory()

	return c.Render("dashboard", fiber.Map{
		"Page":             "dashboard",
		"FromProtected":    true,
		"Username":         creator.Name,
		"Msg":              flash.Get(c),
		"CSRFToken":        c.Locals("csrf"),
		"Creator":          creator,
		"ReferralLink":     viewmodel.ReferralLink(creator.VoucherCode),
		"MonthlyReferrals": viewmodel.SampleMonthlyReferrals(),
		"PaymentHistory":   payments,
		"TotalPaid":        viewmodel.TotalByStatus(payments, "paid"),
		"TotalPending":     viewmodel.TotalByStatus(payments, "pending"),
		"InvoiceFAQ":       viewmodel.InvoiceFAQ(),
		"Videos":           videos,
		"Invoices":         invoices,
		"EligibleVideos":   review.EligibleVideos(videos),
		"CanSubmitVideo":   canSubmit,
		"SubmitBlocked":    submitBlocked,
	}, "layouts/main")
}
