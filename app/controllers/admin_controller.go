package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/sujit-baniya/flash"

	"github.com/neotaste/creator-portal/app/repository"
	"github.com/neotaste/creator-portal/internal/pkg/blobstore"
	"github.com/neotaste/creator-portal/internal/pkg/review"
	"github.com/neotaste/creator-portal/internal/pkg/statistics"
	"github.com/neotaste/creator-portal/internal/pkg/usercontext"
)

// AdminController handles the review desk using the repository pattern
type AdminController struct {
	repos *repository.Repositories
	store *blobstore.Client
}

// NewAdminController creates a new admin controller with repository dependencies
func NewAdminController(repos *repository.Repositories) *AdminController {
	return &AdminController{
		repos: repos,
		store: blobstore.GetClient(),
	}
}

// HandleDashboard renders the review desk with both queues and stat tiles
func (ac *AdminController) HandleDashboard(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	stats := statistics.GetStatisticsData()

	videoFilter := parseReviewFilter(c, "video")
	videos, err := ac.repos.Video.ListForReview(videoFilter)
	if err != nil {
		return ac.handleError(c, "Failed to load the video queue", err)
	}

	invoiceFilter := parseReviewFilter(c, "invoice")
	invoices, err := ac.repos.Invoice.ListForReview(invoiceFilter)
	if err != nil {
		return ac.handleError(c, "Failed to load the invoice queue", err)
	}

	approvedVideos, err := ac.repos.Video.CountByStatus("approved")
	if err != nil {
		return ac.handleError(c, "Failed to load video counts", err)
	}
	approvedInvoices, err := ac.repos.Invoice.CountByStatus("approved")
	if err != nil {
		return ac.handleError(c, "Failed to load invoice counts", err)
	}

	return c.Render("admin", fiber.Map{
		"Page":             "admin",
		"FromProtected":    true,
		"IsAdmin":          true,
		"Username":         userCtx.Username,
		"Msg":              flash.Get(c),
		"CSRFToken":        c.Locals("csrf"),
		"Stats":            stats,
		"ApprovedVideos":   approvedVideos,
		"ApprovedInvoices": approvedInvoices,
		"Videos":           videos,
		"Invoices":         invoices,
		"Filter":           videoFilter,
		"InvoiceFilter":    invoiceFilter,
	}, "layouts/main")
}

// HandleVideoApprove approves a pending video and clears any prior comment
func (ac *AdminController) HandleVideoApprove(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	video, err := ac.repos.Video.GetByUUID(c.Params("uuid"))
	if err != nil {
		return ac.handleError(c, (&review.NotFoundError{Resource: "video"}).Error(), err)
	}

	if err := review.ApproveVideo(video, userCtx.UserID); err != nil {
		return ac.flashReviewError(c, err)
	}

	if err := ac.repos.Video.Update(video); err != nil {
		return ac.handleError(c, "Failed to save the review decision", err)
	}

	go statistics.UpdateStatisticsCache()
	return flash.WithSuccess(c, fiber.Map{
		"type":    "success",
		"message": fmt.Sprintf("Video %q approved", video.Title),
	}).Redirect("/admin")
}

// HandleVideoReject rejects a pending video. A reason for the creator is required.
func (ac *AdminController) HandleVideoReject(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	video, err := ac.repos.Video.GetByUUID(c.Params("uuid"))
	if err != nil {
		return ac.handleError(c, (&review.NotFoundError{Resource: "video"}).Error(), err)
	}

	comment := strings.TrimSpace(c.FormValue("comment"))
	if err := review.RejectVideo(video, userCtx.UserID, comment); err != nil {
		return ac.flashReviewError(c, err)
	}

	if err := ac.repos.Video.Update(video); err != nil {
		return ac.handleError(c, "Failed to save the review decision", err)
	}

	go statistics.UpdateStatisticsCache()
	return flash.WithSuccess(c, fiber.Map{
		"type":    "success",
		"message": fmt.Sprintf("Video %q rejected", video.Title),
	}).Redirect("/admin")
}

// HandleInvoiceApprove approves a pending invoice
func (ac *AdminController) HandleInvoiceApprove(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	invoice, err := ac.repos.Invoice.GetByUUID(c.Params("uuid"))
	if err != nil {
		return ac.handleError(c, (&review.NotFoundError{Resource: "invoice"}).Error(), err)
	}

	if err := review.ApproveInvoice(invoice, userCtx.UserID); err != nil {
		return ac.flashReviewError(c, err)
	}

	if err := ac.repos.Invoice.Update(invoice); err != nil {
		return ac.handleError(c, "Failed to save the review decision", err)
	}

	go statistics.UpdateStatisticsCache()
	return flash.WithSuccess(c, fiber.Map{
		"type":    "success",
		"message": fmt.Sprintf("Invoice %s approved", invoice.FormattedAmount()),
	}).Redirect("/admin")
}

// HandleInvoiceDecline declines a pending invoice. A reason for the creator is required.
func (ac *AdminController) HandleInvoiceDecline(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	invoice, err := ac.repos.Invoice.GetByUUID(c.Params("uuid"))
	if err != nil {
		return ac.handleError(c, (&review.NotFoundError{Resource: "invoice"}).Error(), err)
	}

	comment := strings.TrimSpace(c.FormValue("comment"))
	if err := review.DeclineInvoice(invoice, userCtx.UserID, comment); err != nil {
		return ac.flashReviewError(c, err)
	}

	if err := ac.repos.Invoice.Update(invoice); err != nil {
		return ac.handleError(c, "Failed to save the review decision", err)
	}

	go statistics.UpdateStatisticsCache()
	return flash.WithSuccess(c, fiber.Map{
		"type":    "success",
		"message": fmt.Sprintf("Invoice %s declined", invoice.FormattedAmount()),
	}).Redirect("/admin")
}

// HandleFile streams a submitted document out of object storage for review.
// The bucket is picked by the :kind segment, videos or invoices.
func (ac *AdminController) HandleFile(c *fiber.Ctx) error {
	key := strings.TrimPrefix(c.Params("*"), "/")
	if key == "" {
		return c.SendStatus(fiber.StatusNotFound)
	}

	var bucket string
	switch c.Params("kind") {
	case "videos":
		bucket = ac.store.VideoBucket()
	case "invoices":
		bucket = ac.store.InvoiceBucket()
	default:
		return c.SendStatus(fiber.StatusNotFound)
	}

	body, contentType, err := ac.store.Fetch(c.Context(), bucket, key)
	if err != nil {
		fiberlog.Warnf("Admin file fetch failed for %s/%s: %v", bucket, key, err)
		return c.SendStatus(fiber.StatusNotFound)
	}

	if contentType != "" {
		c.Set(fiber.HeaderContentType, contentType)
	}
	return c.SendStream(body)
}

// parseReviewFilter reads the queue filter controls from the query string.
// Prefixed params (video_status, invoice_status, ...) keep the two queues
// independently filterable on one page.
func parseReviewFilter(c *fiber.Ctx, prefix string) repository.ReviewFilter {
	filter := repository.ReviewFilter{
		Status: c.Query(prefix + "_status"),
		Search: strings.TrimSpace(c.Query("q")),
	}
	if prefix == "invoice" {
		filter.Type = c.Query("invoice_type")
	}
	if from, err := time.Parse("2006-01-02", c.Query(prefix+"_from")); err == nil {
		filter.DateFrom = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query(prefix+"_to")); err == nil {
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &end
	}
	return filter
}

func (ac *AdminController) flashReviewError(c *fiber.Ctx, err error) error {
	return flash.WithError(c, fiber.Map{
		"type":    "error",
		"message": err.Error(),
	}).Redirect("/admin")
}

func (ac *AdminController) handleError(c *fiber.Ctx, message string, err error) error {
	fiberlog.Errorf("Admin Controller Error: %s - %v", message, err)

	return flash.WithError(c, fiber.Map{
		"type":    "error",
		"message": message,
	}).Redirect("/admin")
}
