package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/shopspring/decimal"

	"github.com/neotaste/creator-portal/app/models"
	"github.com/neotaste/creator-portal/app/repository"
	"github.com/neotaste/creator-portal/internal/pkg/blobstore"
	"github.com/neotaste/creator-portal/internal/pkg/cache"
	"github.com/neotaste/creator-portal/internal/pkg/constants"
	"github.com/neotaste/creator-portal/internal/pkg/review"
	"github.com/neotaste/creator-portal/internal/pkg/statistics"
	"github.com/neotaste/creator-portal/internal/pkg/upload"
	"github.com/neotaste/creator-portal/internal/pkg/usercontext"
)

type invoiceWorkflow struct {
	c           *fiber.Ctx
	userCtx     usercontext.UserContext
	invoiceRepo repository.InvoiceRepository
	videoRepo   repository.VideoRepository
	creatorRepo repository.CreatorRepository
	store       *blobstore.Client
}

type invoiceForm struct {
	invoiceType string
	description string
	amount      decimal.Decimal
	currency    string
	invoiceDate time.Time
	videoUUID   string
}

// HandleInvoiceSubmit accepts a new invoice submission
func HandleInvoiceSubmit(c *fiber.Ctx) error {
	return newInvoiceWorkflow(c).runSubmit()
}

// HandleInvoiceReupload replaces the document of a declined invoice and requeues it
func HandleInvoiceReupload(c *fiber.Ctx) error {
	return newInvoiceWorkflow(c).runReupload(c.Params("uuid"))
}

func newInvoiceWorkflow(c *fiber.Ctx) *invoiceWorkflow {
	return &invoiceWorkflow{
		c:           c,
		userCtx:     usercontext.GetUserContext(c),
		invoiceRepo: repository.GetGlobalFactory().GetInvoiceRepository(),
		videoRepo:   repository.GetGlobalFactory().GetVideoRepository(),
		creatorRepo: repository.GetGlobalFactory().GetCreatorRepository(),
		store:       blobstore.GetClient(),
	}
}

func (w *invoiceWorkflow) runSubmit() error {
	if !w.userCtx.IsLoggedIn {
		return w.c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}

	form, file, fields, err := w.parseSubmitForm()
	if err != nil {
		if errors.Is(err, errResponseHandled) {
			return nil
		}
		return err
	}
	defer form.RemoveAll()

	if err := w.validateFile(file); err != nil {
		if errors.Is(err, errResponseHandled) {
			return nil
		}
		return err
	}

	unlock, err := w.acquireSubmitLock()
	if err != nil {
		if errors.Is(err, errResponseHandled) {
			return nil
		}
		return err
	}
	defer unlock()

	var video *models.Video
	if fields.invoiceType == models.InvoiceTypeFoodExpense {
		video, err = w.resolveExpenseVideo(fields.videoUUID)
		if err != nil {
			if errors.Is(err, errResponseHandled) {
				return nil
			}
			return err
		}
	}

	invoice, err := w.persistSubmission(file, fields, video)
	if err != nil {
		if errors.Is(err, errResponseHandled) {
			return nil
		}
		return err
	}

	// The flag update runs after the insert; the reconcile sweep repairs
	// the flag if this process dies in between.
	if video != nil {
		if err := w.videoRepo.MarkInvoiceSubmitted(video.ID); err != nil {
			fiberlog.Errorf("[Invoice] Failed to flag video %d after invoice %s: %v", video.ID, invoice.UUID, err)
		}
	}

	go statistics.UpdateStatisticsCache()
	return w.respondSuccess("Your invoice was submitted for review")
}

func (w *invoiceWorkflow) runReupload(invoiceUUID string) error {
	if !w.userCtx.IsLoggedIn {
		return w.c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}

	invoice, err := w.invoiceRepo.GetByUUID(invoiceUUID)
	if err != nil || invoice.CreatorID != w.userCtx.UserID {
		nfe := &review.NotFoundError{Resource: "invoice"}
		return respondWorkflowError(w.c, fiber.StatusNotFound, nfe.Error(), constants.DashboardRoute)
	}

	form, err := w.c.MultipartForm()
	if err != nil {
		fiberlog.Errorf("Error parsing multipart form: %v", err)
		return respondWorkflowError(w.c, fiber.StatusBadRequest, fmt.Sprintf("Upload failed: %s", err), constants.DashboardRoute)
	}
	defer form.RemoveAll()

	files := form.File["file"]
	if len(files) == 0 {
		return respondWorkflowError(w.c, fiber.StatusBadRequest, "No file uploaded", constants.DashboardRoute)
	}
	file := files[0]

	if err := w.validateFile(file); err != nil {
		if errors.Is(err, errResponseHandled) {
			return nil
		}
		return err
	}

	oldPath := invoice.FilePath

	objectKey, err := w.storeFile(file)
	if err != nil {
		if errors.Is(err, errResponseHandled) {
			return nil
		}
		return err
	}

	if err := review.ReuploadInvoice(invoice, objectKey, file.Filename, file.Size); err != nil {
		w.cleanupBlob(objectKey)
		return respondWorkflowError(w.c, fiber.StatusUnprocessableEntity, err.Error(), constants.DashboardRoute)
	}

	if err := w.invoiceRepo.Update(invoice); err != nil {
		fiberlog.Errorf("[Invoice] Failed to update reuploaded invoice %s: %v", invoice.UUID, err)
		w.cleanupBlob(objectKey)
		return respondWorkflowError(w.c, fiber.StatusInternalServerError, "Could not save your invoice", constants.DashboardRoute)
	}

	if oldPath != "" {
		w.cleanupBlob(oldPath)
	}

	go statistics.UpdateStatisticsCache()
	return w.respondSuccess("Your invoice was resubmitted for review")
}

func (w *invoiceWorkflow) parseSubmitForm() (*multipart.Form, *multipart.FileHeader, *invoiceForm, error) {
	form, err := w.c.MultipartForm()
	if err != nil {
		fiberlog.Errorf("Error parsing multipart form: %v", err)
		return nil, nil, nil, markHandledResponse(respondWorkflowError(w.c, fiber.StatusBadRequest, fmt.Sprintf("Upload failed: %s", err), constants.DashboardRoute))
	}

	files := form.File["file"]
	if len(files) == 0 {
		return nil, nil, nil, markHandledResponse(respondWorkflowError(w.c, fiber.StatusBadRequest, "No file uploaded", constants.DashboardRoute))
	}

	fields, err := w.parseFields()
	if err != nil {
		return nil, nil, nil, markHandledResponse(respondWorkflowError(w.c, fiber.StatusUnprocessableEntity, err.Error(), constants.DashboardRoute))
	}

	return form, files[0], fields, nil
}

func (w *invoiceWorkflow) parseFields() (*invoiceForm, error) {
	fields := &invoiceForm{
		invoiceType: strings.TrimSpace(w.c.FormValue("type")),
		description: strings.TrimSpace(w.c.FormValue("description")),
		currency:    strings.ToUpper(strings.TrimSpace(w.c.FormValue("currency"))),
		videoUUID:   strings.TrimSpace(w.c.FormValue("video_uuid")),
	}

	if err := review.ValidateInvoiceType(fields.invoiceType); err != nil {
		return nil, err
	}
	if fields.description == "" {
		return nil, &review.ValidationError{Field: "description", Message: "a description is required"}
	}
	if fields.currency == "" {
		fields.currency = models.CurrencyGBP
	}
	if err := review.ValidateCurrency(fields.currency); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(w.c.FormValue("amount")))
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, &review.ValidationError{Field: "amount", Message: "a positive amount is required"}
	}
	fields.amount = amount

	invoiceDate, err := time.Parse("2006-01-02", strings.TrimSpace(w.c.FormValue("invoice_date")))
	if err != nil {
		return nil, &review.ValidationError{Field: "invoice_date", Message: "invoice date must be YYYY-MM-DD"}
	}
	fields.invoiceDate = invoiceDate

	if fields.invoiceType == models.InvoiceTypeFoodExpense && fields.videoUUID == "" {
		return nil, &review.ValidationError{Field: "video_uuid", Message: "food expenses must reference an approved video"}
	}

	return fields, nil
}

func (w *invoiceWorkflow) validateFile(file *multipart.FileHeader) error {
	if err := upload.ValidateInvoiceSize(file.Size); err != nil {
		return markHandledResponse(respondWorkflowError(w.c, fiber.StatusRequestEntityTooLarge, err.Error(), constants.DashboardRoute))
	}

	pre, err := file.Open()
	if err != nil {
		fiberlog.Errorf("Error opening uploaded file for sniff: %v", err)
		return markHandledResponse(w.c.Status(fiber.StatusInternalServerError).SendString("Could not process the file"))
	}
	head := make([]byte, 512)
	n, _ := io.ReadFull(pre, head)
	if n > 0 {
		head = head[:n]
	}
	_ = pre.Close()

	if _, err := upload.ValidateInvoiceBySniff(file.Filename, head); err != nil {
		return markHandledResponse(respondWorkflowError(w.c, fiber.StatusUnsupportedMediaType, err.Error(), constants.DashboardRoute))
	}

	return nil
}

func (w *invoiceWorkflow) acquireSubmitLock() (func(), error) {
	lockKey := fmt.Sprintf("lock:invoice-submit:%d", w.userCtx.UserID)
	ok, err := cache.AcquireLock(lockKey, "1", 30*time.Second)
	if err != nil {
		fiberlog.Warnf("[Invoice] Submit lock error for creator %d: %v", w.userCtx.UserID, err)
		return func() {}, nil
	}
	if !ok {
		cerr := &review.ConflictError{Resource: "invoice submission", Message: "another submission is already in progress"}
		return func() {}, markHandledResponse(respondWorkflowError(w.c, fiber.StatusConflict, cerr.Error(), constants.DashboardRoute))
	}
	return func() { _ = cache.ReleaseLock(lockKey) }, nil
}

// resolveExpenseVideo enforces the eligibility gate server-side: only an
// approved video of this creator without a prior expense invoice qualifies.
func (w *invoiceWorkflow) resolveExpenseVideo(videoUUID string) (*models.Video, error) {
	video, err := w.videoRepo.GetByUUID(videoUUID)
	if err != nil || video.CreatorID != w.userCtx.UserID {
		nfe := &review.NotFoundError{Resource: "video"}
		return nil, markHandledResponse(respondWorkflowError(w.c, fiber.StatusNotFound, nfe.Error(), constants.DashboardRoute))
	}

	if !review.IsEligibleForExpense(video) {
		return nil, markHandledResponse(respondWorkflowError(w.c, fiber.StatusUnprocessableEntity,
			"this video is not eligible for a food expense invoice", constants.DashboardRoute))
	}

	return video, nil
}

func (w *invoiceWorkflow) storeFile(file *multipart.FileHeader) (string, error) {
	creator, err := w.creatorRepo.GetByID(w.userCtx.UserID)
	if err != nil {
		fiberlog.Errorf("[Invoice] Failed to load creator %d: %v", w.userCtx.UserID, err)
		return "", markHandledResponse(respondWorkflowError(w.c, fiber.StatusInternalServerError, "Could not process your upload", constants.DashboardRoute))
	}

	src, err := file.Open()
	if err != nil {
		fiberlog.Errorf("Error opening uploaded file: %v", err)
		return "", markHandledResponse(w.c.Status(fiber.StatusInternalServerError).SendString("Could not process the file"))
	}
	defer src.Close()

	objectKey := blobstore.ObjectKey(creator.UUID, file.Filename)
	result, err := w.store.Upload(context.Background(), w.store.InvoiceBucket(), objectKey, src, file.Size, "application/pdf")
	if err != nil {
		fiberlog.Errorf("[Invoice] Upload to storage failed: %v", err)
		return "", markHandledResponse(respondWorkflowError(w.c, fiber.StatusInternalServerError, "Could not store your invoice", constants.DashboardRoute))
	}

	return result.ObjectKey, nil
}

func (w *invoiceWorkflow) persistSubmission(file *multipart.FileHeader, fields *invoiceForm, video *models.Video) (*models.Invoice, error) {
	objectKey, err := w.storeFile(file)
	if err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		CreatorID:   w.userCtx.UserID,
		Type:        fields.invoiceType,
		Description: fields.description,
		Amount:      fields.amount,
		Currency:    fields.currency,
		InvoiceDate: fields.invoiceDate,
		FilePath:    objectKey,
		FileName:    file.Filename,
		FileSize:    file.Size,
		Status:      models.InvoiceStatusPending,
	}
	if video != nil {
		invoice.VideoID = &video.ID
	}

	if err := w.invoiceRepo.Create(invoice); err != nil {
		fiberlog.Errorf("[Invoice] Failed to save invoice: %v", err)
		w.cleanupBlob(objectKey)
		return nil, markHandledResponse(respondWorkflowError(w.c, fiber.StatusInternalServerError, "Could not save your invoice", constants.DashboardRoute))
	}

	return invoice, nil
}

func (w *invoiceWorkflow) cleanupBlob(objectKey string) {
	if w.store == nil {
		return
	}
	if err := w.store.DeleteObject(context.Background(), w.store.InvoiceBucket(), objectKey); err != nil {
		fiberlog.Warnf("[Invoice] Failed to clean up stored file %s: %v", objectKey, err)
	}
}

func (w *invoiceWorkflow) respondSuccess(message string) error {
	return respondWorkflowSuccess(w.c, message)
}
