package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/sujit-baniya/flash"

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

type videoWorkflow struct {
	c           *fiber.Ctx
	userCtx     usercontext.UserContext
	videoRepo   repository.VideoRepository
	creatorRepo repository.CreatorRepository
	store       *blobstore.Client
}

var errResponseHandled = errors.New("response already handled")

// videoSubmission is a parsed submit or resubmit form. A pasted link and an
// uploaded file are both valid sources; file is nil for link-only posts.
type videoSubmission struct {
	form        *multipart.Form
	file        *multipart.FileHeader
	title       string
	description string
	videoURL    string
}

// HandleVideoSubmit accepts a new video submission
func HandleVideoSubmit(c *fiber.Ctx) error {
	return newVideoWorkflow(c).runSubmit()
}

// HandleVideoResubmit replaces the source of a rejected video and requeues it
func HandleVideoResubmit(c *fiber.Ctx) error {
	return newVideoWorkflow(c).runResubmit(c.Params("uuid"))
}

func newVideoWorkflow(c *fiber.Ctx) *videoWorkflow {
	return &videoWorkflow{
		c:           c,
		userCtx:     usercontext.GetUserContext(c),
		videoRepo:   repository.GetGlobalFactory().GetVideoRepository(),
		creatorRepo: repository.GetGlobalFactory().GetCreatorRepository(),
		store:       blobstore.GetClient(),
	}
}

func (w *videoWorkflow) runSubmit() error {
	if !w.userCtx.IsLoggedIn {
		return w.c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}

	sub, err := w.parseSubmitForm()
	if err != nil {
		if errors.Is(err, errResponseHandled) {
			return nil
		}
		return err
	}
	if sub.form != nil {
		defer sub.form.RemoveAll()
	}

	if sub.file != nil {
		if err := w.validateFile(sub.file); err != nil {
			if errors.Is(err, errResponseHandled) {
				return nil
			}
			return err
		}
	}

	unlock, err := w.acquireSubmitLock()
	if err != nil {
		if errors.Is(err, errResponseHandled) {
			return nil
		}
		return err
	}
	defer unlock()

	if err := w.checkSubmissionGate(); err != nil {
		if errors.Is(err, errResponseHandled) {
			return nil
		}
		return err
	}

	video, err := w.persistSubmission(sub)
	if err != nil {
		if errors.Is(err, errResponseHandled) {
			return nil
		}
		return err
	}

	go statistics.UpdateStatisticsCache()
	return w.respondSuccess(fmt.Sprintf("Video submitted for review: %s", video.Title))
}

func (w *videoWorkflow) runResubmit(videoUUID string) error {
	if !w.userCtx.IsLoggedIn {
		return w.c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}

	video, err := w.videoRepo.GetByUUID(videoUUID)
	if err != nil || video.CreatorID != w.userCtx.UserID {
		nfe := &review.NotFoundError{Resource: "video"}
		return respondWorkflowError(w.c, fiber.StatusNotFound, nfe.Error(), constants.DashboardRoute)
	}

	sub, err := w.parseResubmitForm()
	if err != nil {
		if errors.Is(err, errResponseHandled) {
			return nil
		}
		return err
	}
	if sub.form != nil {
		defer sub.form.RemoveAll()
	}

	replacement := review.VideoResubmission{
		Title:       sub.title,
		Description: sub.description,
		VideoURL:    sub.videoURL,
	}

	oldPath := video.FilePath

	if sub.file != nil {
		if err := w.validateFile(sub.file); err != nil {
			if errors.Is(err, errResponseHandled) {
				return nil
			}
			return err
		}

		objectKey, fileType, err := w.storeFile(sub.file)
		if err != nil {
			if errors.Is(err, errResponseHandled) {
				return nil
			}
			return err
		}
		replacement.FilePath = objectKey
		replacement.FileName = sub.file.Filename
		replacement.FileSize = sub.file.Size
		replacement.FileType = fileType
	}

	if err := review.ResubmitVideo(video, replacement); err != nil {
		if replacement.FilePath != "" {
			w.cleanupBlob(replacement.FilePath)
		}
		return respondWorkflowError(w.c, fiber.StatusUnprocessableEntity, err.Error(), constants.DashboardRoute)
	}

	if err := w.videoRepo.Update(video); err != nil {
		fiberlog.Errorf("[Video] Failed to update resubmitted video %s: %v", video.UUID, err)
		if replacement.FilePath != "" {
			w.cleanupBlob(replacement.FilePath)
		}
		return respondWorkflowError(w.c, fiber.StatusInternalServerError, "Could not save your submission", constants.DashboardRoute)
	}

	// Replaced file is no longer referenced
	if oldPath != "" && oldPath != video.FilePath {
		w.cleanupBlob(oldPath)
	}

	go statistics.UpdateStatisticsCache()
	return w.respondSuccess("Your video was resubmitted for review")
}

func (w *videoWorkflow) parseSubmitForm() (*videoSubmission, error) {
	return w.parseSubmission(true)
}

// parseResubmitForm keeps title and description optional; empty values
// leave the existing ones in place.
func (w *videoWorkflow) parseResubmitForm() (*videoSubmission, error) {
	return w.parseSubmission(false)
}

func (w *videoWorkflow) parseSubmission(titleRequired bool) (*videoSubmission, error) {
	sub := &videoSubmission{
		title:       strings.TrimSpace(w.c.FormValue("title")),
		description: strings.TrimSpace(w.c.FormValue("description")),
		videoURL:    strings.TrimSpace(w.c.FormValue("video_url")),
	}

	// Link-only posts arrive urlencoded; only a file upload needs the
	// multipart form.
	if form, err := w.c.MultipartForm(); err == nil {
		sub.form = form
		if files := form.File["file"]; len(files) > 0 && files[0].Filename != "" {
			sub.file = files[0]
		}
	}

	if titleRequired && sub.title == "" {
		verr := &review.ValidationError{Field: "title", Message: "please enter a title"}
		return nil, markHandledResponse(respondWorkflowError(w.c, fiber.StatusUnprocessableEntity, verr.Error(), constants.DashboardRoute))
	}

	// Uploaded file takes precedence over a pasted link
	if sub.file == nil {
		if sub.videoURL == "" {
			verr := &review.ValidationError{Field: "source", Message: "paste a video link or upload a file"}
			return nil, markHandledResponse(respondWorkflowError(w.c, fiber.StatusUnprocessableEntity, verr.Error(), constants.DashboardRoute))
		}
		if u, err := url.Parse(sub.videoURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			verr := &review.ValidationError{Field: "video_url", Message: "the video link must be an http(s) URL"}
			return nil, markHandledResponse(respondWorkflowError(w.c, fiber.StatusUnprocessableEntity, verr.Error(), constants.DashboardRoute))
		}
	}

	return sub, nil
}

func (w *videoWorkflow) validateFile(file *multipart.FileHeader) error {
	if err := upload.ValidateVideoSize(file.Size); err != nil {
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

	if _, err := upload.ValidateVideoBySniff(file.Filename, head); err != nil {
		return markHandledResponse(respondWorkflowError(w.c, fiber.StatusUnsupportedMediaType, err.Error(), constants.DashboardRoute))
	}

	return nil
}

// acquireSubmitLock serializes concurrent submissions of the same creator so
// the one-pending-video rule holds under parallel requests.
func (w *videoWorkflow) acquireSubmitLock() (func(), error) {
	lockKey := fmt.Sprintf("lock:video-submit:%d", w.userCtx.UserID)
	ok, err := cache.AcquireLock(lockKey, "1", 30*time.Second)
	if err != nil {
		fiberlog.Warnf("[Video] Submit lock error for creator %d: %v", w.userCtx.UserID, err)
		return func() {}, nil
	}
	if !ok {
		cerr := &review.ConflictError{Resource: "video submission", Message: "another submission is already in progress"}
		return func() {}, markHandledResponse(respondWorkflowError(w.c, fiber.StatusConflict, cerr.Error(), constants.DashboardRoute))
	}
	return func() { _ = cache.ReleaseLock(lockKey) }, nil
}

func (w *videoWorkflow) checkSubmissionGate() error {
	videos, err := w.videoRepo.GetByCreatorID(w.userCtx.UserID)
	if err != nil {
		fiberlog.Errorf("[Video] Failed to load videos for gate check: %v", err)
		return markHandledResponse(respondWorkflowError(w.c, fiber.StatusInternalServerError, "Could not check your submissions", constants.DashboardRoute))
	}

	if err := review.CanSubmitNewVideo(videos); err != nil {
		return markHandledResponse(respondWorkflowError(w.c, fiber.StatusUnprocessableEntity, err.Error(), constants.DashboardRoute))
	}

	return nil
}

func (w *videoWorkflow) storeFile(file *multipart.FileHeader) (string, string, error) {
	creator, err := w.creatorRepo.GetByID(w.userCtx.UserID)
	if err != nil {
		fiberlog.Errorf("[Video] Failed to load creator %d: %v", w.userCtx.UserID, err)
		return "", "", markHandledResponse(respondWorkflowError(w.c, fiber.StatusInternalServerError, "Could not process your upload", constants.DashboardRoute))
	}

	src, err := file.Open()
	if err != nil {
		fiberlog.Errorf("Error opening uploaded file: %v", err)
		return "", "", markHandledResponse(w.c.Status(fiber.StatusInternalServerError).SendString("Could not process the file"))
	}
	defer src.Close()

	objectKey := blobstore.ObjectKey(creator.UUID, file.Filename)
	result, err := w.store.Upload(context.Background(), w.store.VideoBucket(), objectKey, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		fiberlog.Errorf("[Video] Upload to storage failed: %v", err)
		return "", "", markHandledResponse(respondWorkflowError(w.c, fiber.StatusInternalServerError, "Could not store your video", constants.DashboardRoute))
	}

	return result.ObjectKey, result.ContentType, nil
}

func (w *videoWorkflow) persistSubmission(sub *videoSubmission) (*models.Video, error) {
	video := &models.Video{
		CreatorID:   w.userCtx.UserID,
		Title:       sub.title,
		Description: sub.description,
		VideoURL:    sub.videoURL,
		Status:      models.VideoStatusPending,
	}

	if sub.file != nil {
		objectKey, fileType, err := w.storeFile(sub.file)
		if err != nil {
			return nil, err
		}
		video.FilePath = objectKey
		video.FileName = sub.file.Filename
		video.FileSize = sub.file.Size
		video.FileType = fileType
	}

	if err := w.videoRepo.Create(video); err != nil {
		fiberlog.Errorf("[Video] Failed to save video: %v", err)
		if video.FilePath != "" {
			w.cleanupBlob(video.FilePath)
		}
		return nil, markHandledResponse(respondWorkflowError(w.c, fiber.StatusInternalServerError, "Could not save your submission", constants.DashboardRoute))
	}

	return video, nil
}

func (w *videoWorkflow) cleanupBlob(objectKey string) {
	if w.store == nil {
		return
	}
	if err := w.store.DeleteObject(context.Background(), w.store.VideoBucket(), objectKey); err != nil {
		fiberlog.Warnf("[Video] Failed to clean up stored file %s: %v", objectKey, err)
	}
}

func (w *videoWorkflow) respondSuccess(message string) error {
	return respondWorkflowSuccess(w.c, message)
}

func respondWorkflowSuccess(c *fiber.Ctx, message string) error {
	flash.WithSuccess(c, fiber.Map{
		"type":    "success",
		"message": message,
	})

	if isHTMXRequest(c) {
		c.Set("HX-Redirect", constants.DashboardRoute)
		return c.SendString(message)
	}

	return c.Redirect(constants.DashboardRoute)
}

func isHTMXRequest(c *fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

func respondWorkflowError(c *fiber.Ctx, status int, message, redirectPath string) error {
	flash.WithError(c, fiber.Map{
		"type":    "error",
		"message": message,
	})
	if isHTMXRequest(c) {
		return c.Status(status).SendString(message)
	}
	return c.Redirect(redirectPath)
}

func markHandledResponse(err error) error {
	if err != nil {
		return err
	}
	return errResponseHandled
}
