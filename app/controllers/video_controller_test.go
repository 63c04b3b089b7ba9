package controllers

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neotaste/creator-portal/internal/pkg/upload"
	"github.com/neotaste/creator-portal/internal/pkg/usercontext"
)

func TestVideoWorkflowParseSubmitForm_FileUpload(t *testing.T) {
	app := fiber.New()
	app.Post("/videos", func(c *fiber.Ctx) error {
		w := &videoWorkflow{c: c}
		sub, err := w.parseSubmitForm()
		require.NoError(t, err)
		require.NotNil(t, sub.form)
		require.NotNil(t, sub.file)
		assert.Equal(t, "clip.mp4", sub.file.Filename)
		assert.Equal(t, "My first review", sub.title)
		assert.Equal(t, "Sunday brunch spot", sub.description)
		_ = sub.form.RemoveAll()
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := newMultipartVideoRequest(t, "/videos", map[string]string{
		"title":       "My first review",
		"description": "Sunday brunch spot",
	}, true)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestVideoWorkflowParseSubmitForm_LinkOnly(t *testing.T) {
	app := fiber.New()
	app.Post("/videos", func(c *fiber.Ctx) error {
		w := &videoWorkflow{c: c}
		sub, err := w.parseSubmitForm()
		require.NoError(t, err)
		assert.Nil(t, sub.file)
		assert.Equal(t, "My first review", sub.title)
		assert.Equal(t, "https://www.tiktok.com/@me/video/1", sub.videoURL)
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := newURLEncodedVideoRequest(t, "/videos", map[string]string{
		"title":     "My first review",
		"video_url": "https://www.tiktok.com/@me/video/1",
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestVideoWorkflowParseSubmitForm_FileTakesPrecedence(t *testing.T) {
	app := fiber.New()
	app.Post("/videos", func(c *fiber.Ctx) error {
		w := &videoWorkflow{c: c}
		sub, err := w.parseSubmitForm()
		require.NoError(t, err)
		require.NotNil(t, sub.file)
		assert.Equal(t, "clip.mp4", sub.file.Filename)
		assert.Equal(t, "https://www.tiktok.com/@me/video/1", sub.videoURL)
		_ = sub.form.RemoveAll()
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := newMultipartVideoRequest(t, "/videos", map[string]string{
		"title":     "My first review",
		"video_url": "https://www.tiktok.com/@me/video/1",
	}, true)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestVideoWorkflowParseSubmitForm_EmptyTitleRejected(t *testing.T) {
	app := fiber.New()
	app.Post("/videos", func(c *fiber.Ctx) error {
		w := &videoWorkflow{c: c}
		_, err := w.parseSubmitForm()
		require.Error(t, err)
		assert.True(t, errors.Is(err, errResponseHandled))
		return nil
	})

	req := newMultipartVideoRequest(t, "/videos", nil, true)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestVideoWorkflowParseSubmitForm_MissingSource(t *testing.T) {
	app := fiber.New()
	app.Post("/videos", func(c *fiber.Ctx) error {
		w := &videoWorkflow{c: c}
		_, err := w.parseSubmitForm()
		require.Error(t, err)
		assert.True(t, errors.Is(err, errResponseHandled))
		return nil
	})

	req := newMultipartVideoRequest(t, "/videos", map[string]string{"title": "My first review"}, false)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestVideoWorkflowParseSubmitForm_RejectsNonHTTPLink(t *testing.T) {
	app := fiber.New()
	app.Post("/videos", func(c *fiber.Ctx) error {
		w := &videoWorkflow{c: c}
		_, err := w.parseSubmitForm()
		require.Error(t, err)
		assert.True(t, errors.Is(err, errResponseHandled))
		return nil
	})

	req := newURLEncodedVideoRequest(t, "/videos", map[string]string{
		"title":     "My first review",
		"video_url": "ftp://example.com/clip.mp4",
	})
	req.Header.Set("HX-Request", "true")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestVideoWorkflowValidateFile_TooLarge(t *testing.T) {
	app := fiber.New()
	app.Post("/videos", func(c *fiber.Ctx) error {
		w := &videoWorkflow{c: c}
		file := &multipart.FileHeader{
			Filename: "huge.mp4",
			Size:     upload.MaxVideoSize + 1,
		}
		err := w.validateFile(file)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errResponseHandled))
		return nil
	})

	req := httptest.NewRequest(http.MethodPost, "/videos", nil)
	req.Header.Set("HX-Request", "true")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestVideoWorkflowRespondSuccessHTMX(t *testing.T) {
	app := fiber.New()
	app.Post("/videos", func(c *fiber.Ctx) error {
		w := &videoWorkflow{c: c}
		return w.respondSuccess("Video submitted for review: clip.mp4")
	})

	req := httptest.NewRequest(http.MethodPost, "/videos", nil)
	req.Header.Set("HX-Request", "true")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("HX-Redirect"))
	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	assert.Contains(t, string(body), "submitted for review")
}

func TestVideoWorkflowRespondSuccessRedirect(t *testing.T) {
	app := fiber.New()
	app.Post("/videos", func(c *fiber.Ctx) error {
		w := &videoWorkflow{c: c}
		return w.respondSuccess("Video submitted for review: clip.mp4")
	})

	req := httptest.NewRequest(http.MethodPost, "/videos", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestVideoWorkflowRunSubmitUnauthorized(t *testing.T) {
	app := fiber.New()
	app.Post("/videos", func(c *fiber.Ctx) error {
		w := &videoWorkflow{
			c:       c,
			userCtx: usercontext.UserContext{IsLoggedIn: false},
		}
		return w.runSubmit()
	})

	req := httptest.NewRequest(http.MethodPost, "/videos", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	assert.Equal(t, "Unauthorized", string(body))
}

func newMultipartVideoRequest(t *testing.T, target string, fields map[string]string, withFile bool) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	if withFile {
		part, err := writer.CreateFormFile("file", "clip.mp4")
		require.NoError(t, err)
		_, err = part.Write([]byte("\x00\x00\x00\x18ftypmp42fake-video-content"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func newURLEncodedVideoRequest(t *testing.T, target string, fields map[string]string) *http.Request {
	t.Helper()

	values := url.Values{}
	for name, value := range fields {
		values.Set(name, value)
	}

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	return req
}
