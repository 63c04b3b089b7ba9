package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neotaste/creator-portal/app/models"
	"github.com/neotaste/creator-portal/internal/pkg/review"
	"github.com/neotaste/creator-portal/internal/pkg/upload"
	"github.com/neotaste/creator-portal/internal/pkg/usercontext"
)

func TestInvoiceWorkflowParseFields_ReferralPayout(t *testing.T) {
	app := fiber.New()
	app.Post("/invoices", func(c *fiber.Ctx) error {
		w := &invoiceWorkflow{c: c}
		fields, err := w.parseFields()
		require.NoError(t, err)
		assert.Equal(t, models.InvoiceTypeReferralPayout, fields.invoiceType)
		assert.Equal(t, "January referral commission", fields.description)
		assert.True(t, fields.amount.Equal(decimal.NewFromFloat(312.50)))
		assert.Equal(t, models.CurrencyGBP, fields.currency)
		assert.Equal(t, "2024-02-29", fields.invoiceDate.Format("2006-01-02"))
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(newInvoiceFormRequest(t, map[string]string{
		"type":         "referral_payout",
		"description":  "January referral commission",
		"amount":       "312.50",
		"invoice_date": "2024-02-29",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestInvoiceWorkflowParseFields_CurrencyDefaultsToGBP(t *testing.T) {
	app := fiber.New()
	app.Post("/invoices", func(c *fiber.Ctx) error {
		w := &invoiceWorkflow{c: c}
		fields, err := w.parseFields()
		require.NoError(t, err)
		assert.Equal(t, models.CurrencyGBP, fields.currency)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(newInvoiceFormRequest(t, map[string]string{
		"type":         "referral_payout",
		"description":  "January referral commission",
		"amount":       "100",
		"invoice_date": "2024-01-15",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestInvoiceWorkflowParseFields_InvalidType(t *testing.T) {
	app := fiber.New()
	app.Post("/invoices", func(c *fiber.Ctx) error {
		w := &invoiceWorkflow{c: c}
		_, err := w.parseFields()
		require.Error(t, err)
		var validationErr *review.ValidationError
		assert.True(t, errors.As(err, &validationErr))
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(newInvoiceFormRequest(t, map[string]string{
		"type":         "expense_report",
		"amount":       "100",
		"invoice_date": "2024-01-15",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestInvoiceWorkflowParseFields_RequiresDescription(t *testing.T) {
	app := fiber.New()
	app.Post("/invoices", func(c *fiber.Ctx) error {
		w := &invoiceWorkflow{c: c}
		_, err := w.parseFields()
		require.Error(t, err)
		var validationErr *review.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "description", validationErr.Field)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(newInvoiceFormRequest(t, map[string]string{
		"type":         "referral_payout",
		"description":  "   ",
		"amount":       "100",
		"invoice_date": "2024-01-15",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestInvoiceWorkflowParseFields_RejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []string{"0", "-10", "abc", ""} {
		app := fiber.New()
		app.Post("/invoices", func(c *fiber.Ctx) error {
			w := &invoiceWorkflow{c: c}
			_, err := w.parseFields()
			require.Error(t, err, "amount %q should be rejected", amount)
			var validationErr *review.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, "amount", validationErr.Field)
			return c.SendStatus(fiber.StatusNoContent)
		})

		resp, err := app.Test(newInvoiceFormRequest(t, map[string]string{
			"type":         "referral_payout",
			"description":  "January referral commission",
			"amount":       amount,
			"invoice_date": "2024-01-15",
		}), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}
}

func TestInvoiceWorkflowParseFields_RejectsBadDate(t *testing.T) {
	app := fiber.New()
	app.Post("/invoices", func(c *fiber.Ctx) error {
		w := &invoiceWorkflow{c: c}
		_, err := w.parseFields()
		require.Error(t, err)
		var validationErr *review.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "invoice_date", validationErr.Field)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(newInvoiceFormRequest(t, map[string]string{
		"type":         "referral_payout",
		"description":  "January referral commission",
		"amount":       "100",
		"invoice_date": "15/01/2024",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestInvoiceWorkflowParseFields_FoodExpenseNeedsVideo(t *testing.T) {
	app := fiber.New()
	app.Post("/invoices", func(c *fiber.Ctx) error {
		w := &invoiceWorkflow{c: c}
		_, err := w.parseFields()
		require.Error(t, err)
		var validationErr *review.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "video_uuid", validationErr.Field)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(newInvoiceFormRequest(t, map[string]string{
		"type":         "food_expense",
		"description":  "Review visit at The Ivy",
		"amount":       "42.80",
		"invoice_date": "2024-01-15",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestInvoiceWorkflowValidateFile_TooLarge(t *testing.T) {
	app := fiber.New()
	app.Post("/invoices", func(c *fiber.Ctx) error {
		w := &invoiceWorkflow{c: c}
		file := &multipart.FileHeader{
			Filename: "huge.pdf",
			Size:     upload.MaxInvoiceSize + 1,
		}
		err := w.validateFile(file)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errResponseHandled))
		return nil
	})

	req := httptest.NewRequest(http.MethodPost, "/invoices", nil)
	req.Header.Set("HX-Request", "true")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestInvoiceWorkflowRunSubmitUnauthorized(t *testing.T) {
	app := fiber.New()
	app.Post("/invoices", func(c *fiber.Ctx) error {
		w := &invoiceWorkflow{
			c:       c,
			userCtx: usercontext.UserContext{IsLoggedIn: false},
		}
		return w.runSubmit()
	})

	req := httptest.NewRequest(http.MethodPost, "/invoices", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func newInvoiceFormRequest(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()

	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}

	req := httptest.NewRequest(http.MethodPost, "/invoices", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
