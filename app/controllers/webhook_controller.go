package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/neotaste/creator-portal/app/models"
	"github.com/neotaste/creator-portal/app/repository"
	"github.com/neotaste/creator-portal/internal/pkg/mail"
	"github.com/neotaste/creator-portal/internal/pkg/review"
	"github.com/neotaste/creator-portal/internal/pkg/statistics"
)

type onboardingPayload struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	VoucherCode string `json:"voucher_code"`
}

// HandleOnboardingWebhook provisions a creator account from the upstream
// onboarding flow. The email is unverified at this point, so the account
// starts inactive and the creator receives an activation link.
func HandleOnboardingWebhook(c *fiber.Ctx) error {
	var payload onboardingPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid JSON body",
		})
	}

	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))
	payload.Name = strings.TrimSpace(payload.Name)
	payload.VoucherCode = strings.ToUpper(strings.TrimSpace(payload.VoucherCode))

	if payload.Email == "" || payload.Name == "" || payload.VoucherCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "email, name and voucher_code are required",
		})
	}

	password, err := randomPassword()
	if err != nil {
		fiberlog.Errorf("[Webhook] Failed to generate password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "internal error",
		})
	}

	creator, err := models.CreateCreator(payload.Name, payload.Email, password, payload.VoucherCode)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	if err := creator.GenerateActivationToken(); err != nil {
		fiberlog.Errorf("[Webhook] Failed to generate activation token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "internal error",
		})
	}

	repo := repository.GetGlobalFactory().GetCreatorRepository()
	if err := repo.Create(creator); err != nil {
		if repository.IsDuplicateEntry(err) {
			cerr := &review.ConflictError{Resource: "creator", Message: "a creator with this email or voucher code already exists"}
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"error":   cerr.Error(),
			})
		}
		fiberlog.Errorf("[Webhook] Failed to create creator %s: %v", payload.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "internal error",
		})
	}

	go func() {
		if err := mail.SendActivationMail(creator.Email, creator.Name, creator.ActivationToken); err != nil {
			fiberlog.Errorf("[Webhook] Failed to send activation mail to %s: %v", creator.Email, err)
		}
	}()

	go statistics.UpdateStatisticsCache()
	fiberlog.Infof("[Webhook] Onboarded creator %s (%s), activation pending", creator.Email, creator.UUID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user_id": creator.UUID,
	})
}

// randomPassword returns a throwaway credential; webhook accounts log in via
// OAuth or a password reset, never with this value.
func randomPassword() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
