package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/neotaste/creator-portal/app/models"
	"github.com/neotaste/creator-portal/app/repository"
	"github.com/neotaste/creator-portal/internal/pkg/database"
	"github.com/neotaste/creator-portal/internal/pkg/mail"
	"github.com/neotaste/creator-portal/internal/pkg/review"
	"github.com/neotaste/creator-portal/internal/pkg/session"
	"github.com/neotaste/creator-portal/internal/pkg/statistics"
)

const (
	FROM_PROTECTED string = "from_protected"
	AUTH_KEY       string = "authenticated"
	USER_ID        string = "user_id"
	USER_NAME      string = "username"
	USER_IS_ADMIN  string = "isAdmin"
)

func HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		var creator models.Creator
		fm := fiber.Map{
			"type": "error",
		}

		// notice: in production you should not inform the user
		// with detailed messages about login failures
		result := database.GetDB().Where("email = ?", c.FormValue("email")).First(&creator)
		if result.Error != nil {
			fm["message"] = "There is a problem with the login process"

			return flash.WithError(c, fm).Redirect("/login")
		}

		if !creator.CheckPassword(c.FormValue("password")) {
			fm["message"] = "There is a problem with the login process"

			return flash.WithError(c, fm).Redirect("/login")
		}

		if !creator.IsActive() {
			fm["message"] = "Please activate your account first. Check your inbox for the activation link."

			return flash.WithError(c, fm).Redirect("/login")
		}

		sess, err := session.GetSessionStore().Get(c)
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect("/login")
		}

		sess.Set(AUTH_KEY, true)
		sess.Set(USER_ID, creator.ID)
		sess.Set(USER_NAME, creator.Name)
		sess.Set(USER_IS_ADMIN, creator.Role == models.ROLE_ADMIN)

		err = sess.Save()
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect("/login")
		}

		database.GetDB().Model(&creator).Update("last_login_at", time.Now())

		fm = fiber.Map{
			"type":    "success",
			"message": "Welcome back!",
		}

		if creator.Role == models.ROLE_ADMIN {
			return flash.WithSuccess(c, fm).Redirect("/admin")
		}
		return flash.WithSuccess(c, fm).Redirect("/dashboard")
	}

	return c.Render("login", fiber.Map{
		"Page":          "login",
		"FromProtected": isLoggedIn(c),
		"Msg":           flash.Get(c),
		"CSRFToken":     c.Locals("csrf"),
	}, "layouts/main")
}

func HandleAuthLogout(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm["message"] = "logged out (no sess)"

		return flash.WithError(c, fm).Redirect("/login")
	}

	err = sess.Destroy()
	if err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect("/login")
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "See you soon!",
	}

	c.Locals(FROM_PROTECTED, false)

	return flash.WithSuccess(c, fm).Redirect("/login")
}

func HandleAuthRegister(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		name := strings.TrimSpace(c.FormValue("name"))
		email := strings.TrimSpace(c.FormValue("email"))
		voucherCode := strings.ToUpper(strings.TrimSpace(c.FormValue("voucher_code")))
		password := c.FormValue("password")

		creator, err := models.CreateCreator(name, email, password, voucherCode)
		if err != nil {
			fm := fiber.Map{
				"type":    "error",
				"message": fmt.Sprintf("something went wrong: %s", err),
			}

			return flash.WithError(c, fm).Redirect("/register")
		}

		if err := creator.GenerateActivationToken(); err != nil {
			fm := fiber.Map{
				"type":    "error",
				"message": fmt.Sprintf("something went wrong: %s", err),
			}

			return flash.WithError(c, fm).Redirect("/register")
		}

		ipv4, ipv6 := GetClientIP(c)
		creator.IPv4 = ipv4
		creator.IPv6 = ipv6

		err = repository.GetGlobalFactory().GetCreatorRepository().Create(creator)
		if err != nil {
			msg := fmt.Sprintf("something went wrong: %s", err)
			if repository.IsDuplicateEntry(err) {
				cerr := &review.ConflictError{Resource: "account", Message: "An account with this email or voucher code already exists"}
				msg = cerr.Error()
			}
			fm := fiber.Map{
				"type":    "error",
				"message": msg,
			}

			return flash.WithError(c, fm).Redirect("/register")
		}

		go func() {
			if err := mail.SendActivationMail(creator.Email, creator.Name, creator.ActivationToken); err != nil {
				fmt.Printf("failed to send activation mail: %v\n", err)
			}
		}()

		// Update statistics after registration
		go statistics.UpdateStatisticsCache()

		fm := fiber.Map{
			"type":    "success",
			"message": "Your account was created. Please check your inbox to activate it.",
		}

		return flash.WithSuccess(c, fm).Redirect("/login")
	}

	return c.Render("register", fiber.Map{
		"Page":          "register",
		"FromProtected": isLoggedIn(c),
		"Msg":           flash.Get(c),
		"CSRFToken":     c.Locals("csrf"),
	}, "layouts/main")
}

func HandleAuthActivate(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		token = strings.TrimSpace(c.FormValue("token"))
	}
	fm := fiber.Map{
		"type": "error",
	}

	if token == "" {
		return c.Render("activate", fiber.Map{
			"Page":          "activate",
			"FromProtected": isLoggedIn(c),
			"Msg":           flash.Get(c),
		}, "layouts/main")
	}

	repo := repository.GetGlobalFactory().GetCreatorRepository()
	creator, err := repo.GetByActivationToken(token)
	if err != nil {
		fm["message"] = "This activation link is invalid or was already used"

		return flash.WithError(c, fm).Redirect("/login")
	}

	creator.Status = models.STATUS_ACTIVE
	creator.ActivationToken = ""
	creator.ActivationSentAt = nil

	if err := repo.Update(creator); err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect("/login")
	}

	go func() {
		if err := mail.SendWelcomeMail(creator.Email, creator.Name, creator.VoucherCode); err != nil {
			fmt.Printf("failed to send welcome mail: %v\n", err)
		}
	}()

	fm = fiber.Map{
		"type":    "success",
		"message": "Your account is active. You can log in now!",
	}

	return flash.WithSuccess(c, fm).Redirect("/login")
}
