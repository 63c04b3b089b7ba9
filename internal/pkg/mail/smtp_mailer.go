package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/neotaste/creator-portal/internal/pkg/env"
)

// SendMail sends an email via SMTP
func SendMail(to string, subject string, body string) error {
	host := env.GetEnv("SMTP_HOST", "")
	port := env.GetEnv("SMTP_PORT", "")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := env.GetEnv("SMTP_SENDER", "")

	if sender == "" {
		sender = fmt.Sprintf("no-reply@%s", "localhost")
		log.Printf("SMTP_SENDER not set, using default sender: %s", sender)
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	err := smtp.SendMail(addr, auth, sender, []string{to}, msg)
	if err != nil {
		log.Printf("SMTP send error: %v", err)
	} else {
		log.Printf("Email sent to %s via %s", to, addr)
	}
	return err
}

// SendActivationMail sends the account activation link to a new creator.
func SendActivationMail(to string, name string, token string) error {
	publicDomain := env.GetEnv("PUBLIC_DOMAIN", "http://localhost:3000")
	link := fmt.Sprintf("%s/activate?token=%s", publicDomain, token)

	subject := "Activate your creator account"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>welcome to the creator program! Please confirm your email address to activate your account:</p><p><a href=\"%s\">%s</a></p>",
		name, link, link,
	)

	return SendMail(to, subject, body)
}

// SendWelcomeMail sends the onboarding confirmation with the voucher code.
func SendWelcomeMail(to string, name string, voucherCode string) error {
	subject := "Welcome to the creator program"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>your creator account is ready. Your personal voucher code is <strong>%s</strong>. Share it in your videos so we can attribute your referrals.</p>",
		name, voucherCode,
	)

	return SendMail(to, subject, body)
}
