package mailing

import (
	"fmt"
	"strconv"

	"FoodBook-Backend/internal/utils"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// Mailer delivers a single message. Services depend on the interface so
// tests can record outgoing mail instead of dialing SMTP.
type Mailer interface {
	Send(toEmail string, subject string, body string) error
}

type smtpMailer struct{}

func NewSMTPMailer() Mailer {
	return &smtpMailer{}
}

func (m *smtpMailer) Send(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

const (
	SubjectActivation  = "Account activation"
	SubjectPasswordSet = "Password reset"
)

// ActivationBody builds the fixed activation template parameterised by app
// URL and token.
func ActivationBody(appURL, fullName, token string) string {
	return fmt.Sprintf(
		"Hello %s,<br>your account activation link:<br><a href=\"%s/api/v1/users/activate?token=%s\">%s/api/v1/users/activate?token=%s</a>",
		fullName, appURL, token, appURL, token,
	)
}

// PasswordSetBody builds the fixed set-new-password template.
func PasswordSetBody(appURL, fullName, token string) string {
	return fmt.Sprintf(
		"Hello %s,<br>your link to set a new password:<br><a href=\"%s/api/v1/users/password/set?token=%s\">%s/api/v1/users/password/set?token=%s</a>",
		fullName, appURL, token, appURL, token,
	)
}
