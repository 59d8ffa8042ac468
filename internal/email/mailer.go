package email

import (
	"fmt"

	"legalvault_backend/internal/config"
	"legalvault_backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// Mailer sends the transactional mail the app needs. Services call it
// fire-and-forget; a delivery failure never fails the request.
type Mailer interface {
	SendOTP(to, name, otp string) error
	SendPasswordReset(to, name, resetLink string) error
	SendNotification(to, name, title, message string) error
}

// SMTPMailer delivers through the configured SMTP relay.
type SMTPMailer struct {
	cfg *config.Config
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Email.FromEmail)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(
		m.cfg.Email.SMTPHost,
		m.cfg.Email.SMTPPort,
		m.cfg.Email.SMTPUsername,
		m.cfg.Email.SMTPPassword,
	)
	return d.DialAndSend(msg)
}

func (m *SMTPMailer) SendOTP(to, name, otp string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your verification code is <b>%s</b>. It expires in 5 minutes.</p>",
		name, otp,
	)
	return m.send(to, "Your verification code", body)
}

func (m *SMTPMailer) SendPasswordReset(to, name, resetLink string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>We received a request to reset your password. "+
			"<a href=\"%s\">Reset it here</a>. The link expires in one hour. "+
			"If you did not ask for this, ignore this message.</p>",
		name, resetLink,
	)
	return m.send(to, "Password reset", body)
}

func (m *SMTPMailer) SendNotification(to, name, title, message string) error {
	body := fmt.Sprintf("<p>Hi %s,</p><p><b>%s</b></p><p>%s</p>", name, title, message)
	return m.send(to, title, body)
}

// LogMailer writes mail to the log instead of sending it. Used in
// development and tests when no SMTP relay is configured.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendOTP(to, name, otp string) error {
	logger.Info("mail: otp", "to", to, "otp", otp)
	return nil
}

func (m *LogMailer) SendPasswordReset(to, name, resetLink string) error {
	logger.Info("mail: password reset", "to", to, "link", resetLink)
	return nil
}

func (m *LogMailer) SendNotification(to, name, title, message string) error {
	logger.Info("mail: notification", "to", to, "title", title)
	return nil
}

// NewMailer picks the SMTP mailer when a host is configured, the log
// mailer otherwise.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.Email.SMTPHost == "" {
		return NewLogMailer()
	}
	return NewSMTPMailer(cfg)
}
