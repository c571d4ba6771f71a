package email

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/saase/requesthub/internal/application/request/dto"
	"github.com/saase/requesthub/internal/shared/config"
	"github.com/saase/requesthub/internal/shared/logger"
)

// Sender is satisfied by *gomail.Dialer.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	config config.EmailConfig
	sender Sender
	logger logger.Interface
}

// NewSMTPMailer returns a mailer that does nothing unless cfg.Enabled is set.
func NewSMTPMailer(cfg config.EmailConfig, log logger.Interface) *SMTPMailer {
	var sender Sender
	if cfg.Enabled {
		sender = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	}
	return NewSMTPMailerWithSender(cfg, sender, log)
}

func NewSMTPMailerWithSender(cfg config.EmailConfig, sender Sender, log logger.Interface) *SMTPMailer {
	return &SMTPMailer{
		config: cfg,
		sender: sender,
		logger: log,
	}
}

func (s *SMTPMailer) SendRequestAcknowledgement(_ context.Context, req *dto.RequestDTO) error {
	if !s.config.Enabled || s.sender == nil {
		s.logger.Debugw("email disabled, skipping acknowledgement", "request_id", req.RequestID)
		return nil
	}

	subject := fmt.Sprintf("We received your request %s", req.RequestID)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Thank you, %s</h2>
			<p>Your request <strong>%s</strong> has been received and is now pending review.</p>
			<p>Reference: %s</p>
			<p>We will contact you once our team has reviewed it.</p>
		</body>
		</html>
	`, html.EscapeString(req.FullName), html.EscapeString(req.ProjectTitle), req.RequestID)

	plainBody := fmt.Sprintf(`
Thank you, %s

Your request "%s" has been received and is now pending review.

Reference: %s

We will contact you once our team has reviewed it.
	`, req.FullName, req.ProjectTitle, req.RequestID)

	if err := s.sendEmail(req.Email, subject, htmlBody, plainBody); err != nil {
		return err
	}

	s.logger.Infow("acknowledgement email sent", "request_id", req.RequestID)
	return nil
}

func (s *SMTPMailer) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
