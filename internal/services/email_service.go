package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/config"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	cfg *config.Config
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendOtp delivers a verification code. Without SMTP configured the code is
// only logged, which keeps local development working.
func (s *EmailService) SendOtp(to, code string, ttl time.Duration) error {
	if s.cfg.SMTPHost == "" {
		slog.Warn("SMTP not configured, skipping otp email", "to", to)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.SMTPFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your verification code")
	m.SetBody("text/plain", fmt.Sprintf(
		"Your verification code is %s. It expires in %d minutes.",
		code, int(ttl.Minutes())))

	d := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}
	return nil
}
