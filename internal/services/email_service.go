package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendWelcomeEmail(email, fullName string) error
	SendDecisionEmail(email, dealName, status string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendWelcomeEmail(email, fullName string) error {
	if fullName == "" {
		fullName = email
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to Deal Pipeline")

	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your account has been created. You can now track deals through the pipeline.</p>
	`, fullName)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

func (s *emailService) SendDecisionEmail(email, dealName, status string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Deal %s: %s", dealName, status))

	body := fmt.Sprintf(`
		<h3>Decision on %s</h3>
		<p>Your deal <strong>%s</strong> was <strong>%s</strong> by the partnership.</p>
	`, dealName, dealName, status)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send decision email: %w", err)
	}
	return nil
}
