package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendBookingRequestNotification(ctx context.Context, ownerEmail, renterName, toolTitle, startDate, endDate string) error {
	subject := fmt.Sprintf("New booking request for %s", toolTitle)
	body := fmt.Sprintf("Hello,\n\n%s requested to rent your tool %s from %s to %s.\n\nLog in to approve or reject the request.\n\nBest regards,\nThe Toolshed Team",
		renterName, toolTitle, startDate, endDate)
	return s.send(ownerEmail, subject, body)
}

func (s *emailService) SendBookingDecisionNotification(ctx context.Context, renterEmail, toolTitle string, approved bool) error {
	decision := "rejected"
	extra := ""
	if approved {
		decision = "approved"
		extra = " You can now proceed to payment."
	}
	subject := fmt.Sprintf("Your booking request was %s", decision)
	body := fmt.Sprintf("Hello,\n\nYour booking request for %s was %s.%s\n\nBest regards,\nThe Toolshed Team",
		toolTitle, decision, extra)
	return s.send(renterEmail, subject, body)
}

func (s *emailService) SendBookingCancellationNotification(ctx context.Context, ownerEmail, renterName, toolTitle string, refundPct int) error {
	subject := fmt.Sprintf("Booking cancelled - %s", toolTitle)
	body := fmt.Sprintf("Hello,\n\n%s cancelled the booking for %s. The renter is entitled to a refund of %d%% of the rental price.\n\nBest regards,\nThe Toolshed Team",
		renterName, toolTitle, refundPct)
	return s.send(ownerEmail, subject, body)
}

func (s *emailService) SendDepositRequiredNotification(ctx context.Context, renterEmail, toolTitle string, amountCents int64) error {
	subject := fmt.Sprintf("Damage deposit due - %s", toolTitle)
	body := fmt.Sprintf("Hello,\n\nThe condition report for %s indicates damage. A deposit of %.2f EUR is due.\n\nPlease log in to settle the deposit.\n\nBest regards,\nThe Toolshed Team",
		toolTitle, float64(amountCents)/100)
	return s.send(renterEmail, subject, body)
}
