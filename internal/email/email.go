// Package email tells the shop about new contact messages and service bookings.
package email

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/01moynul/autoshop-golang/internal/config"
	"github.com/01moynul/autoshop-golang/internal/models"
	"gopkg.in/gomail.v2"
)

// Sender is the part of *gomail.Dialer the mailer needs.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends notifications over SMTP. Without a configured host it only logs them.
type Mailer struct {
	sender Sender
	from   string
	to     string
	logger *slog.Logger
}

// NewMailer builds a Mailer from cfg. An empty cfg.Host gives a log-only mailer.
func NewMailer(cfg config.SMTPConfig, logger *slog.Logger) *Mailer {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Mailer{from: cfg.User, to: cfg.NotifyTo, logger: logger}
	if m.to == "" {
		m.to = cfg.User
	}
	if m.from == "" {
		m.from = "no-reply@autoshop.local"
	}
	if cfg.Host != "" {
		m.sender = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	}
	return m
}

// WithSender swaps the SMTP transport, mainly for tests.
func (m *Mailer) WithSender(s Sender) *Mailer {
	m.sender = s
	return m
}

// Enabled reports whether messages actually leave the process.
func (m *Mailer) Enabled() bool {
	return m.sender != nil && m.to != ""
}

// Send delivers a plain-text message to the shop inbox, or logs it in log-only mode.
func (m *Mailer) Send(subject, body string) error {
	if !m.Enabled() {
		m.logger.Info("email not sent, smtp disabled", "subject", subject, "body", body)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("send %q: %w", subject, err)
	}
	return nil
}

// NotifyContactMessage reports a new contact form submission. Failures are logged only.
func (m *Mailer) NotifyContactMessage(msg *models.ContactMessage) {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\n", msg.Name, msg.Email)
	if msg.Phone != nil {
		fmt.Fprintf(&b, "Phone: %s\n", *msg.Phone)
	}
	fmt.Fprintf(&b, "\n%s\n", msg.Message)

	if err := m.Send("New contact message: "+msg.Subject, b.String()); err != nil {
		m.logger.Error("contact message notification failed", "id", msg.ID, "error", err)
	}
}

// NotifyServiceBooking reports a new booking request. Failures are logged only.
func (m *Mailer) NotifyServiceBooking(booking *models.ServiceBooking) {
	var b strings.Builder
	fmt.Fprintf(&b, "Customer: %s <%s>, %s\n", booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone)
	fmt.Fprintf(&b, "Service: %s\n", booking.ServiceType)
	if booking.VehicleType != nil {
		fmt.Fprintf(&b, "Vehicle: %s\n", *booking.VehicleType)
	}
	fmt.Fprintf(&b, "Preferred: %s %s\n", booking.PreferredDate.Format(time.DateOnly), booking.PreferredTime)
	if booking.Notes != nil {
		fmt.Fprintf(&b, "\nNotes: %s\n", *booking.Notes)
	}

	if err := m.Send("New service booking: "+booking.ServiceType, b.String()); err != nil {
		m.logger.Error("service booking notification failed", "id", booking.ID, "error", err)
	}
}
