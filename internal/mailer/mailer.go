// Package mailer sends contact-request notifications over SMTP. Delivery
// is best effort: an unconfigured or failing mailer never blocks the
// intake path.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"portfolio/internal/domain"
)

// Config holds SMTP connection settings. The mailer is considered
// configured only when Host, Username, Password, and To are all present.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Mailer sends notification mail for new contact requests.
type Mailer struct {
	cfg Config
}

// New creates a mailer from config. Always returns a usable mailer; an
// incomplete config just makes every send a silent no-op.
func New(cfg Config) *Mailer {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &Mailer{cfg: cfg}
}

// Configured reports whether the mailer has enough settings to send.
func (m *Mailer) Configured() bool {
	return m.cfg.Host != "" && m.cfg.Username != "" && m.cfg.Password != "" && m.cfg.To != ""
}

// NotifyContactRequest emails the contact request to the configured
// inbox. Returns whether a send was attempted; errors are logged, not
// returned, because notification failure must not fail the submission.
func (m *Mailer) NotifyContactRequest(cr *domain.ContactRequest) bool {
	if !m.Configured() {
		return false
	}

	msg := buildContactMessage(m.cfg.From, m.cfg.To, cr)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{m.cfg.To}, msg); err != nil {
		log.Printf("contact notification mail failed: %v", err)
		return false
	}

	return true
}

func buildContactMessage(from, to string, cr *domain.ContactRequest) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: New contact request: %s\r\n", sanitizeHeader(cr.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "Name: %s\n", cr.Name)
	fmt.Fprintf(&b, "Email: %s\n", cr.Email)
	if cr.BudgetRange != "" {
		fmt.Fprintf(&b, "Budget: %s\n", cr.BudgetRange)
	}
	if cr.Timeline != "" {
		fmt.Fprintf(&b, "Timeline: %s\n", cr.Timeline)
	}
	if cr.ProjectType != "" {
		fmt.Fprintf(&b, "Project type: %s\n", cr.ProjectType)
	}
	if cr.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", cr.Source)
	}
	b.WriteString("\n")
	b.WriteString(cr.Message)
	b.WriteString("\n")

	return []byte(b.String())
}

// sanitizeHeader strips CR/LF so user input cannot inject mail headers.
// A CRLF pair collapses to one space.
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
