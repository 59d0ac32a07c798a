// Package mailer delivers the contact-form e-mails over SMTP. Delivery
// is strictly best-effort: both send methods report success as a bool
// and never return an error to the caller.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/saikumarkadapa/portfolio-api/internal/models"
)

// Config holds the SMTP transport settings. An empty Host disables
// delivery entirely; submissions are then only logged.
type Config struct {
	Host      string
	Port      int
	User      string
	Password  string
	Recipient string
}

// Mailer sends the owner notification and the visitor auto-reply.
type Mailer struct {
	cfg Config

	// sendMail is swapped out in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// New creates a Mailer from the given config.
func New(cfg Config) *Mailer {
	m := &Mailer{cfg: cfg, sendMail: smtp.SendMail}
	if !m.configured() {
		log.Println("[MAILER] SMTP not configured, contact notifications will be logged only")
	}
	return m
}

func (m *Mailer) configured() bool {
	return m.cfg.Host != "" && m.cfg.Recipient != ""
}

// SendContactNotification mails the site owner about a new contact-form
// submission. Returns whether delivery succeeded.
func (m *Mailer) SendContactNotification(n models.ContactNotification) bool {
	if !m.configured() {
		log.Printf("[MAILER] Notification not sent (SMTP not configured): from=%s subject=%q", n.Email, n.Subject)
		return false
	}

	subject := "New Contact Form Submission: " + n.Subject
	body := fmt.Sprintf(
		"You have a new contact form submission.\r\n\r\n"+
			"Name: %s %s\r\nEmail: %s\r\nSubject: %s\r\n\r\n%s\r\n\r\n"+
			"Received at %s.\r\n",
		n.FirstName, n.LastName, n.Email, n.Subject, n.Message,
		n.ReceivedAt.Format("2006-01-02 15:04:05"))

	if err := m.deliver(m.cfg.Recipient, subject, body, n.Email); err != nil {
		log.Printf("[MAILER] ERROR sending notification for %s: %v", n.Email, err)
		return false
	}
	log.Printf("[MAILER] Notification sent for contact submission from %s", n.Email)
	return true
}

// SendAutoReply mails an acknowledgement back to the submitter. Returns
// whether delivery succeeded.
func (m *Mailer) SendAutoReply(n models.ContactNotification) bool {
	if !m.configured() {
		log.Printf("[MAILER] Auto-reply not sent (SMTP not configured): to=%s", n.Email)
		return false
	}

	subject := "Thank you for your message"
	body := fmt.Sprintf(
		"Dear %s,\r\n\r\n"+
			"Thank you for reaching out through my portfolio. I have received your\r\n"+
			"message and will get back to you as soon as possible.\r\n\r\n"+
			"Your message:\r\nSubject: %s\r\n%s\r\n\r\n"+
			"This is an automated response, please do not reply to this email.\r\n",
		n.FirstName, n.Subject, n.Message)

	if err := m.deliver(n.Email, subject, body, ""); err != nil {
		log.Printf("[MAILER] ERROR sending auto-reply to %s: %v", n.Email, err)
		return false
	}
	log.Printf("[MAILER] Auto-reply sent to %s", n.Email)
	return true
}

// deliver assembles the message and hands it to the SMTP transport.
func (m *Mailer) deliver(to, subject, body, replyTo string) error {
	from := m.cfg.User
	if from == "" {
		from = "noreply@" + m.cfg.Host
	}

	headers := []string{
		"From: Portfolio <" + from + ">",
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
	}
	if replyTo != "" {
		headers = append(headers, "Reply-To: "+replyTo)
	}
	msg := strings.Join(headers, "\r\n") + "\r\n\r\n" + body

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	return m.sendMail(addr, auth, from, []string{to}, []byte(msg))
}
