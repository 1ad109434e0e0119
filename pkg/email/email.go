package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"time"

	"godev-site-backend/config"
	"godev-site-backend/internal/domain"
	"godev-site-backend/pkg/logger"
)

const dialTimeout = 10 * time.Second

// Service sends submission notifications over SMTP. It satisfies
// domain.Notifier. When SMTP credentials are absent the service runs in
// a degraded development mode: every send is logged and reported as
// successful without touching the network, so the forms keep working
// on local setups.
type Service struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	contactTo string
	hrTo      string
}

// NewService creates the notification service from SMTP configuration.
func NewService(cfg *config.Config) *Service {
	return &Service{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		contactTo: cfg.ContactEmailTo,
		hrTo:      cfg.HREmailTo,
	}
}

// IsConfigured checks if the service has valid SMTP configuration.
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// NotifyContact sends a contact form message to the contact mailbox.
func (s *Service) NotifyContact(ctx context.Context, req *domain.ContactRequest) error {
	subject := fmt.Sprintf("New Contact Form Submission from %s", req.Name)

	text, err := renderText(contactTextTemplate, req)
	if err != nil {
		return fmt.Errorf("render contact text: %w", err)
	}
	html, err := renderHTML(contactHTMLTemplate, req)
	if err != nil {
		return fmt.Errorf("render contact html: %w", err)
	}

	return s.send(ctx, s.contactTo, req.Email, subject, text, html)
}

// NotifyApplication sends a new-application notification to HR.
func (s *Service) NotifyApplication(ctx context.Context, app *domain.CareerApplication) error {
	subject := fmt.Sprintf("New Job Application: %s - %s %s", app.Position, app.FirstName, app.LastName)

	text, err := renderText(applicationTextTemplate, app)
	if err != nil {
		return fmt.Errorf("render application text: %w", err)
	}
	html, err := renderHTML(applicationHTMLTemplate, app)
	if err != nil {
		return fmt.Errorf("render application html: %w", err)
	}

	return s.send(ctx, s.hrTo, app.Email, subject, text, html)
}

// send delivers a multipart/alternative message (plain text plus HTML)
// to a single recipient, with Reply-To pointing back at the visitor.
func (s *Service) send(ctx context.Context, to, replyTo, subject, textBody, htmlBody string) error {
	if !s.IsConfigured() {
		logger.Log.Info("email not configured; skipping notification",
			"to", to,
			"subject", subject,
		)
		return nil
	}

	msg, err := buildMessage(s.fromEmail, to, replyTo, subject, textBody, htmlBody)
	if err != nil {
		return fmt.Errorf("build message: %w", err)
	}

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := c.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := c.Mail(s.fromEmail); err != nil {
		return fmt.Errorf("smtp mail: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}

	return c.Quit()
}

// buildMessage constructs a multipart/alternative MIME message.
func buildMessage(from, to, replyTo, subject, textBody, htmlBody string) ([]byte, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	textPart, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=UTF-8"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := textPart.Write([]byte(textBody)); err != nil {
		return nil, err
	}

	htmlPart, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=UTF-8"},
	})
	if err != nil {
		return nil, err
	}
	if _, err := htmlPart.Write([]byte(htmlBody)); err != nil {
		return nil, err
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: GoDev <%s>\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	if replyTo != "" {
		fmt.Fprintf(&msg, "Reply-To: %s\r\n", replyTo)
	}
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%q\r\n", mw.Boundary())
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	return msg.Bytes(), nil
}

func renderHTML(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
