package email

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"godev-site-backend/config"
	"godev-site-backend/internal/domain"
)

func TestUnconfiguredServiceIsANoOp(t *testing.T) {
	// No SMTP credentials: sends must report success without touching
	// the network so local setups keep working.
	s := NewService(&config.Config{})

	assert.False(t, s.IsConfigured())

	err := s.NotifyContact(context.Background(), &domain.ContactRequest{
		Name: "Al", Email: "a@b.com", Message: "Hello there, checking in.",
	})
	assert.NoError(t, err)

	err = s.NotifyApplication(context.Background(), &domain.CareerApplication{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		Phone: "+628123", Position: "Software Developer",
		ApplicantType: "employee", Experience: "some", CoverLetter: "letter",
	})
	assert.NoError(t, err)
}

func TestApplicationTemplates(t *testing.T) {
	app := &domain.CareerApplication{
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@example.com",
		Phone:         "+628123456789",
		Position:      "Software Developer",
		ApplicantType: "hippies",
		Experience:    "Five years of Go.",
		CoverLetter:   "Please hire me.",
	}

	t.Run("without a CV", func(t *testing.T) {
		text, err := renderText(applicationTextTemplate, app)
		assert.NoError(t, err)
		assert.Contains(t, text, "No CV uploaded")
		assert.Contains(t, text, "Jane Doe")
		assert.Contains(t, text, "Software Developer")

		html, err := renderHTML(applicationHTMLTemplate, app)
		assert.NoError(t, err)
		assert.Contains(t, html, "No CV uploaded")
	})

	t.Run("with a CV", func(t *testing.T) {
		url := "https://cdn.example.com/cv-uploads/1_abc.pdf"
		name := "resume.pdf"
		app.CVFileURL = &url
		app.CVFileName = &name

		text, err := renderText(applicationTextTemplate, app)
		assert.NoError(t, err)
		assert.Contains(t, text, url)
		assert.NotContains(t, text, "No CV uploaded")

		html, err := renderHTML(applicationHTMLTemplate, app)
		assert.NoError(t, err)
		assert.Contains(t, html, url)
		assert.Contains(t, html, "resume.pdf")
	})
}

func TestBuildMessage(t *testing.T) {
	msg, err := buildMessage("careers@godev.com", "hr@godev.com", "jane@example.com", "New Job Application", "plain body", "<p>html body</p>")
	assert.NoError(t, err)

	raw := string(msg)
	assert.Contains(t, raw, "From: GoDev <careers@godev.com>")
	assert.Contains(t, raw, "To: hr@godev.com")
	assert.Contains(t, raw, "Reply-To: jane@example.com")
	assert.Contains(t, raw, "Subject: New Job Application")
	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "plain body")
	assert.Contains(t, raw, "<p>html body</p>")
	// Headers end before the body starts.
	assert.True(t, strings.Contains(raw, "\r\n\r\n"))
}
