package domain

import "context"

// ContactRequest represents a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email_shape"`
	Message string `json:"message" validate:"required,min=10"`
}

// ContactUsecase defines the business logic for the contact form.
type ContactUsecase interface {
	// Submit validates the message and relays it to the notification
	// mailbox. The message is never persisted; the notification is the
	// only record, so a send failure fails the submission.
	Submit(ctx context.Context, req *ContactRequest) error
}
