package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"godev-site-backend/internal/domain"
	"godev-site-backend/pkg/apperror"
	"godev-site-backend/pkg/validation"
)

type contactUsecase struct {
	notifier domain.Notifier
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(notifier domain.Notifier, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		notifier: notifier,
		validate: validate,
	}
}

// Submit validates the contact message and relays it to the contact
// mailbox. There is no persistence step; the notification is the only
// record of the message, so a send failure fails the whole submission.
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if err := uc.validate.Struct(req); err != nil {
		return apperror.Validation(validation.FieldErrors(err))
	}

	ctx, cancel := context.WithTimeout(ctx, emailTimeout)
	defer cancel()

	if err := uc.notifier.NotifyContact(ctx, req); err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to send message. Please try again later.", err)
	}

	return nil
}
