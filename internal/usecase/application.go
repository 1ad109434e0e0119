package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"godev-site-backend/internal/domain"
	"godev-site-backend/pkg/apperror"
	"godev-site-backend/pkg/logger"
	"godev-site-backend/pkg/validation"
)

// Per-call deadlines for the external services. A timeout is treated
// the same as the corresponding call failing.
const (
	uploadTimeout = 30 * time.Second
	insertTimeout = 10 * time.Second
	emailTimeout  = 15 * time.Second
)

type applicationUsecase struct {
	repo     domain.ApplicationRepository
	files    domain.FileStore
	notifier domain.Notifier
	validate *validator.Validate
}

// NewApplicationUsecase creates a new career application usecase
func NewApplicationUsecase(
	repo domain.ApplicationRepository,
	files domain.FileStore,
	notifier domain.Notifier,
	validate *validator.Validate,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		repo:     repo,
		files:    files,
		notifier: notifier,
		validate: validate,
	}
}

// Submit runs the application pipeline: validate, upload the CV when
// one was supplied, persist, notify HR. The upload and the notification
// are best effort; a persistence failure is the only fatal step after
// validation.
func (uc *applicationUsecase) Submit(ctx context.Context, req *domain.CareerApplicationRequest) (*domain.CareerApplication, error) {
	normalizeApplication(req)

	if fields := uc.validateApplication(req); len(fields) > 0 {
		return nil, apperror.Validation(fields)
	}

	app := &domain.CareerApplication{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Position:      req.Position,
		ApplicantType: req.ApplicantType,
		Experience:    req.Experience,
		CoverLetter:   req.CoverLetter,
		Status:        domain.ApplicationStatusPending,
	}

	if req.CV != nil {
		result := uc.uploadCV(ctx, req.CV)
		if result.Ok() {
			app.CVFileURL = &result.Stored.URL
			name := req.CV.Filename
			app.CVFileName = &name
		} else {
			// The applicant record takes priority over the attachment:
			// a failed upload degrades the submission, never rejects it.
			logger.Log.Warn("cv upload skipped",
				"reason", result.Reason,
				"applicant", req.Email,
			)
		}
	}

	insertCtx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()
	if err := uc.repo.Create(insertCtx, app); err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to submit application. Please try again later.", err)
	}

	notifyCtx, cancelNotify := context.WithTimeout(ctx, emailTimeout)
	defer cancelNotify()
	if err := uc.notifier.NotifyApplication(notifyCtx, app); err != nil {
		// The record is already persisted; the notification is best
		// effort and its failure is only logged.
		logger.Log.Warn("application notification failed",
			"error", err,
			"application_id", app.ID,
		)
	}

	return app, nil
}

// uploadCV makes a single upload attempt and maps any failure into a
// skipped outcome.
func (uc *applicationUsecase) uploadCV(ctx context.Context, cv *domain.CVFile) domain.UploadResult {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	stored, err := uc.files.Upload(ctx, cv)
	if err != nil {
		return domain.SkippedUpload(err.Error())
	}
	return domain.Uploaded(stored)
}

// normalizeApplication trims all text fields and applies the default
// applicant type before validation.
func normalizeApplication(req *domain.CareerApplicationRequest) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Position = strings.TrimSpace(req.Position)
	req.ApplicantType = strings.TrimSpace(req.ApplicantType)
	req.Experience = strings.TrimSpace(req.Experience)
	req.CoverLetter = strings.TrimSpace(req.CoverLetter)

	if req.ApplicantType == "" {
		req.ApplicantType = domain.ApplicantTypeEmployee
	}
}

// validateApplication collects every violation in one pass so the
// client can annotate all fields at once.
func (uc *applicationUsecase) validateApplication(req *domain.CareerApplicationRequest) map[string]string {
	fields := map[string]string{}
	if err := uc.validate.Struct(req); err != nil {
		fields = validation.FieldErrors(err)
	}

	if req.Position != "" && !domain.IsOpenPosition(req.Position) {
		if _, ok := fields["position"]; !ok {
			fields["position"] = "Position is not currently open"
		}
	}

	if req.CV != nil {
		if msg := validateCV(req.CV); msg != "" {
			fields["cvFile"] = msg
		}
	}

	return fields
}

func validateCV(cv *domain.CVFile) string {
	if cv.Size > domain.MaxCVFileSize {
		return "CV file must be smaller than 25MB"
	}
	if !domain.AllowedCVTypes[cv.ContentType] {
		return "CV must be a PDF or Word document"
	}
	return ""
}
