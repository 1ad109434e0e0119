package domain

import (
	"context"
	"time"
)

// Application status constants. New submissions start as pending; the
// review flow is driven manually from the applications table.
const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusReviewing = "reviewing"
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusRejected  = "rejected"
)

// Applicant type values offered by the careers form.
const (
	ApplicantTypeEmployee = "employee"
	ApplicantTypeHippies  = "hippies"
)

// MaxCVFileSize is the upper bound for CV attachments (25 MiB).
const MaxCVFileSize = 25 << 20

// AllowedCVTypes lists the accepted CV content types: PDF and Word.
var AllowedCVTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// CareerApplication represents one persisted job application.
type CareerApplication struct {
	ID            int64     `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Position      string    `json:"position"`
	ApplicantType string    `json:"applicant_type"`
	Experience    string    `json:"experience"`
	CoverLetter   string    `json:"cover_letter"`
	CVFileURL     *string   `json:"cv_file_url,omitempty"`
	CVFileName    *string   `json:"cv_file_name,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CareerApplicationRequest is the typed boundary for the multipart
// careers form. Field keys match the form field names on the wire.
type CareerApplicationRequest struct {
	FirstName     string  `json:"firstName" validate:"required"`
	LastName      string  `json:"lastName" validate:"required"`
	Email         string  `json:"email" validate:"required,email_shape"`
	Phone         string  `json:"phone" validate:"required"`
	Position      string  `json:"position" validate:"required"`
	ApplicantType string  `json:"applicantType" validate:"omitempty,oneof=employee hippies"`
	Experience    string  `json:"experience" validate:"required,min=10"`
	CoverLetter   string  `json:"coverLetter" validate:"required,min=50"`
	CV            *CVFile `json:"-"`
}

// CVFile is a CV attachment as received from the form.
type CVFile struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// StoredFile is the result of a successful object-store upload.
type StoredFile struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// UploadResult records the outcome of a best-effort CV upload: either
// the stored file, or the reason the upload was skipped. An upload
// failure never fails the submission; capturing the applicant record
// takes priority over the attachment.
type UploadResult struct {
	Stored *StoredFile
	Reason string
}

func Uploaded(f *StoredFile) UploadResult {
	return UploadResult{Stored: f}
}

func SkippedUpload(reason string) UploadResult {
	return UploadResult{Reason: reason}
}

// Ok reports whether the file was stored.
func (r UploadResult) Ok() bool {
	return r.Stored != nil
}

// FileStore uploads a CV attachment to the object-storage bucket and
// returns its public URL. A single attempt is made per submission.
type FileStore interface {
	Upload(ctx context.Context, file *CVFile) (*StoredFile, error)
}

// Notifier delivers human-readable notifications for new submissions
// to the operations mailbox.
type Notifier interface {
	NotifyContact(ctx context.Context, req *ContactRequest) error
	NotifyApplication(ctx context.Context, app *CareerApplication) error
}

// ApplicationRepository defines data access methods for applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *CareerApplication) error
	GetByID(ctx context.Context, id int64) (*CareerApplication, error)
	ListRecent(ctx context.Context, limit int) ([]CareerApplication, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// ApplicationUsecase defines business logic for career applications.
type ApplicationUsecase interface {
	// Submit runs the full pipeline: validate, upload the CV if one was
	// supplied (best effort), persist the record, and notify HR (best
	// effort). Only validation and persistence failures are fatal.
	Submit(ctx context.Context, req *CareerApplicationRequest) (*CareerApplication, error)
}
