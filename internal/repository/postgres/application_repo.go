package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"godev-site-backend/internal/domain"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new career application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new career application
func (r *applicationRepo) Create(ctx context.Context, app *domain.CareerApplication) error {
	query := `
		INSERT INTO career_applications
			(first_name, last_name, email, phone, position, applicant_type,
			 experience, cover_letter, cv_file_url, cv_file_name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	return r.db.QueryRow(ctx, query,
		app.FirstName,
		app.LastName,
		app.Email,
		app.Phone,
		app.Position,
		app.ApplicantType,
		app.Experience,
		app.CoverLetter,
		app.CVFileURL,
		app.CVFileName,
		app.Status,
		app.CreatedAt,
		app.UpdatedAt,
	).Scan(&app.ID)
}

// GetByID retrieves a career application by ID
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.CareerApplication, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, position, applicant_type,
		       experience, cover_letter, cv_file_url, cv_file_name, status, created_at, updated_at
		FROM career_applications
		WHERE id = $1`

	var app domain.CareerApplication
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.FirstName, &app.LastName, &app.Email, &app.Phone,
		&app.Position, &app.ApplicantType, &app.Experience, &app.CoverLetter,
		&app.CVFileURL, &app.CVFileName, &app.Status, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// ListRecent retrieves the most recent applications for manual review
func (r *applicationRepo) ListRecent(ctx context.Context, limit int) ([]domain.CareerApplication, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, position, applicant_type,
		       experience, cover_letter, cv_file_url, cv_file_name, status, created_at, updated_at
		FROM career_applications
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.CareerApplication
	for rows.Next() {
		var app domain.CareerApplication
		if err := rows.Scan(
			&app.ID, &app.FirstName, &app.LastName, &app.Email, &app.Phone,
			&app.Position, &app.ApplicantType, &app.Experience, &app.CoverLetter,
			&app.CVFileURL, &app.CVFileName, &app.Status, &app.CreatedAt, &app.UpdatedAt,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// UpdateStatus updates the status of an application and sets updated_at
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE career_applications SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
