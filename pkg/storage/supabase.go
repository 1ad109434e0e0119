package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"godev-site-backend/internal/domain"
)

// ErrNotConfigured is returned when Supabase credentials are absent.
// Callers treat upload failures as non-fatal, so an unconfigured store
// simply means submissions go through without attachments.
var ErrNotConfigured = errors.New("storage: supabase not configured")

const requestTimeout = 30 * time.Second

// Object names must stay ASCII for Supabase; anything but a plain
// dotted extension is dropped.
var extRe = regexp.MustCompile(`^\.[a-z0-9]+$`)

// SupabaseStore uploads CV files to a Supabase Storage bucket through
// its REST API and returns the public object URL. It satisfies
// domain.FileStore.
type SupabaseStore struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
}

// New creates a SupabaseStore. baseURL is the project URL
// (https://xyz.supabase.co), serviceKey the service-role key.
func New(baseURL, serviceKey, bucket string) *SupabaseStore {
	return &SupabaseStore{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// IsConfigured reports whether uploads can be attempted.
func (s *SupabaseStore) IsConfigured() bool {
	return s.baseURL != "" && s.serviceKey != "" && s.bucket != ""
}

// Upload stores the file under a collision-resistant name and returns
// its public URL. One attempt, no retry.
func (s *SupabaseStore) Upload(ctx context.Context, file *domain.CVFile) (*domain.StoredFile, error) {
	if !s.IsConfigured() {
		return nil, ErrNotConfigured
	}

	name := StoredName(file.Filename)
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(file.Data))
	if err != nil {
		return nil, fmt.Errorf("storage: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", file.ContentType)
	req.Header.Set("x-upsert", "true")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("storage: upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("storage: upload failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	return &domain.StoredFile{
		URL:  fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, name),
		Name: name,
	}, nil
}

// StoredName builds a collision-resistant object name from the original
// filename: nanosecond timestamp, a random id, and the sanitized
// original extension.
func StoredName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if !extRe.MatchString(ext) {
		ext = ""
	}
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.NewString(), ext)
}
