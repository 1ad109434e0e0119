package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"godev-site-backend/internal/delivery/http/middleware"
	"godev-site-backend/internal/domain"
	"godev-site-backend/pkg/apperror"
)

type stubContactUC struct {
	err  error
	got  *domain.ContactRequest
	hits int
}

func (s *stubContactUC) Submit(ctx context.Context, req *domain.ContactRequest) error {
	s.hits++
	s.got = req
	return s.err
}

type stubApplicationUC struct {
	err error
	got *domain.CareerApplicationRequest
}

func (s *stubApplicationUC) Submit(ctx context.Context, req *domain.CareerApplicationRequest) (*domain.CareerApplication, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &domain.CareerApplication{ID: 1}, nil
}

func noLimit() gin.HandlerFunc {
	return func(c *gin.Context) { c.Next() }
}

func testEngine(register func(*gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	register(r.Group("/api"))
	return r
}

func TestSubmitContactWire(t *testing.T) {
	t.Run("valid submission returns the success envelope", func(t *testing.T) {
		uc := &stubContactUC{}
		r := testEngine(func(g *gin.RouterGroup) { NewContactHandler(g, uc, noLimit()) })

		body := `{"name":"Al","email":"a@b.com","message":"Hello there, checking in."}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
		assert.NotEmpty(t, resp["message"])
		assert.Equal(t, 1, uc.hits)
		assert.Equal(t, "Al", uc.got.Name)
	})

	t.Run("validation failure renders the field map", func(t *testing.T) {
		uc := &stubContactUC{err: apperror.Validation(map[string]string{
			"name":    "Name must be at least 2 characters",
			"email":   "Invalid email format",
			"message": "Message must be at least 10 characters",
		})}
		r := testEngine(func(g *gin.RouterGroup) { NewContactHandler(g, uc, noLimit()) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"A","email":"bad","message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp struct {
			Success bool              `json:"success"`
			Error   string            `json:"error"`
			Fields  map[string]string `json:"fields"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Error)
		assert.Len(t, resp.Fields, 3)
	})

	t.Run("malformed JSON is a client error", func(t *testing.T) {
		uc := &stubContactUC{}
		r := testEngine(func(g *gin.RouterGroup) { NewContactHandler(g, uc, noLimit()) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{not json`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, uc.hits)
	})
}

func TestSubmitApplicationWire(t *testing.T) {
	buildForm := func(withFile bool) (*bytes.Buffer, string) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		_ = mw.WriteField("firstName", "Jane")
		_ = mw.WriteField("lastName", "Doe")
		_ = mw.WriteField("email", "jane@example.com")
		_ = mw.WriteField("phone", "+628123456789")
		_ = mw.WriteField("position", "Software Developer")
		_ = mw.WriteField("experience", "Five years building web services in Go.")
		_ = mw.WriteField("coverLetter", "I would love to join because I enjoy building products people use.")
		if withFile {
			part, _ := mw.CreatePart(textproto.MIMEHeader{
				"Content-Disposition": {`form-data; name="cvFile"; filename="resume.pdf"`},
				"Content-Type":        {"application/pdf"},
			})
			_, _ = part.Write([]byte("%PDF-1.4 test"))
		}
		_ = mw.Close()
		return &buf, mw.FormDataContentType()
	}

	t.Run("parses the multipart form into a typed request", func(t *testing.T) {
		uc := &stubApplicationUC{}
		r := testEngine(func(g *gin.RouterGroup) { NewCareerHandler(g, uc, noLimit()) })

		body, contentType := buildForm(true)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/careers", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Jane", uc.got.FirstName)
		assert.Equal(t, "Software Developer", uc.got.Position)
		assert.NotNil(t, uc.got.CV)
		assert.Equal(t, "resume.pdf", uc.got.CV.Filename)
		assert.Equal(t, "application/pdf", uc.got.CV.ContentType)
		assert.Equal(t, []byte("%PDF-1.4 test"), uc.got.CV.Data)
	})

	t.Run("a missing file is not a parse error", func(t *testing.T) {
		uc := &stubApplicationUC{}
		r := testEngine(func(g *gin.RouterGroup) { NewCareerHandler(g, uc, noLimit()) })

		body, contentType := buildForm(false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/careers", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, uc.got.CV)
	})

	t.Run("a persistence failure surfaces as a server error", func(t *testing.T) {
		uc := &stubApplicationUC{err: apperror.New(http.StatusInternalServerError, "Failed to submit application. Please try again later.", nil)}
		r := testEngine(func(g *gin.RouterGroup) { NewCareerHandler(g, uc, noLimit()) })

		body, contentType := buildForm(false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/careers", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["success"])
		assert.NotEmpty(t, resp["error"])
	})

	t.Run("lists the open positions", func(t *testing.T) {
		uc := &stubApplicationUC{}
		r := testEngine(func(g *gin.RouterGroup) { NewCareerHandler(g, uc, noLimit()) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/careers/positions", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Software Developer")
	})
}
