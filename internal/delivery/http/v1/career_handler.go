package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"godev-site-backend/internal/delivery/http/response"
	"godev-site-backend/internal/domain"
	"godev-site-backend/pkg/apperror"
)

type CareerHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewCareerHandler registers the careers routes (public, no auth)
func NewCareerHandler(public *gin.RouterGroup, applicationUC domain.ApplicationUsecase, limit gin.HandlerFunc) {
	handler := &CareerHandler{
		applicationUC: applicationUC,
	}

	public.GET("/careers/positions", handler.ListPositions)
	public.POST("/careers", limit, handler.SubmitApplication)
}

// ListPositions godoc
// @Summary      List Open Positions
// @Description  Returns the catalog of roles applications are accepted for.
// @Tags         careers
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /careers/positions [get]
func (h *CareerHandler) ListPositions(c *gin.Context) {
	response.Success(c, http.StatusOK, "Open positions", domain.OpenPositions)
}

// SubmitApplication godoc
// @Summary      Submit Career Application
// @Description  Submit a job application as multipart form-data, optionally with a CV (PDF or Word, max 25MB).
// @Tags         careers
// @Accept       multipart/form-data
// @Produce      json
// @Param        firstName      formData  string  true   "First name"
// @Param        lastName       formData  string  true   "Last name"
// @Param        email          formData  string  true   "Email"
// @Param        phone          formData  string  true   "Phone number"
// @Param        position       formData  string  true   "Position applied for"
// @Param        applicantType  formData  string  false  "Applicant type (employee or hippies)"
// @Param        experience     formData  string  true   "Relevant experience"
// @Param        coverLetter    formData  string  true   "Cover letter"
// @Param        cvFile         formData  file    false  "CV file"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /careers [post]
func (h *CareerHandler) SubmitApplication(c *gin.Context) {
	req, err := parseApplicationForm(c)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid form data"))
		return
	}

	app, err := h.applicationUC.Submit(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK,
		"Application submitted successfully! We will review your application and get back to you soon.",
		gin.H{"id": app.ID},
	)
}

// parseApplicationForm is the typed boundary between the multipart wire
// format and the domain request. The CV field is optional; any other
// missing field surfaces later as a validation error, not a parse
// error.
func parseApplicationForm(c *gin.Context) (*domain.CareerApplicationRequest, error) {
	req := &domain.CareerApplicationRequest{
		FirstName:     c.PostForm("firstName"),
		LastName:      c.PostForm("lastName"),
		Email:         c.PostForm("email"),
		Phone:         c.PostForm("phone"),
		Position:      c.PostForm("position"),
		ApplicantType: c.PostForm("applicantType"),
		Experience:    c.PostForm("experience"),
		CoverLetter:   c.PostForm("coverLetter"),
	}

	fh, err := c.FormFile("cvFile")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return req, nil
		}
		return nil, err
	}

	cv := &domain.CVFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	}

	// Oversized files are left unread; the size alone is enough for the
	// validator to reject them.
	if fh.Size <= domain.MaxCVFileSize {
		src, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return nil, err
		}
		cv.Data = data
		if cv.ContentType == "" {
			cv.ContentType = http.DetectContentType(data)
		}
	}

	req.CV = cv
	return req, nil
}
