package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
	"github.com/comunidadlocatarios/rental-platform/internal/core/ports"
)

// VerificationHandler handles the user-facing side of identity
// verification: submitting documents and checking their review state.
type VerificationHandler struct {
	service ports.VerificationService
}

func NewVerificationHandler(service ports.VerificationService) *VerificationHandler {
	return &VerificationHandler{service: service}
}

type submissionResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	DocumentoTipo string    `json:"documento_tipo"`
	Estado        string    `json:"estado"`
	CreatedAt     time.Time `json:"created_at"`
	URL           string    `json:"url,omitempty"`
}

func toSubmissionResponse(s *domain.VerificationSubmission, signedURL string) submissionResponse {
	return submissionResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		DocumentoTipo: s.Label,
		Estado:        string(s.Status),
		CreatedAt:     s.SubmittedAt.UTC(),
		URL:           signedURL,
	}
}

func toSubmissionListResponse(views []*ports.SubmissionView) []submissionResponse {
	out := make([]submissionResponse, len(views))
	for i, v := range views {
		out[i] = toSubmissionResponse(v.Submission, v.SignedURL)
	}
	return out
}

// Submit handles POST /v1/verificacion.
// The document travels in the multipart field "documento"; an optional
// "documento_tipo" field labels it, defaulting to the file name.
//
// @Summary      Submit an identity document for review
// @Tags         verificacion
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        documento       formData  file    true   "Identity document"
// @Param        documento_tipo  formData  string  false  "Document label"
// @Success      201  {object}  submissionResponse
// @Failure      400  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/verificacion [post]
func (h *VerificationHandler) Submit(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("documento")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "documento file is required")
	}

	label := c.FormValue("documento_tipo")
	if label == "" {
		label = fh.Filename
	}

	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable documento file")
	}
	defer f.Close()

	sub, err := h.service.Submit(c.Request().Context(), ports.SubmitVerificationInput{
		UserID:      userID,
		Label:       label,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toSubmissionResponse(sub, ""))
}

// List handles GET /v1/verificacion.
//
// @Summary      List the caller's verification submissions
// @Tags         verificacion
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  submissionResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/verificacion [get]
func (h *VerificationHandler) List(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	views, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSubmissionListResponse(views))
}
