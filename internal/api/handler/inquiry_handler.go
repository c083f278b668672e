package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comunidadlocatarios/rental-platform/internal/api/metrics"
	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
	"github.com/comunidadlocatarios/rental-platform/internal/core/ports"
)

// InquiryHandler handles the listing inquiry box.
type InquiryHandler struct {
	service ports.InquiryService
}

func NewInquiryHandler(service ports.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

type createInquiryRequest struct {
	PropiedadID string `json:"propiedad_id" validate:"required"`
	Mensaje     string `json:"mensaje"      validate:"required"`
}

type inquiryResponse struct {
	ID          string    `json:"id"`
	PropiedadID string    `json:"propiedad_id"`
	UsuarioID   string    `json:"usuario_id"`
	Mensaje     string    `json:"mensaje"`
	CreatedAt   time.Time `json:"created_at"`
}

func toInquiryResponse(q *domain.Inquiry) inquiryResponse {
	return inquiryResponse{
		ID:          q.ID,
		PropiedadID: q.ListingID,
		UsuarioID:   q.UserID,
		Mensaje:     q.Body,
		CreatedAt:   q.CreatedAt.UTC(),
	}
}

// Create handles POST /v1/consultas.
//
// @Summary      Leave an inquiry on a listing
// @Tags         consultas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInquiryRequest  true  "Inquiry"
// @Success      201   {object}  inquiryResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/consultas [post]
func (h *InquiryHandler) Create(c echo.Context) error {
	var req createInquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	inquiry, err := h.service.Create(c.Request().Context(), ports.CreateInquiryInput{
		UserID:    userID,
		ListingID: req.PropiedadID,
		Body:      req.Mensaje,
	})
	if err != nil {
		return err
	}

	metrics.InquiriesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toInquiryResponse(inquiry))
}

// ListForListing handles GET /v1/propiedades/:id/consultas.
//
// @Summary      List a listing's inquiries (owner or admin)
// @Tags         consultas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Listing id"
// @Success      200  {array}   inquiryResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/propiedades/{id}/consultas [get]
func (h *InquiryHandler) ListForListing(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	inquiries, err := h.service.ListForListing(c.Request().Context(), c.Param("id"), userID, role)
	if err != nil {
		return err
	}

	out := make([]inquiryResponse, len(inquiries))
	for i, q := range inquiries {
		out[i] = toInquiryResponse(q)
	}
	return c.JSON(http.StatusOK, out)
}
