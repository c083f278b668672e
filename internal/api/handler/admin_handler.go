package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comunidadlocatarios/rental-platform/internal/api/metrics"
	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
	"github.com/comunidadlocatarios/rental-platform/internal/core/ports"
)

// AdminHandler handles the moderation panel: user administration and
// verification review. Routes are mounted behind RBAC(admin).
type AdminHandler struct {
	admin        ports.AdminService
	verification ports.VerificationService
}

func NewAdminHandler(admin ports.AdminService, verification ports.VerificationService) *AdminHandler {
	return &AdminHandler{admin: admin, verification: verification}
}

type updateUserRequest struct {
	Nombre string `json:"nombre" validate:"required"`
	Email  string `json:"email"  validate:"required,email"`
	Tipo   string `json:"tipo"   validate:"required,oneof=locatario locador admin"`
}

type reviewRequest struct {
	Estado string `json:"estado" validate:"required,oneof=aprobado rechazado"`
}

// ListUsers handles GET /v1/admin/usuarios.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/usuarios [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]*userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateUser handles PUT /v1/admin/usuarios/:id.
//
// @Summary      Update a user's profile and role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "New profile fields"
// @Success      200   {object}  userResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/usuarios/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.admin.UpdateUser(c.Request().Context(), c.Param("id"), req.Nombre, req.Email, req.Tipo)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// PendingVerifications handles GET /v1/admin/verificaciones.
//
// @Summary      List verification submissions awaiting review
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   submissionResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/verificaciones [get]
func (h *AdminHandler) PendingVerifications(c echo.Context) error {
	views, err := h.verification.ListPending(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSubmissionListResponse(views))
}

// ReviewVerification handles PUT /v1/admin/verificaciones/:id.
//
// @Summary      Approve or reject a verification submission
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Submission id"
// @Param        body  body      reviewRequest  true  "Review decision"
// @Success      200   {object}  submissionResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/verificaciones/{id} [put]
func (h *AdminHandler) ReviewVerification(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sub, err := h.verification.Review(c.Request().Context(), c.Param("id"), domain.SubmissionStatus(req.Estado))
	if err != nil {
		return err
	}

	metrics.VerificationReviewsTotal.WithLabelValues(string(sub.Status)).Inc()
	return c.JSON(http.StatusOK, toSubmissionResponse(sub, ""))
}
