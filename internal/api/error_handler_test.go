package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"listing not found", domain.ErrListingNotFound, http.StatusNotFound},
		{"thread not found", domain.ErrThreadNotFound, http.StatusNotFound},
		{"submission not found", domain.ErrSubmissionNotFound, http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"image limit", domain.ErrImageLimit, http.StatusUnprocessableEntity},
		{"invalid review", domain.ErrInvalidReview, http.StatusUnprocessableEntity},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := runErrorHandler(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
		})
	}
}

func TestErrorHandler_FieldErrors(t *testing.T) {
	rec, body := runErrorHandler(t, domain.FieldErrors{"precio": "must be a non-negative number"})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if body.Fields["precio"] != "must be a non-negative number" {
		t.Fatalf("expected field message, got %+v", body.Fields)
	}
}

func TestErrorHandler_WrappedFieldErrors(t *testing.T) {
	rec, body := runErrorHandler(t, domain.FieldErrors{"contenido": "is required"})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if body.Error != "validation failed" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := runErrorHandler(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body.Error != "invalid payload" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
}

func TestErrorHandler_UnknownError(t *testing.T) {
	rec, body := runErrorHandler(t, errors.New("boom"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", body.Error)
	}
}
