package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
	"github.com/comunidadlocatarios/rental-platform/internal/core/ports"
)

type stubListingService struct {
	searchFn func(ctx context.Context, input ports.SearchInput) (*ports.SearchResult, error)
	getFn    func(ctx context.Context, id string) (*domain.Listing, error)
	createFn func(ctx context.Context, ownerID string, input ports.ListingInput) (*domain.Listing, error)
	updateFn func(ctx context.Context, id, callerID, callerRole string, input ports.ListingInput) (*domain.Listing, error)
	deleteFn func(ctx context.Context, id, callerID, callerRole string) error
	removeFn func(ctx context.Context, id, callerID, callerRole, ref string) (*domain.Listing, error)
}

func (s *stubListingService) Search(ctx context.Context, input ports.SearchInput) (*ports.SearchResult, error) {
	return s.searchFn(ctx, input)
}

func (s *stubListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	return s.getFn(ctx, id)
}

func (s *stubListingService) Create(ctx context.Context, ownerID string, input ports.ListingInput) (*domain.Listing, error) {
	return s.createFn(ctx, ownerID, input)
}

func (s *stubListingService) Update(ctx context.Context, id, callerID, callerRole string, input ports.ListingInput) (*domain.Listing, error) {
	return s.updateFn(ctx, id, callerID, callerRole, input)
}

func (s *stubListingService) Delete(ctx context.Context, id, callerID, callerRole string) error {
	return s.deleteFn(ctx, id, callerID, callerRole)
}

func (s *stubListingService) Mine(ctx context.Context, ownerID string, page, limit int) (*ports.SearchResult, error) {
	return &ports.SearchResult{Page: 1, Limit: 20}, nil
}

func (s *stubListingService) UploadImages(ctx context.Context, id, callerID, callerRole string, files []ports.ImageFile) (*ports.UploadImagesResult, error) {
	return &ports.UploadImagesResult{}, nil
}

func (s *stubListingService) RemoveImage(ctx context.Context, id, callerID, callerRole, ref string) (*domain.Listing, error) {
	return s.removeFn(ctx, id, callerID, callerRole, ref)
}

func TestListingHandler_Search_ForwardsFilters(t *testing.T) {
	e := newTestEcho()
	stub := &stubListingService{
		searchFn: func(ctx context.Context, input ports.SearchInput) (*ports.SearchResult, error) {
			if input.Tipo != "Casa" || input.Ciudad != "Córdoba" {
				t.Fatalf("unexpected filter: %+v", input)
			}
			if input.PrecioMax == nil || *input.PrecioMax != 100000 {
				t.Fatalf("precio_max not forwarded: %+v", input.PrecioMax)
			}
			if input.PrecioMin != nil {
				t.Fatalf("precio_min should be nil when absent")
			}
			return &ports.SearchResult{
				Items:      []*domain.Listing{{ID: "l1", Titulo: "Casa centro"}},
				Total:      1,
				Page:       1,
				Limit:      20,
				TotalPages: 1,
			}, nil
		},
	}
	h := NewListingHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/propiedades?tipo=Casa&precio_max=100000&ciudad=C%C3%B3rdoba", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected one item, got %v", resp["data"])
	}
}

func TestListingHandler_Search_BadPrice(t *testing.T) {
	e := newTestEcho()
	stub := &stubListingService{
		searchFn: func(ctx context.Context, input ports.SearchInput) (*ports.SearchResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewListingHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/propiedades?precio_min=mucho", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Search(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListingHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubListingService{
		createFn: func(ctx context.Context, ownerID string, input ports.ListingInput) (*domain.Listing, error) {
			if ownerID != "u1" {
				t.Fatalf("unexpected owner %q", ownerID)
			}
			if input.Precio != "120000" {
				t.Fatalf("precio must stay a string until the service parses it, got %q", input.Precio)
			}
			return &domain.Listing{ID: "l1", Titulo: input.Titulo, Precio: 120000, Estado: domain.StatusDisponible}, nil
		},
	}
	h := NewListingHandler(stub)

	body := strings.NewReader(`{"titulo":"Depto centro","descripcion":"Luminoso","direccion":"Calle 1","precio":"120000","tipo":"Departamento"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/propiedades", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")
	c.Set("role", "locador")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestListingHandler_Create_UnknownTipo(t *testing.T) {
	e := newTestEcho()
	stub := &stubListingService{
		createFn: func(ctx context.Context, ownerID string, input ports.ListingInput) (*domain.Listing, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewListingHandler(stub)

	body := strings.NewReader(`{"titulo":"x","descripcion":"y","direccion":"z","precio":"1","tipo":"Castillo"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/propiedades", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")
	c.Set("role", "locador")

	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListingHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubListingService{
		deleteFn: func(ctx context.Context, id, callerID, callerRole string) error {
			if id != "l1" || callerID != "u1" || callerRole != "locador" {
				t.Fatalf("unexpected args: %s %s %s", id, callerID, callerRole)
			}
			return nil
		},
	}
	h := NewListingHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/v1/propiedades/l1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("l1")
	c.Set("user_id", "u1")
	c.Set("role", "locador")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestListingHandler_RemoveImage_RequiresURL(t *testing.T) {
	e := newTestEcho()
	stub := &stubListingService{
		removeFn: func(ctx context.Context, id, callerID, callerRole, ref string) (*domain.Listing, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewListingHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/v1/propiedades/l1/imagenes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("l1")
	c.Set("user_id", "u1")
	c.Set("role", "locador")

	if err := h.RemoveImage(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
