package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
	"github.com/comunidadlocatarios/rental-platform/internal/core/ports"
)

type stubInquiryService struct {
	createFn func(ctx context.Context, input ports.CreateInquiryInput) (*domain.Inquiry, error)
	listFn   func(ctx context.Context, listingID, callerID, callerRole string) ([]*domain.Inquiry, error)
}

func (s *stubInquiryService) Create(ctx context.Context, input ports.CreateInquiryInput) (*domain.Inquiry, error) {
	return s.createFn(ctx, input)
}

func (s *stubInquiryService) ListForListing(ctx context.Context, listingID, callerID, callerRole string) ([]*domain.Inquiry, error) {
	return s.listFn(ctx, listingID, callerID, callerRole)
}

func TestInquiryHandler_Create(t *testing.T) {
	e := newTestEcho()
	stub := &stubInquiryService{
		createFn: func(_ context.Context, input ports.CreateInquiryInput) (*domain.Inquiry, error) {
			if input.UserID != "u1" || input.ListingID != "p9" || input.Body != "¿Sigue disponible?" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Inquiry{
				ID: "q1", ListingID: input.ListingID, UserID: input.UserID,
				Body: input.Body, CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	h := NewInquiryHandler(stub)

	c, rec := newMessageContext(e, http.MethodPost, "/v1/consultas",
		`{"propiedad_id":"p9","mensaje":"¿Sigue disponible?"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["id"] != "q1" || resp["propiedad_id"] != "p9" || resp["usuario_id"] != "u1" {
		t.Errorf("unexpected response: %v", resp)
	}
}

func TestInquiryHandler_Create_MissingFields(t *testing.T) {
	e := newTestEcho()
	h := NewInquiryHandler(&stubInquiryService{})

	c, rec := newMessageContext(e, http.MethodPost, "/v1/consultas", `{"mensaje":""}`)
	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestInquiryHandler_ListForListing(t *testing.T) {
	e := newTestEcho()
	stub := &stubInquiryService{
		listFn: func(_ context.Context, listingID, callerID, callerRole string) ([]*domain.Inquiry, error) {
			if listingID != "p9" || callerID != "u1" || callerRole != domain.RoleLocatario {
				t.Fatalf("unexpected args: %s %s %s", listingID, callerID, callerRole)
			}
			return []*domain.Inquiry{
				{ID: "q2", ListingID: "p9", UserID: "u7", Body: "segunda"},
				{ID: "q1", ListingID: "p9", UserID: "u7", Body: "primera"},
			}, nil
		},
	}
	h := NewInquiryHandler(stub)

	c, rec := newMessageContext(e, http.MethodGet, "/v1/propiedades/p9/consultas", "")
	c.SetParamNames("id")
	c.SetParamValues("p9")
	if err := h.ListForListing(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 || resp[0]["id"] != "q2" {
		t.Errorf("unexpected order or length: %v", resp)
	}
}
