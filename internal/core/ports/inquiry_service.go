package ports

import (
	"context"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
)

// InquiryRepository defines persistence operations for listing inquiries.
type InquiryRepository interface {
	Insert(ctx context.Context, q *domain.Inquiry) (*domain.Inquiry, error)
	// ListByListing returns a listing's inquiries, newest first.
	ListByListing(ctx context.Context, listingID string) ([]*domain.Inquiry, error)
}

// CreateInquiryInput carries a new inquiry from the caller.
type CreateInquiryInput struct {
	UserID    string // caller, taken from the session claims
	ListingID string
	Body      string
}

// InquiryService records listing inquiries and exposes them to the
// listing's owner.
type InquiryService interface {
	Create(ctx context.Context, input CreateInquiryInput) (*domain.Inquiry, error)
	// ListForListing returns the listing's inquiries for its owner or an
	// admin; anyone else gets ErrForbidden.
	ListForListing(ctx context.Context, listingID, callerID, callerRole string) ([]*domain.Inquiry, error)
}
