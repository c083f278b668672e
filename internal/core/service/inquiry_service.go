package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
	"github.com/comunidadlocatarios/rental-platform/internal/core/ports"
	"github.com/comunidadlocatarios/rental-platform/internal/pkg/sanitize"
)

// InquiryService implements the listing inquiry box.
type InquiryService struct {
	repo     ports.InquiryRepository
	listings ports.ListingRepository
	logger   zerolog.Logger
}

func NewInquiryService(repo ports.InquiryRepository, listings ports.ListingRepository, logger zerolog.Logger) *InquiryService {
	return &InquiryService{repo: repo, listings: listings, logger: logger}
}

// Create records an inquiry against an existing listing. The body must
// be non-blank; it is sanitized before persisting.
func (s *InquiryService) Create(ctx context.Context, input ports.CreateInquiryInput) (*domain.Inquiry, error) {
	if input.UserID == "" {
		return nil, domain.ErrForbidden
	}
	body := strings.TrimSpace(sanitize.Strict(input.Body))
	if body == "" {
		return nil, domain.FieldErrors{"mensaje": "cannot be empty"}
	}
	if input.ListingID == "" {
		return nil, domain.FieldErrors{"propiedad_id": "is required"}
	}

	// The listing must exist; an inquiry on a deleted listing 404s.
	if _, err := s.listings.FindByID(ctx, input.ListingID); err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, &domain.Inquiry{
		ListingID: input.ListingID,
		UserID:    input.UserID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("propiedad_id", input.ListingID).Msg("failed to record inquiry")
		return nil, err
	}

	s.logger.Info().Str("inquiry_id", created.ID).Str("propiedad_id", input.ListingID).Msg("inquiry recorded")
	return created, nil
}

// ListForListing returns the listing's inquiries, newest first. Only
// the owner or an admin may read them.
func (s *InquiryService) ListForListing(ctx context.Context, listingID, callerID, callerRole string) ([]*domain.Inquiry, error) {
	listing, err := s.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !listing.EditableBy(callerID, callerRole) {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByListing(ctx, listingID)
}
