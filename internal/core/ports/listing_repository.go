package ports

import (
	"context"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
)

// SearchFilter carries all query parameters for listing searches. Every
// present field narrows the result set conjunctively; zero values impose
// no constraint. Numeric bounds are inclusive.
type SearchFilter struct {
	Tipo      string   // exact match against the property type enum
	Gestion   string   // exact match against the management enum
	PrecioMin *float64 // precio >= PrecioMin
	PrecioMax *float64 // precio <= PrecioMax
	Ciudad    string   // case-insensitive substring
	Titulo    string   // case-insensitive substring
	Estado    string   // exact match (disponible/alquilada)
	OwnerID   string   // scope to one owner's listings
	Page      int      // 1-based
	Limit     int      // max rows per page (capped by the service)
}

// ListingRepository defines persistence operations for listings.
type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	FindByID(ctx context.Context, id string) (*domain.Listing, error)
	// Search returns a page of listings matching filter, ordered by
	// fecha_publicacion descending, and the total match count.
	Search(ctx context.Context, filter SearchFilter) ([]*domain.Listing, int64, error)
	Update(ctx context.Context, l *domain.Listing) error
	Delete(ctx context.Context, id string) error
}
