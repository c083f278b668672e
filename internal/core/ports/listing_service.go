package ports

import (
	"context"
	"io"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
)

// ListingInput is the raw form state of the property editor. Numeric
// fields arrive as strings and are coerced by the service: precio is
// hard-required and must be non-negative; optional numerics default to
// zero when empty.
type ListingInput struct {
	Titulo             string
	Descripcion        string
	Direccion          string
	Ciudad             string
	Precio             string
	Tipo               string
	Gestion            string
	Contacto           string
	Habitaciones       string
	Superficie         string
	PermitenMascotas   bool
	PermitenNinos      bool
	ServiciosIncluidos bool
	Amoblado           bool
	FechaIngreso       string // YYYY-MM-DD, optional
	Latitud            string
	Longitud           string
	Estado             string   // optional; defaults to disponible on create
	Imagenes           []string // already-uploaded image URLs, order meaningful
}

// SearchInput carries the parameters of a public search request.
type SearchInput struct {
	Tipo      string
	Gestion   string
	PrecioMin *float64
	PrecioMax *float64
	Ciudad    string
	Titulo    string
	Estado    string
	Page      int
	Limit     int
}

// SearchResult is a page of matching listings.
type SearchResult struct {
	Items      []*domain.Listing
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ImageFile is a single image selected for upload.
type ImageFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadImagesResult reports the outcome of an image upload batch.
// Uploads run sequentially; a single failure is skipped, not fatal, and
// FailedUploads surfaces how many were lost.
type UploadImagesResult struct {
	Imagenes      []string
	FailedUploads int
}

// ListingService defines the property use cases: search, the editor's
// create/update/delete, and bounded image management.
type ListingService interface {
	Search(ctx context.Context, input SearchInput) (*SearchResult, error)
	Get(ctx context.Context, id string) (*domain.Listing, error)
	Create(ctx context.Context, ownerID string, input ListingInput) (*domain.Listing, error)
	Update(ctx context.Context, id, callerID, callerRole string, input ListingInput) (*domain.Listing, error)
	Delete(ctx context.Context, id, callerID, callerRole string) error
	Mine(ctx context.Context, ownerID string, page, limit int) (*SearchResult, error)
	UploadImages(ctx context.Context, id, callerID, callerRole string, files []ImageFile) (*UploadImagesResult, error)
	RemoveImage(ctx context.Context, id, callerID, callerRole, ref string) (*domain.Listing, error)
}
