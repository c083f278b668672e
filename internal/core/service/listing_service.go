package service

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
	"github.com/comunidadlocatarios/rental-platform/internal/core/ports"
	"github.com/comunidadlocatarios/rental-platform/internal/pkg/sanitize"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ListingService implements search and the property editor use cases.
type ListingService struct {
	repo         ports.ListingRepository
	storage      ports.ObjectStorage
	imagesBucket string
	logger       zerolog.Logger
}

func NewListingService(repo ports.ListingRepository, storage ports.ObjectStorage, imagesBucket string, logger zerolog.Logger) *ListingService {
	return &ListingService{repo: repo, storage: storage, imagesBucket: imagesBucket, logger: logger}
}

// Search returns listings matching every present filter field, ordered
// by fecha_publicacion descending. An empty filter returns everything.
func (s *ListingService) Search(ctx context.Context, input ports.SearchInput) (*ports.SearchResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	if input.Tipo != "" && !domain.PropertyType(input.Tipo).Valid() {
		return nil, domain.FieldErrors{"tipo": "unknown property type"}
	}
	if input.Gestion != "" && !domain.Management(input.Gestion).Valid() {
		return nil, domain.FieldErrors{"gestion": "unknown management mode"}
	}
	if input.PrecioMin != nil && input.PrecioMax != nil && *input.PrecioMin > *input.PrecioMax {
		return nil, domain.FieldErrors{"precio_min": "must not exceed precio_max"}
	}

	items, total, err := s.repo.Search(ctx, ports.SearchFilter{
		Tipo:      input.Tipo,
		Gestion:   input.Gestion,
		PrecioMin: input.PrecioMin,
		PrecioMax: input.PrecioMax,
		Ciudad:    input.Ciudad,
		Titulo:    input.Titulo,
		Estado:    input.Estado,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("listing search failed")
		return nil, err
	}

	return &ports.SearchResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *ListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	return s.repo.FindByID(ctx, id)
}

// Mine returns the owner's own listings, newest first.
func (s *ListingService) Mine(ctx context.Context, ownerID string, page, limit int) (*ports.SearchResult, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	items, total, err := s.repo.Search(ctx, ports.SearchFilter{OwnerID: ownerID, Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}
	return &ports.SearchResult{Items: items, Total: total, Page: page, Limit: limit, TotalPages: totalPages(total, limit)}, nil
}

// Create validates and persists a new listing owned by ownerID.
func (s *ListingService) Create(ctx context.Context, ownerID string, input ports.ListingInput) (*domain.Listing, error) {
	listing, err := buildListing(input)
	if err != nil {
		return nil, err
	}
	listing.OwnerID = ownerID
	listing.FechaPublicacion = time.Now().UTC()
	if listing.Estado == "" {
		listing.Estado = domain.StatusDisponible
	}

	created, err := s.repo.Create(ctx, listing)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create listing")
		return nil, err
	}
	s.logger.Info().Str("listing_id", created.ID).Str("owner_id", ownerID).Msg("listing created")
	return created, nil
}

// Update validates the payload and overwrites the listing's editable
// fields. Last writer wins; there is no edit locking.
func (s *ListingService) Update(ctx context.Context, id, callerID, callerRole string, input ports.ListingInput) (*domain.Listing, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.EditableBy(callerID, callerRole) {
		return nil, domain.ErrForbidden
	}

	updated, err := buildListing(input)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.OwnerID = existing.OwnerID
	updated.FechaPublicacion = existing.FechaPublicacion
	if updated.Estado == "" {
		updated.Estado = existing.Estado
	}
	if updated.Imagenes == nil {
		updated.Imagenes = existing.Imagenes
	}
	if len(updated.Imagenes) > domain.MaxImages {
		return nil, domain.ErrImageLimit
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		s.logger.Error().Err(err).Str("listing_id", id).Msg("failed to update listing")
		return nil, err
	}
	return updated, nil
}

// Delete removes the listing and, best effort, its stored images.
func (s *ListingService) Delete(ctx context.Context, id, callerID, callerRole string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !existing.EditableBy(callerID, callerRole) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	for _, url := range existing.Imagenes {
		key := s.objectKeyFromURL(url)
		if key == "" {
			continue
		}
		if err := s.storage.Remove(ctx, s.imagesBucket, key); err != nil {
			s.logger.Warn().Err(err).Str("object_key", key).Msg("failed to remove listing image")
		}
	}

	s.logger.Info().Str("listing_id", id).Str("deleted_by", callerID).Msg("listing deleted")
	return nil
}

// UploadImages stores the given files sequentially and appends their
// public URLs to the listing. A single failed upload is logged and
// skipped; the count of failures is reported to the caller. The cap
// check runs up front so a batch that cannot fit fails before any write.
func (s *ListingService) UploadImages(ctx context.Context, id, callerID, callerRole string, files []ports.ImageFile) (*ports.UploadImagesResult, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !listing.EditableBy(callerID, callerRole) {
		return nil, domain.ErrForbidden
	}
	if len(listing.Imagenes)+len(files) > domain.MaxImages {
		return nil, domain.ErrImageLimit
	}

	var uploaded []string
	failed := 0
	for _, f := range files {
		key := newImageKey(f.Name)
		if _, err := s.storage.Upload(ctx, s.imagesBucket, key, f.Content, f.Size, f.ContentType); err != nil {
			s.logger.Warn().Err(err).Str("file", f.Name).Str("listing_id", id).Msg("image upload failed, skipping")
			failed++
			continue
		}
		uploaded = append(uploaded, s.storage.PublicURL(s.imagesBucket, key))
	}

	imagenes, err := domain.AddImages(listing.Imagenes, uploaded)
	if err != nil {
		return nil, err
	}
	listing.Imagenes = imagenes
	if err := s.repo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return &ports.UploadImagesResult{Imagenes: imagenes, FailedUploads: failed}, nil
}

// RemoveImage drops ref from the listing's image list and, best effort,
// deletes the stored object. Removing an absent ref is a no-op.
func (s *ListingService) RemoveImage(ctx context.Context, id, callerID, callerRole, ref string) (*domain.Listing, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !listing.EditableBy(callerID, callerRole) {
		return nil, domain.ErrForbidden
	}

	remaining := domain.RemoveImage(listing.Imagenes, ref)
	if len(remaining) == len(listing.Imagenes) {
		return listing, nil
	}

	listing.Imagenes = remaining
	if err := s.repo.Update(ctx, listing); err != nil {
		return nil, err
	}

	if key := s.objectKeyFromURL(ref); key != "" {
		if err := s.storage.Remove(ctx, s.imagesBucket, key); err != nil {
			s.logger.Warn().Err(err).Str("object_key", key).Msg("failed to remove image object")
		}
	}
	return listing, nil
}

// buildListing coerces and validates raw form state into a listing.
// All field errors are collected so the form can render them together.
func buildListing(input ports.ListingInput) (*domain.Listing, error) {
	errs := domain.FieldErrors{}

	titulo := strings.TrimSpace(sanitize.Strict(input.Titulo))
	if titulo == "" {
		errs["titulo"] = "is required"
	}
	descripcion := strings.TrimSpace(sanitize.Strict(input.Descripcion))
	if descripcion == "" {
		errs["descripcion"] = "is required"
	}
	direccion := strings.TrimSpace(input.Direccion)
	if direccion == "" {
		errs["direccion"] = "is required"
	}

	precio, err := parseRequiredNonNegative(input.Precio)
	if err != nil {
		errs["precio"] = err.Error()
	}

	tipo := domain.PropertyType(strings.TrimSpace(input.Tipo))
	if tipo != "" && !tipo.Valid() {
		errs["tipo"] = "unknown property type"
	}
	gestion := domain.Management(strings.TrimSpace(input.Gestion))
	if gestion != "" && !gestion.Valid() {
		errs["gestion"] = "unknown management mode"
	}
	estado := domain.ListingStatus(strings.TrimSpace(input.Estado))
	if estado != "" && !estado.Valid() {
		errs["estado"] = "unknown status"
	}

	habitaciones, err := parseOptionalInt(input.Habitaciones)
	if err != nil {
		errs["habitaciones"] = "must be a whole number"
	}
	superficie, err := parseOptionalFloat(input.Superficie)
	if err != nil {
		errs["superficie"] = "must be a number"
	}
	latitud, err := parseOptionalFloat(input.Latitud)
	if err != nil {
		errs["latitud"] = "must be a number"
	}
	longitud, err := parseOptionalFloat(input.Longitud)
	if err != nil {
		errs["longitud"] = "must be a number"
	}

	var fechaIngreso time.Time
	if v := strings.TrimSpace(input.FechaIngreso); v != "" {
		fechaIngreso, err = time.Parse("2006-01-02", v)
		if err != nil {
			errs["fecha_ingreso"] = "must be a date in YYYY-MM-DD format"
		}
	}

	if len(input.Imagenes) > domain.MaxImages {
		errs["imagenes"] = domain.ErrImageLimit.Error()
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &domain.Listing{
		Titulo:             titulo,
		Descripcion:        descripcion,
		Direccion:          direccion,
		Ciudad:             strings.TrimSpace(input.Ciudad),
		Precio:             precio,
		Tipo:               tipo,
		Gestion:            gestion,
		Contacto:           strings.TrimSpace(input.Contacto),
		Habitaciones:       habitaciones,
		Superficie:         superficie,
		PermitenMascotas:   input.PermitenMascotas,
		PermitenNinos:      input.PermitenNinos,
		ServiciosIncluidos: input.ServiciosIncluidos,
		Amoblado:           input.Amoblado,
		FechaIngreso:       fechaIngreso,
		Latitud:            latitud,
		Longitud:           longitud,
		Estado:             estado,
		Imagenes:           input.Imagenes,
	}, nil
}

func parseRequiredNonNegative(raw string) (float64, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("is required")
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("must be a number")
	}
	if n < 0 {
		return 0, fmt.Errorf("must be a non-negative number")
	}
	return n, nil
}

func parseOptionalInt(raw string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func parseOptionalFloat(raw string) (float64, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}

// newImageKey builds a unique object key preserving the file extension.
func newImageKey(fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("images/%s%s", uuid.NewString(), ext)
}

// objectKeyFromURL extracts the storage key from a public image URL by
// cutting at the bucket segment. Returns "" when the URL does not look
// like one of ours.
func (s *ListingService) objectKeyFromURL(url string) string {
	marker := "/" + s.imagesBucket + "/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return ""
	}
	return url[idx+len(marker):]
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
