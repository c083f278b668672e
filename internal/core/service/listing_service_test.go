package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
	"github.com/comunidadlocatarios/rental-platform/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubListingRepo struct {
	byID      map[string]*domain.Listing
	nextID    int
	createErr error
	updateErr error
}

func newStubListingRepo() *stubListingRepo {
	return &stubListingRepo{byID: make(map[string]*domain.Listing)}
}

func (r *stubListingRepo) Create(_ context.Context, l *domain.Listing) (*domain.Listing, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	clone := *l
	clone.ID = fmt.Sprintf("listing-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubListingRepo) FindByID(_ context.Context, id string) (*domain.Listing, error) {
	l, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	clone := *l
	return &clone, nil
}

// Search applies the same conjunction the real Mongo repo composes.
func (r *stubListingRepo) Search(_ context.Context, f ports.SearchFilter) ([]*domain.Listing, int64, error) {
	var matched []*domain.Listing
	for _, l := range r.byID {
		if f.Tipo != "" && string(l.Tipo) != f.Tipo {
			continue
		}
		if f.Gestion != "" && string(l.Gestion) != f.Gestion {
			continue
		}
		if f.PrecioMin != nil && l.Precio < *f.PrecioMin {
			continue
		}
		if f.PrecioMax != nil && l.Precio > *f.PrecioMax {
			continue
		}
		if f.Ciudad != "" && !strings.Contains(strings.ToLower(l.Ciudad), strings.ToLower(f.Ciudad)) {
			continue
		}
		if f.Titulo != "" && !strings.Contains(strings.ToLower(l.Titulo), strings.ToLower(f.Titulo)) {
			continue
		}
		if f.Estado != "" && string(l.Estado) != f.Estado {
			continue
		}
		if f.OwnerID != "" && l.OwnerID != f.OwnerID {
			continue
		}
		clone := *l
		matched = append(matched, &clone)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].FechaPublicacion.After(matched[j].FechaPublicacion)
	})

	total := int64(len(matched))
	limit := f.Limit
	if limit <= 0 {
		limit = len(matched)
	}
	skip := (f.Page - 1) * limit
	if skip < 0 {
		skip = 0
	}
	if skip > len(matched) {
		return nil, total, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *stubListingRepo) Update(_ context.Context, l *domain.Listing) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[l.ID]; !ok {
		return domain.ErrListingNotFound
	}
	clone := *l
	r.byID[l.ID] = &clone
	return nil
}

func (r *stubListingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrListingNotFound
	}
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// In-memory stub storage
// ---------------------------------------------------------------------------

type stubStorage struct {
	uploaded []string
	removed  []string
	failOn   map[string]bool // file names whose upload fails
	signErr  error
}

func newStubStorage() *stubStorage {
	return &stubStorage{failOn: make(map[string]bool)}
}

func (s *stubStorage) Upload(_ context.Context, _, key string, r io.Reader, _ int64, _ string) (string, error) {
	name, _ := io.ReadAll(r)
	if s.failOn[string(name)] {
		return "", errors.New("storage unavailable")
	}
	s.uploaded = append(s.uploaded, key)
	return key, nil
}

func (s *stubStorage) PublicURL(bucket, key string) string {
	return "https://storage.local/" + bucket + "/" + key
}

func (s *stubStorage) SignedURL(_ context.Context, bucket, key string, _ time.Duration) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	return "https://storage.local/" + bucket + "/" + key + "?signed", nil
}

func (s *stubStorage) Remove(_ context.Context, _, key string) error {
	s.removed = append(s.removed, key)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func newListingSvc(repo *stubListingRepo) *ListingService {
	return NewListingService(repo, newStubStorage(), "images", discardLogger)
}

func minimalListingInput() ports.ListingInput {
	return ports.ListingInput{
		Titulo:      "Depto 2 ambientes",
		Descripcion: "Luminoso, al frente",
		Direccion:   "Av. Rivadavia 1234",
		Ciudad:      "Buenos Aires",
		Precio:      "150000",
		Tipo:        "Departamento",
		Gestion:     "Dueño Directo",
	}
}

func seedListing(repo *stubListingRepo, titulo, tipo string, precio float64, published time.Time) *domain.Listing {
	l, _ := repo.Create(context.Background(), &domain.Listing{
		Titulo:           titulo,
		Descripcion:      "desc",
		Direccion:        "dir",
		Precio:           precio,
		Tipo:             domain.PropertyType(tipo),
		OwnerID:          "owner-1",
		Estado:           domain.StatusDisponible,
		FechaPublicacion: published,
	})
	return l
}

// ---------------------------------------------------------------------------
// Create / validation
// ---------------------------------------------------------------------------

func TestListingService_Create_Success(t *testing.T) {
	repo := newStubListingRepo()
	svc := newListingSvc(repo)

	created, err := svc.Create(context.Background(), "user-1", minimalListingInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected an id")
	}
	if created.OwnerID != "user-1" {
		t.Errorf("expected owner user-1, got %q", created.OwnerID)
	}
	if created.Estado != domain.StatusDisponible {
		t.Errorf("expected estado disponible, got %q", created.Estado)
	}
	if created.Precio != 150000 {
		t.Errorf("expected precio 150000, got %v", created.Precio)
	}
	if created.FechaPublicacion.IsZero() {
		t.Error("FechaPublicacion must be set")
	}
}

func TestListingService_Create_NegativePriceRejected(t *testing.T) {
	repo := newStubListingRepo()
	svc := newListingSvc(repo)

	input := minimalListingInput()
	input.Precio = "-5"

	_, err := svc.Create(context.Background(), "user-1", input)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var fields domain.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected FieldErrors, got %T", err)
	}
	if _, ok := fields["precio"]; !ok {
		t.Errorf("expected a precio field error, got %v", fields)
	}

	input.Precio = "1500"
	if _, err := svc.Create(context.Background(), "user-1", input); err != nil {
		t.Fatalf("precio 1500 must pass, got %v", err)
	}
}

func TestListingService_Create_RequiredFields(t *testing.T) {
	repo := newStubListingRepo()
	svc := newListingSvc(repo)

	_, err := svc.Create(context.Background(), "user-1", ports.ListingInput{})
	var fields domain.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	for _, f := range []string{"titulo", "descripcion", "direccion", "precio"} {
		if _, ok := fields[f]; !ok {
			t.Errorf("expected %q in field errors, got %v", f, fields)
		}
	}
}

func TestListingService_Create_OptionalNumericsDefaultToZero(t *testing.T) {
	repo := newStubListingRepo()
	svc := newListingSvc(repo)

	input := minimalListingInput()
	input.Habitaciones = ""
	input.Superficie = ""

	created, err := svc.Create(context.Background(), "user-1", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Habitaciones != 0 || created.Superficie != 0 {
		t.Errorf("optional numerics must default to 0, got %d / %v", created.Habitaciones, created.Superficie)
	}
	if created.PermitenMascotas || created.Amoblado {
		t.Error("amenity flags must default to false")
	}
}

func TestListingService_Create_UnknownTipoRejected(t *testing.T) {
	repo := newStubListingRepo()
	svc := newListingSvc(repo)

	input := minimalListingInput()
	input.Tipo = "Castillo"

	if _, err := svc.Create(context.Background(), "user-1", input); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for unknown tipo, got %v", err)
	}
}

// Round-trip: the persisted listing fed back through the update path
// must reproduce identical field values.
func TestListingService_RoundTrip(t *testing.T) {
	repo := newStubListingRepo()
	svc := newListingSvc(repo)

	input := ports.ListingInput{
		Titulo:             "Casa con patio",
		Descripcion:        "Tres ambientes",
		Direccion:          "Calle Falsa 123",
		Ciudad:             "Córdoba",
		Precio:             "98000.50",
		Tipo:               "Casa",
		Gestion:            "Inmobiliaria",
		Contacto:           "+5491122334455",
		Habitaciones:       "3",
		Superficie:         "120.5",
		PermitenMascotas:   true,
		Amoblado:           true,
		FechaIngreso:       "2026-10-01",
		Latitud:            "-31.42",
		Longitud:           "-64.18",
		Imagenes:           []string{"https://storage.local/images/images/a.jpg"},
	}

	created, err := svc.Create(context.Background(), "user-1", input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	reloaded, err := svc.Update(context.Background(), created.ID, "user-1", domain.RoleLocador, input)
	if err != nil {
		t.Fatalf("update with identical payload failed: %v", err)
	}

	if reloaded.Titulo != created.Titulo ||
		reloaded.Precio != created.Precio ||
		reloaded.Habitaciones != created.Habitaciones ||
		reloaded.Superficie != created.Superficie ||
		!reloaded.FechaIngreso.Equal(created.FechaIngreso) ||
		reloaded.Latitud != created.Latitud ||
		reloaded.Longitud != created.Longitud {
		t.Errorf("round-trip altered field values:\n  created:  %+v\n  reloaded: %+v", created, reloaded)
	}
	if len(reloaded.Imagenes) != 1 || reloaded.Imagenes[0] != input.Imagenes[0] {
		t.Errorf("image list must pass through unchanged, got %v", reloaded.Imagenes)
	}
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

func TestListingService_Search_CasaUnderPriceFixture(t *testing.T) {
	repo := newStubListingRepo()
	svc := newListingSvc(repo)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seedListing(repo, "Casa barata vieja", "Casa", 80000, base)
	casaNueva := seedListing(repo, "Casa barata nueva", "Casa", 95000, base.Add(48*time.Hour))
	seedListing(repo, "Casa cara", "Casa", 150000, base.Add(24*time.Hour))
	seedListing(repo, "Depto uno", "Departamento", 70000, base.Add(2*time.Hour))
	seedListing(repo, "Depto dos", "Departamento", 90000, base.Add(3*time.Hour))

	max := 100000.0
	result, err := svc.Search(context.Background(), ports.SearchInput{Tipo: "Casa", PrecioMax: &max})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected exactly 2 matches, got %d", len(result.Items))
	}
	// Descending by publication timestamp: the newer Casa first.
	if result.Items[0].ID != casaNueva.ID {
		t.Errorf("expected newest Casa first, got %q", result.Items[0].Titulo)
	}
	for _, l := range result.Items {
		if l.Tipo != domain.TypeCasa || l.Precio > 100000 {
			t.Errorf("non-matching listing returned: %+v", l)
		}
	}
}

func TestListingService_Search_EmptyFilterReturnsAllDescending(t *testing.T) {
	repo := newStubListingRepo()
	svc := newListingSvc(repo)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		seedListing(repo, fmt.Sprintf("listing %d", i), "Casa", 1000, base.Add(time.Duration(i)*time.Hour))
	}

	result, err := svc.Search(context.Background(), ports.SearchInput{})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Total != 4 || len(result.Items) != 4 {
		t.Fatalf("expected all 4 listings, got %d (total %d)", len(result.Items), result.Total)
	}
	for i := 1; i < len(result.Items); i++ {
		if result.Items[i].FechaPublicacion.After(result.Items[i-1].FechaPublicacion) {
			t.Fatal("results must be ordered descending by fecha_publicacion")
		}
	}
}

func TestListingService_Search_ConjunctiveFilters(t *testing.T) {
	repo := newStubListingRepo()
	svc := newListingSvc(repo)

	base := time.Now().UTC()
	match := seedListing(repo, "Loft centrico", "Loft", 50000, base)
	match.Ciudad = "Rosario"
	_ = repo.Update(context.Background(), match)
	seedListing(repo, "Loft caro", "Loft", 500000, base)
	seedListing(repo, "Casa centrica", "Casa", 50000, base)

	min, max := 40000.0, 60000.0
	result, err := svc.Search(context.Background(), ports.SearchInput{
		Tipo:      "Loft",
		PrecioMin: &min,
		PrecioMax: &max,
		Titulo:    "CENTRICO",
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].ID != match.ID {
		t.Fatalf("expected only the matching loft, got %d items", len(result.Items))
	}
}

func TestListingService_Search_InclusiveBounds(t *testing.T) {
	repo := newStubListingRepo()
	svc := newListingSvc(repo)

	seedListing(repo, "exact", "Casa", 100000, time.Now().UTC())

	min, max := 100000.0, 100000.0
	result, err := svc.Search(context.Background(), ports.SearchInput{PrecioMin: &min, PrecioMax: &max})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("bounds must be inclusive, got %d items", len(result.Items))
	}
}

func TestListingService_Search_InvalidRange(t *testing.T) {
	svc := newListingSvc(newStubListingRepo())

	min, max := 200.0, 100.0
	if _, err := svc.Search(context.Background(), ports.SearchInput{PrecioMin: &min, PrecioMax: &max}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for inverted range, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Ownership
// ---------------------------------------------------------------------------

func TestListingService_Update_NonOwnerForbidden(t *testing.T) {
	repo := newStubListingRepo()
	svc := newListingSvc(repo)

	created, _ := svc.Create(context.Background(), "owner", minimalListingInput())

	_, err := svc.Update(context.Background(), created.ID, "intruder", domain.RoleLocatario, minimalListingInput())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Admin may edit anyone's listing.
	if _, err := svc.Update(context.Background(), created.ID, "staff", domain.RoleAdmin, minimalListingInput()); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestListingService_Delete_RemovesStoredImages(t *testing.T) {
	repo := newStubListingRepo()
	storage := newStubStorage()
	svc := NewListingService(repo, storage, "images", discardLogger)

	input := minimalListingInput()
	input.Imagenes = []string{"https://storage.local/images/images/abc.jpg"}
	created, _ := svc.Create(context.Background(), "owner", input)

	if err := svc.Delete(context.Background(), created.ID, "owner", domain.RoleLocador); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), created.ID); !errors.Is(err, domain.ErrListingNotFound) {
		t.Fatal("listing must be gone")
	}
	if len(storage.removed) != 1 || storage.removed[0] != "images/abc.jpg" {
		t.Errorf("expected cascade removal of images/abc.jpg, got %v", storage.removed)
	}
}

// ---------------------------------------------------------------------------
// Image uploads
// ---------------------------------------------------------------------------

func imageFile(name string) ports.ImageFile {
	return ports.ImageFile{Name: name, ContentType: "image/jpeg", Size: 4, Content: strings.NewReader(name)}
}

func TestListingService_UploadImages_Partial(t *testing.T) {
	repo := newStubListingRepo()
	storage := newStubStorage()
	storage.failOn["bad.jpg"] = true
	svc := NewListingService(repo, storage, "images", discardLogger)

	created, _ := svc.Create(context.Background(), "owner", minimalListingInput())

	result, err := svc.UploadImages(context.Background(), created.ID, "owner", domain.RoleLocador,
		[]ports.ImageFile{imageFile("ok1.jpg"), imageFile("bad.jpg"), imageFile("ok2.jpg")})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if result.FailedUploads != 1 {
		t.Errorf("expected 1 failed upload, got %d", result.FailedUploads)
	}
	if len(result.Imagenes) != 2 {
		t.Errorf("expected 2 stored images, got %d", len(result.Imagenes))
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	if len(stored.Imagenes) != 2 {
		t.Errorf("listing must persist the 2 successful uploads, got %v", stored.Imagenes)
	}
}

func TestListingService_UploadImages_CapEnforcedBeforeAnyWrite(t *testing.T) {
	repo := newStubListingRepo()
	storage := newStubStorage()
	svc := NewListingService(repo, storage, "images", discardLogger)

	input := minimalListingInput()
	input.Imagenes = []string{"a", "b", "c"}
	created, _ := svc.Create(context.Background(), "owner", input)

	_, err := svc.UploadImages(context.Background(), created.ID, "owner", domain.RoleLocador,
		[]ports.ImageFile{imageFile("1.jpg"), imageFile("2.jpg"), imageFile("3.jpg")})
	if !errors.Is(err, domain.ErrImageLimit) {
		t.Fatalf("expected ErrImageLimit for 3+3, got %v", err)
	}
	if len(storage.uploaded) != 0 {
		t.Error("no object may be written when the batch cannot fit")
	}

	// 3+2 is exactly the boundary and must succeed.
	result, err := svc.UploadImages(context.Background(), created.ID, "owner", domain.RoleLocador,
		[]ports.ImageFile{imageFile("1.jpg"), imageFile("2.jpg")})
	if err != nil {
		t.Fatalf("boundary upload failed: %v", err)
	}
	if len(result.Imagenes) != 5 {
		t.Errorf("expected 5 images, got %d", len(result.Imagenes))
	}
}

func TestListingService_RemoveImage_AbsentIsNoop(t *testing.T) {
	repo := newStubListingRepo()
	storage := newStubStorage()
	svc := NewListingService(repo, storage, "images", discardLogger)

	input := minimalListingInput()
	input.Imagenes = []string{"https://storage.local/images/images/keep.jpg"}
	created, _ := svc.Create(context.Background(), "owner", input)

	listing, err := svc.RemoveImage(context.Background(), created.ID, "owner", domain.RoleLocador, "https://storage.local/images/images/absent.jpg")
	if err != nil {
		t.Fatalf("remove of absent ref must not error: %v", err)
	}
	if len(listing.Imagenes) != 1 {
		t.Errorf("list must be unchanged, got %v", listing.Imagenes)
	}
	if len(storage.removed) != 0 {
		t.Error("no storage call for an absent ref")
	}
}
