package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PropertyType classifies a rentable property.
type PropertyType string

const (
	TypeDepartamento PropertyType = "Departamento"
	TypeCasa         PropertyType = "Casa"
	TypeEstudio      PropertyType = "Estudio"
	TypeLoft         PropertyType = "Loft"
	TypeMonoambiente PropertyType = "Monoambiente"
)

// Management distinguishes owner-direct listings from agency-managed ones.
type Management string

const (
	ManagementOwner  Management = "Dueño Directo"
	ManagementAgency Management = "Inmobiliaria"
)

// ListingStatus is the publication state of a listing.
type ListingStatus string

const (
	StatusDisponible ListingStatus = "disponible"
	StatusAlquilada  ListingStatus = "alquilada"
)

// MaxImages is the hard cap on images attached to a single listing.
const MaxImages = 5

var ErrListingNotFound = errors.New("listing not found")
var ErrForbidden = errors.New("access forbidden")
var ErrImageLimit = fmt.Errorf("a listing holds at most %d images", MaxImages)
var ErrValidation = errors.New("validation failed")

// FieldErrors carries per-field validation messages. It matches
// ErrValidation under errors.Is so the transport layer can map it
// without knowing the offending fields.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for field, msg := range f {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (f FieldErrors) Is(target error) bool { return target == ErrValidation }

// Valid reports whether t is one of the recognized property types.
func (t PropertyType) Valid() bool {
	switch t {
	case TypeDepartamento, TypeCasa, TypeEstudio, TypeLoft, TypeMonoambiente:
		return true
	}
	return false
}

// Valid reports whether m is a recognized management mode.
func (m Management) Valid() bool {
	return m == ManagementOwner || m == ManagementAgency
}

// Valid reports whether s is a recognized listing status.
func (s ListingStatus) Valid() bool {
	return s == StatusDisponible || s == StatusAlquilada
}

// Listing is the core aggregate: a rentable property record.
type Listing struct {
	ID                 string        `json:"id" bson:"_id,omitempty"`
	Titulo             string        `json:"titulo" bson:"titulo"`
	Descripcion        string        `json:"descripcion" bson:"descripcion"`
	Direccion          string        `json:"direccion" bson:"direccion"`
	Ciudad             string        `json:"ciudad" bson:"ciudad"`
	Precio             float64       `json:"precio" bson:"precio"`
	Tipo               PropertyType  `json:"tipo,omitempty" bson:"tipo,omitempty"`
	Gestion            Management    `json:"gestion,omitempty" bson:"gestion,omitempty"`
	Contacto           string        `json:"contacto,omitempty" bson:"contacto,omitempty"`
	Habitaciones       int           `json:"habitaciones" bson:"habitaciones"`
	Superficie         float64       `json:"superficie" bson:"superficie"`
	PermitenMascotas   bool          `json:"permiten_mascotas" bson:"permiten_mascotas"`
	PermitenNinos      bool          `json:"permiten_ninos" bson:"permiten_ninos"`
	ServiciosIncluidos bool          `json:"servicios_incluidos" bson:"servicios_incluidos"`
	Amoblado           bool          `json:"amoblado" bson:"amoblado"`
	FechaIngreso       time.Time     `json:"fecha_ingreso,omitempty" bson:"fecha_ingreso,omitempty"`
	Latitud            float64       `json:"latitud,omitempty" bson:"latitud,omitempty"`
	Longitud           float64       `json:"longitud,omitempty" bson:"longitud,omitempty"`
	Imagenes           []string      `json:"imagenes" bson:"imagenes"`
	OwnerID            string        `json:"usuario_id" bson:"usuario_id"`
	FechaPublicacion   time.Time     `json:"fecha_publicacion" bson:"fecha_publicacion"`
	Estado             ListingStatus `json:"estado" bson:"estado"`
}

// EditableBy reports whether the given caller may mutate the listing.
// Only the owner and administrators may; everyone else is read-only.
func (l *Listing) EditableBy(userID, role string) bool {
	return role == RoleAdmin || l.OwnerID == userID
}

// AddImages appends incoming image references to current, preserving
// insertion order. The combined list must not exceed MaxImages; the
// boundary itself is accepted.
func AddImages(current, incoming []string) ([]string, error) {
	if len(current)+len(incoming) > MaxImages {
		return nil, ErrImageLimit
	}
	out := make([]string, 0, len(current)+len(incoming))
	out = append(out, current...)
	out = append(out, incoming...)
	return out, nil
}

// RemoveImage removes ref from current. Removing an absent reference is
// a no-op, not an error.
func RemoveImage(current []string, ref string) []string {
	out := make([]string, 0, len(current))
	for _, img := range current {
		if img != ref {
			out = append(out, img)
		}
	}
	return out
}
