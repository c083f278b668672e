package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// --- Request types ---

// listingRequest is the property editor's form payload. Numeric fields
// travel as strings exactly as the form holds them; the service coerces
// and validates them so a bad "precio" comes back as a field error, not
// a bind failure.
type listingRequest struct {
	Titulo             string   `json:"titulo"              validate:"required,max=200"`
	Descripcion        string   `json:"descripcion"         validate:"required"`
	Direccion          string   `json:"direccion"           validate:"required"`
	Ciudad             string   `json:"ciudad"`
	Precio             string   `json:"precio"              validate:"required"`
	Tipo               string   `json:"tipo"                validate:"omitempty,oneof=Departamento Casa Estudio Loft Monoambiente"`
	Gestion            string   `json:"gestion"             validate:"omitempty,oneof='Dueño Directo' Inmobiliaria"`
	Contacto           string   `json:"contacto"`
	Habitaciones       string   `json:"habitaciones"`
	Superficie         string   `json:"superficie"`
	PermitenMascotas   bool     `json:"permiten_mascotas"`
	PermitenNinos      bool     `json:"permiten_ninos"`
	ServiciosIncluidos bool     `json:"servicios_incluidos"`
	Amoblado           bool     `json:"amoblado"`
	FechaIngreso       string   `json:"fecha_ingreso"`
	Latitud            string   `json:"latitud"`
	Longitud           string   `json:"longitud"`
	Estado             string   `json:"estado"              validate:"omitempty,oneof=disponible alquilada"`
	Imagenes           []string `json:"imagenes"            validate:"max=5"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally
// separate from domain types so the JSON contract is not coupled to
// internal changes.

type listingResponse struct {
	ID                 string    `json:"id"`
	Titulo             string    `json:"titulo"`
	Descripcion        string    `json:"descripcion"`
	Direccion          string    `json:"direccion"`
	Ciudad             string    `json:"ciudad"`
	Precio             float64   `json:"precio"`
	Tipo               string    `json:"tipo,omitempty"`
	Gestion            string    `json:"gestion,omitempty"`
	Contacto           string    `json:"contacto,omitempty"`
	Habitaciones       int       `json:"habitaciones"`
	Superficie         float64   `json:"superficie"`
	PermitenMascotas   bool      `json:"permiten_mascotas"`
	PermitenNinos      bool      `json:"permiten_ninos"`
	ServiciosIncluidos bool      `json:"servicios_incluidos"`
	Amoblado           bool      `json:"amoblado"`
	FechaIngreso       string    `json:"fecha_ingreso,omitempty"`
	Latitud            float64   `json:"latitud,omitempty"`
	Longitud           float64   `json:"longitud,omitempty"`
	Imagenes           []string  `json:"imagenes"`
	UsuarioID          string    `json:"usuario_id"`
	FechaPublicacion   time.Time `json:"fecha_publicacion"`
	Estado             string    `json:"estado"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listListingsResponse struct {
	Data       []listingResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type uploadImagesResponse struct {
	Imagenes      []string `json:"imagenes"`
	FailedUploads int      `json:"failed_uploads"`
}
