package handler

import (
	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
	"github.com/comunidadlocatarios/rental-platform/internal/core/ports"
)

// --- Request → Service input ---

func toListingInput(req listingRequest) ports.ListingInput {
	return ports.ListingInput{
		Titulo:             req.Titulo,
		Descripcion:        req.Descripcion,
		Direccion:          req.Direccion,
		Ciudad:             req.Ciudad,
		Precio:             req.Precio,
		Tipo:               req.Tipo,
		Gestion:            req.Gestion,
		Contacto:           req.Contacto,
		Habitaciones:       req.Habitaciones,
		Superficie:         req.Superficie,
		PermitenMascotas:   req.PermitenMascotas,
		PermitenNinos:      req.PermitenNinos,
		ServiciosIncluidos: req.ServiciosIncluidos,
		Amoblado:           req.Amoblado,
		FechaIngreso:       req.FechaIngreso,
		Latitud:            req.Latitud,
		Longitud:           req.Longitud,
		Estado:             req.Estado,
		Imagenes:           req.Imagenes,
	}
}

// --- Service result → HTTP response ---

func toListingResponse(l *domain.Listing) listingResponse {
	resp := listingResponse{
		ID:                 l.ID,
		Titulo:             l.Titulo,
		Descripcion:        l.Descripcion,
		Direccion:          l.Direccion,
		Ciudad:             l.Ciudad,
		Precio:             l.Precio,
		Tipo:               string(l.Tipo),
		Gestion:            string(l.Gestion),
		Contacto:           l.Contacto,
		Habitaciones:       l.Habitaciones,
		Superficie:         l.Superficie,
		PermitenMascotas:   l.PermitenMascotas,
		PermitenNinos:      l.PermitenNinos,
		ServiciosIncluidos: l.ServiciosIncluidos,
		Amoblado:           l.Amoblado,
		Latitud:            l.Latitud,
		Longitud:           l.Longitud,
		Imagenes:           l.Imagenes,
		UsuarioID:          l.OwnerID,
		FechaPublicacion:   l.FechaPublicacion.UTC(),
		Estado:             string(l.Estado),
	}
	if resp.Imagenes == nil {
		resp.Imagenes = []string{}
	}
	if !l.FechaIngreso.IsZero() {
		resp.FechaIngreso = l.FechaIngreso.UTC().Format("2006-01-02")
	}
	return resp
}

func toListResponse(r *ports.SearchResult) listListingsResponse {
	items := make([]listingResponse, len(r.Items))
	for i, l := range r.Items {
		items[i] = toListingResponse(l)
	}
	return listListingsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
