package handler

import (
	"time"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
)

// --- Request types ---

type resolveThreadRequest struct {
	ReceptorID  string `json:"receptor_id"  validate:"required"`
	PropiedadID string `json:"propiedad_id"`
}

type sendMessageRequest struct {
	ReceptorID  string `json:"receptor_id"  validate:"required"`
	PropiedadID string `json:"propiedad_id"`
	Contenido   string `json:"contenido"    validate:"required"`
}

// --- Response types ---

type messageResponse struct {
	ID          string    `json:"id"`
	EmisorID    string    `json:"emisor_id"`
	ReceptorID  string    `json:"receptor_id"`
	PropiedadID string    `json:"propiedad_id,omitempty"`
	Contenido   string    `json:"contenido"`
	FechaEnvio  time.Time `json:"fecha_envio"`
}

type threadResponse struct {
	ThreadID string           `json:"thread_id"`
	Created  bool             `json:"created"`
	Seed     *messageResponse `json:"seed,omitempty"`
}

type historyResponse struct {
	Mensajes []messageResponse `json:"mensajes"`
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:          m.ID,
		EmisorID:    m.SenderID,
		ReceptorID:  m.RecipientID,
		PropiedadID: m.ListingID,
		Contenido:   m.Body,
		FechaEnvio:  m.SentAt.UTC(),
	}
}
