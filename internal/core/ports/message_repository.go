package ports

import (
	"context"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
)

// MessageRepository defines persistence operations for chat messages.
// Messages are insert-only; no update or delete exists.
type MessageRepository interface {
	Insert(ctx context.Context, m *domain.Message) (*domain.Message, error)
	// FirstBetween returns the oldest message between the two users,
	// additionally constrained to listingID when non-empty. Returns
	// domain.ErrThreadNotFound when no message exists. The pair match is
	// symmetric: (a->b) OR (b->a).
	FirstBetween(ctx context.Context, userA, userB, listingID string) (*domain.Message, error)
	// ListBetween returns all messages between the two users ordered
	// ascending by fecha_envio.
	ListBetween(ctx context.Context, userA, userB, listingID string) ([]*domain.Message, error)
}
