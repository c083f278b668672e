package ports

import (
	"context"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
)

// AdminService covers the moderation panel's user operations. Listing
// and verification moderation reuse ListingService and
// VerificationService under the admin role.
type AdminService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, id, nombre, email, role string) (*domain.User, error)
}
