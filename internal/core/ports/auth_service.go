package ports

import (
	"context"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
)

// AuthService implements registration, login and session lookup. The
// returned token is the session: presenting it IS being authenticated,
// and its absence or rejection is treated as an anonymous caller.
type AuthService interface {
	Register(ctx context.Context, nombre, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser resolves the user behind validated session claims.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
