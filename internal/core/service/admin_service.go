package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
	"github.com/comunidadlocatarios/rental-platform/internal/core/ports"
)

// AdminService implements the moderation panel's user operations.
type AdminService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewAdminService(users ports.UserRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{users: users, logger: logger}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// UpdateUser overwrites a user's profile fields. Unlike registration,
// an administrator may assign any role, including admin.
func (s *AdminService) UpdateUser(ctx context.Context, id, nombre, email, role string) (*domain.User, error) {
	errs := domain.FieldErrors{}
	nombre = strings.TrimSpace(nombre)
	email = strings.ToLower(strings.TrimSpace(email))
	if nombre == "" {
		errs["nombre"] = "is required"
	}
	if email == "" {
		errs["email"] = "is required"
	}
	if !domain.ValidRole(role) {
		errs["tipo"] = "unknown role"
	}
	if len(errs) > 0 {
		return nil, errs
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Nombre = nombre
	user.Email = email
	user.Role = role
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Str("tipo", role).Msg("user updated by admin")
	return user, nil
}
