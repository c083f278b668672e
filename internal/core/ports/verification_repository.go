package ports

import (
	"context"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
)

// VerificationRepository defines persistence operations for
// verification submissions.
type VerificationRepository interface {
	Create(ctx context.Context, s *domain.VerificationSubmission) (*domain.VerificationSubmission, error)
	FindByID(ctx context.Context, id string) (*domain.VerificationSubmission, error)
	// ListByUser returns the user's submissions ordered descending by
	// submission time.
	ListByUser(ctx context.Context, userID string) ([]*domain.VerificationSubmission, error)
	// ListByStatus returns all submissions in the given status, oldest first.
	ListByStatus(ctx context.Context, status domain.SubmissionStatus) ([]*domain.VerificationSubmission, error)
	UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error
}
