package ports

import (
	"context"
	"io"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
)

// SubmitVerificationInput carries one identity document from the user.
type SubmitVerificationInput struct {
	UserID      string
	Label       string // document label, usually the original file name
	ContentType string
	Size        int64
	Content     io.Reader
}

// SubmissionView pairs a submission with a short-lived signed URL for
// viewing the stored document.
type SubmissionView struct {
	Submission *domain.VerificationSubmission
	SignedURL  string
}

// VerificationService implements the document verification workflow:
// users submit documents, administrators review them.
type VerificationService interface {
	// Submit stores the document and inserts a pendiente record. When
	// the insert fails after a successful upload, the stored object is
	// orphaned (logged, not compensated).
	Submit(ctx context.Context, input SubmitVerificationInput) (*domain.VerificationSubmission, error)
	// List returns the caller's submissions, newest first, each with a
	// signed document URL when one can be produced.
	List(ctx context.Context, userID string) ([]*SubmissionView, error)
	// ListPending returns all submissions awaiting review, oldest first.
	ListPending(ctx context.Context) ([]*SubmissionView, error)
	// Review transitions a submission out of pendiente. Approving marks
	// the owning user as verified.
	Review(ctx context.Context, id string, status domain.SubmissionStatus) (*domain.VerificationSubmission, error)
}
