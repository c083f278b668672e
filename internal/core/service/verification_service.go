package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
	"github.com/comunidadlocatarios/rental-platform/internal/core/ports"
)

const signedURLTTL = time.Hour

// VerificationService implements the document verification workflow.
type VerificationService struct {
	repo       ports.VerificationRepository
	users      ports.UserRepository
	storage    ports.ObjectStorage
	docsBucket string
	logger     zerolog.Logger
}

func NewVerificationService(repo ports.VerificationRepository, users ports.UserRepository, storage ports.ObjectStorage, docsBucket string, logger zerolog.Logger) *VerificationService {
	return &VerificationService{repo: repo, users: users, storage: storage, docsBucket: docsBucket, logger: logger}
}

// Submit stores the raw document, then inserts a pendiente submission.
// If the insert fails after a successful upload, the stored object is
// orphaned; its key is logged for manual cleanup, never compensated.
func (s *VerificationService) Submit(ctx context.Context, input ports.SubmitVerificationInput) (*domain.VerificationSubmission, error) {
	if input.UserID == "" {
		return nil, domain.ErrForbidden
	}
	label := strings.TrimSpace(input.Label)
	if label == "" {
		return nil, domain.FieldErrors{"documento": "is required"}
	}
	if input.Content == nil {
		return nil, domain.FieldErrors{"documento": "file content is required"}
	}

	key := documentKey(input.UserID, label)
	if _, err := s.storage.Upload(ctx, s.docsBucket, key, input.Content, input.Size, input.ContentType); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("document upload failed")
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.VerificationSubmission{
		UserID:      input.UserID,
		Label:       label,
		ObjectKey:   key,
		Status:      domain.SubmissionPending,
		SubmittedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("user_id", input.UserID).
			Str("orphaned_object", key).
			Msg("submission insert failed after upload")
		return nil, err
	}

	// First submission moves the account out of sin_verificar.
	user, uerr := s.users.FindByID(ctx, input.UserID)
	if uerr == nil && user.Verification == domain.VerificationNone {
		if err := s.users.SetVerification(ctx, input.UserID, domain.VerificationPending); err != nil {
			s.logger.Warn().Err(err).Str("user_id", input.UserID).Msg("failed to mark user pendiente")
		}
	}

	s.logger.Info().Str("submission_id", created.ID).Str("user_id", input.UserID).Msg("verification submitted")
	return created, nil
}

// List returns the caller's submissions, newest first, with signed URLs.
func (s *VerificationService) List(ctx context.Context, userID string) ([]*ports.SubmissionView, error) {
	subs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withSignedURLs(ctx, subs), nil
}

// ListPending returns all submissions awaiting review, oldest first.
func (s *VerificationService) ListPending(ctx context.Context) ([]*ports.SubmissionView, error) {
	subs, err := s.repo.ListByStatus(ctx, domain.SubmissionPending)
	if err != nil {
		return nil, err
	}
	return s.withSignedURLs(ctx, subs), nil
}

// Review applies an administrator decision. Only pendiente submissions
// move; approving also marks the owning user as verified.
func (s *VerificationService) Review(ctx context.Context, id string, status domain.SubmissionStatus) (*domain.VerificationSubmission, error) {
	if status != domain.SubmissionApproved && status != domain.SubmissionRejected {
		return nil, domain.FieldErrors{"estado": "must be aprobado or rechazado"}
	}

	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !sub.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidReview, sub.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	sub.Status = status

	if status == domain.SubmissionApproved {
		if err := s.users.SetVerification(ctx, sub.UserID, domain.VerificationApproved); err != nil {
			s.logger.Warn().Err(err).Str("user_id", sub.UserID).Msg("failed to mark user aprobado")
		}
	}

	s.logger.Info().Str("submission_id", id).Str("estado", string(status)).Msg("verification reviewed")
	return sub, nil
}

func (s *VerificationService) withSignedURLs(ctx context.Context, subs []*domain.VerificationSubmission) []*ports.SubmissionView {
	views := make([]*ports.SubmissionView, 0, len(subs))
	for _, sub := range subs {
		url, err := s.storage.SignedURL(ctx, s.docsBucket, sub.ObjectKey, signedURLTTL)
		if err != nil {
			s.logger.Warn().Err(err).Str("object_key", sub.ObjectKey).Msg("failed to sign document url")
			url = ""
		}
		views = append(views, &ports.SubmissionView{Submission: sub, SignedURL: url})
	}
	return views
}

// documentKey namespaces documents per user and keeps the extension.
func documentKey(userID, label string) string {
	base := strings.ReplaceAll(path.Base(label), " ", "_")
	return fmt.Sprintf("%s/%d_%s", userID, time.Now().UnixMilli(), base)
}
