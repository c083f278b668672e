package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
	"github.com/comunidadlocatarios/rental-platform/internal/core/ports"
	"github.com/comunidadlocatarios/rental-platform/internal/pkg/sanitize"
)

// seedBody is the greeting that establishes a fresh thread.
const seedBody = "Hola, estoy interesado en tu propiedad."

const (
	lockRetryInterval = 50 * time.Millisecond
	lockWaitTimeout   = 2 * time.Second
)

// ThreadService implements thread resolution, history and sending.
type ThreadService struct {
	messages  ports.MessageRepository
	locker    ports.ThreadLocker
	publisher ports.MessagePublisher
	logger    zerolog.Logger
}

func NewThreadService(messages ports.MessageRepository, locker ports.ThreadLocker, publisher ports.MessagePublisher, logger zerolog.Logger) *ThreadService {
	return &ThreadService{messages: messages, locker: locker, publisher: publisher, logger: logger}
}

// Resolve finds the thread between the caller and the other participant
// (optionally scoped to a listing) or creates it with a seed message.
// The read-then-write sequence is guarded by a short-lived lock on the
// canonical pair key. A losing racer waits for the holder's release and
// only then re-runs the lookup, so it finds the seed the holder wrote.
// Lock errors and wait timeouts degrade to the unguarded sequence.
func (s *ThreadService) Resolve(ctx context.Context, input ports.ResolveThreadInput) (*ports.ThreadResult, error) {
	if input.UserID == "" || input.OtherID == "" {
		return nil, domain.FieldErrors{"other_id": "is required"}
	}
	if input.UserID == input.OtherID {
		return nil, domain.FieldErrors{"other_id": "cannot start a thread with yourself"}
	}

	key := domain.PairKey(input.UserID, input.OtherID, input.ListingID)
	locked, err := s.locker.Acquire(ctx, key)
	switch {
	case err != nil:
		s.logger.Warn().Err(err).Str("pair_key", key).Msg("thread lock unavailable, resolving unguarded")
	case !locked:
		locked = s.waitForLock(ctx, key)
	}
	if locked {
		defer func() {
			if err := s.locker.Release(ctx, key); err != nil {
				s.logger.Warn().Err(err).Str("pair_key", key).Msg("failed to release thread lock")
			}
		}()
	}

	existing, err := s.messages.FirstBetween(ctx, input.UserID, input.OtherID, input.ListingID)
	if err == nil {
		return &ports.ThreadResult{ThreadID: existing.ID}, nil
	}
	if !errors.Is(err, domain.ErrThreadNotFound) {
		return nil, err
	}

	seed, err := s.messages.Insert(ctx, &domain.Message{
		SenderID:    input.UserID,
		RecipientID: input.OtherID,
		ListingID:   input.ListingID,
		Body:        seedBody,
		SentAt:      time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, seed)
	s.logger.Info().
		Str("thread_id", seed.ID).
		Str("sender_id", input.UserID).
		Str("recipient_id", input.OtherID).
		Msg("thread created")

	return &ports.ThreadResult{ThreadID: seed.ID, Created: true, Seed: seed}, nil
}

// History returns the thread's messages ascending by send time. The
// caller must be one of the participants; the pair lookup itself
// guarantees that when UserID comes from the session claims, so the
// check here guards direct service callers.
func (s *ThreadService) History(ctx context.Context, input ports.HistoryInput) ([]*domain.Message, error) {
	if input.UserID == "" || input.OtherID == "" {
		return nil, domain.FieldErrors{"other_id": "is required"}
	}
	return s.messages.ListBetween(ctx, input.UserID, input.OtherID, input.ListingID)
}

// Send appends a message from the caller to the recipient. The body
// must be non-blank; it is sanitized before persisting.
func (s *ThreadService) Send(ctx context.Context, input ports.SendMessageInput) (*domain.Message, error) {
	body := strings.TrimSpace(sanitize.Strict(input.Body))
	if body == "" {
		return nil, domain.FieldErrors{"contenido": "cannot be empty"}
	}
	if input.SenderID == "" || input.RecipientID == "" {
		return nil, domain.FieldErrors{"receptor_id": "is required"}
	}
	if input.SenderID == input.RecipientID {
		return nil, domain.ErrForbidden
	}

	msg, err := s.messages.Insert(ctx, &domain.Message{
		SenderID:    input.SenderID,
		RecipientID: input.RecipientID,
		ListingID:   input.ListingID,
		Body:        body,
		SentAt:      time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("sender_id", input.SenderID).Msg("failed to send message")
		return nil, err
	}

	s.publish(ctx, msg)
	return msg, nil
}

// waitForLock retries the acquire until the current holder releases,
// the wait budget runs out, or ctx is cancelled. The holder's TTL
// bounds the worst case even if it crashes without releasing.
func (s *ThreadService) waitForLock(ctx context.Context, key string) bool {
	deadline := time.NewTimer(lockWaitTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(lockRetryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-deadline.C:
			s.logger.Warn().Str("pair_key", key).Msg("thread lock wait timed out, resolving unguarded")
			return false
		case <-ticker.C:
			locked, err := s.locker.Acquire(ctx, key)
			if err != nil {
				s.logger.Warn().Err(err).Str("pair_key", key).Msg("thread lock unavailable, resolving unguarded")
				return false
			}
			if locked {
				return true
			}
		}
	}
}

func (s *ThreadService) publish(ctx context.Context, m *domain.Message) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishMessage(ctx, m); err != nil {
		s.logger.Warn().Err(err).Str("message_id", m.ID).Msg("realtime publish failed")
	}
}
