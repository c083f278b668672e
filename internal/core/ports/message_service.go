package ports

import (
	"context"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
)

// ResolveThreadInput identifies a thread: the caller, the other
// participant, and an optional listing scope.
type ResolveThreadInput struct {
	UserID    string // caller, taken from the session claims
	OtherID   string
	ListingID string // optional
}

// ThreadResult is returned by Resolve. ThreadID is the id of the
// thread's oldest message; Created reports whether a seed message was
// inserted by this call.
type ThreadResult struct {
	ThreadID string
	Created  bool
	Seed     *domain.Message
}

// HistoryInput selects a thread's ordered message history.
type HistoryInput struct {
	UserID    string // caller; must be a participant
	OtherID   string
	ListingID string // optional
}

// SendMessageInput carries a new message from the caller.
type SendMessageInput struct {
	SenderID    string // caller, taken from the session claims
	RecipientID string
	ListingID   string // optional
	Body        string
}

// ThreadLocker serializes thread initiation for one pair key. Best
// effort: callers proceed unguarded when the lock cannot be taken.
type ThreadLocker interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// MessagePublisher pushes freshly inserted messages to the realtime
// fanout. Publish failures never fail the write path.
type MessagePublisher interface {
	PublishMessage(ctx context.Context, m *domain.Message) error
}

// ThreadService resolves, reads, and appends to message threads.
type ThreadService interface {
	// Resolve finds the existing thread for (caller, other, listing) or
	// creates it by inserting a seed message. Idempotent under
	// non-concurrent use: a second call returns the same thread identity.
	Resolve(ctx context.Context, input ResolveThreadInput) (*ThreadResult, error)
	History(ctx context.Context, input HistoryInput) ([]*domain.Message, error)
	Send(ctx context.Context, input SendMessageInput) (*domain.Message, error)
}
