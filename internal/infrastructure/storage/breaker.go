package storage

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/comunidadlocatarios/rental-platform/internal/core/ports"
)

// BreakerClient wraps an object store with a circuit breaker so a dead
// store fails fast instead of tying up request handlers on timeouts.
// PublicURL is pure string assembly and bypasses the breaker.
type BreakerClient struct {
	inner ports.ObjectStorage
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerClient wraps inner. The breaker opens after 5 consecutive
// failures and probes again after 30 seconds.
func NewBreakerClient(inner ports.ObjectStorage, log zerolog.Logger) *BreakerClient {
	settings := gobreaker.Settings{
		Name:    "object-storage",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("storage breaker state change")
		},
	}
	return &BreakerClient{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *BreakerClient) Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Upload(ctx, bucket, key, r, size, contentType)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

func (b *BreakerClient) PublicURL(bucket, key string) string {
	return b.inner.PublicURL(bucket, key)
}

func (b *BreakerClient) SignedURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.SignedURL(ctx, bucket, key, ttl)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

func (b *BreakerClient) Remove(ctx context.Context, bucket, key string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.inner.Remove(ctx, bucket, key)
	})
	return err
}
