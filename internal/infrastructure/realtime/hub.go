// Package realtime fans freshly persisted chat messages out to connected
// WebSocket subscribers. Instances are bridged through a Redis pub/sub
// channel so a message lands on whichever instance holds the recipient's
// connection.
package realtime

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
)

const (
	defaultWorkers   = 8
	channelBuffer    = 256
	subscriberBuffer = 16
)

// Hub routes messages to a fixed set of workers using consistent hashing
// on the recipient id, guaranteeing per-recipient delivery ordering.
type Hub struct {
	workers []chan *domain.Message
	log     zerolog.Logger

	mu          sync.RWMutex
	subscribers map[string]map[int]chan *domain.Message
	nextSubID   int
}

// NewHub creates a Hub with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewHub(numWorkers int, log zerolog.Logger) *Hub {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	h := &Hub{
		workers:     make([]chan *domain.Message, numWorkers),
		log:         log,
		subscribers: make(map[string]map[int]chan *domain.Message),
	}
	for i := range h.workers {
		h.workers[i] = make(chan *domain.Message, channelBuffer)
	}
	return h
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (h *Hub) Start(ctx context.Context) {
	for i, ch := range h.workers {
		go h.runWorker(ctx, i, ch)
	}
}

// Deliver hands a message to the worker responsible for its recipient.
// The call is non-blocking up to channelBuffer capacity.
func (h *Hub) Deliver(m *domain.Message) {
	h.workers[h.shardIndex(m.RecipientID)] <- m
}

// Subscribe registers a delivery channel for userID. The returned cancel
// func unregisters and closes the channel; it is safe to call once.
func (h *Hub) Subscribe(userID string) (<-chan *domain.Message, func()) {
	ch := make(chan *domain.Message, subscriberBuffer)

	h.mu.Lock()
	id := h.nextSubID
	h.nextSubID++
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[int]chan *domain.Message)
	}
	h.subscribers[userID][id] = ch
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		subs := h.subscribers[userID]
		if _, ok := subs[id]; ok {
			delete(subs, id)
			if len(subs) == 0 {
				delete(h.subscribers, userID)
			}
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// shardIndex maps a recipient id deterministically to a worker index.
func (h *Hub) shardIndex(recipientID string) int {
	f := fnv.New32a()
	_, _ = f.Write([]byte(recipientID))
	return int(f.Sum32()) % len(h.workers)
}

func (h *Hub) runWorker(ctx context.Context, id int, ch <-chan *domain.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			h.fanOut(id, m)
		}
	}
}

// fanOut pushes the message to every open subscription of the
// recipient. Slow subscribers are skipped, never waited on.
func (h *Hub) fanOut(workerID int, m *domain.Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subscribers[m.RecipientID] {
		select {
		case sub <- m:
		default:
			h.log.Warn().
				Str("receptor_id", m.RecipientID).
				Int("worker_id", workerID).
				Msg("subscriber buffer full, message dropped")
		}
	}
}
