package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
)

const messageChannel = "mensajes"

// wireMessage is the pub/sub envelope. Field names follow the document
// schema so a payload can be eyeballed next to the collection.
type wireMessage struct {
	ID          string    `json:"id"`
	EmisorID    string    `json:"emisor_id"`
	ReceptorID  string    `json:"receptor_id"`
	PropiedadID string    `json:"propiedad_id,omitempty"`
	Contenido   string    `json:"contenido"`
	FechaEnvio  time.Time `json:"fecha_envio"`
}

// Publisher pushes persisted messages onto the Redis channel feeding
// every instance's Hub. It implements the write path's publisher
// collaborator.
type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) PublishMessage(ctx context.Context, m *domain.Message) error {
	payload, err := json.Marshal(wireMessage{
		ID:          m.ID,
		EmisorID:    m.SenderID,
		ReceptorID:  m.RecipientID,
		PropiedadID: m.ListingID,
		Contenido:   m.Body,
		FechaEnvio:  m.SentAt,
	})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	if err := p.client.Publish(ctx, messageChannel, payload).Err(); err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

// Bridge subscribes to the Redis message channel and feeds everything
// it receives into the local Hub.
type Bridge struct {
	client *redis.Client
	hub    *Hub
	log    zerolog.Logger
}

func NewBridge(client *redis.Client, hub *Hub, log zerolog.Logger) *Bridge {
	return &Bridge{client: client, hub: hub, log: log}
}

// Run blocks consuming the channel until ctx is cancelled. The pub/sub
// connection reconnects internally, so transient Redis failures only
// drop the messages published while it was down.
func (b *Bridge) Run(ctx context.Context) {
	sub := b.client.Subscribe(ctx, messageChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var wire wireMessage
			if err := json.Unmarshal([]byte(msg.Payload), &wire); err != nil {
				b.log.Error().Err(err).Msg("malformed realtime payload")
				continue
			}
			b.hub.Deliver(&domain.Message{
				ID:          wire.ID,
				SenderID:    wire.EmisorID,
				RecipientID: wire.ReceptorID,
				ListingID:   wire.PropiedadID,
				Body:        wire.Contenido,
				SentAt:      wire.FechaEnvio,
			})
		}
	}
}
