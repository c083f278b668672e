package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
)

const collectionMessages = "mensajes"

type MessageRepository struct {
	col *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{col: db.Collection(collectionMessages)}
}

type messageDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	EmisorID    string             `bson:"emisor_id"`
	ReceptorID  string             `bson:"receptor_id"`
	PropiedadID string             `bson:"propiedad_id,omitempty"`
	Contenido   string             `bson:"contenido"`
	FechaEnvio  time.Time          `bson:"fecha_envio"`
}

func (d messageDoc) toDomain() *domain.Message {
	return &domain.Message{
		ID:          d.ID.Hex(),
		SenderID:    d.EmisorID,
		RecipientID: d.ReceptorID,
		ListingID:   d.PropiedadID,
		Body:        d.Contenido,
		SentAt:      d.FechaEnvio,
	}
}

// Insert persists a new message and returns it with its id set.
func (r *MessageRepository) Insert(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := messageDoc{
		ID:          primitive.NewObjectID(),
		EmisorID:    m.SenderID,
		ReceptorID:  m.RecipientID,
		PropiedadID: m.ListingID,
		Contenido:   m.Body,
		FechaEnvio:  m.SentAt,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

// pairFilter matches messages between the two users in either
// direction, additionally scoped to a listing when listingID is set.
func pairFilter(userA, userB, listingID string) bson.M {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"emisor_id": userA, "receptor_id": userB},
			bson.M{"emisor_id": userB, "receptor_id": userA},
		},
	}
	if listingID != "" {
		filter["propiedad_id"] = listingID
	}
	return filter
}

// FirstBetween returns the oldest message of the pair's thread.
func (r *MessageRepository) FirstBetween(ctx context.Context, userA, userB, listingID string) (*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "fecha_envio", Value: 1}})

	var doc messageDoc
	err := r.col.FindOne(ctx, pairFilter(userA, userB, listingID), opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrThreadNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// ListBetween returns the pair's full history, oldest first.
func (r *MessageRepository) ListBetween(ctx context.Context, userA, userB, listingID string) ([]*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "fecha_envio", Value: 1}})

	cur, err := r.col.Find(ctx, pairFilter(userA, userB, listingID), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Message
	for cur.Next(ctx) {
		var doc messageDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureIndexes creates the indexes the thread queries rely on.
func (r *MessageRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "emisor_id", Value: 1}, {Key: "receptor_id", Value: 1}, {Key: "fecha_envio", Value: 1}}},
		{Keys: bson.D{{Key: "receptor_id", Value: 1}}},
		{Keys: bson.D{{Key: "propiedad_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
