package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
)

const collectionInquiries = "consultas"

type InquiryRepository struct {
	col *mongo.Collection
}

func NewInquiryRepository(db *mongo.Database) *InquiryRepository {
	return &InquiryRepository{col: db.Collection(collectionInquiries)}
}

type inquiryDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	PropiedadID string             `bson:"propiedad_id"`
	UsuarioID   string             `bson:"usuario_id"`
	Mensaje     string             `bson:"mensaje"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d inquiryDoc) toDomain() *domain.Inquiry {
	return &domain.Inquiry{
		ID:        d.ID.Hex(),
		ListingID: d.PropiedadID,
		UserID:    d.UsuarioID,
		Body:      d.Mensaje,
		CreatedAt: d.CreatedAt,
	}
}

// Insert persists a new inquiry and returns it with its id set.
func (r *InquiryRepository) Insert(ctx context.Context, q *domain.Inquiry) (*domain.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := inquiryDoc{
		ID:          primitive.NewObjectID(),
		PropiedadID: q.ListingID,
		UsuarioID:   q.UserID,
		Mensaje:     q.Body,
		CreatedAt:   q.CreatedAt,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

// ListByListing returns the listing's inquiries, newest first.
func (r *InquiryRepository) ListByListing(ctx context.Context, listingID string) ([]*domain.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.col.Find(ctx, bson.M{"propiedad_id": listingID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Inquiry
	for cur.Next(ctx) {
		var doc inquiryDoc
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

// EnsureIndexes creates the index the per-listing query relies on.
func (r *InquiryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "propiedad_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
