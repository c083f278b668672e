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

const collectionVerifications = "verificaciones"

type VerificationRepository struct {
	col *mongo.Collection
}

func NewVerificationRepository(db *mongo.Database) *VerificationRepository {
	return &VerificationRepository{col: db.Collection(collectionVerifications)}
}

type verificationDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"user_id"`
	DocumentoTipo string             `bson:"documento_tipo"`
	RutaArchivo   string             `bson:"ruta_archivo"`
	Estado        string             `bson:"estado"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (d verificationDoc) toDomain() *domain.VerificationSubmission {
	return &domain.VerificationSubmission{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		Label:       d.DocumentoTipo,
		ObjectKey:   d.RutaArchivo,
		Status:      domain.SubmissionStatus(d.Estado),
		SubmittedAt: d.CreatedAt,
	}
}

func (r *VerificationRepository) Create(ctx context.Context, s *domain.VerificationSubmission) (*domain.VerificationSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := verificationDoc{
		ID:            primitive.NewObjectID(),
		UserID:        s.UserID,
		DocumentoTipo: s.Label,
		RutaArchivo:   s.ObjectKey,
		Estado:        string(s.Status),
		CreatedAt:     s.SubmittedAt,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *VerificationRepository) FindByID(ctx context.Context, id string) (*domain.VerificationSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSubmissionNotFound
	}

	var doc verificationDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// ListByUser returns the user's submissions, newest first.
func (r *VerificationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.VerificationSubmission, error) {
	return r.list(ctx, bson.M{"user_id": userID}, -1)
}

// ListByStatus returns all submissions in the given status, oldest first.
func (r *VerificationRepository) ListByStatus(ctx context.Context, status domain.SubmissionStatus) ([]*domain.VerificationSubmission, error) {
	return r.list(ctx, bson.M{"estado": string(status)}, 1)
}

func (r *VerificationRepository) list(ctx context.Context, filter bson.M, sortDir int) ([]*domain.VerificationSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: sortDir}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.VerificationSubmission
	for cur.Next(ctx) {
		var doc verificationDoc
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

func (r *VerificationRepository) UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSubmissionNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"estado": string(status)}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the review queues rely on.
func (r *VerificationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "estado", Value: 1}, {Key: "created_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
