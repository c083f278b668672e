package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/comunidadlocatarios/rental-platform/internal/core/domain"
	"github.com/comunidadlocatarios/rental-platform/internal/core/ports"
)

const collectionListings = "propiedades"

type ListingRepository struct {
	col *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{col: db.Collection(collectionListings)}
}

// listingDoc is the persistence shape. It exists so _id stays a native
// ObjectID while the domain works with hex strings.
type listingDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Titulo             string             `bson:"titulo"`
	Descripcion        string             `bson:"descripcion"`
	Direccion          string             `bson:"direccion"`
	Ciudad             string             `bson:"ciudad"`
	Precio             float64            `bson:"precio"`
	Tipo               string             `bson:"tipo,omitempty"`
	Gestion            string             `bson:"gestion,omitempty"`
	Contacto           string             `bson:"contacto,omitempty"`
	Habitaciones       int                `bson:"habitaciones"`
	Superficie         float64            `bson:"superficie"`
	PermitenMascotas   bool               `bson:"permiten_mascotas"`
	PermitenNinos      bool               `bson:"permiten_ninos"`
	ServiciosIncluidos bool               `bson:"servicios_incluidos"`
	Amoblado           bool               `bson:"amoblado"`
	FechaIngreso       time.Time          `bson:"fecha_ingreso,omitempty"`
	Latitud            float64            `bson:"latitud,omitempty"`
	Longitud           float64            `bson:"longitud,omitempty"`
	Imagenes           []string           `bson:"imagenes"`
	UsuarioID          string             `bson:"usuario_id"`
	FechaPublicacion   time.Time          `bson:"fecha_publicacion"`
	Estado             string             `bson:"estado"`
}

func toListingDoc(l *domain.Listing) (listingDoc, error) {
	doc := listingDoc{
		Titulo:             l.Titulo,
		Descripcion:        l.Descripcion,
		Direccion:          l.Direccion,
		Ciudad:             l.Ciudad,
		Precio:             l.Precio,
		Tipo:               string(l.Tipo),
		Gestion:            string(l.Gestion),
		Contacto:           l.Contacto,
		Habitaciones:       l.Habitaciones,
		Superficie:         l.Superficie,
		PermitenMascotas:   l.PermitenMascotas,
		PermitenNinos:      l.PermitenNinos,
		ServiciosIncluidos: l.ServiciosIncluidos,
		Amoblado:           l.Amoblado,
		FechaIngreso:       l.FechaIngreso,
		Latitud:            l.Latitud,
		Longitud:           l.Longitud,
		Imagenes:           l.Imagenes,
		UsuarioID:          l.OwnerID,
		FechaPublicacion:   l.FechaPublicacion,
		Estado:             string(l.Estado),
	}
	if l.ID != "" {
		oid, err := primitive.ObjectIDFromHex(l.ID)
		if err != nil {
			return listingDoc{}, domain.ErrListingNotFound
		}
		doc.ID = oid
	}
	return doc, nil
}

func (d listingDoc) toDomain() *domain.Listing {
	return &domain.Listing{
		ID:                 d.ID.Hex(),
		Titulo:             d.Titulo,
		Descripcion:        d.Descripcion,
		Direccion:          d.Direccion,
		Ciudad:             d.Ciudad,
		Precio:             d.Precio,
		Tipo:               domain.PropertyType(d.Tipo),
		Gestion:            domain.Management(d.Gestion),
		Contacto:           d.Contacto,
		Habitaciones:       d.Habitaciones,
		Superficie:         d.Superficie,
		PermitenMascotas:   d.PermitenMascotas,
		PermitenNinos:      d.PermitenNinos,
		ServiciosIncluidos: d.ServiciosIncluidos,
		Amoblado:           d.Amoblado,
		FechaIngreso:       d.FechaIngreso,
		Latitud:            d.Latitud,
		Longitud:           d.Longitud,
		Imagenes:           d.Imagenes,
		OwnerID:            d.UsuarioID,
		FechaPublicacion:   d.FechaPublicacion,
		Estado:             domain.ListingStatus(d.Estado),
	}
}

// Create inserts a new listing document and returns it with its id set.
func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toListingDoc(l)
	if err != nil {
		return nil, err
	}
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrListingNotFound
	}

	var doc listingDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Search runs the conjunctive filter query, newest publications first.
func (r *ListingRepository) Search(ctx context.Context, filter ports.SearchFilter) ([]*domain.Listing, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := buildSearchQuery(filter)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "fecha_publicacion", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []*domain.Listing
	for cur.Next(ctx) {
		var doc listingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, err
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func buildSearchQuery(filter ports.SearchFilter) bson.M {
	query := bson.M{}
	if filter.Tipo != "" {
		query["tipo"] = filter.Tipo
	}
	if filter.Gestion != "" {
		query["gestion"] = filter.Gestion
	}
	if filter.Estado != "" {
		query["estado"] = filter.Estado
	}
	if filter.OwnerID != "" {
		query["usuario_id"] = filter.OwnerID
	}
	if filter.Ciudad != "" {
		query["ciudad"] = bson.M{"$regex": regexp.QuoteMeta(filter.Ciudad), "$options": "i"}
	}
	if filter.Titulo != "" {
		query["titulo"] = bson.M{"$regex": regexp.QuoteMeta(filter.Titulo), "$options": "i"}
	}
	if filter.PrecioMin != nil || filter.PrecioMax != nil {
		precio := bson.M{}
		if filter.PrecioMin != nil {
			precio["$gte"] = *filter.PrecioMin
		}
		if filter.PrecioMax != nil {
			precio["$lte"] = *filter.PrecioMax
		}
		query["precio"] = precio
	}
	return query
}

func (r *ListingRepository) Update(ctx context.Context, l *domain.Listing) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toListingDoc(l)
	if err != nil {
		return err
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrListingNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the search path relies on.
func (r *ListingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "fecha_publicacion", Value: -1}}},
		{Keys: bson.D{{Key: "usuario_id", Value: 1}}},
		{Keys: bson.D{{Key: "tipo", Value: 1}, {Key: "precio", Value: 1}}},
		{Keys: bson.D{{Key: "estado", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
