package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smcs-alumni/alumni-portal/internal/core/domain"
	"github.com/smcs-alumni/alumni-portal/internal/core/ports"
)

// ContentRepository is the generic MongoDB store behind all three content
// collections. Records keep their id as a hex string in the domain; this
// repository owns the ObjectID representation in `_id`.
type ContentRepository[T any, PT domain.ContentPtr[T]] struct {
	col *mongo.Collection
}

func NewContentRepository[T any, PT domain.ContentPtr[T]](db *mongo.Database, collection string) *ContentRepository[T, PT] {
	return &ContentRepository[T, PT]{col: db.Collection(collection)}
}

// contentDoc pairs the stored ObjectID with the record fields. The domain id
// field is excluded from bson, so there is no key collision on `_id`.
type contentDoc[T any] struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Record T                  `bson:",inline"`
}

// parseID rejects malformed ids before any query is issued.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

// Insert stores a new document and returns its assigned id.
func (r *ContentRepository[T, PT]) Insert(ctx context.Context, doc *T) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, contentDoc[T]{Record: *doc})
	if err != nil {
		return "", fmt.Errorf("insert: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByID retrieves a single document by its hex id.
func (r *ContentRepository[T, PT]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc contentDoc[T]
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find: %w", err)
	}

	rec := doc.Record
	PT(&rec).Meta().ID = doc.ID.Hex()
	return &rec, nil
}

// List returns documents matching the query's filter, order and limit.
func (r *ContentRepository[T, PT]) List(ctx context.Context, q ports.ListQuery) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if q.NotBefore != nil {
		filter["date"] = bson.M{"$gte": q.NotBefore.UTC()}
	}

	order := -1
	if q.Ascending {
		order = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: q.SortField, Value: order}})
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*T, 0)
	for cur.Next(ctx) {
		var doc contentDoc[T]
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("list decode: %w", err)
		}
		rec := doc.Record
		PT(&rec).Meta().ID = doc.ID.Hex()
		items = append(items, &rec)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list cursor: %w", err)
	}
	return items, nil
}

// Replace overwrites the document's fields. The replacement carries no `_id`,
// so Mongo preserves the existing one. Zero matches map to ErrNotFound.
func (r *ContentRepository[T, PT]) Replace(ctx context.Context, id string, doc *T) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, contentDoc[T]{Record: *doc})
	if err != nil {
		return fmt.Errorf("replace: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the document with the given id, reporting ErrNotFound when
// nothing was deleted.
func (r *ContentRepository[T, PT]) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates descending indexes for the given sort fields.
func (r *ContentRepository[T, PT]) EnsureIndexes(ctx context.Context, sortFields ...string) error {
	if len(sortFields) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := make([]mongo.IndexModel, 0, len(sortFields))
	for _, f := range sortFields {
		indexes = append(indexes, mongo.IndexModel{Keys: bson.D{{Key: f, Value: -1}}})
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
