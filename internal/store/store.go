package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, one per resource kind.
const (
	CarCollection     = "car"
	RequestCollection = "request"
)

// ErrNotConfigured is returned by every data operation when no database
// connection was established at startup.
var ErrNotConfigured = errors.New("database not configured")

// Store is the persistence gateway. It owns the single database handle
// for the process; a nil handle means the store runs in degraded mode
// and every operation reports ErrNotConfigured.
type Store struct {
	db *mongo.Database
}

// New wraps an established database handle. Pass nil for a degraded
// store when no connection could be made.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Available reports whether the database connection was established.
func (s *Store) Available() bool {
	return s.db != nil
}

// CreateDocument inserts one record into the named collection and
// returns the database-assigned identifier as a hex string.
func (s *Store) CreateDocument(ctx context.Context, collection string, record interface{}) (string, error) {
	if s.db == nil {
		return "", ErrNotConfigured
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return oid.Hex(), nil
}

// GetDocuments fetches up to limit documents matching filter from the
// named collection, in backend-default order.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter interface{}, limit int64) ([]bson.M, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}

	cur, err := s.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode from %s: %w", collection, err)
	}
	return docs, nil
}

// CollectionNames lists the collections in the connected database.
// Used by the diagnostics endpoint only.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}
