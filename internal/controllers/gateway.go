package controllers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Gateway is the slice of the persistence layer the controllers depend
// on. *store.Store satisfies it; tests substitute an in-memory fake.
type Gateway interface {
	Available() bool
	CreateDocument(ctx context.Context, collection string, record interface{}) (string, error)
	GetDocuments(ctx context.Context, collection string, filter interface{}, limit int64) ([]bson.M, error)
	CollectionNames(ctx context.Context) ([]string, error)
}
