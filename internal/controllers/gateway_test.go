package controllers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopwithhassan/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeGateway keeps documents in memory, mimicking the shapes the mongo
// driver returns (bson.M with a primitive.ObjectID under "_id").
type fakeGateway struct {
	available bool
	docs      map[string][]bson.M
	names     []string
	insertErr error
	findErr   error
	namesErr  error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{available: true, docs: map[string][]bson.M{}}
}

func (f *fakeGateway) Available() bool { return f.available }

func (f *fakeGateway) CreateDocument(_ context.Context, collection string, record interface{}) (string, error) {
	if !f.available {
		return "", store.ErrNotConfigured
	}
	if f.insertErr != nil {
		return "", f.insertErr
	}

	raw, err := bson.Marshal(record)
	if err != nil {
		return "", err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return "", err
	}

	oid := primitive.NewObjectID()
	doc["_id"] = oid
	f.docs[collection] = append(f.docs[collection], doc)
	return oid.Hex(), nil
}

func (f *fakeGateway) GetDocuments(_ context.Context, collection string, _ interface{}, limit int64) ([]bson.M, error) {
	if !f.available {
		return nil, store.ErrNotConfigured
	}
	if f.findErr != nil {
		return nil, f.findErr
	}

	docs := f.docs[collection]
	if int64(len(docs)) > limit {
		docs = docs[:limit]
	}

	// Handlers rewrite _id in place, so hand out copies like a real
	// driver decode would.
	out := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		cp := bson.M{}
		for k, v := range d {
			cp[k] = v
		}
		out = append(out, cp)
	}
	return out, nil
}

func (f *fakeGateway) CollectionNames(_ context.Context) ([]string, error) {
	if !f.available {
		return nil, store.ErrNotConfigured
	}
	if f.namesErr != nil {
		return nil, f.namesErr
	}
	return f.names, nil
}

func performRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
