package controllers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopwithhassan/internal/routes"
)

func TestRoot(t *testing.T) {
	gw := newFakeGateway()
	gw.available = false // root never needs the database
	r := routes.SetupRouter(gw)

	w := performRequest(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "shopwithhassan", resp["name"])
	assert.Equal(t, "Mombasa", resp["location"])
	assert.Equal(t, "Welcome to ShopWithHassan API", resp["message"])
}

func TestDiagnosticsWithoutConfiguration(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("DATABASE_NAME")

	gw := newFakeGateway()
	gw.available = false
	r := routes.SetupRouter(gw)

	w := performRequest(r, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "✅ Running", resp["backend"])
	assert.Equal(t, "Not Connected", resp["connection_status"])
	assert.Equal(t, "❌ Not Set", resp["database_url"])
	assert.Equal(t, "❌ Not Set", resp["database_name"])
	assert.Empty(t, resp["collections"])
}

func TestDiagnosticsConnected(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "shopwithhassan")

	gw := newFakeGateway()
	gw.names = []string{
		"car", "request", "c3", "c4", "c5", "c6", "c7", "c8", "c9", "c10", "c11", "c12",
	}
	r := routes.SetupRouter(gw)

	w := performRequest(r, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Database         string   `json:"database"`
		DatabaseURL      string   `json:"database_url"`
		DatabaseName     string   `json:"database_name"`
		ConnectionStatus string   `json:"connection_status"`
		Collections      []string `json:"collections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "✅ Connected & Working", resp.Database)
	assert.Equal(t, "Connected", resp.ConnectionStatus)
	assert.Equal(t, "✅ Set", resp.DatabaseURL)
	assert.Equal(t, "✅ Set", resp.DatabaseName)
	assert.Len(t, resp.Collections, 10)
	assert.Contains(t, resp.Collections, "car")
}

func TestDiagnosticsDegradesStorageErrors(t *testing.T) {
	gw := newFakeGateway()
	gw.namesErr = errors.New(strings.Repeat("x", 80))
	r := routes.SetupRouter(gw)

	w := performRequest(r, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	db, ok := resp["database"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(db, "⚠️  Connected but Error: "))
	assert.Equal(t, strings.Repeat("x", 50), strings.TrimPrefix(db, "⚠️  Connected but Error: "))
	assert.Equal(t, "Connected", resp["connection_status"])
}
