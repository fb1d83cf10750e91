package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shopwithhassan/internal/store"
)

const connectTimeout = 5 * time.Second

// Config holds the environment-derived settings for the service.
type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         string
}

// Load reads configuration from a .env file (if present) and the
// environment.
func Load() *Config {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		Port:         getEnv("PORT", "8000"),
	}
}

// InitStore attempts the MongoDB connection once at startup. Missing
// configuration or a failed connection yields a degraded store rather
// than an error; the API surfaces that condition per request.
func InitStore(ctx context.Context, cfg *Config) *store.Store {
	if cfg.DatabaseURL == "" || cfg.DatabaseName == "" {
		log.Println("DATABASE_URL or DATABASE_NAME not set – running without a database")
		return store.New(nil)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		log.Printf("failed to connect to database: %v", err)
		return store.New(nil)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("failed to ping database: %v", err)
		return store.New(nil)
	}

	return store.New(client.Database(cfg.DatabaseName))
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
