package main

import (
	"context"
	"log"
	"net/http"

	"shopwithhassan/internal/config"
	"shopwithhassan/internal/logger"
	"shopwithhassan/internal/middleware"
	"shopwithhassan/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Load config and connect to the database (degraded mode if unset)
	cfg := config.Load()
	st := config.InitStore(context.Background(), cfg)

	// Setup Gin router
	r := routes.SetupRouter(st)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :" + cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
