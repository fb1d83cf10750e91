package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"shopwithhassan/internal/controllers"
)

// SetupRouter assembles the gin engine with the controllers bound to
// the given persistence gateway.
func SetupRouter(s controllers.Gateway) *gin.Engine {
	r := gin.New()

	// Request logging middleware
	r.Use(ginlogger.SetLogger())

	// Recovery middleware
	r.Use(gin.Recovery())

	InfoRoutes(r, controllers.NewInfoController(s))
	CarRoutes(r, controllers.NewCarController(s))
	RequestRoutes(r, controllers.NewRequestController(s))

	return r
}
