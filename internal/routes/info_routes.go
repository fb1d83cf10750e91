package routes

import (
	"github.com/gin-gonic/gin"

	"shopwithhassan/internal/controllers"
)

func InfoRoutes(r *gin.Engine, ctl *controllers.InfoController) {
	r.GET("/", ctl.Root)
	r.GET("/test", ctl.TestDatabase)
}
