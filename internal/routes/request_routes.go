package routes

import (
	"github.com/gin-gonic/gin"

	"shopwithhassan/internal/controllers"
)

func RequestRoutes(r *gin.Engine, ctl *controllers.RequestController) {
	requests := r.Group("/api/requests")
	{
		requests.POST("", ctl.CreateRequest)
		requests.GET("", ctl.ListRequests)
	}
}
