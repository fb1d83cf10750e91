package routes

import (
	"github.com/gin-gonic/gin"

	"shopwithhassan/internal/controllers"
)

func CarRoutes(r *gin.Engine, ctl *controllers.CarController) {
	cars := r.Group("/api/cars")
	{
		cars.POST("", ctl.CreateCar)
		cars.GET("", ctl.ListCars)
	}
}
