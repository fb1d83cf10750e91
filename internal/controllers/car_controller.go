package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"shopwithhassan/internal/models"
	"shopwithhassan/internal/store"
)

const carListLimit = 100

type CarController struct {
	store Gateway
}

func NewCarController(s Gateway) *CarController {
	return &CarController{store: s}
}

// CreateCar validates a listing and inserts it into the car collection.
func (ctl *CarController) CreateCar(c *gin.Context) {
	var car models.Car
	if err := c.ShouldBindJSON(&car); err != nil {
		abortBindError(c, err)
		return
	}

	if !ctl.store.Available() {
		abortNotConfigured(c)
		return
	}

	car.ApplyDefaults()

	id, err := ctl.store.CreateDocument(c.Request.Context(), store.CarCollection, &car)
	if err != nil {
		logrus.WithError(err).Error("could not insert car")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create car"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": "ok"})
}

// ListCars returns up to 100 listings in backend order.
func (ctl *CarController) ListCars(c *gin.Context) {
	if !ctl.store.Available() {
		abortNotConfigured(c)
		return
	}

	docs, err := ctl.store.GetDocuments(c.Request.Context(), store.CarCollection, bson.M{}, carListLimit)
	if err != nil {
		logrus.WithError(err).Error("could not list cars")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cars"})
		return
	}

	c.JSON(http.StatusOK, withPublicIDs(docs))
}
