package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"shopwithhassan/internal/models"
	"shopwithhassan/internal/store"
)

const (
	defaultRequestLimit = 50
	maxRequestLimit     = 100
)

type RequestController struct {
	store Gateway
}

func NewRequestController(s Gateway) *RequestController {
	return &RequestController{store: s}
}

// CreateRequest validates a customer lead and inserts it into the
// request collection. Omitted status defaults to "new".
func (ctl *RequestController) CreateRequest(c *gin.Context) {
	var req models.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err)
		return
	}

	if !ctl.store.Available() {
		abortNotConfigured(c)
		return
	}

	req.ApplyDefaults()

	id, err := ctl.store.CreateDocument(c.Request.Context(), store.RequestCollection, &req)
	if err != nil {
		logrus.WithError(err).Error("could not insert request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": "received"})
}

// ListRequests returns leads in backend order, honoring an optional
// limit query param. Absent, zero or unparseable limits fall back to
// the default; the cap stops a caller from requesting the whole
// collection at once.
func (ctl *RequestController) ListRequests(c *gin.Context) {
	if !ctl.store.Available() {
		abortNotConfigured(c)
		return
	}

	limit := int64(defaultRequestLimit)
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = int64(n)
		}
	}
	if limit > maxRequestLimit {
		limit = maxRequestLimit
	}

	docs, err := ctl.store.GetDocuments(c.Request.Context(), store.RequestCollection, bson.M{}, limit)
	if err != nil {
		logrus.WithError(err).Error("could not list requests")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list requests"})
		return
	}

	c.JSON(http.StatusOK, withPublicIDs(docs))
}
