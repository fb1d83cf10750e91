package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// abortNotConfigured answers the fixed configuration error every
// data-touching endpoint uses when no database connection exists.
func abortNotConfigured(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not configured"})
}

// abortBindError turns a ShouldBindJSON failure into a response:
// 422 with one message per violated constraint, or 400 when the body
// was not parseable JSON at all.
func abortBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fieldErrorMessage(fe))
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation failed",
			"details": details,
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// withPublicIDs rewrites the native "_id" of each document to a public
// "id" string field.
func withPublicIDs(docs []bson.M) []bson.M {
	for _, d := range docs {
		raw, ok := d["_id"]
		if !ok {
			continue
		}
		if oid, isOID := raw.(primitive.ObjectID); isOID {
			d["id"] = oid.Hex()
		} else {
			d["id"] = fmt.Sprint(raw)
		}
		delete(d, "_id")
	}
	return docs
}
