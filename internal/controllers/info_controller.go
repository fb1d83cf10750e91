package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

type InfoController struct {
	store Gateway
}

func NewInfoController(s Gateway) *InfoController {
	return &InfoController{store: s}
}

// Root serves the static service identity payload.
func (ctl *InfoController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":     "shopwithhassan",
		"service":  []string{"car sales", "delivery"},
		"location": "Mombasa",
		"contact": gin.H{
			"phone": "+254748898310",
			"email": "hassannuur2018@gmail.com",
		},
		"message": "Welcome to ShopWithHassan API",
	})
}

// TestDatabase reports connection liveness and configuration presence.
// Never fails: storage errors are truncated into the payload.
func (ctl *InfoController) TestDatabase(c *gin.Context) {
	resp := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if ctl.store.Available() {
		resp["database"] = "✅ Available"
		resp["connection_status"] = "Connected"

		names, err := ctl.store.CollectionNames(c.Request.Context())
		if err != nil {
			resp["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if names == nil {
				names = []string{}
			}
			if len(names) > 10 {
				names = names[:10]
			}
			resp["collections"] = names
			resp["database"] = "✅ Connected & Working"
		}
	}

	if os.Getenv("DATABASE_URL") != "" {
		resp["database_url"] = "✅ Set"
	}
	if os.Getenv("DATABASE_NAME") != "" {
		resp["database_name"] = "✅ Set"
	}

	c.JSON(http.StatusOK, resp)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
