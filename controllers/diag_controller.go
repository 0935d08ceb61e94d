package controllers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"vibehunt/database"
)

// DiagController serves the liveness root and the store connectivity check.
type DiagController struct {
	store database.Store
}

// NewDiagController creates a new DiagController instance.
func NewDiagController(store database.Store) *DiagController {
	return &DiagController{store: store}
}

// Root is the public liveness endpoint.
func (d *DiagController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "VibeHunt API running"})
}

// TestDatabase reports store connectivity. It never fails the request;
// unavailable pieces degrade to their defaults instead.
func (d *DiagController) TestDatabase(ctx *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
		"database_url_set":  os.Getenv("DATABASE_URL") != "",
		"database_name_set": os.Getenv("DATABASE_NAME") != "",
	}

	if d.store == nil {
		ctx.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "available"
	response["database_name"] = d.store.Name()

	reqCtx, cancel := contextWithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := d.store.Ping(reqCtx); err != nil {
		response["database"] = "error: " + truncate(err.Error(), 50)
		ctx.JSON(http.StatusOK, response)
		return
	}
	response["connection_status"] = "connected"

	if names, err := d.store.CollectionNames(reqCtx); err == nil {
		if len(names) > 10 {
			names = names[:10]
		}
		response["collections"] = names
		response["database"] = "connected and working"
	} else {
		response["database"] = "connected but error: " + truncate(err.Error(), 50)
	}

	ctx.JSON(http.StatusOK, response)
}

func contextWithTimeout(ctx *gin.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx.Request.Context(), d)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
