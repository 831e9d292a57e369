package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	"charity-events-backend/internal/config"
	"charity-events-backend/internal/handlers"
	"charity-events-backend/internal/middleware"
)

// maxBodyBytes caps JSON request bodies at 1 MB.
const maxBodyBytes = 1 << 20

// NewRouter wires the JSON API and the static browser client.
//
// /health and /api/* are handled here; any other GET falls through to
// the client directory, with index.html at /.
func NewRouter(cfg config.Config, st handlers.EventStore) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	// Permissive CORS: the catalog is public and unauthenticated.
	r.Use(cors.Default())
	r.Use(bodyLimit(maxBodyBytes))

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC().Format(time.RFC3339)})
	})

	api := r.Group("/api")
	handlers.RegisterProbeRoutes(api, st)
	handlers.RegisterEventRoutes(api, st)
	handlers.RegisterRegistrationRoutes(api, st)

	// Static client; only paths no API route claimed reach it.
	r.Use(static.Serve("/", static.LocalFile(cfg.ClientDir, true)))

	return r
}

// bodyLimit rejects oversized request bodies before handlers read them.
func bodyLimit(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
