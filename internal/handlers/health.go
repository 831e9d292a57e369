package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"charity-events-backend/internal/middleware"
)

// RegisterProbeRoutes registers the database connectivity probe.
//
// GET /api/test-db
// Runs one COUNT over events so the response doubles as a sanity check
// that the schema is in place.
func RegisterProbeRoutes(r gin.IRoutes, st EventStore) {
	r.GET("/test-db", func(c *gin.Context) {
		total, err := st.CountEvents(c.Request.Context())
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"request_id": middleware.RequestID(c),
				"error":      err,
			}).Error("db probe failed")
			c.JSON(http.StatusInternalServerError, gin.H{"connected": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"connected": true, "totalEvents": total})
	})
}
