package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"charity-events-backend/internal/apperr"
	"charity-events-backend/internal/middleware"
)

// writeError is the single translation point from classified errors to
// wire responses. Clients get the short message; internal failures log
// their full detail server-side with the request id.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.Validation:
		status = http.StatusBadRequest
	case apperr.NotFound:
		status = http.StatusNotFound
	default:
		logrus.WithFields(logrus.Fields{
			"request_id": middleware.RequestID(c),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"error":      err,
		}).Error("request failed")
	}
	c.JSON(status, gin.H{"error": apperr.Message(err)})
}
