package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"charity-events-backend/internal/apperr"
	"charity-events-backend/internal/models"
)

// RegisterRegistrationRoutes registers the attendee sign-up endpoint.
//
// POST /api/events/:id/register
// Registrations are insert-only; a registration against a missing
// event surfaces as an internal error from the store's foreign key.
func RegisterRegistrationRoutes(r gin.IRoutes, st EventStore) {
	r.POST("/events/:id/register", func(c *gin.Context) {
		id, err := eventID(c)
		if err != nil {
			writeError(c, err)
			return
		}

		var req models.RegistrationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, apperr.Wrap(apperr.Validation, "invalid JSON payload", err))
			return
		}
		if req.FullName == "" || req.Email == "" {
			writeError(c, apperr.New(apperr.Validation, "full_name and email are required"))
			return
		}

		if err := st.AddRegistration(c.Request.Context(), id, req); err != nil {
			writeError(c, apperr.Wrap(apperr.Internal, "Registration failed", err))
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
}
