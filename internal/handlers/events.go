package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"charity-events-backend/internal/apperr"
	"charity-events-backend/internal/models"
)

// EventStore is the persistence surface the handlers depend on.
type EventStore interface {
	CountEvents(ctx context.Context) (int64, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id int64) (models.Event, error)
	CreateEvent(ctx context.Context, req models.EventUpsertRequest) (int64, error)
	UpdateEvent(ctx context.Context, id int64, req models.EventUpsertRequest) error
	DeleteEvent(ctx context.Context, id int64) error
	SetSuspended(ctx context.Context, id int64, suspended bool) error
	SearchEvents(ctx context.Context, q models.SearchQuery) ([]models.Event, error)
	AddRegistration(ctx context.Context, eventID int64, req models.RegistrationRequest) error
}

// RegisterEventRoutes registers the event catalog endpoints under /api.
func RegisterEventRoutes(r gin.IRoutes, st EventStore) {
	r.GET("/events", func(c *gin.Context) {
		events, err := st.ListEvents(c.Request.Context())
		if err != nil {
			writeError(c, apperr.Wrap(apperr.Internal, "Failed to fetch events", err))
			return
		}
		c.JSON(http.StatusOK, events)
	})

	r.GET("/events/:id", func(c *gin.Context) {
		id, err := eventID(c)
		if err != nil {
			writeError(c, err)
			return
		}
		ev, err := st.GetEvent(c.Request.Context(), id)
		if err != nil {
			if apperr.KindOf(err) == apperr.Internal {
				err = apperr.Wrap(apperr.Internal, "Failed to fetch event", err)
			}
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, ev)
	})

	r.POST("/events", func(c *gin.Context) {
		var req models.EventUpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, apperr.Wrap(apperr.Validation, "invalid JSON payload", err))
			return
		}
		if req.EventName == "" || req.EventDate == "" {
			writeError(c, apperr.New(apperr.Validation, "event_name and event_date are required"))
			return
		}
		normalizeOptional(&req)

		id, err := st.CreateEvent(c.Request.Context(), req)
		if err != nil {
			writeError(c, apperr.Wrap(apperr.Internal, "Failed to create event", err))
			return
		}
		c.JSON(http.StatusCreated, gin.H{"event_id": id})
	})

	r.PUT("/events/:id", func(c *gin.Context) {
		id, err := eventID(c)
		if err != nil {
			writeError(c, err)
			return
		}
		var req models.EventUpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, apperr.Wrap(apperr.Validation, "invalid JSON payload", err))
			return
		}
		normalizeOptional(&req)

		if err := st.UpdateEvent(c.Request.Context(), id, req); err != nil {
			if apperr.KindOf(err) == apperr.Internal {
				err = apperr.Wrap(apperr.Internal, "Failed to update event", err)
			}
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.DELETE("/events/:id", func(c *gin.Context) {
		id, err := eventID(c)
		if err != nil {
			writeError(c, err)
			return
		}
		if err := st.DeleteEvent(c.Request.Context(), id); err != nil {
			if apperr.KindOf(err) == apperr.Internal {
				err = apperr.Wrap(apperr.Internal, "Failed to delete event", err)
			}
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.PATCH("/events/:id/suspend", func(c *gin.Context) {
		id, err := eventID(c)
		if err != nil {
			writeError(c, err)
			return
		}
		var req models.SuspendRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, apperr.Wrap(apperr.Validation, "invalid JSON payload", err))
			return
		}
		if err := st.SetSuspended(c.Request.Context(), id, req.Suspended); err != nil {
			if apperr.KindOf(err) == apperr.Internal {
				err = apperr.Wrap(apperr.Internal, "Failed to update suspension", err)
			}
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "suspended": req.Suspended})
	})

	r.GET("/search", func(c *gin.Context) {
		q := models.SearchQuery{
			From:     c.Query("from"),
			To:       c.Query("to"),
			Location: c.Query("location"),
			Category: c.Query("category"),
			// Any non-empty value counts as truthy.
			IncludeSuspended: c.Query("include_suspended") != "",
		}
		events, err := st.SearchEvents(c.Request.Context(), q)
		if err != nil {
			writeError(c, apperr.Wrap(apperr.Internal, "Search failed", err))
			return
		}
		c.JSON(http.StatusOK, events)
	})
}

// eventID parses the :id path parameter.
func eventID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.Wrap(apperr.Validation, "invalid event id", err)
	}
	return id, nil
}

// normalizeOptional persists empty optional fields as absent (NULL).
func normalizeOptional(req *models.EventUpsertRequest) {
	if req.Location != nil && *req.Location == "" {
		req.Location = nil
	}
	if req.Description != nil && *req.Description == "" {
		req.Description = nil
	}
}
