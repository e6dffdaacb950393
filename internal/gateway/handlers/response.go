package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotelops-dashboard/internal/backend"
	"hotelops-dashboard/internal/cache"
	"hotelops-dashboard/internal/events"
	"hotelops-dashboard/internal/gateway/middleware"
	"hotelops-dashboard/internal/session"
	"hotelops-dashboard/internal/validation"
)

const (
	readTimeout  = 5 * time.Second
	listTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
)

type APIResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    interface{}           `json:"data,omitempty"`
	Meta    interface{}           `json:"meta,omitempty"`
	Errors  validation.Violations `json:"errors,omitempty"`
}

func successResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func errorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}

func successWithMetaResponse(message string, data interface{}, meta interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	}
}

func validationErrorResponse(v validation.Violations) APIResponse {
	return APIResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  v,
	}
}

// Deps are the collaborators shared by every screen handler.
type Deps struct {
	API      *backend.Client
	Sessions session.Store
	Cache    *cache.ListCache
	Events   events.Publisher
}

type base struct {
	Deps
}

func (h *base) callContext(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}

// handleBackendError maps a failed backend call onto the gateway response.
// A 401 from the backend ends the dashboard session as well.
func (h *base) handleBackendError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, backend.ErrUnauthorized):
		if sid := c.GetString(middleware.SessionIDKey); sid != "" {
			if derr := h.Sessions.Delete(c.Request.Context(), sid); derr != nil {
				log.Printf("failed to drop session %s: %v", sid, derr)
			}
		}
		c.JSON(http.StatusUnauthorized, errorResponse("Session expired, please log in again"))
	case errors.Is(err, backend.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(messageOr(err, "Resource not found")))
	case errors.Is(err, backend.ErrBadRequest):
		c.JSON(http.StatusBadRequest, errorResponse(messageOr(err, fallback)))
	case errors.Is(err, context.DeadlineExceeded):
		log.Printf("backend timeout: %v", err)
		c.JSON(http.StatusGatewayTimeout, errorResponse("Backend did not respond in time"))
	default:
		log.Printf("backend error: %v", err)
		c.JSON(http.StatusBadGateway, errorResponse(fallback))
	}
}

func messageOr(err error, fallback string) string {
	if msg := backend.Message(err); msg != "" {
		return msg
	}
	return fallback
}

// announce drops cached lists affected by a mutation and publishes it.
func (h *base) announce(c *gin.Context, resource, action, id string, data interface{}, keys ...string) {
	ctx := c.Request.Context()
	h.Cache.Invalidate(ctx, keys...)

	err := h.Events.Publish(ctx, events.Event{
		Type:       resource + "." + action,
		Resource:   resource,
		ResourceID: id,
		Actor:      c.GetString(middleware.UsernameKey),
		Timestamp:  time.Now(),
		Data:       data,
		Stale:      keys,
	})
	if err != nil {
		log.Printf("failed to publish %s.%s: %v", resource, action, err)
	}
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListQuery struct {
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=0" binding:"min=0,max=500"`
	Search   string `form:"search"`
	Status   string `form:"status"`
}
