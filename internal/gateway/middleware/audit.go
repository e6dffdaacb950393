package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hotelops-dashboard/internal/database"
)

type AuditRecorder interface {
	Record(ctx context.Context, entry database.AuditEntry) error
}

// Audit records every mutating request after it completes. GET, HEAD and
// OPTIONS are not recorded. A nil recorder disables the middleware.
func Audit(recorder AuditRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if recorder == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		entry := database.AuditEntry{
			RequestID:  c.GetString(RequestIDKey),
			Username:   c.GetString(UsernameKey),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			Resource:   resourceOf(c.FullPath()),
			Status:     c.Writer.Status(),
			DurationMs: time.Since(start).Milliseconds(),
		}
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := recorder.Record(ctx, entry); err != nil {
			log.Printf("audit: record %s %s: %v", entry.Method, entry.Path, err)
		}
	}
}

// resourceOf turns a route pattern like /api/v1/orders/:id/status into "orders".
func resourceOf(route string) string {
	route = strings.TrimPrefix(route, "/api/v1/")
	if i := strings.IndexByte(route, '/'); i >= 0 {
		route = route[:i]
	}
	return route
}
