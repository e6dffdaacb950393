package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops-dashboard/internal/database"
)

type AuditReader interface {
	Recent(ctx context.Context, username string, limit int) ([]database.AuditEntry, error)
}

type AuditHTTPHandler struct {
	reader AuditReader
}

func NewAuditHTTPHandler(reader AuditReader) *AuditHTTPHandler {
	return &AuditHTTPHandler{reader: reader}
}

type ListAuditQuery struct {
	Username string `form:"user"`
	Limit    int    `form:"limit,default=50" binding:"min=1,max=500"`
}

func (h *AuditHTTPHandler) ListEntries(c *gin.Context) {
	if h.reader == nil {
		c.JSON(http.StatusServiceUnavailable, errorResponse("Audit log is not configured"))
		return
	}

	var query ListAuditQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	entries, err := h.reader.Recent(c.Request.Context(), query.Username, query.Limit)
	if err != nil {
		log.Printf("audit query failed: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to load audit log"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Audit entries retrieved successfully", entries))
}
