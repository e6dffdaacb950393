package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops-dashboard/internal/cache"
	"hotelops-dashboard/internal/listing"
	"hotelops-dashboard/internal/models"
	"hotelops-dashboard/internal/validation"
)

type TableHTTPHandler struct {
	base
}

func NewTableHTTPHandler(deps Deps) *TableHTTPHandler {
	return &TableHTTPHandler{base: base{deps}}
}

type ListTablesQuery struct {
	ListQuery
	Location    string `form:"location"`
	MinCapacity int    `form:"min_capacity"`
}

func (h *TableHTTPHandler) ListTables(c *gin.Context) {
	var query ListTablesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	ctx, cancel := h.callContext(c, listTimeout)
	defer cancel()

	tables, err := cache.Fetch(ctx, h.Cache, cache.TablesKey, cache.TTLShort, h.API.ListTables)
	if err != nil {
		h.handleBackendError(c, err, "Failed to list tables")
		return
	}

	tables = listing.Filter(tables, func(t models.Table) bool {
		return t.Capacity >= query.MinCapacity &&
			listing.Equal(query.Status, t.Status) &&
			listing.Equal(query.Location, t.Location) &&
			listing.Matches(query.Search, t.TableNumber, t.Location)
	})
	page, meta := listing.Paginate(tables, query.Page, query.PageSize)

	c.JSON(http.StatusOK, successWithMetaResponse("Tables retrieved successfully", gin.H{
		"tables":   page,
		"byStatus": listing.CountBy(tables, func(t models.Table) string { return t.Status }),
	}, meta))
}

func (h *TableHTTPHandler) CreateTable(c *gin.Context) {
	var table models.Table
	if err := c.ShouldBindJSON(&table); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if table.Status == "" {
		table.Status = models.TableAvailable
	}
	if v := validation.Table(table); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	created, err := h.API.CreateTable(ctx, table)
	if err != nil {
		h.handleBackendError(c, err, "Failed to create table")
		return
	}

	h.announce(c, "tables", "created", created.ID, created, cache.TablesKey)
	c.JSON(http.StatusCreated, successResponse("Table created successfully", created))
}

func (h *TableHTTPHandler) UpdateTable(c *gin.Context) {
	id := c.Param("id")
	var table models.Table
	if err := c.ShouldBindJSON(&table); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if v := validation.Table(table); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	updated, err := h.API.UpdateTable(ctx, id, table)
	if err != nil {
		h.handleBackendError(c, err, "Failed to update table")
		return
	}

	h.announce(c, "tables", "updated", id, updated, cache.TablesKey)
	c.JSON(http.StatusOK, successResponse("Table updated successfully", updated))
}

func (h *TableHTTPHandler) UpdateTableStatus(c *gin.Context) {
	id := c.Param("id")
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if v := validation.Status(req.Status, models.IsTableStatus); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	updated, err := h.API.UpdateTableStatus(ctx, id, req.Status)
	if err != nil {
		h.handleBackendError(c, err, "Failed to update table status")
		return
	}

	h.announce(c, "tables", "status_changed", id, gin.H{"status": req.Status}, cache.TablesKey)
	c.JSON(http.StatusOK, successResponse("Table status updated successfully", updated))
}

func (h *TableHTTPHandler) DeleteTable(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	if err := h.API.DeleteTable(ctx, id); err != nil {
		h.handleBackendError(c, err, "Failed to delete table")
		return
	}

	h.announce(c, "tables", "deleted", id, nil, cache.TablesKey)
	c.JSON(http.StatusOK, successResponse("Table deleted successfully", nil))
}
