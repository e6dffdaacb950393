package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops-dashboard/internal/listing"
	"hotelops-dashboard/internal/models"
	"hotelops-dashboard/internal/validation"
)

type HousekeepingHTTPHandler struct {
	base
}

func NewHousekeepingHTTPHandler(deps Deps) *HousekeepingHTTPHandler {
	return &HousekeepingHTTPHandler{base: base{deps}}
}

type ListTasksQuery struct {
	ListQuery
	Priority   string `form:"priority"`
	AssignedTo string `form:"assigned_to"`
	OpenOnly   bool   `form:"open"`
}

type AssignTaskRequest struct {
	AssignedTo string `json:"assignedTo" binding:"required"`
}

func (h *HousekeepingHTTPHandler) ListTasks(c *gin.Context) {
	var query ListTasksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	ctx, cancel := h.callContext(c, listTimeout)
	defer cancel()

	tasks, err := h.API.ListHousekeepingTasks(ctx)
	if err != nil {
		h.handleBackendError(c, err, "Failed to list housekeeping tasks")
		return
	}

	tasks = listing.Filter(tasks, func(t models.HousekeepingTask) bool {
		if query.OpenOnly && !t.Open() {
			return false
		}
		return listing.Equal(query.Status, t.Status) &&
			listing.Equal(query.Priority, t.Priority) &&
			listing.Equal(query.AssignedTo, t.AssignedTo) &&
			listing.Matches(query.Search, t.RoomNumber, t.AssignedTo, t.Notes)
	})
	page, meta := listing.Paginate(tasks, query.Page, query.PageSize)

	c.JSON(http.StatusOK, successWithMetaResponse("Housekeeping tasks retrieved successfully", page, meta))
}

func (h *HousekeepingHTTPHandler) CreateTask(c *gin.Context) {
	var task models.HousekeepingTask
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if task.Status == "" {
		task.Status = models.TaskPending
	}
	if v := validation.HousekeepingTask(task); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	created, err := h.API.CreateHousekeepingTask(ctx, task)
	if err != nil {
		h.handleBackendError(c, err, "Failed to create housekeeping task")
		return
	}

	h.announce(c, "housekeeping", "created", created.ID, created)
	c.JSON(http.StatusCreated, successResponse("Housekeeping task created successfully", created))
}

func (h *HousekeepingHTTPHandler) UpdateTaskStatus(c *gin.Context) {
	id := c.Param("id")
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if v := validation.Status(req.Status, models.IsTaskStatus); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	updated, err := h.API.UpdateHousekeepingStatus(ctx, id, req.Status)
	if err != nil {
		h.handleBackendError(c, err, "Failed to update task status")
		return
	}

	h.announce(c, "housekeeping", "status_changed", id, gin.H{"status": req.Status})
	c.JSON(http.StatusOK, successResponse("Task status updated successfully", updated))
}

func (h *HousekeepingHTTPHandler) AssignTask(c *gin.Context) {
	id := c.Param("id")
	var req AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	updated, err := h.API.AssignHousekeepingTask(ctx, id, req.AssignedTo)
	if err != nil {
		h.handleBackendError(c, err, "Failed to assign task")
		return
	}

	h.announce(c, "housekeeping", "assigned", id, gin.H{"assignedTo": req.AssignedTo})
	c.JSON(http.StatusOK, successResponse("Task assigned successfully", updated))
}
