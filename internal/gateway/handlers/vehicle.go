package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotelops-dashboard/internal/alerts"
	"hotelops-dashboard/internal/listing"
	"hotelops-dashboard/internal/models"
	"hotelops-dashboard/internal/validation"
)

type VehicleHTTPHandler struct {
	base
	now func() time.Time
}

func NewVehicleHTTPHandler(deps Deps) *VehicleHTTPHandler {
	return &VehicleHTTPHandler{base: base{deps}, now: time.Now}
}

type ExpiringVehiclesQuery struct {
	Days int `form:"days,default=30" binding:"min=0,max=365"`
}

func (h *VehicleHTTPHandler) ListVehicles(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	ctx, cancel := h.callContext(c, listTimeout)
	defer cancel()

	vehicles, err := h.API.ListVehicles(ctx)
	if err != nil {
		h.handleBackendError(c, err, "Failed to list vehicles")
		return
	}

	vehicles = listing.Filter(vehicles, func(v models.Vehicle) bool {
		return listing.Equal(query.Status, v.Status) &&
			listing.Matches(query.Search, v.VehicleNumber, v.Model, v.Type)
	})
	page, meta := listing.Paginate(vehicles, query.Page, query.PageSize)

	c.JSON(http.StatusOK, successWithMetaResponse("Vehicles retrieved successfully", page, meta))
}

// ExpiringDocuments lists insurance and registration dates that lapse within
// the requested number of days, including ones already expired.
func (h *VehicleHTTPHandler) ExpiringDocuments(c *gin.Context) {
	var query ExpiringVehiclesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	ctx, cancel := h.callContext(c, listTimeout)
	defer cancel()

	vehicles, err := h.API.ListVehicles(ctx)
	if err != nil {
		h.handleBackendError(c, err, "Failed to list vehicles")
		return
	}

	window := time.Duration(query.Days) * 24 * time.Hour
	c.JSON(http.StatusOK, successResponse("Expiring vehicle documents retrieved successfully",
		alerts.Expiring(vehicles, h.now(), window)))
}

func (h *VehicleHTTPHandler) CreateVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if vehicle.Status == "" {
		vehicle.Status = models.VehicleAvailable
	}
	if v := validation.Vehicle(vehicle); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	created, err := h.API.CreateVehicle(ctx, vehicle)
	if err != nil {
		h.handleBackendError(c, err, "Failed to create vehicle")
		return
	}

	h.announce(c, "vehicles", "created", created.ID, created)
	c.JSON(http.StatusCreated, successResponse("Vehicle created successfully", created))
}

func (h *VehicleHTTPHandler) UpdateVehicle(c *gin.Context) {
	id := c.Param("id")
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if v := validation.Vehicle(vehicle); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	updated, err := h.API.UpdateVehicle(ctx, id, vehicle)
	if err != nil {
		h.handleBackendError(c, err, "Failed to update vehicle")
		return
	}

	h.announce(c, "vehicles", "updated", id, updated)
	c.JSON(http.StatusOK, successResponse("Vehicle updated successfully", updated))
}

func (h *VehicleHTTPHandler) DeleteVehicle(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	if err := h.API.DeleteVehicle(ctx, id); err != nil {
		h.handleBackendError(c, err, "Failed to delete vehicle")
		return
	}

	h.announce(c, "vehicles", "deleted", id, nil)
	c.JSON(http.StatusOK, successResponse("Vehicle deleted successfully", nil))
}
