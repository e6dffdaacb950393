package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops-dashboard/internal/backend"
	"hotelops-dashboard/internal/listing"
	"hotelops-dashboard/internal/models"
	"hotelops-dashboard/internal/validation"
)

// BookingHTTPHandler serves restaurant table bookings and hotel room
// reservations.
type BookingHTTPHandler struct {
	base
}

func NewBookingHTTPHandler(deps Deps) *BookingHTTPHandler {
	return &BookingHTTPHandler{base: base{deps}}
}

type ListBookingsQuery struct {
	ListQuery
	Date string `form:"date"`
}

type AvailableRoomsQuery struct {
	CheckIn  string `form:"checkInDate"`
	CheckOut string `form:"checkOutDate"`
	RoomType string `form:"roomType"`
}

// --- Table Bookings ---

func (h *BookingHTTPHandler) ListTableBookings(c *gin.Context) {
	var query ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	ctx, cancel := h.callContext(c, listTimeout)
	defer cancel()

	bookings, err := h.API.ListTableBookings(ctx)
	if err != nil {
		h.handleBackendError(c, err, "Failed to list bookings")
		return
	}

	bookings = listing.Filter(bookings, func(b models.TableBooking) bool {
		return listing.Equal(query.Status, b.Status) &&
			sameDay(query.Date, b.Date) &&
			listing.Matches(query.Search, b.GuestName, b.Phone, b.Email, b.TableNo)
	})
	page, meta := listing.Paginate(bookings, query.Page, query.PageSize)

	c.JSON(http.StatusOK, successWithMetaResponse("Bookings retrieved successfully", page, meta))
}

func (h *BookingHTTPHandler) CreateTableBooking(c *gin.Context) {
	var booking models.TableBooking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if booking.Status == "" {
		booking.Status = models.BookingPending
	}
	if v := validation.TableBooking(booking); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	created, err := h.API.CreateTableBooking(ctx, booking)
	if err != nil {
		h.handleBackendError(c, err, "Failed to create booking")
		return
	}

	h.announce(c, "bookings", "created", created.ID, created)
	c.JSON(http.StatusCreated, successResponse("Booking created successfully", created))
}

func (h *BookingHTTPHandler) UpdateTableBooking(c *gin.Context) {
	id := c.Param("id")
	var booking models.TableBooking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if v := validation.TableBooking(booking); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	updated, err := h.API.UpdateTableBooking(ctx, id, booking)
	if err != nil {
		h.handleBackendError(c, err, "Failed to update booking")
		return
	}

	h.announce(c, "bookings", "updated", id, updated)
	c.JSON(http.StatusOK, successResponse("Booking updated successfully", updated))
}

func (h *BookingHTTPHandler) UpdateTableBookingStatus(c *gin.Context) {
	id := c.Param("id")
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if v := validation.Status(req.Status, models.IsBookingStatus); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	updated, err := h.API.UpdateTableBookingStatus(ctx, id, req.Status)
	if err != nil {
		h.handleBackendError(c, err, "Failed to update booking status")
		return
	}

	h.announce(c, "bookings", "status_changed", id, gin.H{"status": req.Status})
	c.JSON(http.StatusOK, successResponse("Booking status updated successfully", updated))
}

// --- Room Reservations ---

func (h *BookingHTTPHandler) ListReservations(c *gin.Context) {
	var query ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	ctx, cancel := h.callContext(c, listTimeout)
	defer cancel()

	reservations, err := h.API.ListReservations(ctx)
	if err != nil {
		h.handleBackendError(c, err, "Failed to list reservations")
		return
	}

	reservations = listing.Filter(reservations, func(r models.Reservation) bool {
		return listing.Equal(query.Status, r.Status) &&
			sameDay(query.Date, r.CheckInDate) &&
			listing.Matches(query.Search, r.GuestName, r.Phone, r.GRCNo, r.RoomNumber)
	})
	page, meta := listing.Paginate(reservations, query.Page, query.PageSize)

	c.JSON(http.StatusOK, successWithMetaResponse("Reservations retrieved successfully", page, meta))
}

// CheckedInReservations lists the guests an in-house order can be charged to.
func (h *BookingHTTPHandler) CheckedInReservations(c *gin.Context) {
	ctx, cancel := h.callContext(c, listTimeout)
	defer cancel()

	reservations, err := h.API.ListReservations(ctx)
	if err != nil {
		h.handleBackendError(c, err, "Failed to list reservations")
		return
	}

	inHouse := listing.Filter(reservations, func(r models.Reservation) bool {
		return r.Status == models.ReservationCheckedIn
	})
	c.JSON(http.StatusOK, successResponse("Checked-in reservations retrieved successfully", inHouse))
}

func (h *BookingHTTPHandler) CreateReservation(c *gin.Context) {
	var reservation models.Reservation
	if err := c.ShouldBindJSON(&reservation); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if reservation.Status == "" {
		reservation.Status = models.ReservationBooked
	}
	if v := validation.Reservation(reservation); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	if reservation.GRCNo == "" {
		grc, err := h.API.NextGRCNo(ctx)
		if err != nil {
			h.handleBackendError(c, err, "Failed to allocate GRC number")
			return
		}
		reservation.GRCNo = grc
	}

	created, err := h.API.CreateReservation(ctx, reservation)
	if err != nil {
		h.handleBackendError(c, err, "Failed to create reservation")
		return
	}

	h.announce(c, "reservations", "created", created.ID, created)
	c.JSON(http.StatusCreated, successResponse("Reservation created successfully", created))
}

func (h *BookingHTTPHandler) UpdateReservationStatus(c *gin.Context) {
	id := c.Param("id")
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if v := validation.Status(req.Status, models.IsReservationStatus); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	updated, err := h.API.UpdateReservationStatus(ctx, id, req.Status)
	if err != nil {
		h.handleBackendError(c, err, "Failed to update reservation status")
		return
	}

	h.announce(c, "reservations", "status_changed", id, gin.H{"status": req.Status})
	c.JSON(http.StatusOK, successResponse("Reservation status updated successfully", updated))
}

func (h *BookingHTTPHandler) NextGRCNo(c *gin.Context) {
	ctx, cancel := h.callContext(c, readTimeout)
	defer cancel()

	grc, err := h.API.NextGRCNo(ctx)
	if err != nil {
		h.handleBackendError(c, err, "Failed to allocate GRC number")
		return
	}
	c.JSON(http.StatusOK, successResponse("GRC number generated", gin.H{"grcNo": grc}))
}

func (h *BookingHTTPHandler) AvailableRooms(c *gin.Context) {
	var query AvailableRoomsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	v := validation.Violations{}
	validation.Date("checkInDate", query.CheckIn, v)
	validation.Date("checkOutDate", query.CheckOut, v)
	if query.CheckIn != "" && query.CheckOut != "" {
		validation.DateAfter("checkOutDate", query.CheckIn, query.CheckOut, v)
	}
	if !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, listTimeout)
	defer cancel()

	rooms, err := h.API.AvailableRooms(ctx, backend.RoomQuery{
		CheckIn:  query.CheckIn,
		CheckOut: query.CheckOut,
		RoomType: query.RoomType,
	})
	if err != nil {
		h.handleBackendError(c, err, "Failed to list available rooms")
		return
	}
	c.JSON(http.StatusOK, successResponse("Available rooms retrieved successfully", rooms))
}

// sameDay matches a YYYY-MM-DD filter against a date or timestamp field.
func sameDay(filter, value string) bool {
	if filter == "" {
		return true
	}
	want, err := models.ParseDate(filter)
	if err != nil {
		return false
	}
	got, err := models.ParseDate(value)
	if err != nil {
		return false
	}
	return want.Format(models.DateLayout) == got.UTC().Format(models.DateLayout)
}
