package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops-dashboard/internal/billing"
	"hotelops-dashboard/internal/cache"
	"hotelops-dashboard/internal/listing"
	"hotelops-dashboard/internal/models"
	"hotelops-dashboard/internal/validation"
)

type OrderHTTPHandler struct {
	base
}

func NewOrderHTTPHandler(deps Deps) *OrderHTTPHandler {
	return &OrderHTTPHandler{base: base{deps}}
}

type ListOrdersQuery struct {
	ListQuery
	TableNo   string `form:"table_no"`
	OrderType string `form:"order_type"`
}

func (h *OrderHTTPHandler) ListOrders(c *gin.Context) {
	var query ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	ctx, cancel := h.callContext(c, listTimeout)
	defer cancel()

	orders, err := h.API.ListOrders(ctx)
	if err != nil {
		h.handleBackendError(c, err, "Failed to list orders")
		return
	}

	orders = listing.Filter(orders, func(o models.Order) bool {
		orderType := o.OrderType
		if orderType == "" {
			orderType = models.OrderTypeRegular
		}
		return listing.Equal(query.Status, o.Status) &&
			listing.Equal(query.TableNo, o.TableNo) &&
			listing.Equal(query.OrderType, orderType) &&
			listing.Matches(query.Search, o.StaffName, o.PhoneNumber, o.TableNo, o.RoomNumber)
	})
	page, meta := listing.Paginate(orders, query.Page, query.PageSize)

	c.JSON(http.StatusOK, successWithMetaResponse("Orders retrieved successfully", page, meta))
}

func (h *OrderHTTPHandler) GetOrder(c *gin.Context) {
	ctx, cancel := h.callContext(c, readTimeout)
	defer cancel()

	order, err := h.API.GetOrder(ctx, c.Param("id"))
	if err != nil {
		h.handleBackendError(c, err, "Failed to get order")
		return
	}
	c.JSON(http.StatusOK, successResponse("Order retrieved successfully", order))
}

func (h *OrderHTTPHandler) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if order.Status == "" {
		order.Status = models.OrderPending
	}
	if order.OrderType == "" {
		order.OrderType = models.OrderTypeRegular
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	if !h.prepare(ctx, c, &order) {
		return
	}

	created, err := h.API.CreateOrder(ctx, order)
	if err != nil {
		h.handleBackendError(c, err, "Failed to create order")
		return
	}

	h.announce(c, "orders", "created", created.ID, created, cache.TablesKey)
	c.JSON(http.StatusCreated, successResponse("Order created successfully", created))
}

func (h *OrderHTTPHandler) UpdateOrder(c *gin.Context) {
	id := c.Param("id")
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	if !h.prepare(ctx, c, &order) {
		return
	}

	updated, err := h.API.UpdateOrder(ctx, id, order)
	if err != nil {
		h.handleBackendError(c, err, "Failed to update order")
		return
	}

	h.announce(c, "orders", "updated", id, updated, cache.TablesKey)
	c.JSON(http.StatusOK, successResponse("Order updated successfully", updated))
}

// prepare validates an order form, prices its lines against the menu and,
// for in-house orders, resolves the room of the checked-in reservation. It
// writes the error response itself and reports whether to continue.
func (h *OrderHTTPHandler) prepare(ctx context.Context, c *gin.Context, order *models.Order) bool {
	if v := validation.Order(*order); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return false
	}

	menu, err := cache.Fetch(ctx, h.Cache, cache.MenuItemsKey, cache.TTLShort, h.API.ListMenuItems)
	if err != nil {
		h.handleBackendError(c, err, "Failed to load menu")
		return false
	}
	byID := make(map[string]models.MenuItem, len(menu))
	for _, m := range menu {
		byID[m.ID] = m
	}

	amount, priced, err := billing.OrderAmount(order.Items, func(id string) (models.MenuItem, bool) {
		m, ok := byID[id]
		return m, ok
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, validationErrorResponse(validation.Single("items", validation.CodeUnknownItem)))
		return false
	}
	order.Amount = amount
	order.Items = priced

	if !order.InHouse() {
		return true
	}

	reservations, err := h.API.ListReservations(ctx)
	if err != nil {
		h.handleBackendError(c, err, "Failed to load reservations")
		return false
	}
	for _, r := range reservations {
		if r.ID == order.BookingID && r.Status == models.ReservationCheckedIn {
			order.RoomNumber = r.RoomNumber
			return true
		}
	}
	c.JSON(http.StatusBadRequest, validationErrorResponse(validation.Single("bookingId", validation.CodeNotCheckedIn)))
	return false
}

func (h *OrderHTTPHandler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if v := validation.Status(req.Status, models.IsOrderStatus); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	updated, err := h.API.UpdateOrderStatus(ctx, id, req.Status)
	if err != nil {
		h.handleBackendError(c, err, "Failed to update order status")
		return
	}

	h.announce(c, "orders", "status_changed", id, gin.H{"status": req.Status}, cache.TablesKey)
	c.JSON(http.StatusOK, successResponse("Order status updated successfully", updated))
}

// BillPreview shows what a bill for the order would total.
func (h *OrderHTTPHandler) BillPreview(c *gin.Context) {
	ctx, cancel := h.callContext(c, readTimeout)
	defer cancel()

	order, err := h.API.GetOrder(ctx, c.Param("id"))
	if err != nil {
		h.handleBackendError(c, err, "Failed to get order")
		return
	}

	c.JSON(http.StatusOK, successResponse("Bill preview calculated", gin.H{
		"orderId": order.ID,
		"tableNo": order.TableNo,
		"totals":  billing.ComputeTotals(order.Amount, order.Discount),
	}))
}
