package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hotelops-dashboard/internal/backend"
	"hotelops-dashboard/internal/billing"
	"hotelops-dashboard/internal/listing"
	"hotelops-dashboard/internal/models"
	"hotelops-dashboard/internal/validation"
)

type BillHTTPHandler struct {
	base
	now func() time.Time
}

func NewBillHTTPHandler(deps Deps) *BillHTTPHandler {
	return &BillHTTPHandler{base: base{deps}, now: time.Now}
}

type ListBillsQuery struct {
	Page          int    `form:"page,default=1" binding:"min=1"`
	PageSize      int    `form:"page_size,default=0" binding:"min=0,max=500"`
	Search        string `form:"search"`
	PaymentStatus string `form:"payment_status"`
	PaymentMethod string `form:"payment_method"`
}

type BillPreviewRequest struct {
	Subtotal     decimal.Decimal      `json:"subtotal"`
	Discount     decimal.Decimal      `json:"discount"`
	SplitPayment *models.SplitPayment `json:"splitPayment,omitempty"`
}

type PaymentRequest struct {
	PaymentMethod string               `json:"paymentMethod" binding:"required"`
	PaidAmount    decimal.Decimal      `json:"paidAmount"`
	SplitPayment  *models.SplitPayment `json:"splitPayment,omitempty"`
}

func (h *BillHTTPHandler) ListBills(c *gin.Context) {
	var query ListBillsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	ctx, cancel := h.callContext(c, listTimeout)
	defer cancel()

	bills, err := h.API.ListBills(ctx)
	if err != nil {
		h.handleBackendError(c, err, "Failed to list bills")
		return
	}

	bills = listing.Filter(bills, func(b models.Bill) bool {
		return listing.Equal(query.PaymentStatus, b.PaymentStatus) &&
			listing.Equal(query.PaymentMethod, b.PaymentMethod) &&
			listing.Matches(query.Search, b.BillNumber, b.OrderID, b.TableNo)
	})
	page, meta := listing.Paginate(bills, query.Page, query.PageSize)

	c.JSON(http.StatusOK, successWithMetaResponse("Bills retrieved successfully", page, meta))
}

func (h *BillHTTPHandler) GetBill(c *gin.Context) {
	ctx, cancel := h.callContext(c, readTimeout)
	defer cancel()

	bill, err := h.API.GetBill(ctx, c.Param("id"))
	if err != nil {
		h.handleBackendError(c, err, "Failed to get bill")
		return
	}
	c.JSON(http.StatusOK, successResponse("Bill retrieved successfully", bill))
}

// PreviewBill recomputes tax and total for the bill form as it is edited.
func (h *BillHTTPHandler) PreviewBill(c *gin.Context) {
	var req BillPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}

	v := validation.Violations{}
	validation.NonNegativeDecimal("subtotal", req.Subtotal, v)
	validation.NonNegativeDecimal("discount", req.Discount, v)
	if !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	preview := gin.H{"totals": billing.ComputeTotals(req.Subtotal, req.Discount)}
	if req.SplitPayment != nil {
		preview["splitTotal"] = billing.SplitTotal(*req.SplitPayment)
	}
	c.JSON(http.StatusOK, successResponse("Bill preview calculated", preview))
}

func (h *BillHTTPHandler) CreateBill(c *gin.Context) {
	var bill models.Bill
	if err := c.ShouldBindJSON(&bill); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}

	totals := billing.ComputeTotals(bill.Subtotal, bill.Discount)
	bill.Tax = totals.Tax
	bill.TotalAmount = totals.TotalAmount
	if bill.BillNumber == "" {
		bill.BillNumber = h.billNumber()
	}

	if v := validation.Bill(bill); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}
	paying := bill.PaidAmount.IsPositive() || bill.SplitPayment != nil
	if paying && bill.PaymentMethod == "" {
		c.JSON(http.StatusBadRequest, validationErrorResponse(validation.Single("paymentMethod", validation.CodeRequired)))
		return
	}
	if paying {
		if v := validation.Payment(bill.PaymentMethod, bill.PaidAmount, bill.SplitPayment); !v.Empty() {
			c.JSON(http.StatusBadRequest, validationErrorResponse(v))
			return
		}
		billing.ApplyPayment(&bill, bill.PaymentMethod, bill.PaidAmount, bill.SplitPayment)
	} else {
		bill.PaidAmount = decimal.Zero
		bill.DueAmount = bill.TotalAmount
		bill.PaymentStatus = models.PaymentPending
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	created, err := h.API.CreateBill(ctx, bill)
	if err != nil {
		h.handleBackendError(c, err, "Failed to create bill")
		return
	}

	h.announce(c, "bills", "created", created.ID, created)
	c.JSON(http.StatusCreated, successResponse("Bill created successfully", created))
}

// RecordPayment sets the amount paid so far on a bill. The paid amount is a
// running total, not an increment.
func (h *BillHTTPHandler) RecordPayment(c *gin.Context) {
	id := c.Param("id")
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if v := validation.Payment(req.PaymentMethod, req.PaidAmount, req.SplitPayment); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	bill, err := h.API.GetBill(ctx, id)
	if err != nil {
		h.handleBackendError(c, err, "Failed to get bill")
		return
	}
	billing.ApplyPayment(&bill, req.PaymentMethod, req.PaidAmount, req.SplitPayment)

	updated, err := h.API.UpdateBillPayment(ctx, id, backend.PaymentUpdate{
		PaidAmount:    bill.PaidAmount,
		PaymentMethod: bill.PaymentMethod,
		PaymentStatus: bill.PaymentStatus,
		DueAmount:     bill.DueAmount,
		SplitPayment:  bill.SplitPayment,
	})
	if err != nil {
		h.handleBackendError(c, err, "Failed to record payment")
		return
	}

	h.announce(c, "bills", "payment_recorded", id, gin.H{
		"paymentStatus": bill.PaymentStatus,
		"paidAmount":    bill.PaidAmount,
		"dueAmount":     bill.DueAmount,
	})
	c.JSON(http.StatusOK, successResponse("Payment recorded successfully", updated))
}

func (h *BillHTTPHandler) billNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("BILL-%s-%s", h.now().Format("20060102"), suffix)
}
