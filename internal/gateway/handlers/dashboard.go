package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"hotelops-dashboard/internal/cache"
	"hotelops-dashboard/internal/listing"
	"hotelops-dashboard/internal/models"
)

type DashboardHTTPHandler struct {
	base
	now func() time.Time
}

func NewDashboardHTTPHandler(deps Deps) *DashboardHTTPHandler {
	return &DashboardHTTPHandler{base: base{deps}, now: time.Now}
}

type Summary struct {
	Orders struct {
		Total    int            `json:"total"`
		ByStatus map[string]int `json:"byStatus"`
	} `json:"orders"`
	Tables struct {
		Total    int            `json:"total"`
		ByStatus map[string]int `json:"byStatus"`
	} `json:"tables"`
	Bills struct {
		Total           int             `json:"total"`
		ByPaymentStatus map[string]int  `json:"byPaymentStatus"`
		Revenue         decimal.Decimal `json:"revenue"`
		Outstanding     decimal.Decimal `json:"outstanding"`
	} `json:"bills"`
	Reservations struct {
		CheckedIn     int `json:"checkedIn"`
		ArrivingToday int `json:"arrivingToday"`
	} `json:"reservations"`
	Housekeeping struct {
		Open int `json:"open"`
	} `json:"housekeeping"`
}

// Summary loads the lists behind the overview screen concurrently and
// reduces them to counts. Any failing list fails the whole summary.
func (h *DashboardHTTPHandler) Summary(c *gin.Context) {
	ctx, cancel := h.callContext(c, listTimeout)
	defer cancel()

	var (
		orders       []models.Order
		tables       []models.Table
		bills        []models.Bill
		reservations []models.Reservation
		tasks        []models.HousekeepingTask
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = h.API.ListOrders(gctx)
		return err
	})
	g.Go(func() (err error) {
		tables, err = cache.Fetch(gctx, h.Cache, cache.TablesKey, cache.TTLShort, h.API.ListTables)
		return err
	})
	g.Go(func() (err error) {
		bills, err = h.API.ListBills(gctx)
		return err
	})
	g.Go(func() (err error) {
		reservations, err = h.API.ListReservations(gctx)
		return err
	})
	g.Go(func() (err error) {
		tasks, err = h.API.ListHousekeepingTasks(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.handleBackendError(c, err, "Failed to load dashboard summary")
		return
	}

	var s Summary
	s.Orders.Total = len(orders)
	s.Orders.ByStatus = listing.CountBy(orders, func(o models.Order) string { return o.Status })
	s.Tables.Total = len(tables)
	s.Tables.ByStatus = listing.CountBy(tables, func(t models.Table) string { return t.Status })
	s.Bills.Total = len(bills)
	s.Bills.ByPaymentStatus = listing.CountBy(bills, func(b models.Bill) string { return b.PaymentStatus })
	s.Bills.Revenue = decimal.Zero
	s.Bills.Outstanding = decimal.Zero
	for _, b := range bills {
		s.Bills.Revenue = s.Bills.Revenue.Add(decimal.Min(b.PaidAmount, b.TotalAmount))
		s.Bills.Outstanding = s.Bills.Outstanding.Add(b.DueAmount)
	}

	today := h.now().UTC().Format(models.DateLayout)
	for _, r := range reservations {
		switch {
		case r.Status == models.ReservationCheckedIn:
			s.Reservations.CheckedIn++
		case r.Status == models.ReservationBooked && sameDay(today, r.CheckInDate):
			s.Reservations.ArrivingToday++
		}
	}
	for _, t := range tasks {
		if t.Open() {
			s.Housekeeping.Open++
		}
	}

	c.JSON(http.StatusOK, successResponse("Dashboard summary retrieved successfully", s))
}
