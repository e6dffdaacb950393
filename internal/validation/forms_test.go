package validation

import (
	"testing"

	"github.com/shopspring/decimal"

	"hotelops-dashboard/internal/models"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validBill() models.Bill {
	return models.Bill{OrderID: "o1", TableNo: "T4", Subtotal: d("1000"), Discount: d("100"), Tax: d("180"), TotalAmount: d("1080")}
}

func TestBillAccepted(t *testing.T) {
	if v := Bill(validBill()); !v.Empty() {
		t.Fatalf("unexpected violations: %v", v)
	}
}

func TestBillRejected(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*models.Bill)
		field string
		code  string
	}{
		{"missing order", func(b *models.Bill) { b.OrderID = "" }, "orderId", CodeRequired},
		{"blank table", func(b *models.Bill) { b.TableNo = "  " }, "tableNo", CodeRequired},
		{"zero subtotal", func(b *models.Bill) { b.Subtotal = decimal.Zero }, "subtotal", CodePositive},
		{"negative subtotal", func(b *models.Bill) { b.Subtotal = d("-5") }, "subtotal", CodePositive},
		{"zero total", func(b *models.Bill) { b.TotalAmount = decimal.Zero }, "totalAmount", CodePositive},
		{"negative discount", func(b *models.Bill) { b.Discount = d("-1") }, "discount", CodeNonNegative},
		{"unknown method", func(b *models.Bill) { b.PaymentMethod = "cheque" }, "paymentMethod", CodeInvalidChoice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBill()
			tt.edit(&b)
			v := Bill(b)
			if v[tt.field] != tt.code {
				t.Fatalf("violations = %v, want %s=%s", v, tt.field, tt.code)
			}
		})
	}
}

func TestPayment(t *testing.T) {
	if v := Payment(models.MethodCash, d("100"), nil); !v.Empty() {
		t.Fatalf("cash payment: %v", v)
	}
	if v := Payment(models.MethodCard, decimal.Zero, nil); v["paidAmount"] != CodePositive {
		t.Fatalf("zero card payment: %v", v)
	}
	if v := Payment(models.MethodSplit, decimal.Zero, nil); v["splitPayment"] != CodeRequired {
		t.Fatalf("split without parts: %v", v)
	}
	split := &models.SplitPayment{Cash: d("300"), Card: d("200"), UPI: d("150")}
	if v := Payment(models.MethodSplit, decimal.Zero, split); !v.Empty() {
		t.Fatalf("split payment: %v", v)
	}
	if v := Payment(models.MethodSplit, decimal.Zero, &models.SplitPayment{Cash: d("-1"), Card: d("10")}); v["splitPayment.cash"] != CodeNonNegative {
		t.Fatalf("negative split part: %v", v)
	}
	if v := Payment("", d("1"), nil); v["paymentMethod"] != CodeRequired {
		t.Fatalf("missing method: %v", v)
	}
}

func TestOrder(t *testing.T) {
	order := models.Order{
		StaffName:   "Ravi",
		TableNo:     "T2",
		PhoneNumber: "+91 98765-43210",
		Items:       []models.OrderItem{{ItemID: "m1", Quantity: 2}},
	}
	if v := Order(order); !v.Empty() {
		t.Fatalf("valid order: %v", v)
	}

	order.Items = append(order.Items, models.OrderItem{ItemID: "m2", Quantity: 0})
	order.OrderType = models.OrderTypeInHouse
	order.PhoneNumber = "abc"
	v := Order(order)
	if v["items[1].quantity"] != CodePositive {
		t.Fatalf("expected quantity violation: %v", v)
	}
	if v["bookingId"] != CodeRequired {
		t.Fatalf("expected booking violation for in-house order: %v", v)
	}
	if v["phoneNumber"] != CodeInvalidPhone {
		t.Fatalf("expected phone violation: %v", v)
	}

	if v := Order(models.Order{StaffName: "A", TableNo: "1"}); v["items"] != CodeRequired {
		t.Fatalf("expected items violation: %v", v)
	}
}

func TestReservationDates(t *testing.T) {
	r := models.Reservation{GuestName: "Meera", Phone: "9876543210", CheckInDate: "2026-05-02", CheckOutDate: "2026-05-01", Guests: 2}
	if v := Reservation(r); v["checkOutDate"] != CodeMustBeAfter {
		t.Fatalf("expected date order violation: %v", v)
	}
	r.CheckOutDate = "tomorrow"
	if v := Reservation(r); v["checkOutDate"] != CodeInvalidDate {
		t.Fatalf("expected invalid date: %v", v)
	}
	r.CheckOutDate = "2026-05-04"
	if v := Reservation(r); !v.Empty() {
		t.Fatalf("valid reservation: %v", v)
	}
}

func TestMenuItemDiscountRange(t *testing.T) {
	m := models.MenuItem{Name: "Soup", Price: d("120"), Discount: d("101"), Category: models.CategoryRef{ID: "c1"}}
	if v := MenuItem(m); v["discount"] != CodeOutOfRange {
		t.Fatalf("expected discount range violation: %v", v)
	}
}

func TestStatusHasNoTransitionGraph(t *testing.T) {
	for _, from := range models.OrderStatuses {
		for _, to := range models.OrderStatuses {
			if v := Status(to, models.IsOrderStatus); !v.Empty() {
				t.Fatalf("%s -> %s rejected: %v", from, to, v)
			}
		}
	}
	if v := Status("teleported", models.IsTableStatus); v["status"] != CodeInvalidChoice {
		t.Fatalf("expected invalid choice: %v", v)
	}
}

func TestHousekeepingTask(t *testing.T) {
	v := HousekeepingTask(models.HousekeepingTask{RoomID: "r1", CleaningType: "spring", Priority: "high"})
	if v["cleaningType"] != CodeInvalidChoice {
		t.Fatalf("expected cleaning type violation: %v", v)
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"9876543210", true},
		{"+91 98765-43210", true},
		{"+1 (415) 555-0100", true},
		{"12345", false},
		{"98765abc10", false},
		{"", true},
	}

	for _, tt := range tests {
		v := Violations{}
		Phone("phone", tt.value, v)
		if got := v.Empty(); got != tt.ok {
			t.Errorf("Phone(%q) ok = %v, want %v (%v)", tt.value, got, tt.ok, v)
		}
	}
}
