package handlers

import (
	"net/http"
	"testing"

	"hotelops-dashboard/internal/cache"
)

const menuBody = `{"success":true,"data":[
	{"_id":"m1","name":"Paneer Tikka","price":100,"discount":10,"category":{"_id":"c1","name":"Starters"},"inStock":true},
	{"_id":"m2","name":"Lassi","price":50,"discount":0,"category":"c2","inStock":true}
]}`

func TestCreateOrderPricesFromMenu(t *testing.T) {
	env := newTestEnv(t)
	env.backend.reply("GET /api/menu-items", http.StatusOK, menuBody)
	env.backend.echo("POST /api/restaurant-orders/create", "order")

	r := env.router()
	r.POST("/orders", NewOrderHTTPHandler(env.deps).CreateOrder)

	w, body := perform(t, r, http.MethodPost, "/orders",
		`{"staffName":"Ravi","tableNo":"T2","items":[{"itemId":"m1","quantity":2},{"itemId":"m2","quantity":1}]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	sent, _ := env.backend.body("POST /api/restaurant-orders/create")
	if sent["amount"] != 230.0 {
		t.Fatalf("amount = %v, want 230", sent["amount"])
	}
	if sent["status"] != "pending" || sent["orderType"] != "regular" {
		t.Fatalf("defaults = %v / %v", sent["status"], sent["orderType"])
	}

	var order struct {
		Items []struct {
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"items"`
	}
	decodeData(t, body, &order)
	if len(order.Items) != 2 || order.Items[0].Name != "Paneer Tikka" || order.Items[0].Price != 90 {
		t.Fatalf("items = %+v", order.Items)
	}
}

func TestCreateOrderUnknownItem(t *testing.T) {
	env := newTestEnv(t)
	env.backend.reply("GET /api/menu-items", http.StatusOK, menuBody)

	r := env.router()
	r.POST("/orders", NewOrderHTTPHandler(env.deps).CreateOrder)

	w, body := perform(t, r, http.MethodPost, "/orders",
		`{"staffName":"Ravi","tableNo":"T2","items":[{"itemId":"gone","quantity":1}]}`)
	if w.Code != http.StatusBadRequest || body.Errors["items"] != "unknown_item" {
		t.Fatalf("status = %d, errors = %v", w.Code, body.Errors)
	}
}

func TestCreateInHouseOrderNeedsCheckedInGuest(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		wantStatus int
	}{
		{"checked in", "checked-in", http.StatusCreated},
		{"only booked", "booked", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.backend.reply("GET /api/menu-items", http.StatusOK, menuBody)
			env.backend.reply("GET /api/bookings/all", http.StatusOK,
				`{"bookings":[{"_id":"r1","guestName":"Asha","roomNumber":"204","status":"`+tt.status+`"}]}`)
			env.backend.echo("POST /api/restaurant-orders/create", "order")

			r := env.router()
			r.POST("/orders", NewOrderHTTPHandler(env.deps).CreateOrder)

			w, body := perform(t, r, http.MethodPost, "/orders",
				`{"staffName":"Ravi","tableNo":"Room","orderType":"in-house","bookingId":"r1","items":[{"itemId":"m2","quantity":2}]}`)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d: %s", w.Code, w.Body.String())
			}
			if tt.wantStatus == http.StatusBadRequest {
				if body.Errors["bookingId"] != "not_checked_in" {
					t.Fatalf("errors = %v", body.Errors)
				}
				return
			}
			sent, _ := env.backend.body("POST /api/restaurant-orders/create")
			if sent["roomNumber"] != "204" {
				t.Fatalf("room number = %v", sent["roomNumber"])
			}
		})
	}
}

func TestUpdateOrderStatusAnyToAny(t *testing.T) {
	env := newTestEnv(t)
	env.backend.echo("PATCH /api/restaurant-orders/o1/status", "order")

	r := env.router()
	r.PATCH("/orders/:id/status", NewOrderHTTPHandler(env.deps).UpdateOrderStatus)

	// completed back to pending is allowed; only set membership is checked
	for _, status := range []string{"completed", "pending", "cancelled", "ready"} {
		w, _ := perform(t, r, http.MethodPatch, "/orders/o1/status", `{"status":"`+status+`"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", status, w.Code)
		}
		sent, _ := env.backend.body("PATCH /api/restaurant-orders/o1/status")
		if sent["status"] != status {
			t.Fatalf("sent = %v, want %s", sent, status)
		}
	}

	w, body := perform(t, r, http.MethodPatch, "/orders/o1/status", `{"status":"eaten"}`)
	if w.Code != http.StatusBadRequest || body.Errors["status"] != "invalid_choice" {
		t.Fatalf("status = %d, errors = %v", w.Code, body.Errors)
	}
	if got := len(env.events.Types()); got != 4 {
		t.Fatalf("events = %d, want 4", got)
	}
}

func TestOrderBillPreview(t *testing.T) {
	env := newTestEnv(t)
	env.backend.reply("GET /api/restaurant-orders/o1", http.StatusOK,
		`{"success":true,"data":{"order":{"_id":"o1","tableNo":"T1","amount":500,"discount":50}}}`)

	r := env.router()
	r.GET("/orders/:id/bill-preview", NewOrderHTTPHandler(env.deps).BillPreview)

	w, body := perform(t, r, http.MethodGet, "/orders/o1/bill-preview", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var data struct {
		OrderID string `json:"orderId"`
		Totals  struct {
			Tax         float64 `json:"tax"`
			TotalAmount float64 `json:"totalAmount"`
		} `json:"totals"`
	}
	decodeData(t, body, &data)
	if data.OrderID != "o1" || data.Totals.Tax != 90 || data.Totals.TotalAmount != 540 {
		t.Fatalf("preview = %+v", data)
	}
}

func TestUpdateOrderRefreshesTables(t *testing.T) {
	env := newTestEnv(t)
	env.backend.reply("GET /api/menu-items", http.StatusOK, menuBody)
	env.backend.echo("PUT /api/restaurant-orders/o1", "order")

	r := env.router()
	r.PUT("/orders/:id", NewOrderHTTPHandler(env.deps).UpdateOrder)

	w, _ := perform(t, r, http.MethodPut, "/orders/o1",
		`{"staffName":"Ravi","tableNo":"T5","status":"pending","orderType":"regular","items":[{"itemId":"m2","quantity":2}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	sent, _ := env.backend.body("PUT /api/restaurant-orders/o1")
	if sent["tableNo"] != "T5" || sent["amount"] != 100.0 {
		t.Fatalf("sent = %v", sent)
	}
	if len(env.events.Events) != 1 {
		t.Fatalf("events = %v", env.events.Types())
	}
	stale := env.events.Events[0].Stale
	if len(stale) != 1 || stale[0] != cache.TablesKey {
		t.Fatalf("stale keys = %v, want tables", stale)
	}
}
