package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"hotelops-dashboard/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 2*time.Second)
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	if _, err := c.ListTables(WithToken(context.Background(), "abc123")); err != nil {
		t.Fatalf("list tables: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Fatalf("authorization = %q", gotAuth)
	}

	if _, err := c.ListTables(context.Background()); err != nil {
		t.Fatalf("list tables: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("authorization without token = %q", gotAuth)
	}
}

func TestClientMapsStatusErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusUnprocessableEntity, ErrBadRequest},
	}

	for _, tt := range tests {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			w.Write([]byte(`{"message":"nope"}`))
		})
		_, err := c.GetOrder(context.Background(), "o1")
		if !errors.Is(err, tt.want) {
			t.Fatalf("status %d: err = %v, want %v", tt.status, err, tt.want)
		}
		if Message(err) != "nope" {
			t.Fatalf("status %d: message = %q", tt.status, Message(err))
		}
	}
}

func TestClientSendsJSONBody(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/bills/create" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"bill":{"_id":"b1","billNumber":"BILL-1","totalAmount":1080}}`))
	})

	bill, err := c.CreateBill(context.Background(), models.Bill{OrderID: "o1", TableNo: "T1", Subtotal: decimal.NewFromInt(1000), TotalAmount: decimal.NewFromInt(1080)})
	if err != nil {
		t.Fatalf("create bill: %v", err)
	}
	if bill.ID != "b1" || !bill.TotalAmount.Equal(decimal.NewFromInt(1080)) {
		t.Fatalf("bill = %+v", bill)
	}
	if got["subtotal"] != float64(1000) || got["orderId"] != "o1" {
		t.Fatalf("body = %v", got)
	}
}

func TestNextGRCNo(t *testing.T) {
	for _, body := range []string{`{"grcNo":"GRC-0042"}`, `{"success":true,"data":{"grcNo":"GRC-0042"}}`, `{"data":"GRC-0042"}`} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})
		got, err := c.NextGRCNo(context.Background())
		if err != nil || got != "GRC-0042" {
			t.Fatalf("body %s: got %q, %v", body, got, err)
		}
	}
}

func TestAvailableRoomsForwardsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("checkInDate") != "2026-01-10" || q.Get("roomType") != "deluxe" || q.Has("checkOutDate") {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{"rooms":[{"roomNumber":"101","category":{"_id":"c1","name":"Deluxe"},"price":3500}]}`))
	})

	rooms, err := c.AvailableRooms(context.Background(), RoomQuery{CheckIn: "2026-01-10", RoomType: "deluxe"})
	if err != nil {
		t.Fatalf("rooms: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Category.Name != "Deluxe" {
		t.Fatalf("rooms = %+v", rooms)
	}
}

func TestLoginRequiresToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"user":{"name":"Asha"}}}`))
	})
	if _, err := c.Login(context.Background(), Credentials{Email: "a@b.c", Password: "x"}); !errors.Is(err, ErrUnexpectedShape) {
		t.Fatalf("err = %v, want ErrUnexpectedShape", err)
	}
}

func TestPing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("ping on 404: %v", err)
	}

	c = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	if err := c.Ping(context.Background()); err == nil {
		t.Fatal("expected ping error on 502")
	}
}
