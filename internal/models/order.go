package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderServed    = "served"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// OrderStatuses has no transition graph: any status may follow any other.
var OrderStatuses = []string{OrderPending, OrderPreparing, OrderReady, OrderServed, OrderCompleted, OrderCancelled}

func IsOrderStatus(s string) bool { return contains(OrderStatuses, s) }

const (
	OrderTypeRegular = "regular"
	OrderTypeInHouse = "in-house"
)

type OrderItem struct {
	ItemID   string          `json:"itemId"`
	Name     string          `json:"name,omitempty"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type Order struct {
	ID          string          `json:"_id,omitempty"`
	StaffName   string          `json:"staffName"`
	PhoneNumber string          `json:"phoneNumber,omitempty"`
	TableNo     string          `json:"tableNo"`
	Items       []OrderItem     `json:"items"`
	Amount      decimal.Decimal `json:"amount"`
	Discount    decimal.Decimal `json:"discount"`
	Status      string          `json:"status,omitempty"`
	OrderType   string          `json:"orderType,omitempty"`
	BookingID   string          `json:"bookingId,omitempty"`
	RoomNumber  string          `json:"roomNumber,omitempty"`
	CreatedAt   *time.Time      `json:"createdAt,omitempty"`
}

func (o Order) InHouse() bool { return o.OrderType == OrderTypeInHouse }
