package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentPending = "pending"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"
)

const (
	MethodCash  = "cash"
	MethodCard  = "card"
	MethodUPI   = "upi"
	MethodSplit = "split"
)

var PaymentMethods = []string{MethodCash, MethodCard, MethodUPI, MethodSplit}

func IsPaymentMethod(s string) bool { return contains(PaymentMethods, s) }

type SplitPayment struct {
	Cash decimal.Decimal `json:"cash"`
	Card decimal.Decimal `json:"card"`
	UPI  decimal.Decimal `json:"upi"`
}

type Bill struct {
	ID            string          `json:"_id,omitempty"`
	BillNumber    string          `json:"billNumber"`
	OrderID       string          `json:"orderId"`
	TableNo       string          `json:"tableNo"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Tax           decimal.Decimal `json:"tax"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	DueAmount     decimal.Decimal `json:"dueAmount"`
	PaymentStatus string          `json:"paymentStatus,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	SplitPayment  *SplitPayment   `json:"splitPayment,omitempty"`
	CreatedAt     *time.Time      `json:"createdAt,omitempty"`
}
