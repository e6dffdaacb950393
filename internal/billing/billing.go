// Package billing holds the arithmetic the dashboard derives from bill and
// order forms. All amounts are decimals; rounding is to two places where the
// rules call for it and nowhere else.
package billing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"hotelops-dashboard/internal/models"
)

// TaxRate is applied to the subtotal before the discount is taken off.
var TaxRate = decimal.RequireFromString("0.18")

var hundred = decimal.NewFromInt(100)

var ErrUnknownItem = errors.New("billing: unknown menu item")

type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	Tax         decimal.Decimal `json:"tax"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// ComputeTotals returns tax = round(subtotal*0.18, 2) and
// total = round(subtotal - discount + tax, 2).
func ComputeTotals(subtotal, discount decimal.Decimal) Totals {
	tax := subtotal.Mul(TaxRate).Round(2)
	return Totals{
		Subtotal:    subtotal,
		Discount:    discount,
		Tax:         tax,
		TotalAmount: subtotal.Sub(discount).Add(tax).Round(2),
	}
}

// SplitTotal is the literal sum of the split channels.
func SplitTotal(split models.SplitPayment) decimal.Decimal {
	return split.Cash.Add(split.Card).Add(split.UPI)
}

func PaymentStatus(paid, total decimal.Decimal) string {
	switch {
	case paid.GreaterThanOrEqual(total) && total.IsPositive():
		return models.PaymentPaid
	case paid.IsPositive():
		return models.PaymentPartial
	default:
		return models.PaymentPending
	}
}

// Due never goes below zero; overpayment is returned as change elsewhere.
func Due(paid, total decimal.Decimal) decimal.Decimal {
	due := total.Sub(paid)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

type PriceLookup func(itemID string) (models.MenuItem, bool)

// OrderAmount prices order lines against the menu. Each line costs
// price * (1 - discount%) * quantity.
func OrderAmount(lines []models.OrderItem, lookup PriceLookup) (decimal.Decimal, []models.OrderItem, error) {
	amount := decimal.Zero
	priced := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		item, ok := lookup(line.ItemID)
		if !ok {
			return decimal.Zero, nil, fmt.Errorf("%w: %s", ErrUnknownItem, line.ItemID)
		}
		unit := item.Price
		if item.Discount.IsPositive() {
			unit = unit.Mul(hundred.Sub(item.Discount)).Div(hundred)
		}
		amount = amount.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))

		line.Name = item.Name
		line.Price = unit.Round(2)
		priced = append(priced, line)
	}
	return amount.Round(2), priced, nil
}

// ApplyPayment fills the payment fields of a bill. For split payments the
// paid amount is the split total; otherwise it is the amount given and any
// earlier split breakdown is dropped.
func ApplyPayment(bill *models.Bill, method string, amount decimal.Decimal, split *models.SplitPayment) {
	paid := amount
	bill.SplitPayment = nil
	if method == models.MethodSplit && split != nil {
		paid = SplitTotal(*split)
		bill.SplitPayment = split
	}
	bill.PaymentMethod = method
	bill.PaidAmount = paid
	bill.DueAmount = Due(paid, bill.TotalAmount)
	bill.PaymentStatus = PaymentStatus(paid, bill.TotalAmount)
}
