package backend

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"hotelops-dashboard/internal/models"
)

type PaymentUpdate struct {
	PaymentMethod string               `json:"paymentMethod"`
	PaidAmount    decimal.Decimal      `json:"paidAmount"`
	DueAmount     decimal.Decimal      `json:"dueAmount"`
	PaymentStatus string               `json:"paymentStatus"`
	SplitPayment  *models.SplitPayment `json:"splitPayment,omitempty"`
}

func (c *Client) ListBills(ctx context.Context) ([]models.Bill, error) {
	return getList[models.Bill](ctx, c, "/api/bills/all", nil, "bills")
}

func (c *Client) GetBill(ctx context.Context, id string) (models.Bill, error) {
	return getObject[models.Bill](ctx, c, "/api/bills/"+escape(id), "bill")
}

func (c *Client) CreateBill(ctx context.Context, b models.Bill) (models.Bill, error) {
	return send[models.Bill](ctx, c, http.MethodPost, "/api/bills/create", b, "bill")
}

func (c *Client) UpdateBillPayment(ctx context.Context, id string, p PaymentUpdate) (models.Bill, error) {
	return send[models.Bill](ctx, c, http.MethodPatch, "/api/bills/"+escape(id)+"/payment", p, "bill")
}
