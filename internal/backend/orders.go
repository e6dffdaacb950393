package backend

import (
	"context"
	"net/http"

	"hotelops-dashboard/internal/models"
)

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	return getList[models.Order](ctx, c, "/api/restaurant-orders/all", nil, "orders")
}

func (c *Client) GetOrder(ctx context.Context, id string) (models.Order, error) {
	return getObject[models.Order](ctx, c, "/api/restaurant-orders/"+escape(id), "order")
}

func (c *Client) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	return send[models.Order](ctx, c, http.MethodPost, "/api/restaurant-orders/create", o, "order")
}

func (c *Client) UpdateOrder(ctx context.Context, id string, o models.Order) (models.Order, error) {
	return send[models.Order](ctx, c, http.MethodPut, "/api/restaurant-orders/"+escape(id), o, "order")
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) (models.Order, error) {
	return send[models.Order](ctx, c, http.MethodPatch, "/api/restaurant-orders/"+escape(id)+"/status",
		map[string]string{"status": status}, "order")
}
