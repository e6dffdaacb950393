package backend

import (
	"context"
	"net/http"

	"hotelops-dashboard/internal/models"
)

func (c *Client) ListTables(ctx context.Context) ([]models.Table, error) {
	return getList[models.Table](ctx, c, "/api/restaurant/tables", nil, "tables")
}

func (c *Client) CreateTable(ctx context.Context, t models.Table) (models.Table, error) {
	return send[models.Table](ctx, c, http.MethodPost, "/api/restaurant/tables", t, "table")
}

func (c *Client) UpdateTable(ctx context.Context, id string, t models.Table) (models.Table, error) {
	return send[models.Table](ctx, c, http.MethodPut, "/api/restaurant/tables/"+escape(id), t, "table")
}

func (c *Client) UpdateTableStatus(ctx context.Context, id, status string) (models.Table, error) {
	return send[models.Table](ctx, c, http.MethodPatch, "/api/restaurant/tables/"+escape(id)+"/status",
		map[string]string{"status": status}, "table")
}

func (c *Client) DeleteTable(ctx context.Context, id string) error {
	return sendNoContent(ctx, c, http.MethodDelete, "/api/restaurant/tables/"+escape(id), nil)
}
