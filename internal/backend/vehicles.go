package backend

import (
	"context"
	"net/http"

	"hotelops-dashboard/internal/models"
)

func (c *Client) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return getList[models.Vehicle](ctx, c, "/api/vehicle/all", nil, "vehicles")
}

func (c *Client) CreateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	return send[models.Vehicle](ctx, c, http.MethodPost, "/api/vehicle/add", v, "vehicle")
}

func (c *Client) UpdateVehicle(ctx context.Context, id string, v models.Vehicle) (models.Vehicle, error) {
	return send[models.Vehicle](ctx, c, http.MethodPut, "/api/vehicle/"+escape(id), v, "vehicle")
}

func (c *Client) DeleteVehicle(ctx context.Context, id string) error {
	return sendNoContent(ctx, c, http.MethodDelete, "/api/vehicle/"+escape(id), nil)
}
