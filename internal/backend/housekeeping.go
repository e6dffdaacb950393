package backend

import (
	"context"
	"net/http"

	"hotelops-dashboard/internal/models"
)

func (c *Client) ListHousekeepingTasks(ctx context.Context) ([]models.HousekeepingTask, error) {
	return getList[models.HousekeepingTask](ctx, c, "/api/housekeeping/tasks", nil, "tasks")
}

func (c *Client) CreateHousekeepingTask(ctx context.Context, t models.HousekeepingTask) (models.HousekeepingTask, error) {
	return send[models.HousekeepingTask](ctx, c, http.MethodPost, "/api/housekeeping/tasks", t, "task")
}

func (c *Client) UpdateHousekeepingStatus(ctx context.Context, id, status string) (models.HousekeepingTask, error) {
	return send[models.HousekeepingTask](ctx, c, http.MethodPut, "/api/housekeeping/tasks/"+escape(id)+"/status",
		map[string]string{"status": status}, "task")
}

func (c *Client) AssignHousekeepingTask(ctx context.Context, id, assignee string) (models.HousekeepingTask, error) {
	return send[models.HousekeepingTask](ctx, c, http.MethodPut, "/api/housekeeping/tasks/"+escape(id)+"/assign",
		map[string]string{"assignedTo": assignee}, "task")
}
