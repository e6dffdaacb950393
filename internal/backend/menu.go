package backend

import (
	"context"
	"net/http"

	"hotelops-dashboard/internal/models"
)

func (c *Client) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	return getList[models.MenuItem](ctx, c, "/api/menu-items", nil, "menuItems", "items")
}

func (c *Client) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	return send[models.MenuItem](ctx, c, http.MethodPost, "/api/menu-items", item, "menuItem", "item")
}

func (c *Client) UpdateMenuItem(ctx context.Context, id string, item models.MenuItem) (models.MenuItem, error) {
	return send[models.MenuItem](ctx, c, http.MethodPut, "/api/menu-items/"+escape(id), item, "menuItem", "item")
}

func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	return sendNoContent(ctx, c, http.MethodDelete, "/api/menu-items/"+escape(id), nil)
}

func (c *Client) ListBanquetCategories(ctx context.Context) ([]models.Category, error) {
	return getList[models.Category](ctx, c, "/api/banquet-categories/all", nil, "categories")
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	return getList[models.Category](ctx, c, "/api/restaurant-categories/all", nil, "categories")
}

func (c *Client) CreateCategory(ctx context.Context, cat models.Category) (models.Category, error) {
	return send[models.Category](ctx, c, http.MethodPost, "/api/restaurant-categories/add", cat, "category")
}

func (c *Client) UpdateCategory(ctx context.Context, id string, cat models.Category) (models.Category, error) {
	return send[models.Category](ctx, c, http.MethodPut, "/api/restaurant-categories/"+escape(id), cat, "category")
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return sendNoContent(ctx, c, http.MethodDelete, "/api/restaurant-categories/"+escape(id), nil)
}
