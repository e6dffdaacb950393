package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotelops-dashboard/internal/cache"
	"hotelops-dashboard/internal/listing"
	"hotelops-dashboard/internal/models"
	"hotelops-dashboard/internal/validation"
)

type MenuHTTPHandler struct {
	base
}

func NewMenuHTTPHandler(deps Deps) *MenuHTTPHandler {
	return &MenuHTTPHandler{base: base{deps}}
}

type ListMenuItemsQuery struct {
	ListQuery
	Category string `form:"category"`
	InStock  *bool  `form:"in_stock"`
}

// --- Menu Items ---

func (h *MenuHTTPHandler) ListMenuItems(c *gin.Context) {
	var query ListMenuItemsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	ctx, cancel := h.callContext(c, listTimeout)
	defer cancel()

	items, err := cache.Fetch(ctx, h.Cache, cache.MenuItemsKey, cache.TTLShort, h.API.ListMenuItems)
	if err != nil {
		h.handleBackendError(c, err, "Failed to list menu items")
		return
	}

	items = listing.Filter(items, func(m models.MenuItem) bool {
		if query.Category != "" && query.Category != m.Category.ID && !strings.EqualFold(query.Category, m.Category.Name) {
			return false
		}
		if query.InStock != nil && *query.InStock != m.InStock {
			return false
		}
		return listing.Equal(query.Status, m.Status) &&
			listing.Matches(query.Search, m.Name, m.Description, m.Category.Name)
	})
	page, meta := listing.Paginate(items, query.Page, query.PageSize)

	c.JSON(http.StatusOK, successWithMetaResponse("Menu items retrieved successfully", page, meta))
}

func (h *MenuHTTPHandler) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if v := validation.MenuItem(item); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	created, err := h.API.CreateMenuItem(ctx, item)
	if err != nil {
		h.handleBackendError(c, err, "Failed to create menu item")
		return
	}

	h.announce(c, "menu-items", "created", created.ID, created, cache.MenuItemsKey)
	c.JSON(http.StatusCreated, successResponse("Menu item created successfully", created))
}

func (h *MenuHTTPHandler) UpdateMenuItem(c *gin.Context) {
	id := c.Param("id")
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if v := validation.MenuItem(item); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	updated, err := h.API.UpdateMenuItem(ctx, id, item)
	if err != nil {
		h.handleBackendError(c, err, "Failed to update menu item")
		return
	}

	h.announce(c, "menu-items", "updated", id, updated, cache.MenuItemsKey)
	c.JSON(http.StatusOK, successResponse("Menu item updated successfully", updated))
}

func (h *MenuHTTPHandler) DeleteMenuItem(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	if err := h.API.DeleteMenuItem(ctx, id); err != nil {
		h.handleBackendError(c, err, "Failed to delete menu item")
		return
	}

	h.announce(c, "menu-items", "deleted", id, nil, cache.MenuItemsKey)
	c.JSON(http.StatusOK, successResponse("Menu item deleted successfully", nil))
}

func (h *MenuHTTPHandler) ListBanquetCategories(c *gin.Context) {
	ctx, cancel := h.callContext(c, listTimeout)
	defer cancel()

	categories, err := cache.Fetch(ctx, h.Cache, cache.BanquetCategoriesKey, cache.TTLMedium, h.API.ListBanquetCategories)
	if err != nil {
		h.handleBackendError(c, err, "Failed to list banquet categories")
		return
	}
	c.JSON(http.StatusOK, successResponse("Banquet categories retrieved successfully", categories))
}

// --- Restaurant Categories ---

func (h *MenuHTTPHandler) ListCategories(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	ctx, cancel := h.callContext(c, listTimeout)
	defer cancel()

	categories, err := cache.Fetch(ctx, h.Cache, cache.CategoriesKey, cache.TTLMedium, h.API.ListCategories)
	if err != nil {
		h.handleBackendError(c, err, "Failed to list categories")
		return
	}

	categories = listing.Filter(categories, func(cat models.Category) bool {
		return listing.Equal(query.Status, cat.Status) && listing.Matches(query.Search, cat.Name, cat.Description)
	})
	page, meta := listing.Paginate(categories, query.Page, query.PageSize)

	c.JSON(http.StatusOK, successWithMetaResponse("Categories retrieved successfully", page, meta))
}

func (h *MenuHTTPHandler) CreateCategory(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if cat.Status == "" {
		cat.Status = models.CategoryActive
	}
	if v := validation.Category(cat); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	created, err := h.API.CreateCategory(ctx, cat)
	if err != nil {
		h.handleBackendError(c, err, "Failed to create category")
		return
	}

	h.announce(c, "categories", "created", created.ID, created, cache.CategoriesKey)
	c.JSON(http.StatusCreated, successResponse("Category created successfully", created))
}

func (h *MenuHTTPHandler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
		return
	}
	if v := validation.Category(cat); !v.Empty() {
		c.JSON(http.StatusBadRequest, validationErrorResponse(v))
		return
	}

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	updated, err := h.API.UpdateCategory(ctx, id, cat)
	if err != nil {
		h.handleBackendError(c, err, "Failed to update category")
		return
	}

	// menu items embed the category name
	h.announce(c, "categories", "updated", id, updated, cache.CategoriesKey, cache.MenuItemsKey)
	c.JSON(http.StatusOK, successResponse("Category updated successfully", updated))
}

func (h *MenuHTTPHandler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := h.callContext(c, writeTimeout)
	defer cancel()

	if err := h.API.DeleteCategory(ctx, id); err != nil {
		h.handleBackendError(c, err, "Failed to delete category")
		return
	}

	h.announce(c, "categories", "deleted", id, nil, cache.CategoriesKey, cache.MenuItemsKey)
	c.JSON(http.StatusOK, successResponse("Category deleted successfully", nil))
}
