package controllers

import (
	"net/http"

	"github.com/zephyrlabs/zephyr/app/services"
	"github.com/zephyrlabs/zephyr/pkg/response"
	"github.com/zephyrlabs/zephyr/pkg/router"
)

// ItemController serves the catalog endpoints the storefront grid,
// search bar, and detail page call.
type ItemController struct {
	catalog *services.CatalogService
}

func NewItemController(catalog *services.CatalogService) *ItemController {
	return &ItemController{catalog: catalog}
}

// List handles GET /items.
func (c *ItemController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.catalog.List()
	if err != nil {
		fail(w, r, err)
		return
	}
	response.JSON(w, items)
}

// Search handles GET /items/search?search=&category=.
func (c *ItemController) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	items, err := c.catalog.Search(query.Get("search"), query.Get("category"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.JSON(w, items)
}

// Get handles GET /items/{id}.
func (c *ItemController) Get(w http.ResponseWriter, r *http.Request) {
	item, err := c.catalog.Get(router.Param(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.JSON(w, item)
}
