package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tokokita.shop/app/internal/catalog"
	"tokokita.shop/app/internal/http/middleware"
	"tokokita.shop/app/internal/http/render"
	"tokokita.shop/app/internal/shared/apperr"
	"tokokita.shop/app/pkg/view"
)

// CatalogHandler renders the searchable product list.
type CatalogHandler struct {
	Catalog *catalog.Client
}

func NewCatalogHandler(cl *catalog.Client) *CatalogHandler {
	return &CatalogHandler{Catalog: cl}
}

// Get handles GET /catalog?q=&category=. Filters compose with AND; an empty
// result renders an empty list, not an error.
func (h *CatalogHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	query := strings.TrimSpace(c.Query("q"))
	category := strings.TrimSpace(c.Query("category"))

	products, err := h.Catalog.List(ctx)
	if err != nil {
		middleware.Fail(c, apperr.UnavailableErr("The product catalog is unreachable right now.", err))
		return
	}
	categories, err := h.Catalog.Categories(ctx)
	if err != nil {
		middleware.Fail(c, apperr.UnavailableErr("The product catalog is unreachable right now.", err))
		return
	}

	filtered := catalog.Filter(products, category, query)

	render.Page(c, http.StatusOK, "catalog.html", view.CatalogPage{
		Products:    cardsFromProducts(filtered),
		Categories:  categories,
		Query:       query,
		SelectedCat: category,
	})
}
