package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokokita.shop/app/internal/catalog"
	"tokokita.shop/app/internal/http/middleware"
	"tokokita.shop/app/internal/http/render"
	"tokokita.shop/app/internal/shared/apperr"
	"tokokita.shop/app/pkg/view"
)

// HomeHandler renders the landing page: every category with its first three
// products.
type HomeHandler struct {
	Catalog *catalog.Client
}

func NewHomeHandler(cl *catalog.Client) *HomeHandler {
	return &HomeHandler{Catalog: cl}
}

func (h *HomeHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

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

	groups := catalog.GroupByCategory(products, categories)
	vm := view.HomePage{Groups: make([]view.CategoryGroup, 0, len(groups))}
	for _, g := range groups {
		vm.Groups = append(vm.Groups, view.CategoryGroup{
			Name:     g.Category,
			Products: cardsFromProducts(g.Products),
		})
	}

	render.Page(c, http.StatusOK, "index.html", vm)
}
