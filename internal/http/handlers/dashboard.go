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

// DashboardHandler renders the catalog analytics page.
type DashboardHandler struct {
	Catalog *catalog.Client
}

func NewDashboardHandler(cl *catalog.Client) *DashboardHandler {
	return &DashboardHandler{Catalog: cl}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	products, err := h.Catalog.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.UnavailableErr("The product catalog is unreachable right now.", err))
		return
	}

	stats, ok := catalog.ComputeStats(products)
	if !ok {
		// An empty catalog is a valid upstream answer; render the empty state
		// instead of dividing by zero.
		render.Page(c, http.StatusOK, "dashboard.html", view.DashboardPage{HasData: false})
		return
	}

	vm := view.DashboardPage{
		HasData:       true,
		Total:         stats.Total,
		AveragePrice:  view.Money(stats.AveragePrice),
		MostExpensive: cardFromProduct(stats.MostExpensive),
		Cheapest:      cardFromProduct(stats.Cheapest),
	}
	for _, cc := range stats.CategoryCounts {
		vm.Categories = append(vm.Categories, view.CategoryStat{Name: cc.Category, Count: cc.Count})
	}

	render.Page(c, http.StatusOK, "dashboard.html", vm)
}
