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

// ProductDetailHandler renders a single product page.
type ProductDetailHandler struct {
	Catalog *catalog.Client
}

func NewProductDetailHandler(cl *catalog.Client) *ProductDetailHandler {
	return &ProductDetailHandler{Catalog: cl}
}

// Detail handles GET /product/:id. A non-integer id, an upstream 404 or any
// upstream failure on this endpoint all map to the not-found page.
func (h *ProductDetailHandler) Detail(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	p, err := h.Catalog.Get(c.Request.Context(), id)
	if err != nil {
		// Upstream 404 and upstream outage both land here: the page does not
		// exist from the visitor's point of view.
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	render.Page(c, http.StatusOK, "detail.html", view.ProductDetailPage{
		Product: view.ProductDetail{
			ID:          p.ID,
			Title:       p.Title,
			Category:    p.Category,
			Description: p.Description,
			Price:       view.Money(p.Price),
			ImageURL:    p.Image,
			RatingRate:  p.Rating.Rate,
			RatingCount: p.Rating.Count,
		},
	})
}
