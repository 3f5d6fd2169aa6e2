package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tokokita.shop/app/internal/cart"
	"tokokita.shop/app/internal/catalog"
	"tokokita.shop/app/pkg/view"
)

// productID parses the :id path param. Non-integer ids are rejected before
// any upstream call is made.
func productID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// backTo picks the redirect target after a cart mutation: the referring page
// when the browser sent one, home otherwise.
func backTo(c *gin.Context) string {
	if ref := c.Request.Referer(); ref != "" {
		return ref
	}
	return "/"
}

func cardFromProduct(p catalog.Product) view.ProductCard {
	return view.ProductCard{
		ID:       p.ID,
		Title:    p.Title,
		Category: p.Category,
		Price:    view.Money(p.Price),
		ImageURL: p.Image,
	}
}

func cardsFromProducts(products []catalog.Product) []view.ProductCard {
	out := make([]view.ProductCard, 0, len(products))
	for _, p := range products {
		out = append(out, cardFromProduct(p))
	}
	return out
}

func cartItemsView(items []cart.Item) []view.CartItem {
	out := make([]view.CartItem, 0, len(items))
	for _, it := range items {
		out = append(out, view.CartItem{
			ID:        it.ID,
			Title:     it.Title,
			Price:     view.Money(it.Price),
			Quantity:  it.Quantity,
			ImageURL:  it.Image,
			LineTotal: view.Money(it.Price * float64(it.Quantity)),
		})
	}
	return out
}
