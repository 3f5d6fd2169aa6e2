package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tokokita.shop/app/internal/cart"
	"tokokita.shop/app/internal/catalog"
	"tokokita.shop/app/internal/http/cartcookie"
	"tokokita.shop/app/internal/http/flash"
	"tokokita.shop/app/internal/http/middleware"
	"tokokita.shop/app/internal/http/render"
	"tokokita.shop/app/internal/shared/apperr"
	"tokokita.shop/app/pkg/view"
)

// CartHandler owns the cart page and the cart mutations. Every mutation is
// read-modify-write on the signed cookie: decode the whole cart, apply one
// command, write the whole cart back.
type CartHandler struct {
	Catalog *catalog.Client
	Flash   *flash.Codec
	CK      *cartcookie.Codec
}

func NewCartHandler(cl *catalog.Client, fl *flash.Codec, ck *cartcookie.Codec) *CartHandler {
	return &CartHandler{Catalog: cl, Flash: fl, CK: ck}
}

// Show handles GET /cart.
func (h *CartHandler) Show(c *gin.Context) {
	ct := h.CK.Get(c)
	items := cartItemsView(ct.Items)

	render.Page(c, http.StatusOK, "cart.html", view.CartPage{
		Items: items,
		Total: view.Money(cart.Total(ct.Items)),
		Count: ct.Count(),
	})
}

// Add handles POST /add_to_cart/:id. An id already in the cart accumulates
// quantity without touching the upstream; a new id is fetched first.
func (h *CartHandler) Add(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	ct := h.CK.Get(c)
	if ct.Contains(id) {
		ct.Increase(id)
		h.CK.Set(c, ct)
		render.RedirectWithFlash(c, h.Flash, backTo(c), view.FlashSuccess, "Added to cart.")
		return
	}

	p, err := h.Catalog.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
			return
		}
		middleware.Fail(c, apperr.UnavailableErr("Could not add the product right now.", err))
		return
	}

	ct.Add(cart.Item{
		ID:    p.ID,
		Title: p.Title,
		Price: p.Price,
		Image: p.Image,
	})
	h.CK.Set(c, ct)
	render.RedirectWithFlash(c, h.Flash, backTo(c), view.FlashSuccess, "Added to cart.")
}

// Remove handles POST /remove_from_cart/:id. The line goes away whatever its
// quantity was.
func (h *CartHandler) Remove(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	ct := h.CK.Get(c)
	ct.Remove(id)
	h.CK.Set(c, ct)
	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Removed from cart.")
}

// Increase handles POST /cart/increase/:id. Unknown ids are a no-op.
func (h *CartHandler) Increase(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	ct := h.CK.Get(c)
	ct.Increase(id)
	h.CK.Set(c, ct)
	c.Redirect(http.StatusFound, "/cart")
}

// Decrease handles POST /cart/decrease/:id. Quantity 1 lines are removed;
// unknown ids are a no-op.
func (h *CartHandler) Decrease(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	ct := h.CK.Get(c)
	ct.Decrease(id)
	h.CK.Set(c, ct)
	c.Redirect(http.StatusFound, "/cart")
}
