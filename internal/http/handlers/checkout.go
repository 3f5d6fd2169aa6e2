package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tokokita.shop/app/internal/cart"
	"tokokita.shop/app/internal/http/cartcookie"
	"tokokita.shop/app/internal/http/flash"
	"tokokita.shop/app/internal/http/middleware"
	"tokokita.shop/app/internal/http/render"
	"tokokita.shop/app/internal/http/validation"
	"tokokita.shop/app/internal/shared/apperr"
	"tokokita.shop/app/pkg/view"
)

// CheckoutHandler renders the order summary for a selection of cart lines.
// Display only: no stock check, no payment, nothing persisted.
type CheckoutHandler struct {
	Flash *flash.Codec
	CK    *cartcookie.Codec
}

func NewCheckoutHandler(fl *flash.Codec, ck *cartcookie.Codec) *CheckoutHandler {
	return &CheckoutHandler{Flash: fl, CK: ck}
}

type checkoutInput struct {
	SelectedItems []int `form:"selected_items"`
}

// Post handles POST /checkout. Non-numeric ids are a hard 400; well-formed
// ids that match nothing in the cart (including an empty selection) go back
// to the cart without an error.
func (h *CheckoutHandler) Post(c *gin.Context) {
	var in checkoutInput
	if err := c.ShouldBind(&in); err != nil {
		fields := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Invalid item selection.", fields))
		return
	}

	if len(in.SelectedItems) == 0 {
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	ct := h.CK.Get(c)
	selected := ct.Select(in.SelectedItems)
	if len(selected) == 0 {
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	vm := view.CheckoutPage{
		OrderRef: uuid.New().String(),
		Items:    cartItemsView(selected),
		Total:    view.Money(cart.Total(selected)),
	}
	for _, it := range selected {
		vm.Count += it.Quantity
	}

	render.Page(c, http.StatusOK, "checkout.html", vm)
}
