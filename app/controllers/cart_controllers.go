package controllers

import (
	"errors"
	"net/http"

	"github.com/zephyrlabs/zephyr/app/services"
	"github.com/zephyrlabs/zephyr/pkg/bind"
	"github.com/zephyrlabs/zephyr/pkg/response"
	"github.com/zephyrlabs/zephyr/pkg/router"
)

// CartController serves cart-add, checkout, and the order-history list.
type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

type cartAddInput struct {
	Username string `form:"username"`
	ItemID   string `form:"itemId"`
}

type checkoutInput struct {
	Username string  `form:"username"`
	Items    string  `form:"items"`
	Total    float64 `form:"total"`
}

// Add handles POST /cart/add. The response is the pre-decrement item
// snapshot the frontend stores in local storage.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	var in cartAddInput
	if _, err := bind.Form(r, &in); err != nil {
		response.Internal(w)
		return
	}

	item, err := c.cart.AddToCart(in.Username, in.ItemID)
	if errors.Is(err, services.ErrLoginRequired) {
		response.Text(w, http.StatusUnauthorized, "Not logged in!")
		return
	}
	if err != nil {
		fail(w, r, err)
		return
	}

	response.JSON(w, item)
}

// Checkout handles POST /cart/checkout.
func (c *CartController) Checkout(w http.ResponseWriter, r *http.Request) {
	var in checkoutInput
	if _, err := bind.Form(r, &in); err != nil {
		response.Internal(w)
		return
	}

	_, err := c.cart.Checkout(in.Username, in.Items, in.Total)
	if errors.Is(err, services.ErrLoginRequired) {
		response.Text(w, http.StatusUnauthorized, "Must be logged in to purchase items.")
		return
	}
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "Thank you for your payment. Your order has been confirmed!")
}

// Transactions handles GET /users/{username}/transactions.
func (c *CartController) Transactions(w http.ResponseWriter, r *http.Request) {
	purchases, err := c.cart.Transactions(router.Param(r, "username"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.JSON(w, purchases)
}
