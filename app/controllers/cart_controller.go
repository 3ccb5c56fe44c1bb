package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/homegrown/app/services"
	"github.com/shashiranjanraj/homegrown/pkg/bind"
	"github.com/shashiranjanraj/homegrown/pkg/cart"
	"github.com/shashiranjanraj/homegrown/pkg/response"
	"github.com/shashiranjanraj/homegrown/pkg/session"
	"github.com/shashiranjanraj/homegrown/pkg/validate"
)

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

// cartPayload serialises the cart with its computed totals.
func cartPayload(c cart.Cart) map[string]interface{} {
	items := c.Items
	if items == nil {
		items = []cart.Item{}
	}
	return map[string]interface{}{
		"items":      items,
		"totalItems": c.TotalItems(),
		"totalPrice": c.TotalPrice(),
	}
}

// Show returns the session's cart.
func (c *CartController) Show(w http.ResponseWriter, r *http.Request) {
	crt, err := c.service.Get(r.Context(), session.IDFromCtx(r.Context()))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, cartPayload(crt))
}

type addItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"nullable,gte=1"`
}

// AddItem merges a product into the cart, defaulting the quantity to 1.
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	var in addItemInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}
	if in.Quantity < 1 {
		in.Quantity = 1
	}

	crt, err := c.service.AddItem(r.Context(), session.IDFromCtx(r.Context()), in.ProductID, in.Quantity)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, cartPayload(crt))
}

type setQuantityInput struct {
	Quantity int `json:"quantity"`
}

// UpdateItem sets a line's quantity exactly; below 1 removes it.
func (c *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var in setQuantityInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	crt, err := c.service.SetQuantity(r.Context(), session.IDFromCtx(r.Context()),
		chi.URLParam(r, "productId"), in.Quantity)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, cartPayload(crt))
}

// RemoveItem deletes a line; removing an absent id is a no-op.
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	crt, err := c.service.RemoveItem(r.Context(), session.IDFromCtx(r.Context()),
		chi.URLParam(r, "productId"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, cartPayload(crt))
}

// Clear empties the cart.
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Clear(r.Context(), session.IDFromCtx(r.Context())); err != nil {
		fail(w, r, err)
		return
	}
	response.Message(w, "Cart cleared")
}
