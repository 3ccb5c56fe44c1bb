package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/homegrown/app/resources"
	"github.com/shashiranjanraj/homegrown/app/services"
	"github.com/shashiranjanraj/homegrown/pkg/bind"
	"github.com/shashiranjanraj/homegrown/pkg/logger"
	"github.com/shashiranjanraj/homegrown/pkg/middleware"
	"github.com/shashiranjanraj/homegrown/pkg/resource"
	"github.com/shashiranjanraj/homegrown/pkg/response"
	"github.com/shashiranjanraj/homegrown/pkg/session"
)

type OrdersController struct {
	orders *services.OrderService
	carts  *services.CartService
}

func NewOrdersController(orders *services.OrderService, carts *services.CartService) *OrdersController {
	return &OrdersController{orders: orders, carts: carts}
}

// Store places an order from the submitted cart snapshot and clears the
// session cart on success. A failed checkout leaves the cart intact.
func (c *OrdersController) Store(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromCtx(r)

	var in services.PlaceOrderInput
	if _, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	order, err := c.orders.PlaceOrder(r.Context(), userID, in)
	if err != nil {
		fail(w, r, err)
		return
	}

	if sid := session.IDFromCtx(r.Context()); sid != "" {
		if err := c.carts.Clear(r.Context(), sid); err != nil {
			logger.WithCtx(r.Context()).Warn("orders: cart clear failed", "error", err)
		}
	}

	response.Created(w, (&resources.OrderResource{}).ToArray(order))
}

// Index lists the caller's orders, newest first.
func (c *OrdersController) Index(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromCtx(r)

	orders, err := c.orders.ListOrders(r.Context(), userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	resource.CollectionOf(&resources.OrderResource{}, orders).Respond(w)
}

// Show returns one of the caller's orders; foreign order ids yield 404.
func (c *OrdersController) Show(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromCtx(r)

	order, err := c.orders.GetOrder(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	resource.New(&resources.OrderResource{}, order).Respond(w)
}
