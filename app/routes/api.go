// Package routes registers the HTTP API surface and wires controllers to
// services.
package routes

import (
	"net/http"

	"github.com/shashiranjanraj/homegrown/app/controllers"
	"github.com/shashiranjanraj/homegrown/app/graph"
	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/app/repositories"
	"github.com/shashiranjanraj/homegrown/app/services"
	"github.com/shashiranjanraj/homegrown/pkg/auth"
	"github.com/shashiranjanraj/homegrown/pkg/cache"
	"github.com/shashiranjanraj/homegrown/pkg/cart"
	"github.com/shashiranjanraj/homegrown/pkg/event"
	"github.com/shashiranjanraj/homegrown/pkg/gql"
	"github.com/shashiranjanraj/homegrown/pkg/logger"
	"github.com/shashiranjanraj/homegrown/pkg/metrics"
	"github.com/shashiranjanraj/homegrown/pkg/middleware"
	"github.com/shashiranjanraj/homegrown/pkg/rbac"
	"github.com/shashiranjanraj/homegrown/pkg/response"
	"github.com/shashiranjanraj/homegrown/pkg/router"
	"github.com/shashiranjanraj/homegrown/pkg/ws"
)

// OrderHub streams order events to connected admin dashboards.
var OrderHub = ws.NewHub()

// RegisterAPI wires repositories, services, and controllers onto the router.
func RegisterAPI(r *router.Router) {
	userRepo := repositories.NewUserRepository()
	productRepo := repositories.NewProductRepository()
	subRepo := repositories.NewSubcategoryRepository()
	orderRepo := repositories.NewOrderRepository()

	var cartStore cart.Store
	if cache.RDB != nil {
		cartStore = cart.NewRedisStore(cache.RDB)
	} else {
		cartStore = cart.NewMemoryStore()
	}

	authSvc := services.NewAuthService(userRepo)
	catalogSvc := services.NewCatalogService(productRepo)
	subSvc := services.NewSubcategoryService(subRepo)
	cartSvc := services.NewCartService(cartStore, productRepo)
	orderSvc := services.NewOrderService(orderRepo)
	profileSvc := services.NewProfileService(userRepo)

	authCtl := controllers.NewAuthController(authSvc)
	productsCtl := controllers.NewProductsController(catalogSvc)
	subsCtl := controllers.NewSubcategoriesController(subSvc)
	cartCtl := controllers.NewCartController(cartSvc)
	ordersCtl := controllers.NewOrdersController(orderSvc, cartSvc)
	profileCtl := controllers.NewProfileController(profileSvc)

	go OrderHub.Run()
	registerOrderListeners()

	adminOnly := []router.Middleware{middleware.Auth, rbac.HasRole(models.RoleAdmin)}

	api := r.Group("/api")

	// Auth
	api.Post("/auth/signup", "auth.signup", authCtl.Signup)
	api.Post("/auth/login", "auth.login", authCtl.Login)

	// Catalog (public reads, admin writes)
	api.Get("/products", "products.index", productsCtl.Index)
	api.Get("/products/categories", "products.categories", productsCtl.Categories)
	api.Get("/products/{id}", "products.show", productsCtl.Show)
	api.Post("/products", "products.store", productsCtl.Store, adminOnly...)
	api.Put("/products/{id}", "products.update", productsCtl.Update, adminOnly...)
	api.Delete("/products/{id}", "products.destroy", productsCtl.Destroy, adminOnly...)

	// Subcategories
	api.Get("/subcategories", "subcategories.index", subsCtl.Index)
	api.Post("/subcategories", "subcategories.store", subsCtl.Store, adminOnly...)
	api.Put("/subcategories/{id}", "subcategories.update", subsCtl.Update, adminOnly...)
	api.Delete("/subcategories/{id}", "subcategories.destroy", subsCtl.Destroy, adminOnly...)

	// Admin aliases for the catalog mutations
	admin := api.Group("/admin", adminOnly...)
	admin.Post("/products", "admin.products.store", productsCtl.Store)
	admin.Put("/products/{id}", "admin.products.update", productsCtl.Update)
	admin.Delete("/products/{id}", "admin.products.destroy", productsCtl.Destroy)

	// Cart (session-scoped, no login required)
	api.Get("/cart", "cart.show", cartCtl.Show)
	api.Post("/cart/items", "cart.add", cartCtl.AddItem)
	api.Put("/cart/items/{productId}", "cart.update", cartCtl.UpdateItem)
	api.Delete("/cart/items/{productId}", "cart.remove", cartCtl.RemoveItem)
	api.Delete("/cart", "cart.clear", cartCtl.Clear)

	// Orders and profile (token required)
	protected := api.Group("", middleware.Auth)
	protected.Post("/orders", "orders.store", ordersCtl.Store)
	protected.Get("/orders", "orders.index", ordersCtl.Index)
	protected.Get("/orders/{id}", "orders.show", ordersCtl.Show)

	protected.Get("/profile", "profile.show", profileCtl.Show)
	protected.Put("/profile", "profile.update", profileCtl.Update)
	protected.Get("/profile/addresses", "profile.addresses", profileCtl.Addresses)
	protected.Post("/profile/addresses", "profile.addresses.store", profileCtl.AddAddress)
	protected.Put("/profile/addresses/{id}", "profile.addresses.update", profileCtl.UpdateAddress)
	protected.Delete("/profile/addresses/{id}", "profile.addresses.destroy", profileCtl.DeleteAddress)

	// Read-only GraphQL catalog
	schema, err := graph.NewSchema(catalogSvc)
	if err != nil {
		logger.Error("routes: graphql schema build failed", "error", err)
	} else {
		api.Post("/graphql", "graphql", gql.Handler(schema))
	}

	// Order event stream, admin token via Authorization header or ?token.
	r.HandleFunc("/api/ws/orders", func(w http.ResponseWriter, req *http.Request) {
		if !adminToken(req) {
			response.Unauthorized(w)
			return
		}
		ws.Upgrade(w, req, OrderHub)
	})
}

// registerOrderListeners fans order-placed events out to the websocket hub
// and the metrics counter.
func registerOrderListeners() {
	event.Listen(services.EventOrderPlaced, func(payload interface{}) {
		order, ok := payload.(models.Order)
		if !ok {
			return
		}
		metrics.OrdersPlaced.Inc()
		OrderHub.BroadcastJSON(map[string]interface{}{
			"event":       services.EventOrderPlaced,
			"orderId":     order.ID.Hex(),
			"totalAmount": order.TotalAmount,
			"status":      order.Status,
			"createdAt":   order.CreatedAt,
		})
	})
}

// adminToken accepts an admin JWT from the Authorization header or, for
// browser WebSocket clients that cannot set headers, a token query param.
func adminToken(r *http.Request) bool {
	token := r.URL.Query().Get("token")
	if h := r.Header.Get("Authorization"); len(h) > 7 && h[:7] == "Bearer " {
		token = h[7:]
	}
	if token == "" {
		return false
	}
	claims, err := auth.ValidateToken(token)
	return err == nil && claims.Role == models.RoleAdmin
}
