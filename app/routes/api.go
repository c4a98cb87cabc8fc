package routes

import (
	"github.com/firelovers/storefront/app/controllers"
	"github.com/firelovers/storefront/pkg/ctx"
	"github.com/firelovers/storefront/pkg/middleware"
	"github.com/firelovers/storefront/pkg/router"
)

// Controllers groups every controller the API surface mounts.
type Controllers struct {
	Auth       *controllers.AuthController
	Users      *controllers.UserController
	Products   *controllers.ProductController
	Categories *controllers.CategoryController
	Orders     *controllers.OrderController
	Reviews    *controllers.ReviewController
	Analytics  *controllers.AnalyticsController
	Games      *controllers.GamesController
}

// RegisterAPI mounts the full REST surface under /api.
func RegisterAPI(r *router.Router, c Controllers) {
	api := r.Group("/api")

	api.Post("/auth/login", "auth.login", ctx.Wrap(c.Auth.Login))
	protected := api.Group("", middleware.Auth)
	protected.Get("/auth/me", "auth.me", ctx.Wrap(c.Auth.Me))

	api.Get("/users", "users.index", ctx.Wrap(c.Users.Index))
	api.Post("/users", "users.store", ctx.Wrap(c.Users.Store))
	api.Get("/users/{id}", "users.show", ctx.Wrap(c.Users.Show))
	api.Put("/users/{id}", "users.update", ctx.Wrap(c.Users.Update))
	api.Patch("/users/{id}", "users.patch", ctx.Wrap(c.Users.Patch))
	api.Delete("/users/{id}", "users.destroy", ctx.Wrap(c.Users.Destroy))

	api.Get("/products", "products.index", ctx.Wrap(c.Products.Index))
	api.Get("/products/with-categories", "products.withCategories", ctx.Wrap(c.Products.Index))
	api.Post("/products", "products.store", ctx.Wrap(c.Products.Store))
	api.Get("/products/{id}", "products.show", ctx.Wrap(c.Products.Show))
	api.Put("/products/{id}", "products.update", ctx.Wrap(c.Products.Update))
	api.Delete("/products/{id}", "products.destroy", ctx.Wrap(c.Products.Destroy))
	api.Get("/products/{id}/reviews", "products.reviews", ctx.Wrap(c.Reviews.ByProduct))

	api.Get("/categories", "categories.index", ctx.Wrap(c.Categories.Index))
	api.Post("/categories", "categories.store", ctx.Wrap(c.Categories.Store))
	api.Get("/categories/{id}", "categories.show", ctx.Wrap(c.Categories.Show))

	api.Get("/orders", "orders.index", ctx.Wrap(c.Orders.Index))
	api.Post("/orders", "orders.store", ctx.Wrap(c.Orders.Store))
	api.Get("/orders/{id}", "orders.show", ctx.Wrap(c.Orders.Show))
	api.Patch("/orders/{id}", "orders.payment", ctx.Wrap(c.Orders.UpdatePayment))
	api.Delete("/orders/{id}", "orders.destroy", ctx.Wrap(c.Orders.Destroy))

	api.Post("/reviews", "reviews.store", ctx.Wrap(c.Reviews.Store))

	api.Post("/views", "analytics.views.store", ctx.Wrap(c.Analytics.StoreView))
	api.Post("/actions", "analytics.actions.store", ctx.Wrap(c.Analytics.StoreAction))
	api.Post("/goals", "analytics.goals.store", ctx.Wrap(c.Analytics.StoreGoal))
	api.Get("/goals", "analytics.goals.index", ctx.Wrap(c.Analytics.IndexGoals))
	api.Get("/goals/{goalId}/details", "analytics.goals.details", ctx.Wrap(c.Analytics.GoalDetails))

	api.Get("/f2p-games", "games.index", ctx.Wrap(c.Games.Index))
	api.Get("/f2p-games/{id}", "games.show", ctx.Wrap(c.Games.Show))
}
