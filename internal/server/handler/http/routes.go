package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"

	"github.com/ebazhanova/CoffeeToGo/internal/middleware"
)

// NewRouter constructs and returns the HTTP handler that serves the coffee
// API. Registration and login are public; everything else requires a valid
// bearer token.
//
// Routes:
//
//	POST   /api/auth/register        → authHandler.Register
//	POST   /api/auth/login           → authHandler.Login
//	GET    /api/coffee               → catalogHandler.List
//	GET    /api/coffee/types         → catalogHandler.Types
//	GET    /api/coffee/image         → catalogHandler.Image
//	GET    /api/cart                 → cartHandler.List
//	POST   /api/cart                 → cartHandler.Add
//	PUT    /api/cart                 → cartHandler.SetQuantity
//	DELETE /api/cart/{coffeeID}      → cartHandler.Remove
//	GET    /api/favorites            → favoritesHandler.List
//	POST   /api/favorites/{coffeeID} → favoritesHandler.Add
//	DELETE /api/favorites/{coffeeID} → favoritesHandler.Remove
//	POST   /api/orders               → orderHandler.Create
//	GET    /api/orders               → orderHandler.List
func NewRouter(
	authHandler *AuthHandler,
	catalogHandler *CatalogHandler,
	cartHandler *CartHandler,
	favoritesHandler *FavoritesHandler,
	orderHandler *OrderHandler,
	authenticator middleware.TokenAuthenticator,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected group: requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.TokenAuth(authenticator))

			r.Get("/coffee", catalogHandler.List)
			r.Get("/coffee/types", catalogHandler.Types)
			r.Get("/coffee/image", catalogHandler.Image)

			r.Get("/cart", cartHandler.List)
			r.Post("/cart", cartHandler.Add)
			r.Put("/cart", cartHandler.SetQuantity)
			r.Delete("/cart/{coffeeID}", cartHandler.Remove)

			r.Get("/favorites", favoritesHandler.List)
			r.Post("/favorites/{coffeeID}", favoritesHandler.Add)
			r.Delete("/favorites/{coffeeID}", favoritesHandler.Remove)

			r.Post("/orders", orderHandler.Create)
			r.Get("/orders", orderHandler.List)
		})
	})

	return r
}
