package handlers

import (
	"log/slog"
	"net/http"

	"productcatalog/internal/config"
	"productcatalog/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const welcomeMessage = "Welcome to the Product API! Go to /api/products to see all products."

// NewRouter assembles the middleware pipeline and route table. The stage
// order is a contract: the logger runs before authentication so rejected
// attempts are still recorded, and authentication rejects before any
// handler logic runs.
func NewRouter(cfg *config.Config, products *ProductHandler, health *HealthHandler, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recoverer(log))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", cfg.Auth.Header},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", health.ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(cfg.Auth))

		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte(welcomeMessage))
		})

		r.Route("/api/products", func(r chi.Router) {
			r.Get("/", products.ListProducts)
			r.Post("/", products.CreateProduct)

			// Static segments are registered alongside the {id} capture;
			// chi matches them with higher precedence, so "stats" and
			// "search" are never taken as product ids.
			r.Get("/stats", products.GetStats)
			r.Get("/search/{name}", products.SearchProducts)

			r.Get("/{id}", products.GetProduct)
			r.Put("/{id}", products.UpdateProduct)
			r.Delete("/{id}", products.DeleteProduct)
		})
	})

	return r
}
