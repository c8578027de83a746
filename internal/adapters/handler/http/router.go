package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vendio/api/internal/core/ports"
)

func NewHandler(authHandler *AuthHandler, productHandler *ProductHandler, tokens ports.TokenService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
		})

		r.Post("/login", authHandler.Login)
		r.Post("/signup", authHandler.Signup)
		r.Post("/refresh", authHandler.Refresh)
		r.Post("/logout", authHandler.Logout)

		r.Route("/products", func(r chi.Router) {
			r.Use(RequireAuth(tokens))
			r.Get("/", productHandler.List)
			r.Post("/", productHandler.Create)
		})
	})

	return r
}
