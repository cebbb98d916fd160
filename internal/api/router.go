package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *App) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", PingHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/images/analyze", app.AnalyzeImageHandler)
		r.Post("/images/clothing", app.AnalyzeClothingHandler)
		r.Get("/products/search", app.SearchProductsHandler)
		r.Get("/products/{productID}", app.ProductDetailsHandler)
		r.Get("/history", app.SearchHistoryHandler)
	})

	return r
}
