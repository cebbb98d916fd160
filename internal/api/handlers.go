package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/stylelens/stylelens/internal/fashion"
	"github.com/stylelens/stylelens/internal/history"
	"github.com/stylelens/stylelens/internal/shop"
)

// App holds the collaborators for the HTTP surface. Everything is
// constructed once at startup and injected; handlers never build clients.
type App struct {
	Analyzer      *fashion.Analyzer
	Shop          *shop.Service
	History       history.Store
	MaxUploadSize int64
}

func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

func (app *App) AnalyzeImageHandler(w http.ResponseWriter, r *http.Request) {
	imageData, ok := app.readImage(w, r)
	if !ok {
		return
	}

	analysis, err := app.Analyzer.Analyze(r.Context(), imageData)
	if err != nil {
		log.Printf("Image analysis failed: %v", err)
		writeError(w, http.StatusBadGateway, "image analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

func (app *App) AnalyzeClothingHandler(w http.ResponseWriter, r *http.Request) {
	imageData, ok := app.readImage(w, r)
	if !ok {
		return
	}

	items, err := app.Analyzer.AnalyzeClothing(r.Context(), imageData)
	if err != nil {
		log.Printf("Clothing analysis failed: %v", err)
		writeError(w, http.StatusBadGateway, "image analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"clothing_items": items})
}

func (app *App) SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	maxResults := 10
	if raw := r.URL.Query().Get("max_results"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid max_results")
			return
		}
		maxResults = n
	}

	minPrice, ok := parsePriceParam(w, r, "min_price")
	if !ok {
		return
	}
	maxPrice, ok := parsePriceParam(w, r, "max_price")
	if !ok {
		return
	}

	var brands []string
	if raw := r.URL.Query().Get("brands"); raw != "" {
		for _, brand := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(brand); trimmed != "" {
				brands = append(brands, trimmed)
			}
		}
	}

	products := app.Shop.SearchProducts(r.Context(), query, maxResults, minPrice, maxPrice, brands)

	if app.History != nil {
		entry := history.Entry{Query: query, ResultCount: len(products)}
		if err := app.History.RecordSearch(r.Context(), entry); err != nil {
			log.Printf("Failed to record search history: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (app *App) ProductDetailsHandler(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product id is required")
		return
	}

	product := app.Shop.ProductDetails(r.Context(), productID)
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (app *App) SearchHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if app.History == nil {
		writeJSON(w, http.StatusOK, map[string]any{"searches": []history.Entry{}})
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := app.History.RecentSearches(r.Context(), limit)
	if err != nil {
		log.Printf("Failed to load search history: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load search history")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"searches": entries})
}

func (app *App) readImage(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, app.MaxUploadSize)

	if err := r.ParseMultipartForm(app.MaxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "file too large")
		return nil, false
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to get image file")
		return nil, false
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image file")
		return nil, false
	}

	return imageData, true
}

func parsePriceParam(w http.ResponseWriter, r *http.Request, name string) (*float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return nil, false
	}
	return &value, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
