package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/stylelens/stylelens/internal/api"
	"github.com/stylelens/stylelens/internal/cache"
	"github.com/stylelens/stylelens/internal/fashion"
	"github.com/stylelens/stylelens/internal/history"
	"github.com/stylelens/stylelens/internal/shop"
	"github.com/stylelens/stylelens/internal/vision"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	maxUploadSize := os.Getenv("MAX_UPLOAD_SIZE")
	if maxUploadSize == "" {
		maxUploadSize = "10485760"
	}
	maxSize, err := strconv.ParseInt(maxUploadSize, 10, 64)
	if err != nil {
		log.Fatal("Invalid MAX_UPLOAD_SIZE:", err)
	}

	visionKey := os.Getenv("GOOGLE_VISION_API_KEY")
	if visionKey == "" {
		log.Fatal("GOOGLE_VISION_API_KEY is required")
	}

	searchKey := os.Getenv("GOOGLE_SEARCH_API_KEY")
	searchEngineID := os.Getenv("GOOGLE_CSE_ID")
	if searchKey == "" || searchEngineID == "" {
		log.Fatal("GOOGLE_SEARCH_API_KEY and GOOGLE_CSE_ID are required")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	resultCache, err := cache.NewRedis(cache.Config{
		Addr:     redisAddr,
		Username: os.Getenv("REDIS_USERNAME"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err != nil {
		log.Fatal("Failed to connect to redis:", err)
	}
	defer resultCache.Close()

	historyPath := os.Getenv("HISTORY_DB_PATH")
	if historyPath == "" {
		historyPath = "./stylelens.db"
	}

	historyStore, err := history.NewSQLiteStore(historyPath)
	if err != nil {
		log.Fatal("Failed to initialize history store:", err)
	}
	defer historyStore.Close()

	analyzer := fashion.NewAnalyzer(vision.NewGoogleClient(visionKey))
	shopService := shop.NewService(
		shop.NewGoogleShoppingClient(searchKey, searchEngineID),
		resultCache,
		shop.ServiceConfig{},
	)

	app := &api.App{
		Analyzer:      analyzer,
		Shop:          shopService,
		History:       historyStore,
		MaxUploadSize: maxSize,
	}

	router := api.NewRouter(app)

	log.Printf("Server starting on port %s", port)
	log.Printf("Redis address: %s", redisAddr)
	log.Printf("History database: %s", historyPath)
	log.Printf("Max upload size: %d bytes", maxSize)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}
