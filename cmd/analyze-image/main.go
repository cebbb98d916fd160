package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/stylelens/stylelens/internal/fashion"
	"github.com/stylelens/stylelens/internal/vision"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Println("Usage: analyze-image <image-path>")
		os.Exit(1)
	}

	visionKey := os.Getenv("GOOGLE_VISION_API_KEY")
	if visionKey == "" {
		log.Fatal("GOOGLE_VISION_API_KEY is required")
	}

	imageData, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal("Failed to read image:", err)
	}

	analyzer := fashion.NewAnalyzer(vision.NewGoogleClient(visionKey))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	analysis, err := analyzer.Analyze(ctx, imageData)
	if err != nil {
		log.Fatal("Analysis failed:", err)
	}

	items := fashion.AssembleItems(analysis.Objects, analysis.Labels)

	output := struct {
		Analysis      *fashion.Analysis      `json:"analysis"`
		ClothingItems []fashion.ClothingItem `json:"clothing_items"`
	}{
		Analysis:      analysis,
		ClothingItems: items,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		log.Fatal("Failed to marshal output:", err)
	}

	fmt.Println(string(data))
}
