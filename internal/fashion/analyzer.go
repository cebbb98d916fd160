package fashion

import (
	"context"
	"fmt"
	"log"

	"github.com/stylelens/stylelens/internal/vision"
)

// FashionItem is any label or object whose text matches the clothing
// category vocabulary. Kind is "label" or "object"; Location is set only
// for objects.
type FashionItem struct {
	Kind       string          `json:"kind"`
	Name       string          `json:"name"`
	Confidence float64         `json:"confidence"`
	Location   []vision.Vertex `json:"location,omitempty"`
}

// Analysis is the full derived view of one image annotation.
type Analysis struct {
	Labels         []vision.Label          `json:"labels"`
	Objects        []vision.DetectedObject `json:"objects"`
	WebEntities    []vision.WebEntity      `json:"web_entities"`
	WebLabels      []vision.WebLabel       `json:"web_labels"`
	Colors         []vision.ColorInfo      `json:"colors"`
	FashionItems   []FashionItem           `json:"fashion_items"`
	DominantColors []DominantColor         `json:"dominant_colors"`
	SuggestedTerms []string                `json:"suggested_search_terms"`
}

// Analyzer drives the extraction pipeline over a vision provider. Provider
// failures are propagated to the caller unchanged; no retries.
type Analyzer struct {
	provider vision.Provider
}

func NewAnalyzer(provider vision.Provider) *Analyzer {
	return &Analyzer{provider: provider}
}

// AnalyzeClothing annotates the image and assembles clothing items from the
// detected objects and labels.
func (a *Analyzer) AnalyzeClothing(ctx context.Context, imageData []byte) ([]ClothingItem, error) {
	annotation, err := a.provider.Annotate(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("annotating image: %w", err)
	}

	items := AssembleItems(annotation.Objects, annotation.Labels)
	log.Printf("Detected %d clothing items in image", len(items))
	return items, nil
}

// Analyze annotates the image and builds the full analysis: fashion items,
// dominant colors and suggested search terms.
func (a *Analyzer) Analyze(ctx context.Context, imageData []byte) (*Analysis, error) {
	annotation, err := a.provider.Annotate(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("annotating image: %w", err)
	}
	return BuildAnalysis(annotation), nil
}

// AnalyzeURL is Analyze for an image addressed by URL.
func (a *Analyzer) AnalyzeURL(ctx context.Context, imageURL string) (*Analysis, error) {
	annotation, err := a.provider.AnnotateURL(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("annotating image url: %w", err)
	}
	return BuildAnalysis(annotation), nil
}

// BuildAnalysis derives the structured analysis from a raw annotation.
func BuildAnalysis(annotation *vision.Annotation) *Analysis {
	analysis := &Analysis{
		Labels:       annotation.Labels,
		Objects:      annotation.Objects,
		WebEntities:  annotation.WebEntities,
		WebLabels:    annotation.WebLabels,
		Colors:       annotation.Colors,
		FashionItems: make([]FashionItem, 0),
	}

	for _, label := range annotation.Labels {
		if isFashionText(label.Description) {
			analysis.FashionItems = append(analysis.FashionItems, FashionItem{
				Kind:       "label",
				Name:       label.Description,
				Confidence: label.Score,
			})
		}
	}

	for _, obj := range annotation.Objects {
		if isFashionText(obj.Name) {
			analysis.FashionItems = append(analysis.FashionItems, FashionItem{
				Kind:       "object",
				Name:       obj.Name,
				Confidence: obj.Score,
				Location:   obj.NormalizedVertices,
			})
		}
	}

	analysis.DominantColors = ExtractDominantColors(annotation.Colors)
	analysis.SuggestedTerms = GenerateTerms(analysis)

	return analysis
}
