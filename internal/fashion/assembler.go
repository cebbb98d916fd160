package fashion

import (
	"strings"

	"github.com/stylelens/stylelens/internal/vision"
)

// ClothingItem is one detected clothing object fused with label-derived
// attributes. Colors, pattern and style come from the full label set of the
// image, so every item from the same image shares them.
type ClothingItem struct {
	Type          string          `json:"type"`
	Confidence    float64         `json:"confidence"`
	BoundingBox   []vision.Vertex `json:"bounding_box"`
	Colors        []string        `json:"colors"`
	Pattern       string          `json:"pattern"`
	Style         string          `json:"style"`
	RelatedLabels []string        `json:"related_labels"`
}

// isFashionText reports whether text names a clothing category, matching
// case-insensitively in either substring direction.
func isFashionText(text string) bool {
	lower := strings.ToLower(text)
	for _, category := range clothingCategories {
		if strings.Contains(lower, category) || strings.Contains(category, lower) {
			return true
		}
	}
	return false
}

// AssembleItems produces one ClothingItem per detected object classified as
// clothing, preserving the input object order. Non-clothing objects yield
// nothing.
func AssembleItems(objects []vision.DetectedObject, labels []vision.Label) []ClothingItem {
	colors := ExtractColors(labels)
	pattern := ExtractPattern(labels)
	style := ExtractStyle(labels)

	items := make([]ClothingItem, 0)
	for _, obj := range objects {
		if !isFashionText(obj.Name) {
			continue
		}

		objName := strings.ToLower(obj.Name)
		related := make([]string, 0)
		for _, label := range labels {
			description := strings.ToLower(label.Description)
			if strings.Contains(objName, description) || strings.Contains(description, objName) {
				related = append(related, label.Description)
			}
		}

		items = append(items, ClothingItem{
			Type:          obj.Name,
			Confidence:    obj.Score,
			BoundingBox:   obj.NormalizedVertices,
			Colors:        colors,
			Pattern:       pattern,
			Style:         style,
			RelatedLabels: related,
		})
	}

	return items
}
