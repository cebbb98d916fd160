package fashion

import (
	"sort"
	"strings"

	"github.com/stylelens/stylelens/internal/vision"
)

// ExtractColors collects every common color name mentioned in any label
// description. Presence is binary, the result is a duplicate-free set
// sorted for deterministic output.
func ExtractColors(labels []vision.Label) []string {
	seen := make(map[string]bool)
	for _, label := range labels {
		description := strings.ToLower(label.Description)
		for _, color := range commonColors {
			if strings.Contains(description, color) {
				seen[color] = true
			}
		}
	}

	colors := make([]string, 0, len(seen))
	for color := range seen {
		colors = append(colors, color)
	}
	sort.Strings(colors)
	return colors
}

// ExtractPattern returns the first pattern keyword found scanning labels in
// their given order. First match wins, not the highest-scored one.
// Underscored entries match their space-rendered form.
func ExtractPattern(labels []vision.Label) string {
	for _, label := range labels {
		description := strings.ToLower(label.Description)
		for _, pattern := range patternTypes {
			if strings.Contains(description, strings.ReplaceAll(pattern, "_", " ")) {
				return pattern
			}
		}
	}
	return defaultPattern
}

// ExtractStyle returns the first style keyword found scanning labels in
// their given order.
func ExtractStyle(labels []vision.Label) string {
	for _, label := range labels {
		description := strings.ToLower(label.Description)
		for _, style := range styleCategories {
			if strings.Contains(description, style) {
				return style
			}
		}
	}
	return defaultStyle
}
