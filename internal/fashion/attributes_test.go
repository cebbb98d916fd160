package fashion

import (
	"reflect"
	"testing"

	"github.com/stylelens/stylelens/internal/vision"
)

func labelsFrom(descriptions ...string) []vision.Label {
	labels := make([]vision.Label, 0, len(descriptions))
	for _, d := range descriptions {
		labels = append(labels, vision.Label{Description: d, Score: 0.9, Topicality: 0.9})
	}
	return labels
}

func TestExtractColors(t *testing.T) {
	tests := []struct {
		name     string
		labels   []vision.Label
		expected []string
	}{
		{
			name:     "no color keywords",
			labels:   labelsFrom("shirt", "fashion"),
			expected: []string{},
		},
		{
			name:     "single color",
			labels:   labelsFrom("red shirt"),
			expected: []string{"red"},
		},
		{
			name:     "multiple colors across labels",
			labels:   labelsFrom("navy blue jacket", "white sneakers"),
			expected: []string{"blue", "navy", "white"},
		},
		{
			name:     "duplicate mentions collapse",
			labels:   labelsFrom("red dress", "red carpet"),
			expected: []string{"red"},
		},
		{
			name:     "empty labels",
			labels:   nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors := ExtractColors(tt.labels)
			if !reflect.DeepEqual(colors, tt.expected) {
				t.Errorf("expected colors %v, got %v", tt.expected, colors)
			}
		})
	}
}

func TestExtractColorsOrderIndependent(t *testing.T) {
	forward := labelsFrom("red shirt", "blue jeans", "white cap")
	backward := labelsFrom("white cap", "blue jeans", "red shirt")

	a := ExtractColors(forward)
	b := ExtractColors(backward)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("color extraction should be order independent: %v vs %v", a, b)
	}
}

func TestExtractPattern(t *testing.T) {
	tests := []struct {
		name     string
		labels   []vision.Label
		expected string
	}{
		{
			name:     "no pattern keyword defaults to solid",
			labels:   labelsFrom("shirt", "fashion"),
			expected: "solid",
		},
		{
			name:     "striped shirt",
			labels:   labelsFrom("red striped shirt"),
			expected: "striped",
		},
		{
			name:     "underscore entry matches space-rendered form",
			labels:   labelsFrom("animal print scarf"),
			expected: "animal_print",
		},
		{
			name:     "empty labels default",
			labels:   nil,
			expected: "solid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPattern(tt.labels); got != tt.expected {
				t.Errorf("expected pattern %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestExtractPatternFirstMatchWins(t *testing.T) {
	// Same multiset of labels, different order: the first label carrying a
	// pattern keyword decides the result.
	forward := labelsFrom("plaid jacket", "striped shirt")
	backward := labelsFrom("striped shirt", "plaid jacket")

	if got := ExtractPattern(forward); got != "plaid" {
		t.Errorf("expected plaid, got %q", got)
	}
	if got := ExtractPattern(backward); got != "striped" {
		t.Errorf("expected striped, got %q", got)
	}
}

func TestExtractStyle(t *testing.T) {
	tests := []struct {
		name     string
		labels   []vision.Label
		expected string
	}{
		{
			name:     "no style keyword defaults to casual",
			labels:   labelsFrom("red shirt"),
			expected: "casual",
		},
		{
			name:     "formal wear",
			labels:   labelsFrom("formal suit"),
			expected: "formal",
		},
		{
			name:     "first match in label order wins",
			labels:   labelsFrom("vintage denim", "sporty sneakers"),
			expected: "vintage",
		},
		{
			name:     "empty labels default",
			labels:   nil,
			expected: "casual",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractStyle(tt.labels); got != tt.expected {
				t.Errorf("expected style %q, got %q", tt.expected, got)
			}
		})
	}
}
