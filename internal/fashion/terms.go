package fashion

import (
	"fmt"
	"sort"

	"github.com/stylelens/stylelens/internal/vision"
)

const maxSearchTerms = 5

// GenerateTerms derives an ordered, duplicate-free list of at most five
// search strings from an analysis. Priority order: fashion item names in
// detection order, then the top three labels by score, then the best web
// entity, then one "color item" composite term.
func GenerateTerms(analysis *Analysis) []string {
	terms := make([]string, 0, maxSearchTerms)
	seen := make(map[string]bool)

	add := func(term string) {
		if term == "" || seen[term] || len(terms) >= maxSearchTerms {
			return
		}
		seen[term] = true
		terms = append(terms, term)
	}

	for _, item := range analysis.FashionItems {
		add(item.Name)
	}

	topLabels := make([]vision.Label, len(analysis.Labels))
	copy(topLabels, analysis.Labels)
	sort.SliceStable(topLabels, func(i, j int) bool {
		return topLabels[i].Score > topLabels[j].Score
	})
	if len(topLabels) > 3 {
		topLabels = topLabels[:3]
	}
	for _, label := range topLabels {
		add(label.Description)
	}

	if len(analysis.WebEntities) > 0 {
		best := analysis.WebEntities[0]
		for _, entity := range analysis.WebEntities[1:] {
			if entity.Score > best.Score {
				best = entity
			}
		}
		add(best.Description)
	}

	if len(analysis.DominantColors) > 0 && len(analysis.FashionItems) > 0 {
		add(fmt.Sprintf("%s %s", analysis.DominantColors[0].Name, analysis.FashionItems[0].Name))
	}

	return terms
}
