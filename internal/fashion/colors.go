package fashion

import (
	"fmt"
	"sort"

	"github.com/stylelens/stylelens/internal/vision"
)

// DominantColor is a provider color statistic mapped to a common color name.
type DominantColor struct {
	Name          string  `json:"name"`
	Hex           string  `json:"hex"`
	Red           int     `json:"red"`
	Green         int     `json:"green"`
	Blue          int     `json:"blue"`
	Score         float64 `json:"score"`
	PixelFraction float64 `json:"pixel_fraction"`
}

// ExtractDominantColors keeps the top five provider colors by score and maps
// each to a common color name.
func ExtractDominantColors(colors []vision.ColorInfo) []DominantColor {
	if len(colors) == 0 {
		return []DominantColor{}
	}

	sorted := make([]vision.ColorInfo, len(colors))
	copy(sorted, colors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if len(sorted) > 5 {
		sorted = sorted[:5]
	}

	dominant := make([]DominantColor, 0, len(sorted))
	for _, c := range sorted {
		dominant = append(dominant, DominantColor{
			Name:          colorName(c.Red, c.Green, c.Blue),
			Hex:           fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue),
			Red:           c.Red,
			Green:         c.Green,
			Blue:          c.Blue,
			Score:         c.Score,
			PixelFraction: c.PixelFraction,
		})
	}

	return dominant
}

// colorName maps an RGB triple to a common color name with coarse threshold
// rules. Checked in order, first rule wins.
func colorName(r, g, b int) string {
	switch {
	case max(r, g, b) < 50:
		return "black"
	case min(r, g, b) > 200:
		return "white"
	case r > max(g, b)+50:
		return "red"
	case g > max(r, b)+50:
		return "green"
	case b > max(r, g)+50:
		return "blue"
	case r > 200 && g > 150 && b < 50:
		return "yellow"
	case r > 200 && g < 100 && b > 150:
		return "pink"
	case r > 150 && g > 100 && b < 50:
		return "orange"
	case r > 100 && g < 100 && b > 100:
		return "purple"
	case r < 50 && g > 100 && b > 100:
		return "teal"
	case r > 100 && g > 100 && b < 50:
		return "brown"
	default:
		return "gray"
	}
}
