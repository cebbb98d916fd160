package vision

import "context"

// Provider annotates raw image bytes with labels, localized objects,
// web detection hints and dominant color statistics.
type Provider interface {
	Annotate(ctx context.Context, imageData []byte) (*Annotation, error)
	AnnotateURL(ctx context.Context, imageURL string) (*Annotation, error)
}

type Annotation struct {
	Labels      []Label          `json:"labels"`
	Objects     []DetectedObject `json:"objects"`
	WebEntities []WebEntity      `json:"web_entities"`
	WebLabels   []WebLabel       `json:"web_labels"`
	Colors      []ColorInfo      `json:"colors"`
}

type Label struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Topicality  float64 `json:"topicality"`
}

type DetectedObject struct {
	Name               string   `json:"name"`
	Score              float64  `json:"score"`
	NormalizedVertices []Vertex `json:"normalized_vertices"`
}

// Vertex is a point in normalized image coordinates, both axes in [0,1].
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type WebEntity struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

type WebLabel struct {
	Label string `json:"label"`
}

type ColorInfo struct {
	Red           int     `json:"red"`
	Green         int     `json:"green"`
	Blue          int     `json:"blue"`
	Score         float64 `json:"score"`
	PixelFraction float64 `json:"pixel_fraction"`
}
