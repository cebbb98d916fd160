package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const googleVisionAPIURL = "https://vision.googleapis.com/v1/images:annotate"

// GoogleClient calls the Google Vision images:annotate endpoint with an API key.
type GoogleClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewGoogleClient(apiKey string) *GoogleClient {
	return &GoogleClient{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type googleVisionRequest struct {
	Requests []imageRequest `json:"requests"`
}

type imageRequest struct {
	Image    imageContent  `json:"image"`
	Features []featureType `json:"features"`
}

type imageContent struct {
	Content string       `json:"content,omitempty"`
	Source  *imageSource `json:"source,omitempty"`
}

type imageSource struct {
	ImageURI string `json:"imageUri"`
}

type featureType struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults,omitempty"`
}

type googleVisionResponse struct {
	Responses []annotateResponse `json:"responses"`
	Error     *googleError       `json:"error"`
}

type googleError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type annotateResponse struct {
	LabelAnnotations           []labelAnnotation  `json:"labelAnnotations"`
	LocalizedObjectAnnotations []objectAnnotation `json:"localizedObjectAnnotations"`
	WebDetection               *webDetection      `json:"webDetection"`
	ImagePropertiesAnnotation  *imageProperties   `json:"imagePropertiesAnnotation"`
	Error                      *googleError       `json:"error"`
}

type labelAnnotation struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Topicality  float64 `json:"topicality"`
}

type objectAnnotation struct {
	Name         string       `json:"name"`
	Score        float64      `json:"score"`
	BoundingPoly boundingPoly `json:"boundingPoly"`
}

type boundingPoly struct {
	NormalizedVertices []normalizedVertex `json:"normalizedVertices"`
}

type normalizedVertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type webDetection struct {
	WebEntities     []webEntity     `json:"webEntities"`
	BestGuessLabels []bestGuessLabel `json:"bestGuessLabels"`
}

type webEntity struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

type bestGuessLabel struct {
	Label string `json:"label"`
}

type imageProperties struct {
	DominantColors dominantColors `json:"dominantColors"`
}

type dominantColors struct {
	Colors []colorInfo `json:"colors"`
}

type colorInfo struct {
	Color         rgbColor `json:"color"`
	Score         float64  `json:"score"`
	PixelFraction float64  `json:"pixelFraction"`
}

type rgbColor struct {
	Red   int `json:"red"`
	Green int `json:"green"`
	Blue  int `json:"blue"`
}

func annotateFeatures() []featureType {
	return []featureType{
		{Type: "LABEL_DETECTION", MaxResults: 10},
		{Type: "OBJECT_LOCALIZATION", MaxResults: 10},
		{Type: "WEB_DETECTION", MaxResults: 10},
		{Type: "IMAGE_PROPERTIES"},
	}
}

func (c *GoogleClient) Annotate(ctx context.Context, imageData []byte) (*Annotation, error) {
	reqBody := googleVisionRequest{
		Requests: []imageRequest{
			{
				Image:    imageContent{Content: base64.StdEncoding.EncodeToString(imageData)},
				Features: annotateFeatures(),
			},
		},
	}
	return c.annotate(ctx, reqBody)
}

func (c *GoogleClient) AnnotateURL(ctx context.Context, imageURL string) (*Annotation, error) {
	reqBody := googleVisionRequest{
		Requests: []imageRequest{
			{
				Image:    imageContent{Source: &imageSource{ImageURI: imageURL}},
				Features: annotateFeatures(),
			},
		},
	}
	return c.annotate(ctx, reqBody)
}

func (c *GoogleClient) annotate(ctx context.Context, reqBody googleVisionRequest) (*Annotation, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", googleVisionAPIURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var visionResp googleVisionResponse
	if err := json.Unmarshal(body, &visionResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if visionResp.Error != nil {
		return nil, fmt.Errorf("Google Vision API error: %s", visionResp.Error.Message)
	}

	if len(visionResp.Responses) == 0 {
		return nil, fmt.Errorf("no response from Google Vision API")
	}

	response := visionResp.Responses[0]
	if response.Error != nil {
		return nil, fmt.Errorf("Google Vision API error: %s", response.Error.Message)
	}

	return convertResponse(response), nil
}

func convertResponse(response annotateResponse) *Annotation {
	annotation := &Annotation{
		Labels:      make([]Label, 0, len(response.LabelAnnotations)),
		Objects:     make([]DetectedObject, 0, len(response.LocalizedObjectAnnotations)),
		WebEntities: make([]WebEntity, 0),
		WebLabels:   make([]WebLabel, 0),
		Colors:      make([]ColorInfo, 0),
	}

	for _, label := range response.LabelAnnotations {
		annotation.Labels = append(annotation.Labels, Label{
			Description: label.Description,
			Score:       label.Score,
			Topicality:  label.Topicality,
		})
	}

	for _, obj := range response.LocalizedObjectAnnotations {
		vertices := make([]Vertex, 0, len(obj.BoundingPoly.NormalizedVertices))
		for _, v := range obj.BoundingPoly.NormalizedVertices {
			vertices = append(vertices, Vertex{X: v.X, Y: v.Y})
		}
		annotation.Objects = append(annotation.Objects, DetectedObject{
			Name:               obj.Name,
			Score:              obj.Score,
			NormalizedVertices: vertices,
		})
	}

	if response.WebDetection != nil {
		for _, entity := range response.WebDetection.WebEntities {
			if entity.Description == "" {
				continue
			}
			annotation.WebEntities = append(annotation.WebEntities, WebEntity{
				Description: entity.Description,
				Score:       entity.Score,
			})
		}
		for _, label := range response.WebDetection.BestGuessLabels {
			annotation.WebLabels = append(annotation.WebLabels, WebLabel{Label: label.Label})
		}
	}

	if response.ImagePropertiesAnnotation != nil {
		for _, c := range response.ImagePropertiesAnnotation.DominantColors.Colors {
			annotation.Colors = append(annotation.Colors, ColorInfo{
				Red:           c.Color.Red,
				Green:         c.Color.Green,
				Blue:          c.Color.Blue,
				Score:         c.Score,
				PixelFraction: c.PixelFraction,
			})
		}
	}

	return annotation
}
