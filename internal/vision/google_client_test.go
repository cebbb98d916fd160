package vision

import (
	"reflect"
	"testing"
)

func TestConvertResponse(t *testing.T) {
	response := annotateResponse{
		LabelAnnotations: []labelAnnotation{
			{Description: "red striped shirt", Score: 0.9, Topicality: 0.88},
		},
		LocalizedObjectAnnotations: []objectAnnotation{
			{
				Name:  "Shirt",
				Score: 0.95,
				BoundingPoly: boundingPoly{
					NormalizedVertices: []normalizedVertex{
						{X: 0.1, Y: 0.2}, {X: 0.8, Y: 0.2}, {X: 0.8, Y: 0.9}, {X: 0.1, Y: 0.9},
					},
				},
			},
		},
		WebDetection: &webDetection{
			WebEntities: []webEntity{
				{Description: "denim shirt", Score: 0.7},
				{Description: "", Score: 0.4},
			},
			BestGuessLabels: []bestGuessLabel{{Label: "striped shirt"}},
		},
		ImagePropertiesAnnotation: &imageProperties{
			DominantColors: dominantColors{
				Colors: []colorInfo{
					{Color: rgbColor{Red: 200, Green: 30, Blue: 40}, Score: 0.6, PixelFraction: 0.3},
				},
			},
		},
	}

	annotation := convertResponse(response)

	if len(annotation.Labels) != 1 {
		t.Fatalf("expected 1 label, got %d", len(annotation.Labels))
	}
	expectedLabel := Label{Description: "red striped shirt", Score: 0.9, Topicality: 0.88}
	if annotation.Labels[0] != expectedLabel {
		t.Errorf("unexpected label: %+v", annotation.Labels[0])
	}

	if len(annotation.Objects) != 1 {
		t.Fatalf("expected 1 object, got %d", len(annotation.Objects))
	}
	obj := annotation.Objects[0]
	if obj.Name != "Shirt" || obj.Score != 0.95 {
		t.Errorf("unexpected object: %+v", obj)
	}
	expectedVertices := []Vertex{{X: 0.1, Y: 0.2}, {X: 0.8, Y: 0.2}, {X: 0.8, Y: 0.9}, {X: 0.1, Y: 0.9}}
	if !reflect.DeepEqual(obj.NormalizedVertices, expectedVertices) {
		t.Errorf("unexpected vertices: %v", obj.NormalizedVertices)
	}

	// Web entities with empty descriptions are dropped.
	if len(annotation.WebEntities) != 1 || annotation.WebEntities[0].Description != "denim shirt" {
		t.Errorf("unexpected web entities: %+v", annotation.WebEntities)
	}
	if len(annotation.WebLabels) != 1 || annotation.WebLabels[0].Label != "striped shirt" {
		t.Errorf("unexpected web labels: %+v", annotation.WebLabels)
	}

	if len(annotation.Colors) != 1 {
		t.Fatalf("expected 1 color, got %d", len(annotation.Colors))
	}
	expectedColor := ColorInfo{Red: 200, Green: 30, Blue: 40, Score: 0.6, PixelFraction: 0.3}
	if annotation.Colors[0] != expectedColor {
		t.Errorf("unexpected color: %+v", annotation.Colors[0])
	}
}

func TestConvertResponseEmpty(t *testing.T) {
	annotation := convertResponse(annotateResponse{})

	if len(annotation.Labels) != 0 || len(annotation.Objects) != 0 {
		t.Errorf("expected empty annotation, got %+v", annotation)
	}
	if annotation.WebEntities == nil || annotation.Colors == nil {
		t.Error("expected initialized empty slices")
	}
}
