package vision

import "time"

type Config struct {
	APIKey   string
	Endpoint string
	Timeout  time.Duration
}

type Vertex struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type NormalizedVertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type BoundingPoly struct {
	Vertices           []Vertex           `json:"vertices,omitempty"`
	NormalizedVertices []NormalizedVertex `json:"normalizedVertices,omitempty"`
}

type TextAnnotation struct {
	Description  string        `json:"description"`
	Locale       string        `json:"locale,omitempty"`
	BoundingPoly *BoundingPoly `json:"boundingPoly,omitempty"`
}

type LabelAnnotation struct {
	Description string   `json:"description"`
	Score       *float64 `json:"score,omitempty"`
}

type ObjectAnnotation struct {
	Name         string        `json:"name,omitempty"`
	Description  string        `json:"description"`
	Score        *float64      `json:"score,omitempty"`
	BoundingPoly *BoundingPoly `json:"boundingPoly,omitempty"`
}

// VisionResult is the canonical detector output. The first text annotation, when
// present, is the full-page text block; the rest are individual detections.
type VisionResult struct {
	TextAnnotations            []TextAnnotation   `json:"textAnnotations"`
	LabelAnnotations           []LabelAnnotation  `json:"labelAnnotations"`
	LocalizedObjectAnnotations []ObjectAnnotation `json:"localizedObjectAnnotations"`
}

// Empty returns a valid result with no detections.
func Empty() *VisionResult {
	return &VisionResult{
		TextAnnotations:            []TextAnnotation{},
		LabelAnnotations:           []LabelAnnotation{},
		LocalizedObjectAnnotations: []ObjectAnnotation{},
	}
}

// FullText returns the full-page text block, or "" when nothing was read.
func (r *VisionResult) FullText() string {
	if r == nil || len(r.TextAnnotations) == 0 {
		return ""
	}
	return r.TextAnnotations[0].Description
}

func (r *VisionResult) IsEmpty() bool {
	return r == nil ||
		len(r.TextAnnotations) == 0 && len(r.LabelAnnotations) == 0 && len(r.LocalizedObjectAnnotations) == 0
}

// Bounds returns the axis-aligned box spanning all vertices.
func (p *BoundingPoly) Bounds() (x, y, width, height int, ok bool) {
	if p == nil || len(p.Vertices) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY := p.Vertices[0].X, p.Vertices[0].Y
	maxX, maxY := minX, minY
	for _, v := range p.Vertices[1:] {
		minX = min(minX, v.X)
		minY = min(minY, v.Y)
		maxX = max(maxX, v.X)
		maxY = max(maxY, v.Y)
	}
	return minX, minY, maxX - minX, maxY - minY, true
}

// Source names the path that produced a detection.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

type Detection struct {
	Result *VisionResult
	Source Source
	Width  int
	Height int
}

func Score(v float64) *float64 {
	return &v
}
