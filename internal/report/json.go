package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/eleven-am/uxlens/internal/analysis"
	"github.com/eleven-am/uxlens/internal/localization"
	"github.com/eleven-am/uxlens/internal/vision"
)

type exportSummary struct {
	TotalIssues        int `json:"totalIssues"`
	CriticalIssues     int `json:"criticalIssues"`
	HighPriorityIssues int `json:"highPriorityIssues"`
}

type exportDocument struct {
	Timestamp          string                `json:"timestamp"`
	ImageName          string                `json:"imageName"`
	Market             string                `json:"market,omitempty"`
	Language           string                `json:"language"`
	Summary            exportSummary         `json:"summary"`
	AnalysisResults    []analysis.Finding    `json:"analysisResults"`
	LocalizationAdvice []localization.Advice `json:"localizationAdvice"`
	DetectedElements   *exportDetections     `json:"detectedElements,omitempty"`
}

type exportDetections struct {
	FullText string                    `json:"fullText"`
	Labels   []vision.LabelAnnotation  `json:"labels"`
	Text     []vision.TextAnnotation   `json:"text"`
	Objects  []vision.ObjectAnnotation `json:"objects"`
}

func detections(v *vision.VisionResult) *exportDetections {
	if v == nil {
		return nil
	}
	v = vision.NormalizeResult(v)
	text := []vision.TextAnnotation{}
	if len(v.TextAnnotations) > 1 {
		text = v.TextAnnotations[1:]
	}
	return &exportDetections{
		FullText: v.FullText(),
		Labels:   v.LabelAnnotations,
		Text:     text,
		Objects:  v.LocalizedObjectAnnotations,
	}
}

// JSON renders the indented export document.
func (r *Renderer) JSON(d Data) ([]byte, error) {
	s := analysis.Summarize(d.Findings)
	doc := exportDocument{
		Timestamp: r.timestamp(d).UTC().Format(time.RFC3339),
		ImageName: d.ImageName,
		Market:    d.MarketCode,
		Language:  d.Language.String(),
		Summary: exportSummary{
			TotalIssues:        s.Total,
			CriticalIssues:     s.Critical,
			HighPriorityIssues: s.High,
		},
		AnalysisResults:    nonNil(d.Findings),
		LocalizationAdvice: nonNil(d.Advice),
		DetectedElements:   detections(d.Detections),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return data, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
