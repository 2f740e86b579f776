package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/eleven-am/uxlens/internal/analysis"
	"github.com/eleven-am/uxlens/internal/i18n"
	"github.com/eleven-am/uxlens/internal/localization"
	"github.com/eleven-am/uxlens/internal/vision"
)

var fixedTime = time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)

func sampleData(lang i18n.Language) Data {
	return Data{
		ImageName:  "checkout.page.png",
		Language:   lang,
		MarketCode: "FI",
		MarketName: "Finland",
		Source:     "remote",
		Dimensions: analysis.Dimensions{Width: 1280, Height: 800},
		Findings: []analysis.Finding{
			{ID: "visual-complexity", Category: analysis.CategoryDesign, Severity: analysis.SeverityMedium, Title: "High Visual Complexity", Description: "Many labels", Suggestion: "Simplify", Impact: "Overwhelm"},
			{ID: "text-content", Category: analysis.CategoryAccessibility, Severity: analysis.SeverityHigh, Title: "Text", Description: "Näkyvä €45,00", Suggestion: "Label it"},
		},
		Advice: []localization.Advice{
			{ID: "dynamic-currency", Title: "Currency Symbol Mismatch", Advice: "Use the Euro (€).", Category: localization.CategoryFormat},
		},
		GeneratedAt: fixedTime,
	}
}

func TestFileName(t *testing.T) {
	cases := []struct {
		name   string
		format Format
		want   string
	}{
		{"checkout.page.png", FormatPDF, "UX_Analysis_checkout.page_2024-03-09.pdf"},
		{"/tmp/home.jpg", FormatJSON, "UX_Analysis_home_2024-03-09.json"},
		{"", FormatPDF, "UX_Analysis_screenshot_2024-03-09.pdf"},
	}
	for _, tc := range cases {
		if got := FileName(tc.name, tc.format, fixedTime); got != tc.want {
			t.Errorf("FileName(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != FormatPDF {
		t.Errorf("expected pdf default, got %s", f)
	}

	f, err = ParseFormat("JSON")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != FormatJSON {
		t.Errorf("expected json, got %s", f)
	}
	if f.ContentType() != "application/json" {
		t.Errorf("unexpected content type %q", f.ContentType())
	}

	if _, err := ParseFormat("docx"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestJSON_ExportShape(t *testing.T) {
	out, err := NewRenderer().JSON(sampleData(i18n.English))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if doc["timestamp"] != "2024-03-09T14:30:00Z" {
		t.Errorf("unexpected timestamp %v", doc["timestamp"])
	}
	if doc["imageName"] != "checkout.page.png" {
		t.Errorf("unexpected imageName %v", doc["imageName"])
	}

	summary := doc["summary"].(map[string]any)
	if summary["totalIssues"] != float64(2) || summary["criticalIssues"] != float64(0) || summary["highPriorityIssues"] != float64(1) {
		t.Errorf("unexpected summary %v", summary)
	}

	if n := len(doc["analysisResults"].([]any)); n != 2 {
		t.Errorf("expected 2 analysis results, got %d", n)
	}
	if n := len(doc["localizationAdvice"].([]any)); n != 1 {
		t.Errorf("expected 1 advice entry, got %d", n)
	}
	if _, ok := doc["detectedElements"]; ok {
		t.Error("expected detectedElements to be omitted without detections")
	}
}

func TestJSON_DetectedElements(t *testing.T) {
	score := 0.91
	d := sampleData(i18n.English)
	d.Detections = &vision.VisionResult{
		TextAnnotations: []vision.TextAnnotation{
			{Description: "Total: $45.00"},
			{Description: "Total:"},
			{Description: "$45.00"},
		},
		LabelAnnotations:           []vision.LabelAnnotation{{Description: "Screenshot", Score: &score}},
		LocalizedObjectAnnotations: []vision.ObjectAnnotation{{Name: "Button"}},
	}

	out, err := NewRenderer().JSON(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc struct {
		DetectedElements struct {
			FullText string                    `json:"fullText"`
			Labels   []vision.LabelAnnotation  `json:"labels"`
			Text     []vision.TextAnnotation   `json:"text"`
			Objects  []vision.ObjectAnnotation `json:"objects"`
		} `json:"detectedElements"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	got := doc.DetectedElements
	if got.FullText != "Total: $45.00" {
		t.Errorf("unexpected full text %q", got.FullText)
	}
	if len(got.Text) != 2 || got.Text[0].Description != "Total:" {
		t.Errorf("expected the word annotations after the full text, got %+v", got.Text)
	}
	if len(got.Labels) != 1 || got.Labels[0].Score == nil || *got.Labels[0].Score != score {
		t.Errorf("unexpected labels %+v", got.Labels)
	}
	if len(got.Objects) != 1 || got.Objects[0].Description != "Button" {
		t.Errorf("expected normalized object description, got %+v", got.Objects)
	}
}

func TestJSON_EmptyListsAreArrays(t *testing.T) {
	out, err := NewRenderer().JSON(Data{ImageName: "a.png", GeneratedAt: fixedTime})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{`"analysisResults": []`, `"localizationAdvice": []`} {
		if !strings.Contains(string(out), want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}

func TestPDF_Renders(t *testing.T) {
	for _, lang := range i18n.Supported() {
		out, err := NewRenderer().PDF(sampleData(lang))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", lang, err)
		}
		if !bytes.HasPrefix(out, []byte("%PDF-")) {
			t.Errorf("%s: output is not a PDF", lang)
		}
	}
}

func TestPDF_EmbedsScreenshot(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 64, 40))); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}

	d := sampleData(i18n.English)
	d.Image = buf.Bytes()
	d.ImageType = "image/png"
	d.Dimensions = analysis.Dimensions{Width: 64, Height: 40}

	out, err := NewRenderer().PDF(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(out, []byte("/Subtype /Image")) {
		t.Error("expected embedded image in PDF")
	}
}

func TestPDF_CorruptScreenshotIsSkipped(t *testing.T) {
	d := sampleData(i18n.English)
	d.Image = []byte("not a png")
	d.ImageType = "image/png"

	out, err := NewRenderer().PDF(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytes.Contains(out, []byte("/Subtype /Image")) {
		t.Error("expected corrupt screenshot to be skipped")
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := NewRenderer().Render(Format("docx"), sampleData(i18n.English))
	if !errors.Is(err, ErrGeneration) {
		t.Errorf("expected ErrGeneration, got %v", err)
	}
}

func TestLabels_EveryLanguageHasEveryKey(t *testing.T) {
	for _, lang := range i18n.Supported() {
		for key := range labels[i18n.English] {
			if _, ok := labels[lang][key]; !ok {
				t.Errorf("%s missing %s", lang, key)
			}
		}
	}
}
