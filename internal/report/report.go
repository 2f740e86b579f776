package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/eleven-am/uxlens/internal/analysis"
	"github.com/eleven-am/uxlens/internal/i18n"
	"github.com/eleven-am/uxlens/internal/localization"
	"github.com/eleven-am/uxlens/internal/vision"
)

// ErrGeneration marks a failure to produce a report document.
var ErrGeneration = errors.New("report generation failed")

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "application/pdf"
}

// Data is everything a rendered report shows.
type Data struct {
	ImageName   string
	Image       []byte
	ImageType   string
	Language    i18n.Language
	MarketCode  string
	MarketName  string
	Source      string
	Dimensions  analysis.Dimensions
	Findings    []analysis.Finding
	Advice      []localization.Advice
	Detections  *vision.VisionResult
	GeneratedAt time.Time
}

// FileName builds UX_Analysis_<name without extension>_<YYYY-MM-DD>.<format>.
func FileName(imageName string, format Format, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(imageName), filepath.Ext(imageName))
	if base == "" || base == "." || base == "/" {
		base = "screenshot"
	}
	return fmt.Sprintf("UX_Analysis_%s_%s.%s", base, now.Format("2006-01-02"), format)
}

type Renderer struct {
	now func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

// Render dispatches to the renderer for format.
func (r *Renderer) Render(format Format, d Data) ([]byte, error) {
	switch format {
	case FormatJSON:
		return r.JSON(d)
	case FormatPDF:
		return r.PDF(d)
	}
	return nil, fmt.Errorf("%w: unknown format %q", ErrGeneration, format)
}

func (r *Renderer) timestamp(d Data) time.Time {
	if !d.GeneratedAt.IsZero() {
		return d.GeneratedAt
	}
	return r.now()
}
