package inspection

import (
	"errors"
	"fmt"
	"time"

	"github.com/eleven-am/uxlens/internal/analysis"
	"github.com/eleven-am/uxlens/internal/i18n"
	"github.com/eleven-am/uxlens/internal/localization"
	"github.com/eleven-am/uxlens/internal/report"
	"github.com/eleven-am/uxlens/internal/rules"
	"github.com/eleven-am/uxlens/internal/shared"
	"github.com/eleven-am/uxlens/internal/vision"
)

var (
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageTooLarge    = errors.New("image exceeds the upload limit")
	ErrSuperseded       = fmt.Errorf("analysis superseded by a newer request: %w", shared.ErrConflict)
)

// SizeError reports an image over the upload limit. It matches ErrImageTooLarge.
type SizeError struct {
	Size  int64
	Limit int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: %d bytes, limit %d", ErrImageTooLarge, e.Size, e.Limit)
}

func (e *SizeError) Is(target error) bool {
	return target == ErrImageTooLarge
}

// DefaultMaxUploadBytes is the largest accepted image payload.
const DefaultMaxUploadBytes = 10 << 20

var acceptedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadedImage describes the analyzed image. It is never mutated after creation.
type UploadedImage struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mimeType"`
	UploadDate time.Time `json:"uploadDate"`
}

type Request struct {
	SessionID   string
	ImageBase64 string
	Image       []byte
	ImageName   string
	Language    string
	Market      string
	Width       int
	Height      int
}

// Report is one accepted analysis of a session.
type Report struct {
	SessionID   string                `json:"sessionId"`
	Sequence    int64                 `json:"sequence"`
	Image       UploadedImage         `json:"image"`
	Language    i18n.Language         `json:"language"`
	Market      string                `json:"market"`
	Source      vision.Source         `json:"source"`
	Dimensions  analysis.Dimensions   `json:"dimensions"`
	Findings    []analysis.Finding    `json:"findings"`
	Advice      []localization.Advice `json:"advice"`
	Summary     analysis.Summary      `json:"summary"`
	Vision      *vision.VisionResult  `json:"vision,omitempty"`
	GeneratedAt time.Time             `json:"generatedAt"`
}

// ReportData prepares the report for rendering. The market is shown by its
// localized name when markets knows it.
func (r *Report) ReportData(markets *rules.Store) report.Data {
	name := r.Market
	if m, ok := markets.Lookup(r.Market); ok {
		name = m.DisplayName(r.Language)
	}
	return report.Data{
		ImageName:   r.Image.Name,
		ImageType:   r.Image.MimeType,
		Language:    r.Language,
		MarketCode:  r.Market,
		MarketName:  name,
		Source:      string(r.Source),
		Dimensions:  r.Dimensions,
		Findings:    r.Findings,
		Advice:      r.Advice,
		Detections:  r.Vision,
		GeneratedAt: r.GeneratedAt,
	}
}

func resultKey(sessionID string) string {
	return fmt.Sprintf("inspection:%s:result", sessionID)
}

func sequenceKey(sessionID string) string {
	return fmt.Sprintf("inspection:%s:seq", sessionID)
}
