//go:build tesseract

package vision

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
)

var ocrLanguages = []string{"eng", "spa", "fin"}

// tesseractEngine serializes access to one Tesseract handle.
type tesseractEngine struct {
	mu     sync.Mutex
	client *gosseract.Client
}

func NewOCREngine(logger *slog.Logger) OCREngine {
	if logger == nil {
		logger = slog.Default()
	}
	client := gosseract.NewClient()
	if err := client.SetLanguage(ocrLanguages...); err != nil {
		logger.Warn("failed to set OCR languages, using tesseract default", "languages", ocrLanguages, "error", err)
	}
	return &tesseractEngine{client: client}
}

func (e *tesseractEngine) Recognize(ctx context.Context, img []byte) ([]Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.client.SetImageFromBytes(img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOCRUnavailable, err)
	}

	boxes, err := e.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("tesseract recognize: %w", err)
	}
	return wordsFromBoxes(boxes), nil
}

// wordsFromBoxes drops blank detections.
func wordsFromBoxes(boxes []gosseract.BoundingBox) []Word {
	words := make([]Word, 0, len(boxes))
	for _, b := range boxes {
		text := strings.TrimSpace(b.Word)
		if text == "" {
			continue
		}
		words = append(words, Word{
			Text:       text,
			Box:        b.Box,
			Confidence: b.Confidence,
		})
	}
	return words
}

func (e *tesseractEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.client.Close()
}
