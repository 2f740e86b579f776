//go:build !tesseract

package vision

import (
	"context"
	"log/slog"
)

type unavailableEngine struct{}

// NewOCREngine returns an engine that always reports ErrOCRUnavailable. Build
// with -tags tesseract to link the Tesseract engine.
func NewOCREngine(_ *slog.Logger) OCREngine {
	return unavailableEngine{}
}

func (unavailableEngine) Recognize(context.Context, []byte) ([]Word, error) {
	return nil, ErrOCRUnavailable
}

func (unavailableEngine) Close() error {
	return nil
}
