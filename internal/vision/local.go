package vision

import (
	"context"
	"image"
	"log/slog"
	"strings"
)

// Word is one OCR token with its pixel box.
type Word struct {
	Text       string
	Box        image.Rectangle
	Confidence float64
}

// OCREngine extracts words from an encoded image.
type OCREngine interface {
	Recognize(ctx context.Context, image []byte) ([]Word, error)
	Close() error
}

// uiLabels are reported for every locally analyzed screenshot. They are a fixed
// approximation, not a classification of the image.
var uiLabels = []LabelAnnotation{
	{Description: "Screenshot", Score: Score(0.95)},
	{Description: "Software", Score: Score(0.90)},
	{Description: "Font", Score: Score(0.85)},
	{Description: "Multimedia", Score: Score(0.80)},
	{Description: "Technology", Score: Score(0.75)},
}

// LocalAnalyzer produces a VisionResult on-device from OCR output.
type LocalAnalyzer struct {
	engine OCREngine
	logger *slog.Logger
}

func NewLocalAnalyzer(engine OCREngine, logger *slog.Logger) *LocalAnalyzer {
	if logger == nil {
		logger = slog.Default()
	}
	if engine == nil {
		engine = NewOCREngine(logger)
	}
	return &LocalAnalyzer{
		engine: engine,
		logger: logger.With("component", "local-analyzer"),
	}
}

func (a *LocalAnalyzer) Analyze(ctx context.Context, img []byte) (*VisionResult, error) {
	info, err := DecodeInfo(img)
	if err != nil {
		return nil, &Failure{Kind: KindLocal, Message: "local analysis could not read image", Err: err}
	}

	result := Empty()
	result.LabelAnnotations = append(result.LabelAnnotations, uiLabels...)

	words, err := a.engine.Recognize(ctx, img)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		a.logger.Warn("ocr failed, continuing without text",
			"error", err,
			"width", info.Width,
			"height", info.Height)
		return result, nil
	}

	result.TextAnnotations = textAnnotations(words)

	a.logger.Debug("local analysis complete",
		"format", info.Format,
		"words", len(words))

	return result, nil
}

func (a *LocalAnalyzer) Close() error {
	return a.engine.Close()
}

// textAnnotations lays out OCR words the way the remote provider does: the
// full text with the union box first, then one entry per word.
func textAnnotations(words []Word) []TextAnnotation {
	kept := make([]Word, 0, len(words))
	for _, w := range words {
		w.Text = strings.TrimSpace(w.Text)
		if w.Text != "" {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return []TextAnnotation{}
	}

	texts := make([]string, 0, len(kept))
	union := kept[0].Box
	for _, w := range kept {
		texts = append(texts, w.Text)
		union = union.Union(w.Box)
	}

	out := make([]TextAnnotation, 0, len(kept)+1)
	out = append(out, TextAnnotation{
		Description:  strings.Join(texts, " "),
		BoundingPoly: rectPoly(union),
	})
	for _, w := range kept {
		out = append(out, TextAnnotation{
			Description:  w.Text,
			BoundingPoly: rectPoly(w.Box),
		})
	}
	return out
}

func rectPoly(r image.Rectangle) *BoundingPoly {
	return &BoundingPoly{Vertices: []Vertex{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	}}
}
