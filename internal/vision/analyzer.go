package vision

import "context"

// Analyzer turns raw image bytes into a canonical detection result.
type Analyzer interface {
	Analyze(ctx context.Context, image []byte) (*VisionResult, error)
}

var (
	_ Analyzer = (*Client)(nil)
	_ Analyzer = (*LocalAnalyzer)(nil)
)
