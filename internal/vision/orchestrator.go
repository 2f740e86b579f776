package vision

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

type Orchestrator struct {
	remote Analyzer
	local  Analyzer
	logger *slog.Logger
}

// NewOrchestrator wires the remote and local paths. A nil remote means no
// credential is configured and every request goes straight to the local path.
func NewOrchestrator(remote Analyzer, local Analyzer, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	if local == nil {
		local = NewLocalAnalyzer(nil, logger)
	}
	return &Orchestrator{
		remote: remote,
		local:  local,
		logger: logger.With("component", "vision-orchestrator"),
	}
}

// RemoteConfigured reports whether a remote provider will be tried first.
func (o *Orchestrator) RemoteConfigured() bool {
	return o.remote != nil
}

// Detect decodes a base64 image and returns its detection result. Billing and
// network failures of the remote provider fall back to the local path; local
// failures degrade to an empty result.
func (o *Orchestrator) Detect(ctx context.Context, imageBase64 string) (*Detection, error) {
	img, err := DecodeBase64(imageBase64)
	if err != nil {
		return nil, err
	}
	return o.DetectBytes(ctx, img)
}

// DetectBytes is Detect for an already decoded image.
func (o *Orchestrator) DetectBytes(ctx context.Context, img []byte) (*Detection, error) {
	if len(img) == 0 {
		return nil, ErrInvalidImage
	}

	det := &Detection{}
	if info, err := DecodeInfo(img); err == nil {
		det.Width, det.Height = info.Width, info.Height
	}

	if o.remote != nil {
		result, err := o.remote.Analyze(ctx, img)
		if err == nil {
			det.Result = NormalizeResult(result)
			det.Source = SourceRemote
			return det, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !recoverable(err) {
			return nil, err
		}
		o.logger.Warn("remote vision unavailable, using local analysis", "error", err)
	}

	det.Source = SourceLocal
	result, err := o.local.Analyze(ctx, img)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		o.logger.Error("local analysis failed, returning empty result", "error", err)
		det.Result = Empty()
		return det, nil
	}

	det.Result = NormalizeResult(result)
	return det, nil
}

// DecodeBase64 accepts plain base64 or a data URL.
func DecodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		idx := strings.Index(s, ",")
		if idx < 0 || !strings.HasSuffix(s[:idx], ";base64") {
			return nil, fmt.Errorf("%w: malformed data url", ErrInvalidImage)
		}
		s = s[idx+1:]
	}
	if s == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(s)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return data, nil
}
