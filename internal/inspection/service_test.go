package inspection

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"io"
	"log/slog"
	"testing"

	"github.com/eleven-am/uxlens/internal/i18n"
	"github.com/eleven-am/uxlens/internal/shared"
	"github.com/eleven-am/uxlens/internal/vision"
)

type fakeDetector struct {
	result *vision.VisionResult
	source vision.Source
	err    error
	during func()
}

func (f *fakeDetector) DetectBytes(ctx context.Context, img []byte) (*vision.Detection, error) {
	if f.during != nil {
		f.during()
	}
	if f.err != nil {
		return nil, f.err
	}
	source := f.source
	if source == "" {
		source = vision.SourceRemote
	}
	return &vision.Detection{Result: vision.NormalizeResult(f.result), Source: source}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func newTestService(det Detector, store Store) *Service {
	return NewService(det, nil, store, Config{DefaultMarket: "US"}, testLogger())
}

func totalResult() *vision.VisionResult {
	return &vision.VisionResult{TextAnnotations: []vision.TextAnnotation{
		{Description: "Total: $45.00"},
		{Description: "Total:"},
		{Description: "$45.00"},
	}}
}

func TestService_Analyze_FinlandScenario(t *testing.T) {
	svc := newTestService(&fakeDetector{result: totalResult()}, NewMemoryStore())

	r, err := svc.Analyze(context.Background(), Request{
		SessionID:   "sess_a",
		ImageBase64: base64.StdEncoding.EncodeToString(pngBytes(t, 1280, 800)),
		ImageName:   "cart.png",
		Language:    "en",
		Market:      "FI",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(r.Findings) != 1 || r.Findings[0].ID != "text-content" {
		t.Errorf("expected one text finding, got %+v", r.Findings)
	}
	if len(r.Advice) == 0 || r.Advice[0].ID != "dynamic-currency" {
		t.Fatalf("expected dynamic-currency first, got %+v", r.Advice)
	}
	if r.Dimensions.Width != 1280 || r.Dimensions.Height != 800 {
		t.Errorf("expected dimensions from image header, got %+v", r.Dimensions)
	}
	if r.Image.MimeType != "image/png" || r.Image.Name != "cart.png" || r.Image.ID == "" {
		t.Errorf("unexpected image metadata %+v", r.Image)
	}
	if r.Sequence != 1 {
		t.Errorf("expected sequence 1, got %d", r.Sequence)
	}
}

func TestService_Analyze_Defaults(t *testing.T) {
	svc := newTestService(&fakeDetector{result: vision.Empty()}, nil)

	r, err := svc.Analyze(context.Background(), Request{Image: pngBytes(t, 300, 500), Width: 1000, Height: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.SessionID == "" {
		t.Error("expected a generated session id")
	}
	if r.Market != "US" || r.Language != i18n.English {
		t.Errorf("expected defaults US/en, got %s/%s", r.Market, r.Language)
	}
	if r.Dimensions.Width != 1000 {
		t.Errorf("caller dimensions should win, got %+v", r.Dimensions)
	}
	if len(r.Findings) != 0 {
		t.Errorf("expected no findings, got %+v", r.Findings)
	}
	if r.Image.Name != "screenshot.png" {
		t.Errorf("expected generated image name, got %s", r.Image.Name)
	}
}

func TestService_Analyze_Validation(t *testing.T) {
	svc := NewService(&fakeDetector{result: vision.Empty()}, nil, nil, Config{MaxUploadBytes: 64}, testLogger())

	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"invalid base64", Request{ImageBase64: "%%%"}, vision.ErrInvalidImage},
		{"too large", Request{Image: make([]byte, 65)}, ErrImageTooLarge},
		{"not an image", Request{Image: []byte("hello")}, ErrUnsupportedImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Analyze(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestService_Analyze_StaleResultIsDiscarded(t *testing.T) {
	store := NewMemoryStore()
	det := &fakeDetector{result: totalResult()}
	svc := newTestService(det, store)

	det.during = func() {
		store.Next(context.Background(), "sess_a")
	}

	_, err := svc.Analyze(context.Background(), Request{SessionID: "sess_a", Image: pngBytes(t, 500, 500)})
	if !errors.Is(err, ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded, got %v", err)
	}
	if !errors.Is(err, shared.ErrConflict) {
		t.Errorf("expected superseded analysis to be a conflict, got %v", err)
	}
	if _, err := store.Get(context.Background(), "sess_a"); err == nil {
		t.Error("stale result must not be stored")
	}
}

func TestService_Analyze_DetectorErrorPropagates(t *testing.T) {
	failure := &vision.Failure{Kind: vision.KindAPI, Message: "Bad image data."}
	svc := newTestService(&fakeDetector{err: failure}, nil)

	_, err := svc.Analyze(context.Background(), Request{Image: pngBytes(t, 500, 500)})
	if !errors.Is(err, failure) {
		t.Errorf("expected detector failure, got %v", err)
	}
}

func TestService_Latest_Relocalizes(t *testing.T) {
	svc := newTestService(&fakeDetector{result: totalResult()}, NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Analyze(ctx, Request{SessionID: "sess_a", Image: pngBytes(t, 500, 500), Market: "FI"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	same, err := svc.Latest(ctx, "sess_a", "")
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	es, err := svc.Latest(ctx, "sess_a", "es")
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}

	if es.Language != i18n.Spanish {
		t.Errorf("expected es, got %s", es.Language)
	}
	if es.Findings[0].Title == same.Findings[0].Title {
		t.Error("expected localized finding text")
	}
	if same.Language != i18n.English {
		t.Error("stored report should keep its language")
	}
}
