package vision

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"
)

type fakeAnalyzer struct {
	result *VisionResult
	err    error
	calls  int
}

func (f *fakeAnalyzer) Analyze(context.Context, []byte) (*VisionResult, error) {
	f.calls++
	return f.result, f.err
}

func TestOrchestrator_RemoteSuccess(t *testing.T) {
	remote := &fakeAnalyzer{result: &VisionResult{LabelAnnotations: []LabelAnnotation{{Description: "Person"}}}}
	local := &fakeAnalyzer{result: Empty()}
	o := NewOrchestrator(remote, local, testLogger())

	img := pngImage(t, 640, 480)
	det, err := o.Detect(context.Background(), base64.StdEncoding.EncodeToString(img))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if det.Source != SourceRemote {
		t.Errorf("expected remote source, got %s", det.Source)
	}
	if det.Width != 640 || det.Height != 480 {
		t.Errorf("expected 640x480, got %dx%d", det.Width, det.Height)
	}
	if det.Result.TextAnnotations == nil {
		t.Error("result should be normalized")
	}
	if local.calls != 0 {
		t.Error("local path should not run after remote success")
	}
}

func TestOrchestrator_RecoverableFailuresFallBack(t *testing.T) {
	for _, kind := range []FailureKind{KindBilling, KindNetwork} {
		t.Run(string(kind), func(t *testing.T) {
			remote := &fakeAnalyzer{err: &Failure{Kind: kind, Message: "x"}}
			local := &fakeAnalyzer{result: &VisionResult{LabelAnnotations: uiLabels}}
			o := NewOrchestrator(remote, local, testLogger())

			det, err := o.DetectBytes(context.Background(), pngImage(t, 10, 10))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if det.Source != SourceLocal {
				t.Errorf("expected local source, got %s", det.Source)
			}
			if remote.calls != 1 || local.calls != 1 {
				t.Errorf("expected one attempt per path, got remote=%d local=%d", remote.calls, local.calls)
			}
		})
	}
}

func TestOrchestrator_APIFailurePropagates(t *testing.T) {
	apiErr := &Failure{Kind: KindAPI, Message: "Bad image data."}
	remote := &fakeAnalyzer{err: apiErr}
	local := &fakeAnalyzer{result: Empty()}
	o := NewOrchestrator(remote, local, testLogger())

	_, err := o.DetectBytes(context.Background(), []byte{1})
	if !errors.Is(err, apiErr) {
		t.Errorf("expected api failure to propagate unchanged, got %v", err)
	}
	if local.calls != 0 {
		t.Error("local path should not run for api failures")
	}
}

func TestOrchestrator_NormalizationFailurePropagates(t *testing.T) {
	remote := &fakeAnalyzer{err: &Failure{Kind: KindNormalization}}
	o := NewOrchestrator(remote, &fakeAnalyzer{result: Empty()}, testLogger())

	_, err := o.DetectBytes(context.Background(), []byte{1})
	if !IsKind(err, KindNormalization) {
		t.Errorf("expected normalization failure, got %v", err)
	}
}

func TestOrchestrator_NoRemoteUsesLocal(t *testing.T) {
	local := &fakeAnalyzer{result: &VisionResult{LabelAnnotations: uiLabels}}
	o := NewOrchestrator(nil, local, testLogger())

	if o.RemoteConfigured() {
		t.Error("expected no remote configured")
	}
	det, err := o.DetectBytes(context.Background(), []byte{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if det.Source != SourceLocal || local.calls != 1 {
		t.Errorf("expected one local call, got source=%s calls=%d", det.Source, local.calls)
	}
}

func TestOrchestrator_LocalFailureDegradesToEmpty(t *testing.T) {
	local := &fakeAnalyzer{err: &Failure{Kind: KindLocal, Err: ErrUndecodableImage}}
	o := NewOrchestrator(&fakeAnalyzer{err: &Failure{Kind: KindNetwork}}, local, testLogger())

	det, err := o.DetectBytes(context.Background(), []byte("garbage"))
	if err != nil {
		t.Fatalf("local failure should not surface, got %v", err)
	}
	if det.Source != SourceLocal || !det.Result.IsEmpty() || det.Result.TextAnnotations == nil {
		t.Errorf("expected empty-but-valid local result, got %+v", det)
	}
}

func TestOrchestrator_CallerDeadlineIsReturned(t *testing.T) {
	server := hangingServer(t)
	remote := NewClient(Config{APIKey: "k", Endpoint: server.URL, Timeout: 10 * time.Second})
	local := &fakeAnalyzer{result: &VisionResult{LabelAnnotations: uiLabels}}
	o := NewOrchestrator(remote, local, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	det, err := o.DetectBytes(ctx, pngImage(t, 640, 480))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got det=%+v err=%v", det, err)
	}
	if local.calls != 0 {
		t.Error("local path should not run once the caller context is done")
	}
}

func TestOrchestrator_LocalDeadlinePropagates(t *testing.T) {
	local := &fakeAnalyzer{err: context.DeadlineExceeded}
	o := NewOrchestrator(nil, local, testLogger())

	if _, err := o.DetectBytes(context.Background(), pngImage(t, 10, 10)); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestOrchestrator_InvalidBase64(t *testing.T) {
	o := NewOrchestrator(nil, &fakeAnalyzer{result: Empty()}, testLogger())
	for _, in := range []string{"", "%%%", "data:image/png,abc"} {
		if _, err := o.Detect(context.Background(), in); !errors.Is(err, ErrInvalidImage) {
			t.Errorf("%q: expected ErrInvalidImage, got %v", in, err)
		}
	}
}

func TestDecodeBase64_DataURL(t *testing.T) {
	got, err := DecodeBase64("data:image/png;base64,AQID")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "\x01\x02\x03" {
		t.Errorf("unexpected bytes %v", got)
	}
}
