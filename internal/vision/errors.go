package vision

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
	"syscall"
)

var (
	ErrInvalidImage     = errors.New("invalid image payload")
	ErrOCRUnavailable   = errors.New("ocr engine unavailable")
	ErrUndecodableImage = errors.New("image could not be decoded")
)

type FailureKind string

const (
	KindNormalization FailureKind = "normalization"
	KindAPI           FailureKind = "api"
	KindBilling       FailureKind = "billing"
	KindNetwork       FailureKind = "network"
	KindLocal         FailureKind = "local"
)

// Failure is a classified analysis error.
type Failure struct {
	Kind       FailureKind
	Message    string
	StatusCode int
	Err        error
}

func (f *Failure) Error() string {
	msg := f.Message
	if msg == "" && f.Err != nil {
		msg = f.Err.Error()
	}
	if f.StatusCode != 0 {
		return fmt.Sprintf("vision %s failure (status %d): %s", f.Kind, f.StatusCode, msg)
	}
	return fmt.Sprintf("vision %s failure: %s", f.Kind, msg)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func IsKind(err error, kind FailureKind) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == kind
}

// recoverable failures are absorbed by the orchestrator's local fallback.
func recoverable(err error) bool {
	return IsKind(err, KindBilling) || IsKind(err, KindNetwork)
}

type providerError struct {
	Error *providerStatus `json:"error"`
}

type providerStatus struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func classifyProviderError(httpStatus int, st *providerStatus) *Failure {
	msg := ""
	status := ""
	if st != nil {
		msg = st.Message
		status = st.Status
	}
	if msg == "" {
		msg = fmt.Sprintf("provider returned status %d", httpStatus)
	}

	kind := KindAPI
	switch {
	case strings.Contains(strings.ToLower(msg), "billing"):
		kind = KindBilling
	case status == "PERMISSION_DENIED" || status == "UNAUTHENTICATED":
		kind = KindBilling
	case httpStatus == 401 || httpStatus == 403:
		kind = KindBilling
	}
	return &Failure{Kind: kind, Message: msg, StatusCode: httpStatus}
}

// classifyTransportError separates network failures, which fall back to local
// OCR, from everything else. A cancelled or expired caller context is
// returned as is.
func classifyTransportError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	cause := err
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		cause = urlErr.Err
	}

	if isNetworkError(cause) {
		return &Failure{Kind: KindNetwork, Message: err.Error(), Err: err}
	}
	return &Failure{Kind: KindAPI, Message: err.Error(), Err: err}
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return looksLikeNetwork(err.Error())
}

func looksLikeNetwork(msg string) bool {
	msg = strings.ToLower(msg)
	for _, hint := range []string{"network", "connection", "dial", "timeout", "no such host"} {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}
