package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const DefaultEndpoint = "https://vision.googleapis.com/v1/images:annotate"

// maxResponseBytes bounds how much of a provider reply is read into memory.
const maxResponseBytes = 16 << 20

var requestedFeatures = []feature{
	{Type: "TEXT_DETECTION"},
	{Type: "OBJECT_LOCALIZATION"},
	{Type: "LABEL_DETECTION"},
}

// Client calls the remote image-annotation API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		apiKey:     cfg.APIKey,
	}
}

type annotateRequest struct {
	Requests []imageRequest `json:"requests"`
}

type imageRequest struct {
	Image    imageContent `json:"image"`
	Features []feature    `json:"features"`
}

type imageContent struct {
	Content string `json:"content"`
}

type feature struct {
	Type string `json:"type"`
}

// Analyze sends one annotation request for image and normalizes the reply.
func (c *Client) Analyze(ctx context.Context, image []byte) (*VisionResult, error) {
	if len(image) == 0 {
		return nil, ErrInvalidImage
	}

	body, err := json.Marshal(annotateRequest{
		Requests: []imageRequest{{
			Image:    imageContent{Content: base64.StdEncoding.EncodeToString(image)},
			Features: requestedFeatures,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	target, err := c.requestURL()
	if err != nil {
		return nil, &Failure{Kind: KindAPI, Message: "invalid vision endpoint", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var perr providerError
		if err := json.Unmarshal(payload, &perr); err != nil {
			perr.Error = nil
		}
		return nil, classifyProviderError(resp.StatusCode, perr.Error)
	}

	return Normalize(payload)
}

func (c *Client) requestURL() (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// IsAvailable reports whether a credential is configured. No request is made.
func (c *Client) IsAvailable(_ context.Context) bool {
	return c != nil && c.apiKey != ""
}
