package vision

import (
	"bytes"
	"encoding/json"
)

const defaultObjectName = "Object"

type rawResponse struct {
	TextAnnotations            json.RawMessage `json:"textAnnotations"`
	LabelAnnotations           json.RawMessage `json:"labelAnnotations"`
	LocalizedObjectAnnotations json.RawMessage `json:"localizedObjectAnnotations"`
	Error                      *providerStatus `json:"error"`
}

type rawEnvelope struct {
	Responses []json.RawMessage `json:"responses"`
}

// Normalize parses a provider response, either the batch envelope or a single
// response object, into the canonical shape. Only unparsable input fails.
func Normalize(raw []byte) (*VisionResult, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, &Failure{Kind: KindNormalization, Message: "empty provider response"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &Failure{Kind: KindNormalization, Message: "unparsable provider response", Err: err}
	}

	if _, ok := fields["responses"]; ok {
		var env rawEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, &Failure{Kind: KindNormalization, Message: "unparsable responses envelope", Err: err}
		}
		if len(env.Responses) == 0 {
			return Empty(), nil
		}
		raw = env.Responses[0]
	}

	var resp rawResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &Failure{Kind: KindNormalization, Message: "unparsable annotation response", Err: err}
	}
	if resp.Error != nil && (resp.Error.Message != "" || resp.Error.Code != 0) {
		return nil, classifyProviderError(resp.Error.Code, resp.Error)
	}

	result := &VisionResult{}
	decodeList(resp.TextAnnotations, &result.TextAnnotations)
	decodeList(resp.LabelAnnotations, &result.LabelAnnotations)
	decodeList(resp.LocalizedObjectAnnotations, &result.LocalizedObjectAnnotations)

	return NormalizeResult(result), nil
}

// decodeList leaves dst nil when the field is absent, null or malformed.
func decodeList[T any](raw json.RawMessage, dst *[]T) {
	if len(raw) == 0 {
		return
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return
	}
	*dst = items
}

// NormalizeResult returns a copy of r where every list is non-nil and every
// object carries a description. It is the identity on canonical input.
func NormalizeResult(r *VisionResult) *VisionResult {
	out := Empty()
	if r == nil {
		return out
	}

	out.TextAnnotations = append(out.TextAnnotations, r.TextAnnotations...)
	out.LabelAnnotations = append(out.LabelAnnotations, r.LabelAnnotations...)

	for _, o := range r.LocalizedObjectAnnotations {
		if o.Description == "" {
			o.Description = o.Name
		}
		if o.Description == "" {
			o.Description = defaultObjectName
		}
		if o.Name == "" {
			o.Name = o.Description
		}
		out.LocalizedObjectAnnotations = append(out.LocalizedObjectAnnotations, o)
	}
	return out
}
