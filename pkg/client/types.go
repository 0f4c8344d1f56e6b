package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"
)

// Pair is one top-level field of a response, ready for display.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Result is a successful query: the top-level fields of the response body in
// the order the API returned them.
type Result struct {
	URL        string `json:"url"`
	StatusCode int    `json:"status_code"`
	Pairs      []Pair `json:"pairs"`
	Raw        []byte `json:"-"`
}

// Get returns the display value for key and whether it was present.
func (r *Result) Get(key string) (string, bool) {
	for _, p := range r.Pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Activity is the documented shape of a successful response.
type Activity struct {
	Activity      string  `json:"activity" jsonschema:"minLength=1"`
	Type          string  `json:"type" jsonschema:"enum=education,enum=recreational,enum=social,enum=diy,enum=charity,enum=cooking,enum=relaxation,enum=music,enum=busywork"`
	Participants  int     `json:"participants" jsonschema:"minimum=1"`
	Price         float64 `json:"price" jsonschema:"minimum=0,maximum=1"`
	Link          string  `json:"link,omitempty"`
	Key           string  `json:"key"`
	Accessibility float64 `json:"accessibility" jsonschema:"minimum=0,maximum=1"`
}

// ValidationError reports missing or malformed user input. No request is
// made when it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// TransportError reports a non-200 HTTP status. The body is not inspected.
type TransportError struct {
	URL        string
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("API request failed: %d", e.StatusCode)
}

// APIError reports a 200 response whose body carries an "error" field.
type APIError struct {
	URL     string
	Message string
}

func (e *APIError) Error() string {
	return "API request returned error: " + e.Message
}

// NetworkError reports a request that never produced an HTTP response:
// DNS failure, refused connection, timeout or cancellation.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("API request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError reports a 200 response whose body is not a JSON object.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("API response is not a JSON object: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// decodeResult walks the top-level object of body in order. A truthy
// "error" field turns the whole response into an *APIError.
func decodeResult(rawURL string, body []byte) (*Result, error) {
	if !json.Valid(body) {
		return nil, &DecodeError{URL: rawURL, Err: fmt.Errorf("invalid JSON")}
	}

	if v, dt, _, err := jsonparser.Get(body, "error"); err == nil && truthy(v, dt) {
		return nil, &APIError{URL: rawURL, Message: displayValue(v, dt)}
	}

	res := &Result{URL: rawURL, Raw: body, Pairs: make([]Pair, 0)}
	err := jsonparser.ObjectEach(body, func(key, value []byte, dt jsonparser.ValueType, _ int) error {
		k, err := jsonparser.ParseString(key)
		if err != nil {
			k = string(key)
		}
		res.Pairs = append(res.Pairs, Pair{Key: k, Value: displayValue(value, dt)})
		return nil
	})
	if err != nil {
		return nil, &DecodeError{URL: rawURL, Err: err}
	}
	return res, nil
}

// displayValue renders strings unescaped and everything else as compact JSON.
func displayValue(v []byte, dt jsonparser.ValueType) string {
	switch dt {
	case jsonparser.String:
		s, err := jsonparser.ParseString(v)
		if err != nil {
			return string(v)
		}
		return s
	case jsonparser.Null:
		return "null"
	case jsonparser.Object, jsonparser.Array:
		var buf bytes.Buffer
		if err := json.Compact(&buf, v); err == nil {
			return buf.String()
		}
	}
	return string(v)
}

func truthy(v []byte, dt jsonparser.ValueType) bool {
	switch dt {
	case jsonparser.String:
		return len(v) > 0
	case jsonparser.Number:
		f, err := strconv.ParseFloat(string(v), 64)
		return err != nil || f != 0
	case jsonparser.Boolean:
		return string(v) == "true"
	case jsonparser.Object, jsonparser.Array:
		var buf bytes.Buffer
		if err := json.Compact(&buf, v); err != nil {
			return true
		}
		return buf.Len() > 2
	}
	return false
}
