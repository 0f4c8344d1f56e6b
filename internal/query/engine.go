// Package query provides JQ-based filtering of API response bodies.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// Engine executes JQ expressions against response bodies.
type Engine struct{}

// NewEngine creates a new query engine.
func NewEngine() *Engine {
	return &Engine{}
}

// FilterResult contains the values a JQ expression produced.
type FilterResult struct {
	Values []any    `json:"values"`
	Errors []string `json:"errors,omitempty"`
}

// Compile parses and compiles a JQ expression so callers can report a bad
// expression before any request is made.
func (e *Engine) Compile(expression string) (*gojq.Code, error) {
	q, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}
	return code, nil
}

// Filter runs expression against a single JSON body.
func (e *Engine) Filter(data []byte, expression string) (*FilterResult, error) {
	return e.FilterMany([][]byte{data}, expression)
}

// FilterMany runs expression against each body in turn and concatenates the
// values. Per-body failures are collected in Errors rather than aborting.
func (e *Engine) FilterMany(bodies [][]byte, expression string) (*FilterResult, error) {
	code, err := e.Compile(expression)
	if err != nil {
		return nil, err
	}

	result := &FilterResult{Values: make([]any, 0)}
	for i, data := range bodies {
		label := fmt.Sprintf("body[%d]", i)

		var input any
		if err := json.Unmarshal(data, &input); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: invalid JSON: %v", label, err))
			continue
		}

		iter := code.Run(input)
		for {
			v, ok := iter.Next()
			if !ok {
				break
			}
			if err, isErr := v.(error); isErr {
				var haltErr *gojq.HaltError
				if errors.As(err, &haltErr) && haltErr.Value() == nil {
					break
				}
				result.Errors = append(result.Errors, formatJQError(label, err))
				continue
			}
			result.Values = append(result.Values, v)
		}
	}
	return result, nil
}

// FormatValue renders a JQ output value for display: strings as-is,
// everything else as compact JSON.
func FormatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func formatJQError(label string, err error) string {
	msg := err.Error()
	if strings.Contains(msg, "cannot iterate over") {
		msg += " (the expression expects an array or object here)"
	}
	return fmt.Sprintf("%s: %s", label, msg)
}
