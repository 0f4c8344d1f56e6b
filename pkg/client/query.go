package client

import (
	"fmt"
	"net/url"
	"strings"
)

// Mode selects how a query URL is built.
type Mode int

const (
	ModeRandom Mode = iota
	ModeByKey
	ModeByParameters
)

func (m Mode) String() string {
	switch m {
	case ModeRandom:
		return "random"
	case ModeByKey:
		return "key"
	case ModeByParameters:
		return "params"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "random", "key" and "params" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random":
		return ModeRandom, nil
	case "key":
		return ModeByKey, nil
	case "params", "parameters":
		return ModeByParameters, nil
	}
	return 0, &ValidationError{Message: fmt.Sprintf("unknown query mode %q", s)}
}

// Query parameter names recognized by the API.
const (
	ParamType          = "type"
	ParamParticipants  = "participants"
	ParamPrice         = "price"
	ParamAccessibility = "accessibility"
)

// ParameterSpec is one filter of a parameter query. Exact takes precedence
// over Min and Max. Min and Max are ignored unless AllowRange is set.
type ParameterSpec struct {
	Name       string `json:"name"`
	AllowRange bool   `json:"allow_range"`
	Exact      string `json:"exact,omitempty"`
	Min        string `json:"min,omitempty"`
	Max        string `json:"max,omitempty"`
}

// IsEmpty reports whether the spec contributes nothing to a query.
func (p ParameterSpec) IsEmpty() bool {
	if p.Exact != "" {
		return false
	}
	return !p.AllowRange || (p.Min == "" && p.Max == "")
}

// DefaultParameters returns the API's filters, empty, in query order.
func DefaultParameters() []ParameterSpec {
	return []ParameterSpec{
		{Name: ParamType},
		{Name: ParamParticipants, AllowRange: true},
		{Name: ParamPrice, AllowRange: true},
		{Name: ParamAccessibility, AllowRange: true},
	}
}

// Build returns the query URL for mode against baseURL.
//
// Values are query-escaped. Parameters appear in the order given, and a
// parameter query with no values is the bare base URL.
func Build(baseURL string, mode Mode, key string, params []ParameterSpec) (string, error) {
	switch mode {
	case ModeRandom:
		return baseURL, nil

	case ModeByKey:
		if key == "" {
			return "", &ValidationError{Message: "No key provided"}
		}
		return baseURL + "?key=" + url.QueryEscape(key), nil

	case ModeByParameters:
		qb := newQueryBuilder()
		for _, p := range params {
			if p.Exact != "" {
				qb.add(p.Name, p.Exact)
				continue
			}
			if !p.AllowRange {
				continue
			}
			if p.Min != "" {
				qb.add("min"+p.Name, p.Min)
			}
			if p.Max != "" {
				qb.add("max"+p.Name, p.Max)
			}
		}
		if qb.empty() {
			return baseURL, nil
		}
		return baseURL + "?" + qb.String(), nil
	}

	return "", &ValidationError{Message: fmt.Sprintf("unknown query mode %d", int(mode))}
}

// queryBuilder joins name=value pairs with '&' without reordering them,
// which url.Values.Encode would do.
type queryBuilder struct {
	sb strings.Builder
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{}
}

func (q *queryBuilder) add(name, value string) {
	if q.sb.Len() > 0 {
		q.sb.WriteByte('&')
	}
	q.sb.WriteString(url.QueryEscape(name))
	q.sb.WriteByte('=')
	q.sb.WriteString(url.QueryEscape(value))
}

func (q *queryBuilder) empty() bool {
	return q.sb.Len() == 0
}

func (q *queryBuilder) String() string {
	return q.sb.String()
}
