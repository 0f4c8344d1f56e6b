// Package render turns query results into rows for display.
//
// A Panel is the output area of a query form: it is reset before every query
// so rows from a previous result never linger, and it holds either result rows
// or error rows. Renderers write a Panel to an io.Writer.
package render

import (
	"github.com/usestring/boredq/pkg/client"
)

// RowKind distinguishes result rows from error rows.
type RowKind int

const (
	RowResult RowKind = iota
	RowError
)

// Row is one line of the panel.
type Row struct {
	Kind  RowKind `json:"kind"`
	Label string  `json:"label,omitempty"`
	Value string  `json:"value"`
}

// Panel accumulates the rows of the current result.
type Panel struct {
	rows []Row
	url  string
}

// NewPanel returns an empty panel.
func NewPanel() *Panel {
	return &Panel{}
}

// Reset removes every row.
func (p *Panel) Reset() {
	p.rows = p.rows[:0]
	p.url = ""
}

// AddRow appends a label/value row.
func (p *Panel) AddRow(label, value string) {
	p.rows = append(p.rows, Row{Kind: RowResult, Label: label, Value: value})
}

// AddError appends an error row below whatever is already shown.
func (p *Panel) AddError(msg string) {
	p.rows = append(p.rows, Row{Kind: RowError, Value: msg})
}

// Show replaces the panel's content with res, or with a single error row
// when err is non-nil.
func (p *Panel) Show(res *client.Result, err error) {
	p.Reset()
	if err != nil {
		p.AddError(err.Error())
		return
	}
	if res == nil {
		return
	}
	p.url = res.URL
	for _, pair := range res.Pairs {
		p.AddRow(pair.Key, pair.Value)
	}
}

// Rows returns a copy of the current rows.
func (p *Panel) Rows() []Row {
	out := make([]Row, len(p.rows))
	copy(out, p.rows)
	return out
}

// URL returns the query URL of the result shown, if any.
func (p *Panel) URL() string {
	return p.url
}

// HasError reports whether any error row is shown.
func (p *Panel) HasError() bool {
	for _, r := range p.rows {
		if r.Kind == RowError {
			return true
		}
	}
	return false
}
