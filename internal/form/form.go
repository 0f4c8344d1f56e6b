// Package form holds the field values of the query form and turns them into
// query parameters.
package form

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/usestring/boredq/pkg/client"
)

// Field identifies one input of a parameter row.
type Field int

const (
	FieldExact Field = iota
	FieldMin
	FieldMax
)

// Form is the editable state behind the query form: the key input plus an
// exact/min/max triple per parameter. Parameters keep their declared order.
type Form struct {
	Key    string
	params []client.ParameterSpec
}

// New creates a form for params. The specs' values are copied.
func New(params []client.ParameterSpec) *Form {
	f := &Form{params: make([]client.ParameterSpec, len(params))}
	copy(f.params, params)
	return f
}

// NewDefault creates a form for the API's parameters.
func NewDefault() *Form {
	return New(client.DefaultParameters())
}

// Names returns the parameter names in order.
func (f *Form) Names() []string {
	names := make([]string, len(f.params))
	for i, p := range f.params {
		names[i] = p.Name
	}
	return names
}

// Set stores value in the given field of parameter name. It reports false
// for an unknown parameter, or a range field of an exact-only parameter.
func (f *Form) Set(name string, field Field, value string) bool {
	for i := range f.params {
		p := &f.params[i]
		if p.Name != name {
			continue
		}
		switch field {
		case FieldExact:
			p.Exact = value
		case FieldMin, FieldMax:
			if !p.AllowRange {
				return false
			}
			if field == FieldMin {
				p.Min = value
			} else {
				p.Max = value
			}
		default:
			return false
		}
		return true
	}
	return false
}

// Clear empties the key and every parameter field.
func (f *Form) Clear() {
	f.Key = ""
	for i := range f.params {
		f.params[i].Exact = ""
		f.params[i].Min = ""
		f.params[i].Max = ""
	}
}

// Specs snapshots the parameter fields. The caller owns the returned slice.
func (f *Form) Specs() []client.ParameterSpec {
	out := make([]client.ParameterSpec, len(f.params))
	copy(out, f.params)
	return out
}

// Label is the caption of one form row.
type Label struct {
	Name  string
	Field Field
	Text  string
}

// Labels lists the rows of the parameter section: "<Name> (exact):" for each
// parameter and "<Name> (range):" for those that allow a range.
func (f *Form) Labels() []Label {
	caser := cases.Title(language.English)
	var out []Label
	for _, p := range f.params {
		title := caser.String(p.Name)
		out = append(out, Label{Name: p.Name, Field: FieldExact, Text: title + " (exact):"})
		if p.AllowRange {
			out = append(out, Label{Name: p.Name, Field: FieldMin, Text: title + " (range):"})
		}
	}
	return out
}
