package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Renderer writes a panel to w.
type Renderer interface {
	Render(w io.Writer, p *Panel) error
}

// TextRenderer prints "label: value" rows with values aligned in one column
// and error rows as "ERROR: <msg>" in red.
type TextRenderer struct {
	// ShowURL prints the query URL above the rows.
	ShowURL bool

	errColor *color.Color
}

// NewTextRenderer creates a text renderer. Color follows fatih/color's
// detection: it is off when stdout is not a terminal or NO_COLOR is set.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{errColor: color.New(color.FgRed, color.Bold)}
}

// WithColor forces color on or off.
func (r *TextRenderer) WithColor(enabled bool) *TextRenderer {
	if enabled {
		r.errColor.EnableColor()
	} else {
		r.errColor.DisableColor()
	}
	return r
}

func (r *TextRenderer) Render(w io.Writer, p *Panel) error {
	if r.ShowURL && p.URL() != "" {
		if _, err := fmt.Fprintf(w, "# %s\n", p.URL()); err != nil {
			return err
		}
	}

	width := 0
	for _, row := range p.rows {
		if row.Kind == RowResult {
			width = max(width, utf8.RuneCountInString(row.Label)+1)
		}
	}

	for _, row := range p.rows {
		var err error
		switch row.Kind {
		case RowError:
			_, err = r.errColor.Fprintln(w, "ERROR: "+row.Value)
		default:
			label := row.Label + ":"
			pad := strings.Repeat(" ", width-utf8.RuneCountInString(label))
			_, err = fmt.Fprintf(w, "%s%s %s\n", label, pad, row.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// JSONRenderer writes the panel as one JSON object per call:
// {"url":...,"pairs":[...]} or {"error":...}.
type JSONRenderer struct {
	Indent bool
}

type jsonPanel struct {
	URL   string     `json:"url,omitempty"`
	Pairs []jsonPair `json:"pairs,omitempty"`
	Error string     `json:"error,omitempty"`
}

type jsonPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (r *JSONRenderer) Render(w io.Writer, p *Panel) error {
	out := jsonPanel{URL: p.URL()}
	var errs []string
	for _, row := range p.rows {
		if row.Kind == RowError {
			errs = append(errs, row.Value)
			continue
		}
		out.Pairs = append(out.Pairs, jsonPair{Key: row.Label, Value: row.Value})
	}
	out.Error = strings.Join(errs, "; ")

	enc := json.NewEncoder(w)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
