// Package session runs the interactive query form on a terminal.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/usestring/boredq/internal/form"
	"github.com/usestring/boredq/pkg/client"
	"github.com/usestring/boredq/pkg/render"
)

// Querier runs one query. *fetch.Fetcher and *client.Client satisfy it.
type Querier interface {
	Query(ctx context.Context, mode client.Mode, key string, params []client.ParameterSpec) (*client.Result, error)
}

// Checker inspects a successful response body and returns problems to show
// as extra error rows.
type Checker interface {
	Validate(data []byte) []string
}

// Menu commands.
const (
	cmdRandom = "1"
	cmdKey    = "2"
	cmdParams = "3"
	cmdClear  = "c"
	cmdQuit   = "q"

	// clearValue empties a field when typed at a field prompt.
	clearValue = "-"
)

const menu = `Option 1: Query for random entry        [1]
Option 2: Query by key                  [2]
Option 3: Query by multiple parameters  [3]
Clear fields [c]   Quit [q]
`

// Session is one run of the query form.
type Session struct {
	in       *bufio.Scanner
	out      io.Writer
	querier  Querier
	renderer render.Renderer
	form     *form.Form
	panel    *render.Panel

	// Prompts enables the menu and field prompts. Turn it off when input is
	// piped so only results are written.
	Prompts bool
	// Checker, when set, validates every successful body.
	Checker Checker
}

// New creates a session reading commands from in and writing to out.
func New(in io.Reader, out io.Writer, q Querier, r render.Renderer) *Session {
	return &Session{
		in:       bufio.NewScanner(in),
		out:      out,
		querier:  q,
		renderer: r,
		form:     form.NewDefault(),
		panel:    render.NewPanel(),
		Prompts:  true,
	}
}

// Form returns the session's form state.
func (s *Session) Form() *form.Form {
	return s.form
}

// Panel returns the output panel of the last query.
func (s *Session) Panel() *render.Panel {
	return s.panel
}

// Run reads commands until quit, end of input, or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.prompt("\n" + menu + "> ")
		line, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}

		switch strings.ToLower(line) {
		case "":
			continue
		case cmdQuit, "quit", "exit":
			return nil
		case cmdClear, "clear":
			s.form.Clear()
			s.prompt("Fields cleared.\n")
			continue
		case cmdRandom:
			s.query(ctx, client.ModeRandom)
		case cmdKey:
			if !s.editKey() {
				return s.in.Err()
			}
			s.query(ctx, client.ModeByKey)
		case cmdParams:
			if !s.editParams() {
				return s.in.Err()
			}
			s.query(ctx, client.ModeByParameters)
		default:
			s.panel.Reset()
			s.panel.AddError(fmt.Sprintf("unknown option %q", line))
		}

		if err := s.renderer.Render(s.out, s.panel); err != nil {
			return fmt.Errorf("rendering result: %w", err)
		}
	}
}

func (s *Session) query(ctx context.Context, mode client.Mode) {
	res, err := s.querier.Query(ctx, mode, s.form.Key, s.form.Specs())
	if err != nil {
		slog.Debug("query failed", slog.String("mode", mode.String()), slog.String("error", err.Error()))
	}
	s.panel.Show(res, err)
	if err == nil && s.Checker != nil && res != nil {
		for _, problem := range s.Checker.Validate(res.Raw) {
			s.panel.AddError("schema: " + problem)
		}
	}
}

func (s *Session) editKey() bool {
	v, ok := s.field("Key", s.form.Key)
	if !ok {
		return false
	}
	s.form.Key = v
	return true
}

func (s *Session) editParams() bool {
	specs := s.form.Specs()
	current := make(map[string]client.ParameterSpec, len(specs))
	for _, p := range specs {
		current[p.Name] = p
	}

	for _, l := range s.form.Labels() {
		p := current[l.Name]
		caption := strings.TrimSuffix(l.Text, ":")
		if l.Field == form.FieldExact {
			v, ok := s.field(caption, p.Exact)
			if !ok {
				return false
			}
			s.form.Set(l.Name, form.FieldExact, v)
			continue
		}

		lo, ok := s.field(caption+" min", p.Min)
		if !ok {
			return false
		}
		hi, ok := s.field(caption+" max", p.Max)
		if !ok {
			return false
		}
		s.form.Set(l.Name, form.FieldMin, lo)
		s.form.Set(l.Name, form.FieldMax, hi)
	}
	return true
}

// field prompts for one value. An empty line keeps current, "-" clears it.
func (s *Session) field(caption, current string) (string, bool) {
	if current != "" {
		s.prompt(fmt.Sprintf("%s [%s]: ", caption, current))
	} else {
		s.prompt(caption + ": ")
	}
	line, ok := s.readLine()
	if !ok {
		return "", false
	}
	switch line {
	case "":
		return current, true
	case clearValue:
		return "", true
	}
	return line, true
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) prompt(text string) {
	if s.Prompts {
		fmt.Fprint(s.out, text)
	}
}
