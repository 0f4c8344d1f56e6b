// Package cli implements the boredq command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/usestring/boredq/internal/cache"
	"github.com/usestring/boredq/internal/config"
	"github.com/usestring/boredq/internal/fetch"
	"github.com/usestring/boredq/internal/logging"
	"github.com/usestring/boredq/internal/query"
	"github.com/usestring/boredq/internal/schema"
	"github.com/usestring/boredq/pkg/client"
	"github.com/usestring/boredq/pkg/render"
)

// ErrReported means the failure was already shown to the user as an error
// row; main only needs to set the exit status.
var ErrReported = errors.New("error reported")

var version = "dev"

// SetVersion sets the version string reported by --version and the MCP server.
func SetVersion(v string) {
	version = v
}

// options are the persistent flags shared by every command.
type options struct {
	envFile  string
	baseURL  string
	logLevel string
	jsonOut  bool
	jqExpr   string
	strict   bool
	showURL  bool
}

// app is the wiring built once per invocation.
type app struct {
	opts       options
	cfg        *config.Config
	client     *client.Client
	fetcher    *fetch.Fetcher
	engine     *query.Engine
	validator  *schema.Validator
	logCleanup func() error
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root, _ := newRoot()
	return root
}

func newRoot() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:           "boredq",
		Short:         "Query the Bored API for something to do",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.opts.envFile, "env-file", config.DefaultEnvFile, "Load environment variables from this file if it exists")
	f.StringVar(&a.opts.baseURL, "base-url", "", "Activity endpoint (overrides BORED_BASE_URL)")
	f.StringVar(&a.opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	f.BoolVar(&a.opts.jsonOut, "json", false, "Print results as JSON")
	f.StringVar(&a.opts.jqExpr, "jq", "", "Print the output of a jq expression over the response body instead of rows")
	f.BoolVar(&a.opts.strict, "strict", false, "Report responses that do not match the activity schema")
	f.BoolVar(&a.opts.showURL, "show-url", false, "Print the query URL above the results")

	root.AddCommand(
		newRandomCommand(a),
		newKeyCommand(a),
		newParamsCommand(a),
		newInteractiveCommand(a),
		newMCPCommand(a),
	)
	return root, a
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	root, a := newRoot()
	defer a.close()
	return root.ExecuteContext(ctx)
}

func (a *app) init() error {
	if err := config.LoadDotEnv(a.opts.envFile); err != nil {
		return err
	}
	a.cfg = config.Load()
	if a.opts.baseURL != "" {
		a.cfg.BaseURL = a.opts.baseURL
	}
	if a.opts.logLevel != "" {
		a.cfg.LogLevel = a.opts.logLevel
	}

	cleanup, err := logging.Setup(logging.FromConfig(a.cfg))
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	a.logCleanup = cleanup

	a.client = client.New(
		client.WithBaseURL(a.cfg.BaseURL),
		client.WithHTTPClient(&http.Client{Timeout: a.cfg.HTTPClientTimeout}),
		client.WithRandomWorkers(a.cfg.RandomWorkers),
	)

	rc, err := cache.NewResultCache(a.cfg.ResultCacheMaxItems)
	if err != nil {
		return fmt.Errorf("failed to create result cache: %w", err)
	}
	a.fetcher = fetch.New(a.client, rc)
	a.engine = query.NewEngine()

	if a.opts.strict {
		a.validator, err = schema.NewActivityValidator()
		if err != nil {
			return fmt.Errorf("failed to build activity schema: %w", err)
		}
	}

	if a.opts.jqExpr != "" {
		if _, err := a.engine.Compile(a.opts.jqExpr); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) close() error {
	if a.logCleanup != nil {
		return a.logCleanup()
	}
	return nil
}

func (a *app) renderer() render.Renderer {
	if a.opts.jsonOut {
		return &render.JSONRenderer{}
	}
	r := render.NewTextRenderer()
	r.ShowURL = a.opts.showURL
	return r
}

// report writes the outcome of a one-shot query. It returns ErrReported when
// the outcome was an error so the process exits non-zero.
func (a *app) report(w io.Writer, results []*client.Result, qErr error) error {
	if qErr == nil && a.opts.jqExpr != "" {
		return a.reportFiltered(w, results)
	}

	r := a.renderer()
	panel := render.NewPanel()
	if qErr != nil {
		panel.Show(nil, qErr)
		if err := r.Render(w, panel); err != nil {
			return err
		}
		return ErrReported
	}

	failed := false
	for i, res := range results {
		if i > 0 && !a.opts.jsonOut {
			fmt.Fprintln(w)
		}
		panel.Show(res, nil)
		if a.validator != nil {
			for _, problem := range a.validator.Validate(res.Raw) {
				panel.AddError("schema: " + problem)
			}
		}
		failed = failed || panel.HasError()
		if err := r.Render(w, panel); err != nil {
			return err
		}
	}
	if failed {
		return ErrReported
	}
	return nil
}

func (a *app) reportFiltered(w io.Writer, results []*client.Result) error {
	bodies := make([][]byte, len(results))
	for i, res := range results {
		bodies[i] = res.Raw
	}
	filtered, err := a.engine.FilterMany(bodies, a.opts.jqExpr)
	if err != nil {
		return err
	}
	for _, v := range filtered.Values {
		fmt.Fprintln(w, query.FormatValue(v))
	}
	if len(filtered.Errors) > 0 {
		panel := render.NewPanel()
		for _, msg := range filtered.Errors {
			panel.AddError(msg)
		}
		if err := render.NewTextRenderer().Render(w, panel); err != nil {
			return err
		}
		return ErrReported
	}
	return nil
}
