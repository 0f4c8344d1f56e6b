package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/usestring/boredq/internal/form"
	"github.com/usestring/boredq/internal/mcp"
	"github.com/usestring/boredq/internal/mcp/tools"
	"github.com/usestring/boredq/internal/schema"
	"github.com/usestring/boredq/internal/session"
	"github.com/usestring/boredq/pkg/client"
)

func newRandomCommand(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Query for a random activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count == 1 {
				res, err := a.fetcher.Query(cmd.Context(), client.ModeRandom, "", nil)
				return a.report(cmd.OutOrStdout(), []*client.Result{res}, err)
			}
			results, err := a.client.Random(cmd.Context(), count)
			return a.report(cmd.OutOrStdout(), results, err)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of random activities to fetch")
	return cmd
}

func newKeyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "key KEY",
		Short: "Query an activity by key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string
			if len(args) == 1 {
				key = args[0]
			}
			res, err := a.fetcher.ByKey(cmd.Context(), key)
			return a.report(cmd.OutOrStdout(), []*client.Result{res}, err)
		},
	}
}

func newParamsCommand(a *app) *cobra.Command {
	f := form.NewDefault()
	type binding struct {
		name  string
		field form.Field
		value *string
	}
	var bindings []binding

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query by multiple parameters",
		Long: "Query by type, participants, price and accessibility.\n" +
			"An exact value takes precedence over the min/max range of the same parameter.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, b := range bindings {
				f.Set(b.name, b.field, *b.value)
			}
			res, err := a.fetcher.Query(cmd.Context(), client.ModeByParameters, "", f.Specs())
			return a.report(cmd.OutOrStdout(), []*client.Result{res}, err)
		},
	}

	for _, l := range f.Labels() {
		switch l.Field {
		case form.FieldExact:
			v := new(string)
			cmd.Flags().StringVar(v, l.Name, "", "Exact "+l.Name)
			bindings = append(bindings, binding{l.Name, form.FieldExact, v})
		default:
			lo, hi := new(string), new(string)
			cmd.Flags().StringVar(lo, "min-"+l.Name, "", "Minimum "+l.Name)
			cmd.Flags().StringVar(hi, "max-"+l.Name, "", "Maximum "+l.Name)
			bindings = append(bindings,
				binding{l.Name, form.FieldMin, lo},
				binding{l.Name, form.FieldMax, hi},
			)
		}
	}
	return cmd
}

func newInteractiveCommand(a *app) *cobra.Command {
	var noPrompt bool
	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"form"},
		Short:   "Run the query form in the terminal",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := session.New(cmd.InOrStdin(), cmd.OutOrStdout(), a.fetcher, a.renderer())
			s.Prompts = !noPrompt && isTerminal(cmd.InOrStdin())
			if a.validator != nil {
				s.Checker = a.validator
			}
			return s.Run(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "Do not print the menu and field prompts")
	return cmd
}

func newMCPCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the queries as MCP tools on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.validator == nil {
				v, err := schema.NewActivityValidator()
				if err != nil {
					return err
				}
				a.validator = v
			}
			deps := &tools.Deps{
				Client:    a.client,
				Fetcher:   a.fetcher,
				Config:    a.cfg,
				Query:     a.engine,
				Validator: a.validator,
			}
			srv, err := mcp.NewServer(deps, version)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}
}

func isTerminal(r any) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
