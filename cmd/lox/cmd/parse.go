package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/lox/foundation/lox"
	loxast "github.com/msto63/lox/foundation/lox/ast"
	loxdiag "github.com/msto63/lox/foundation/lox/diag"
	"github.com/msto63/lox/pkg/core/config"
)

func newParseCommand(a *app) *cobra.Command {
	var (
		src    sourceFlags
		format string
		stats  bool
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Show the expression tree of a source",
		Long: `Parses the source as one expression and prints the tree.

Formats:
  sexpr  - parenthesized prefix form, e.g. (+ 1 (* 2 3))
  tree   - indented outline, one node per line
  json   - nested objects
  yaml   - nested mappings`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Output.Format
			}
			if !config.IsOutputFormat(format) {
				return fmt.Errorf("invalid --format %q, expected one of %v", format, config.OutputFormats)
			}

			return a.runInput(cmd, &src, args, func(in *input) error {
				result, err := a.engine.Parse(in.source)
				if err != nil {
					return a.failure(cmd, result, in, err)
				}

				if err := writeTree(cmd.OutOrStdout(), result.Expr, format); err != nil {
					return err
				}
				if stats {
					fmt.Fprintln(cmd.ErrOrStderr(), a.styles.Muted.Render(treeStats(result.Expr)))
				}
				return nil
			})
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: sexpr, tree, json, yaml (default from config)")
	cmd.Flags().BoolVar(&stats, "stats", false, "print node statistics to stderr")
	return cmd
}

// writeTree renders expr in the given output format
func writeTree(w io.Writer, expr loxast.Expr, format string) error {
	switch format {
	case "tree":
		_, err := io.WriteString(w, loxast.NewTreePrinter().Print(expr))
		return err
	case "json":
		return writeJSON(w, loxast.ToMap(expr))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(loxast.ToMap(expr)); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, loxast.Print(expr))
		return err
	}
}

func treeStats(expr loxast.Expr) string {
	c := loxast.Collect(expr)
	return fmt.Sprintf("nodes=%d depth=%d literals=%d operators=%d",
		loxast.Count(expr), loxast.Depth(expr), len(c.Literals), len(c.Operators))
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// failure renders diagnostics of a failed run; the returned error is not
// printed again
func (a *app) failure(cmd *cobra.Command, result *lox.Result, in *input, err error) error {
	var diags loxdiag.List
	if !errors.As(err, &diags) {
		return err
	}
	renderDiagnostics(cmd.ErrOrStderr(), a.styles, result, in.path)
	return &errReported{err: err}
}
