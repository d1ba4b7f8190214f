package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEvalCommand(a *app) *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Evaluate an expression",
		Long: `Parses and evaluates the source as one expression and prints the value.

Numbers print in shortest form (3, 2.5), strings without quotes, and
nil, true and false as words. Type errors are reported as runtime errors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInput(cmd, &src, args, func(in *input) error {
				result, err := a.engine.Evaluate(in.source)
				if err != nil {
					return a.failure(cmd, result, in, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), a.styles.Value.Render(result.Value.String()))
				return nil
			})
		},
	}

	src.register(cmd)
	return cmd
}
