package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/lox/pkg/core/version"
)

func newVersionCommand(a *app) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(w, version.Release)
				return
			}

			fmt.Fprintln(w, a.styles.Header.Render(version.String()))
			for _, c := range version.Components() {
				fmt.Fprintf(w, "  %-12s %s\n", c+":", version.ComponentVersion(c))
			}
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the release number")
	return cmd
}
