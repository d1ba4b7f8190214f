package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// sourceFlags are the input flags shared by tokens, parse and eval
type sourceFlags struct {
	expr  string
	watch bool
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.expr, "expr", "e", "", "source text to process")
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "re-run whenever the file changes")
}

// input is one source text and where it came from
type input struct {
	name   string
	path   string
	source string
}

// readInput picks the source from --expr, a file argument or stdin.
// "-" names stdin explicitly.
func readInput(cmd *cobra.Command, f *sourceFlags, args []string) (*input, error) {
	if f.expr != "" && len(args) > 0 {
		return nil, fmt.Errorf("use either --expr or a file argument, not both")
	}
	if f.watch && (len(args) == 0 || args[0] == "-") {
		return nil, fmt.Errorf("--watch requires a file argument")
	}

	switch {
	case f.expr != "":
		return &input{name: "<expr>", source: f.expr}, nil
	case len(args) > 0 && args[0] != "-":
		return readFile(args[0])
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return &input{name: "<stdin>", source: strings.TrimRight(string(data), "\n")}, nil
	}
}

func readFile(path string) (*input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &input{name: path, path: path, source: string(data)}, nil
}
