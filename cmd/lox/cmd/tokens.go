package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	loxtoken "github.com/msto63/lox/foundation/lox/token"
	loxstringx "github.com/msto63/lox/foundation/utils/stringx"
)

// tokenJSON is the JSON shape of one token
type tokenJSON struct {
	Kind    string      `json:"kind"`
	Lexeme  string      `json:"lexeme"`
	Literal interface{} `json:"literal"`
	Line    int         `json:"line"`
}

func newTokensCommand(a *app) *cobra.Command {
	var (
		src    sourceFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Show the token stream of a source",
		Long: `Scans the source and prints one token per line as
"<kind> <lexeme> <literal> <line>", ending with EOF.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("invalid --format %q, expected text or json", format)
			}

			return a.runInput(cmd, &src, args, func(in *input) error {
				result, err := a.engine.Scan(in.source)
				if err != nil {
					return a.failure(cmd, result, in, err)
				}

				w := cmd.OutOrStdout()
				if format == "json" {
					out := make([]tokenJSON, len(result.Tokens))
					for i, tok := range result.Tokens {
						out[i] = tokenJSON{
							Kind:    loxstringx.ToSnakeCase(tok.Kind.String()),
							Lexeme:  tok.Lexeme,
							Literal: tok.Literal.Encodable(),
							Line:    tok.Line,
						}
					}
					return writeJSON(w, out)
				}

				for _, tok := range result.Tokens {
					fmt.Fprintln(w, a.formatToken(tok))
				}
				return nil
			})
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")
	return cmd
}

// formatToken renders a token like Token.String with styled kind and literal
func (a *app) formatToken(tok loxtoken.Token) string {
	return fmt.Sprintf("%s %s %s %d",
		a.styles.Kind.Render(tok.Kind.String()),
		tok.Lexeme,
		a.styles.Literal.Render(tok.Literal.String()),
		tok.Line)
}
