package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/msto63/lox/foundation/lox"
	loxdiag "github.com/msto63/lox/foundation/lox/diag"
	loxstringx "github.com/msto63/lox/foundation/utils/stringx"
)

// maxSourceEcho bounds the echoed source line in diagnostics
const maxSourceEcho = 120

// renderDiagnostics prints every diagnostic followed by the source line it
// refers to
func renderDiagnostics(w io.Writer, s Styles, result *lox.Result, name string) {
	if result == nil {
		return
	}

	width := len(strconv.Itoa(lastLine(result.Diagnostics)))
	for _, d := range result.Diagnostics {
		fmt.Fprintln(w, formatDiagnostic(s, d, name))

		text, ok := loxstringx.LineAt(result.Source, d.Line)
		if !ok || loxstringx.IsBlank(text) {
			continue
		}
		gutter := loxstringx.PadLeft(strconv.Itoa(d.Line), width, ' ')
		fmt.Fprintf(w, "  %s %s\n",
			s.Source.Render(gutter+" |"),
			loxstringx.Truncate(strings.TrimRight(text, "\r"), maxSourceEcho, "..."))
	}
}

// formatDiagnostic renders "[line] | Error at 'x': message" with styling,
// prefixed by the input name
func formatDiagnostic(s Styles, d loxdiag.Diagnostic, name string) string {
	where := fmt.Sprintf("[%d] |", d.Line)
	if name != "" {
		where = name + ":" + where
	}
	return fmt.Sprintf("%s %s %s",
		s.Location.Render(where),
		s.Error.Render("Error"+d.Where+":"),
		d.Message)
}

func lastLine(diags loxdiag.List) int {
	last := 1
	for _, d := range diags {
		if d.Line > last {
			last = d.Line
		}
	}
	return last
}
