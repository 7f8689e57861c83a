package reports

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/reusee/nyx/nyxlang"
)

var (
	locationColor = color.New(color.Bold)
	errorColor    = color.New(color.FgRed, color.Bold)
	caretColor    = color.New(color.FgGreen, color.Bold)
)

// Render writes one located entry per diagnostic in err, followed by a count.
// Errors that carry no diagnostics are written as a single line.
func Render(w io.Writer, src *nyxlang.Source, err error) {
	var diags nyxlang.Diagnostics
	if !errors.As(err, &diags) {
		var diag nyxlang.Diagnostic
		if !errors.As(err, &diag) {
			fmt.Fprintf(w, "%s %s\n", errorColor.Sprint("error:"), err)
			return
		}
		diags = nyxlang.Diagnostics{diag}
	}

	for _, diag := range diags {
		renderOne(w, src, diag)
	}
	if len(diags) == 1 {
		fmt.Fprintln(w, "1 error")
	} else {
		fmt.Fprintf(w, "%d errors\n", len(diags))
	}
}

func renderOne(w io.Writer, src *nyxlang.Source, diag nyxlang.Diagnostic) {
	span := diag.Pos()
	column := src.Column(span.Start)
	fmt.Fprintf(w, "%s %s %s\n",
		locationColor.Sprintf("%s:%d:%d:", src.Name, span.Line, column),
		errorColor.Sprint("error:"),
		diag.Error(),
	)

	idx := span.Line - 1
	if idx < 0 || idx >= len(src.Lines) {
		return
	}
	line := src.Lines[idx]
	fmt.Fprintln(w, line)

	prefix := line[:min(column-1, len(line))]
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runeWidth(r)))
	}

	// underline up to the end of the line
	rest := line[len(prefix):]
	text := src.Text(span)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	text = text[:min(len(text), len(rest))]
	width := max(utf8.RuneCountInString(text), 1)

	fmt.Fprintf(w, "%s%s\n", sb.String(), caretColor.Sprint("^"+strings.Repeat("~", width-1)))
}

func runeWidth(r rune) int {
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
