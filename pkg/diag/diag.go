// Package diag renders parser/strip diagnostics as rustc/tsc-style source
// snippets, grounded on the teacher's pkg/errors.EnhancedError.
package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Diagnostic is a single reportable problem, anchored at a byte offset
// (Pos) into the original source with a byte Length for the caret
// underline.
type Diagnostic struct {
	Message string
	Pos     uint32
	Length  uint32
}

// Render produces a source snippet with a `^^^^` underline under the
// diagnostic's span, prefixed with filename:line:col, mirroring
// EnhancedError.Format's layout without its exhaustiveness-specific
// fields (missing patterns, suggestions) which have no analog here.
func Render(d Diagnostic, source []byte, filename string) string {
	line, col, lineText := locate(source, d.Pos)

	var buf strings.Builder
	fmt.Fprintf(&buf, "Error: %s in %s:%d:%d\n\n", d.Message, filename, line, col)
	fmt.Fprintf(&buf, "  %4d | %s\n", line, lineText)

	caretIndent := utf8.RuneCountInString(lineText[:min(col-1, len(lineText))])
	caretLen := int(d.Length)
	if caretLen < 1 {
		caretLen = 1
	}
	fmt.Fprintf(&buf, "       | %s%s\n", strings.Repeat(" ", caretIndent), strings.Repeat("^", caretLen))
	return buf.String()
}

// locate converts a byte offset into 1-indexed line/column and returns the
// full text of that line.
func locate(source []byte, pos uint32) (line, col int, lineText string) {
	line = 1
	lineStart := 0
	for i := 0; i < int(pos) && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := len(source)
	if idx := strings.IndexByte(string(source[lineStart:]), '\n'); idx >= 0 {
		lineEnd = lineStart + idx
	}
	lineText = string(source[lineStart:lineEnd])
	col = int(pos) - lineStart + 1
	return line, col, lineText
}
