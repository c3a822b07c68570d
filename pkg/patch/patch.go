// Package patch defines the ordered byte-range replacement log that the
// strip engine accumulates while a parser walks a TypeScript program.
package patch

import "unicode/utf8"

// lineSeparator and paragraphSeparator are the two non-ASCII ECMAScript
// line-terminator code points (U+2028 LINE SEPARATOR, U+2029 PARAGRAPH
// SEPARATOR). The rune literals hold the characters themselves, which
// render as blank space in most editors.
const (
	lineSeparator      = ' '
	paragraphSeparator = ' '
)

// Patch is a single byte-range replacement over the original source.
//
// Start and End are byte offsets into the original source buffer,
// Start <= End. Replacement is substituted for source[Start:End] and MUST
// NOT contain any line-terminator code point.
type Patch struct {
	Start       uint32
	End         uint32
	Replacement string
}

// Strip returns a Patch that erases span [start,end) with no replacement.
func Strip(start, end uint32) Patch {
	return Patch{Start: start, End: end}
}

// Insert returns a zero-width Patch that inserts text at pos.
func Insert(pos uint32, text string) Patch {
	return Patch{Start: pos, End: pos, Replacement: text}
}

// Replace returns a Patch that substitutes text for span [start,end).
func Replace(start, end uint32, text string) Patch {
	return Patch{Start: start, End: end, Replacement: text}
}

// ContainsLineTerminator reports whether s contains any of the four
// ECMAScript line-terminator code points (U+000A, U+000D, U+2028, U+2029).
func ContainsLineTerminator(s string) bool {
	for _, r := range s {
		switch r {
		case '\n', '\r', lineSeparator, paragraphSeparator:
			return true
		}
	}
	return false
}

// IsLineTerminatorByteAt reports whether the byte-for-byte encoding of a
// line terminator begins at offset i in buf, returning its byte width.
func IsLineTerminatorByteAt(buf []byte, i int) (width int, ok bool) {
	if i >= len(buf) {
		return 0, false
	}
	switch buf[i] {
	case '\n', '\r':
		return 1, true
	}
	r, size := utf8.DecodeRune(buf[i:])
	if r == lineSeparator || r == paragraphSeparator {
		return size, true
	}
	return 0, false
}
