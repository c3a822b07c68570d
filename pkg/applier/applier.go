// Package applier implements the patch-application pass: a back-to-front
// rewrite of the source buffer that preserves every line terminator so
// that line/column numbering stays stable across the transformation, per
// spec.md §4.2.
package applier

import (
	"fmt"
	"unicode/utf8"

	"github.com/tsstrip/tsstrip/pkg/buffer"
	"github.com/tsstrip/tsstrip/pkg/patch"
)

// Apply rewrites buf in place so that for each patch (s,e,r), in log order,
// the substring buf[s:e] of the ORIGINAL content is replaced by r followed
// by padding out to e (minus any net growth already accumulated from
// earlier — i.e. later in original-offset terms, processed-earlier —
// patches). Every line terminator byte sequence inside the padded region
// is preserved bit-exact instead of being overwritten with a space.
//
// Overlapping or non-monotone patches, spans off a UTF-8 boundary, or a
// replacement containing a line terminator are programmer errors (§4.2,
// §7); Apply reports them by returning an error before writing anything.
func Apply(patches []patch.Patch, buf buffer.Buffer) error {
	original := append([]byte(nil), buf.Bytes()...)
	originalLen := len(original)

	if err := validate(patches, original); err != nil {
		return err
	}

	additional := 0
	for _, p := range patches {
		span := int(p.End) - int(p.Start)
		grow := len(p.Replacement) - span
		if grow > 0 {
			additional += grow
		}
	}

	buf.Reserve(additional)
	buf.SetLen(originalLen + additional)
	out := buf.Bytes()

	cursor := len(out)
	lastPatchStart := originalLen

	write := func(b []byte) {
		cursor -= len(b)
		copy(out[cursor:], b)
	}
	writeByte := func(c byte) {
		cursor--
		out[cursor] = c
	}

	for i := len(patches) - 1; i >= 0; i-- {
		p := patches[i]
		s, e := int(p.Start), int(p.End)

		// a. copy original bytes [e, lastPatchStart) verbatim.
		write(original[e:lastPatchStart])

		// b. pad [s+len(replacement), e) preserving line terminators.
		padStart := s + len(p.Replacement)
		if padStart > e {
			padStart = e // replacement fully fills or overflows the span
		}
		j := e
		for j > padStart {
			if width, ok := lineTerminatorEndingAt(original, j); ok && j-width >= padStart {
				writeTerminator(original, j-width, width, writeByte)
				j -= width
				continue
			}
			writeByte(' ')
			j--
		}

		// c. copy the replacement immediately before the padding.
		write([]byte(p.Replacement))

		// d. advance.
		lastPatchStart = s
	}

	// 4. copy [0, lastPatchStart) verbatim.
	write(original[:lastPatchStart])

	if cursor != 0 {
		return fmt.Errorf("applier: internal cursor mismatch, %d bytes unwritten", cursor)
	}
	return nil
}

// lineTerminatorEndingAt checks whether a line-terminator byte sequence
// (one of LF, CR, or the 3-byte encodings of U+2028/U+2029) ends exactly
// at offset end, i.e. occupies [end-width, end).
func lineTerminatorEndingAt(buf []byte, end int) (width int, ok bool) {
	if end >= 1 {
		switch buf[end-1] {
		case '\n', '\r':
			return 1, true
		}
	}
	if end >= 3 {
		if w, ok := patch.IsLineTerminatorByteAt(buf, end-3); ok && w == 3 {
			return 3, true
		}
	}
	return 0, false
}

func writeTerminator(original []byte, start, width int, writeByte func(byte)) {
	for k := width - 1; k >= 0; k-- {
		writeByte(original[start+k])
	}
}

func validate(patches []patch.Patch, original []byte) error {
	sourceLen := len(original)
	last := 0
	for i, p := range patches {
		if p.Start > p.End {
			return fmt.Errorf("applier: patch %d has Start > End", i)
		}
		if int(p.End) > sourceLen {
			return fmt.Errorf("applier: patch %d End exceeds source length", i)
		}
		if int(p.Start) < last {
			return fmt.Errorf("applier: patch %d overlaps the previous patch", i)
		}
		if patch.ContainsLineTerminator(p.Replacement) {
			return fmt.Errorf("applier: patch %d replacement contains a line terminator", i)
		}
		if !onRuneBoundary(original, int(p.Start)) || !onRuneBoundary(original, int(p.End)) {
			return fmt.Errorf("applier: patch %d span is not on a UTF-8 character boundary", i)
		}
		last = int(p.End)
	}
	return nil
}

func onRuneBoundary(buf []byte, i int) bool {
	if i == 0 || i == len(buf) {
		return true
	}
	return utf8.RuneStart(buf[i])
}
