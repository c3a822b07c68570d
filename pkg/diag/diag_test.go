package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFirstLine(t *testing.T) {
	src := []byte("let x: number = 1;")
	d := Diagnostic{Message: "unexpected token", Pos: 4, Length: 1}

	out := Render(d, src, "a.ts")
	assert.Contains(t, out, "Error: unexpected token in a.ts:1:5")
	assert.Contains(t, out, "let x: number = 1;")
	assert.Contains(t, out, "^")
}

func TestRenderSecondLine(t *testing.T) {
	src := []byte("const a = 1;\nconst b: = 2;\n")
	d := Diagnostic{Message: "bad type", Pos: 19, Length: 1} // somewhere on line 2

	out := Render(d, src, "b.ts")
	assert.Contains(t, out, "b.ts:2:")
	assert.Contains(t, out, "const b: = 2;")
}

func TestRenderZeroLengthUsesSingleCaret(t *testing.T) {
	src := []byte("x")
	d := Diagnostic{Message: "eof", Pos: 1, Length: 0}

	out := Render(d, src, "c.ts")
	assert.Contains(t, out, "^")
	assert.NotContains(t, out, "^^")
}

func TestLocateFirstLineFirstColumn(t *testing.T) {
	line, col, text := locate([]byte("abc\ndef"), 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
	assert.Equal(t, "abc", text)
}

func TestLocateAdvancesAcrossNewlines(t *testing.T) {
	line, col, text := locate([]byte("abc\ndef\nghi"), 8)
	assert.Equal(t, 3, line)
	assert.Equal(t, 1, col)
	assert.Equal(t, "ghi", text)
}
