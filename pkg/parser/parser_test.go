package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsstrip/tsstrip/pkg/applier"
	"github.com/tsstrip/tsstrip/pkg/buffer"
	"github.com/tsstrip/tsstrip/pkg/parser"
	"github.com/tsstrip/tsstrip/pkg/patch"
	"github.com/tsstrip/tsstrip/pkg/strip"
)

func run(t *testing.T, src string) (string, bool, []parser.ParseError) {
	t.Helper()
	log := patch.NewLog([]byte(src))
	h := strip.New([]byte(src), log)
	p := parser.New([]byte(src), h)
	panicked, errs := p.Parse()

	buf := buffer.NewByteBuffer([]byte(src))
	require.NoError(t, applier.Apply(log.Patches(), buf))
	return buf.String(), panicked, errs
}

func TestParseWellFormedProgramNoPanic(t *testing.T) {
	_, panicked, errs := run(t, "let x: number = 1;\nfunction f(a: string): void {}")
	assert.False(t, panicked)
	assert.Empty(t, errs)
}

func TestParseArrowVsParenthesizedDisambiguation(t *testing.T) {
	out, panicked, errs := run(t, "const f = (a: number, b: number): number => a + b;")
	require.False(t, panicked)
	require.Empty(t, errs)
	assert.Contains(t, out, "(a        , b        )")
	assert.NotContains(t, out, "number")
}

func TestParseGenericCallVsComparisonChain(t *testing.T) {
	out, panicked, errs := run(t, "let a = f<number>(1);\nlet b = (x > y);")
	require.False(t, panicked)
	require.Empty(t, errs)
	assert.Contains(t, out, "f        (1)")
	assert.Contains(t, out, "(x > y)")
}

func TestParseUnterminatedParamListRecoversAsError(t *testing.T) {
	// An unclosed parameter list runs the lexer out to EOF; the
	// subsequent expectPunct(")") mismatch panics internally and Parse
	// must recover it as a ParseError rather than propagate the panic.
	_, panicked, errs := run(t, "function f(")
	assert.True(t, panicked)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "expected ')'")
}

func TestParseEmptySource(t *testing.T) {
	out, panicked, errs := run(t, "")
	assert.False(t, panicked)
	assert.Empty(t, errs)
	assert.Equal(t, "", out)
}
