package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokens(src string) []Token {
	l := New([]byte(src))
	var out []Token
	for {
		tok := l.Next()
		out = append(out, tok)
		if tok.Kind == EOF {
			return out
		}
	}
}

func TestIdentAndKeyword(t *testing.T) {
	toks := tokens("let x = foo")
	require.Len(t, toks, 5) // let, x, =, foo, EOF
	assert.Equal(t, Keyword, toks[0].Kind)
	assert.Equal(t, "let", toks[0].Text)
	assert.Equal(t, Ident, toks[1].Kind)
	assert.Equal(t, "x", toks[1].Text)
	assert.Equal(t, Punct, toks[2].Kind)
	assert.Equal(t, "=", toks[2].Text)
	assert.Equal(t, Ident, toks[3].Kind)
	assert.Equal(t, "foo", toks[3].Text)
	assert.Equal(t, EOF, toks[4].Kind)
}

func TestNumberLiterals(t *testing.T) {
	for _, src := range []string{"123", "1.5", "0x1F", "0b101", "1e10", "1_000", "10n"} {
		toks := tokens(src)
		require.Len(t, toks, 2, "src=%s", src)
		assert.Equal(t, Number, toks[0].Kind, "src=%s", src)
		assert.Equal(t, src, toks[0].Text, "src=%s", src)
	}
}

func TestStringLiterals(t *testing.T) {
	toks := tokens(`"hello \"world\""`)
	require.Len(t, toks, 2)
	assert.Equal(t, String, toks[0].Kind)
	assert.Equal(t, `"hello \"world\""`, toks[0].Text)
}

func TestTemplateLiteralWithSubstitution(t *testing.T) {
	toks := tokens("`a${ 1 + f(`x`) }b`")
	require.Len(t, toks, 2)
	assert.Equal(t, TemplateString, toks[0].Kind)
	assert.Equal(t, "`a${ 1 + f(`x`) }b`", toks[0].Text)
}

func TestRegexAfterOperator(t *testing.T) {
	toks := tokens("x = /abc/g")
	require.Len(t, toks, 4)
	assert.Equal(t, Regex, toks[2].Kind)
	assert.Equal(t, "/abc/g", toks[2].Text)
}

func TestDivisionAfterIdent(t *testing.T) {
	toks := tokens("x / y")
	require.Len(t, toks, 4)
	assert.Equal(t, Punct, toks[1].Kind)
	assert.Equal(t, "/", toks[1].Text)
}

func TestPunctMaximalMunch(t *testing.T) {
	// ">>>=" itself is not a recognized 3-gram, so it tokenizes as ">>>"
	// followed by a separate "=".
	toks := tokens(">>>= === ... => ??=")
	want := []string{">>>", "=", "===", "...", "=>", "??="}
	require.Len(t, toks, len(want)+1)
	for i, w := range want {
		assert.Equal(t, w, toks[i].Text)
	}
	assert.Equal(t, EOF, toks[len(want)].Kind)
}

func TestNewlineBefore(t *testing.T) {
	toks := tokens("a\nb")
	require.Len(t, toks, 3)
	assert.False(t, toks[0].NewlineBefore)
	assert.True(t, toks[1].NewlineBefore)
}

func TestLineCommentSkipped(t *testing.T) {
	toks := tokens("a // comment\nb")
	require.Len(t, toks, 3)
	assert.Equal(t, "a", toks[0].Text)
	assert.Equal(t, "b", toks[1].Text)
	assert.True(t, toks[1].NewlineBefore)
}

func TestBlockCommentSpanningNewlineSetsFlag(t *testing.T) {
	toks := tokens("a /* \n */ b")
	require.Len(t, toks, 3)
	assert.True(t, toks[1].NewlineBefore)
}

func TestCheckpointRewind(t *testing.T) {
	l := New([]byte("a b c"))
	first := l.Next()
	cp := l.Checkpoint()
	second := l.Next()
	assert.Equal(t, "b", second.Text)

	l.Rewind(cp)
	again := l.Next()
	assert.Equal(t, second, again)
	_ = first
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword("interface"))
	assert.True(t, IsKeyword("namespace"))
	assert.False(t, IsKeyword("notakeyword"))
}
