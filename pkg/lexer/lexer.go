package lexer

import (
	"unicode"
	"unicode/utf8"
)

// Lexer scans a byte slice into tokens on demand. It tracks whether the
// previous significant token can end an expression, which is what a real
// JS/TS lexer needs to disambiguate `/` (division) from the start of a
// regex literal.
type Lexer struct {
	src []byte
	pos int

	prevEndsExpr bool
}

// New creates a Lexer over src.
func New(src []byte) *Lexer {
	return &Lexer{src: src}
}

// Pos returns the current byte offset.
func (l *Lexer) Pos() int { return l.pos }

// Checkpoint/Rewind let the parser backtrack the lexer atomically; the
// parser uses them for side-effect-free token lookahead (arrow-function
// vs. parenthesized-expression, `<T>` type arguments vs. comparison
// operators), during which no handler callback fires.
type Checkpoint struct {
	pos          int
	prevEndsExpr bool
}

func (l *Lexer) Checkpoint() Checkpoint {
	return Checkpoint{pos: l.pos, prevEndsExpr: l.prevEndsExpr}
}

func (l *Lexer) Rewind(cp Checkpoint) {
	l.pos = cp.pos
	l.prevEndsExpr = cp.prevEndsExpr
}

// Next scans and returns the next token, allowing a regex literal only
// when the preceding token could not itself end an expression.
func (l *Lexer) Next() Token {
	newline := l.skipTrivia()

	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Start: uint32(l.pos), End: uint32(l.pos), NewlineBefore: newline}
	}

	start := l.pos
	c := l.src[l.pos]

	var tok Token
	switch {
	case c == '"' || c == '\'':
		tok = l.scanString(c)
	case c == '`':
		tok = l.scanTemplate()
	case isDigit(c):
		tok = l.scanNumber()
	case isIdentStart(c):
		tok = l.scanIdent()
	case c == '/' && !l.prevEndsExpr:
		tok = l.scanRegex()
	default:
		tok = l.scanPunct()
	}
	tok.Start = uint32(start)
	tok.End = uint32(l.pos)
	tok.NewlineBefore = newline
	l.prevEndsExpr = tokenEndsExpr(tok)
	return tok
}

// skipTrivia advances past whitespace and comments, returning whether a
// line terminator (one of the four code points in spec.md §6) was seen.
func (l *Lexer) skipTrivia() bool {
	sawNewline := false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\n' || c == '\r':
			sawNewline = true
			l.pos++
		case c == ' ' || c == '\t':
			l.pos++
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '*':
			l.pos += 2
			for l.pos < len(l.src) {
				if l.src[l.pos] == '\n' {
					sawNewline = true
				}
				if l.src[l.pos] == '*' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/' {
					l.pos += 2
					break
				}
				l.pos++
			}
		default:
			r, size := utf8.DecodeRune(l.src[l.pos:])
			if r == lineSeparator || r == paragraphSeparator {
				sawNewline = true
				l.pos += size
				continue
			}
			if unicode.IsSpace(r) {
				l.pos += size
				continue
			}
			return sawNewline
		}
	}
	return sawNewline
}

const (
	lineSeparator      = ' '
	paragraphSeparator = ' '
)

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func (l *Lexer) scanIdent() Token {
	start := l.pos
	for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		l.pos++
	}
	text := string(l.src[start:l.pos])
	kind := Ident
	if IsKeyword(text) {
		kind = Keyword
	}
	return Token{Kind: kind, Text: text}
}

func (l *Lexer) scanNumber() Token {
	start := l.pos
	for l.pos < len(l.src) && (isDigit(l.src[l.pos]) || l.src[l.pos] == '.' || l.src[l.pos] == '_' ||
		l.src[l.pos] == 'x' || l.src[l.pos] == 'X' || l.src[l.pos] == 'o' || l.src[l.pos] == 'O' ||
		l.src[l.pos] == 'b' || l.src[l.pos] == 'B' ||
		(l.src[l.pos]|0x20 == 'e' && l.pos+1 < len(l.src)) ||
		(l.pos > start && (l.src[l.pos-1]|0x20 == 'e') && (l.src[l.pos] == '+' || l.src[l.pos] == '-')) ||
		isHexDigit(l.src[l.pos])) {
		l.pos++
	}
	if l.pos < len(l.src) && l.src[l.pos] == 'n' { // BigInt suffix
		l.pos++
	}
	return Token{Kind: Number, Text: string(l.src[start:l.pos])}
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (l *Lexer) scanString(quote byte) Token {
	start := l.pos
	l.pos++
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '\\' {
			l.pos += 2
			continue
		}
		if c == quote {
			l.pos++
			break
		}
		l.pos++
	}
	return Token{Kind: String, Text: string(l.src[start:l.pos])}
}

// scanTemplate scans a whole `...` template literal as one token,
// including ${...} substitutions (balanced braces). Per-substitution
// expression parsing, if ever needed by a rule, is out of this lexer's
// scope; no spec.md rule inspects template interiors.
func (l *Lexer) scanTemplate() Token {
	start := l.pos
	l.pos++
	depth := 0
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\\':
			l.pos += 2
			continue
		case depth == 0 && c == '`':
			l.pos++
			return Token{Kind: TemplateString, Text: string(l.src[start:l.pos])}
		case depth == 0 && c == '$' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '{':
			depth++
			l.pos += 2
			continue
		case depth > 0 && c == '{':
			depth++
		case depth > 0 && c == '}':
			depth--
		}
		l.pos++
	}
	return Token{Kind: TemplateString, Text: string(l.src[start:l.pos])}
}

func (l *Lexer) scanRegex() Token {
	start := l.pos
	l.pos++
	inClass := false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '\\' {
			l.pos += 2
			continue
		}
		if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		} else if c == '/' && !inClass {
			l.pos++
			break
		} else if c == '\n' {
			break
		}
		l.pos++
	}
	for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		l.pos++
	}
	return Token{Kind: Regex, Text: string(l.src[start:l.pos])}
}

var puncts3 = []string{"===", "!==", "**=", "...", "<<=", ">>=", "&&=", "||=", "??=", ">>>"}
var puncts2 = []string{
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.", "**",
	"++", "--", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"<<", ">>",
}

func (l *Lexer) scanPunct() Token {
	rest := l.src[l.pos:]
	for _, p := range puncts3 {
		if hasPrefixStr(rest, p) {
			l.pos += len(p)
			return Token{Kind: Punct, Text: p}
		}
	}
	for _, p := range puncts2 {
		if hasPrefixStr(rest, p) {
			l.pos += len(p)
			return Token{Kind: Punct, Text: p}
		}
	}
	r, size := utf8.DecodeRune(rest)
	l.pos += size
	return Token{Kind: Punct, Text: string(r)}
}

func hasPrefixStr(b []byte, s string) bool {
	if len(b) < len(s) {
		return false
	}
	return string(b[:len(s)]) == s
}

// tokenEndsExpr reports whether tok could be the last token of a complete
// expression (so that a following `/` must be division, not a regex
// literal start).
func tokenEndsExpr(tok Token) bool {
	switch tok.Kind {
	case Ident, Number, String, TemplateString, Regex:
		return true
	case Keyword:
		switch tok.Text {
		case "this", "super", "true", "false", "null":
			return true
		}
		return false
	case Punct:
		switch tok.Text {
		case ")", "]", "}":
			return true
		case "++", "--":
			return true
		}
		return false
	}
	return false
}
