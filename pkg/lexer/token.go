// Package lexer scans TypeScript source into a token stream carrying byte
// offsets, for the parser in pkg/parser to consume. It is additive
// scaffolding around the strip engine (spec.md §1 treats the parser, and
// by extension its lexer, as an external collaborator); none of
// spec.md's rules live here.
package lexer

// Kind classifies a Token.
type Kind int

const (
	EOF Kind = iota
	Ident
	Keyword
	Number
	String
	TemplateString
	Regex
	Punct
	Comment
)

// Token is one lexical token with its byte span in the source.
type Token struct {
	Kind       Kind
	Start, End uint32
	Text       string
	// NewlineBefore reports whether a line terminator occurred between
	// this token and the previous one, needed for ASI and for the
	// directive-prologue scan of spec.md §4.4.
	NewlineBefore bool
}

var keywords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "enum": true, "export": true, "extends": true,
	"false": true, "finally": true, "for": true, "function": true, "if": true,
	"import": true, "in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true, "yield": true,
	// TypeScript contextual keywords relevant to erasable syntax
	"interface": true, "namespace": true, "module": true, "declare": true,
	"type": true, "as": true, "satisfies": true, "public": true,
	"private": true, "protected": true, "readonly": true, "abstract": true,
	"implements": true, "override": true, "require": true, "let": true,
	"static": true, "async": true, "accessor": true, "get": true, "set": true,
	"is": true, "keyof": true, "infer": true, "asserts": true, "from": true,
	"of": true,
}

// IsKeyword reports whether text is a (possibly contextual) keyword.
func IsKeyword(text string) bool { return keywords[text] }
