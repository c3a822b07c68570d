package parser

import "github.com/tsstrip/tsstrip/pkg/lexer"

// skipType scans a type expression starting at the current token (the
// lexer.Lexer has no notion of a type grammar; the parser never builds a
// type AST, only tracks bracket balance — the one piece of structure type
// erasure actually needs, per spec.md's framing of type annotations as
// opaque erasable spans). It stops, without consuming, at the first
// depth-0 token that cannot continue a type: `,` `)` `]` `}` `;` `>`
// (including `>>`/`>>>`), a bare `=`, a `=>` that does not follow a `)`
// (one that does is a function type's arrow and keeps scanning), or a `{`
// right after a complete type (a function or arrow body, not an object
// type).
func (p *Parser) skipType() (start, end uint32) {
	start = p.tok.Start
	end = start
	depth := 0
	var prev lexer.Token
	for p.tok.Kind != lexer.EOF {
		if depth == 0 && p.tok.Kind == lexer.Punct {
			switch p.tok.Text {
			case ",", ")", "]", "}", ";", "=", ">", ">>", ">>>":
				return start, end
			case "=>":
				if end > start && !(prev.Kind == lexer.Punct && prev.Text == ")") {
					return start, end
				}
			case "{":
				if end > start && endsType(prev) {
					return start, end
				}
			}
		}
		if p.tok.NewlineBefore && depth == 0 && p.tok.Kind == lexer.Keyword {
			switch p.tok.Text {
			case "function", "class", "interface", "enum", "namespace", "const", "let", "var", "export", "import", "if", "for", "while", "do", "return", "switch", "throw", "try":
				return start, end
			}
		}
		// A type name is itself a complete expression; a following token on a
		// new line that could only start a NEW statement by ASI (the same
		// hazard set Handler.Statement fuses a semicolon onto) ends the type
		// here rather than being folded into it as a continuation.
		if p.tok.NewlineBefore && depth == 0 {
			if p.tok.Kind == lexer.TemplateString {
				return start, end
			}
			if p.tok.Kind == lexer.Punct {
				switch p.tok.Text {
				case "(", "[", "+", "-", "/":
					return start, end
				}
			}
		}
		adjustAngleDepth(&depth, p.tok)
		end = p.tok.End
		prev = p.tok
		p.bump()
	}
	return start, end
}

// endsType reports whether tok can be the last token of a complete type.
func endsType(tok lexer.Token) bool {
	switch tok.Kind {
	case lexer.Ident, lexer.String, lexer.Number, lexer.TemplateString:
		return true
	case lexer.Keyword:
		return tok.Text != "keyof" && tok.Text != "extends" && tok.Text != "is" && tok.Text != "infer" && tok.Text != "asserts"
	case lexer.Punct:
		return tok.Text == ")" || tok.Text == "]" || tok.Text == "}" || tok.Text == ">"
	}
	return false
}

// skipBalancedAngle consumes tokens up to and including the closing `>`
// that matches an already-consumed opening `<` (depth starts at 1),
// splitting compound `>>`/`>>>` shift-operator tokens as needed since the
// lexer has no notion of nested generic closers.
func (p *Parser) skipBalancedAngle() (end uint32) {
	depth := 1
	for p.tok.Kind != lexer.EOF {
		adjustAngleDepth(&depth, p.tok)
		end = p.tok.End
		p.bump()
		if depth <= 0 {
			return end
		}
	}
	return end
}

func adjustAngleDepth(depth *int, tok lexer.Token) {
	if tok.Kind != lexer.Punct {
		return
	}
	switch tok.Text {
	case "(", "[", "{", "<":
		*depth++
	case ")", "]", "}", ">":
		*depth--
	case ">>":
		*depth -= 2
	case ">>>":
		*depth -= 3
	}
}

// skipBalancedParens consumes tokens up to and including the closing `)`
// matching an already-consumed opening `(` (depth starts at 1).
func (p *Parser) skipBalancedParens() (end uint32) {
	depth := 1
	for p.tok.Kind != lexer.EOF {
		if p.tok.Kind == lexer.Punct {
			switch p.tok.Text {
			case "(":
				depth++
			case ")":
				depth--
			}
		}
		end = p.tok.End
		p.bump()
		if depth <= 0 {
			return end
		}
	}
	return end
}

// skipBalancedBraces consumes tokens up to and including the closing `}`
// matching an already-consumed opening `{` (depth starts at 1).
func (p *Parser) skipBalancedBraces() (end uint32) {
	depth := 1
	for p.tok.Kind != lexer.EOF {
		if p.tok.Kind == lexer.Punct {
			switch p.tok.Text {
			case "{":
				depth++
			case "}":
				depth--
			}
		}
		end = p.tok.End
		p.bump()
		if depth <= 0 {
			return end
		}
	}
	return end
}

// atPunct reports whether the current token is the punctuator text.
func (p *Parser) atPunct(text string) bool {
	return p.tok.Kind == lexer.Punct && p.tok.Text == text
}

func (p *Parser) atKeyword(text string) bool {
	return p.tok.Kind == lexer.Keyword && p.tok.Text == text
}

func (p *Parser) atIdent() bool {
	return p.tok.Kind == lexer.Ident || p.tok.Kind == lexer.Keyword
}
