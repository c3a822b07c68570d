package parser

import "github.com/tsstrip/tsstrip/pkg/lexer"

func (p *Parser) peekIsDynamicImport() bool {
	nxt := p.peekNext()
	return nxt.Kind == lexer.Punct && (nxt.Text == "(" || nxt.Text == ".")
}

// peekIsImportEquals reports whether, from a bound identifier already
// positioned at p.tok, the next token is `=` — the import-equals form.
func (p *Parser) peekIsImportEquals() bool {
	return p.trySpan(func() bool {
		p.bump()
		return p.atPunct("=")
	})
}

func (p *Parser) parseImportDeclaration(start uint32) {
	kwStart := p.tok.Start
	p.bump() // import

	if p.atKeyword("type") && !p.peekIsTypeOnlyImportEquals() {
		end := p.skipRestOfStatement()
		p.h.StripTypeOnlySpecifier(start, end)
		return
	}
	if p.atKeyword("type") {
		p.bump() // consume `type` in `import type X = require(...)`; still wholly type-only
		idStart := p.tok.Start
		_ = idStart
		p.bump() // identifier
		p.expectPunct("=")
		p.parseAssignment()
		end := p.lastEnd
		p.consumeSemicolon()
		p.h.StripTypeOnlySpecifier(start, end)
		return
	}

	if p.atIdent() && p.peekIsImportEquals() {
		idStart := p.tok.Start
		p.bump() // identifier
		p.expectPunct("=")
		isRequire := p.atIdent() && p.tok.Text == "require" && p.peekNext().Kind == lexer.Punct && p.peekNext().Text == "("
		p.parseAssignment()
		p.consumeSemicolon()
		p.h.ImportEquals(kwStart, idStart, isRequire)
		return
	}

	if p.tok.Kind == lexer.String {
		p.bump()
		p.consumeSemicolon()
		return
	}

	if p.atIdent() {
		p.bump()
		if p.atPunct(",") {
			p.bump()
		}
	}
	switch {
	case p.atPunct("*"):
		p.bump()
		if p.atKeyword("as") {
			p.bump()
			if p.atIdent() {
				p.bump()
			}
		}
	case p.atPunct("{"):
		p.parseSpecifierList()
	}
	if p.atKeyword("from") {
		p.bump()
		if p.tok.Kind == lexer.String {
			p.bump()
		}
	}
	p.consumeSemicolon()
}

func (p *Parser) peekIsTypeOnlyImportEquals() bool {
	return p.trySpan(func() bool {
		p.bump() // type
		if !p.atIdent() {
			return false
		}
		p.bump()
		return p.atPunct("=")
	})
}

// skipRestOfStatement advances to (and past) the next top-level `;`,
// tracking bracket depth so it doesn't stop on one nested inside e.g. a
// named-specifier list; used for whole-statement type-only erasure where
// the internal structure doesn't matter once the erasure decision is
// made.
func (p *Parser) skipRestOfStatement() uint32 {
	depth := 0
	for p.tok.Kind != lexer.EOF {
		if depth == 0 && p.atPunct(";") {
			end := p.lastEnd
			p.bump()
			return end
		}
		if depth == 0 && p.tok.NewlineBefore && p.lastEnd != 0 {
			// ASI: a statement boundary with no explicit semicolon.
			break
		}
		adjustAngleDepth(&depth, p.tok)
		p.bump()
	}
	return p.lastEnd
}

// parseSpecifierList parses `{ spec (, spec)* }` for both import and
// export named-binding lists, where each spec is `[type] name [as name]`.
// A specifier whose leading `type` modifier applies (and isn't itself the
// bound name) is erased on its own, trailing comma included so no stray
// separator is left behind.
func (p *Parser) parseSpecifierList() {
	p.bump() // '{'
	for !p.atPunct("}") && p.tok.Kind != lexer.EOF {
		specStart := p.tok.Start
		isTypeOnly := false
		if p.atKeyword("type") && !p.specifierTypeIsBindingName() {
			isTypeOnly = true
			p.bump()
		}
		if p.atIdent() || p.tok.Kind == lexer.String {
			p.bump()
		}
		if p.atKeyword("as") {
			p.bump()
			if p.atIdent() || p.tok.Kind == lexer.String {
				p.bump()
			}
		}
		specEnd := p.lastEnd
		if p.atPunct(",") {
			p.bump()
			specEnd = p.lastEnd
		}
		if isTypeOnly {
			p.h.StripTypeOnlySpecifier(specStart, specEnd)
		}
	}
	p.expectPunct("}")
}

func (p *Parser) specifierTypeIsBindingName() bool {
	nxt := p.peekNext()
	if nxt.Kind == lexer.Punct && (nxt.Text == "," || nxt.Text == "}") {
		return true
	}
	return nxt.Kind == lexer.Keyword && nxt.Text == "as"
}
