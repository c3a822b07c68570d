package parser

import "github.com/tsstrip/tsstrip/pkg/lexer"

// peekIsTypeAliasName disambiguates the contextual `type` keyword
// starting a type-alias declaration from `type` used as a plain
// identifier: a type alias is always `type Name =` or `type Name<...>`.
func (p *Parser) peekIsTypeAliasName() bool {
	return p.trySpan(func() bool {
		p.bump() // type
		if !p.atIdent() {
			return false
		}
		p.bump()
		return p.atPunct("=") || p.atPunct("<")
	})
}

func (p *Parser) skipTypeAliasDecl() uint32 {
	p.bump() // type
	if p.atIdent() {
		p.bump()
	}
	if p.atPunct("<") {
		p.bump()
		p.skipBalancedAngle()
	}
	p.expectPunct("=")
	p.skipType()
	end := p.lastEnd
	p.consumeSemicolon()
	return end
}

func (p *Parser) skipInterfaceDecl() uint32 {
	p.bump() // interface
	if p.atIdent() {
		p.bump()
	}
	if p.atPunct("<") {
		p.bump()
		p.skipBalancedAngle()
	}
	if p.atKeyword("extends") {
		p.bump()
		depth := 0
		for p.tok.Kind != lexer.EOF && !(depth == 0 && p.atPunct("{")) {
			adjustAngleDepth(&depth, p.tok)
			p.bump()
		}
	}
	p.expectPunct("{")
	return p.skipBalancedBraces()
}

// parseAmbientDeclaration parses a `declare ...` statement. Ambient
// declarations never produce runtime code, so rather than descending into
// whatever follows with full grammar awareness, it skips the construct
// generically — respecting bracket balance via the real tokenizer — and
// erases the whole span in one patch.
func (p *Parser) parseAmbientDeclaration(start uint32) {
	p.bump() // declare
	if p.atKeyword("global") {
		p.bump()
		if p.atPunct("{") {
			p.bump()
			p.skipBalancedBraces()
		}
	} else {
		p.skipAmbientRest()
	}
	p.h.StripAmbientDecl(start, p.lastEnd)
}

// skipAmbientRest consumes tokens until a top-level `;` (consumed) or a
// top-level `{...}` block (consumed whole), whichever comes first —
// covering every ambient declaration shape (`declare const x: T;`,
// `declare function f(): T;`, `declare class C {}`, `declare namespace N
// {}`, `declare module "m" {}`) without needing to parse each one's
// internal grammar, since none of it survives into the output anyway.
func (p *Parser) skipAmbientRest() {
	depth := 0
	for p.tok.Kind != lexer.EOF {
		if depth == 0 {
			if p.atPunct(";") {
				p.bump()
				return
			}
			if p.atPunct("{") {
				p.bump()
				p.skipBalancedBraces()
				return
			}
		}
		adjustAngleDepth(&depth, p.tok)
		p.bump()
	}
}
