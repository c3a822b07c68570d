package parser

import "github.com/tsstrip/tsstrip/pkg/lexer"

// parseFunctionLike parses a `function` declaration or expression,
// including generator `*`, optional name, type parameters, parameter
// list, return type, and body. A bodyless form (an overload signature, or
// an ambient declaration's signature) is erased as a whole via
// StripOverloadSignature rather than producing a Statement-visible body.
func (p *Parser) parseFunctionLike(isDeclaration, _ bool) uint32 {
	keywordStart := p.tok.Start
	p.bump() // function
	if p.atPunct("*") {
		p.bump()
	}
	if p.atIdent() && !p.atPunct("(") {
		p.bump()
	}
	if p.atPunct("<") {
		tpStart := p.tok.Start
		p.bump()
		tpEnd := p.skipBalancedAngle()
		p.h.StripTypeParams(tpStart, tpEnd)
	}
	return p.parseFunctionTailNamed(keywordStart, isDeclaration)
}

// parseFunctionTail parses `(params) [: ReturnType] ({ body } | ;)` for a
// context (object-literal method shorthand) that never produces a bodyless
// overload signature.
func (p *Parser) parseFunctionTail(isDeclaration bool) uint32 {
	return p.parseFunctionTailNamed(0, isDeclaration)
}

// parseFunctionTailNamed parses `(params) [: ReturnType] ({ body } | ;)`,
// assuming the name/type-parameters (if any) have already been consumed. A
// bodyless declaration (a TypeScript overload signature) is erased whole
// via StripOverloadSignature, keywordStart anchoring the span.
func (p *Parser) parseFunctionTailNamed(keywordStart uint32, isDeclaration bool) uint32 {
	p.parseParamList()
	if p.atPunct(":") {
		tStart := p.tok.Start
		p.bump()
		_, tEnd := p.skipType()
		p.h.StripTypeAnnotation(tStart, tEnd)
	}
	if p.atPunct("{") {
		_, end := p.parseBlock()
		return end
	}
	end := p.lastEnd
	p.consumeSemicolon()
	if p.tok.Kind != lexer.EOF {
		end = p.lastEnd
	}
	if isDeclaration {
		p.h.StripOverloadSignature(keywordStart, end)
	}
	return end
}

// parseParamList parses an ordinary (non-parameter-property) parameter
// list: `(` optional `this: T,` then `ident[?][: T][ = default]`, or
// destructuring patterns, comma-separated, optional trailing `...rest`.
func (p *Parser) parseParamList() {
	p.expectPunct("(")
	for !p.atPunct(")") && p.tok.Kind != lexer.EOF {
		p.parseOneParam()
		if p.atPunct(",") {
			p.bump()
			continue
		}
		break
	}
	p.expectPunct(")")
}

func (p *Parser) parseOneParam() {
	start := p.tok.Start
	if p.atKeyword("this") {
		p.bump()
		if p.atPunct(":") {
			p.bump()
			p.skipType()
		}
		p.h.StripThisParam(start, p.lastEnd)
		if p.atPunct(",") {
			return
		}
		return
	}
	if p.atPunct("...") {
		p.bump()
	}
	p.parseBindingTarget()
	if p.atPunct("?") {
		p.h.StripOptionalMark(p.tok.Start)
		p.bump()
	}
	if p.atPunct(":") {
		tStart := p.tok.Start
		p.bump()
		_, tEnd := p.skipType()
		p.h.StripTypeAnnotation(tStart, tEnd)
	}
	if p.atPunct("=") {
		p.bump()
		p.parseAssignment()
	}
}
