package parser

import "github.com/tsstrip/tsstrip/pkg/lexer"

var classElementModifiers = map[string]bool{
	"public": true, "private": true, "protected": true, "readonly": true,
	"abstract": true, "override": true, "declare": true,
}

var paramPropModifiers = map[string]bool{
	"public": true, "private": true, "protected": true, "readonly": true, "override": true,
}

// parseClassLike parses a `class` declaration or expression, including
// optional name, type parameters, `extends`/`implements` heritage, and
// body.
func (p *Parser) parseClassLike(isDeclaration bool) uint32 {
	p.bump() // class
	if p.atIdent() && !p.atKeyword("extends") && !p.atKeyword("implements") && !p.atPunct("{") {
		p.bump()
	}
	if p.atPunct("<") {
		tpStart := p.tok.Start
		p.bump()
		tpEnd := p.skipBalancedAngle()
		p.h.StripTypeParams(tpStart, tpEnd)
	}
	if p.atKeyword("extends") {
		p.bump()
		p.parsePostfix()
		if p.atPunct("<") && p.isGenericCallStart() {
			p.bump()
			argsStart := p.lastEnd
			argsEnd := p.skipBalancedAngle()
			p.h.StripTypeArgs(argsStart-1, argsEnd)
		}
	}
	if p.atKeyword("implements") {
		implStart := p.tok.Start
		p.bump()
		for {
			p.parsePostfix()
			if p.atPunct("<") && p.isGenericCallStart() {
				p.bump()
				p.skipBalancedAngle()
			}
			if p.atPunct(",") {
				p.bump()
				continue
			}
			break
		}
		p.h.StripImplementsClause(implStart, p.lastEnd)
	}
	return p.parseClassBody()
}

func (p *Parser) parseClassBody() uint32 {
	openBrace := p.expectPunct("{") - 1
	p.h.EnterClass(openBrace)
	for !p.atPunct("}") && p.tok.Kind != lexer.EOF {
		if p.atPunct(";") {
			p.bump()
			continue
		}
		p.parseClassElement()
	}
	end := p.expectPunct("}")
	p.h.LeaveClass()
	return end
}

func (p *Parser) parseClassElement() {
	elementStart := p.tok.Start
	p.h.EnterClassElement(elementStart)

	for p.classModifierAhead() {
		modStart := p.tok.Start
		kw := p.tok.Text
		p.bump()
		p.h.ClassElementModifier(modStart, p.tok.Start, kw)
	}

	isStatic := false
	if p.atKeyword("static") && !p.staticIsMemberName() {
		p.bump()
		isStatic = true
	}
	_ = isStatic

	if p.atPunct("{") {
		// static initialization block
		p.parseBlock()
		return
	}

	isGenerator := false
	if p.atPunct("*") {
		p.bump()
		isGenerator = true
	}
	_ = isGenerator

	isGetSet := false
	if (p.atKeyword("get") || p.atKeyword("set")) && !p.getSetIsMemberName() {
		p.bump()
		isGetSet = true
	}
	_ = isGetSet

	isConstructor := p.atIdent() && p.tok.Text == "constructor"
	p.parseMemberName()

	if p.atPunct("?") {
		p.h.StripOptionalMark(p.tok.Start)
		p.bump()
	}
	if p.atPunct("!") {
		p.h.StripDefiniteAssignment(p.tok.Start)
		p.bump()
	}

	if p.atPunct("<") {
		tpStart := p.tok.Start
		p.bump()
		tpEnd := p.skipBalancedAngle()
		p.h.StripTypeParams(tpStart, tpEnd)
	}

	if p.atPunct("(") {
		p.parseMethodTail(elementStart, isConstructor)
		return
	}

	// property
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
	p.consumeSemicolon()
}

func (p *Parser) classModifierAhead() bool {
	if p.tok.Kind != lexer.Keyword || !classElementModifiers[p.tok.Text] {
		return false
	}
	nxt := p.peekNext()
	if nxt.Kind == lexer.Punct && (nxt.Text == "(" || nxt.Text == "=" || nxt.Text == ":" || nxt.Text == ";" || nxt.Text == "?" || nxt.Text == "<") {
		return false
	}
	return true
}

func (p *Parser) staticIsMemberName() bool {
	nxt := p.peekNext()
	return nxt.Kind == lexer.Punct && (nxt.Text == "(" || nxt.Text == "=" || nxt.Text == ":" || nxt.Text == ";" || nxt.Text == "?")
}

func (p *Parser) getSetIsMemberName() bool {
	nxt := p.peekNext()
	return nxt.Kind == lexer.Punct && (nxt.Text == "(" || nxt.Text == "=" || nxt.Text == ":" || nxt.Text == ";")
}

func (p *Parser) parseMemberName() {
	switch {
	case p.atPunct("["):
		p.bump()
		p.parseAssignment()
		p.expectPunct("]")
	case p.tok.Kind == lexer.String, p.tok.Kind == lexer.Number:
		p.bump()
	case p.atPunct("#"):
		p.bump()
		if p.atIdent() {
			p.bump()
		}
	default:
		if p.atIdent() {
			p.bump()
		}
	}
}

// parseMethodTail parses a method's parameter list and body, routing
// through the parameter-property machinery when isConstructor — a
// non-constructor method is wrapped the same way since modifiers on its
// parameters are meaningless but harmless to detect.
func (p *Parser) parseMethodTail(elementStart uint32, isConstructor bool) uint32 {
	p.h.EnterFunctionWithParamProps()
	p.parseClassParamList()
	if p.atPunct(":") {
		tStart := p.tok.Start
		p.bump()
		_, tEnd := p.skipType()
		p.h.StripTypeAnnotation(tStart, tEnd)
	}
	if p.atPunct("{") {
		bodyStart, end := p.parseBlock()
		p.h.LeaveFunctionWithParamProps(elementStart, bodyStart, isConstructor)
		return end
	}
	end := p.lastEnd
	p.consumeSemicolon()
	// A bodyless signature has no init point, so it is reported as a
	// non-constructor even when it is a constructor overload.
	p.h.LeaveFunctionWithParamProps(elementStart, end, false)
	return end
}

// parseClassParamList is parseParamList's sibling, additionally
// recognizing parameter-property modifiers ahead of each parameter.
func (p *Parser) parseClassParamList() {
	p.expectPunct("(")
	for !p.atPunct(")") && p.tok.Kind != lexer.EOF {
		p.parseClassParam()
		if p.atPunct(",") {
			p.bump()
			continue
		}
		break
	}
	p.expectPunct(")")
}

func (p *Parser) parseClassParam() {
	modStart := p.tok.Start
	hasMod := false
	for p.tok.Kind == lexer.Keyword && paramPropModifiers[p.tok.Text] {
		hasMod = true
		p.bump()
	}
	modEnd := p.tok.Start

	if p.atPunct("...") {
		p.bump()
	}

	idStart := p.tok.Start
	idText := p.tok.Text
	if p.atIdent() {
		p.bump()
	}
	idEnd := p.lastEnd

	if hasMod {
		p.h.ParamProperty(modStart, modEnd, idStart, idEnd, idText)
	}

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
