package parser

import "github.com/tsstrip/tsstrip/pkg/lexer"

// exprInfo reports the shape of a just-parsed expression that callers one
// level up (mainly parseStatement) need to recognize: a bare string
// literal (directive prologue candidate) or a `super(...)` call.
type exprInfo struct {
	start, end      uint32
	isStringLiteral bool
	isSuperCall     bool
}

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"**=": true, "<<=": true, ">>=": true, ">>>=": true, "&=": true, "|=": true,
	"^=": true, "&&=": true, "||=": true, "??=": true,
}

var binPrec = map[string]int{
	"??": 1,
	"||": 2, "&&": 3,
	"|": 4, "^": 5, "&": 6,
	"==": 7, "!=": 7, "===": 7, "!==": 7,
	"<": 8, ">": 8, "<=": 8, ">=": 8, "instanceof": 8, "in": 8,
	"<<": 9, ">>": 9, ">>>": 9,
	"+": 10, "-": 10,
	"*": 11, "/": 11, "%": 11,
	"**": 12,
}

// parseExpression parses a full comma-expression, as used at statement
// level and in for-init/for-update clauses.
func (p *Parser) parseExpression() exprInfo {
	first := p.parseAssignment()
	for p.atPunct(",") {
		p.bump()
		first = p.parseAssignment()
	}
	return first
}

func (p *Parser) parseAssignment() exprInfo {
	if p.atPunct("(") && p.looksLikeArrowParams() {
		return p.parseArrowFunction()
	}
	if p.atIdent() && !p.isReservedWordForArrow() && p.peekIsArrowAfterIdent() {
		return p.parseArrowFunction()
	}
	if p.atKeyword("async") && !p.peekNext().NewlineBefore {
		save := p.trySpan(func() bool {
			p.bump()
			if p.atPunct("(") {
				return p.looksLikeArrowParams()
			}
			return p.atIdent() && p.peekIsArrowAfterIdent()
		})
		if save {
			return p.parseArrowFunction()
		}
	}

	lhs := p.parseConditional()

	if p.tok.Kind == lexer.Punct && assignOps[p.tok.Text] {
		p.bump()
		rhs := p.parseAssignment()
		lhs.end = rhs.end
		lhs.isStringLiteral = false
		lhs.isSuperCall = false
	}
	return lhs
}

// trySpan runs fn as a pure lookahead (no Handler calls should happen
// inside fn; callers only use this for syntax shape probes), always
// restoring the lexer/token position afterward.
func (p *Parser) trySpan(fn func() bool) bool {
	cp := p.lex.Checkpoint()
	saved := p.tok
	savedEnd := p.lastEnd
	ok := fn()
	p.lex.Rewind(cp)
	p.tok = saved
	p.lastEnd = savedEnd
	return ok
}

func (p *Parser) isReservedWordForArrow() bool {
	switch p.tok.Text {
	case "new", "typeof", "void", "delete", "await", "function", "class", "this", "super", "true", "false", "null":
		return p.tok.Kind == lexer.Keyword
	}
	return false
}

// peekIsArrowAfterIdent reports whether a bare identifier is immediately
// followed by `=>`, i.e. a single-parameter arrow function without
// parens: `x => x + 1`.
func (p *Parser) peekIsArrowAfterIdent() bool {
	return p.trySpan(func() bool {
		p.bump()
		return p.atPunct("=>")
	})
}

// looksLikeArrowParams performs a pure token scan (no Handler calls) to
// decide whether the parenthesized group starting at the current `(`
// introduces arrow-function parameters, as opposed to a parenthesized
// expression: skip to the matching `)`, optionally skip a return-type
// annotation, and check for a following `=>`.
func (p *Parser) looksLikeArrowParams() bool {
	return p.trySpan(func() bool {
		p.bump()
		depth := 1
		for p.tok.Kind != lexer.EOF && depth > 0 {
			if p.tok.Kind == lexer.Punct {
				switch p.tok.Text {
				case "(":
					depth++
				case ")":
					depth--
				}
			}
			p.bump()
		}
		if p.atPunct(":") {
			p.bump()
			p.skipType()
		}
		return p.atPunct("=>")
	})
}

func (p *Parser) parseConditional() exprInfo {
	cond := p.parseBinary(0)
	if p.atPunct("?") {
		p.bump()
		p.parseAssignment()
		p.expectPunct(":")
		rhs := p.parseAssignment()
		cond.end = rhs.end
		cond.isStringLiteral = false
		cond.isSuperCall = false
	}
	return cond
}

func (p *Parser) parseBinary(minPrec int) exprInfo {
	lhs := p.parseUnary()
	for {
		if p.atKeyword("as") || p.atKeyword("satisfies") {
			kw := p.tok.Text
			p.bump()
			typeStart, typeEnd := p.skipType()
			if kw == "as" {
				p.h.StripAsExpr(lhs.end, typeEnd)
			} else {
				p.h.StripSatisfiesExpr(lhs.end, typeEnd)
			}
			_ = typeStart
			lhs.end = typeEnd
			lhs.isStringLiteral = false
			lhs.isSuperCall = false
			continue
		}
		if p.tok.Kind != lexer.Punct && p.tok.Kind != lexer.Keyword {
			break
		}
		op := p.tok.Text
		prec, ok := binPrec[op]
		if !ok || prec < minPrec {
			break
		}
		if op == "<" && p.isGenericCallStart() {
			break
		}
		p.bump()
		nextMin := prec + 1
		if op == "**" {
			nextMin = prec
		}
		rhs := p.parseBinary(nextMin)
		lhs.end = rhs.end
		lhs.isStringLiteral = false
		lhs.isSuperCall = false
	}
	return lhs
}

// isGenericCallStart disambiguates `foo<T>(...)` (generic call) from a
// `<` comparison by pure lookahead: if skipping a balanced angle group
// from here lands on `(` it's treated as type arguments to a call.
func (p *Parser) isGenericCallStart() bool {
	return p.trySpan(func() bool {
		p.bump()
		p.skipBalancedAngle()
		return p.atPunct("(")
	})
}

func (p *Parser) parseUnary() exprInfo {
	start := p.tok.Start
	switch {
	case p.atPunct("<"):
		ltStart := p.tok.Start
		p.bump()
		_, typeEnd := p.skipType()
		gtEnd := p.expectPunct(">")
		_ = typeEnd
		inner := p.parseUnary()
		p.h.StripPrefixAssertion(ltStart, gtEnd, inner.end)
		return exprInfo{start: start, end: inner.end}
	case p.atPunct("!"), p.atPunct("~"), p.atPunct("+"), p.atPunct("-"),
		p.atPunct("++"), p.atPunct("--"):
		p.bump()
		inner := p.parseUnary()
		return exprInfo{start: start, end: inner.end}
	case p.atKeyword("typeof"), p.atKeyword("void"), p.atKeyword("delete"), p.atKeyword("await"):
		p.bump()
		inner := p.parseUnary()
		return exprInfo{start: start, end: inner.end}
	case p.atKeyword("new"):
		return p.parseNewExpression()
	default:
		return p.parsePostfix()
	}
}

func (p *Parser) parseNewExpression() exprInfo {
	start := p.tok.Start
	p.bump()
	if p.atPunct(".") {
		p.bump()
		p.bump()
		return exprInfo{start: start, end: p.lastEnd}
	}
	callee := p.parseMemberOnly()
	end := callee.end
	if p.atPunct("<") && p.isGenericCallStart() {
		p.bump()
		typeArgsStart := p.lastEnd
		typeArgsEnd := p.skipBalancedAngle()
		p.h.StripTypeArgs(typeArgsStart-1, typeArgsEnd)
	}
	if p.atPunct("(") {
		end = p.parseArguments()
	}
	end = p.parsePostfixChain(end)
	return exprInfo{start: start, end: end}
}

// parseMemberOnly parses a primary expression plus `.`/`[]` member
// accesses only (no calls), the callee-position grammar `new` needs.
func (p *Parser) parseMemberOnly() exprInfo {
	e := p.parsePrimary()
	for {
		switch {
		case p.atPunct("."):
			p.bump()
			p.bump()
			e.end = p.lastEnd
		case p.atPunct("?."):
			p.bump()
			p.bump()
			e.end = p.lastEnd
		case p.atPunct("["):
			p.bump()
			p.parseExpression()
			e.end = p.expectPunct("]")
		default:
			return e
		}
		e.isStringLiteral = false
		e.isSuperCall = false
	}
}

func (p *Parser) parsePostfix() exprInfo {
	e := p.parsePrimary()
	e.end = p.parsePostfixChain(e.end)
	if p.atPunct("++") || p.atPunct("--") {
		if !p.tok.NewlineBefore {
			p.bump()
			e.end = p.lastEnd
			e.isStringLiteral = false
			e.isSuperCall = false
		}
	}
	return e
}

// parsePostfixChain consumes member accesses, calls, non-null assertions
// and generic call type-arguments following an already-parsed primary;
// wasSuperCall/wasString tracking is handled by the caller since it needs
// the ORIGINAL primary's identity, not the chain's.
func (p *Parser) parsePostfixChain(end uint32) uint32 {
	for {
		switch {
		case p.atPunct("."), p.atPunct("?."):
			p.bump()
			if p.atIdent() {
				p.bump()
			}
			end = p.lastEnd
		case p.atPunct("["):
			p.bump()
			p.parseExpression()
			end = p.expectPunct("]")
		case p.atPunct("!") && !p.tok.NewlineBefore:
			p.bump()
			end = p.lastEnd
		case p.atPunct("("):
			end = p.parseArguments()
		case p.atPunct("<") && p.isGenericCallStart():
			p.bump()
			typeArgsStart := p.lastEnd
			typeArgsEnd := p.skipBalancedAngle()
			p.h.StripTypeArgs(typeArgsStart-1, typeArgsEnd)
		case p.tok.Kind == lexer.TemplateString:
			p.bump()
			end = p.lastEnd
		default:
			return end
		}
	}
}

func (p *Parser) parseArguments() uint32 {
	p.bump() // '('
	for !p.atPunct(")") && p.tok.Kind != lexer.EOF {
		p.parseAssignment()
		if p.atPunct(",") {
			p.bump()
			continue
		}
		break
	}
	return p.expectPunct(")")
}

func (p *Parser) parsePrimary() exprInfo {
	start := p.tok.Start
	switch {
	case p.tok.Kind == lexer.Number, p.tok.Kind == lexer.Regex:
		p.bump()
		return exprInfo{start: start, end: p.lastEnd}
	case p.tok.Kind == lexer.String:
		p.bump()
		return exprInfo{start: start, end: p.lastEnd, isStringLiteral: true}
	case p.tok.Kind == lexer.TemplateString:
		p.bump()
		return exprInfo{start: start, end: p.lastEnd}
	case p.atKeyword("super"):
		p.bump()
		end := p.lastEnd
		isCall := false
		if p.atPunct("(") {
			end = p.parseArguments()
			isCall = true
		} else if p.atPunct(".") || p.atPunct("[") {
			end = p.parsePostfixChain(end)
		}
		return exprInfo{start: start, end: end, isSuperCall: isCall}
	case p.atKeyword("this"), p.atKeyword("true"), p.atKeyword("false"), p.atKeyword("null"), p.atKeyword("undefined"):
		p.bump()
		return exprInfo{start: start, end: p.lastEnd}
	case p.atKeyword("function"):
		end := p.parseFunctionLike(false, false)
		return exprInfo{start: start, end: end}
	case p.atKeyword("class"):
		end := p.parseClassLike(false)
		return exprInfo{start: start, end: end}
	case p.atKeyword("new"):
		return p.parseNewExpression()
	case p.atPunct("("):
		p.bump()
		p.parseExpression()
		end := p.expectPunct(")")
		return exprInfo{start: start, end: end}
	case p.atPunct("["):
		p.bump()
		for !p.atPunct("]") && p.tok.Kind != lexer.EOF {
			if p.atPunct(",") {
				p.bump()
				continue
			}
			if p.atPunct("...") {
				p.bump()
			}
			p.parseAssignment()
			if p.atPunct(",") {
				p.bump()
			}
		}
		end := p.expectPunct("]")
		return exprInfo{start: start, end: end}
	case p.atPunct("{"):
		end := p.parseObjectLiteral()
		return exprInfo{start: start, end: end}
	case p.atIdent():
		p.bump()
		return exprInfo{start: start, end: p.lastEnd}
	default:
		p.bump()
		return exprInfo{start: start, end: p.lastEnd}
	}
}

func (p *Parser) parseObjectLiteral() uint32 {
	p.bump() // '{'
	for !p.atPunct("}") && p.tok.Kind != lexer.EOF {
		if p.atPunct("...") {
			p.bump()
			p.parseAssignment()
		} else {
			p.parseObjectMember()
		}
		if p.atPunct(",") {
			p.bump()
		}
	}
	return p.expectPunct("}")
}

func (p *Parser) parseObjectMember() {
	if p.atPunct("[") {
		p.bump()
		p.parseAssignment()
		p.expectPunct("]")
	} else if p.atIdent() || p.tok.Kind == lexer.String || p.tok.Kind == lexer.Number {
		p.bump()
	}
	switch {
	case p.atPunct(":"):
		p.bump()
		p.parseAssignment()
	case p.atPunct("("):
		p.parseFunctionTail(false)
	case p.atPunct("="):
		p.bump()
		p.parseAssignment()
	}
}

func (p *Parser) parseArrowFunction() exprInfo {
	start := p.tok.Start
	if p.atKeyword("async") {
		p.bump()
	}
	if p.atPunct("<") {
		tpStart := p.tok.Start
		p.bump()
		tpEnd := p.skipBalancedAngle()
		p.h.ArrowTypeParams(tpStart, tpEnd)
	}
	if p.atPunct("(") {
		p.parseParamList()
	} else if p.atIdent() {
		p.bump()
	}
	parenEnd := p.lastEnd
	if p.atPunct(":") {
		p.bump()
		_, typeEnd := p.skipType()
		arrowStart := p.tok.Start
		p.h.ArrowReturnType(parenEnd, parenEnd, typeEnd, arrowStart)
	}
	p.expectPunct("=>")
	var end uint32
	if p.atPunct("{") {
		_, end = p.parseBlock()
	} else {
		e := p.parseAssignment()
		end = e.end
	}
	return exprInfo{start: start, end: end}
}
