package parser

import "github.com/tsstrip/tsstrip/pkg/lexer"

// parseControlBody parses the single statement (or block) that forms an
// if/while/for/do-while body, reporting to the handler when a non-block
// body turns out to have been fully stripped — it still has to terminate
// the construct, so an empty replacement becomes a bare `;`.
func (p *Parser) parseControlBody() {
	start := p.tok.Start
	isBlock := p.atPunct("{")
	p.parseStatement()
	if !isBlock {
		p.h.ControlBodyStripped(start, p.lastEnd)
	}
}

func (p *Parser) parseIfStatement() {
	p.bump() // if
	p.expectPunct("(")
	p.parseExpression()
	p.expectPunct(")")
	p.parseControlBody()
	if p.atKeyword("else") {
		p.bump()
		p.parseControlBody()
	}
}

func (p *Parser) parseWhileStatement() {
	p.bump() // while
	p.expectPunct("(")
	p.parseExpression()
	p.expectPunct(")")
	p.parseControlBody()
}

func (p *Parser) parseDoWhileStatement() {
	p.bump() // do
	p.parseControlBody()
	if p.atKeyword("while") {
		p.bump()
		p.expectPunct("(")
		p.parseExpression()
		p.expectPunct(")")
	}
	p.consumeSemicolon()
}

func (p *Parser) parseForStatement() {
	p.bump() // for
	if p.atKeyword("await") {
		p.bump()
	}
	p.expectPunct("(")

	switch {
	case p.atPunct(";"):
		p.bump()
	case p.atKeyword("var"), p.atKeyword("let"), p.atKeyword("const"):
		p.parseVarDeclNoSemi()
		if p.atKeyword("of") || p.atKeyword("in") {
			p.bump()
			p.parseAssignment()
			break
		}
		p.expectPunct(";")
	default:
		p.parseExpression()
		if p.atKeyword("of") || p.atKeyword("in") {
			p.bump()
			p.parseAssignment()
			break
		}
		p.expectPunct(";")
	}

	if !p.atPunct(")") {
		if !p.atPunct(";") {
			p.parseExpression()
		}
		if p.atPunct(";") {
			p.bump()
			if !p.atPunct(")") {
				p.parseExpression()
			}
		}
	}
	p.expectPunct(")")
	p.parseControlBody()
}

func (p *Parser) parseTryStatement() {
	p.bump() // try
	p.parseBlock()
	if p.atKeyword("catch") {
		p.bump()
		if p.atPunct("(") {
			p.bump()
			if p.atIdent() {
				p.bump()
			}
			if p.atPunct(":") {
				tStart := p.tok.Start
				p.bump()
				_, tEnd := p.skipType()
				p.h.StripTypeAnnotation(tStart, tEnd)
			}
			p.expectPunct(")")
		}
		p.parseBlock()
	}
	if p.atKeyword("finally") {
		p.bump()
		p.parseBlock()
	}
}

func (p *Parser) parseSwitchStatement() {
	p.bump() // switch
	p.expectPunct("(")
	p.parseExpression()
	p.expectPunct(")")
	p.expectPunct("{")
	for !p.atPunct("}") && p.tok.Kind != lexer.EOF {
		if p.atKeyword("case") {
			p.bump()
			p.parseExpression()
			p.expectPunct(":")
		} else if p.atKeyword("default") {
			p.bump()
			p.expectPunct(":")
		} else {
			p.parseStatement()
			continue
		}
		for !p.atKeyword("case") && !p.atKeyword("default") && !p.atPunct("}") && p.tok.Kind != lexer.EOF {
			p.parseStatement()
		}
	}
	p.expectPunct("}")
}
