package parser

import "github.com/tsstrip/tsstrip/pkg/lexer"

func (p *Parser) parseVarDecl() {
	p.parseVarDeclNoSemi()
	p.consumeSemicolon()
}

// parseVarDeclNoSemi parses `var|let|const bindingList`, without consuming
// a trailing `;` — used directly by for-loop init clauses as well as the
// statement-level form.
func (p *Parser) parseVarDeclNoSemi() {
	p.bump() // var/let/const
	for {
		p.parseBindingTarget()
		if p.atPunct("!") {
			p.h.StripDefiniteAssignment(p.tok.Start)
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
		if p.atPunct(",") {
			p.bump()
			continue
		}
		break
	}
}

// parseBindingTarget parses an identifier or a destructuring pattern.
func (p *Parser) parseBindingTarget() {
	switch {
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
			p.parseBindingElement()
			if p.atPunct(",") {
				p.bump()
			}
		}
		p.expectPunct("]")
	case p.atPunct("{"):
		p.bump()
		for !p.atPunct("}") && p.tok.Kind != lexer.EOF {
			if p.atPunct("...") {
				p.bump()
				p.parseBindingTarget()
			} else {
				if p.atPunct("[") {
					p.bump()
					p.parseAssignment()
					p.expectPunct("]")
				} else if p.atIdent() || p.tok.Kind == lexer.String || p.tok.Kind == lexer.Number {
					p.bump()
				}
				if p.atPunct(":") {
					p.bump()
					p.parseBindingElement()
				} else if p.atPunct("=") {
					p.bump()
					p.parseAssignment()
				}
			}
			if p.atPunct(",") {
				p.bump()
			}
		}
		p.expectPunct("}")
	default:
		if p.atIdent() {
			p.bump()
		}
	}
}

// parseBindingElement parses a binding target with an optional default
// initializer, as used inside array/object destructuring patterns.
func (p *Parser) parseBindingElement() {
	p.parseBindingTarget()
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
