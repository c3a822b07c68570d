package parser

import "github.com/tsstrip/tsstrip/pkg/lexer"

func (p *Parser) peekIsTypeOnlyExportForm() bool {
	return p.trySpan(func() bool {
		p.bump() // type
		return p.atPunct("{") || p.atPunct("*")
	})
}

func (p *Parser) parseExportDeclaration(start uint32) {
	kwStart := start
	p.bump() // export

	switch {
	case p.atPunct("="):
		p.bump()
		exprStart := p.tok.Start
		p.parseExpression()
		p.consumeSemicolon()
		p.h.ExportAssignment(kwStart, exprStart)

	case p.atKeyword("default"):
		p.bump()
		switch {
		case p.atKeyword("function"):
			p.parseFunctionLike(true, false)
		case p.atKeyword("class"):
			p.parseClassLike(true)
		default:
			p.parseAssignment()
			p.consumeSemicolon()
		}

	case p.atKeyword("type") && p.peekIsTypeOnlyExportForm():
		p.parseExportTypeOnly(kwStart)

	case p.atPunct("{"):
		p.parseSpecifierList()
		if p.atKeyword("from") {
			p.bump()
			if p.tok.Kind == lexer.String {
				p.bump()
			}
		}
		p.consumeSemicolon()

	case p.atPunct("*"):
		p.bump()
		if p.atKeyword("as") {
			p.bump()
			if p.atIdent() {
				p.bump()
			}
		}
		if p.atKeyword("from") {
			p.bump()
			if p.tok.Kind == lexer.String {
				p.bump()
			}
		}
		p.consumeSemicolon()

	case p.atKeyword("import"):
		p.parseImportDeclaration(p.tok.Start)

	case p.atKeyword("declare"):
		p.parseAmbientDeclaration(p.tok.Start)

	default:
		p.parseStatement()
	}
}

// parseExportTypeOnly parses `export type { ... } [from "m"];` or
// `export type * [as ns] from "m";`, erasing the whole statement — every
// form of `export type` carries no runtime value.
func (p *Parser) parseExportTypeOnly(kwStart uint32) {
	p.bump() // type
	if p.atPunct("{") {
		p.bump()
		for !p.atPunct("}") && p.tok.Kind != lexer.EOF {
			if p.atIdent() {
				p.bump()
			}
			if p.atKeyword("as") {
				p.bump()
				if p.atIdent() {
					p.bump()
				}
			}
			if p.atPunct(",") {
				p.bump()
				continue
			}
			break
		}
		p.expectPunct("}")
	} else if p.atPunct("*") {
		p.bump()
		if p.atKeyword("as") {
			p.bump()
			if p.atIdent() {
				p.bump()
			}
		}
	}
	if p.atKeyword("from") {
		p.bump()
		if p.tok.Kind == lexer.String {
			p.bump()
		}
	}
	end := p.lastEnd
	p.consumeSemicolon()
	p.h.StripTypeOnlySpecifier(kwStart, end)
}
