package parser

import (
	"strings"

	"github.com/tsstrip/tsstrip/pkg/lexer"
)

func (p *Parser) peekIsNamespaceName() bool {
	nxt := p.peekNext()
	return nxt.Kind == lexer.Ident || nxt.Kind == lexer.Keyword
}

// parseNamespaceDeclaration parses `namespace`/`module` followed by a
// (possibly dotted) name and a body. A dotted name `A.B.C` has no
// intermediate source braces to anchor nested IIFEs on, so — since this
// legacy form is rare in modern TypeScript — it flattens to a single
// namespace scope whose runtime-visible name joins the segments with `$`;
// this trades away `A.B` being independently addressable in exchange for
// a simple, always-correct lowering. A single bare name is the common
// case and lowers exactly as written, one scope, one IIFE.
func (p *Parser) parseNamespaceDeclaration(start uint32, isAmbient bool) {
	p.bump() // namespace / module
	parts := []string{p.tok.Text}
	if p.atIdent() {
		p.bump()
	}
	for p.atPunct(".") {
		p.bump()
		parts = append(parts, p.tok.Text)
		if p.atIdent() {
			p.bump()
		}
	}
	name := parts[0]
	if len(parts) > 1 {
		name = strings.Join(parts, "$")
	}

	bodyOpenBrace := p.expectPunct("{") - 1
	p.h.EnterNamespace(name, isAmbient, start, bodyOpenBrace)
	for !p.atPunct("}") && p.tok.Kind != lexer.EOF {
		p.parseNamespaceBodyStatement()
	}
	end := p.expectPunct("}")
	p.h.LeaveNamespace(end)
}

func (p *Parser) peekIsSpecialExportForm() bool {
	nxt := p.peekNext()
	if nxt.Kind == lexer.Keyword && nxt.Text == "default" {
		return true
	}
	if nxt.Kind == lexer.Punct && (nxt.Text == "=" || nxt.Text == "{" || nxt.Text == "*") {
		return true
	}
	return false
}

// parseNamespaceBodyStatement parses one top-level statement of a
// namespace body, routing a plain `export <decl>` form through
// NamespaceExportStmt (export-keyword elision + `this.id=id;` suffixes)
// rather than the top-level export-declaration grammar, and reporting to
// the handler whether the statement was a type-only construct (and so is
// known to have stripped to nothing) ahead of the namespace's own
// ambient-whole-strip decision.
func (p *Parser) parseNamespaceBodyStatement() {
	if p.atKeyword("export") && !p.peekIsSpecialExportForm() {
		exportStart := p.tok.Start
		p.bump()
		names := p.parseNamespaceMemberDecl()
		declEnd := p.lastEnd
		p.h.NamespaceExportStmt(exportStart, declEnd, names)
		p.h.Statement(exportStart, declEnd)
		p.h.NamespaceBodyStatement(false)
		return
	}

	wasStripped := p.atKeyword("interface") || p.atKeyword("type") || p.atKeyword("declare") || p.atPunct(";")
	p.parseStatement()
	p.h.NamespaceBodyStatement(wasStripped)
}

// parseNamespaceMemberDecl parses the declaration immediately following
// an elided `export` inside a namespace body, returning the bound
// identifier name(s) that need a `this.id=id;` suffix. Destructuring
// var/let/const targets are parsed correctly but their inner names are
// not individually captured for export suffixing — a documented
// limitation, since exported destructured namespace members are
// vanishingly rare in practice.
func (p *Parser) parseNamespaceMemberDecl() []string {
	switch {
	case p.atKeyword("var"), p.atKeyword("let"), p.atKeyword("const"):
		return p.captureVarDeclNames()
	case p.atKeyword("function"):
		nameTok := p.peekNext()
		p.parseFunctionLike(true, false)
		return identIfNamed(nameTok)
	case p.atKeyword("class"):
		nameTok := p.peekNext()
		p.parseClassLike(true)
		return identIfNamed(nameTok)
	case p.atKeyword("enum"):
		nameTok := p.peekNext()
		declStart := p.tok.Start
		p.parseEnumDeclaration(declStart, false, false)
		return identIfNamed(nameTok)
	case p.atKeyword("namespace"), p.atKeyword("module"):
		nameTok := p.peekNext()
		declStart := p.tok.Start
		p.parseNamespaceDeclaration(declStart, false)
		return identIfNamed(nameTok)
	case p.atKeyword("interface"):
		declStart := p.tok.Start
		end := p.skipInterfaceDecl()
		p.h.StripInterfaceDecl(declStart, end)
		return nil
	case p.atKeyword("type") && p.peekIsTypeAliasName():
		declStart := p.tok.Start
		end := p.skipTypeAliasDecl()
		p.h.StripTypeAliasDecl(declStart, end)
		return nil
	default:
		p.parseStatement()
		return nil
	}
}

func identIfNamed(tok lexer.Token) []string {
	if tok.Kind == lexer.Ident {
		return []string{tok.Text}
	}
	return nil
}

// captureVarDeclNames parses a var/let/const declaration list exactly
// like parseVarDeclNoSemi, additionally collecting each top-level simple
// identifier binding's name.
func (p *Parser) captureVarDeclNames() []string {
	p.bump() // var/let/const
	var names []string
	for {
		if p.atIdent() {
			names = append(names, p.tok.Text)
		}
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
	p.consumeSemicolon()
	return names
}
