// Package parser is a hand-rolled recursive-descent parser over the
// erasable-TypeScript subset: it never builds a type AST (type positions
// are tracked only as bracket-balanced spans, via pkg/parser's skip*
// helpers), and drives a Handler with one call per construct that needs
// stripping or lowering. Ambiguous constructs (arrow params vs.
// parenthesized expression, generic call vs. comparison chain) are
// resolved by pure token lookahead before any patch is ever emitted, so
// in practice no already-emitted patch needs to be rolled back; Handler's
// Checkpoint/Rewind remain wired for the general case but the shipped
// grammar never needs to exercise them mid-statement.
package parser

import "github.com/tsstrip/tsstrip/pkg/lexer"

// ParseError records the parse failure behind a panic that Parse
// recovered; parsing stops at that point.
type ParseError struct {
	Pos     uint32
	Message string
}

func (e ParseError) Error() string { return e.Message }

// Parser drives h over src.
type Parser struct {
	src []byte
	lex *lexer.Lexer
	h   Handler
	tok lexer.Token

	errs    []ParseError
	lastEnd uint32
}

// New creates a Parser over src, driving h.
func New(src []byte, h Handler) *Parser {
	p := &Parser{src: src, lex: lexer.New(src), h: h}
	p.tok = p.lex.Next()
	return p
}

// Parse runs the parser to completion, recovering from any panic raised
// by an internal invariant violation (an unexpected token shape the
// grammar didn't anticipate) by reporting it as a parse error instead of
// crashing the whole transpile.
func (p *Parser) Parse() (panicked bool, errs []ParseError) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			msg, _ := r.(string)
			if msg == "" {
				msg = "internal parser error"
			}
			p.errs = append(p.errs, ParseError{Pos: p.tok.Start, Message: msg})
		}
		errs = p.errs
	}()
	p.parseStatementList(false)
	return false, p.errs
}

func (p *Parser) bump() lexer.Token {
	old := p.tok
	p.lastEnd = old.End
	p.tok = p.lex.Next()
	return old
}

func (p *Parser) peekNext() lexer.Token {
	cp := p.lex.Checkpoint()
	t := p.lex.Next()
	p.lex.Rewind(cp)
	return t
}

func (p *Parser) expectPunct(text string) uint32 {
	if !p.atPunct(text) {
		panic("expected '" + text + "'")
	}
	end := p.tok.End
	p.bump()
	return end
}

// consumeSemicolon consumes a trailing `;` if present; TypeScript/JS's
// automatic-semicolon-insertion means its absence is not an error here
// (the grammar is only concerned with byte spans, not validating ASI
// eligibility beyond what spec-mandated recovery rules require).
func (p *Parser) consumeSemicolon() {
	if p.atPunct(";") {
		p.bump()
	}
}

// --- statement list / block ------------------------------------------------

func (p *Parser) parseStatementList(stopAtBrace bool) {
	for p.tok.Kind != lexer.EOF {
		if stopAtBrace && p.atPunct("}") {
			return
		}
		p.parseStatement()
	}
}

// parseBlock parses `{ stmts... }`, returning its span.
func (p *Parser) parseBlock() (start, end uint32) {
	start = p.expectPunct("{") - 1
	p.parseStatementList(true)
	end = p.expectPunct("}")
	return start, end
}

// --- statements -------------------------------------------------------

func (p *Parser) parseStatement() {
	start := p.tok.Start

	switch {
	case p.atPunct(";"):
		p.bump()
		p.h.Statement(start, p.prevEnd())
		return
	case p.atPunct("{"):
		_, end := p.parseBlock()
		p.h.Statement(start, end)
		return
	case p.atKeyword("var"), p.atKeyword("let"):
		p.parseVarDecl()
		p.h.Statement(start, p.prevEnd())
		return
	case p.atKeyword("const") && p.peekIsConstEnum():
		p.parseEnumDeclaration(start, false, true)
		p.h.Statement(start, p.prevEnd())
		return
	case p.atKeyword("const"):
		p.parseVarDecl()
		p.h.Statement(start, p.prevEnd())
		return
	case p.atKeyword("function"):
		end := p.parseFunctionLike(true, false)
		p.h.Statement(start, end)
		return
	case p.atKeyword("class"):
		end := p.parseClassLike(true)
		p.h.Statement(start, end)
		return
	case p.atKeyword("interface"):
		end := p.skipInterfaceDecl()
		p.h.StripInterfaceDecl(start, end)
		p.h.Statement(start, end)
		return
	case p.atKeyword("enum"):
		p.parseEnumDeclaration(start, false, false)
		p.h.Statement(start, p.prevEnd())
		return
	case p.atKeyword("type") && p.peekIsTypeAliasName():
		end := p.skipTypeAliasDecl()
		p.h.StripTypeAliasDecl(start, end)
		p.h.Statement(start, end)
		return
	case (p.atKeyword("namespace") || p.atKeyword("module")) && p.peekIsNamespaceName():
		p.parseNamespaceDeclaration(start, false)
		p.h.Statement(start, p.prevEnd())
		return
	case p.atKeyword("declare"):
		p.parseAmbientDeclaration(start)
		p.h.Statement(start, p.prevEnd())
		return
	case p.atKeyword("import") && !p.peekIsDynamicImport():
		p.parseImportDeclaration(start)
		p.h.Statement(start, p.prevEnd())
		return
	case p.atKeyword("export"):
		p.parseExportDeclaration(start)
		p.h.Statement(start, p.prevEnd())
		return
	case p.atKeyword("if"):
		p.parseIfStatement()
		p.h.Statement(start, p.prevEnd())
		return
	case p.atKeyword("while"):
		p.parseWhileStatement()
		p.h.Statement(start, p.prevEnd())
		return
	case p.atKeyword("do"):
		p.parseDoWhileStatement()
		p.h.Statement(start, p.prevEnd())
		return
	case p.atKeyword("for"):
		p.parseForStatement()
		p.h.Statement(start, p.prevEnd())
		return
	case p.atKeyword("try"):
		p.parseTryStatement()
		p.h.Statement(start, p.prevEnd())
		return
	case p.atKeyword("switch"):
		p.parseSwitchStatement()
		p.h.Statement(start, p.prevEnd())
		return
	case p.atKeyword("return"), p.atKeyword("throw"):
		p.bump()
		if !p.atPunct(";") && !p.atPunct("}") && p.tok.Kind != lexer.EOF && !p.tok.NewlineBefore {
			p.parseExpression()
		}
		p.consumeSemicolon()
		p.h.Statement(start, p.prevEnd())
		return
	case p.atKeyword("break"), p.atKeyword("continue"):
		p.bump()
		if p.atIdent() && !p.tok.NewlineBefore {
			p.bump()
		}
		p.consumeSemicolon()
		p.h.Statement(start, p.prevEnd())
		return
	case p.atKeyword("debugger"):
		p.bump()
		p.consumeSemicolon()
		p.h.Statement(start, p.prevEnd())
		return
	default:
		info := p.parseExpression()
		exprEnd := p.prevEnd()
		p.consumeSemicolon()
		end := p.prevEnd()
		p.reportExpressionStatement(info, start, exprEnd, end)
		p.h.Statement(start, end)
		return
	}
}

// reportExpressionStatement tells the handler about the two expression
// shapes it needs to see ahead of the generic Statement callback: a bare
// string literal (directive prologue candidate) and a whole `super(...)`
// call. Whether the expression fills the ENTIRE statement is decided by
// comparing against exprEnd (the expression's own end, before any
// trailing `;` is consumed) — matching oxidase's handler.rs, which
// compares the call/string expression's own span rather than the
// enclosing ExpressionStatement's span; the two recorded positions are
// reported as end (the statement's, semicolon-inclusive end) since that
// is the position callers key their own insertion/ASI logic off of.
func (p *Parser) reportExpressionStatement(info exprInfo, start, exprEnd, end uint32) {
	if info.isStringLiteral && info.start == start && info.end == exprEnd {
		p.h.DirectivePrologueStmt(start, end)
	}
	if info.isSuperCall && info.start == start && info.end == exprEnd {
		p.h.SuperCallStmt(start, end, true)
	}
}

// prevEnd returns the end of the token just consumed (the current token's
// position hasn't advanced past it yet in byte terms, but Start of the
// NEXT token sits right after any trivia; for statement-span purposes we
// want the end of the last significant token, tracked directly by callers
// via p.lastEnd).
func (p *Parser) prevEnd() uint32 { return p.lastEnd }
