package parser

import (
	"strconv"
	"strings"

	"github.com/tsstrip/tsstrip/pkg/lexer"
)

// enumCounter tracks the running auto-increment value for enum members
// without an explicit initializer: it continues from the previous member's
// PLAIN integer-literal initializer, and starts at 0 at the first member
// and after any member whose initializer is not a plain integer literal.
type enumCounter struct {
	val   int
	known bool
}

func (p *Parser) parseEnumDeclaration(keywordStart uint32, isAmbient, isConst bool) {
	if isConst {
		p.bump() // const
	}
	p.bump() // enum

	idStart := p.tok.Start
	name := p.tok.Text
	idEnd := idStart
	if p.atIdent() {
		p.bump()
		idEnd = p.lastEnd
	}

	bodyOpenBrace := p.expectPunct("{") - 1
	p.h.EnterEnum(name, keywordStart, idStart, idEnd, bodyOpenBrace, isAmbient)

	c := &enumCounter{}
	for !p.atPunct("}") && p.tok.Kind != lexer.EOF {
		p.parseEnumMember(c)
	}
	end := p.expectPunct("}")
	p.h.LeaveEnum(end)
}

func (p *Parser) parseEnumMember(c *enumCounter) {
	isIdentifier := p.tok.Kind != lexer.String
	name := p.tok.Text
	if p.tok.Kind == lexer.String {
		name = p.stringLiteralValue(p.tok.Text)
	}
	p.bump()
	nameEnd := p.lastEnd

	var hasInit bool
	var valueText string
	var valueEnd uint32

	if p.atPunct("=") {
		hasInit = true
		p.bump()
		initStart := p.tok.Start
		p.parseAssignment()
		valueEnd = p.lastEnd
		valueText = string(p.src[initStart:valueEnd])
		if n, err := strconv.Atoi(strings.TrimSpace(valueText)); err == nil {
			c.val, c.known = n, true
		} else {
			c.known = false
		}
	} else {
		if c.known {
			c.val++
		} else {
			c.val = 0
		}
		c.known = true
		valueText = strconv.Itoa(c.val)
		valueEnd = nameEnd
	}

	separatorEnd := valueEnd
	if p.atPunct(",") {
		p.bump()
		separatorEnd = p.lastEnd
	}

	p.h.EnumMember(hasInit, isIdentifier, name, valueText, nameEnd, valueEnd, separatorEnd)
}

// stringLiteralValue strips the surrounding quotes from a string token's
// raw text; escape sequences are left untouched since the lowered output
// re-quotes the same raw content verbatim.
func (p *Parser) stringLiteralValue(raw string) string {
	if len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}
	return raw
}

func (p *Parser) peekIsConstEnum() bool {
	return p.trySpan(func() bool {
		p.bump() // const
		return p.atKeyword("enum")
	})
}
