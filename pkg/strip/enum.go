package strip

import (
	"strings"

	"github.com/tsstrip/tsstrip/pkg/patch"
	"github.com/tsstrip/tsstrip/pkg/scope"
)

// EnterEnum opens an Enum scope and emits the lowering prelude. A primary
// enum (the first declaration of this name in the enclosing scope) becomes
// `var A; (function (A) {`; a secondary enum (a later declaration of the
// same name, used to merge additional members into an already-declared
// enum object) drops the `var A;` and instead reuses the identifier
// bindings already in scope via a destructuring `var {X,Y}=A;` inserted at
// the top of its own IIFE body.
func (h *Handler) EnterEnum(name string, keywordStart, idStart, idEnd, bodyOpenBrace uint32, isAmbient bool) {
	prior := h.scopes.NearestNamedEnum(name)

	idx := h.scopes.Push(scope.EnumKind)
	es := h.scopes.At(idx).Enum
	es.Name = name

	if isAmbient {
		return
	}

	prelude := "(function (" // secondary: no `var A;`
	if prior == nil {
		prelude = "var " + name + "; " + prelude
	}
	h.log.AppendSplittingOnLineTerminator(patch.Replace(keywordStart, idStart, prelude))
	h.log.Append(patch.Insert(idEnd, ")"))

	if prior != nil {
		names := make([]string, 0, len(prior.Members))
		for _, m := range prior.Members {
			if m.IsIdentifier {
				names = append(names, m.Text)
			}
		}
		if len(names) > 0 {
			h.log.Append(patch.Insert(bodyOpenBrace+1, "var {"+strings.Join(names, ",")+"}="+name+";"))
		}
	}
}

// EnumMember lowers one member. An identifier member keeps its bare name
// as a (hoisted, forward-declared) local variable holding its numeric
// value; a string-literal member (a name that is not a valid identifier)
// keeps the literal in place as a harmless no-op expression statement and
// folds the reverse map entirely through bracket access, since it has no
// assignable local to reuse.
func (h *Handler) EnumMember(hasInit, isIdentifier bool, name, valueText string, nameEnd, valueEnd, separatorEnd uint32) {
	es := h.scopes.Top().Enum

	if isIdentifier {
		if !hasInit {
			h.log.Append(patch.Insert(nameEnd, "="+valueText))
		}
		h.log.Append(patch.Insert(valueEnd, ";var "+name+";this[this."+name+"="+name+"]='"+name+"';"))
	} else {
		if valueEnd > nameEnd {
			h.log.Append(patch.Strip(nameEnd, valueEnd))
		}
		q := quoteJSString(name)
		h.log.Append(patch.Insert(valueEnd, ";this[this["+q+"]="+valueText+"]="+q+";"))
	}

	if separatorEnd > valueEnd {
		h.log.Append(patch.Strip(valueEnd, separatorEnd))
	}

	if es != nil {
		es.Members = append(es.Members, scope.EnumMember{Text: name, IsIdentifier: isIdentifier})
	}
}

// LeaveEnum closes the IIFE by inserting `).call(A||(A={}),A);` after the
// source's own closing `}` (which ends the IIFE body) and records the
// enum's final member list against the enclosing scope for secondary-enum
// detection of later same-named declarations.
func (h *Handler) LeaveEnum(end uint32) {
	scopeIdx := h.scopes.Depth() - 1
	sc := h.scopes.Pop()
	es := sc.Enum
	if es == nil {
		return
	}

	parentIdx := scopeIdx - 1
	if parentIdx >= 0 {
		h.scopes.RecordEnum(parentIdx, es.Name, es.Members)
	}

	h.log.Append(patch.Insert(end, ").call("+es.Name+"||("+es.Name+"={}),"+es.Name+");"))
}

// quoteJSString renders name as a single-quoted JS string literal,
// escaping backslashes, single quotes and the four ECMAScript
// line-terminator code points so the result never breaks out of the quote
// or introduces a patch replacement spanning a newline.
func quoteJSString(name string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range name {
		switch r {
		case '\\', '\'':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case ' ':
			b.WriteString(`\u2028`)
		case ' ':
			b.WriteString(`\u2029`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
