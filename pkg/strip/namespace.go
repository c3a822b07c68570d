package strip

import (
	"strings"

	"github.com/tsstrip/tsstrip/pkg/patch"
	"github.com/tsstrip/tsstrip/pkg/scope"
)

// EnterNamespace opens a Namespace scope and, for a non-ambient
// declaration, replaces the `namespace Name `/`module Name ` keyword-and-
// name span with the lowering prelude `var A; (function () `, reusing the
// source's own opening brace verbatim as the IIFE body's own brace (a
// dotted name `A.B.C` has no intermediate source braces to anchor nested
// IIFEs on, so the parser flattens it to a single scope whose name joins
// the segments with `$` before calling here; name is always a single bare
// identifier by the time EnterNamespace sees it).
func (h *Handler) EnterNamespace(name string, isAmbient bool, keywordStart, bodyOpenBrace uint32) {
	idx := h.scopes.Push(scope.NamespaceKind)
	ns := h.scopes.At(idx).Namespace
	ns.Name = name
	ns.IsAmbient = isAmbient
	ns.BodyStrippedWhole = true
	ns.Start = keywordStart

	if isAmbient {
		return
	}
	h.log.Append(patch.Replace(keywordStart, bodyOpenBrace, "var "+name+"; (function () "))
}

// NamespaceExportStmt rewrites `export <decl>` inside a namespace body:
// the `export` keyword is erased and a `this.id=id;` suffix assignment is
// appended per bound identifier, after the (already-visited) declaration.
func (h *Handler) NamespaceExportStmt(exportStart, declEnd uint32, bindingIdentifiers []string) {
	ns := h.scopes.Top().Namespace
	if ns != nil {
		ns.SawAnyStatement = true
		ns.BodyStrippedWhole = false
	}
	exportKeywordEnd := exportStart + uint32(len("export"))
	h.log.Append(patch.Strip(exportStart, exportKeywordEnd))

	var suffix strings.Builder
	for _, id := range bindingIdentifiers {
		suffix.WriteString("this.")
		suffix.WriteString(id)
		suffix.WriteByte('=')
		suffix.WriteString(id)
		suffix.WriteByte(';')
	}
	if suffix.Len() > 0 {
		h.log.Append(patch.Insert(declEnd, suffix.String()))
	}
}

// NamespaceBodyStatement is called by the parser (after Statement) for
// every top-level statement of a namespace body; wasStripped reports
// whether that statement was fully stripped, so LeaveNamespace can tell
// whether the whole body reduced to ambient content only.
func (h *Handler) NamespaceBodyStatement(wasStripped bool) {
	ns := h.scopes.Top().Namespace
	if ns == nil {
		return
	}
	ns.SawAnyStatement = true
	if !wasStripped {
		ns.BodyStrippedWhole = false
	}
}

// LeaveNamespace closes the IIFE by inserting `).call(A||(A={}),A);`
// after the source's own closing `}`, or — if every top-level statement in the
// body was itself fully stripped (an ambient-only body) — strips the
// whole namespace declaration instead, merging over the prelude and any
// per-statement patches already emitted.
func (h *Handler) LeaveNamespace(end uint32) {
	ns := h.scopes.Pop().Namespace
	if ns == nil || ns.IsAmbient {
		return
	}
	if ns.BodyStrippedWhole {
		h.log.AppendMergingTail(patch.Strip(ns.Start, end))
		return
	}
	h.log.Append(patch.Insert(end, ").call("+ns.Name+"||("+ns.Name+"={}),"+ns.Name+");"))
}
