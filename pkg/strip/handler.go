// Package strip implements pkg/parser.Handler: every type-erasure and
// local-lowering rule is encoded here as patch emission against a
// pkg/patch.Log, driven by pkg/scope.Stack for the handful of rules that
// need cross-production memory (parameter properties, enum reverse maps,
// namespace export rewriting, ASI recovery).
package strip

import (
	"github.com/tsstrip/tsstrip/pkg/patch"
	"github.com/tsstrip/tsstrip/pkg/scope"
)

// Handler accumulates patches for one source file. It implements
// pkg/parser.Handler.
type Handler struct {
	source []byte
	log    *patch.Log
	scopes *scope.Stack

	checkpoints []Checkpoint
}

// New creates a Handler over source, writing into log. The scope stack
// starts with one Other scope for the program's top-level statements.
func New(source []byte, log *patch.Log) *Handler {
	scopes := scope.NewStack()
	scopes.Push(scope.Other)
	return &Handler{source: source, log: log, scopes: scopes}
}

// --- type-only erasure ------------------------------------------------

func (h *Handler) StripTypeAnnotation(start, end uint32) { h.log.Append(patch.Strip(start, end)) }
func (h *Handler) StripTypeParams(start, end uint32)     { h.log.Append(patch.Strip(start, end)) }
func (h *Handler) StripTypeArgs(start, end uint32)       { h.log.Append(patch.Strip(start, end)) }
func (h *Handler) StripDefiniteAssignment(pos uint32)    { h.log.Append(patch.Strip(pos, pos+1)) }
func (h *Handler) StripOptionalMark(pos uint32)          { h.log.Append(patch.Strip(pos, pos+1)) }

// StripAsExpr erases the trailing ` as T` (or ` satisfies T`) suffix of an
// expression, keeping the expression itself untouched.
func (h *Handler) StripAsExpr(exprEnd, nodeEnd uint32) { h.log.Append(patch.Strip(exprEnd, nodeEnd)) }
func (h *Handler) StripSatisfiesExpr(exprEnd, nodeEnd uint32) {
	h.log.Append(patch.Strip(exprEnd, nodeEnd))
}

// StripPrefixAssertion erases a `<T>expr` prefix type assertion. Per the
// decided Open Question, the erasure always wraps the surviving expression
// in parens — `(expr)` — regardless of the syntactic position the
// assertion appeared in, since an unparenthesized leftover could change
// operator precedence (e.g. `<T>a + b` erasing to `a + b` would be fine,
// but `<T>a as B` or `<T>(a, b)` style call-position uses would not be).
func (h *Handler) StripPrefixAssertion(ltStart, gtEnd, exprEnd uint32) {
	h.log.Append(patch.Replace(ltStart, gtEnd, "("))
	h.log.Append(patch.Insert(exprEnd, ")"))
}

func (h *Handler) StripInterfaceDecl(start, end uint32) {
	h.log.AppendMergingTail(patch.Strip(start, end))
}
func (h *Handler) StripTypeAliasDecl(start, end uint32) {
	h.log.AppendMergingTail(patch.Strip(start, end))
}
func (h *Handler) StripAmbientDecl(start, end uint32) {
	h.log.AppendMergingTail(patch.Strip(start, end))
}
func (h *Handler) StripOverloadSignature(start, end uint32) {
	h.log.AppendMergingTail(patch.Strip(start, end))
}
func (h *Handler) StripImplementsClause(start, end uint32) { h.log.Append(patch.Strip(start, end)) }
func (h *Handler) StripThisParam(start, end uint32)        { h.log.Append(patch.Strip(start, end)) }
func (h *Handler) StripIndexSignature(start, end uint32)   { h.log.Append(patch.Strip(start, end)) }
func (h *Handler) StripTypeOnlySpecifier(start, end uint32) {
	h.log.Append(patch.Strip(start, end))
}

// --- local lowerings ----------------------------------------------------

// ImportEquals lowers `import X = require("m")` to `const X = require("m")`
// and `import X = Y.Z` to `var X = Y.Z`.
func (h *Handler) ImportEquals(keywordStart, keywordEnd uint32, isRequire bool) {
	repl := "var "
	if isRequire {
		repl = "const "
	}
	h.log.BinarySearchInsert(patch.Replace(keywordStart, keywordEnd, repl))
}

// ExportAssignment lowers `export = expr;` to `module.exports = expr;`.
func (h *Handler) ExportAssignment(start, exprStart uint32) {
	h.log.BinarySearchInsert(patch.Replace(start, exprStart, "module.exports = "))
}

func (h *Handler) ArrowReturnType(parenCloseStart, parenCloseEnd, typeEnd, arrowStart uint32) {
	h.log.Append(patch.Strip(parenCloseEnd, arrowStart))
}
func (h *Handler) ArrowTypeParams(start, end uint32) { h.log.Append(patch.Strip(start, end)) }

// --- ASI recovery ---------------------------------------------------------

// asiTriggers reports the first bytes of a statement that can fuse onto a
// missing semicolon left by the previous statement: `(`, `[`, backtick,
// `+`, `-`, `/`.
func asiTriggers(c byte) bool {
	switch c {
	case '(', '[', '`', '+', '-', '/':
		return true
	}
	return false
}

// Statement fires once per statement (post-order). It mirrors
// StripHandler::statement_asi in original_source/crates/oxidase/src/
// handler.rs: it first decides whether the PREVIOUS sibling statement's
// patch needs a semicolon appended (by inspecting this statement's first
// source byte), then records this statement's own patch shape for the
// next sibling to consult, and finally drives the directive-prologue scan
// for any enclosing FunctionWithParamProps scope.
func (h *Handler) Statement(start, end uint32) {
	top := h.scopes.Top()
	if top == nil {
		return
	}

	prev := top.LastStatement
	isFirst := prev == nil
	if prev != nil && prev.HasPatch && int(start) < len(h.source) && asiTriggers(h.source[start]) {
		needASI := (prev.Whole && !prev.IsFirst) || !prev.Whole
		if needASI {
			p := h.log.At(prev.PatchRef)
			if p.Replacement == "" {
				p.Replacement = ";"
			} else {
				p.Replacement = p.Replacement + ";"
			}
			h.log.Set(prev.PatchRef, p)
		}
	}

	next := &scope.LastStatement{Start: start, End: end, IsFirst: isFirst}
	if h.log.Len() > 0 {
		idx := h.log.Len() - 1
		last := h.log.At(idx)
		if last.End == end {
			next.HasPatch = true
			next.PatchRef = idx
			next.Whole = last.Start == start
		}
	}
	top.LastStatement = next

	if fp := top.FuncParamProps; fp != nil {
		switch fp.PrologueState {
		case scope.PrologueInit:
			fp.PrologueState = scope.PrologueEnded
			fp.PrologueLastEnd = nil
		case scope.PrologueInProgress:
			if fp.PrologueLastEnd == nil || *fp.PrologueLastEnd != end {
				fp.PrologueState = scope.PrologueEnded
			}
		}
	}
}

// ControlBodyStripped fires when an if/while/for/do-while body (a single,
// non-block statement) turns out to have been stripped to nothing; the
// body must still terminate the control construct, so the empty
// replacement becomes a bare `;`.
func (h *Handler) ControlBodyStripped(start, end uint32) {
	if h.log.Len() == 0 {
		return
	}
	idx := h.log.Len() - 1
	p := h.log.At(idx)
	if p.Start == start && p.End == end && p.Replacement == "" {
		p.Replacement = ";"
		h.log.Set(idx, p)
	}
}

// --- speculative parsing --------------------------------------------------

// Checkpoint captures enough state to undo every patch and scope push
// performed since it was taken.
type Checkpoint struct {
	PatchLen  int
	ScopeDepth scope.Checkpoint
}

func (h *Handler) Checkpoint() int {
	h.checkpoints = append(h.checkpoints, Checkpoint{PatchLen: h.log.Len(), ScopeDepth: h.scopes.Checkpoint()})
	return len(h.checkpoints) - 1
}

func (h *Handler) Rewind(id int) {
	cp := h.checkpoints[id]
	h.log.Truncate(cp.PatchLen)
	h.scopes.Rewind(cp.ScopeDepth)
	h.checkpoints = h.checkpoints[:id]
}
