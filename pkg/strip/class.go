package strip

import (
	"github.com/tsstrip/tsstrip/pkg/patch"
	"github.com/tsstrip/tsstrip/pkg/scope"
)

// EnterClass opens a Class scope; openBracePos is where the class body's
// `{` sits, the insertion point for parameter-property field declarations
// collected from the first constructor.
func (h *Handler) EnterClass(openBracePos uint32) {
	idx := h.scopes.Push(scope.ClassKind)
	h.scopes.At(idx).Class.OpenBracePos = openBracePos
}

// LeaveClass inserts `<id>;` field declarations, one per parameter
// property declared by the first constructor seen in the class, right
// after the class body's opening brace.
func (h *Handler) LeaveClass() {
	cs := h.scopes.Pop().Class
	if cs == nil || len(cs.FirstCtorParamPropIDSpans) == 0 {
		return
	}
	var text string
	for _, sp := range cs.FirstCtorParamPropIDSpans {
		text += sp.Name + ";"
	}
	h.log.BinarySearchInsert(patch.Insert(cs.OpenBracePos+1, text))
}

// EnterClassElement fires at the start of each class element, before any
// of its modifiers are reported. It first applies the class-element ASI
// rule to whatever modifier-strip patch the PREVIOUS element left behind
// (tracked as CurrentElementFirstModifierPatchRef), then resets that
// tracking for the element now starting — mirroring handler.rs's
// class_element_prefix_patch_asi followed immediately by clearing the
// index for the new element.
func (h *Handler) EnterClassElement(elementStart uint32) {
	cs := h.scopes.Top().Class
	if cs == nil {
		return
	}
	if cs.CurrentElementFirstModifierPatchRef >= 0 {
		idx := cs.CurrentElementFirstModifierPatchRef
		p := h.log.At(idx)
		if p.Start == elementStart && (p.Replacement == "" || p.Replacement[0] != ';') {
			p.Replacement = ";" + p.Replacement
			h.log.Set(idx, p)
		}
	}
	cs.CurrentElementFirstModifierPatchRef = -1
}

// ClassElementModifier strips one class-element modifier keyword
// (public/private/protected/readonly/abstract/override/declare) and — if it is the
// first modifier patch seen for the current element — remembers it for
// the next element's ASI check.
func (h *Handler) ClassElementModifier(start, end uint32, keyword string) {
	h.log.Append(patch.Strip(start, end))
	cs := h.scopes.Top().Class
	if cs != nil && cs.CurrentElementFirstModifierPatchRef < 0 {
		cs.CurrentElementFirstModifierPatchRef = h.log.Len() - 1
	}
}

// EnterFunctionWithParamProps opens a scope for a constructor or method;
// the parser calls it before the parameter list is parsed, so it is
// opened whether or not any parameter turns out to carry a modifier.
func (h *Handler) EnterFunctionWithParamProps() {
	h.scopes.Push(scope.FunctionWithParamPropsKind)
}

// ParamProperty strips the property modifier and remembers the bound
// identifier for both the field-declaration list and the constructor-body
// init assignment. Binding patterns other than plain identifiers never
// reach this method — the parser only calls it for a bare identifier
// parameter carrying at least one modifier.
func (h *Handler) ParamProperty(modStart, modEnd, idStart, idEnd uint32, idText string) {
	h.log.Append(patch.Strip(modStart, modEnd))
	fp := h.scopes.Top().FuncParamProps
	if fp != nil {
		fp.ParamPropIDSpans = append(fp.ParamPropIDSpans, scope.Span{Start: idStart, End: idEnd, Name: idText})
	}
}

// DirectivePrologueStmt fires for an expression statement whose
// expression is a bare string literal, ahead of the generic Statement
// callback for the same node — mirroring handle_expression_statement
// running before handle_statement for a prologue candidate.
func (h *Handler) DirectivePrologueStmt(start, end uint32) {
	fp := h.scopes.Top().FuncParamProps
	if fp == nil {
		return
	}
	if fp.PrologueState == scope.PrologueInit || fp.PrologueState == scope.PrologueInProgress {
		fp.PrologueState = scope.PrologueInProgress
		e := end
		fp.PrologueLastEnd = &e
	}
}

// SuperCallStmt fires when a `super(...)` call is recognized; when it is
// the statement's entire expression (isWholeExprStmt), its end becomes a
// candidate parameter-property init-insertion point.
func (h *Handler) SuperCallStmt(start, end uint32, isWholeExprStmt bool) {
	if !isWholeExprStmt {
		return
	}
	fp := h.scopes.Top().FuncParamProps
	if fp == nil {
		return
	}
	e := end
	fp.SuperCallStmtEnd = &e
}

// LeaveFunctionWithParamProps closes the scope, folding its parameter
// properties into the enclosing class (the first constructor's spans seed
// the field-declaration list; every constructor's own spans drive its own
// init-assignment insertion) and inserting the `this.id=id;` assignments
// at the computed insert point: the end of a whole `super(...)` call
// statement, else the end of the trailing directive prologue, else right
// after the body's opening brace.
//
// When the element turns out not to be the constructor, any
// first-constructor field-declaration spans it claimed are retracted: a
// non-constructor method is visited in source order just like a
// constructor, so a method with parameter modifiers appearing before the
// real constructor (`class A { foo(private x) {} constructor(private y)
// {} }`) would otherwise squat on the class's first-constructor slot and
// starve the actual constructor of its field declaration.
func (h *Handler) LeaveFunctionWithParamProps(elementStart, bodyOpenBrace uint32, isConstructor bool) {
	fp := h.scopes.Pop().FuncParamProps
	if fp == nil || len(fp.ParamPropIDSpans) == 0 {
		return
	}

	classIdx := h.scopes.NearestClass()
	var cs *scope.ClassState
	if classIdx >= 0 {
		cs = h.scopes.At(classIdx).Class
		if len(cs.FirstCtorParamPropIDSpans) == 0 {
			cs.FirstCtorParamPropIDSpans = append(cs.FirstCtorParamPropIDSpans, fp.ParamPropIDSpans...)
		}
	}

	if !isConstructor {
		if cs != nil && len(cs.FirstCtorParamPropIDSpans) > 0 && cs.FirstCtorParamPropIDSpans[0].Start >= elementStart {
			cs.FirstCtorParamPropIDSpans = nil
		}
		return
	}

	var inits string
	for _, sp := range fp.ParamPropIDSpans {
		inits += "this." + sp.Name + "=" + sp.Name + ";"
	}

	switch {
	case fp.SuperCallStmtEnd != nil:
		h.insertCtorInit(*fp.SuperCallStmtEnd, inits)
	case fp.PrologueLastEnd != nil:
		h.insertCtorInit(*fp.PrologueLastEnd, inits)
	default:
		h.log.BinarySearchInsert(patch.Insert(bodyOpenBrace+1, inits))
	}
}

// insertCtorInit inserts "<inits>" (already a leading-`;`-free run of
// `this.id=id;` assignments) at pos, prefixing a `;` unless the byte
// immediately preceding pos is itself a `;` — reusing that terminator
// instead of doubling it.
func (h *Handler) insertCtorInit(pos uint32, inits string) {
	if pos > 0 && pos <= uint32(len(h.source)) && h.source[pos-1] == ';' {
		h.log.BinarySearchInsert(patch.Replace(pos-1, pos, ";"+inits))
		return
	}
	h.log.BinarySearchInsert(patch.Insert(pos, ";"+inits))
}
