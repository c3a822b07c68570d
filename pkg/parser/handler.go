package parser

// Handler is the event interface the Parser drives: one method per
// grammar production (or production detail) the strip engine cares about,
// following spec.md §9's "polymorphic parser-handler" design note. A
// single concrete implementation (pkg/strip.Handler) encodes every rule in
// spec.md §4.3-§4.4 as patch emission; NoopHandler gives tests a
// zero-value stand-in that only a subset of methods need to override.
//
// All byte offsets are into the original source buffer. Methods fire in
// child-before-parent (post-order) sequence: by the time a production's
// method is called, every patch its children emitted is already in the
// log, so handlers that inspect "the last patch" see their own subtree's
// work, never a sibling's.
type Handler interface {
	// --- type-only erasure -------------------------------------------------

	StripTypeAnnotation(start, end uint32)
	StripTypeParams(start, end uint32)
	StripTypeArgs(start, end uint32)
	StripDefiniteAssignment(pos uint32)
	StripOptionalMark(pos uint32)
	StripAsExpr(exprEnd, nodeEnd uint32)
	StripSatisfiesExpr(exprEnd, nodeEnd uint32)
	StripPrefixAssertion(ltStart, gtEnd, exprEnd uint32)
	StripInterfaceDecl(start, end uint32)
	StripTypeAliasDecl(start, end uint32)
	StripAmbientDecl(start, end uint32)
	StripImplementsClause(start, end uint32)
	StripThisParam(start, end uint32)
	StripIndexSignature(start, end uint32)
	StripTypeOnlySpecifier(start, end uint32)
	StripOverloadSignature(start, end uint32)

	// --- local lowerings -----------------------------------------------

	ImportEquals(keywordStart, keywordEnd uint32, isRequire bool)
	ExportAssignment(start, exprStart uint32)

	// EnterClass is called once the class's opening brace has been seen,
	// with its byte offset; LeaveClass fires after every element has been
	// visited, once the strip handler has accumulated the identifiers the
	// first constructor's parameter properties need declared as fields.
	EnterClass(openBracePos uint32)
	LeaveClass()

	// EnterClassElement fires once per class element, at the element's
	// start, before any of its modifiers are reported.
	EnterClassElement(elementStart uint32)
	ClassElementModifier(start, end uint32, keyword string)

	EnterFunctionWithParamProps()
	ParamProperty(modStart, modEnd, idStart, idEnd uint32, idText string)
	DirectivePrologueStmt(start, end uint32)
	SuperCallStmt(start, end uint32, isWholeExprStmt bool)
	// EnterFunctionWithParamProps/LeaveFunctionWithParamProps bracket every
	// class method and constructor, whether or not any of its parameters
	// carries a modifier; elementStart
	// is the enclosing class element's own start (used to tell whether a
	// non-constructor method claimed the class's first-constructor slot
	// before this call can tell it wasn't actually the constructor);
	// bodyOpenBrace is the position of the function body's opening brace,
	// used as the fallback init-insertion point when no prologue or
	// super() call was found. isConstructor is true only for a constructor
	// with a body.
	LeaveFunctionWithParamProps(elementStart, bodyOpenBrace uint32, isConstructor bool)

	// EnterEnum fires once the enum's name and body open brace have been
	// seen. idStart/idEnd bound the name identifier; bodyOpenBrace is the
	// byte offset of the body's opening `{`, reused verbatim as the lowered
	// IIFE's own opening brace.
	EnterEnum(name string, keywordStart, idStart, idEnd, bodyOpenBrace uint32, isAmbient bool)
	// EnumMember fires once per member, after its optional initializer (if
	// any) has been fully seen. valueText is either the source text of an
	// explicit initializer or the parser-computed auto-increment value
	// when hasInit is false; nameEnd bounds the member's name token,
	// valueEnd the end of its initializer (== nameEnd when hasInit is
	// false), and separatorEnd the end of its trailing comma, if any
	// (== valueEnd for the last member).
	EnumMember(hasInit, isIdentifier bool, name, valueText string, nameEnd, valueEnd, separatorEnd uint32)
	LeaveEnum(end uint32)

	// EnterNamespace fires once the namespace's body open brace has been
	// seen. For a non-ambient namespace, the span [keywordStart,
	// bodyOpenBrace) — the `namespace Name `/`module Name ` keyword and
	// name text — is replaced with the lowering prelude, reusing the
	// source's own opening brace verbatim as the IIFE body's brace, the
	// same trick EnterEnum uses for its fake parameter list.
	EnterNamespace(name string, isAmbient bool, keywordStart, bodyOpenBrace uint32)
	NamespaceExportStmt(exportStart, declEnd uint32, bindingIdentifiers []string)
	// NamespaceBodyStatement fires once per top-level statement of a
	// namespace body, after the generic Statement callback, reporting
	// whether the parser's own per-statement strip rules reduced that
	// statement to nothing (wasStripped) — letting LeaveNamespace decide
	// whether the whole body was ambient-only.
	NamespaceBodyStatement(wasStripped bool)
	LeaveNamespace(end uint32)

	ArrowReturnType(parenCloseStart, parenCloseEnd, typeEnd, arrowStart uint32)
	ArrowTypeParams(start, end uint32)

	// --- ASI recovery ----------------------------------------------------

	// Statement fires once per statement, after all of its own patches
	// have been emitted (post-order). The handler inspects the log's last
	// patch against [start,end) to remember whether this statement itself
	// ends in a tail- or whole-strip, and compares the previous sibling
	// statement's remembered patch against this statement's first byte to
	// decide whether that previous patch needs an ASI semicolon appended.
	Statement(start, end uint32)

	// ControlBodyStripped fires when an if/while/for/do-while body
	// (single-statement, non-block) turns out to have been stripped to
	// nothing; span is the body's own span.
	ControlBodyStripped(start, end uint32)

	// --- speculative parsing ---------------------------------------------

	Checkpoint() int
	Rewind(checkpoint int)
}
