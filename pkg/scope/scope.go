// Package scope mirrors the parser's scope structure and hosts the
// per-scope transform state the strip handler needs: the parameter-property
// init-point search, enum member bookkeeping, and namespace export
// rewriting, per spec.md §3.
package scope

// Kind tags which variant of per-scope state a Scope carries. Go has no
// native tagged union, so — following the teacher's discriminated-struct
// idiom (pkg/plugin/builtin/sum_types.go) — Kind selects which of the
// pointer fields below is populated; the rest are nil.
type Kind int

const (
	Other Kind = iota
	ClassKind
	FunctionWithParamPropsKind
	EnumKind
	NamespaceKind
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "Other"
	case ClassKind:
		return "Class"
	case FunctionWithParamPropsKind:
		return "FunctionWithParamProps"
	case EnumKind:
		return "Enum"
	case NamespaceKind:
		return "Namespace"
	default:
		return "Unknown"
	}
}

// LastStatement records the previous sibling statement's span, whether it
// was the scope's first statement, and (if its trailing or entire span
// coincides with the log's last patch at the time it was visited) which
// kind of patch that was — so the next statement's ASI check can decide
// whether to rewrite it.
type LastStatement struct {
	Start, End uint32
	IsFirst    bool
	HasPatch   bool
	PatchRef   int // index into the owning Log, valid only if HasPatch
	Whole      bool // true: patch spans exactly [Start,End); false: tail only
}

// Span is a byte range [Start, End) into the original source.
type Span struct {
	Start, End uint32
	Name       string
}

// ClassState is the per-scope state for Kind == ClassKind.
type ClassState struct {
	// OpenBracePos is the byte offset of the class body's opening `{`.
	OpenBracePos uint32

	// CurrentElementFirstModifierPatchRef references the first
	// class-element-modifier strip patch emitted for the class element
	// currently being visited; reset to -1 at the start of each element.
	// Used by the class-element ASI rule.
	CurrentElementFirstModifierPatchRef int

	// FirstCtorParamPropIDSpans holds the identifier spans of parameter
	// properties declared by the FIRST constructor seen in this class;
	// these become `<id>;` field declarations inserted after `{`.
	FirstCtorParamPropIDSpans []Span
}

// FunctionWithParamPropsState is the per-scope state for
// Kind == FunctionWithParamPropsKind: a constructor or any method (parameter
// modifiers parse but are semantically meaningless outside a constructor),
// whether or not its parameter list contains a modified parameter.
type FunctionWithParamPropsState struct {
	ParamPropIDSpans []Span

	// SuperCallStmtEnd is set once a `super(...)` call is recognized as a
	// whole expression-statement; it is the end of that statement.
	SuperCallStmtEnd *uint32

	// LastSuperCallExprSpan is a slot for the span of a `super(...)` call
	// expression; pkg/strip neither sets nor reads it (the parser reports
	// whole-statement super calls directly via SuperCallStmt).
	LastSuperCallExprSpan *Span

	// PrologueState tracks progress through the directive prologue (the
	// leading run of bare string-literal expression statements).
	PrologueState PrologueScanState
	// PrologueLastEnd is the end of the last prologue statement seen, set
	// whenever PrologueState is InPrologues or has settled from it.
	PrologueLastEnd *uint32
}

// PrologueScanState tracks progress through a function body's directive
// prologue while searching for the parameter-property init point, per
// spec.md §4.4.
type PrologueScanState int

const (
	PrologueInit PrologueScanState = iota
	PrologueInProgress
	PrologueEnded
)

// EnumMember records one member of an enum declaration in source order,
// for the reverse-map folding and secondary-enum detection of spec.md
// §4.3.
type EnumMember struct {
	Text         string
	IsIdentifier bool
}

// EnumState is the per-scope state for Kind == EnumKind.
type EnumState struct {
	Name    string
	Members []EnumMember
}

// NamespaceState is the per-scope state for Kind == NamespaceKind.
type NamespaceState struct {
	Name      string
	IsAmbient bool
	// Start is the byte offset of the declaration's leading keyword
	// (`namespace`/`module`/`declare`), used to strip the whole
	// declaration if its body turns out to be ambient-only.
	Start uint32
	// BodyStrippedWhole accumulates whether every top-level statement
	// visited so far in this namespace's body was itself fully stripped;
	// if still true when the namespace is left, the whole thing strips.
	BodyStrippedWhole bool
	// SawAnyStatement records whether the body had any statement at all.
	// LeaveNamespace decides from BodyStrippedWhole alone, so an empty body
	// counts as fully stripped.
	SawAnyStatement bool
}

// Scope is one entry in the ScopeStack, per spec.md §3.
type Scope struct {
	Kind          Kind
	LastStatement *LastStatement

	Class          *ClassState
	FuncParamProps *FunctionWithParamPropsState
	Enum           *EnumState
	Namespace      *NamespaceState

	// EnumMemberNamesByEnumName hosts, at whichever scope declares an
	// enum, that enum's final member list, keyed by name — so a later
	// sibling declaration with the same name in the same scope is
	// recognized as a secondary enum.
	EnumMemberNamesByEnumName map[string][]EnumMember
}

func newScope(kind Kind) *Scope {
	return &Scope{Kind: kind}
}
