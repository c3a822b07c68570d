package scope

// Stack mirrors the parser's scope structure. Per spec.md §9's "arena +
// indices" note, scope records live in a single slice and cross-scope
// references (a FunctionWithParamProps scope writing into its enclosing
// Class scope on leave) carry slice indices rather than back-pointers, so
// that Checkpoint/Rewind can simply truncate the slice.
type Stack struct {
	scopes []*Scope
}

// NewStack creates an empty scope stack.
func NewStack() *Stack {
	return &Stack{}
}

// Depth returns the current number of scopes on the stack.
func (s *Stack) Depth() int { return len(s.scopes) }

// Push opens a new scope of the given kind and returns its index.
func (s *Stack) Push(kind Kind) int {
	sc := newScope(kind)
	switch kind {
	case ClassKind:
		sc.Class = &ClassState{CurrentElementFirstModifierPatchRef: -1}
	case FunctionWithParamPropsKind:
		sc.FuncParamProps = &FunctionWithParamPropsState{}
	case EnumKind:
		sc.Enum = &EnumState{}
	case NamespaceKind:
		sc.Namespace = &NamespaceState{}
	}
	s.scopes = append(s.scopes, sc)
	return len(s.scopes) - 1
}

// Pop removes and returns the innermost scope.
func (s *Stack) Pop() *Scope {
	top := s.scopes[len(s.scopes)-1]
	s.scopes = s.scopes[:len(s.scopes)-1]
	return top
}

// Top returns the innermost scope, or nil if the stack is empty.
func (s *Stack) Top() *Scope {
	if len(s.scopes) == 0 {
		return nil
	}
	return s.scopes[len(s.scopes)-1]
}

// At returns the scope at the given index (0 = outermost).
func (s *Stack) At(i int) *Scope { return s.scopes[i] }

// Parent returns the scope enclosing the one at index i, or nil if i is
// the outermost scope.
func (s *Stack) Parent(i int) *Scope {
	if i == 0 {
		return nil
	}
	return s.scopes[i-1]
}

// NearestClass searches outward from the top of the stack for the nearest
// enclosing Class scope, returning its index, or -1 if none.
func (s *Stack) NearestClass() int {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if s.scopes[i].Kind == ClassKind {
			return i
		}
	}
	return -1
}

// NearestNamedEnum searches outward for a scope that has already declared
// an enum with the given name (for secondary-enum detection), returning
// that scope's EnumState, or nil if not found.
func (s *Stack) NearestNamedEnum(name string) *EnumState {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if members, ok := s.scopes[i].EnumMemberNamesByEnumName[name]; ok {
			return &EnumState{Name: name, Members: members}
		}
	}
	return nil
}

// RecordEnum registers a fully-processed enum's member list at scope i so
// later sibling declarations of the same name are recognized as secondary
// enums.
func (s *Stack) RecordEnum(i int, name string, members []EnumMember) {
	sc := s.scopes[i]
	if sc.EnumMemberNamesByEnumName == nil {
		sc.EnumMemberNamesByEnumName = make(map[string][]EnumMember)
	}
	sc.EnumMemberNamesByEnumName[name] = members
}

// Checkpoint captures enough state to undo all scope pushes performed
// since it was taken.
type Checkpoint struct {
	Depth int
}

// Checkpoint returns a checkpoint of the current stack depth.
func (s *Stack) Checkpoint() Checkpoint {
	return Checkpoint{Depth: len(s.scopes)}
}

// Rewind discards every scope pushed since cp was taken. Popped scopes are
// simply dropped; no external side effects are permitted between
// Checkpoint and a matching Rewind or commit, per spec.md §4.3
// "Speculative parsing".
func (s *Stack) Rewind(cp Checkpoint) {
	s.scopes = s.scopes[:cp.Depth]
}
