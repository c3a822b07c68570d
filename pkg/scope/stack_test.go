package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopDepth(t *testing.T) {
	s := NewStack()
	assert.Equal(t, 0, s.Depth())

	idx := s.Push(ClassKind)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, s.Depth())
	require.NotNil(t, s.Top().Class)
	assert.Equal(t, -1, s.Top().Class.CurrentElementFirstModifierPatchRef)

	top := s.Pop()
	assert.Equal(t, ClassKind, top.Kind)
	assert.Equal(t, 0, s.Depth())
}

func TestPushInitializesKindSpecificState(t *testing.T) {
	s := NewStack()

	s.Push(FunctionWithParamPropsKind)
	require.NotNil(t, s.Top().FuncParamProps)

	s.Push(EnumKind)
	require.NotNil(t, s.Top().Enum)

	s.Push(NamespaceKind)
	require.NotNil(t, s.Top().Namespace)

	s.Push(Other)
	assert.Nil(t, s.Top().Class)
	assert.Nil(t, s.Top().FuncParamProps)
	assert.Nil(t, s.Top().Enum)
	assert.Nil(t, s.Top().Namespace)
}

func TestTopOnEmptyStack(t *testing.T) {
	s := NewStack()
	assert.Nil(t, s.Top())
}

func TestParent(t *testing.T) {
	s := NewStack()
	s.Push(NamespaceKind)
	s.Push(ClassKind)

	assert.Nil(t, s.Parent(0))
	assert.Equal(t, s.At(0), s.Parent(1))
}

func TestNearestClass(t *testing.T) {
	s := NewStack()
	assert.Equal(t, -1, s.NearestClass())

	s.Push(NamespaceKind)
	s.Push(ClassKind)
	s.Push(FunctionWithParamPropsKind)

	assert.Equal(t, 1, s.NearestClass())
}

func TestRecordAndNearestNamedEnum(t *testing.T) {
	s := NewStack()
	outer := s.Push(Other)

	assert.Nil(t, s.NearestNamedEnum("Color"))

	members := []EnumMember{{Text: "Red", IsIdentifier: true}}
	s.RecordEnum(outer, "Color", members)

	s.Push(Other)
	found := s.NearestNamedEnum("Color")
	require.NotNil(t, found)
	assert.Equal(t, "Color", found.Name)
	assert.Equal(t, members, found.Members)

	assert.Nil(t, s.NearestNamedEnum("Missing"))
}

func TestCheckpointRewind(t *testing.T) {
	s := NewStack()
	s.Push(Other)
	cp := s.Checkpoint()

	s.Push(ClassKind)
	s.Push(EnumKind)
	assert.Equal(t, 3, s.Depth())

	s.Rewind(cp)
	assert.Equal(t, 1, s.Depth())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Other", Other.String())
	assert.Equal(t, "Class", ClassKind.String())
	assert.Equal(t, "FunctionWithParamProps", FunctionWithParamPropsKind.String())
	assert.Equal(t, "Enum", EnumKind.String())
	assert.Equal(t, "Namespace", NamespaceKind.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}
