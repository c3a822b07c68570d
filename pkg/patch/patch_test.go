package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripInsertReplace(t *testing.T) {
	assert.Equal(t, Patch{Start: 3, End: 7}, Strip(3, 7))
	assert.Equal(t, Patch{Start: 5, End: 5, Replacement: "x"}, Insert(5, "x"))
	assert.Equal(t, Patch{Start: 1, End: 2, Replacement: "y"}, Replace(1, 2, "y"))
}

func TestContainsLineTerminator(t *testing.T) {
	assert.False(t, ContainsLineTerminator("plain text"))
	assert.True(t, ContainsLineTerminator("a\nb"))
	assert.True(t, ContainsLineTerminator("a\rb"))
	assert.True(t, ContainsLineTerminator("a b"))
	assert.True(t, ContainsLineTerminator("a b"))
}

func TestIsLineTerminatorByteAt(t *testing.T) {
	width, ok := IsLineTerminatorByteAt([]byte("a\nb"), 1)
	assert.True(t, ok)
	assert.Equal(t, 1, width)

	width, ok = IsLineTerminatorByteAt([]byte("a b"), 1)
	assert.True(t, ok)
	assert.Equal(t, 3, width)

	_, ok = IsLineTerminatorByteAt([]byte("abc"), 1)
	assert.False(t, ok)

	_, ok = IsLineTerminatorByteAt([]byte("abc"), 10)
	assert.False(t, ok)
}

func TestLogAppendMonotone(t *testing.T) {
	log := NewLog([]byte("0123456789"))
	log.Append(Strip(0, 2))
	log.Append(Strip(2, 4))
	require.Equal(t, 2, log.Len())
	assert.True(t, log.NonOverlappingAndMonotone())

	assert.Panics(t, func() {
		log.Append(Strip(1, 3))
	})
}

func TestLogAppendMergingTail(t *testing.T) {
	log := NewLog([]byte("0123456789"))
	log.Append(Strip(4, 6))
	log.Append(Strip(6, 8))

	log.AppendMergingTail(Strip(2, 9))

	require.Equal(t, 1, log.Len())
	assert.Equal(t, Strip(2, 9), log.At(0))
}

func TestLogAppendMergingTailKeepsDisjointPrefix(t *testing.T) {
	log := NewLog([]byte("0123456789"))
	log.Append(Strip(0, 2))
	log.Append(Strip(4, 6))

	log.AppendMergingTail(Strip(4, 8))

	require.Equal(t, 2, log.Len())
	assert.Equal(t, Strip(0, 2), log.At(0))
	assert.Equal(t, Strip(4, 8), log.At(1))
}

func TestLogBinarySearchInsert(t *testing.T) {
	log := NewLog([]byte("0123456789"))
	log.Append(Strip(6, 8))

	log.BinarySearchInsert(Strip(2, 4))

	require.Equal(t, 2, log.Len())
	assert.Equal(t, Strip(2, 4), log.At(0))
	assert.Equal(t, Strip(6, 8), log.At(1))
}

func TestLogBinarySearchInsertOverlapPanics(t *testing.T) {
	log := NewLog([]byte("0123456789"))
	log.Append(Strip(2, 8))

	assert.Panics(t, func() {
		log.BinarySearchInsert(Strip(4, 6))
	})
}

func TestLogInsert(t *testing.T) {
	log := NewLog([]byte("0123456789"))
	log.Append(Strip(0, 2))
	log.Append(Strip(6, 8))

	log.Insert(1, Strip(3, 5))

	require.Equal(t, 3, log.Len())
	assert.Equal(t, Strip(3, 5), log.At(1))
}

func TestLogTruncate(t *testing.T) {
	log := NewLog([]byte("0123456789"))
	log.Append(Strip(0, 2))
	log.Append(Strip(2, 4))
	log.Append(Strip(4, 6))

	log.Truncate(1)

	require.Equal(t, 1, log.Len())
	assert.Equal(t, Strip(0, 2), log.At(0))
}

func TestAppendSplittingOnLineTerminator(t *testing.T) {
	log := NewLog([]byte("a\nbcdef"))
	log.AppendSplittingOnLineTerminator(Replace(0, 4, "XY"))

	require.Equal(t, 2, log.Len())
	assert.Equal(t, Strip(0, 4), log.At(0))
	assert.Equal(t, Insert(4, "XY"), log.At(1))
}

func TestAppendSplittingOnLineTerminatorNoSplitNeeded(t *testing.T) {
	log := NewLog([]byte("abcdef"))
	log.AppendSplittingOnLineTerminator(Replace(0, 4, "X"))

	require.Equal(t, 1, log.Len())
	assert.Equal(t, Replace(0, 4, "X"), log.At(0))
}
