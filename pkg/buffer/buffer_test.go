package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBufferCopiesSource(t *testing.T) {
	src := []byte("hello")
	buf := NewByteBuffer(src)

	src[0] = 'X'

	assert.Equal(t, "hello", buf.String())
	assert.Equal(t, 5, buf.Len())
}

func TestByteBufferReserveThenSetLen(t *testing.T) {
	buf := NewByteBuffer([]byte("abc"))
	buf.Reserve(3)
	buf.SetLen(6)

	require.Equal(t, 6, buf.Len())
	out := buf.Bytes()
	copy(out[3:], "def")
	assert.Equal(t, "abcdef", buf.String())
}

func TestByteBufferSetLenBeyondCapacityPanics(t *testing.T) {
	buf := NewByteBuffer([]byte("abc"))
	assert.Panics(t, func() {
		buf.SetLen(100)
	})
}

func TestByteBufferSetLenShrinks(t *testing.T) {
	buf := NewByteBuffer([]byte("abcdef"))
	buf.SetLen(3)
	assert.Equal(t, "abc", buf.String())
}
