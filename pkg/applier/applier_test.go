package applier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsstrip/tsstrip/pkg/buffer"
	"github.com/tsstrip/tsstrip/pkg/patch"
)

func TestApplyStrip(t *testing.T) {
	buf := buffer.NewByteBuffer([]byte("let x: number = 1;"))
	patches := []patch.Patch{patch.Strip(5, 13)}

	err := Apply(patches, buf)
	require.NoError(t, err)
	assert.Equal(t, "let x         = 1;", buf.String())
}

func TestApplyStripPreservesLineTerminators(t *testing.T) {
	buf := buffer.NewByteBuffer([]byte("AB\nCD"))
	patches := []patch.Patch{patch.Strip(0, 5)}

	err := Apply(patches, buf)
	require.NoError(t, err)
	assert.Equal(t, "  \n  ", buf.String())
}

func TestApplyReplaceGrowsBuffer(t *testing.T) {
	buf := buffer.NewByteBuffer([]byte("namespace A.B {}"))
	patches := []patch.Patch{patch.Replace(0, 14, "var A$B; (function () ")}

	err := Apply(patches, buf)
	require.NoError(t, err)
	assert.Equal(t, "var A$B; (function () {}", buf.String())
}

func TestApplyMultiplePatches(t *testing.T) {
	buf := buffer.NewByteBuffer([]byte("type T = string;\nlet y: T = \"a\";"))
	patches := []patch.Patch{
		patch.Strip(0, 17),
		patch.Strip(22, 25),
	}

	err := Apply(patches, buf)
	require.NoError(t, err)
	assert.Equal(t, "                \nlet y    = \"a\";", buf.String())
}

func TestApplyInsert(t *testing.T) {
	buf := buffer.NewByteBuffer([]byte("abc"))
	patches := []patch.Patch{patch.Insert(1, "XYZ")}

	err := Apply(patches, buf)
	require.NoError(t, err)
	assert.Equal(t, "aXYZbc", buf.String())
}

func TestApplyNoPatches(t *testing.T) {
	buf := buffer.NewByteBuffer([]byte("abc"))
	err := Apply(nil, buf)
	require.NoError(t, err)
	assert.Equal(t, "abc", buf.String())
}

func TestApplyRejectsOverlap(t *testing.T) {
	buf := buffer.NewByteBuffer([]byte("abcdef"))
	patches := []patch.Patch{
		patch.Strip(0, 3),
		patch.Strip(2, 5),
	}

	err := Apply(patches, buf)
	assert.Error(t, err)
}

func TestApplyRejectsStartAfterEnd(t *testing.T) {
	buf := buffer.NewByteBuffer([]byte("abcdef"))
	patches := []patch.Patch{{Start: 4, End: 2}}

	err := Apply(patches, buf)
	assert.Error(t, err)
}

func TestApplyRejectsLineTerminatorInReplacement(t *testing.T) {
	buf := buffer.NewByteBuffer([]byte("abcdef"))
	patches := []patch.Patch{patch.Replace(0, 2, "x\ny")}

	err := Apply(patches, buf)
	assert.Error(t, err)
}

func TestApplyRejectsNonUTF8Boundary(t *testing.T) {
	buf := buffer.NewByteBuffer([]byte("a\xe4\xbd\xa0b")) // 你 is 3 bytes
	patches := []patch.Patch{{Start: 2, End: 3}}

	err := Apply(patches, buf)
	assert.Error(t, err)
}
