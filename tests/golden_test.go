package tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/tsstrip/tsstrip/pkg/buffer"
	"github.com/tsstrip/tsstrip/pkg/config"
	"github.com/tsstrip/tsstrip/pkg/tsstrip"
)

// normalizeWhitespace collapses runs of horizontal whitespace into a
// single space and trims each line, the same comparison tsstrip_test.go
// uses against the column-preserving applier's space-padded output:
// these fixtures pin token content, not the exact padding width. The
// two end-to-end scenarios that are specifically ABOUT exact byte/length
// preservation (line-terminator placement, enum value equivalence under
// JS execution) are covered by dedicated unit tests in pkg/tsstrip
// rather than here, since a txtar fixture can't easily pin an exact
// trailing-newline count or run a JS engine.
func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		fields := strings.Fields(line)
		lines[i] = strings.Join(fields, " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// TestGoldenTranspile runs every end-to-end fixture under
// testdata/golden. Each fixture is a .txtar archive with an "input.ts"
// file and an "expected.js" file, mirroring the end-to-end scenarios
// this module's specification pins as literal test cases.
func TestGoldenTranspile(t *testing.T) {
	entries, err := os.ReadDir("testdata/golden")
	require.NoError(t, err, "failed to read testdata/golden directory")

	found := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txtar") {
			continue
		}
		found++
		testPath := filepath.Join("testdata/golden", entry.Name())
		testName := strings.TrimSuffix(entry.Name(), ".txtar")
		t.Run(testName, func(t *testing.T) {
			runGoldenFixture(t, testPath)
		})
	}
	require.NotZero(t, found, "no golden fixtures found under testdata/golden")
}

func runGoldenFixture(t *testing.T, testPath string) {
	t.Helper()
	archive, err := txtar.ParseFile(testPath)
	require.NoError(t, err, "failed to parse txtar file %s", testPath)

	var input, expected []byte
	for _, f := range archive.Files {
		switch f.Name {
		case "input.ts":
			input = f.Data
		case "expected.js":
			expected = f.Data
		}
	}
	require.NotNil(t, input, "%s: missing input.ts file", testPath)
	require.NotNil(t, expected, "%s: missing expected.js file", testPath)

	buf := buffer.NewByteBuffer(input)
	result, err := tsstrip.Transpile(config.SourceModule, buf, nil)
	require.NoError(t, err)
	require.False(t, result.Panicked, "parser panicked on fixture %s", testPath)

	actual := buf.String()
	require.Equal(t, normalizeWhitespace(string(expected)), normalizeWhitespace(actual))
}
