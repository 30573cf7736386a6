package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeNamesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.names")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadClassNames(t *testing.T) {
	path := writeNamesFile(t, "person\nbicycle\ncell phone\n")

	names, err := LoadClassNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"person", "bicycle", "cell phone"}, names)
}

func TestLoadClassNames_TrailingBlankLinesAndCRLF(t *testing.T) {
	path := writeNamesFile(t, "laptop\r\nmouse\r\n\r\n\r\n")

	names, err := LoadClassNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"laptop", "mouse"}, names)
}

func TestLoadClassNames_Empty(t *testing.T) {
	path := writeNamesFile(t, "")

	_, err := LoadClassNames(path)
	assert.Error(t, err)
}

func TestLoadClassNames_MissingFile(t *testing.T) {
	_, err := LoadClassNames(filepath.Join(t.TempDir(), "nope.names"))
	assert.Error(t, err)
}
