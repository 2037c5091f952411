package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ContainsCommonWords(t *testing.T) {
	t.Parallel()

	d := Default()
	assert.Greater(t, d.Len(), 500)

	assert.True(t, d.Contains("cat"))
	assert.True(t, d.Contains("tea"))
	assert.False(t, d.Contains("zzzzq"))
}

func TestContains_CaseInsensitive(t *testing.T) {
	t.Parallel()

	d := Default()
	assert.True(t, d.Contains("CAT"))
	assert.True(t, d.Contains("CaT"))
}

func TestLoad_FromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# comment line\nyoink\n  tile  \n\nParis\nLondon\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	d, err := Load(path)
	require.NoError(t, err)

	assert.True(t, d.Contains("yoink"))
	assert.True(t, d.Contains("tile")) // whitespace trimmed

	// Proper nouns are excluded at load time, so even the lowercase
	// lookup form must miss
	assert.False(t, d.Contains("paris"))
	assert.False(t, d.Contains("London"))
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	t.Parallel()

	d, err := Load("")
	require.NoError(t, err)
	assert.True(t, d.Contains("word"))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
