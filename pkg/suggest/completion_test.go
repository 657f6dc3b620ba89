package suggest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/wordtrie/pkg/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ICompleter = (*Completer)(nil)

func writeList(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestInitialize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	writeList(t, path, "banana\nband\nbanner\ncat\n")

	c := NewCompleter(path)
	assert.Empty(t, c.Complete("ban", 10))
	require.NoError(t, c.Initialize())

	assert.Equal(t, []string{"banana", "band", "banner"}, c.Complete("ban", 10))
	assert.Equal(t, path, c.Source())

	stats := c.Stats()
	assert.Equal(t, 4, stats["totalWords"])
	assert.Equal(t, 4, stats["loadedLines"])
	assert.Equal(t, 0, stats["reloads"])
}

func TestInitializeMissingSource(t *testing.T) {
	c := NewCompleter(filepath.Join(t.TempDir(), "missing.txt"))

	err := c.Initialize()
	require.Error(t, err)
	assert.True(t, errors.Is(err, dictionary.ErrUnavailable))
	assert.Empty(t, c.Complete("", 10))

	c.AddWord("hello")
	assert.Equal(t, []string{"hello"}, c.Complete("he", 10))
}

func TestReloadReplacesDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	writeList(t, path, "apple\napply\n")

	c := NewCompleter(path)
	require.NoError(t, c.Initialize())
	c.AddWord("appetite")
	assert.Equal(t, []string{"appetite", "apple", "apply"}, c.Complete("app", 10))

	writeList(t, path, "application\nbanana\n")
	require.NoError(t, c.Reload())

	assert.Equal(t, []string{"application"}, c.Complete("app", 10))
	assert.Equal(t, []string{"application", "banana"}, c.Complete("", 10))

	stats := c.Stats()
	assert.Equal(t, 1, stats["reloads"])
	assert.Equal(t, 0, stats["addedWords"])
	assert.Equal(t, 2, stats["totalWords"])
}

func TestReloadAfterSourceRemoved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	writeList(t, path, "apple\n")

	c := NewCompleter(path)
	require.NoError(t, c.Initialize())
	require.NoError(t, os.Remove(path))

	err := c.Reload()
	assert.True(t, errors.Is(err, dictionary.ErrUnavailable))
	assert.Empty(t, c.Complete("", 10))
}

func TestAddWordIdempotent(t *testing.T) {
	c := NewCompleter("")
	c.AddWord("Hello")
	c.AddWord("hello")
	c.AddWord("HELLO")

	assert.Equal(t, []string{"hello"}, c.Complete("h", 10))
	assert.Equal(t, 1, c.Stats()["addedWords"])
}

func TestCompleteCapsLimit(t *testing.T) {
	c := NewCompleter("")
	for _, w := range []string{"aa", "ab", "ac", "ad", "ae", "af", "ag", "ah", "ai", "aj", "ak", "al"} {
		c.AddWord(w)
	}
	assert.Len(t, c.Complete("a", 64), 10)
}
