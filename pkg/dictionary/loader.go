// Package dictionary loads newline-delimited word lists into a trie.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/charmbracelet/log"
)

// ErrUnavailable is wrapped by LoadFile when the word list cannot be opened.
var ErrUnavailable = errors.New("dictionary unavailable")

// LoaderStats describes one completed load.
type LoaderStats struct {
	Source string
	Lines  int
	Words  int
	Nodes  int
}

// Load inserts every line of r into t and returns the number of lines read.
// Only the trailing newline is stripped; the rest of the line goes to Insert
// as is, so an empty line inserts the empty word.
func Load(r io.Reader, t *trie.Trie) (int, error) {
	reader := bufio.NewReader(r)
	lines := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return lines, fmt.Errorf("failed to read word list: %w", err)
		}
		if errors.Is(err, io.EOF) && line == "" {
			return lines, nil
		}

		t.Insert(strings.TrimSuffix(line, "\n"))
		lines++

		if errors.Is(err, io.EOF) {
			return lines, nil
		}
	}
}

// LoadFile builds a new trie from the word list at path. The trie is never
// nil: if the file cannot be opened it is empty and the error wraps
// ErrUnavailable.
func LoadFile(path string) (*trie.Trie, LoaderStats, error) {
	t := trie.New()
	stats := LoaderStats{Source: path, Nodes: t.Nodes()}

	file, err := os.Open(path)
	if err != nil {
		return t, stats, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer file.Close()

	lines, err := Load(file, t)
	stats.Lines = lines
	stats.Words = t.Len()
	stats.Nodes = t.Nodes()
	if err != nil {
		return t, stats, fmt.Errorf("loading %s: %w", path, err)
	}

	log.Debugf("Loaded %s: %d lines, %d words, %d nodes", path, stats.Lines, stats.Words, stats.Nodes)
	return t, stats, nil
}
