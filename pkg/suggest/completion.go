package suggest

import (
	"github.com/bastiangx/wordtrie/pkg/dictionary"
	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/charmbracelet/log"
)

// Completer serves completions from a single trie built from a word list.
// It is driven by one control loop and does no locking; a reload builds the
// replacement trie completely before it becomes visible.
type Completer struct {
	trie        *trie.Trie
	source      string
	loadedLines int
	addedWords  int
	reloads     int
}

// NewCompleter returns a completer with an empty trie that loads from source.
func NewCompleter(source string) *Completer {
	return &Completer{
		trie:   trie.New(),
		source: source,
	}
}

// Source returns the path of the word list.
func (c *Completer) Source() string {
	return c.source
}

// Initialize loads the word list. If it cannot be read the completer keeps
// working with an empty dictionary and the error is returned so the caller
// can tell the user.
func (c *Completer) Initialize() error {
	return c.swap()
}

// Reload discards the current dictionary in favour of a fresh load of the
// source. Words added with AddWord since the last load are dropped. When the
// source has become unreadable the dictionary ends up empty, and the error is
// returned.
func (c *Completer) Reload() error {
	c.reloads++
	return c.swap()
}

func (c *Completer) swap() error {
	next, stats, err := dictionary.LoadFile(c.source)

	c.trie = next
	c.loadedLines = stats.Lines
	c.addedWords = 0

	if err != nil {
		return err
	}
	log.Debugf("Dictionary active: %d words from %s", next.Len(), c.source)
	return nil
}

// AddWord inserts word into the active dictionary.
func (c *Completer) AddWord(word string) {
	before := c.trie.Len()
	c.trie.Insert(word)
	if c.trie.Len() > before {
		c.addedWords++
		log.Debugf("Learned new word %q", word)
	}
}

// Complete returns up to limit completions for prefix; limit is capped at
// trie.MaxResults.
func (c *Completer) Complete(prefix string, limit int) []string {
	return c.trie.Complete(prefix, limit)
}

// Stats returns counters describing the active dictionary.
func (c *Completer) Stats() map[string]int {
	return map[string]int{
		"totalWords":  c.trie.Len(),
		"nodes":       c.trie.Nodes(),
		"loadedLines": c.loadedLines,
		"addedWords":  c.addedWords,
		"reloads":     c.reloads,
		"maxResults":  trie.MaxResults,
	}
}
