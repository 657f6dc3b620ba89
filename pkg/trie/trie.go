/*
Package trie is the core of wordtrie: a prefix tree over the 26 ASCII letters
used to enumerate completions while a word is being typed.

Insertion folds case and silently skips anything that is not a letter, so
"Don't" and "dont" are the same word. Lookup is stricter: a prefix with a
non-letter in it never matches anything.

	t := trie.New()
	t.Insert("apple")
	t.Insert("Apply")
	words := t.Complete("app", trie.MaxResults) // [apple apply]

Completions come back in alphabetical pre-order, so a word always appears
before its own extensions and the first MaxResults of them are deterministic.

Nodes are allocated with new; running out of memory while growing the tree
aborts the process, which is acceptable for a single-session tool.
*/
package trie

const (
	// AlphabetSize is the number of child slots per node.
	AlphabetSize = 26
	// MaxResults caps the number of words returned by Complete.
	MaxResults = 10
	// MaxWordLength caps, in characters, any prefix or word Complete handles.
	MaxWordLength = 100
)

// Node is one prefix position in the tree.
type Node struct {
	children [AlphabetSize]*Node
	terminal bool
}

// Terminal reports whether the path to n spells an inserted word.
func (n *Node) Terminal() bool {
	return n.terminal
}

// Child returns the child for letter (either case), or nil.
func (n *Node) Child(letter byte) *Node {
	idx, ok := letterIndex(letter)
	if !ok {
		return nil
	}
	return n.children[idx]
}

// Trie owns the root node and every node below it.
type Trie struct {
	root  *Node
	nodes int
	words int
}

// New returns an empty trie holding only the root.
func New() *Trie {
	return &Trie{
		root:  &Node{},
		nodes: 1,
	}
}

// Root returns the node for the empty prefix.
func (t *Trie) Root() *Node {
	return t.root
}

// Len returns the number of distinct words inserted.
func (t *Trie) Len() int {
	return t.words
}

// Nodes returns the number of allocated nodes, root included.
func (t *Trie) Nodes() int {
	return t.nodes
}

// Insert adds word to the trie. Non-letters are skipped without advancing,
// so "a-b" is stored as "ab". A word with no letters at all marks the root.
func (t *Trie) Insert(word string) {
	current := t.root
	for i := 0; i < len(word); i++ {
		idx, ok := letterIndex(word[i])
		if !ok {
			continue
		}
		if current.children[idx] == nil {
			current.children[idx] = &Node{}
			t.nodes++
		}
		current = current.children[idx]
	}
	if !current.terminal {
		current.terminal = true
		t.words++
	}
}

// LookupPrefixNode walks prefix from the root and returns the node reached,
// or nil if any character is not a letter or has no matching child.
func (t *Trie) LookupPrefixNode(prefix string) *Node {
	current := t.root
	for i := 0; i < len(prefix); i++ {
		idx, ok := letterIndex(prefix[i])
		if !ok || current.children[idx] == nil {
			return nil
		}
		current = current.children[idx]
	}
	return current
}

// Complete returns up to limit words starting with prefix, in alphabetical
// pre-order. limit is clamped to MaxResults. The typed prefix is kept as
// given and the remaining letters are lowercase.
func (t *Trie) Complete(prefix string, limit int) []string {
	if limit > MaxResults {
		limit = MaxResults
	}
	results := make([]string, 0, max(limit, 0))
	if limit <= 0 || len(prefix) > MaxWordLength {
		return results
	}

	node := t.LookupPrefixNode(prefix)
	if node == nil {
		return results
	}

	c := collector{limit: limit, results: results}
	n := copy(c.buf[:], prefix)
	c.walk(node, n)
	return c.results
}

// collector holds the scratch buffer shared by one Complete call.
type collector struct {
	buf     [MaxWordLength]byte
	limit   int
	results []string
}

func (c *collector) walk(node *Node, depth int) {
	if len(c.results) >= c.limit {
		return
	}
	if node.terminal {
		c.results = append(c.results, string(c.buf[:depth]))
	}
	if depth >= MaxWordLength {
		return
	}
	for i, child := range node.children {
		if child == nil {
			continue
		}
		c.buf[depth] = byte('a' + i)
		c.walk(child, depth+1)
		if len(c.results) >= c.limit {
			return
		}
	}
}

// letterIndex folds ASCII case and maps a..z to 0..25.
func letterIndex(c byte) (int, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return int(c - 'a'), true
}
