// Package suggest owns the active dictionary trie and serves completions from it to the CLI and IPC front ends.
package suggest

// ICompleter defines the interface for word completion engines
type ICompleter interface {
	// Complete returns up to limit completions for prefix, in alphabetical pre-order
	Complete(prefix string, limit int) []string

	// AddWord inserts a single word into the active dictionary
	AddWord(word string)

	// Initialize performs the first load of the word list
	Initialize() error

	// Reload rebuilds the dictionary from its source and swaps it in
	Reload() error

	// Stats returns statistics about the loaded dictionary
	Stats() map[string]int
}
