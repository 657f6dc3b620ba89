// Package cli handles cmd line input and suggestions for interactive use and testing
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	completion "github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var wordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

// Options controls prefix bounds, result count and learning.
type Options struct {
	MinPrefix int
	MaxPrefix int
	Limit     int
	// Learn inserts a typed word that produced no suggestions.
	Learn bool
}

// InputHandler reads one command or prefix per line and prints suggestions.
//
//	exit, quit     stop the loop
//	reload         rebuild the dictionary from its source
//	add <word>     insert a word
//	anything else  complete it as a prefix
type InputHandler struct {
	completer completion.ICompleter
	input     io.Reader
	out       *log.Logger
	opts      Options
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(completer completion.ICompleter, input io.Reader, out *log.Logger, opts Options) *InputHandler {
	return &InputHandler{
		completer: completer,
		input:     input,
		out:       out,
		opts:      opts,
	}
}

// Start runs the loop until exit or end of input.
func (h *InputHandler) Start() error {
	h.out.Print("wordtrie CLI")
	h.out.Print("Enter a prefix, 'reload' to reload words, 'add <word>' to learn one, or 'exit' to quit:")
	reader := bufio.NewReader(h.input)

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		if done := h.handleLine(strings.TrimSpace(line)); done {
			return nil
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}

// handleLine runs one command; it reports true when the loop should stop.
func (h *InputHandler) handleLine(line string) bool {
	switch {
	case line == "":
		return false
	case line == "exit" || line == "quit":
		h.out.Print("Exiting.")
		return true
	case line == "reload":
		h.reload()
	case line == "add" || strings.HasPrefix(line, "add "):
		h.add(strings.TrimSpace(strings.TrimPrefix(line, "add")))
	default:
		h.handleInput(line)
	}
	return false
}

func (h *InputHandler) reload() {
	if err := h.completer.Reload(); err != nil {
		h.out.Warnf("Reload failed, dictionary is empty: %v", err)
		return
	}
	h.out.Printf("Words reloaded (%d words).", h.completer.Stats()["totalWords"])
}

func (h *InputHandler) add(word string) {
	if word == "" {
		h.out.Error("Nothing to add")
		return
	}
	h.completer.AddWord(word)
	h.out.Printf("Added '%s' to dictionary.", word)
}

// handleInput validates the prefix length, asks the completer and prints the
// numbered suggestions.
func (h *InputHandler) handleInput(prefix string) {
	if len(prefix) < h.opts.MinPrefix {
		h.out.Errorf("Prefix too short: %s", prefix)
		return
	}
	if len(prefix) > h.opts.MaxPrefix {
		h.out.Errorf("Prefix too long: %s", prefix)
		return
	}

	start := time.Now()
	suggestions := h.completer.Complete(prefix, h.opts.Limit)
	log.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)

	if len(suggestions) == 0 {
		h.out.Printf("No suggestions found for '%s'.", prefix)
		if h.opts.Learn {
			h.add(prefix)
		}
		return
	}

	h.out.Printf("Found %d suggestions for '%s':", len(suggestions), prefix)
	for i, s := range suggestions {
		h.out.Print(fmt.Sprintf("%2d. %s", i+1, wordStyle.Render(s)))
	}
}
