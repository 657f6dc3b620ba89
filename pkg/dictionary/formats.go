package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// textExtensions are the extensions accepted for plain word lists.
// An empty extension covers files such as /usr/share/dict/words.
var textExtensions = []string{"", ".txt", ".dic", ".words", ".lst"}

// ValidateTextFile checks that path looks like a readable plain word list.
// It never inspects the words themselves; any content loads.
func ValidateTextFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	validExt := false
	for _, e := range textExtensions {
		if ext == e {
			validExt = true
			break
		}
	}
	if !validExt {
		return fmt.Errorf("file %s has extension %s, expected one of %q", path, ext, textExtensions)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	if info.Size() > 0 {
		buffer := make([]byte, 512)
		if _, err := file.Read(buffer); err != nil {
			return fmt.Errorf("failed to read from text file %s: %w", path, err)
		}
	}

	log.Debugf("Text file %s validated (%d bytes)", path, info.Size())
	return nil
}
