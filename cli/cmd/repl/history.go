package repl

import (
	"bufio"
	"os"
	"strings"
	"sync"
)

// History manages input history with file persistence.
type History struct {
	path    string
	entries []string
	mu      sync.RWMutex
}

// NewHistory creates a new History instance with the given file path.
func NewHistory(path string) *History {
	return &History{path: path}
}

// Load reads history entries from the history file.
func (h *History) Load() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	file, err := os.Open(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}
	defer file.Close()

	h.entries = nil

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		h.entries = append(h.entries, line)
	}

	return scanner.Err()
}

// Write appends a new entry to the history. If a duplicate entry exists,
// the old one is removed so the entry moves to the most recent position.
func (h *History) Write(entry string) (int, error) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return 0, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// Skip if same as last entry; nothing reaches the file.
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == entry {
		return 0, nil
	}

	// Remove any existing duplicate entry
	needsRewrite := false

	for i := 0; i < len(h.entries); i++ {
		if h.entries[i] == entry {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			needsRewrite = true

			break
		}
	}

	h.entries = append(h.entries, entry)

	// If we removed a duplicate, rewrite the entire file
	// Otherwise, just append
	if needsRewrite {
		return h.rewriteFile()
	}

	file, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	n, err := file.WriteString(entry + "\n")

	return n, err
}

// rewriteFile rewrites the entire history file from memory.
// Callers must hold the write lock.
func (h *History) rewriteFile() (int, error) {
	file, err := os.OpenFile(
		h.path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0o600,
	)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	total := 0

	for _, entry := range h.entries {
		n, err := file.WriteString(entry + "\n")
		if err != nil {
			return total, err
		}

		total += n
	}

	return total, nil
}

// At retrieves a historic line by index. Index 0 is the oldest entry.
func (h *History) At(i int) (string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if i < 0 || i >= len(h.entries) {
		return "", ErrOutOfBounds
	}

	return h.entries[i], nil
}

// Len returns the number of history entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}
