package repl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestHistory_WriteAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.utf8")

	h := NewHistory(path)

	for _, line := range []string{"let x = 1", "x + 1", "print x"} {
		if _, err := h.Write(line); err != nil {
			t.Fatalf("write error: %v", err)
		}
	}

	if h.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", h.Len())
	}

	// A fresh instance reads the same entries back.
	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("load error: %v", err)
	}

	if reloaded.Len() != 3 {
		t.Fatalf("expected 3 entries after reload, got %d", reloaded.Len())
	}

	line, err := reloaded.At(1)
	if err != nil {
		t.Fatalf("at error: %v", err)
	}

	if line != "x + 1" {
		t.Errorf("expected 'x + 1', got %q", line)
	}
}

func TestHistory_Deduplication(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.utf8")

	h := NewHistory(path)

	for _, line := range []string{"a", "b", "a", "a"} {
		if _, err := h.Write(line); err != nil {
			t.Fatalf("write error: %v", err)
		}
	}

	// Duplicate entries move to the end; repeats of the last entry are
	// ignored.
	if h.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", h.Len())
	}

	last, err := h.At(h.Len() - 1)
	if err != nil {
		t.Fatalf("at error: %v", err)
	}

	if last != "a" {
		t.Errorf("expected 'a' as most recent entry, got %q", last)
	}

	// The file reflects the deduplicated order.
	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("load error: %v", err)
	}

	if reloaded.Len() != 2 {
		t.Errorf("expected 2 entries after reload, got %d", reloaded.Len())
	}
}

func TestHistory_RepeatedLastEntryWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.utf8")

	h := NewHistory(path)

	if _, err := h.Write("a"); err != nil {
		t.Fatalf("write error: %v", err)
	}

	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}

	n, err := h.Write("a")
	if err != nil {
		t.Fatalf("write error: %v", err)
	}

	if n != 0 {
		t.Errorf("expected 0 bytes written for a repeat, got %d", n)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}

	if string(before) != string(after) {
		t.Errorf("file changed on a repeated entry: %q -> %q", before, after)
	}
}

func TestHistory_At_OutOfBounds(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "history.utf8"))

	if _, err := h.At(0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}

	if _, err := h.At(-1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestHistory_LoadMissingFile(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "absent.utf8"))

	if err := h.Load(); err != nil {
		t.Errorf("expected no error for missing file, got %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("expected empty history, got %d entries", h.Len())
	}
}

func TestHistory_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.utf8")

	content := "a\n\n  \nb\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("load error: %v", err)
	}

	if h.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", h.Len())
	}
}
