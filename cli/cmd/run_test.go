package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeScript writes source to a temp file and returns its path.
func writeScript(t *testing.T, source string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "script.math")
	if err := os.WriteFile(path, []byte(source), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr error
	}{
		{
			name:   "valid script",
			source: "let x = 2\nlet y = x * 3\nprint y",
		},
		{
			name:   "conditional result",
			source: "let n = 7\nprint if n == 7 then 1 else 0",
		},
		{
			name:    "syntax error",
			source:  "let = 5",
			wantErr: ErrParseSource,
		},
		{
			name:    "unbound variable",
			source:  "y + 1",
			wantErr: ErrEvalSource,
		},
		{
			name:    "division by zero",
			source:  "print 1 / 0",
			wantErr: ErrEvalSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := &Run{Paths: []string{writeScript(t, tt.source)}}

			err := run.Run(context.Background())

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Run() unexpected error: %v", err)
				}

				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunCommand_SharedEnvironmentAcrossFiles(t *testing.T) {
	// Bindings from an earlier file must be visible to later ones.
	first := writeScript(t, "let base = 10")
	second := writeScript(t, "print base * 2")

	run := &Run{Paths: []string{first, second}}

	if err := run.Run(context.Background()); err != nil {
		t.Errorf("Run() unexpected error: %v", err)
	}
}

func TestRunCommand_MissingFile(t *testing.T) {
	run := &Run{
		Paths: []string{filepath.Join(t.TempDir(), "absent.math")},
	}

	if err := run.Run(context.Background()); err == nil {
		t.Error("Run() expected error for missing file")
	}
}

func TestReadSource_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.math")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x01}, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := ReadSource([]string{path})
	if err == nil {
		t.Error("ReadSource() expected error for invalid UTF-8")
	}
}

func TestReadSource_JoinsWithNewline(t *testing.T) {
	first := writeScript(t, "let a = 1")
	second := writeScript(t, "a + 1")

	source, err := ReadSource([]string{first, second})
	if err != nil {
		t.Fatalf("ReadSource() error: %v", err)
	}

	want := "let a = 1\na + 1"
	if source != want {
		t.Errorf("expected %q, got %q", want, source)
	}
}
