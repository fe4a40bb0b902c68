package repl

import (
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/jakubsmolaga/math-parser/lang"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "foo", 3, "foo", 0, 3},
		{"after_plus", "a + fo", 6, "fo", 4, 6},
		{"after_paren", "double(fo", 9, "fo", 7, 9},
		{"after_equals", "let x = va", 10, "va", 8, 10},
		{"empty_at_boundary", "a + ", 4, "", 4, 4},
		{"mid_word", "foobar", 3, "foobar", 0, 6},
		{"at_start", "foo", 0, "foo", 0, 3},
		{"between_operators", "a+b", 2, "b", 2, 3},
		{"after_minus", "x - fo", 6, "fo", 4, 6},
		{"cursor_past_end", "ab", 9, "ab", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestCandidateNames(t *testing.T) {
	env := lang.NewEnv(lang.WithOutput(nil))
	env.Define("radius", lang.IntValue(3))
	env.Define("area", lang.FloatValue(28.27))

	names := candidateNames(env)

	for _, want := range []string{"radius", "area", "let", "print", "if"} {
		if !slices.Contains(names, want) {
			t.Errorf("expected candidate %q in %v", want, names)
		}
	}
}

func TestComputeMatches_Variables(t *testing.T) {
	m := newTestModel(t)
	m.env.Define("radius", lang.IntValue(3))
	m.env.Define("ratio", lang.IntValue(2))

	m.input.SetValue("1 + ra")
	m.input.SetCursor(6)

	matches, _, start, end := m.computeMatches()

	if start != 4 || end != 6 {
		t.Errorf("expected word bounds (4, 6), got (%d, %d)", start, end)
	}

	if len(matches) < 2 {
		t.Fatalf("expected at least 2 matches, got %d", len(matches))
	}

	for _, match := range matches[:2] {
		if match.Str != "radius" && match.Str != "ratio" {
			t.Errorf("unexpected match %q", match.Str)
		}
	}
}

func TestComputeMatches_ControlCommands(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue(":he")
	m.input.SetCursor(3)

	matches, _, start, _ := m.computeMatches()

	// The leading ':' stays out of the completed word.
	if start != 1 {
		t.Errorf("expected word start 1, got %d", start)
	}

	if len(matches) == 0 || matches[0].Str != "help" {
		t.Errorf("expected 'help' as best match, got %v", matches)
	}
}

func TestComputeMatches_EmptyWord(t *testing.T) {
	m := newTestModel(t)
	m.env.Define("x", lang.IntValue(1))

	m.input.SetValue("x + ")
	m.input.SetCursor(4)

	matches, _, _, _ := m.computeMatches()
	if len(matches) != 0 {
		t.Errorf("expected no matches for empty word, got %v", matches)
	}
}

func TestRenderCandidateBar_FitsWidth(t *testing.T) {
	matches := fuzzy.Find("extra", []string{
		"extraordinarilyLongVariableName",
	})
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	const width = 12

	// A sole candidate wider than the terminal is clipped, not overflowed.
	bar := renderCandidateBar(matches, 0, false, width)

	if got := lipgloss.Width(bar); got > width {
		t.Errorf("bar width %d exceeds terminal width %d", got, width)
	}

	if !strings.Contains(bar, "...") {
		t.Errorf("expected clipped bar to end in ellipsis, got %q", bar)
	}
}

func TestRenderCandidateBar_Empty(t *testing.T) {
	if bar := renderCandidateBar(nil, 0, false, 80); bar != "" {
		t.Errorf("expected empty bar without matches, got %q", bar)
	}
}
