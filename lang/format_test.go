package lang

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestFormat_Canonical(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // canonical form; also the round-trip fixed point
	}{
		{
			name:  "redundant parentheses dropped",
			input: "(1) + ((2 * 3))",
			want:  "1 + 2 * 3",
		},
		{
			name:  "necessary parentheses kept",
			input: "(1 + 2) * 3",
			want:  "(1 + 2) * 3",
		},
		{
			name:  "left association is implicit",
			input: "1 - 2 - 3",
			want:  "1 - 2 - 3",
		},
		{
			name:  "right grouping is explicit",
			input: "1 - (2 - 3)",
			want:  "1 - (2 - 3)",
		},
		{
			name:  "division grouping",
			input: "1 / (2 / 3)",
			want:  "1 / (2 / 3)",
		},
		{
			name:  "equality operands",
			input: "1 + 2 == 3 * 1",
			want:  "1 + 2 == 3 * 1",
		},
		{
			name:  "declaration",
			input: "let x=1+2",
			want:  "let x = 1 + 2",
		},
		{
			name:  "declaration as operand",
			input: "(let x = 2) * 3",
			want:  "(let x = 2) * 3",
		},
		{
			name:  "conditional",
			input: "if x == 1 then 1 else 2",
			want:  "if x == 1 then 1 else 2",
		},
		{
			name:  "print",
			input: "print 1+2",
			want:  "print 1 + 2",
		},
		{
			name:  "negation",
			input: "-x * -3",
			want:  "-x * -3",
		},
		{
			name:  "integral float keeps its kind",
			input: "2.0 + 1",
			want:  "2.0 + 1",
		},
		{
			name:  "tiny float stays decimal",
			input: "0.0000001 * 2",
			want:  "0.0000001 * 2",
		},
		{
			name:  "huge float stays decimal",
			input: "10000000000000000000000.0",
			want:  "10000000000000000000000.0",
		},
		{
			name:  "booleans",
			input: "true == -false",
			want:  "true == -false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exprs, err := Parse(t.Context(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			var buf bytes.Buffer

			if err := Format(&buf, exprs); err != nil {
				t.Fatalf("format error: %v", err)
			}

			if got := buf.String(); got != tt.want+"\n" {
				t.Errorf("expected %q, got %q", tt.want+"\n", got)
			}

			// Canonical output must re-parse to the same canonical
			// output.
			again, err := Parse(t.Context(), buf.String())
			if err != nil {
				t.Fatalf("reparse error: %v", err)
			}

			buf.Reset()

			if err := Format(&buf, again); err != nil {
				t.Fatalf("reformat error: %v", err)
			}

			if got := buf.String(); got != tt.want+"\n" {
				t.Errorf("round trip drifted: expected %q, got %q",
					tt.want+"\n", got)
			}
		})
	}
}

func TestFormat_OneExpressionPerLine(t *testing.T) {
	exprs, err := Parse(t.Context(), "let x = 1 print x x + 1")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var buf bytes.Buffer

	if err := Format(&buf, exprs); err != nil {
		t.Fatalf("format error: %v", err)
	}

	want := "let x = 1\nprint x\nx + 1\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestExpr_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "literal",
			input: "42",
			want:  `{"literal":"42"}`,
		},
		{
			name:  "declaration",
			input: "let x = 1",
			want:  `{"let":{"name":"x","value":{"literal":"1"}}}`,
		},
		{
			name:  "binary operands",
			input: "x + 1",
			want:  `{"add":{"left":{"var":"x"},"right":{"literal":"1"}}}`,
		},
		{
			name:  "conditional",
			input: "if true then 1 else 2",
			want: `{"if":{"condition":{"literal":"true"},` +
				`"else":{"literal":"2"},"then":{"literal":"1"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exprs, err := Parse(t.Context(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			data, err := json.Marshal(exprs[0])
			if err != nil {
				t.Fatalf("marshal error: %v", err)
			}

			if string(data) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, data)
			}
		})
	}
}
