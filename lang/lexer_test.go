package lang

import (
	"errors"
	"testing"
)

func TestTokenize_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenKind
	}{
		{
			name:  "operators",
			input: "+ - * / ( )",
			want: []TokenKind{
				TokenPlus, TokenMinus, TokenStar, TokenSlash,
				TokenLParen, TokenRParen, TokenEOF,
			},
		},
		{
			name:  "assignment vs equality",
			input: "= == =",
			want: []TokenKind{
				TokenEquals, TokenDoubleEquals, TokenEquals, TokenEOF,
			},
		},
		{
			name:  "adjacent equals signs",
			input: "===",
			want:  []TokenKind{TokenDoubleEquals, TokenEquals, TokenEOF},
		},
		{
			name:  "keywords",
			input: "let print if then else true false",
			want: []TokenKind{
				TokenLet, TokenPrint, TokenIf, TokenThen,
				TokenElse, TokenTrue, TokenFalse, TokenEOF,
			},
		},
		{
			name:  "names are case sensitive",
			input: "Let letter abc",
			want:  []TokenKind{TokenName, TokenName, TokenName, TokenEOF},
		},
		{
			name:  "numbers",
			input: "42 3.14 0.5",
			want:  []TokenKind{TokenInt, TokenFloat, TokenFloat, TokenEOF},
		},
		{
			name:  "no whitespace between tokens",
			input: "1+2*x",
			want: []TokenKind{
				TokenInt, TokenPlus, TokenInt, TokenStar,
				TokenName, TokenEOF,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("tokenize error: %v", err)
			}

			if len(tokens) != len(tt.want) {
				t.Fatalf("expected %d tokens, got %d: %v",
					len(tt.want), len(tokens), tokens)
			}

			for i, kind := range tt.want {
				if tokens[i].Kind != kind {
					t.Errorf("token %d: expected %v, got %v",
						i, kind, tokens[i].Kind)
				}
			}
		})
	}
}

func TestTokenize_Positions(t *testing.T) {
	tokens, err := Tokenize("let x = 5")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	want := []int{0, 4, 6, 8, 9}

	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}

	for i, pos := range want {
		if tokens[i].Pos != pos {
			t.Errorf("token %d: expected pos %d, got %d",
				i, pos, tokens[i].Pos)
		}
	}
}

func TestTokenize_EOFTrimsTrailingWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"no trailing whitespace", "1 + 2", 5},
		{"trailing spaces", "1 + 2   ", 5},
		{"trailing newline", "1 + 2\n", 5},
		{"mixed trailing whitespace", "x \t\r\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("tokenize error: %v", err)
			}

			eof := tokens[len(tokens)-1]
			if eof.Kind != TokenEOF {
				t.Fatalf("expected trailing EOF token, got %v", eof)
			}

			if eof.Pos != tt.want {
				t.Errorf("expected EOF pos %d, got %d", tt.want, eof.Pos)
			}
		})
	}
}

func TestTokenize_Values(t *testing.T) {
	tokens, err := Tokenize("42 2.5 alpha")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}

	if tokens[0].Int != 42 {
		t.Errorf("expected int 42, got %d", tokens[0].Int)
	}

	if tokens[1].Float != 2.5 {
		t.Errorf("expected float 2.5, got %g", tokens[1].Float)
	}

	if tokens[2].Name != "alpha" {
		t.Errorf("expected name 'alpha', got %q", tokens[2].Name)
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"only spaces", "   "},
		{"only whitespace", " \t\n\r "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			if !errors.Is(err, ErrEmptyInput) {
				t.Errorf("expected ErrEmptyInput, got %v", err)
			}
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
		wantPos int
	}{
		{
			name:    "unexpected character",
			input:   "1 + @",
			wantMsg: "unexpected character",
			wantPos: 4,
		},
		{
			name:    "integer overflow",
			input:   "99999999999999999999",
			wantMsg: "malformed number",
			wantPos: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)

			var serr *SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("expected SyntaxError, got %v", err)
			}

			if serr.Msg != tt.wantMsg {
				t.Errorf("expected msg %q, got %q", tt.wantMsg, serr.Msg)
			}

			if serr.Pos != tt.wantPos {
				t.Errorf("expected pos %d, got %d", tt.wantPos, serr.Pos)
			}
		})
	}
}
