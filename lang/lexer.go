package lang

import "strconv"

// Tokenize converts source text into a sequence of positioned tokens.
//
// Lexing is strict: the first error aborts tokenization. A successful
// result for non-empty input always ends with exactly one TokenEOF whose
// offset is the length of the input after trimming trailing whitespace.
func Tokenize(input string) ([]Token, error) {
	l := &lexer{input: input}

	l.skipSpace()

	if l.eof() {
		return nil, ErrEmptyInput
	}

	var tokens []Token

	for !l.eof() {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
		l.skipSpace()
	}

	tokens = append(tokens, Token{
		Kind: TokenEOF,
		Pos:  trimmedLen(input),
	})

	return tokens, nil
}

// lexer holds the scanner state: the immutable source buffer and the byte
// offset of the next unread character.
type lexer struct {
	input string
	pos   int
}

// next scans a single token starting at the current position.
func (l *lexer) next() (Token, error) {
	pos := l.pos

	switch c := l.input[l.pos]; {
	case c == '+':
		l.pos++

		return Token{Kind: TokenPlus, Pos: pos}, nil

	case c == '-':
		l.pos++

		return Token{Kind: TokenMinus, Pos: pos}, nil

	case c == '*':
		l.pos++

		return Token{Kind: TokenStar, Pos: pos}, nil

	case c == '/':
		l.pos++

		return Token{Kind: TokenSlash, Pos: pos}, nil

	case c == '(':
		l.pos++

		return Token{Kind: TokenLParen, Pos: pos}, nil

	case c == ')':
		l.pos++

		return Token{Kind: TokenRParen, Pos: pos}, nil

	case c == '=':
		// "==" must win over "=", so look ahead one character.
		if l.pos+1 < len(l.input) && l.input[l.pos+1] == '=' {
			l.pos += 2

			return Token{Kind: TokenDoubleEquals, Pos: pos}, nil
		}

		l.pos++

		return Token{Kind: TokenEquals, Pos: pos}, nil

	case isDigit(c):
		return l.number()

	case isAlpha(c):
		return l.word(), nil

	default:
		return Token{}, &SyntaxError{
			Source: l.input,
			Pos:    pos,
			Msg:    "unexpected character",
		}
	}
}

// number scans an integer or float literal. A digit run followed by a dot
// continues through the fractional digits and lexes as a float; otherwise
// the digit run alone lexes as an integer.
func (l *lexer) number() (Token, error) {
	pos := l.pos

	l.eatDigits()

	if l.eof() || l.input[l.pos] != '.' {
		value, err := strconv.ParseInt(l.input[pos:l.pos], 10, 64)
		if err != nil {
			return Token{}, &SyntaxError{
				Source: l.input,
				Pos:    pos,
				Msg:    "malformed number",
			}
		}

		return Token{Kind: TokenInt, Int: value, Pos: pos}, nil
	}

	l.pos++ // consume '.'
	l.eatDigits()

	value, err := strconv.ParseFloat(l.input[pos:l.pos], 64)
	if err != nil {
		return Token{}, &SyntaxError{
			Source: l.input,
			Pos:    pos,
			Msg:    "malformed number",
		}
	}

	return Token{Kind: TokenFloat, Float: value, Pos: pos}, nil
}

// word scans an alphabetic run and classifies it as a keyword or name.
func (l *lexer) word() Token {
	pos := l.pos

	for !l.eof() && isAlpha(l.input[l.pos]) {
		l.pos++
	}

	text := l.input[pos:l.pos]

	if kind, ok := keywords[text]; ok {
		return Token{Kind: kind, Pos: pos}
	}

	return Token{Kind: TokenName, Name: text, Pos: pos}
}

func (l *lexer) eatDigits() {
	for !l.eof() && isDigit(l.input[l.pos]) {
		l.pos++
	}
}

func (l *lexer) skipSpace() {
	for !l.eof() && isSpace(l.input[l.pos]) {
		l.pos++
	}
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.input)
}

// trimmedLen returns the length of the input with trailing ASCII whitespace
// removed. This is the offset reported for the end-of-input token.
func trimmedLen(input string) int {
	n := len(input)
	for n > 0 && isSpace(input[n-1]) {
		n--
	}

	return n
}

// Character classification (ASCII only; the language has no use for
// anything wider).

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}

	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
