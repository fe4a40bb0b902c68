package lang

import (
	"sort"
	"strconv"
)

// TokenKind identifies the kind of a lexical token.
type TokenKind int

const (
	// TokenEOF marks the end of the input.
	TokenEOF TokenKind = iota

	// TokenInt is an integer literal.
	TokenInt

	// TokenFloat is a floating point literal.
	TokenFloat

	// TokenName is an identifier referencing a variable.
	TokenName

	// TokenLet is the "let" keyword.
	TokenLet

	// TokenPrint is the "print" keyword.
	TokenPrint

	// TokenIf is the "if" keyword.
	TokenIf

	// TokenThen is the "then" keyword.
	TokenThen

	// TokenElse is the "else" keyword.
	TokenElse

	// TokenTrue is the "true" keyword.
	TokenTrue

	// TokenFalse is the "false" keyword.
	TokenFalse

	// TokenPlus is the "+" operator.
	TokenPlus

	// TokenMinus is the "-" operator.
	TokenMinus

	// TokenStar is the "*" operator.
	TokenStar

	// TokenSlash is the "/" operator.
	TokenSlash

	// TokenLParen is the "(" punctuator.
	TokenLParen

	// TokenRParen is the ")" punctuator.
	TokenRParen

	// TokenEquals is the "=" operator.
	TokenEquals

	// TokenDoubleEquals is the "==" operator.
	TokenDoubleEquals
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"

	case TokenInt:
		return "integer"

	case TokenFloat:
		return "float"

	case TokenName:
		return "name"

	case TokenLet:
		return `"let"`

	case TokenPrint:
		return `"print"`

	case TokenIf:
		return `"if"`

	case TokenThen:
		return `"then"`

	case TokenElse:
		return `"else"`

	case TokenTrue:
		return `"true"`

	case TokenFalse:
		return `"false"`

	case TokenPlus:
		return `"+"`

	case TokenMinus:
		return `"-"`

	case TokenStar:
		return `"*"`

	case TokenSlash:
		return `"/"`

	case TokenLParen:
		return `"("`

	case TokenRParen:
		return `")"`

	case TokenEquals:
		return `"="`

	case TokenDoubleEquals:
		return `"=="`

	default:
		return "unknown"
	}
}

// Token is a single lexical token paired with the byte offset of its first
// character in the original source.
type Token struct {
	Kind  TokenKind
	Int   int64   // Literal value for TokenInt
	Float float64 // Literal value for TokenFloat
	Name  string  // Identifier text for TokenName
	Pos   int     // Byte offset into the source
}

// String returns a debug representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case TokenInt:
		return strconv.FormatInt(t.Int, 10)

	case TokenFloat:
		return strconv.FormatFloat(t.Float, 'g', -1, 64)

	case TokenName:
		return t.Name

	default:
		return t.Kind.String()
	}
}

// keywords maps reserved words to their token kinds. Any other alphabetic
// word lexes as a TokenName.
var keywords = map[string]TokenKind{
	"let":   TokenLet,
	"print": TokenPrint,
	"if":    TokenIf,
	"then":  TokenThen,
	"else":  TokenElse,
	"true":  TokenTrue,
	"false": TokenFalse,
}

// Keywords returns the reserved words of the language in sorted order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for word := range keywords {
		words = append(words, word)
	}

	sort.Strings(words)

	return words
}
