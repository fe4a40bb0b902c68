package lang

import (
	"context"
	"io"
	"log/slog"

	"github.com/jakubsmolaga/math-parser/log"
)

// ParseReader parses an expression forest from an io.Reader.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) ([]*Expr, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return Parse(ctx, string(data), opts...)
}

// Parse parses source text into an ordered sequence of top-level
// expressions.
//
// The grammar has no statement separator: Parse repeatedly consumes one
// complete top-level expression from the token stream until the
// end-of-input token is reached. Parsing is strict; the first error aborts
// the whole parse with a caret-annotated [SyntaxError] and no partial
// result.
func Parse(ctx context.Context, input string, opts ...Option) ([]*Expr, error) {
	var cfg config

	for _, opt := range opts {
		opt(&cfg)
	}

	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}

	p := &parser{
		source: input,
		tokens: tokens,
	}

	var exprs []*Expr

	for p.peek().Kind != TokenEOF {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		exprs = append(exprs, expr)
	}

	cfg.logger.TraceContext(ctx, "parse complete",
		slog.Int("tokens", len(tokens)),
		slog.Int("expressions", len(exprs)))

	return exprs, nil
}

// config holds parse configuration.
type config struct {
	logger log.Logger
}

// Option applies a configuration option to a parse.
type Option func(*config)

// WithLogger returns an option that sets the structured logger used for
// trace output during parsing. The zero Logger discards everything.
func WithLogger(logger log.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// parser holds the parser state: the original source (for error
// rendering), the token slice, and the index of the next unconsumed token.
type parser struct {
	source string
	tokens []Token
	pos    int
}

// parseExpression parses the lowest-precedence rule: an additive
// expression, optionally folded left-associatively under "==" into
// equality nodes. This is also the entry point re-used for parenthesized
// groups and for the bodies of let, print, and if.
func (p *parser) parseExpression() (*Expr, error) {
	expr, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == TokenDoubleEquals {
		p.advance()

		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}

		expr = NewEq(expr, right)
	}

	return expr, nil
}

// parseAdditive parses multiplicative expressions folded left-
// associatively under "+" and "-".
func (p *parser) parseAdditive() (*Expr, error) {
	expr, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for {
		switch p.peek().Kind {
		case TokenPlus:
			p.advance()

			right, err := p.parseMultiplicative()
			if err != nil {
				return nil, err
			}

			expr = NewAdd(expr, right)

		case TokenMinus:
			p.advance()

			right, err := p.parseMultiplicative()
			if err != nil {
				return nil, err
			}

			expr = NewSub(expr, right)

		default:
			return expr, nil
		}
	}
}

// parseMultiplicative parses primary expressions folded left-associatively
// under "*" and "/".
func (p *parser) parseMultiplicative() (*Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.peek().Kind {
		case TokenStar:
			p.advance()

			right, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}

			expr = NewMul(expr, right)

		case TokenSlash:
			p.advance()

			right, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}

			expr = NewDiv(expr, right)

		default:
			return expr, nil
		}
	}
}

// parsePrimary dispatches on the leading token of a primary expression.
func (p *parser) parsePrimary() (*Expr, error) {
	tok := p.next()

	switch tok.Kind {
	case TokenLParen:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if p.peek().Kind != TokenRParen {
			return nil, p.errorAt(p.peek(), "expected closing parenthesis")
		}

		p.advance()

		return expr, nil

	case TokenInt:
		return NewLiteral(IntValue(tok.Int)), nil

	case TokenFloat:
		return NewLiteral(FloatValue(tok.Float)), nil

	case TokenTrue:
		return NewLiteral(BoolValue(true)), nil

	case TokenFalse:
		return NewLiteral(BoolValue(false)), nil

	case TokenMinus:
		x, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		return NewNeg(x), nil

	case TokenName:
		return NewVar(tok.Name), nil

	case TokenLet:
		return p.parseLet()

	case TokenPrint:
		x, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		return NewPrint(x), nil

	case TokenIf:
		return p.parseConditional()

	case TokenEOF:
		return nil, p.errorAt(tok, "unexpected end of input")

	default:
		return nil, p.errorAt(tok, "unexpected token")
	}
}

// parseLet parses the remainder of a declaration after the "let" keyword:
// a variable name, "=", and a full expression as the initializer.
func (p *parser) parseLet() (*Expr, error) {
	name := p.peek()
	if name.Kind != TokenName {
		return nil, p.errorAt(name, "expected a variable name")
	}

	p.advance()

	if p.peek().Kind != TokenEquals {
		return nil, p.errorAt(p.peek(), `expected "="`)
	}

	p.advance()

	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return NewLet(name.Name, init), nil
}

// parseConditional parses the remainder of a conditional after the "if"
// keyword: condition, "then", true branch, "else", false branch. Each part
// is a full expression, so conditionals nest without parentheses.
func (p *parser) parseConditional() (*Expr, error) {
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind != TokenThen {
		return nil, p.errorAt(p.peek(), `expected "then" keyword`)
	}

	p.advance()

	then, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind != TokenElse {
		return nil, p.errorAt(p.peek(), `expected "else" keyword`)
	}

	p.advance()

	els, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return NewCond(cond, then, els), nil
}

// Helper methods

// peek returns the next unconsumed token without consuming it.
func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

// next consumes and returns the next token. The end-of-input token is
// never consumed, so peek and next remain safe at the end of the stream.
func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	p.advance()

	return tok
}

// advance consumes one token, refusing to move past end of input.
func (p *parser) advance() {
	if p.tokens[p.pos].Kind != TokenEOF {
		p.pos++
	}
}

// errorAt creates a SyntaxError positioned at the given token.
func (p *parser) errorAt(tok Token, msg string) error {
	return &SyntaxError{
		Source: p.source,
		Pos:    tok.Pos,
		Msg:    msg,
	}
}
