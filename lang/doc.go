// Package lang implements the math expression language: a lexer producing
// positioned tokens, a recursive descent parser building an expression
// forest, and a tree-walking evaluator over a flat mutable environment.
//
// # Pipeline
//
// Source text flows one direction:
//
//	text → tokens → expressions → values
//
// [Tokenize] converts raw source into a token sequence, [Parse] consumes the
// tokens into an ordered sequence of top-level expressions, and
// [Expr.Eval] walks each tree to a [Value] against an [Env] threaded by the
// caller. Variable bindings made by one top-level expression are visible to
// later ones in the same session.
//
// # Grammar
//
// Informal EBNF, lowest precedence first:
//
//	Program        → Expression* EOF
//	Expression     → Equality
//	Equality       → Additive ('==' Additive)*
//	Additive       → Multiplicative (('+' | '-') Multiplicative)*
//	Multiplicative → Primary (('*' | '/') Primary)*
//	Primary        → Int | Float | 'true' | 'false' | Name
//	               | '(' Expression ')'
//	               | '-' Primary
//	               | 'let' Name '=' Expression
//	               | 'print' Expression
//	               | 'if' Expression 'then' Expression 'else' Expression
//
// There is no statement separator. A program is simply repeated top-level
// parses until end of input, so adjacent expressions are delimited
// positionally by whatever whitespace happens to separate their tokens.
//
// # Types
//
// The language is dynamically typed over exactly three value kinds: 64-bit
// signed integer, 64-bit IEEE float, and boolean. Arithmetic between two
// integers stays integral (with truncating division); if either operand is a
// float or boolean, both operands are coerced to float64 (booleans become
// 1.0 or 0.0) and the operation is performed in floating point. Equality
// always compares in floating point within an epsilon of 1e-6.
package lang
