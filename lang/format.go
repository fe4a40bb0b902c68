package lang

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Operator precedence levels, lowest to highest, mirroring the parser's
// ladder. Declarations, prints, and conditionals sit below everything
// because they greedily consume the rest of the expression.
const (
	precLowest = iota
	precEquality
	precAdditive
	precMultiplicative
	precPrimary
)

// precedence returns the binding strength of the node's operator.
func (e *Expr) precedence() int {
	switch e.Kind {
	case ExprLet, ExprPrint, ExprCond:
		return precLowest

	case ExprEq:
		return precEquality

	case ExprAdd, ExprSub:
		return precAdditive

	case ExprMul, ExprDiv:
		return precMultiplicative

	default:
		return precPrimary
	}
}

// Format writes the expression forest in canonical source form, one
// top-level expression per line. The output re-parses to an identical
// forest: subexpressions are parenthesized exactly where their precedence
// requires it.
func Format(w io.Writer, exprs []*Expr) error {
	for _, expr := range exprs {
		var sb strings.Builder

		writeExpr(&sb, expr, precLowest)

		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}

	return nil
}

// String returns the canonical source form of the expression.
func (e *Expr) String() string {
	var sb strings.Builder

	writeExpr(&sb, e, precLowest)

	return sb.String()
}

// writeExpr renders e into sb, wrapping it in parentheses when its
// precedence is too weak for the surrounding context.
func writeExpr(sb *strings.Builder, e *Expr, min int) {
	if e.precedence() < min {
		sb.WriteByte('(')
		writeExpr(sb, e, precLowest)
		sb.WriteByte(')')

		return
	}

	switch e.Kind {
	case ExprLiteral:
		sb.WriteString(formatLiteral(e.Lit))

	case ExprVar:
		sb.WriteString(e.Name)

	case ExprLet:
		sb.WriteString("let ")
		sb.WriteString(e.Name)
		sb.WriteString(" = ")
		writeExpr(sb, e.X, precLowest)

	case ExprPrint:
		sb.WriteString("print ")
		writeExpr(sb, e.X, precLowest)

	case ExprCond:
		sb.WriteString("if ")
		writeExpr(sb, e.X, precLowest)
		sb.WriteString(" then ")
		writeExpr(sb, e.Y, precLowest)
		sb.WriteString(" else ")
		writeExpr(sb, e.Z, precLowest)

	case ExprNeg:
		sb.WriteByte('-')
		writeExpr(sb, e.X, precPrimary)

	case ExprMul, ExprDiv, ExprAdd, ExprSub, ExprEq:
		prec := e.precedence()

		writeExpr(sb, e.X, prec)
		sb.WriteString(binaryOperator(e.Kind))
		// Operands fold left-associatively, so a right operand at the
		// same level needs explicit grouping to reproduce the tree.
		writeExpr(sb, e.Y, prec+1)
	}
}

// binaryOperator returns the spelled operator for a binary node kind.
func binaryOperator(kind ExprKind) string {
	switch kind {
	case ExprMul:
		return " * "

	case ExprDiv:
		return " / "

	case ExprAdd:
		return " + "

	case ExprSub:
		return " - "

	default: // ExprEq
		return " == "
	}
}

// formatLiteral renders a literal so that it re-lexes with the same kind
// and value. Floats use plain decimal notation, never exponents, because
// the grammar has no exponent syntax; integral renderings get a trailing
// ".0" so they do not come back as integers.
func formatLiteral(v Value) string {
	if v.Kind != KindFloat {
		return v.String()
	}

	s := strconv.FormatFloat(v.Float, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// MarshalYAML implements yaml marshaling for AST dumps.
func (e *Expr) MarshalYAML() (any, error) {
	return e.node(), nil
}

// MarshalJSON implements json.Marshaler for AST dumps.
func (e *Expr) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.node())
}

// node returns a marshal-friendly representation of the tree, keyed by
// the node kind names from [ExprKind.String].
func (e *Expr) node() any {
	switch e.Kind {
	case ExprLiteral:
		return map[string]any{e.Kind.String(): e.Lit.String()}

	case ExprVar:
		return map[string]any{e.Kind.String(): e.Name}

	case ExprLet:
		return map[string]any{e.Kind.String(): map[string]any{
			"name":  e.Name,
			"value": e.X.node(),
		}}

	case ExprPrint, ExprNeg:
		return map[string]any{e.Kind.String(): e.X.node()}

	case ExprMul, ExprDiv, ExprAdd, ExprSub, ExprEq:
		return map[string]any{e.Kind.String(): map[string]any{
			"left":  e.X.node(),
			"right": e.Y.node(),
		}}

	case ExprCond:
		return map[string]any{e.Kind.String(): map[string]any{
			"condition": e.X.node(),
			"then":      e.Y.node(),
			"else":      e.Z.node(),
		}}

	default:
		return nil
	}
}
