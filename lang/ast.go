package lang

// ExprKind identifies the variant of an expression node.
type ExprKind int

const (
	// ExprLiteral is a literal integer, float, or boolean value.
	ExprLiteral ExprKind = iota

	// ExprLet is a variable declaration: let Name = X.
	ExprLet

	// ExprVar is a variable reference.
	ExprVar

	// ExprPrint evaluates X and writes its rendering to the environment's
	// output sink.
	ExprPrint

	// ExprMul is multiplication: X * Y.
	ExprMul

	// ExprDiv is division: X / Y.
	ExprDiv

	// ExprAdd is addition: X + Y.
	ExprAdd

	// ExprSub is subtraction: X - Y.
	ExprSub

	// ExprNeg is unary negation: -X.
	ExprNeg

	// ExprEq is the equality test: X == Y.
	ExprEq

	// ExprCond is the conditional: if X then Y else Z.
	ExprCond
)

// String returns a string representation of the expression kind.
func (k ExprKind) String() string {
	switch k {
	case ExprLiteral:
		return "literal"

	case ExprLet:
		return "let"

	case ExprVar:
		return "var"

	case ExprPrint:
		return "print"

	case ExprMul:
		return "multiply"

	case ExprDiv:
		return "divide"

	case ExprAdd:
		return "add"

	case ExprSub:
		return "subtract"

	case ExprNeg:
		return "negative"

	case ExprEq:
		return "equals"

	case ExprCond:
		return "if"

	default:
		return "unknown"
	}
}

// Expr is a node of the abstract syntax tree. The node set is closed:
// every operation over the tree is an exhaustive switch on Kind. Interior
// nodes exclusively own their children, and the tree is immutable once
// built.
//
// Operand usage by kind:
//
//	ExprLiteral          Lit
//	ExprLet              Name, X (initializer)
//	ExprVar              Name
//	ExprPrint, ExprNeg   X
//	ExprMul … ExprEq     X (left), Y (right)
//	ExprCond             X (condition), Y (then), Z (else)
type Expr struct {
	Kind ExprKind
	Lit  Value
	Name string
	X    *Expr
	Y    *Expr
	Z    *Expr
}

// NewLiteral creates a literal node holding the given value.
func NewLiteral(v Value) *Expr {
	return &Expr{Kind: ExprLiteral, Lit: v}
}

// NewLet creates a variable declaration node.
func NewLet(name string, init *Expr) *Expr {
	return &Expr{Kind: ExprLet, Name: name, X: init}
}

// NewVar creates a variable reference node.
func NewVar(name string) *Expr {
	return &Expr{Kind: ExprVar, Name: name}
}

// NewPrint creates a print node.
func NewPrint(x *Expr) *Expr {
	return &Expr{Kind: ExprPrint, X: x}
}

// NewMul creates a multiplication node.
func NewMul(x, y *Expr) *Expr {
	return &Expr{Kind: ExprMul, X: x, Y: y}
}

// NewDiv creates a division node.
func NewDiv(x, y *Expr) *Expr {
	return &Expr{Kind: ExprDiv, X: x, Y: y}
}

// NewAdd creates an addition node.
func NewAdd(x, y *Expr) *Expr {
	return &Expr{Kind: ExprAdd, X: x, Y: y}
}

// NewSub creates a subtraction node.
func NewSub(x, y *Expr) *Expr {
	return &Expr{Kind: ExprSub, X: x, Y: y}
}

// NewNeg creates a unary negation node.
func NewNeg(x *Expr) *Expr {
	return &Expr{Kind: ExprNeg, X: x}
}

// NewEq creates an equality test node.
func NewEq(x, y *Expr) *Expr {
	return &Expr{Kind: ExprEq, X: x, Y: y}
}

// NewCond creates a conditional node.
func NewCond(cond, then, els *Expr) *Expr {
	return &Expr{Kind: ExprCond, X: cond, Y: then, Z: els}
}
