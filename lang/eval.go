package lang

import (
	"fmt"
	"log/slog"
	"math"
)

// epsilon is the tolerance used by the equality test. Both operands are
// coerced to float64 before comparison, so it governs integer and boolean
// equality as well; integer equality is exact only because the epsilon is
// smaller than 1.
const epsilon = 1e-6

// Eval walks the expression tree to a value against the given environment.
//
// Evaluation is a direct structural recursion: operands are evaluated
// left-to-right in pre-order, so side effects (variable writes, prints)
// are sequenced in source order. The two runtime faults — unbound variable
// lookup and integer division by zero — are returned as the recoverable
// sentinel errors [ErrUnboundVariable] and [ErrDivideByZero].
func (e *Expr) Eval(env *Env) (Value, error) {
	switch e.Kind {
	case ExprLiteral:
		return e.Lit, nil

	case ExprLet:
		return e.evalLet(env)

	case ExprVar:
		value, ok := env.Lookup(e.Name)
		if !ok {
			return Value{}, ErrUnboundVariable.
				With(slog.String("name", e.Name))
		}

		return value, nil

	case ExprPrint:
		return e.evalPrint(env)

	case ExprMul, ExprDiv, ExprAdd, ExprSub:
		return e.evalArithmetic(env)

	case ExprNeg:
		return e.evalNegative(env)

	case ExprEq:
		return e.evalEquality(env)

	case ExprCond:
		return e.evalConditional(env)

	default:
		return Value{}, NewError("invalid expression kind").
			With(slog.String("kind", e.Kind.String()))
	}
}

// evalLet evaluates the initializer, binds it in the environment, and
// returns the same value. Declarations are expressions with a value, so
// they chain: "let x = let y = 1" binds both names to 1.
func (e *Expr) evalLet(env *Env) (Value, error) {
	value, err := e.X.Eval(env)
	if err != nil {
		return Value{}, err
	}

	env.Define(e.Name, value)

	return value, nil
}

// evalPrint evaluates the operand, writes its rendering and a newline to
// the environment's output sink, and returns the value unchanged.
func (e *Expr) evalPrint(env *Env) (Value, error) {
	value, err := e.X.Eval(env)
	if err != nil {
		return Value{}, err
	}

	fmt.Fprintln(env.out, value)

	return value, nil
}

// evalArithmetic evaluates both operands and applies the binary operation.
// When both operands are integers the operation stays in 64-bit integer
// arithmetic, with truncating division; integer division by zero is an
// error. Otherwise both operands are coerced to float64 and the operation
// is performed in floating point, where division by zero yields IEEE
// infinity or NaN rather than an error.
func (e *Expr) evalArithmetic(env *Env) (Value, error) {
	left, err := e.X.Eval(env)
	if err != nil {
		return Value{}, err
	}

	right, err := e.Y.Eval(env)
	if err != nil {
		return Value{}, err
	}

	if left.Kind == KindInt && right.Kind == KindInt {
		switch e.Kind {
		case ExprMul:
			return IntValue(left.Int * right.Int), nil

		case ExprDiv:
			if right.Int == 0 {
				return Value{}, ErrDivideByZero
			}

			return IntValue(left.Int / right.Int), nil

		case ExprAdd:
			return IntValue(left.Int + right.Int), nil

		default: // ExprSub
			return IntValue(left.Int - right.Int), nil
		}
	}

	x, y := left.Float64(), right.Float64()

	switch e.Kind {
	case ExprMul:
		return FloatValue(x * y), nil

	case ExprDiv:
		return FloatValue(x / y), nil

	case ExprAdd:
		return FloatValue(x + y), nil

	default: // ExprSub
		return FloatValue(x - y), nil
	}
}

// evalNegative negates integers and floats arithmetically and booleans
// logically.
func (e *Expr) evalNegative(env *Env) (Value, error) {
	value, err := e.X.Eval(env)
	if err != nil {
		return Value{}, err
	}

	switch value.Kind {
	case KindInt:
		return IntValue(-value.Int), nil

	case KindFloat:
		return FloatValue(-value.Float), nil

	default: // KindBool
		return BoolValue(!value.Bool), nil
	}
}

// evalEquality coerces both operands to float64 regardless of kind and
// compares within epsilon.
func (e *Expr) evalEquality(env *Env) (Value, error) {
	left, err := e.X.Eval(env)
	if err != nil {
		return Value{}, err
	}

	right, err := e.Y.Eval(env)
	if err != nil {
		return Value{}, err
	}

	return BoolValue(math.Abs(left.Float64()-right.Float64()) < epsilon), nil
}

// evalConditional takes the true branch only when the condition evaluates
// to Bool(true). Every other value, including any integer or float, falls
// through to the false branch. The untaken branch is never evaluated.
func (e *Expr) evalConditional(env *Env) (Value, error) {
	cond, err := e.X.Eval(env)
	if err != nil {
		return Value{}, err
	}

	if cond.Kind == KindBool && cond.Bool {
		return e.Y.Eval(env)
	}

	return e.Z.Eval(env)
}
