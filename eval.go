package gocalc

import "fmt"

// DivideByZeroError reports division or modulo with a zero right
// operand. Expr is the offending subtree.
type DivideByZeroError struct {
	Expr Expr
}

func (e *DivideByZeroError) Error() string {
	return fmt.Sprintf("division by zero in %s", e.Expr)
}

// OverflowError reports a result outside the signed 32-bit range.
// Expr is the subtree whose evaluation overflowed.
type OverflowError struct {
	Expr Expr
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("integer overflow in %s", e.Expr)
}

// Eval reduces an expression tree to a single value, post-order.
func Eval(e Expr) (int32, error) {
	switch e := e.(type) {
	case Integer:
		return e.Value, nil
	case UnaryMinus:
		v, err := Eval(e.Sub)
		if err != nil {
			return 0, err
		}
		v, ok := neg32(v)
		if !ok {
			return 0, &OverflowError{Expr: e}
		}
		return v, nil
	case BinOp:
		l, err := Eval(e.Lhs)
		if err != nil {
			return 0, err
		}
		r, err := Eval(e.Rhs)
		if err != nil {
			return 0, err
		}
		if r == 0 && (e.Op == OpDivide || e.Op == OpModulo) {
			return 0, &DivideByZeroError{Expr: e}
		}
		var v int32
		var ok bool
		switch e.Op {
		case OpAdd:
			v, ok = add32(l, r)
		case OpSubtract:
			v, ok = sub32(l, r)
		case OpMultiply:
			v, ok = mul32(l, r)
		case OpDivide:
			v, ok = div32(l, r)
		case OpModulo:
			v, ok = mod32(l, r)
		}
		if !ok {
			return 0, &OverflowError{Expr: e}
		}
		return v, nil
	}
	panic(fmt.Sprintf("gocalc: unknown expression %T", e))
}
