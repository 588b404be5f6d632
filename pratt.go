package gocalc

import (
	"fmt"
	"strconv"
)

// Binding powers, lowest first. Every infix operator is
// left-associative, so the climb recurses with power+1.
var infixOps = map[string]struct {
	power int
	op    Op
}{
	"+": {1, OpAdd},
	"-": {1, OpSubtract},
	"*": {2, OpMultiply},
	"/": {2, OpDivide},
	"%": {2, OpModulo},
}

// LiteralError reports an integer literal outside the signed 32-bit
// range.
type LiteralError struct {
	Literal string
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("integer literal %s out of range", e.Literal)
}

// climb builds the precedence-correct tree from a flat
// atom (bin_op atom)* match.
func climb(e *flatExpr) (Expr, error) {
	lhs, err := climbAtom(e.First)
	if err != nil {
		return nil, err
	}
	pos := 0
	return climbInfix(lhs, e.Rest, &pos, 0)
}

func climbInfix(lhs Expr, rest []*opAtom, pos *int, minPower int) (Expr, error) {
	for *pos < len(rest) {
		pair := rest[*pos]
		in, ok := infixOps[pair.Op]
		if !ok {
			// the grammar admits only the five operators above
			panic("gocalc: unknown operator " + pair.Op)
		}
		if in.power < minPower {
			break
		}
		*pos++
		rhs, err := climbAtom(pair.Atom)
		if err != nil {
			return nil, err
		}
		rhs, err = climbInfix(rhs, rest, pos, in.power+1)
		if err != nil {
			return nil, err
		}
		lhs = BinOp{Lhs: lhs, Op: in.op, Rhs: rhs}
	}
	return lhs, nil
}

func climbAtom(a *atom) (Expr, error) {
	var sub Expr
	switch {
	case a.Value.Int != nil:
		n, err := strconv.ParseInt(*a.Value.Int, 10, 32)
		if err != nil {
			return nil, &LiteralError{Literal: *a.Value.Int}
		}
		sub = Integer{Value: int32(n)}
	case a.Value.Sub != nil:
		var err error
		sub, err = climb(a.Value.Sub)
		if err != nil {
			return nil, err
		}
	default:
		panic("gocalc: atom with no value")
	}
	if a.Minus {
		// prefix minus binds tighter than every infix operator
		sub = UnaryMinus{Sub: sub}
	}
	return sub, nil
}
