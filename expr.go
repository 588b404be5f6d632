package gocalc

import (
	"fmt"
	"strconv"
)

// Expr is one node of a parsed expression tree. The set of
// implementations is closed: Integer, UnaryMinus and BinOp.
type Expr interface {
	expr()
	String() string
}

// Integer is a signed 32-bit literal.
type Integer struct {
	Value int32
}

// UnaryMinus negates its operand.
type UnaryMinus struct {
	Sub Expr
}

// BinOp applies Op to two operands.
type BinOp struct {
	Lhs Expr
	Op  Op
	Rhs Expr
}

func (Integer) expr()    {}
func (UnaryMinus) expr() {}
func (BinOp) expr()      {}

func (e Integer) String() string {
	return strconv.FormatInt(int64(e.Value), 10)
}

func (e UnaryMinus) String() string {
	return "(-" + e.Sub.String() + ")"
}

func (e BinOp) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Lhs, e.Op, e.Rhs)
}
