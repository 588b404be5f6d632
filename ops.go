package gocalc

import "math"

// Op is a binary arithmetic operator.
type Op int

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpModulo:
		return "%"
	}
	panic("unsupported operator")
}

// Checked 32-bit arithmetic. ok reports whether the result fits the
// signed 32-bit range.

func add32(a, b int32) (int32, bool) {
	v := int64(a) + int64(b)
	return int32(v), v >= math.MinInt32 && v <= math.MaxInt32
}

func sub32(a, b int32) (int32, bool) {
	v := int64(a) - int64(b)
	return int32(v), v >= math.MinInt32 && v <= math.MaxInt32
}

func mul32(a, b int32) (int32, bool) {
	v := int64(a) * int64(b)
	return int32(v), v >= math.MinInt32 && v <= math.MaxInt32
}

func neg32(a int32) (int32, bool) {
	return -a, a != math.MinInt32
}

// div32 and mod32 require b != 0; the caller reports zero divisors.
// Truncating division, so MinInt32 over -1 cannot be represented.

func div32(a, b int32) (int32, bool) {
	if a == math.MinInt32 && b == -1 {
		return 0, false
	}
	return a / b, true
}

func mod32(a, b int32) (int32, bool) {
	if a == math.MinInt32 && b == -1 {
		return 0, false
	}
	return a % b, true
}
