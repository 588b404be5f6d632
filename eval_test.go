package gocalc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  int32
	}{
		{input: "1+2", want: 3},
		{input: "  1 + 2 ", want: 3},
		{input: "2+3*4", want: 14},
		{input: "(2+3)*4", want: 20},
		{input: "10-3-2", want: 5},
		{input: "100/10/5", want: 2},
		{input: "-2*3", want: -6},
		{input: "-2+3", want: 1},
		{input: "-(2+3)", want: -5},
		{input: "7/2", want: 3},
		{input: "-7/2", want: -3},
		{input: "7%2", want: 1},
		{input: "-7%2", want: -1},
		{input: "7%-2", want: 1},
		{input: "1--2", want: 3},
		{input: "0-0", want: 0},
		{input: "2147483647", want: math.MaxInt32},
		{input: "-2147483647-1", want: math.MinInt32},
	}
	for _, test := range tests {
		v, err := Calc(test.input)
		require.NoErrorf(t, err, "input %q", test.input)
		require.Equalf(t, test.want, v, "input %q", test.input)
	}
}

func TestEvalDivideByZero(t *testing.T) {
	for _, input := range []string{"5/0", "5%0", "1+5/(3-3)"} {
		_, err := Calc(input)
		var derr *DivideByZeroError
		require.ErrorAsf(t, err, &derr, "input %q", input)
	}
}

func TestEvalOverflow(t *testing.T) {
	for _, input := range []string{
		"2147483647+1",
		"-2147483647-2",
		"65536*65536",
		"(-2147483647-1)/(0-1)",
		"(-2147483647-1)%(0-1)",
		"-(-2147483647-1)",
	} {
		_, err := Calc(input)
		var oerr *OverflowError
		require.ErrorAsf(t, err, &oerr, "input %q", input)
	}
}
