package gocalc

import (
	"bufio"
	"fmt"
	"io"
)

// Calc parses and evaluates a single line.
func Calc(line string) (int32, error) {
	e, err := Parse(line)
	if err != nil {
		return 0, err
	}
	return Eval(e)
}

// Run evaluates r line by line, writing one "Result:" line to out per
// valid equation and one "Parse failed:" line to errOut per invalid
// one. Lines are independent; only a read failure on r stops the
// loop, and that error is returned.
func Run(r io.Reader, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		v, err := Calc(scanner.Text())
		if err != nil {
			fmt.Fprintf(errOut, "Parse failed: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "Result: %d\n", v)
	}
	return scanner.Err()
}
