package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/mattn/go-isatty"

	"github.com/mattn/gocalc"
)

var cli struct {
	AST  bool     `help:"Print the parsed expression tree instead of evaluating."`
	Expr []string `arg:"" optional:"" help:"Expression to evaluate. Reads lines from stdin when omitted."`
}

func repl() {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		v, err := gocalc.Calc(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Parse failed: %v\n", err)
			continue
		}
		fmt.Printf("Result: %d\n", v)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("gocalc"),
		kong.Description("A line oriented integer expression calculator."))

	if len(cli.Expr) > 0 {
		e, err := gocalc.Parse(strings.Join(cli.Expr, " "))
		ctx.FatalIfErrorf(err)
		if cli.AST {
			repr.Println(e)
			return
		}
		v, err := gocalc.Eval(e)
		ctx.FatalIfErrorf(err)
		fmt.Println(v)
		return
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		repl()
		return
	}
	if err := gocalc.Run(os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}
