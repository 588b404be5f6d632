package gocalc

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Raw grammar, one struct per rule. The field tags transcribe the BNF:
//
//	equation := expr end-of-input
//	expr     := atom (bin_op atom)*
//	atom     := '-'? ( integer | '(' expr ')' )
//	bin_op   := '+' | '-' | '*' | '/' | '%'
//
// The match mirrors grammar nesting only. The flat atom/operator pairs
// are precedence-resolved by a separate climb in pratt.go, so operator
// precedence can change without touching the grammar.
type equation struct {
	Expr *flatExpr `parser:"@@"`
}

type flatExpr struct {
	First *atom     `parser:"@@"`
	Rest  []*opAtom `parser:"@@*"`
}

type opAtom struct {
	Op   string `parser:"@(\"+\" | \"-\" | \"*\" | \"/\" | \"%\")"`
	Atom *atom  `parser:"@@"`
}

type atom struct {
	Minus bool   `parser:"@\"-\"?"`
	Value *value `parser:"@@"`
}

type value struct {
	Int *string   `parser:"@Int"`
	Sub *flatExpr `parser:"| \"(\" @@ \")\""`
}

// Only the space character separates tokens. Anything else, tabs
// included, matches no rule and fails to lex.
var calcLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[-+*/%()]`},
	{Name: "Space", Pattern: ` +`},
})

var parser = participle.MustBuild[equation](
	participle.Lexer(calcLexer),
	participle.Elide("Space"),
)

// Parse matches one line against the equation grammar and resolves
// operator precedence, returning the expression tree. The whole line
// must match; trailing input is an error.
func Parse(line string) (Expr, error) {
	eq, err := parser.ParseString("", line)
	if err != nil {
		return nil, err
	}
	return climb(eq.Expr)
}
