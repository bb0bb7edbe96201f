package printer

import (
	"testing"

	"github.com/gofidl/gofidl/ast"
)

func TestConstant(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expression
		want string
	}{
		{
			"u3",
			ast.Paren(ast.NewTerm("*",
				ast.NewTerm("/",
					ast.Paren(ast.NewTerm("+", ast.Int(3), ast.NewTerm("*", ast.Int(4), ast.Int(5)))),
					ast.Int(3)),
				ast.Paren(ast.NewTerm("+", ast.Int(5), ast.Int(-3))))),
			"u3 = ( ( 3 + 4 * 5 ) / 3 * ( 5 + -3 ) )",
		},
		{
			"u4",
			ast.NewTerm(">",
				ast.NewTerm("-",
					ast.NewTerm("+", ast.ValueRef("a"), ast.NewTerm("*", ast.Int(3), ast.ValueRef("b"))),
					ast.Int(3)),
				ast.Int(23)),
			"u4 = a + 3 * b - 3 > 23",
		},
		{"uni2", ast.StructInit(ast.FieldInit("e3", ast.Str("foo"))), "uni2 = { e3: foo }"},
		{"empty", ast.ArrayInit(), "empty = [  ]"},
		{"emptyStruct", ast.StructInit(), "emptyStruct = {  }"},
		{"arr", ast.ArrayInit(ast.Int(1), ast.Int(2)), "arr = [ 1, 2 ]"},
		{
			"m1",
			ast.MapInit(ast.Entry(ast.Int(1), ast.Str("one")), ast.Entry(ast.Int(2), ast.Str("two"))),
			"m1 = [ 1 => one, 2 => two ]",
		},
		{
			"s1",
			ast.StructInit(
				ast.FieldInit("e1", ast.NewTerm(">", ast.Int(24), ast.Int(42))),
				ast.FieldInit("e2", ast.NewTerm("+", ast.Int(1), ast.NewTerm("*", ast.Int(2), ast.Int(3)))),
				ast.FieldInit("e3", ast.Str("foo")),
			),
			"s1 = { e1: 24 > 42, e2: 1 + 2 * 3, e3: foo }",
		},
		{"b", ast.NewTerm("&&", ast.Bool(true), ast.Bool(false)), "b = true && false"},
		{"f", ast.NewTerm("*", ast.Real(2), ast.Real(1.5)), "f = 2.0 * 1.5"},
		{"big", ast.Real(1e40), "big = 1e+40"},
		{"nested", ast.ArrayInit(ast.StructInit(ast.FieldInit("x", ast.Int(1)))), "nested = [ { x: 1 } ]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ast.NewConstant(tt.name, nil, tt.expr)
			if got := Constant(c); got != tt.want {
				t.Errorf("Constant() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpressionIgnoresFolding(t *testing.T) {
	term := ast.NewTerm("+", ast.Int(1), ast.Int(2))
	term.SetResult(ast.IntLiteral(3), ast.TypeInt8)

	if got := Expression(term); got != "1 + 2" {
		t.Errorf("Expression() = %q, want %q", got, "1 + 2")
	}
}
