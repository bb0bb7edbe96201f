// Package printer renders expression trees back to Franca surface syntax.
//
// Printing is structural: folded values are not substituted, so a term
// prints the way it was written whether or not it has been evaluated.
package printer

import (
	"strings"

	"github.com/gofidl/gofidl/ast"
)

// Expression returns the canonical text of e.
func Expression(e ast.Expression) string {
	var b strings.Builder
	write(&b, e)
	return b.String()
}

// Constant returns "name = <expression>".
func Constant(c *ast.Constant) string {
	return c.Name + " = " + Expression(c.Expression)
}

func write(b *strings.Builder, e ast.Expression) {
	switch e := e.(type) {
	case *ast.Value:
		b.WriteString(e.Literal.String())
	case *ast.Term:
		write(b, e.Left)
		b.WriteByte(' ')
		b.WriteString(e.Operator)
		b.WriteByte(' ')
		write(b, e.Right)
	case *ast.ParentExpression:
		b.WriteString("( ")
		write(b, e.Inner)
		b.WriteString(" )")
	case *ast.ValueReference:
		b.WriteString(e.Name)
	case *ast.ArrayInitializer:
		b.WriteString("[ ")
		for i, el := range e.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, el)
		}
		b.WriteString(" ]")
	case *ast.MapInitializer:
		b.WriteString("[ ")
		for i, en := range e.Entries {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, en.Key)
			b.WriteString(" => ")
			write(b, en.Value)
		}
		b.WriteString(" ]")
	case *ast.StructInitializer:
		b.WriteString("{ ")
		for i, f := range e.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name)
			b.WriteString(": ")
			write(b, f.Value)
		}
		b.WriteString(" }")
	}
}
