// Package eval folds Franca constant expressions.
//
// Expressions are reduced in place: every scalar-producing node records
// its folded literal and Franca type name, after which it reads like a
// Value. Initializers are resolved element by element but never collapse
// to a scalar. Folding runs after type resolution, because value
// references are looked up through the namespace visibility that the
// resolver established.
package eval

import (
	"fmt"
	"log/slog"

	"github.com/gofidl/gofidl/ast"
	"github.com/gofidl/gofidl/internal/resolver"
	"github.com/gofidl/gofidl/internal/types"
)

// Evaluator folds constants and enumerator values.
type Evaluator struct {
	types.Logger
	folded      int
	enumerators int
	inProgress  map[*ast.Constant]bool
}

// New returns an evaluator. If logger is nil, logging is disabled.
func New(logger *slog.Logger) *Evaluator {
	return &Evaluator{
		Logger:     types.NewLogger(logger, "eval"),
		inProgress: make(map[*ast.Constant]bool),
	}
}

// Folded returns the number of constants folded so far.
func (e *Evaluator) Folded() int {
	return e.folded
}

// Enumerators returns the number of enumerator values folded so far.
func (e *Evaluator) Enumerators() int {
	return e.enumerators
}

// ResolveConstants folds every constant of ns in declaration order, then
// the enumerator values of its enumerations and inline method errors.
func (e *Evaluator) ResolveConstants(ns *ast.Namespace) error {
	for _, c := range ns.Constants() {
		if err := e.ResolveConstant(c); err != nil {
			return err
		}
	}
	for _, en := range ns.Enumerations() {
		if err := e.resolveEnumerators(ns, en.Name, en.Enumerators); err != nil {
			return err
		}
	}
	for _, m := range ns.Methods {
		if err := e.resolveEnumerators(ns, m.Name, m.ErrorEnumerators); err != nil {
			return err
		}
	}
	return nil
}

// ResolveConstant folds c. It is a no-op once c is resolved. A scalar
// result is checked against the declared type, or becomes the inferred
// type when none was declared.
func (e *Evaluator) ResolveConstant(c *ast.Constant) error {
	if c.Resolved {
		return nil
	}
	if e.inProgress[c] {
		return types.Errorf(types.KindCircularReference, c.Name,
			"Circular constant reference '%s'.", c.Name)
	}
	e.inProgress[c] = true
	defer delete(e.inProgress, c)

	if err := e.ResolveExpression(c.Namespace, c.Expression); err != nil {
		return err
	}

	if lit, typeName, ok := ast.Scalar(c.Expression); ok {
		if c.Type != nil {
			if err := CheckAssignment(c.Name, DeclaredName(c.Type), lit, typeName); err != nil {
				return err
			}
		} else {
			c.Type = ast.NewPrimitive(typeName)
		}
		c.Value = &lit
	}
	c.Resolved = true
	e.folded++

	if e.TraceEnabled() {
		value := "<composite>"
		if c.Value != nil {
			value = c.Value.String()
		}
		e.Trace("constant folded",
			slog.String("constant", c.Name),
			slog.String("type", c.Type.TypeName()),
			slog.String("value", value))
	}
	return nil
}

// ResolveExpression folds x in place. ns is the namespace value
// references are looked up from.
func (e *Evaluator) ResolveExpression(ns *ast.Namespace, x ast.Expression) error {
	switch x := x.(type) {
	case *ast.Value:
		return nil

	case *ast.Term:
		if x.Resolved {
			return nil
		}
		if err := e.ResolveExpression(ns, x.Left); err != nil {
			return err
		}
		if err := e.ResolveExpression(ns, x.Right); err != nil {
			return err
		}
		return Calc(x)

	case *ast.ParentExpression:
		if x.Resolved {
			return nil
		}
		if err := e.ResolveExpression(ns, x.Inner); err != nil {
			return err
		}
		lit, typeName, ok := ast.Scalar(x.Inner)
		if !ok {
			return types.Errorf(types.KindInvalidOperand, "( )",
				"Unsupported operand type for '( )': %s.", kindName(x.Inner))
		}
		x.SetResult(lit, typeName)
		return nil

	case *ast.ValueReference:
		if x.Resolved {
			return nil
		}
		c := x.Target
		if c == nil {
			var err error
			if c, err = resolver.ResolveValue(ns, x.Name); err != nil {
				return err
			}
			x.Target = c
		}
		if err := e.ResolveConstant(c); err != nil {
			return err
		}
		x.Resolved = true
		x.Type = DeclaredName(c.Type)
		if c.Value != nil {
			v := *c.Value
			x.Value = &v
		}
		return nil

	case *ast.ArrayInitializer:
		for _, el := range x.Elements {
			if err := e.ResolveExpression(ns, el); err != nil {
				return err
			}
		}
		x.Resolved = true
		return nil

	case *ast.MapInitializer:
		for _, en := range x.Entries {
			if err := e.ResolveExpression(ns, en.Key); err != nil {
				return err
			}
			if err := e.ResolveExpression(ns, en.Value); err != nil {
				return err
			}
		}
		x.Resolved = true
		return nil

	case *ast.StructInitializer:
		for _, f := range x.Fields {
			if err := e.ResolveExpression(ns, f.Value); err != nil {
				return err
			}
		}
		x.Resolved = true
		return nil
	}
	return types.Errorf(types.KindUnknownExpressionType, kindName(x),
		"Unknown expression type %s.", kindName(x))
}

func (e *Evaluator) resolveEnumerators(ns *ast.Namespace, owner string, list []*ast.Enumerator) error {
	for _, en := range list {
		if en.Value == nil {
			continue
		}
		if err := e.ResolveExpression(ns, en.Value); err != nil {
			return err
		}
		lit, typeName, ok := ast.Scalar(en.Value)
		if !ok || !lit.IsInteger() {
			if !ok {
				typeName = kindName(en.Value)
			}
			return types.Errorf(types.KindTypeMismatch, en.Name,
				"Cannot assign %s value to enumerator '%s.%s'.", typeName, owner, en.Name)
		}
		e.enumerators++
		if e.TraceEnabled() {
			e.Trace("enumerator folded",
				slog.String("enumerator", owner+"."+en.Name),
				slog.String("value", lit.String()))
		}
	}
	return nil
}

// DeclaredName follows references and typedef chains to the primitive a
// declared type stands for. Other types report their own name.
func DeclaredName(t ast.Type) string {
	for i := 0; i < 64; i++ {
		switch tt := t.(type) {
		case nil:
			return ""
		case *ast.Primitive:
			return tt.Name
		case *ast.Reference:
			if tt.Target == nil {
				return tt.Name
			}
			t = tt.Target
		case *ast.Typedef:
			t = tt.Type
		default:
			return t.TypeName()
		}
	}
	// Typedef cycle; report the name where we stopped.
	return t.TypeName()
}

func kindName(x ast.Expression) string {
	switch x.(type) {
	case *ast.ArrayInitializer:
		return "array initializer"
	case *ast.MapInitializer:
		return "map initializer"
	case *ast.StructInitializer:
		return "struct initializer"
	case *ast.ValueReference:
		return "composite constant"
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("%T", x)
}
