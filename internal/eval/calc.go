package eval

import (
	"math/big"

	"github.com/gofidl/gofidl/ast"
	"github.com/gofidl/gofidl/internal/printer"
	"github.com/gofidl/gofidl/internal/types"
)

// Calc evaluates a binary term whose operands are already folded and
// stores the result on the term. Integer arithmetic is exact and "/" on
// two integers truncates toward zero; a real operand makes the operation
// real.
func Calc(t *ast.Term) error {
	l, lt, lok := ast.Scalar(t.Left)
	r, rt, rok := ast.Scalar(t.Right)
	if !lok || !rok {
		if !lok {
			lt = kindName(t.Left)
		}
		if !rok {
			rt = kindName(t.Right)
		}
		return invalidOperand(t.Operator, lt, rt)
	}

	var (
		res ast.Literal
		err error
	)
	switch t.Operator {
	case "+", "-", "*", "/":
		res, err = arithmetic(t, l, r, lt, rt)
	case "==", "!=":
		res, err = equality(t.Operator, l, r, lt, rt)
	case "<", ">", "<=", ">=":
		res, err = ordering(t.Operator, l, r, lt, rt)
	case "&&", "||":
		if !l.IsBoolean() || !r.IsBoolean() {
			return invalidOperand(t.Operator, lt, rt)
		}
		if t.Operator == "&&" {
			res = ast.BoolLiteral(l.Bool && r.Bool)
		} else {
			res = ast.BoolLiteral(l.Bool || r.Bool)
		}
	default:
		return types.Errorf(types.KindUnknownOperator, t.Operator,
			"Unknown operator '%s'.", t.Operator)
	}
	if err != nil {
		return err
	}
	t.SetResult(res, res.TypeName())
	return nil
}

func arithmetic(t *ast.Term, l, r ast.Literal, lt, rt string) (ast.Literal, error) {
	op := t.Operator
	if op == "+" && l.IsString() && r.IsString() {
		return ast.StringLiteral(l.Str + r.Str), nil
	}
	if !l.IsNumeric() || !r.IsNumeric() {
		return ast.Literal{}, invalidOperand(op, lt, rt)
	}

	if l.IsInteger() && r.IsInteger() {
		z := new(big.Int)
		switch op {
		case "+":
			z.Add(l.Int, r.Int)
		case "-":
			z.Sub(l.Int, r.Int)
		case "*":
			z.Mul(l.Int, r.Int)
		case "/":
			if r.Int.Sign() == 0 {
				return ast.Literal{}, divisionByZero(t)
			}
			z.Quo(l.Int, r.Int)
		}
		return ast.Literal{Kind: ast.KindInteger, Int: z}, nil
	}

	a, b := l.Float64(), r.Float64()
	var f float64
	switch op {
	case "+":
		f = a + b
	case "-":
		f = a - b
	case "*":
		f = a * b
	case "/":
		if b == 0 {
			return ast.Literal{}, divisionByZero(t)
		}
		f = a / b
	}
	return ast.RealLiteral(f), nil
}

func equality(op string, l, r ast.Literal, lt, rt string) (ast.Literal, error) {
	var eq bool
	switch {
	case l.IsNumeric() && r.IsNumeric():
		eq = compareNumeric(l, r) == 0
	case l.Kind == r.Kind:
		eq = l.Equal(r)
	default:
		return ast.Literal{}, invalidOperand(op, lt, rt)
	}
	if op == "!=" {
		eq = !eq
	}
	return ast.BoolLiteral(eq), nil
}

func ordering(op string, l, r ast.Literal, lt, rt string) (ast.Literal, error) {
	var c int
	switch {
	case l.IsNumeric() && r.IsNumeric():
		c = compareNumeric(l, r)
	case l.IsString() && r.IsString():
		switch {
		case l.Str < r.Str:
			c = -1
		case l.Str > r.Str:
			c = 1
		}
	default:
		return ast.Literal{}, invalidOperand(op, lt, rt)
	}

	var v bool
	switch op {
	case "<":
		v = c < 0
	case ">":
		v = c > 0
	case "<=":
		v = c <= 0
	case ">=":
		v = c >= 0
	}
	return ast.BoolLiteral(v), nil
}

func compareNumeric(l, r ast.Literal) int {
	if l.IsInteger() && r.IsInteger() {
		return l.Int.Cmp(r.Int)
	}
	a, b := l.Float64(), r.Float64()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func invalidOperand(op, lt, rt string) error {
	return types.Errorf(types.KindInvalidOperand, op,
		"Unsupported operand types for '%s': %s and %s.", op, lt, rt)
}

func divisionByZero(t *ast.Term) error {
	expr := printer.Expression(t)
	return types.Errorf(types.KindDivisionByZero, expr,
		"Division by zero in '%s'.", expr)
}

// CheckAssignment reports whether a folded literal of type valueType may
// initialize constant name declared as declared. Integer targets require
// an integer within the range of the bit width; real targets require a
// real within the normal range of the precision (or exactly zero); String
// and Boolean targets require the same type. Any other target rejects
// scalars.
func CheckAssignment(name, declared string, lit ast.Literal, valueType string) error {
	mismatch := func() error {
		return types.Errorf(types.KindTypeMismatch, name,
			"Cannot assign %s value to constant '%s' of type '%s'.", valueType, name, declared)
	}
	overflow := func() error {
		return types.Errorf(types.KindOverflow, name,
			"Value %s out of range for constant '%s' of type '%s'.", lit.String(), name, declared)
	}

	switch {
	case ast.IsIntegerType(declared):
		if !ast.IsIntegerType(valueType) || !lit.IsInteger() {
			return mismatch()
		}
		lo, hi, _ := ast.IntegerRange(declared)
		if lit.Int.Cmp(lo) < 0 || lit.Int.Cmp(hi) > 0 {
			return overflow()
		}
		return nil

	case ast.IsRealType(declared):
		if !lit.IsReal() {
			return mismatch()
		}
		if !ast.InRealRange(declared, lit.Real) {
			return overflow()
		}
		return nil

	case declared == ast.TypeString, declared == ast.TypeBoolean:
		if valueType != declared {
			return mismatch()
		}
		return nil
	}
	return mismatch()
}
