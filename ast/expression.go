package ast

import "math/big"

// Expression is a constant expression tree node. The set of
// implementations is closed: Value, Term, ParentExpression,
// ValueReference, ArrayInitializer, MapInitializer and StructInitializer.
type Expression interface {
	isExpression()
}

// Result is the folded state of a scalar-producing node. Once Resolved is
// set, Value and Type hold the reduced literal and its Franca type name,
// which makes the node indistinguishable from a Value to later consumers.
type Result struct {
	Resolved bool
	Type     string
	Value    *Literal
}

// SetResult stores a folded literal.
func (r *Result) SetResult(lit Literal, typeName string) {
	r.Value = &lit
	r.Type = typeName
	r.Resolved = true
}

// Value is a literal leaf tagged with its Franca type name.
type Value struct {
	Type    string
	Literal Literal
}

func (*Value) isExpression() {}

// Term is a binary operation.
type Term struct {
	Operator string
	Left     Expression
	Right    Expression
	Result
}

func (*Term) isExpression() {}

// ParentExpression is an explicit parenthesization. It is transparent for
// evaluation and kept for printing.
type ParentExpression struct {
	Inner Expression
	Result
}

func (*ParentExpression) isExpression() {}

// ValueReference names a constant. Target is bound during evaluation.
type ValueReference struct {
	Name   string
	Target *Constant
	Result
}

func (*ValueReference) isExpression() {}

// ArrayInitializer is `[ e, e, ... ]`.
type ArrayInitializer struct {
	Elements []Expression
	Resolved bool
}

func (*ArrayInitializer) isExpression() {}

// MapEntry is one `key => value` pair of a map initializer.
type MapEntry struct {
	Key   Expression
	Value Expression
}

// MapInitializer is `[ k => v, ... ]`.
type MapInitializer struct {
	Entries  []*MapEntry
	Resolved bool
}

func (*MapInitializer) isExpression() {}

// FieldInitializer is one `name: value` element of a struct initializer.
type FieldInitializer struct {
	Name  string
	Value Expression
}

// StructInitializer is `{ field: v, ... }` in initializer order.
type StructInitializer struct {
	Fields   []*FieldInitializer
	Resolved bool
}

func (*StructInitializer) isExpression() {}

// Scalar returns the literal an expression reduces to and its type name.
// ok is false for initializers and for nodes not yet folded.
func Scalar(e Expression) (lit Literal, typeName string, ok bool) {
	var r *Result
	switch e := e.(type) {
	case *Value:
		return e.Literal, e.Type, true
	case *Term:
		r = &e.Result
	case *ParentExpression:
		r = &e.Result
	case *ValueReference:
		r = &e.Result
	default:
		return Literal{}, "", false
	}
	if !r.Resolved || r.Value == nil {
		return Literal{}, "", false
	}
	return *r.Value, r.Type, true
}

// NewValue returns a literal leaf with an explicit type name.
func NewValue(typeName string, lit Literal) *Value {
	return &Value{Type: typeName, Literal: lit}
}

// Int returns an integer literal tagged with its narrowest signed type.
func Int(v int64) *Value {
	lit := IntLiteral(v)
	return &Value{Type: lit.TypeName(), Literal: lit}
}

// BigInt is Int for values beyond int64.
func BigInt(v *big.Int) *Value {
	lit := BigLiteral(v)
	return &Value{Type: lit.TypeName(), Literal: lit}
}

// Real returns a real literal tagged Float or Double by magnitude.
func Real(f float64) *Value {
	lit := RealLiteral(f)
	return &Value{Type: lit.TypeName(), Literal: lit}
}

// Bool returns a Boolean literal.
func Bool(b bool) *Value {
	return &Value{Type: TypeBoolean, Literal: BoolLiteral(b)}
}

// Str returns a String literal.
func Str(s string) *Value {
	return &Value{Type: TypeString, Literal: StringLiteral(s)}
}

// NewTerm returns `left op right`.
func NewTerm(op string, left, right Expression) *Term {
	return &Term{Operator: op, Left: left, Right: right}
}

// Paren returns `( inner )`.
func Paren(inner Expression) *ParentExpression {
	return &ParentExpression{Inner: inner}
}

// ValueRef returns an unresolved reference to the named constant.
func ValueRef(name string) *ValueReference {
	return &ValueReference{Name: name}
}

// ArrayInit returns an array initializer.
func ArrayInit(elements ...Expression) *ArrayInitializer {
	return &ArrayInitializer{Elements: elements}
}

// Entry returns a map initializer entry.
func Entry(key, value Expression) *MapEntry {
	return &MapEntry{Key: key, Value: value}
}

// MapInit returns a map initializer.
func MapInit(entries ...*MapEntry) *MapInitializer {
	return &MapInitializer{Entries: entries}
}

// FieldInit returns a struct initializer element.
func FieldInit(name string, value Expression) *FieldInitializer {
	return &FieldInitializer{Name: name, Value: value}
}

// StructInit returns a struct initializer.
func StructInit(fields ...*FieldInitializer) *StructInitializer {
	return &StructInitializer{Fields: fields}
}
