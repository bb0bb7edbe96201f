package ast

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Primitive type names.
const (
	TypeInt8       = "Int8"
	TypeInt16      = "Int16"
	TypeInt32      = "Int32"
	TypeInt64      = "Int64"
	TypeUInt8      = "UInt8"
	TypeUInt16     = "UInt16"
	TypeUInt32     = "UInt32"
	TypeUInt64     = "UInt64"
	TypeFloat      = "Float"
	TypeDouble     = "Double"
	TypeBoolean    = "Boolean"
	TypeString     = "String"
	TypeByteBuffer = "ByteBuffer"
)

var integerBits = map[string]struct {
	bits   uint
	signed bool
}{
	TypeInt8:   {8, true},
	TypeInt16:  {16, true},
	TypeInt32:  {32, true},
	TypeInt64:  {64, true},
	TypeUInt8:  {8, false},
	TypeUInt16: {16, false},
	TypeUInt32: {32, false},
	TypeUInt64: {64, false},
}

// IsIntegerType reports whether name is one of the eight integer types.
func IsIntegerType(name string) bool {
	_, ok := integerBits[name]
	return ok
}

// IsRealType reports whether name is Float or Double.
func IsRealType(name string) bool {
	return name == TypeFloat || name == TypeDouble
}

// IsPrimitiveType reports whether name is a built-in type name.
func IsPrimitiveType(name string) bool {
	switch name {
	case TypeBoolean, TypeString, TypeByteBuffer:
		return true
	}
	return IsIntegerType(name) || IsRealType(name)
}

// IntegerRange returns the inclusive bounds of an integer type:
// [-2^(n-1), 2^(n-1)-1] for Int{n} and [0, 2^n-1] for UInt{n}.
func IntegerRange(name string) (lo, hi *big.Int, ok bool) {
	info, ok := integerBits[name]
	if !ok {
		return nil, nil, false
	}
	one := big.NewInt(1)
	if info.signed {
		hi = new(big.Int).Lsh(one, info.bits-1)
		lo = new(big.Int).Neg(hi)
		hi.Sub(hi, one)
		return lo, hi, true
	}
	hi = new(big.Int).Lsh(one, info.bits)
	hi.Sub(hi, one)
	return new(big.Int), hi, true
}

// IntegerTypeName returns the narrowest signed type holding v. Values past
// the Int64 range are tagged UInt64 (positive) or Int64 (negative) so they
// stay integer-class and fail range checks rather than type checks.
func IntegerTypeName(v *big.Int) string {
	for _, name := range []string{TypeInt8, TypeInt16, TypeInt32, TypeInt64} {
		lo, hi, _ := IntegerRange(name)
		if v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0 {
			return name
		}
	}
	if v.Sign() > 0 {
		return TypeUInt64
	}
	return TypeInt64
}

// IEEE-754 normal ranges.
var (
	minFloatNormal  = math.Ldexp(1, -126)
	maxFloat        = math.MaxFloat32 // (2 - 2^-23) * 2^127
	minDoubleNormal = math.Ldexp(1, -1022)
	maxDouble       = math.MaxFloat64
)

// RealTypeName classifies f as Float when its magnitude lies in the
// single-precision normal range, else Double.
func RealTypeName(f float64) string {
	a := math.Abs(f)
	if a >= minFloatNormal && a <= maxFloat {
		return TypeFloat
	}
	return TypeDouble
}

// InRealRange reports whether f fits the normal range of the real type
// name. Exact zero fits both.
func InRealRange(name string, f float64) bool {
	if f == 0 {
		return true
	}
	a := math.Abs(f)
	switch name {
	case TypeFloat:
		return a >= minFloatNormal && a <= maxFloat
	case TypeDouble:
		return a >= minDoubleNormal && a <= maxDouble
	}
	return false
}

// LiteralKind is the native class of a literal.
type LiteralKind int

const (
	KindInteger LiteralKind = iota + 1
	KindReal
	KindBoolean
	KindString
)

func (k LiteralKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("LiteralKind(%d)", int(k))
	}
}

// Literal is a native scalar value. Integers are arbitrary precision.
type Literal struct {
	Kind LiteralKind
	Int  *big.Int
	Real float64
	Bool bool
	Str  string
}

// IntLiteral returns an integer literal.
func IntLiteral(v int64) Literal { return Literal{Kind: KindInteger, Int: big.NewInt(v)} }

// BigLiteral returns an integer literal holding a copy of v.
func BigLiteral(v *big.Int) Literal {
	return Literal{Kind: KindInteger, Int: new(big.Int).Set(v)}
}

// RealLiteral returns a floating-point literal.
func RealLiteral(f float64) Literal { return Literal{Kind: KindReal, Real: f} }

// BoolLiteral returns a boolean literal.
func BoolLiteral(b bool) Literal { return Literal{Kind: KindBoolean, Bool: b} }

// StringLiteral returns a string literal.
func StringLiteral(s string) Literal { return Literal{Kind: KindString, Str: s} }

func (l Literal) IsInteger() bool { return l.Kind == KindInteger }
func (l Literal) IsReal() bool    { return l.Kind == KindReal }
func (l Literal) IsNumeric() bool { return l.Kind == KindInteger || l.Kind == KindReal }
func (l Literal) IsBoolean() bool { return l.Kind == KindBoolean }
func (l Literal) IsString() bool  { return l.Kind == KindString }

// Float64 returns the numeric value as a float64.
func (l Literal) Float64() float64 {
	if l.Kind == KindInteger {
		f, _ := new(big.Float).SetInt(l.Int).Float64()
		return f
	}
	return l.Real
}

// TypeName returns the Franca type a literal of this value is tagged with.
func (l Literal) TypeName() string {
	switch l.Kind {
	case KindInteger:
		return IntegerTypeName(l.Int)
	case KindReal:
		return RealTypeName(l.Real)
	case KindBoolean:
		return TypeBoolean
	case KindString:
		return TypeString
	}
	return ""
}

// Equal reports whether two literals have the same kind and value.
func (l Literal) Equal(o Literal) bool {
	if l.Kind != o.Kind {
		return false
	}
	switch l.Kind {
	case KindInteger:
		return l.Int.Cmp(o.Int) == 0
	case KindReal:
		return l.Real == o.Real
	case KindBoolean:
		return l.Bool == o.Bool
	case KindString:
		return l.Str == o.Str
	}
	return true
}

// String renders the value in its native form. Strings are not quoted.
func (l Literal) String() string {
	switch l.Kind {
	case KindInteger:
		return l.Int.String()
	case KindReal:
		return formatReal(l.Real)
	case KindBoolean:
		return strconv.FormatBool(l.Bool)
	case KindString:
		return l.Str
	}
	return ""
}

func formatReal(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	a := math.Abs(f)
	if a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
