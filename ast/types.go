package ast

// Definition is a named member of a namespace: a type definition or a
// constant. Use type switches to dispatch on concrete types.
type Definition interface {
	DefinitionName() string
	DefinitionNamespace() *Namespace
	base() *DefBase
}

// DefBase provides the fields common to every Definition.
type DefBase struct {
	Name      string
	Namespace *Namespace
}

func (d *DefBase) DefinitionName() string          { return d.Name }
func (d *DefBase) DefinitionNamespace() *Namespace { return d.Namespace }
func (d *DefBase) base() *DefBase                  { return d }

// Type is a Franca type in any type position. The set of implementations
// is closed: Primitive, Reference, Typedef, Enumeration, Struct, Union,
// Array and Map.
type Type interface {
	TypeName() string
	isType()
}

// Primitive is a built-in type such as UInt32 or String.
type Primitive struct {
	Name string
}

// NewPrimitive returns the primitive type with the given name.
func NewPrimitive(name string) *Primitive { return &Primitive{Name: name} }

func (p *Primitive) TypeName() string { return p.Name }
func (*Primitive) isType()            {}

// Reference is a named type reference. Until resolved, Name holds the name
// as written (ID or FQN). Resolution binds Target, sets Namespace to the
// namespace owning the target and trims Name to the bare local name.
type Reference struct {
	Name      string
	Namespace *Namespace
	Target    Type
}

// Ref returns an unresolved reference to name.
func Ref(name string) *Reference { return &Reference{Name: name} }

func (r *Reference) TypeName() string { return r.Name }
func (*Reference) isType()            {}

// Resolved reports whether the reference has been bound.
func (r *Reference) Resolved() bool { return r.Target != nil }

// Typedef aliases another type.
type Typedef struct {
	DefBase
	Type Type
}

// NewTypedef returns `typedef name is typ`.
func NewTypedef(name string, typ Type) *Typedef {
	return &Typedef{DefBase: DefBase{Name: name}, Type: typ}
}

func (t *Typedef) TypeName() string { return t.Name }
func (*Typedef) isType()            {}

// Enumerator is one enumeration member with an optional value expression.
type Enumerator struct {
	Name  string
	Value Expression
}

// Enumeration is a named set of enumerators, optionally extending another
// enumeration.
type Enumeration struct {
	DefBase
	Enumerators []*Enumerator
	Extends     string
	Base        *Enumeration
}

// NewEnumeration returns an enumeration with value-less enumerators.
func NewEnumeration(name string, enumerators ...string) *Enumeration {
	e := &Enumeration{DefBase: DefBase{Name: name}}
	for _, n := range enumerators {
		e.Enumerators = append(e.Enumerators, &Enumerator{Name: n})
	}
	return e
}

func (e *Enumeration) TypeName() string { return e.Name }
func (*Enumeration) isType()            {}

// Enumerator returns the named enumerator, or nil.
func (e *Enumeration) Enumerator(name string) *Enumerator {
	return findEnumerator(e.Enumerators, name)
}

// Field is a struct or union member.
type Field struct {
	Name string
	Type Type
}

// Struct is a record type, optionally extending another struct.
type Struct struct {
	DefBase
	Fields      []*Field
	Extends     string
	Base        *Struct
	Polymorphic bool
}

// NewStruct returns a struct with the given fields.
func NewStruct(name string, fields ...*Field) *Struct {
	return &Struct{DefBase: DefBase{Name: name}, Fields: fields}
}

func (s *Struct) TypeName() string { return s.Name }
func (*Struct) isType()            {}

// Field returns the named field, or nil.
func (s *Struct) Field(name string) *Field { return findField(s.Fields, name) }

// Union is a variant type, optionally extending another union.
type Union struct {
	DefBase
	Fields  []*Field
	Extends string
	Base    *Union
}

// NewUnion returns a union with the given fields.
func NewUnion(name string, fields ...*Field) *Union {
	return &Union{DefBase: DefBase{Name: name}, Fields: fields}
}

func (u *Union) TypeName() string { return u.Name }
func (*Union) isType()            {}

// Field returns the named field, or nil.
func (u *Union) Field(name string) *Field { return findField(u.Fields, name) }

// Array is a named array (`array A of T`) or an implicit one (`T[]`), in
// which case Name is empty and Namespace may be nil.
type Array struct {
	DefBase
	Element Type
}

// NewArray returns `array name of element`.
func NewArray(name string, element Type) *Array {
	return &Array{DefBase: DefBase{Name: name}, Element: element}
}

// ArrayOf returns the implicit array type `element[]`.
func ArrayOf(element Type) *Array { return &Array{Element: element} }

func (a *Array) TypeName() string {
	if a.Name == "" && a.Element != nil {
		return a.Element.TypeName() + "[]"
	}
	return a.Name
}
func (*Array) isType() {}

// Map is `map M { K to V }`.
type Map struct {
	DefBase
	Key   Type
	Value Type
}

// NewMap returns `map name { key to value }`.
func NewMap(name string, key, value Type) *Map {
	return &Map{DefBase: DefBase{Name: name}, Key: key, Value: value}
}

func (m *Map) TypeName() string { return m.Name }
func (*Map) isType()            {}

// Constant is `const T name = expr`. Type is nil when undeclared and is
// inferred during evaluation. Value holds the folded scalar and stays nil
// for struct, array and map initializers, whose data lives in Expression.
type Constant struct {
	DefBase
	Type       Type
	Expression Expression
	Resolved   bool
	Value      *Literal
}

// NewConstant returns `const typ name = expr`; typ may be nil.
func NewConstant(name string, typ Type, expr Expression) *Constant {
	return &Constant{DefBase: DefBase{Name: name}, Type: typ, Expression: expr}
}

// Argument is a method or broadcast argument.
type Argument struct {
	Name string
	Type Type
}

// Attribute is an interface attribute.
type Attribute struct {
	Name            string
	Namespace       *Namespace
	Type            Type
	ReadOnly        bool
	NoSubscriptions bool
}

// Method is an interface method. The error clause is either a reference to
// an enumeration (Error) or an inline enumerator block (ErrorEnumerators);
// at most one is set.
type Method struct {
	Name             string
	Namespace        *Namespace
	In               []*Argument
	Out              []*Argument
	Error            *Reference
	ErrorEnumerators []*Enumerator
	FireAndForget    bool
}

// InArg returns the named in-argument, or nil.
func (m *Method) InArg(name string) *Argument { return findArgument(m.In, name) }

// OutArg returns the named out-argument, or nil.
func (m *Method) OutArg(name string) *Argument { return findArgument(m.Out, name) }

// Broadcast is an interface broadcast.
type Broadcast struct {
	Name      string
	Namespace *Namespace
	Out       []*Argument
	Selective bool
}

// OutArg returns the named out-argument, or nil.
func (b *Broadcast) OutArg(name string) *Argument { return findArgument(b.Out, name) }

func findField(fields []*Field, name string) *Field {
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func findArgument(args []*Argument, name string) *Argument {
	for _, a := range args {
		if a.Name == name {
			return a
		}
	}
	return nil
}

func findEnumerator(list []*Enumerator, name string) *Enumerator {
	for _, e := range list {
		if e.Name == name {
			return e
		}
	}
	return nil
}
