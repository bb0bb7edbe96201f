package ast

import (
	"fmt"
	"slices"
)

// NamespaceKind distinguishes type collections from interfaces.
type NamespaceKind int

const (
	KindTypeCollection NamespaceKind = iota
	KindInterface
)

func (k NamespaceKind) String() string {
	switch k {
	case KindTypeCollection:
		return "typeCollection"
	case KindInterface:
		return "interface"
	default:
		return fmt.Sprintf("NamespaceKind(%d)", int(k))
	}
}

// Version is the optional `version { major M minor N }` block.
type Version struct {
	Major int
	Minor int
}

// Namespace is a type collection or an interface: the unit of symbol
// scoping. Interface-only members (attributes, methods, broadcasts,
// extends) stay empty for type collections.
type Namespace struct {
	Kind    NamespaceKind
	Package *Package
	Name    string
	Version *Version

	// File is the absolute path of the file that declared the namespace.
	// Set by the processor.
	File string

	defs  []Definition
	index map[string]Definition

	Attributes []*Attribute
	Methods    []*Method
	Broadcasts []*Broadcast

	// Extends names the base interface; Base is the resolved target.
	Extends string
	Base    *Namespace

	// Visible lists the namespaces whose unqualified symbols are reachable
	// from this one, in link order. Each namespace appears at most once.
	Visible []*Namespace
}

func newNamespace(pkg *Package, name string, kind NamespaceKind) *Namespace {
	return &Namespace{
		Kind:    kind,
		Package: pkg,
		Name:    name,
		index:   make(map[string]Definition),
	}
}

// IsInterface reports whether ns is an interface.
func (ns *Namespace) IsInterface() bool {
	return ns.Kind == KindInterface
}

// FQN returns "Package.Namespace".
func (ns *Namespace) FQN() string {
	if ns.Package == nil {
		return ns.Name
	}
	return ns.Package.Name + "." + ns.Name
}

// Define adds definitions to ns and sets their owning namespace. Names must
// be unique within the namespace.
func (ns *Namespace) Define(defs ...Definition) error {
	if ns.index == nil {
		ns.index = make(map[string]Definition)
	}
	for _, d := range defs {
		name := d.DefinitionName()
		if _, exists := ns.index[name]; exists {
			return fmt.Errorf("duplicate definition %q in %s", name, ns.FQN())
		}
		d.base().Namespace = ns
		ns.defs = append(ns.defs, d)
		ns.index[name] = d
	}
	return nil
}

// MustDefine is like Define but panics on a duplicate name.
func (ns *Namespace) MustDefine(defs ...Definition) *Namespace {
	if err := ns.Define(defs...); err != nil {
		panic(err)
	}
	return ns
}

// Definitions returns the definitions in declaration order.
func (ns *Namespace) Definitions() []Definition {
	return ns.defs
}

// Lookup returns the definition with the given local name, or nil.
func (ns *Namespace) Lookup(name string) Definition {
	return ns.index[name]
}

// LookupType returns the type definition with the given local name.
func (ns *Namespace) LookupType(name string) (Type, bool) {
	t, ok := ns.index[name].(Type)
	return t, ok
}

// LookupConstant returns the constant with the given local name.
func (ns *Namespace) LookupConstant(name string) (*Constant, bool) {
	c, ok := ns.index[name].(*Constant)
	return c, ok
}

// Typedef returns the named typedef, or nil.
func (ns *Namespace) Typedef(name string) *Typedef {
	d, _ := ns.index[name].(*Typedef)
	return d
}

// Enumeration returns the named enumeration, or nil.
func (ns *Namespace) Enumeration(name string) *Enumeration {
	d, _ := ns.index[name].(*Enumeration)
	return d
}

// Struct returns the named struct, or nil.
func (ns *Namespace) Struct(name string) *Struct {
	d, _ := ns.index[name].(*Struct)
	return d
}

// Union returns the named union, or nil.
func (ns *Namespace) Union(name string) *Union {
	d, _ := ns.index[name].(*Union)
	return d
}

// Array returns the named array, or nil.
func (ns *Namespace) Array(name string) *Array {
	d, _ := ns.index[name].(*Array)
	return d
}

// Map returns the named map, or nil.
func (ns *Namespace) Map(name string) *Map {
	d, _ := ns.index[name].(*Map)
	return d
}

// Constant returns the named constant, or nil.
func (ns *Namespace) Constant(name string) *Constant {
	d, _ := ns.index[name].(*Constant)
	return d
}

// Constants returns the constants in declaration order.
func (ns *Namespace) Constants() []*Constant {
	var out []*Constant
	for _, d := range ns.defs {
		if c, ok := d.(*Constant); ok {
			out = append(out, c)
		}
	}
	return out
}

// Enumerations returns the enumerations in declaration order.
func (ns *Namespace) Enumerations() []*Enumeration {
	var out []*Enumeration
	for _, d := range ns.defs {
		if e, ok := d.(*Enumeration); ok {
			out = append(out, e)
		}
	}
	return out
}

// AddVisible appends other to the visible namespaces unless it is ns itself
// or already present.
func (ns *Namespace) AddVisible(other *Namespace) {
	if other == ns || slices.Contains(ns.Visible, other) {
		return
	}
	ns.Visible = append(ns.Visible, other)
}

// AddAttribute appends an attribute to an interface.
func (ns *Namespace) AddAttribute(name string, typ Type) *Attribute {
	a := &Attribute{Name: name, Namespace: ns, Type: typ}
	ns.Attributes = append(ns.Attributes, a)
	return a
}

// AddMethod appends a method to an interface.
func (ns *Namespace) AddMethod(name string) *Method {
	m := &Method{Name: name, Namespace: ns}
	ns.Methods = append(ns.Methods, m)
	return m
}

// AddBroadcast appends a broadcast to an interface.
func (ns *Namespace) AddBroadcast(name string) *Broadcast {
	b := &Broadcast{Name: name, Namespace: ns}
	ns.Broadcasts = append(ns.Broadcasts, b)
	return b
}

// Attribute returns the named attribute, or nil.
func (ns *Namespace) Attribute(name string) *Attribute {
	for _, a := range ns.Attributes {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Method returns the named method, or nil.
func (ns *Namespace) Method(name string) *Method {
	for _, m := range ns.Methods {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Broadcast returns the named broadcast, or nil.
func (ns *Namespace) Broadcast(name string) *Broadcast {
	for _, b := range ns.Broadcasts {
		if b.Name == name {
			return b
		}
	}
	return nil
}
