package resolver

import (
	"log/slog"

	"github.com/gofidl/gofidl/ast"
	"github.com/gofidl/gofidl/internal/types"
)

// Resolver binds the type references of namespaces whose visibility has
// already been linked.
type Resolver struct {
	types.Logger
	bound int
}

// New returns a resolver. If logger is nil, logging is disabled.
func New(logger *slog.Logger) *Resolver {
	return &Resolver{Logger: types.NewLogger(logger, "resolver")}
}

// Bound returns the number of references and extends targets bound so far.
func (r *Resolver) Bound() int {
	return r.bound
}

// ResolveTypes binds every type reference reachable from the definitions
// of ns and, for interfaces, from its attributes, methods, broadcasts and
// extends clause. Already bound references are skipped.
func (r *Resolver) ResolveTypes(ns *ast.Namespace) error {
	for _, def := range ns.Definitions() {
		switch d := def.(type) {
		case *ast.Constant:
			if d.Type != nil {
				if err := r.resolveType(ns, d.Type); err != nil {
					return err
				}
			}
		case ast.Type:
			if err := r.resolveType(ns, d); err != nil {
				return err
			}
		}
	}
	if !ns.IsInterface() {
		return nil
	}

	for _, a := range ns.Attributes {
		if err := r.resolveType(ns, a.Type); err != nil {
			return err
		}
	}
	for _, m := range ns.Methods {
		if err := r.resolveMethod(ns, m); err != nil {
			return err
		}
	}
	for _, b := range ns.Broadcasts {
		if err := r.resolveArgs(ns, b.Out); err != nil {
			return err
		}
	}

	if ns.Extends != "" && ns.Base == nil {
		target, err := ResolveNamespace(ns.Package, ns.Extends)
		if err != nil {
			return err
		}
		if !target.IsInterface() {
			return types.Errorf(types.KindInvalidInterfaceReference, ns.Extends,
				"Invalid interface reference '%s'.", ns.Extends)
		}
		ns.Base = target
		r.bind(ns, ns.Extends, target.FQN())
	}
	return nil
}

func (r *Resolver) resolveMethod(ns *ast.Namespace, m *ast.Method) error {
	if err := r.resolveArgs(ns, m.In); err != nil {
		return err
	}
	if err := r.resolveArgs(ns, m.Out); err != nil {
		return err
	}
	// Inline error enumerators need no binding.
	if m.Error == nil {
		return nil
	}
	if err := r.resolveType(ns, m.Error); err != nil {
		return err
	}
	if _, ok := m.Error.Target.(*ast.Enumeration); !ok {
		return types.Errorf(types.KindInvalidErrorReference, m.Error.Name,
			"Invalid error reference '%s'.", m.Error.Name)
	}
	return nil
}

func (r *Resolver) resolveArgs(ns *ast.Namespace, args []*ast.Argument) error {
	for _, arg := range args {
		if err := r.resolveType(ns, arg.Type); err != nil {
			return err
		}
	}
	return nil
}

// resolveType walks t in the fixed order of its shape. ctx is the
// namespace the type appears in; named definitions resolve from their own
// namespace.
func (r *Resolver) resolveType(ctx *ast.Namespace, t ast.Type) error {
	switch t := t.(type) {
	case nil, *ast.Primitive:
		return nil

	case *ast.Reference:
		if t.Target != nil {
			return nil
		}
		target, err := Resolve(ctx, t.Name)
		if err != nil {
			return err
		}
		written := t.Name
		t.Target = target
		if d, ok := target.(ast.Definition); ok {
			t.Namespace = d.DefinitionNamespace()
		}
		t.Name = Basename(t.Name)
		r.bind(ctx, written, t.Name)
		return nil

	case *ast.Typedef:
		return r.resolveType(scope(ctx, t.Namespace), t.Type)

	case *ast.Enumeration:
		if t.Extends == "" || t.Base != nil {
			return nil
		}
		home := scope(ctx, t.Namespace)
		target, err := Resolve(home, t.Extends)
		if err != nil {
			return err
		}
		base, ok := target.(*ast.Enumeration)
		if !ok {
			return types.Errorf(types.KindInvalidEnumerationReference, t.Extends,
				"Invalid enumeration reference '%s'.", t.Extends)
		}
		t.Base = base
		r.bind(home, t.Extends, base.Name)
		return nil

	case *ast.Struct:
		home := scope(ctx, t.Namespace)
		if err := r.resolveFields(home, t.Fields); err != nil {
			return err
		}
		if t.Extends == "" || t.Base != nil {
			return nil
		}
		target, err := Resolve(home, t.Extends)
		if err != nil {
			return err
		}
		base, ok := target.(*ast.Struct)
		if !ok {
			return types.Errorf(types.KindInvalidStructReference, t.Extends,
				"Invalid struct reference '%s'.", t.Extends)
		}
		t.Base = base
		r.bind(home, t.Extends, base.Name)
		return nil

	case *ast.Union:
		home := scope(ctx, t.Namespace)
		if err := r.resolveFields(home, t.Fields); err != nil {
			return err
		}
		if t.Extends == "" || t.Base != nil {
			return nil
		}
		target, err := Resolve(home, t.Extends)
		if err != nil {
			return err
		}
		base, ok := target.(*ast.Union)
		if !ok {
			return types.Errorf(types.KindInvalidUnionReference, t.Extends,
				"Invalid union reference '%s'.", t.Extends)
		}
		t.Base = base
		r.bind(home, t.Extends, base.Name)
		return nil

	case *ast.Array:
		return r.resolveType(scope(ctx, t.Namespace), t.Element)

	case *ast.Map:
		home := scope(ctx, t.Namespace)
		if err := r.resolveType(home, t.Key); err != nil {
			return err
		}
		return r.resolveType(home, t.Value)
	}
	return nil
}

func (r *Resolver) resolveFields(ns *ast.Namespace, fields []*ast.Field) error {
	for _, f := range fields {
		if err := r.resolveType(ns, f.Type); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) bind(ns *ast.Namespace, written, target string) {
	r.bound++
	if r.TraceEnabled() {
		r.Trace("reference bound",
			slog.String("namespace", ns.FQN()),
			slog.String("name", written),
			slog.String("target", target))
	}
}

// scope prefers the namespace a definition belongs to. Implicit arrays
// have none and resolve where they appear.
func scope(ctx, own *ast.Namespace) *ast.Namespace {
	if own != nil {
		return own
	}
	return ctx
}
