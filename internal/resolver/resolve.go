// Package resolver binds Franca names to their definitions.
//
// Resolution follows the visibility rules of the language: a namespace sees
// its own definitions, every other namespace of its package file, and the
// namespaces exposed by its package's imports. Visibility is not
// transitive. A name matching in more than one visible place is ambiguous,
// and the local definition takes part in that count.
//
// # Usage
//
//	r := resolver.New(logger)
//	if err := r.ResolveTypes(ns); err != nil { ... }
//	typ, err := resolver.Resolve(ns, "P.TC.MyStruct")
package resolver

import (
	"fmt"

	"github.com/gofidl/gofidl/ast"
	"github.com/gofidl/gofidl/internal/types"
)

// Resolve returns the type definition that fqn names from the point of
// view of ns. fqn may be a bare identifier, "NS.Name" or "Pkg.NS.Name".
func Resolve(ns *ast.Namespace, fqn string) (ast.Type, error) {
	if ns == nil {
		return nil, fmt.Errorf("resolve %q: nil namespace", fqn)
	}
	t, count := lookup(ns, fqn, (*ast.Namespace).LookupType)
	switch {
	case count == 1:
		return t, nil
	case count > 1:
		return nil, ambiguous(fqn)
	}
	// A constant in a type position is a model error of its own.
	if _, n := lookup(ns, fqn, (*ast.Namespace).LookupConstant); n == 1 {
		return nil, types.Errorf(types.KindInvalidTypeReference, fqn,
			"Invalid type reference '%s'.", fqn)
	}
	return nil, unresolved(fqn)
}

// ResolveValue returns the constant that fqn names from the point of view
// of ns.
func ResolveValue(ns *ast.Namespace, fqn string) (*ast.Constant, error) {
	if ns == nil {
		return nil, fmt.Errorf("resolve value %q: nil namespace", fqn)
	}
	c, count := lookup(ns, fqn, (*ast.Namespace).LookupConstant)
	switch {
	case count == 1:
		return c, nil
	case count > 1:
		return nil, ambiguous(fqn)
	}
	return nil, unresolved(fqn)
}

// ResolveNamespace returns the namespace that fqn names from the point of
// view of pkg. A bare name is searched in pkg and then in its model
// imports; a qualified name only where the package name matches.
func ResolveNamespace(pkg *ast.Package, fqn string) (*ast.Namespace, error) {
	if pkg == nil {
		return nil, fmt.Errorf("resolve namespace %q: nil package", fqn)
	}
	qualifier, name := PackageName(fqn), Basename(fqn)

	if qualifier == "" || qualifier == pkg.Name {
		if ns := pkg.Namespace(name); ns != nil {
			return ns, nil
		}
	}
	if qualifier != pkg.Name {
		for _, imp := range pkg.Imports {
			if !imp.IsModelImport() || imp.Package == nil {
				continue
			}
			if qualifier != "" && imp.Package.Name != qualifier {
				continue
			}
			for _, ns := range imp.Namespaces() {
				if ns.Name == name {
					return ns, nil
				}
			}
		}
	}
	return nil, types.Errorf(types.KindUnresolvedNamespaceReference, fqn,
		"Unresolved namespace reference '%s'.", fqn)
}

// lookup counts the bindings of fqn visible from ns and returns the last
// one found. The local namespace is consulted first when fqn, qualified
// from ns itself, equals the input.
func lookup[T any](ns *ast.Namespace, fqn string, find func(*ast.Namespace, string) (T, bool)) (T, int) {
	pkg, nsName, name := SplitFQN(fqn)

	var (
		result T
		count  int
	)

	local := name
	if nsName != "" {
		local = ns.Name + "." + local
	}
	if pkg != "" && ns.Package != nil {
		local = ns.Package.Name + "." + local
	}
	if local == fqn {
		if v, ok := find(ns, name); ok {
			result = v
			count++
		}
	}

	for _, ref := range ns.Visible {
		if pkg != "" && (ref.Package == nil || ref.Package.Name != pkg) {
			continue
		}
		if nsName != "" && ref.Name != nsName {
			continue
		}
		if v, ok := find(ref, name); ok {
			result = v
			count++
		}
	}
	return result, count
}

func unresolved(fqn string) error {
	return types.Errorf(types.KindUnresolvedReference, fqn,
		"Unresolved reference '%s'.", fqn)
}

func ambiguous(fqn string) error {
	return types.Errorf(types.KindAmbiguousReference, fqn,
		"Reference '%s' is ambiguous.", fqn)
}
