package resolver

import (
	"log/slog"
	"strings"

	"github.com/gofidl/gofidl/ast"
	"github.com/gofidl/gofidl/internal/types"
)

// LinkPackage makes every namespace of pkg visible to every other one.
// Type collections list the other type collections and then the
// interfaces; interfaces list the other interfaces and then the type
// collections. It returns the number of edges added.
func (r *Resolver) LinkPackage(pkg *ast.Package) int {
	added := 0
	link := func(from *ast.Namespace, groups ...[]*ast.Namespace) {
		for _, group := range groups {
			for _, to := range group {
				added += r.link(from, to)
			}
		}
	}
	for _, ns := range pkg.TypeCollections {
		link(ns, pkg.TypeCollections, pkg.Interfaces)
	}
	for _, ns := range pkg.Interfaces {
		link(ns, pkg.Interfaces, pkg.TypeCollections)
	}
	return added
}

// LinkImport exposes the namespaces of an already loaded import to every
// namespace of pkg. A model import exposes every namespace of the imported
// file; a namespace import ("P.NS.*") exposes the one it names, and
// "P.*" exposes every namespace of package P in that file.
func (r *Resolver) LinkImport(pkg *ast.Package, imp *ast.Import) error {
	exposed := imp.Namespaces()

	if imp.IsModelImport() {
		for _, target := range exposed {
			r.expose(pkg, target)
		}
		return nil
	}

	fqn, ok := strings.CutSuffix(imp.Namespace, ".*")
	if !ok {
		return types.Errorf(types.KindInvalidNamespaceImport, imp.Namespace,
			"Invalid namespace import %s.", imp.Namespace)
	}
	nsName, pkgName := Basename(fqn), PackageName(fqn)

	found := false
	for _, target := range exposed {
		owner := ""
		if target.Package != nil {
			owner = target.Package.Name
		}
		if (target.Name == nsName && owner == pkgName) || fqn == owner {
			found = true
			imp.NamespaceRef = target
			r.expose(pkg, target)
		}
	}
	if !found {
		return types.Errorf(types.KindNamespaceNotFound, imp.Namespace,
			"Namespace '%s' not found.", imp.Namespace)
	}
	return nil
}

func (r *Resolver) expose(pkg *ast.Package, target *ast.Namespace) {
	for _, ns := range pkg.Namespaces() {
		r.link(ns, target)
	}
}

func (r *Resolver) link(from, to *ast.Namespace) int {
	before := len(from.Visible)
	from.AddVisible(to)
	if len(from.Visible) == before {
		return 0
	}
	if r.TraceEnabled() {
		r.Trace("namespace visible",
			slog.String("from", from.FQN()),
			slog.String("to", to.FQN()))
	}
	return 1
}
