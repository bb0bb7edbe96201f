// Package ast defines the Franca IDL syntax tree shared by parsers and the
// gofidl processor.
//
// Trees are produced once by a parser and then mutated in place by the
// processor: references are bound, constants folded, and namespaces linked
// to the namespaces they can see. Nodes are never removed, so pointers into
// a tree stay valid for as long as the owning Package is alive.
package ast

import "slices"

// Package is one Franca package. A logical package may span several files;
// the processor merges them into a single Package object.
type Package struct {
	Name            string
	Files           []string
	Imports         []*Import
	TypeCollections []*Namespace
	Interfaces      []*Namespace
}

// NewPackage returns an empty package.
func NewPackage(name string) *Package {
	return &Package{Name: name}
}

// Import is an import statement. Namespace is empty for a model import
// (`import model "file"`) and holds the wildcard FQN (`P.NS.*`) for a
// namespace import.
type Import struct {
	File      string
	Namespace string

	// Path is the absolute path the file resolved to, set by the processor.
	Path string

	// Package is the imported package, set by the processor.
	Package *Package
	// NamespaceRef is the namespace exposed by a namespace import.
	NamespaceRef *Namespace
}

// IsModelImport reports whether the import exposes every namespace of the
// imported file.
func (i *Import) IsModelImport() bool {
	return i.Namespace == ""
}

// Namespaces returns the namespaces an import can expose: those of the
// imported package declared in the imported file. All namespaces are
// returned when Path is unset.
func (i *Import) Namespaces() []*Namespace {
	if i.Package == nil {
		return nil
	}
	all := i.Package.Namespaces()
	if i.Path == "" {
		return all
	}
	out := all[:0:0]
	for _, ns := range all {
		if ns.File == "" || ns.File == i.Path {
			out = append(out, ns)
		}
	}
	return out
}

// AddImport appends an import statement.
func (p *Package) AddImport(file, namespace string) *Import {
	imp := &Import{File: file, Namespace: namespace}
	p.Imports = append(p.Imports, imp)
	return imp
}

// AddTypeCollection appends a new type collection owned by p.
func (p *Package) AddTypeCollection(name string) *Namespace {
	ns := newNamespace(p, name, KindTypeCollection)
	p.TypeCollections = append(p.TypeCollections, ns)
	return ns
}

// AddInterface appends a new interface owned by p.
func (p *Package) AddInterface(name string) *Namespace {
	ns := newNamespace(p, name, KindInterface)
	p.Interfaces = append(p.Interfaces, ns)
	return ns
}

// TypeCollection returns the type collection with the given name, or nil.
func (p *Package) TypeCollection(name string) *Namespace {
	return findNamespace(p.TypeCollections, name)
}

// Interface returns the interface with the given name, or nil.
func (p *Package) Interface(name string) *Namespace {
	return findNamespace(p.Interfaces, name)
}

// Namespace returns the type collection or interface with the given name,
// type collections first, or nil.
func (p *Package) Namespace(name string) *Namespace {
	if ns := p.TypeCollection(name); ns != nil {
		return ns
	}
	return p.Interface(name)
}

// Namespaces returns all type collections followed by all interfaces.
func (p *Package) Namespaces() []*Namespace {
	all := make([]*Namespace, 0, len(p.TypeCollections)+len(p.Interfaces))
	all = append(all, p.TypeCollections...)
	return append(all, p.Interfaces...)
}

// HasFile reports whether path is one of the files merged into p.
func (p *Package) HasFile(path string) bool {
	return slices.Contains(p.Files, path)
}

// Merge splices the namespaces, imports and files of other into p. The
// merged namespaces are re-parented to p so that back-references lead to
// the surviving package object. Callers check for duplicate namespace names
// beforehand.
func (p *Package) Merge(other *Package) {
	for _, ns := range other.TypeCollections {
		ns.Package = p
		p.TypeCollections = append(p.TypeCollections, ns)
	}
	for _, ns := range other.Interfaces {
		ns.Package = p
		p.Interfaces = append(p.Interfaces, ns)
	}
	p.Imports = append(p.Imports, other.Imports...)
	for _, f := range other.Files {
		if !p.HasFile(f) {
			p.Files = append(p.Files, f)
		}
	}
}

func findNamespace(list []*Namespace, name string) *Namespace {
	for _, ns := range list {
		if ns.Name == name {
			return ns
		}
	}
	return nil
}
