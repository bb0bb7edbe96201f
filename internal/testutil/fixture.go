package testutil

import (
	"fmt"
	"sync"

	"github.com/gofidl/gofidl/ast"
)

// Parser is a fake FIDL parser. It returns a freshly built AST for each
// registered path and counts how often each path was parsed, so tests can
// check that the processor never parses a file twice.
type Parser struct {
	mu       sync.Mutex
	builders map[string]func() *ast.Package
	calls    map[string]int
}

// NewParser returns a parser with no registered models.
func NewParser() *Parser {
	return &Parser{
		builders: make(map[string]func() *ast.Package),
		calls:    make(map[string]int),
	}
}

// Register maps an absolute path to a tree builder.
func (p *Parser) Register(path string, build func() *ast.Package) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.builders[path] = build
}

// Parse implements the processor's parser contract. The source bytes are
// ignored; the registered builder is the model.
func (p *Parser) Parse(path string, _ []byte) (*ast.Package, error) {
	p.mu.Lock()
	build, ok := p.builders[path]
	p.calls[path]++
	p.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no model registered for %s", path)
	}
	return build(), nil
}

// Calls returns how many times path was parsed.
func (p *Parser) Calls(path string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[path]
}

// Model is a virtual FIDL file: an absolute path plus the tree a parser
// would produce for it.
type Model struct {
	Path  string
	Build func() *ast.Package
}

// Package returns a builder for a single-package model. fill populates the
// package after creation.
func Package(name string, fill func(p *ast.Package)) func() *ast.Package {
	return func() *ast.Package {
		p := ast.NewPackage(name)
		if fill != nil {
			fill(p)
		}
		return p
	}
}
