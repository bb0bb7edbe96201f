// Package graph provides the file import graph used by the processor to
// report import cycles and a dependencies-first load order.
package graph

import "slices"

// Graph is a dependency graph of files with forward edges. Nodes are
// absolute file paths.
type Graph struct {
	nodes map[string]struct{}
	edges map[string][]string
}

// New returns a graph with no nodes or edges.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		edges: make(map[string][]string),
	}
}

// AddNode registers a file. Duplicate calls are no-ops.
func (g *Graph) AddNode(file string) {
	g.nodes[file] = struct{}{}
}

// AddEdge records that "from" imports "to", meaning "to" must be loaded
// before "from". Missing nodes are created implicitly.
// Duplicate edges are ignored.
func (g *Graph) AddEdge(from, to string) {
	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}

	if slices.Contains(g.edges[from], to) {
		return
	}
	g.edges[from] = append(g.edges[from], to)
}

// Dependencies returns the files that file imports (forward edges).
func (g *Graph) Dependencies(file string) []string {
	return g.edges[file]
}

// HasNode reports whether the file exists in the graph.
func (g *Graph) HasNode(file string) bool {
	_, ok := g.nodes[file]
	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Nodes returns every file in sorted order.
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}
