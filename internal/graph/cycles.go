package graph

import "slices"

// tarjan visits nodes in sorted order so results are deterministic. visit
// is called for each strongly connected component as it is completed,
// which happens dependencies-first.
func (g *Graph) tarjan(visit func(scc []string, cyclic bool)) {
	var (
		index    int
		stack    []string
		onStack  = make(map[string]bool)
		indices  = make(map[string]int)
		lowlinks = make(map[string]int)
	)

	var strongConnect func(n string)
	strongConnect = func(n string) {
		indices[n] = index
		lowlinks[n] = index
		index++
		stack = append(stack, n)
		onStack[n] = true

		for _, dep := range g.edges[n] {
			if _, visited := indices[dep]; !visited {
				strongConnect(dep)
				lowlinks[n] = min(lowlinks[n], lowlinks[dep])
			} else if onStack[dep] {
				lowlinks[n] = min(lowlinks[n], indices[dep])
			}
		}

		if lowlinks[n] == indices[n] {
			var scc []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == n {
					break
				}
			}
			// Self-import counts as a cycle.
			cyclic := len(scc) > 1 || slices.Contains(g.edges[scc[0]], scc[0])
			visit(scc, cyclic)
		}
	}

	for _, n := range g.Nodes() {
		if _, visited := indices[n]; !visited {
			strongConnect(n)
		}
	}
}

// FindCycles returns all strongly connected components with more than one
// node or with a self-loop. Files within a cycle are sorted.
func (g *Graph) FindCycles() [][]string {
	var cycles [][]string
	g.tarjan(func(scc []string, cyclic bool) {
		if cyclic {
			slices.Sort(scc)
			cycles = append(cycles, scc)
		}
	})
	return cycles
}

// HasCycles reports whether the graph contains any cycles.
func (g *Graph) HasCycles() bool {
	return len(g.FindCycles()) > 0
}

// ResolutionOrder returns files ordered so that imports come before their
// importers. Files on a cycle are reported in cycles and excluded from
// order.
func (g *Graph) ResolutionOrder() (order []string, cycles [][]string) {
	g.tarjan(func(scc []string, cyclic bool) {
		if cyclic {
			slices.Sort(scc)
			cycles = append(cycles, scc)
			return
		}
		order = append(order, scc[0])
	})
	return order, cycles
}
