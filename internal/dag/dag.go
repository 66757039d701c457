// Package dag tracks the include graph of a run: which module loaded
// which. Cycle rejection itself happens in the loader's registry the
// moment a path is revisited; this graph is observability over the run
// for the graph command and diagnostics.
package dag

import (
	"fmt"
	"sort"
)

// Graph is a directed graph of canonical module paths. An edge from A to
// B means A contains a loadin that resolved to B.
type Graph struct {
	nodes    map[string]bool
	includes map[string][]string // module -> modules it loads, in source order
	loadedBy map[string][]string // module -> modules that load it
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]bool),
		includes: make(map[string][]string),
		loadedBy: make(map[string][]string),
	}
}

// AddModule adds a module to the graph.
func (g *Graph) AddModule(path string) {
	if !g.nodes[path] {
		g.nodes[path] = true
		g.includes[path] = []string{}
		g.loadedBy[path] = []string{}
	}
}

// AddInclude records that parent loads child. Both modules must already
// be in the graph.
func (g *Graph) AddInclude(parent, child string) error {
	if !g.nodes[parent] {
		return fmt.Errorf("unknown module %q", parent)
	}
	if !g.nodes[child] {
		return fmt.Errorf("unknown module %q", child)
	}
	g.includes[parent] = append(g.includes[parent], child)
	g.loadedBy[child] = append(g.loadedBy[child], parent)
	return nil
}

// Includes returns the modules loaded by path, in source order.
func (g *Graph) Includes(path string) []string {
	return g.includes[path]
}

// LoadedBy returns the modules that load path.
func (g *Graph) LoadedBy(path string) []string {
	return g.loadedBy[path]
}

// Modules returns all module paths in sorted order.
func (g *Graph) Modules() []string {
	paths := make([]string, 0, len(g.nodes))
	for path := range g.nodes {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// ModuleCount returns the number of modules.
func (g *Graph) ModuleCount() int {
	return len(g.nodes)
}

// IncludeCount returns the number of include edges.
func (g *Graph) IncludeCount() int {
	count := 0
	for _, children := range g.includes {
		count += len(children)
	}
	return count
}

// Roots returns modules that nothing loads, sorted. For a completed run
// this is the initially invoked file.
func (g *Graph) Roots() []string {
	var roots []string
	for path := range g.nodes {
		if len(g.loadedBy[path]) == 0 {
			roots = append(roots, path)
		}
	}
	sort.Strings(roots)
	return roots
}

// TopologicalSort returns modules with every module after the modules it
// loads. This is evaluation order, since an included file's statements
// run before the remainder of the including file.
func (g *Graph) TopologicalSort() ([]string, error) {
	if path := g.findCycle(); path != nil {
		return nil, fmt.Errorf("cycle detected: %v", path)
	}

	visited := make(map[string]bool)
	var result []string

	var visit func(path string)
	visit = func(path string) {
		if visited[path] {
			return
		}
		visited[path] = true
		for _, child := range g.includes[path] {
			visit(child)
		}
		result = append(result, path)
	}

	for _, path := range g.Modules() {
		visit(path)
	}

	return result, nil
}

// findCycle returns a cycle path if the graph has one, else nil. The
// loader rejects cycles before they can be recorded, so a non-nil result
// means the graph was built by hand.
func (g *Graph) findCycle() []string {
	visited := make(map[string]bool)
	inStack := make(map[string]bool)
	parent := make(map[string]string)

	var cycle []string

	var dfs func(path string) bool
	dfs = func(path string) bool {
		visited[path] = true
		inStack[path] = true

		for _, child := range g.includes[path] {
			if !visited[child] {
				parent[child] = path
				if dfs(child) {
					return true
				}
			} else if inStack[child] {
				cycle = []string{child}
				for curr := path; curr != child; curr = parent[curr] {
					cycle = append([]string{curr}, cycle...)
				}
				cycle = append([]string{child}, cycle...)
				return true
			}
		}

		inStack[path] = false
		return false
	}

	for path := range g.nodes {
		if !visited[path] {
			if dfs(path) {
				return cycle
			}
		}
	}
	return nil
}
