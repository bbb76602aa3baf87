// Package validate: connected components over the built graph.

package validate

import (
	"sort"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/network"
)

// Components returns the connected-component count. Directed graphs are
// read as undirected here (weak components): for "is this network in one
// piece" the arc orientation is noise. Isolated nodes count as singleton
// components. The result does not depend on entry order in the source
// file.
//
// Complexity: O(N + E) time and space.
func Components(g *network.Graph) int {
	return len(componentScan(g))
}

// ComponentSizes returns the component sizes in descending order, so
// sizes[0] is the giant component the summary reports.
func ComponentSizes(g *network.Graph) []int {
	sizes := componentScan(g)
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

// componentScan runs BFS over an undirected view of g and returns one size
// per component, in discovery order.
func componentScan(g *network.Graph) []int {
	if g == nil {
		return nil
	}
	n := g.N()

	// Undirected adjacency view; arcs contribute both directions.
	adj := make([][]int, n)
	for _, e := range g.Edges() {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	seen := make([]bool, n)
	queue := make([]int, 0, n)
	var sizes []int

	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}

		// Flood one component.
		size := 0
		queue = append(queue[:0], start)
		seen[start] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			size++
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sizes = append(sizes, size)
	}

	return sizes
}
