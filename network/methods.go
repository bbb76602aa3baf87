// Package network: read accessors. Everything returns ascending node order,
// independent of build/insertion history.

package network

import (
	"fmt"
	"sort"
)

// N returns the node count (nodes are 0 … N-1).
func (g *Graph) N() int { return g.n }

// EdgeCount returns the number of undirected edges, or directed arcs.
func (g *Graph) EdgeCount() int { return g.edges }

// Directed reports whether the graph was built with WithDirected.
func (g *Graph) Directed() bool { return g.directed }

// HasEdge reports whether the edge (or arc) u→v exists. Out-of-range
// indices simply report false.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Weight returns the stored weight of u→v and whether the edge exists.
func (g *Graph) Weight(u, v int) (float64, bool) {
	if u < 0 || u >= g.n || v < 0 || v >= g.n || g.adj[u] == nil {
		return 0, false
	}
	w, ok := g.adj[u][v]

	return w, ok
}

// Neighbors returns u's adjacent nodes in ascending order. For directed
// graphs these are the out-neighbors.
func (g *Graph) Neighbors(u int) ([]int, error) {
	if u < 0 || u >= g.n {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, ErrUnknownNode)
	}
	if len(g.adj[u]) == 0 {
		return nil, nil // isolated node: present, no adjacency
	}

	out := make([]int, 0, len(g.adj[u]))
	for v := range g.adj[u] {
		out = append(out, v)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the adjacency count of u (out-degree when directed).
func (g *Graph) Degree(u int) (int, error) {
	if u < 0 || u >= g.n {
		return 0, fmt.Errorf("Degree(%d): %w", u, ErrUnknownNode)
	}

	return len(g.adj[u]), nil
}

// Edges returns the full edge list in ascending (U, V) order. Undirected
// edges appear once, normalized to U < V.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u := 0; u < g.n; u++ {
		if g.adj[u] == nil {
			continue
		}
		for v, w := range g.adj[u] {
			if !g.directed && v < u {
				continue // mirrored half; the u < v pass already emits it
			}
			out = append(out, Edge{U: u, V: v, W: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// Clone returns a deep copy; the two graphs share no storage.
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		n:        g.n,
		directed: g.directed,
		adj:      make([]map[int]float64, g.n),
		edges:    g.edges,
	}
	for u := range g.adj {
		if g.adj[u] == nil {
			continue
		}
		m := make(map[int]float64, len(g.adj[u]))
		for v, w := range g.adj[u] {
			m[v] = w
		}
		cp.adj[u] = m
	}

	return cp
}
