// Package network: breadth-first traversal.

package network

import "fmt"

// BFSOrder returns the breadth-first visit order from start, expanding
// neighbors in ascending index order, so the result is reproducible for a
// given graph. Directed graphs are traversed along out-arcs. Nodes
// unreachable from start are absent from the result.
//
// Complexity: O(N + E log E) time for the sorted expansions, O(N) space.
func (g *Graph) BFSOrder(start int) ([]int, error) {
	if start < 0 || start >= g.n {
		return nil, fmt.Errorf("BFSOrder(%d): %w", start, ErrUnknownNode)
	}

	w := &bfsWalker{g: g, seen: make([]bool, g.n)}
	w.visit(start)
	for len(w.queue) > 0 {
		u := w.dequeue()
		nbrs, _ := g.Neighbors(u) // u came off the queue, bounds hold
		for _, v := range nbrs {
			if !w.seen[v] {
				w.visit(v)
			}
		}
	}

	return w.order, nil
}

// bfsWalker carries the in-flight traversal state.
type bfsWalker struct {
	g     *Graph
	seen  []bool
	queue []int
	order []int
}

// visit marks v, records it and queues it for expansion.
func (w *bfsWalker) visit(v int) {
	w.seen[v] = true
	w.order = append(w.order, v)
	w.queue = append(w.queue, v)
}

// dequeue pops the frontier head.
func (w *bfsWalker) dequeue() int {
	u := w.queue[0]
	w.queue = w.queue[1:]

	return u
}
