// Package validate: summary statistics for the session header.

package validate

import (
	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/network"
)

// ComputeStats derives the headline numbers shown next to a loaded
// network: node count, edge count, density, components.
//
// Density is edges over possible edges: E / (N*(N-1)/2) for undirected
// graphs, E / (N*(N-1)) for directed ones. Graphs with fewer than two
// nodes have no possible edges, so density is reported as 0.
func ComputeStats(g *network.Graph, components int) Stats {
	if g == nil {
		return Stats{}
	}

	s := Stats{
		Nodes:      g.N(),
		Edges:      g.EdgeCount(),
		Components: components,
	}

	if s.Nodes < 2 {
		return s
	}

	possible := float64(s.Nodes) * float64(s.Nodes-1)
	if !g.Directed() {
		possible /= 2
	}
	s.Density = float64(s.Edges) / possible

	return s
}
