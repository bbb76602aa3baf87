// Package validate: report and warning types.

package validate

import "fmt"

// WarnCode identifies one advisory class.
type WarnCode string

// The three advisory classes a load can surface. They accompany an
// otherwise successful load and never block analysis.
const (
	WarnAsymmetric   WarnCode = "asymmetric"
	WarnSelfLoops    WarnCode = "self-loops"
	WarnDisconnected WarnCode = "disconnected"
)

// Warning is one non-fatal advisory attached to a Report.
type Warning struct {
	Code   WarnCode
	Detail string
}

// String renders "code: detail", the form logs and the upload summary show.
func (w Warning) String() string { return fmt.Sprintf("%s: %s", w.Code, w.Detail) }

// Report is the structural diagnosis of one loaded network.
type Report struct {
	// Symmetric is true when every off-diagonal entry (i,j,v) has a
	// transposed partner (j,i,v') within tolerance, or when the source
	// file declared symmetric storage.
	Symmetric bool

	// SelfLoops counts diagonal entries; they are already excluded from
	// the graph's edge set by the builder.
	SelfLoops int

	// Components is the connected-component count of the graph, isolated
	// nodes counting as singletons. Connected means exactly one.
	Connected  bool
	Components int

	// Warnings holds the advisories, in a fixed order: asymmetry, then
	// self-loops, then disconnection.
	Warnings []Warning
}

// Stats is the summary block the host surfaces next to the diagnosis.
type Stats struct {
	Nodes int
	Edges int

	// Density is E / (N·(N-1)/2) undirected, E / (N·(N-1)) directed,
	// and 0 whenever N < 2.
	Density float64

	Components int
}
