// SPDX-License-Identifier: MIT

package eulerian

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrGraphNil indicates a nil *core.Graph.
	ErrGraphNil = errors.New("eulerian: graph is nil")

	// ErrNotEulerian indicates the graph is disconnected or has a vertex of
	// odd degree.
	ErrNotEulerian = errors.New("eulerian: graph has no Eulerian circuit")

	// ErrNoEdges indicates the graph has no edges. Such a graph is trivially
	// Eulerian but has no circuit to report.
	ErrNoEdges = errors.New("eulerian: graph has no edges")

	// ErrInvalidCircuit indicates a sequence that is not an Eulerian circuit
	// of the given graph.
	ErrInvalidCircuit = errors.New("eulerian: invalid circuit")
)

// Report summarizes the Eulerian-relevant structure of a graph.
type Report struct {
	Vertices    int   `json:"vertices" yaml:"vertices"`
	Edges       int   `json:"edges" yaml:"edges"`
	Loops       int   `json:"loops" yaml:"loops"`
	Isolated    int   `json:"isolated" yaml:"isolated"`
	OddVertices []int `json:"odd_vertices" yaml:"odd_vertices"`

	// Components counts connected components that contain at least one edge.
	Components int  `json:"components" yaml:"components"`
	Connected  bool `json:"connected" yaml:"connected"`
	Eulerian   bool `json:"eulerian" yaml:"eulerian"`
}
