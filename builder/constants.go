// SPDX-License-Identifier: MIT

// Shared constants for graph constructors.

package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodEdgeList is the canonical name for the EdgeList constructor.
	MethodEdgeList = "EdgeList"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomEdges is the canonical name for the RandomEdges constructor.
	MethodRandomEdges = "RandomEdges"
	// MethodRepairParity is the canonical name for the RepairParity constructor.
	MethodRepairParity = "RepairParity"
	// MethodConnectComponents is the canonical name for the ConnectComponents constructor.
	MethodConnectComponents = "ConnectComponents"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest simple cycle. Shorter rings need loops or
// parallel edges; build those with EdgeList.
const MinCycleNodes = 3

// MinPathNodes is the smallest path with at least one edge.
const MinPathNodes = 2

// MinStarNodes is one center plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is a 3-cycle rim plus the hub.
const MinWheelNodes = 4

// MinCompleteNodes allows K_1, a single vertex without edges.
const MinCompleteNodes = 1

// MinPartition is the smallest side of a complete bipartite graph.
const MinPartition = 1

// MinGridDim is the smallest grid dimension; a 1×1 grid has no edges.
const MinGridDim = 1

// MinRandomEdges is the smallest edge count RandomEdges accepts.
const MinRandomEdges = 1

//-----------------------------------------------------------------------------
// Fixed Vertices
//-----------------------------------------------------------------------------

// CenterVertex is the hub of Star and Wheel.
const CenterVertex = 0
