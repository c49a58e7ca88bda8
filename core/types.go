// Package core: Graph type, options, sentinel errors, and constructor.
//
// This file declares the Graph and Edge types, GraphOption and the
// With... options, the sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeExists        - node already in the graph.
//	ErrNodeNotFound      - requested node does not exist.
//	ErrNodeRange         - node ID is MaxNodes or larger.
//	ErrEdgeExists        - edge already in the graph.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
//	ErrLoopsDisabled     - DisableSelfLoops on a graph already without loops.
//	ErrWeightedGraph     - unweighted operation on a weighted graph.
//	ErrUnweightedGraph   - weighted operation on an unweighted graph.
//	ErrCapacity          - graph already holds MaxNodes nodes.
package core

import (
	"errors"

	"github.com/katalvlaran/grava/hashset"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeExists indicates an insertion of a node already in the graph.
	ErrNodeExists = errors.New("core: node already in graph")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not in graph")

	// ErrNodeRange indicates a node ID outside [0, MaxNodes).
	ErrNodeRange = errors.New("core: node ID out of range")

	// ErrEdgeExists indicates an insertion of an edge already in the graph.
	ErrEdgeExists = errors.New("core: edge already in graph")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not in graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted on a graph that
	// disallows them.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrLoopsDisabled indicates DisableSelfLoops was called on a graph
	// that already disallows self-loops.
	ErrLoopsDisabled = errors.New("core: self-loops already disabled")

	// ErrWeightedGraph indicates AddEdge was called on a weighted graph;
	// weighted graphs take their edges through AddEdgeWeight.
	ErrWeightedGraph = errors.New("core: graph is weighted")

	// ErrUnweightedGraph indicates AddEdgeWeight or EdgeWeight was called
	// on an unweighted graph.
	ErrUnweightedGraph = errors.New("core: graph is unweighted")

	// ErrCapacity indicates the graph already holds MaxNodes nodes. The
	// failed operation has no effect.
	ErrCapacity = errors.New("core: maximum number of nodes reached")
)

const (
	// MaxNodes is the exclusive upper bound on node IDs and the maximum
	// number of nodes a graph can hold.
	MaxNodes = 1 << 31

	// DefaultCapacity is the initial length of the adjacency array.
	DefaultCapacity = 1 << 7
)

// Edge is one edge of a graph as yielded by EdgeIter. For undirected
// graphs U <= V (canonical order); for directed graphs the edge runs from
// U to V. Weight is zero on unweighted graphs.
type Edge struct {
	U, V   uint32
	Weight float64
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithDirected makes the graph directed.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithWeighted makes the graph weighted; edges are added with
// AddEdgeWeight and carry a float64 weight.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithSelfLoops permits edges from a node to itself.
func WithSelfLoops() GraphOption {
	return func(g *Graph) { g.selfloops = true }
}

// Graph is the core in-memory graph data structure.
type Graph struct {
	// Configuration flags, fixed at construction except for selfloops,
	// which DisableSelfLoops may clear.
	directed  bool
	weighted  bool
	selfloops bool

	// Storage
	node       *hashset.Set // canonical set of live node IDs
	adjacency  []*record    // node ID -> record; nil slots are absent nodes
	totalEdges int

	version uint64 // bumped by every successful mutation
}

// NewGraph creates an empty graph. By default the graph is undirected,
// unweighted, and disallows self-loops.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		node:      hashset.NewSet(),
		adjacency: make([]*record, DefaultCapacity),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether the graph is directed. O(1).
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether the graph is weighted. O(1).
func (g *Graph) Weighted() bool { return g.weighted }

// AllowsSelfLoops reports whether the graph permits self-loops. O(1).
func (g *Graph) AllowsSelfLoops() bool { return g.selfloops }

// Cap returns the current length of the adjacency array: the exclusive
// upper bound on the IDs the graph can hold without growing. O(1).
func (g *Graph) Cap() int { return len(g.adjacency) }

// NodeCount returns the number of nodes in the graph. O(1).
func (g *Graph) NodeCount() int { return g.node.Len() }

// EdgeCount returns the number of edges in the graph. O(1).
func (g *Graph) EdgeCount() int { return g.totalEdges }
