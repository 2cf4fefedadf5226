package digraph

import "errors"

// Sentinel errors for digraph operations. Return values wrap these at most
// once; match with errors.Is.
var (
	// ErrNodeNotFound indicates an operation referenced a node that is not
	// present in the graph.
	ErrNodeNotFound = errors.New("digraph: node not found")

	// ErrGraphIsCyclic indicates that a topological order or a transitive
	// reduction was requested from a cyclic graph, for which none exists.
	ErrGraphIsCyclic = errors.New("digraph: graph is cyclic")
)
