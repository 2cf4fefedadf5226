// Package digraph provides an immutable directed graph over arbitrary
// comparable node types, together with the structural algorithms built on it:
// topological sorting (Kahn), transitive reduction over DAGs, and
// condensation into strongly connected components (iterative Tarjan).
//
// A DiGraph is constructed through a Builder and never mutated afterwards;
// every query on a built graph is read-only and safe to share across
// goroutines. Node and neighbour iteration order is the builder's insertion
// order, which makes every algorithm in this package deterministic for a
// given construction sequence.
//
// Cyclicity is surfaced twice, so callers can pick their idiom: TopoSort and
// TransitiveReduction carry an Exists/IsDAG verdict, and reaching for the
// data that does not exist (Order, Reduced) returns ErrGraphIsCyclic.
//
// Errors:
//
//	ErrNodeNotFound   - Neighbours on a node that is not in the graph.
//	ErrGraphIsCyclic  - Order or Reduced requested from a cyclic graph.
package digraph
