package hypergraph

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/javhar/condorank/stats"
)

// HyperEdge is an immutable set of nodes. Construction deduplicates;
// first-seen order is kept for deterministic iteration and rendering.
type HyperEdge[Node comparable] struct {
	nodes []Node
	set   map[Node]struct{}
}

// NewHyperEdge builds a hyperedge over the given nodes.
func NewHyperEdge[Node comparable](nodes []Node) HyperEdge[Node] {
	e := HyperEdge[Node]{set: make(map[Node]struct{}, len(nodes))}
	for _, node := range nodes {
		if _, dup := e.set[node]; dup {
			continue
		}
		e.set[node] = struct{}{}
		e.nodes = append(e.nodes, node)
	}
	return e
}

// Len returns the number of nodes.
func (e HyperEdge[Node]) Len() int { return len(e.nodes) }

// Nodes returns the nodes in first-seen order.
func (e HyperEdge[Node]) Nodes() []Node { return append([]Node(nil), e.nodes...) }

// Contains reports membership of node.
func (e HyperEdge[Node]) Contains(node Node) bool {
	_, ok := e.set[node]
	return ok
}

func (e HyperEdge[Node]) String() string {
	tokens := make([]string, len(e.nodes))
	for i, node := range e.nodes {
		tokens[i] = fmt.Sprint(node)
	}
	return "{" + strings.Join(tokens, ", ") + "}"
}

// HyperGraph is an ordered family of hyperedges; equivalently, a family of
// subsets over an implicit universe.
type HyperGraph[Node comparable] struct {
	edges []HyperEdge[Node]
}

// NewHyperGraph builds the family from the given subsets, in order.
func NewHyperGraph[Node comparable](families [][]Node) HyperGraph[Node] {
	edges := make([]HyperEdge[Node], len(families))
	for i, family := range families {
		edges[i] = NewHyperEdge(family)
	}
	return HyperGraph[Node]{edges: edges}
}

// Len returns the number of hyperedges.
func (g HyperGraph[Node]) Len() int { return len(g.edges) }

// Edges returns the hyperedges in family order.
func (g HyperGraph[Node]) Edges() []HyperEdge[Node] {
	return append([]HyperEdge[Node](nil), g.edges...)
}

// Medoid returns the sub-family of hyperedges minimising the total Hamming
// distance to all hyperedges of the family. Ties are all kept, in family
// order.
//
// With m = |family| and w(i) the number of subsets containing node i, a
// subset S has total distance m·|S| + w(U) − 2·Σ_{i∈S} w(i); the constant
// w(U) term drops out of the argmin.
func (g HyperGraph[Node]) Medoid() HyperGraph[Node] {
	weight := make(map[Node]int)
	for _, edge := range g.edges {
		for _, node := range edge.nodes {
			weight[node]++
		}
	}

	m := len(g.edges)
	acc := stats.NewArgMinMax[HyperEdge[Node], int](cmp.Compare[int])
	for _, edge := range g.edges {
		total := 0
		for _, node := range edge.nodes {
			total += weight[node]
		}
		acc.Process(edge, m*edge.Len()-2*total)
	}
	return HyperGraph[Node]{edges: acc.Snapshot().ArgMin}
}

func (g HyperGraph[Node]) String() string {
	tokens := make([]string, len(g.edges))
	for i, edge := range g.edges {
		tokens[i] = edge.String()
	}
	return "(" + strings.Join(tokens, ", ") + ")"
}
