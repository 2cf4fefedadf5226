package digraph

import "github.com/soniakeys/bits"

// TransitiveReduction is the result of transitively reducing a graph.
//
// For an acyclic graph the reduction is the unique smallest subgraph with the
// same transitive closure: it keeps exactly the edges (u,v) for which no
// indirect u⇝v path exists. For a cyclic graph the reduction does not exist;
// Exists reports false and Reduced fails with ErrGraphIsCyclic, while the
// topological-sort verdict computed along the way remains available.
type TransitiveReduction[Node comparable] struct {
	reduced *DiGraph[Node]
	topo    TopoSort[Node]
}

// ReductionOf computes the transitive reduction of g.
//
// The algorithm walks a topological order in reverse, accumulating for every
// node a descendant bitset D(u) = ⋃ over out-neighbours v of {v} ∪ D(v),
// then keeps edge (u,v) iff v is not reachable from u through any sibling
// neighbour. The sibling test uses prefix/suffix unions of the neighbour
// masks, so each edge is decided in O(n/w) bitset words.
//
// Complexity: O(n·(n+m)/w) with w the machine word size.
func ReductionOf[Node comparable](g *DiGraph[Node]) TransitiveReduction[Node] {
	topo := SortOf(g)
	if !topo.IsDAG() {
		return TransitiveReduction[Node]{topo: topo}
	}

	n := g.Order()
	index := make(map[Node]int, n)
	for i, node := range topo.order {
		index[node] = i
	}

	// Descendant bitsets, reverse topological order: every out-neighbour is
	// processed before its predecessors.
	desc := make(map[Node]bits.Bits, n)
	for i := n - 1; i >= 0; i-- {
		node := topo.order[i]
		d := bits.New(n)
		for _, nb := range g.neighbourList(node) {
			d.SetBit(index[nb], 1)
			d.Or(d, desc[nb])
		}
		desc[node] = d
	}

	builder := NewBuilder[Node]()
	for _, node := range topo.order {
		builder.AddNode(node)
		for _, nb := range reducedNeighbours(g, index, desc, node) {
			builder.AddEdge(node, nb)
		}
	}
	return TransitiveReduction[Node]{reduced: builder.Build(), topo: topo}
}

// reducedNeighbours returns the out-neighbours of node whose edges survive
// the reduction.
func reducedNeighbours[Node comparable](
	g *DiGraph[Node],
	index map[Node]int,
	desc map[Node]bits.Bits,
	node Node,
) []Node {
	nbs := g.neighbourList(node)
	outDeg := len(nbs)
	if outDeg == 0 {
		return nil
	}
	n := len(index)

	// via[i] = {nbs[i]} ∪ D(nbs[i]): everything reachable through the i-th
	// neighbour.
	via := make([]bits.Bits, outDeg)
	for i, nb := range nbs {
		v := bits.New(n)
		v.SetBit(index[nb], 1)
		v.Or(v, desc[nb])
		via[i] = v
	}

	// Prefix/suffix unions give "reachable through any neighbour except i"
	// in O(1) lookups per edge.
	prefix := make([]bits.Bits, outDeg)
	suffix := make([]bits.Bits, outDeg)
	acc := bits.New(n)
	for i := 0; i < outDeg; i++ {
		acc.Or(acc, via[i])
		p := bits.New(n)
		p.Or(p, acc)
		prefix[i] = p
	}
	acc = bits.New(n)
	for i := outDeg - 1; i >= 0; i-- {
		acc.Or(acc, via[i])
		s := bits.New(n)
		s.Or(s, acc)
		suffix[i] = s
	}

	kept := make([]Node, 0, outDeg)
	for i, nb := range nbs {
		others := bits.New(n)
		if i > 0 {
			others.Or(others, prefix[i-1])
		}
		if i+1 < outDeg {
			others.Or(others, suffix[i+1])
		}
		if others.Bit(index[nb]) == 0 {
			kept = append(kept, nb)
		}
	}
	return kept
}

// Exists reports whether the reduction exists, which is exactly when the
// graph is acyclic.
func (r TransitiveReduction[Node]) Exists() bool { return r.reduced != nil }

// Reduced returns the transitively reduced graph, or ErrGraphIsCyclic if the
// originating graph is cyclic.
func (r TransitiveReduction[Node]) Reduced() (*DiGraph[Node], error) {
	if r.reduced == nil {
		return nil, ErrGraphIsCyclic
	}
	return r.reduced, nil
}

// TopoSort returns the topological sort computed while reducing. It carries
// the cyclicity verdict even when the reduction itself does not exist.
func (r TransitiveReduction[Node]) TopoSort() TopoSort[Node] { return r.topo }
