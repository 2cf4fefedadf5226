package digraph

// Condense decomposes g into its strongly connected components and returns
// the transitively reduced condensation.
//
// Each component is wrapped as a sub-DiGraph holding the component's nodes
// and the original edges restricted to the component. The cross-component
// edges form the condensation DAG whose nodes are the sub-graphs themselves;
// that DAG is always acyclic, so the returned reduction always exists and its
// TopoSort orders the components from sources to sinks.
//
// Components are found with Tarjan's algorithm in explicit-stack form, seeded
// from g's nodes in insertion order, so the decomposition is deterministic
// for a given build sequence.
//
// Complexity: O(V + E) for the decomposition.
func Condense[Node comparable](g *DiGraph[Node]) TransitiveReduction[*DiGraph[Node]] {
	components := tarjanSCC(g)
	return ReductionOf(condensedDAG(g, components))
}

// tarjanFrame is one suspended visit of the explicit DFS stack.
type tarjanFrame[Node comparable] struct {
	node Node
	nbs  []Node
	next int
}

// tarjanSCC returns the strongly connected components of g. Components are
// emitted in Tarjan completion order (reverse topological); nodes within a
// component are in stack pop order.
func tarjanSCC[Node comparable](g *DiGraph[Node]) [][]Node {
	var (
		counter    int
		index      = make(map[Node]int, g.Order())
		lowlink    = make(map[Node]int, g.Order())
		onStack    = make(map[Node]bool, g.Order())
		open       []Node
		work       []tarjanFrame[Node]
		components [][]Node
	)

	visit := func(n Node) {
		index[n] = counter
		lowlink[n] = counter
		counter++
		open = append(open, n)
		onStack[n] = true
		work = append(work, tarjanFrame[Node]{node: n, nbs: g.neighbourList(n)})
	}

	for _, root := range g.nodes {
		if _, seen := index[root]; seen {
			continue
		}
		visit(root)
		for len(work) > 0 {
			f := &work[len(work)-1]
			if f.next < len(f.nbs) {
				w := f.nbs[f.next]
				f.next++
				if _, seen := index[w]; !seen {
					visit(w)
				} else if onStack[w] && index[w] < lowlink[f.node] {
					lowlink[f.node] = index[w]
				}
				continue
			}

			// All neighbours handled: close this node.
			done := f.node
			work = work[:len(work)-1]
			if lowlink[done] == index[done] {
				var component []Node
				for {
					top := open[len(open)-1]
					open = open[:len(open)-1]
					onStack[top] = false
					component = append(component, top)
					if top == done {
						break
					}
				}
				components = append(components, component)
			}
			if len(work) > 0 {
				parent := work[len(work)-1].node
				if lowlink[done] < lowlink[parent] {
					lowlink[parent] = lowlink[done]
				}
			}
		}
	}
	return components
}

// condensedDAG wires the component sub-graphs together along the original
// cross-component edges.
func condensedDAG[Node comparable](g *DiGraph[Node], components [][]Node) *DiGraph[*DiGraph[Node]] {
	subgraphs := make([]*DiGraph[Node], len(components))
	owner := make(map[Node]*DiGraph[Node], g.Order())
	for i, component := range components {
		sub := subgraph(g, component)
		subgraphs[i] = sub
		for _, node := range component {
			owner[node] = sub
		}
	}

	builder := NewBuilder[*DiGraph[Node]]()
	for _, sub := range subgraphs {
		builder.AddNode(sub)
		for _, node := range sub.nodes {
			for _, nb := range g.neighbourList(node) {
				if owner[nb] != sub {
					builder.AddEdge(sub, owner[nb])
				}
			}
		}
	}
	return builder.Build()
}

// subgraph restricts g to the given component: its nodes, and only the edges
// with both endpoints inside it.
func subgraph[Node comparable](g *DiGraph[Node], component []Node) *DiGraph[Node] {
	members := make(map[Node]struct{}, len(component))
	for _, node := range component {
		members[node] = struct{}{}
	}
	builder := NewBuilder[Node]()
	for _, node := range component {
		builder.AddNode(node)
		for _, nb := range g.neighbourList(node) {
			if _, in := members[nb]; in {
				builder.AddEdge(node, nb)
			}
		}
	}
	return builder.Build()
}
