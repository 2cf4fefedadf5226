// Package hypergraph provides a minimal hypergraph: an ordered family of
// node subsets (hyperedges), together with the medoid operation used to find
// the most central subsets of a family under Hamming distance.
package hypergraph
