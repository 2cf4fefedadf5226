// Package rank defines the value types shared by the ranking machinery:
// Ranking (a permutation of items), Split (a head/tail partition) and
// SegmentedRanking (an ordered sequence of segments, each carrying the set of
// permissible orderings of one item subset).
//
// All types are immutable after construction and safe to share.
package rank
