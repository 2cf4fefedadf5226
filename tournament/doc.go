// SPDX-License-Identifier: MIT

// Package tournament models round-robin style competition data — pairwise
// duel scores between sides — and turns it into an optimal segmented ranking.
//
// A Tournament is a two-level map from a side to its opponents' DuelScores.
// The Builder normalises every head-to-head into both perspectives, so each
// unordered pair appears twice; ScoreOrZero papers over absent pairs, which
// makes directly assembled tournaments equally usable.
//
// Standings is the ranking pipeline: it condenses the head-to-head win
// digraph into strongly connected components, orders the components
// topologically, and solves each non-trivial component with the Condorcet
// engine of package condorcet, optionally collapsing equally optimal
// orderings with the lexicographic tie-break. The result is a
// rank.SegmentedRanking whose segments expose genuinely indistinguishable
// groups of sides.
package tournament
