// SPDX-License-Identifier: MIT

// Package condorcet implements the Condorcet optimisation engine: an
// antisymmetric pairwise-preference matrix with its Borda, sign and violation
// derivations, a bitmask dynamic program over all 2ⁿ item subsets, and the
// enumeration of every cost-optimal total ordering and head/tail split,
// together with a lexicographic four-criterion tie-break over equally optimal
// rankings.
//
// The engine is exponential by design: the subset-cost tables take
// O(n·2ⁿ) time and memory in the number of items. Callers are expected to
// keep n small per invocation by decomposing their instance first — package
// tournament does exactly that with a strongly-connected-component
// condensation — and the table builder refuses n > MaxDPItems outright.
//
// All values are immutable after construction; builders are the only
// mutators. The O(n·2ⁿ) builds and the ranking enumeration accept a
// context.Context and unwind promptly on cancellation.
//
// Errors:
//
//	ErrNoItems         - matrix construction with an empty item list.
//	ErrDuplicateItem   - matrix construction with repeated items.
//	ErrUnknownItem     - strict AddEntry, or a cost query, on an item that is
//	                     not in the matrix.
//	ErrSelfPair        - AddEntry with lhs equal to rhs.
//	ErrTooManyItems    - subset-cost build beyond MaxDPItems items.
//	ErrInvalidHeadSize - Splits with a head size outside [0, n].
//	ErrNoRankings      - tie-break optimum of an empty ranking set.
package condorcet
