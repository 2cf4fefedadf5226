package condorcet

import "errors"

// Sentinel errors for the condorcet package. Public functions return these
// directly or wrapped once with context; match with errors.Is.
var (
	// ErrNoItems indicates a matrix was requested over zero items.
	ErrNoItems = errors.New("condorcet: no items")

	// ErrDuplicateItem indicates the item list passed to a builder contains
	// the same item twice.
	ErrDuplicateItem = errors.New("condorcet: duplicate item")

	// ErrUnknownItem indicates an item that is not part of the matrix.
	ErrUnknownItem = errors.New("condorcet: unknown item")

	// ErrSelfPair indicates an entry was added for an item against itself,
	// which would break the zero diagonal.
	ErrSelfPair = errors.New("condorcet: lhs and rhs are the same item")

	// ErrTooManyItems indicates a subset-cost build over more than MaxDPItems
	// items; the 2ⁿ tables would not fit.
	ErrTooManyItems = errors.New("condorcet: too many items for subset DP")

	// ErrInvalidHeadSize indicates a split head size outside [0, n].
	ErrInvalidHeadSize = errors.New("condorcet: invalid head size")

	// ErrNoRankings indicates a tie-break optimum was requested over an
	// empty set of rankings.
	ErrNoRankings = errors.New("condorcet: no rankings")
)
