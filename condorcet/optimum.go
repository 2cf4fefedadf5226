package condorcet

import (
	"context"
	"fmt"
	"math"
	"math/bits"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/javhar/condorank/rank"
)

// Tolerances for reconstructing optimal choices from the cost tables. All
// table entries are non-negative integers stored as doubles, but sums may be
// formed in a different order than during the DP, so equality checks are
// tolerant: |a-b| within DefaultAbsTol absolutely or DefaultRelTol relative
// to the larger magnitude.
const (
	DefaultAbsTol = 1e-8
	DefaultRelTol = 1e-5
)

// Rankings is a set of equally optimal total orderings: every ranking in All
// has violation cost Cost. When Truncated is true, more rankings with the
// same cost exist beyond the requested bound; otherwise All is complete.
type Rankings[T comparable] struct {
	Cost      float64
	All       []rank.Ranking[T]
	Truncated bool
}

// Splits is a set of equally optimal head/tail partitions for one head size:
// every split in All has violation cost Cost between its head and its tail.
type Splits[T comparable] struct {
	Cost float64
	All  []rank.Split[T]
}

// Optimum enumerates the optimal rankings and optimal splits encoded in a
// SubsetCosts table.
type Optimum[T comparable] struct {
	costs *SubsetCosts[T]
}

// NewOptimum wraps an existing subset-cost table.
func NewOptimum[T comparable](costs *SubsetCosts[T]) *Optimum[T] {
	return &Optimum[T]{costs: costs}
}

// OptimumOf builds the subset-cost tables of m and wraps them.
func OptimumOf[T comparable](ctx context.Context, m *Matrix[T]) (*Optimum[T], error) {
	costs, err := SubsetCostsOf(ctx, m)
	if err != nil {
		return nil, err
	}
	return NewOptimum(costs), nil
}

// Costs returns the underlying subset-cost table.
func (o *Optimum[T]) Costs() *SubsetCosts[T] { return o.costs }

// RankingsOption tunes Rankings enumeration.
type RankingsOption func(*rankingsConfig)

type rankingsConfig struct {
	maxNum int // < 0 means unbounded
}

// MaxRankings bounds the number of enumerated optimal rankings. When more
// exist the result is truncated to maxNum and flagged. maxNum must be
// non-negative; anything else is a programmer error.
func MaxRankings(maxNum int) RankingsOption {
	if maxNum < 0 {
		panic("condorcet: MaxRankings requires maxNum >= 0")
	}
	return func(cfg *rankingsConfig) { cfg.maxNum = maxNum }
}

// Rankings enumerates all total orderings whose violation cost equals the
// optimum of the full item set.
//
// The enumeration is a depth-first walk over the remaining-set masks: from a
// set S it commits item i as the front of the remaining block iff
// optCost[S] ≈ optCost[S\{i}] + incr[i, S\{i}] under the package tolerances,
// and recurses into S\{i}. With MaxRankings(k), one ranking beyond k is
// sought to decide the Truncated flag.
//
// Complexity: O(n) per emitted ranking on top of the table lookups, with
// recursion depth n.
func (o *Optimum[T]) Rankings(ctx context.Context, opts ...RankingsOption) (Rankings[T], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := rankingsConfig{maxNum: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	limit := -1
	if cfg.maxNum >= 0 {
		limit = cfg.maxNum + 1
	}
	perms, err := o.enumerate(ctx, limit)
	if err != nil {
		return Rankings[T]{}, err
	}

	truncated := false
	if cfg.maxNum >= 0 && len(perms) > cfg.maxNum {
		perms = perms[:cfg.maxNum]
		truncated = true
	}

	all := make([]rank.Ranking[T], len(perms))
	for i, perm := range perms {
		items := make([]T, len(perm))
		for j, idx := range perm {
			items[j] = o.costs.items[idx]
		}
		all[i] = rank.NewRanking(items)
	}
	return Rankings[T]{Cost: o.costs.FullOptimalCost(), All: all, Truncated: truncated}, nil
}

// enumerate walks the optimal-choice tree and collects index permutations,
// top rank first, stopping once limit are found (limit < 0: no bound).
func (o *Optimum[T]) enumerate(ctx context.Context, limit int) ([][]int, error) {
	var (
		perms  [][]int
		prefix = make([]int, 0, o.costs.n)
	)
	var walk func(mask int) (bool, error)
	walk = func(mask int) (bool, error) {
		if mask == 0 {
			perms = append(perms, append([]int(nil), prefix...))
			if err := ctx.Err(); err != nil {
				return false, err
			}
			return limit < 0 || len(perms) < limit, nil
		}
		for sub := mask; sub != 0; sub &= sub - 1 {
			lsb := sub & -sub
			bit := bits.TrailingZeros(uint(lsb))
			prev := mask ^ lsb
			reach := o.costs.OptimalCost(prev) + o.costs.IncrementalCost(bit, prev)
			if !scalar.EqualWithinAbsOrRel(o.costs.OptimalCost(mask), reach, DefaultAbsTol, DefaultRelTol) {
				continue
			}
			prefix = append(prefix, bit)
			more, err := walk(prev)
			prefix = prefix[:len(prefix)-1]
			if err != nil || !more {
				return more, err
			}
		}
		return true, nil
	}
	if _, err := walk(o.costs.size - 1); err != nil {
		return nil, err
	}
	return perms, nil
}

// Splits returns the optimal partitions of the items into a head of the
// given size ranked ahead of the remaining tail: among all masks with
// n−headSize items, those minimising the split cost. Fails with
// ErrInvalidHeadSize when headSize is outside [0, n].
func (o *Optimum[T]) Splits(headSize int) (Splits[T], error) {
	n := o.costs.n
	if headSize < 0 || headSize > n {
		return Splits[T]{}, fmt.Errorf("Splits: head size %d of %d items: %w", headSize, n, ErrInvalidHeadSize)
	}
	tailSize := n - headSize

	minCost := math.Inf(1)
	var tailMasks []int
	for mask := 0; mask < o.costs.size; mask++ {
		if o.costs.maskSizes[mask] != tailSize {
			continue
		}
		cost := o.costs.splitCosts[mask]
		if cost < minCost {
			minCost = cost
			tailMasks = tailMasks[:0]
		}
		if cost == minCost {
			tailMasks = append(tailMasks, mask)
		}
	}

	all := make([]rank.Split[T], len(tailMasks))
	for i, mask := range tailMasks {
		full := o.costs.size - 1
		all[i] = rank.NewSplit(o.costs.MaskToItems(full&^mask), o.costs.MaskToItems(mask))
	}
	return Splits[T]{Cost: minCost, All: all}, nil
}
