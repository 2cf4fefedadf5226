package condorcet

import (
	"context"
	"fmt"
	"math"
	"math/bits"

	"gonum.org/v1/gonum/mat"

	"github.com/javhar/condorank/bitmask"
)

const (
	// MaxDPItems bounds the subset DP size: the tables take 8·n·2ⁿ bytes.
	MaxDPItems = 30

	// cancelStride controls how often the O(n·2ⁿ) loops poll the context:
	// every stride-th step, a power of two minus one used as a mask.
	cancelStride = 1023
)

// SubsetCosts holds the incremental-cost and optimal-cost structure of a
// Matrix over all 2ⁿ item subsets.
//
// A mask encodes a subset S of the items as an integer bit vector. The
// incremental cost of item i against a mask S with i ∉ S is the total
// violation penalty of placing i ahead of every member of S; for i ∈ S the
// entry is NaN, meaning "undefined". The split cost of S is the penalty of
// placing the complement of S ahead of S. The optimal cost of S is the
// minimum violation penalty over all orderings of S alone.
//
// These tables drive Optimum, which enumerates the optimal rankings and
// splits. Construct with SubsetCostsOf; the value is immutable.
type SubsetCosts[T comparable] struct {
	items      []T
	n          int
	size       int       // 1 << n
	inc        []float64 // inc[bit*size+mask], NaN iff bit ∈ mask
	splitCosts []float64
	maskSizes  []int
	optCosts   []float64
}

// SubsetCostsOf builds the subset-cost tables of m.
//
// The incremental table is filled per item by least-significant-bit peel:
// incr[i, S] = incr[i, S\lsb] + V[i, lsb] with V the violation matrix. The
// derived split, size and optimal tables are computed eagerly so the
// returned value answers every query without further allocation.
//
// Fails with ErrTooManyItems when m has more than MaxDPItems items, and with
// ctx.Err() when cancelled mid-build.
//
// Complexity: O(n·2ⁿ) time and memory.
func SubsetCostsOf[T comparable](ctx context.Context, m *Matrix[T]) (*SubsetCosts[T], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	n := m.Len()
	if n > MaxDPItems {
		return nil, fmt.Errorf("SubsetCostsOf: %d items: %w", n, ErrTooManyItems)
	}
	size := 1 << n
	viol := m.Violation()

	inc := make([]float64, n*size)
	step := 0
	for i := 0; i < n; i++ {
		row := mat.Row(nil, i, viol)
		base := i * size
		bit := 1 << i
		for mask := 1; mask < size; mask++ {
			if step++; step&cancelStride == 0 {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
			}
			if mask&bit != 0 {
				inc[base+mask] = math.NaN()
				continue
			}
			lsb := mask & -mask
			inc[base+mask] = inc[base+(mask^lsb)] + row[bits.TrailingZeros(uint(lsb))]
		}
	}

	sc := &SubsetCosts[T]{items: m.Items(), n: n, size: size, inc: inc}
	if err := sc.derive(ctx); err != nil {
		return nil, err
	}
	return sc, nil
}

// derive fills the split-cost, mask-size and optimal-cost tables from the
// incremental table.
func (s *SubsetCosts[T]) derive(ctx context.Context) error {
	s.splitCosts = make([]float64, s.size)
	s.maskSizes = make([]int, s.size)
	s.optCosts = make([]float64, s.size)

	step := 0
	for mask := 0; mask < s.size; mask++ {
		s.maskSizes[mask] = bits.OnesCount(uint(mask))
		// Sum over the items outside the mask; entries inside are NaN.
		total := 0.0
		for i := 0; i < s.n; i++ {
			if mask&(1<<i) == 0 {
				total += s.inc[i*s.size+mask]
			}
		}
		s.splitCosts[mask] = total
		if step++; step&cancelStride == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}

	// optCost[S] = min over i ∈ S of optCost[S\{i}] + incr[i, S\{i}]: pick
	// the first item i of the ordering; the remainder orders S\{i} optimally
	// behind it and i pays its violations against every other member.
	for mask := 1; mask < s.size; mask++ {
		best := math.Inf(1)
		for sub := mask; sub != 0; sub &= sub - 1 {
			lsb := sub & -sub
			prev := mask ^ lsb
			cost := s.optCosts[prev] + s.inc[bits.TrailingZeros(uint(lsb))*s.size+prev]
			if cost < best {
				best = cost
				if best == 0 {
					break
				}
			}
		}
		s.optCosts[mask] = best
		if step++; step&cancelStride == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

// NumItems returns the number of items n.
func (s *SubsetCosts[T]) NumItems() int { return s.n }

// NumMasks returns the number of subsets, 2ⁿ.
func (s *SubsetCosts[T]) NumMasks() int { return s.size }

// Items returns the items in matrix order.
func (s *SubsetCosts[T]) Items() []T { return append([]T(nil), s.items...) }

// IncrementalCost returns the penalty of placing the item at bit ahead of
// the items in mask, or NaN when bit is a member of mask.
func (s *SubsetCosts[T]) IncrementalCost(bit, mask int) float64 {
	return s.inc[bit*s.size+mask]
}

// SplitCost returns the penalty paid to arrange the items of mask after the
// items outside mask.
func (s *SubsetCosts[T]) SplitCost(mask int) float64 { return s.splitCosts[mask] }

// MaskSize returns the number of items in mask.
func (s *SubsetCosts[T]) MaskSize(mask int) int { return s.maskSizes[mask] }

// OptimalCost returns the minimal penalty paid to arrange the items of mask.
func (s *SubsetCosts[T]) OptimalCost(mask int) float64 { return s.optCosts[mask] }

// FullOptimalCost returns the minimal penalty over orderings of all items.
func (s *SubsetCosts[T]) FullOptimalCost() float64 { return s.optCosts[s.size-1] }

// MaskToItems returns the items encoded by mask, in matrix order.
func (s *SubsetCosts[T]) MaskToItems(mask int) []T {
	idxs := bitmask.Indices(uint(mask))
	items := make([]T, len(idxs))
	for i, idx := range idxs {
		items[i] = s.items[idx]
	}
	return items
}
