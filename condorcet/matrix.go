package condorcet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is an antisymmetric pairwise-preference matrix over an ordered
// tuple of distinct items: M[i,j] = -M[j,i], so the diagonal is zero.
//
// A positive entry M[i,j] > 0 means item i should preferably be ranked ahead
// of item j. A negative entry means |M[i,j]| is the penalty incurred by
// ranking i ahead of j anyway.
//
// Construct through MatrixBuilder, which enforces antisymmetry on every
// write; a built Matrix is immutable.
type Matrix[T comparable] struct {
	items []T
	index map[T]int
	mx    *mat.Dense
}

// Len returns the number of items.
func (m *Matrix[T]) Len() int { return len(m.items) }

// Items returns the items in matrix order.
func (m *Matrix[T]) Items() []T { return append([]T(nil), m.items...) }

// ItemIndex returns the row/column index of item and whether it is present.
func (m *Matrix[T]) ItemIndex(item T) (int, bool) {
	idx, ok := m.index[item]
	return idx, ok
}

// At returns the entry for the pair (lhs, rhs), or ErrUnknownItem when
// either side is not in the matrix.
func (m *Matrix[T]) At(lhs, rhs T) (float64, error) {
	row, ok := m.index[lhs]
	if !ok {
		return 0, fmt.Errorf("At: item %v: %w", lhs, ErrUnknownItem)
	}
	col, ok := m.index[rhs]
	if !ok {
		return 0, fmt.Errorf("At: item %v: %w", rhs, ErrUnknownItem)
	}
	return m.mx.At(row, col), nil
}

// AtIndex returns the entry at row i, column j in matrix order.
func (m *Matrix[T]) AtIndex(i, j int) float64 { return m.mx.At(i, j) }

// Violation returns the violation-penalty matrix max(0, -M): the cost paid
// per pair when the row item is ranked ahead of the column item.
func (m *Matrix[T]) Violation() *mat.Dense {
	n := len(m.items)
	v := mat.NewDense(n, n, nil)
	v.Apply(func(_, _ int, x float64) float64 { return math.Max(0, -x) }, m.mx)
	return v
}

// Borda returns the Borda transform of this matrix.
//
// Each item's Borda count is the sum of its row; the transform's (i,j) entry
// is rowSum(i) + colSum(j), which by antisymmetry equals the difference of
// the two items' Borda counts. The result is again antisymmetric.
func (m *Matrix[T]) Borda() *Matrix[T] {
	n := len(m.items)
	rowSums := make([]float64, n)
	colSums := make([]float64, n)
	for i := 0; i < n; i++ {
		rowSums[i] = floats.Sum(mat.Row(nil, i, m.mx))
		colSums[i] = floats.Sum(mat.Col(nil, i, m.mx))
	}
	b := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			b.Set(i, j, rowSums[i]+colSums[j])
		}
	}
	return &Matrix[T]{items: m.items, index: m.index, mx: b}
}

// Sign returns the elementwise sign of this matrix, with entries in
// {-1, 0, +1}; it is again antisymmetric.
func (m *Matrix[T]) Sign() *Matrix[T] {
	n := len(m.items)
	s := mat.NewDense(n, n, nil)
	s.Apply(func(_, _ int, x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	}, m.mx)
	return &Matrix[T]{items: m.items, index: m.index, mx: s}
}

// MatrixBuilder accumulates pairwise entries for a Matrix. Every write keeps
// the matrix antisymmetric: AddEntry(lhs, rhs, v) sets M[lhs,rhs] = v and
// M[rhs,lhs] = -v. Repeated writes to the same pair overwrite.
type MatrixBuilder[T comparable] struct {
	items []T
	index map[T]int
	mx    *mat.Dense
}

// NewMatrixBuilder starts a builder over the given items. The item order
// fixes the matrix order. Fails with ErrNoItems on an empty list and
// ErrDuplicateItem on repeats.
func NewMatrixBuilder[T comparable](items []T) (*MatrixBuilder[T], error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	index := make(map[T]int, len(items))
	for i, item := range items {
		if _, dup := index[item]; dup {
			return nil, fmt.Errorf("NewMatrixBuilder: item %v: %w", item, ErrDuplicateItem)
		}
		index[item] = i
	}
	return &MatrixBuilder[T]{
		items: append([]T(nil), items...),
		index: index,
		mx:    mat.NewDense(len(items), len(items), nil),
	}, nil
}

// AddEntry sets M[lhs,rhs] = value and M[rhs,lhs] = -value. Fails with
// ErrUnknownItem when either side is not in the item list, and with
// ErrSelfPair when lhs equals rhs.
func (b *MatrixBuilder[T]) AddEntry(lhs, rhs T, value int) error {
	row, ok := b.index[lhs]
	if !ok {
		return fmt.Errorf("AddEntry: item %v: %w", lhs, ErrUnknownItem)
	}
	col, ok := b.index[rhs]
	if !ok {
		return fmt.Errorf("AddEntry: item %v: %w", rhs, ErrUnknownItem)
	}
	if row == col {
		return fmt.Errorf("AddEntry: item %v: %w", lhs, ErrSelfPair)
	}
	b.mx.Set(row, col, float64(value))
	b.mx.Set(col, row, float64(-value))
	return nil
}

// PossiblyAddEntry behaves like AddEntry but silently does nothing when
// either side is unknown or the sides coincide. It is used when restricting
// a larger score set to a subset of items. Returns the builder for chaining.
func (b *MatrixBuilder[T]) PossiblyAddEntry(lhs, rhs T, value int) *MatrixBuilder[T] {
	row, ok := b.index[lhs]
	if !ok {
		return b
	}
	col, ok := b.index[rhs]
	if !ok || row == col {
		return b
	}
	b.mx.Set(row, col, float64(value))
	b.mx.Set(col, row, float64(-value))
	return b
}

// Build produces the immutable Matrix. The builder may keep accumulating;
// later builds see the additional entries.
func (b *MatrixBuilder[T]) Build() *Matrix[T] {
	mx := mat.NewDense(len(b.items), len(b.items), nil)
	mx.Copy(b.mx)
	return &Matrix[T]{items: b.items, index: b.index, mx: mx}
}
