package condorcet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/javhar/condorank/rank"
)

// RankingCost returns the violation cost of ranking under m: the sum over
// all ordered pairs (i ahead of j) of max(0, -M[i,j]). Fails with
// ErrUnknownItem when the ranking mentions an item outside the matrix.
func RankingCost[T comparable](ranking rank.Ranking[T], m *Matrix[T]) (float64, error) {
	idxs, err := itemIndices(ranking.Items(), m)
	if err != nil {
		return 0, fmt.Errorf("RankingCost: %w", err)
	}
	if len(idxs) < 2 {
		return 0, nil
	}
	cost := 0.0
	for _, pair := range combin.Combinations(len(idxs), 2) {
		cost += math.Max(0, -m.AtIndex(idxs[pair[0]], idxs[pair[1]]))
	}
	return cost, nil
}

// SplitCost returns the violation cost of the split under m: the sum over
// the Cartesian product of head and tail of max(0, -M[head, tail]). Fails
// with ErrUnknownItem when the split mentions an item outside the matrix.
func SplitCost[T comparable](split rank.Split[T], m *Matrix[T]) (float64, error) {
	headIdxs, err := itemIndices(split.Head(), m)
	if err != nil {
		return 0, fmt.Errorf("SplitCost: %w", err)
	}
	tailIdxs, err := itemIndices(split.Tail(), m)
	if err != nil {
		return 0, fmt.Errorf("SplitCost: %w", err)
	}
	if len(headIdxs) == 0 || len(tailIdxs) == 0 {
		return 0, nil
	}
	cost := 0.0
	for _, pair := range combin.Cartesian([]int{len(headIdxs), len(tailIdxs)}) {
		cost += math.Max(0, -m.AtIndex(headIdxs[pair[0]], tailIdxs[pair[1]]))
	}
	return cost, nil
}

func itemIndices[T comparable](items []T, m *Matrix[T]) ([]int, error) {
	idxs := make([]int, len(items))
	for i, item := range items {
		idx, ok := m.ItemIndex(item)
		if !ok {
			return nil, fmt.Errorf("item %v: %w", item, ErrUnknownItem)
		}
		idxs[i] = idx
	}
	return idxs, nil
}

// TieBreakScore collects four violation scores of one ranking under a
// matrix M, compared lexicographically in field order:
//
//	Kemeny     - total violation cost in M;
//	Borda      - total violation cost in the Borda transform of M;
//	SignKemeny - violation cost in sign(M): the count of strict violations;
//	SignBorda  - violation cost in sign(borda(M)).
type TieBreakScore struct {
	Kemeny     float64
	Borda      float64
	SignKemeny float64
	SignBorda  float64
}

// ScoreOf computes the four scores of ranking under m.
func ScoreOf[T comparable](ranking rank.Ranking[T], m *Matrix[T]) (TieBreakScore, error) {
	borda := m.Borda()
	kemeny, err := RankingCost(ranking, m)
	if err != nil {
		return TieBreakScore{}, err
	}
	bordaCost, err := RankingCost(ranking, borda)
	if err != nil {
		return TieBreakScore{}, err
	}
	signKemeny, err := RankingCost(ranking, m.Sign())
	if err != nil {
		return TieBreakScore{}, err
	}
	signBorda, err := RankingCost(ranking, borda.Sign())
	if err != nil {
		return TieBreakScore{}, err
	}
	return TieBreakScore{
		Kemeny:     kemeny,
		Borda:      bordaCost,
		SignKemeny: signKemeny,
		SignBorda:  signBorda,
	}, nil
}

// Compare orders scores lexicographically by Kemeny, Borda, SignKemeny,
// SignBorda. It returns a negative number when s is better (smaller), zero
// when equal, positive otherwise.
func (s TieBreakScore) Compare(other TieBreakScore) int {
	pairs := [4][2]float64{
		{s.Kemeny, other.Kemeny},
		{s.Borda, other.Borda},
		{s.SignKemeny, other.SignKemeny},
		{s.SignBorda, other.SignBorda},
	}
	for _, p := range pairs {
		switch {
		case p[0] < p[1]:
			return -1
		case p[0] > p[1]:
			return 1
		}
	}
	return 0
}

func (s TieBreakScore) String() string {
	return fmt.Sprintf("TieBreakScore(kemeny=%g, borda=%g, signKemeny=%g, signBorda=%g)",
		s.Kemeny, s.Borda, s.SignKemeny, s.SignBorda)
}
