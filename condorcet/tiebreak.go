package condorcet

import (
	"fmt"

	"github.com/javhar/condorank/rank"
	"github.com/javhar/condorank/stats"
)

// TieBreak pairs a set of equally optimal rankings with their TieBreakScore
// under a matrix, typically the overall tournament matrix rather than the
// restricted one the rankings were optimised against. The Truncated flag of
// the input ranking set is carried through.
//
// Construct with TieBreakOf; the value is immutable.
type TieBreak[T comparable] struct {
	rankings  []rank.Ranking[T]
	scores    []TieBreakScore
	truncated bool
}

// TieBreakOf scores every ranking of rankings under m.
func TieBreakOf[T comparable](rankings Rankings[T], m *Matrix[T]) (*TieBreak[T], error) {
	tb := &TieBreak[T]{
		rankings:  append([]rank.Ranking[T](nil), rankings.All...),
		scores:    make([]TieBreakScore, len(rankings.All)),
		truncated: rankings.Truncated,
	}
	for i, ranking := range tb.rankings {
		score, err := ScoreOf(ranking, m)
		if err != nil {
			return nil, fmt.Errorf("TieBreakOf: %w", err)
		}
		tb.scores[i] = score
	}
	return tb, nil
}

// Rankings returns the scored rankings in input order.
func (tb *TieBreak[T]) Rankings() []rank.Ranking[T] {
	return append([]rank.Ranking[T](nil), tb.rankings...)
}

// Scores returns the scores aligned with Rankings.
func (tb *TieBreak[T]) Scores() []TieBreakScore {
	return append([]TieBreakScore(nil), tb.scores...)
}

// Truncated reports whether the scored ranking set was truncated.
func (tb *TieBreak[T]) Truncated() bool { return tb.truncated }

// Optimum returns the rankings whose TieBreakScore is lexicographically
// minimal. Several rankings may remain lex-equal on all four criteria; all
// of them are returned. The result's Cost is the winners' Kemeny score and
// the Truncated flag is carried over. Fails with ErrNoRankings on an empty
// set.
func (tb *TieBreak[T]) Optimum() (Rankings[T], error) {
	acc := stats.NewArgMinMax[rank.Ranking[T], TieBreakScore](TieBreakScore.Compare)
	for i, ranking := range tb.rankings {
		acc.Process(ranking, tb.scores[i])
	}
	snap := acc.Snapshot()
	if snap.Count == 0 {
		return Rankings[T]{}, fmt.Errorf("Optimum: %w", ErrNoRankings)
	}
	return Rankings[T]{
		Cost:      snap.Min.Kemeny,
		All:       snap.ArgMin,
		Truncated: tb.truncated,
	}, nil
}
