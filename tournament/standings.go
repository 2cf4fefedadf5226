package tournament

import (
	"context"
	"fmt"

	"github.com/javhar/condorank/condorcet"
	"github.com/javhar/condorank/digraph"
	"github.com/javhar/condorank/rank"
)

// StandingsOption tunes the Standings pipeline.
type StandingsOption func(*standingsConfig)

type standingsConfig struct {
	useTieBreak bool
}

// WithoutTieBreak keeps every equally Kemeny-optimal ordering of a
// component instead of collapsing them with the lexicographic tie-break
// against the overall matrix.
func WithoutTieBreak() StandingsOption {
	return func(cfg *standingsConfig) { cfg.useTieBreak = false }
}

// Standings computes the segmented optimal ranking of the tournament.
//
// The head-to-head win digraph is condensed into strongly connected
// components; their topological order is the coarsest ranking, one segment
// per component. A singleton component becomes a one-item segment. A larger
// component — a Condorcet tangle — is solved by the optimum engine on the
// matrix restricted to the component; when several orderings are optimal and
// the tie-break is enabled, they are scored against the overall matrix and
// only the lexicographically minimal ones are kept.
//
// The product of segment multiplicities equals the number of globally
// optimal total rankings at the chosen tie-break depth.
//
// Sides with no decided head-to-head do not enter the win digraph and are
// absent from the result.
func Standings[Side comparable](
	ctx context.Context,
	t *Tournament[Side],
	opts ...StandingsOption,
) (rank.SegmentedRanking[Side], error) {
	cfg := standingsConfig{useTieBreak: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	builder := rank.NewSegmentedRankingBuilder[Side]()
	h2h := t.H2HDigraph()
	if h2h.Order() == 0 {
		return builder.Build(), nil
	}

	condensed := digraph.Condense(h2h)
	order, err := condensed.TopoSort().Order()
	if err != nil {
		return rank.SegmentedRanking[Side]{}, fmt.Errorf("Standings: %w", err)
	}

	overall, err := matrixOf(t, t.Sides())
	if err != nil {
		return rank.SegmentedRanking[Side]{}, fmt.Errorf("Standings: %w", err)
	}

	for _, component := range order {
		nodes := component.Nodes()
		if len(nodes) == 1 {
			builder.AddItem(nodes[0])
			continue
		}

		segment, err := solveComponent(ctx, t, nodes, overall, cfg.useTieBreak)
		if err != nil {
			return rank.SegmentedRanking[Side]{}, fmt.Errorf("Standings: %w", err)
		}
		builder.AddSegment(segment)
	}
	return builder.Build(), nil
}

// solveComponent runs the Condorcet engine on one strongly connected
// component and returns its permissible orderings.
func solveComponent[Side comparable](
	ctx context.Context,
	t *Tournament[Side],
	nodes []Side,
	overall *condorcet.Matrix[Side],
	useTieBreak bool,
) ([]rank.Ranking[Side], error) {
	restricted, err := matrixOf(t, nodes)
	if err != nil {
		return nil, err
	}
	optimum, err := condorcet.OptimumOf(ctx, restricted)
	if err != nil {
		return nil, err
	}
	rankings, err := optimum.Rankings(ctx)
	if err != nil {
		return nil, err
	}
	if len(rankings.All) == 1 || !useTieBreak {
		return rankings.All, nil
	}

	tieBreak, err := condorcet.TieBreakOf(rankings, overall)
	if err != nil {
		return nil, err
	}
	best, err := tieBreak.Optimum()
	if err != nil {
		return nil, err
	}
	return best.All, nil
}

// matrixOf builds the Condorcet matrix over the given sides with entries
// score(u,v).LHS − score(u,v).RHS, restricted to the listed sides.
func matrixOf[Side comparable](t *Tournament[Side], sides []Side) (*condorcet.Matrix[Side], error) {
	builder, err := condorcet.NewMatrixBuilder(sides)
	if err != nil {
		return nil, err
	}
	for _, duel := range t.Duels() {
		builder.PossiblyAddEntry(duel.LHS, duel.RHS, duel.Score.LHS-duel.Score.RHS)
	}
	return builder.Build(), nil
}
