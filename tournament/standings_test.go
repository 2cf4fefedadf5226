package tournament_test

import (
	"context"
	"testing"

	"github.com/javhar/condorank/rank"
	"github.com/javhar/condorank/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// votesTournament is the five-voter election with a b/c/d Condorcet tangle
// between a clear winner a and a clear loser e.
func votesTournament(t *testing.T) *tournament.Tournament[string] {
	t.Helper()
	votes := [][]string{
		{"a", "b", "c", "d", "e"},
		{"a", "c", "d", "b", "e"},
		{"a", "d", "b", "c", "e"},
		{"b", "a"},
		{"c", "e"},
	}
	return buildTournament(t, tournament.NewBuilder[string]().AddPaths(votes))
}

func segmentContains(segment []rank.Ranking[string], items []string) bool {
	want := rank.NewRanking(items)
	for _, r := range segment {
		if r.Equal(want) {
			return true
		}
	}
	return false
}

func TestStandings_NoTieBreak(t *testing.T) {
	t.Parallel()

	ranking, err := tournament.Standings(context.Background(), votesTournament(t), tournament.WithoutTieBreak())
	require.NoError(t, err)

	segments := ranking.Segments()
	require.Len(t, segments, 3)

	require.Len(t, segments[0], 1)
	assert.True(t, segmentContains(segments[0], []string{"a"}))

	// The middle tangle keeps all three cyclic rotations.
	require.Len(t, segments[1], 3)
	assert.True(t, segmentContains(segments[1], []string{"b", "c", "d"}))
	assert.True(t, segmentContains(segments[1], []string{"c", "d", "b"}))
	assert.True(t, segmentContains(segments[1], []string{"d", "b", "c"}))

	require.Len(t, segments[2], 1)
	assert.True(t, segmentContains(segments[2], []string{"e"}))

	assert.Equal(t, []int{1, 3, 1}, ranking.Multiplicities())
	assert.Equal(t, 3, ranking.NumRankings())
}

func TestStandings_WithTieBreak(t *testing.T) {
	t.Parallel()

	ranking, err := tournament.Standings(context.Background(), votesTournament(t))
	require.NoError(t, err)

	segments := ranking.Segments()
	require.Len(t, segments, 3)
	assert.True(t, segmentContains(segments[0], []string{"a"}))

	// The tie-break against the overall matrix collapses the tangle.
	require.Len(t, segments[1], 1)
	assert.True(t, segmentContains(segments[1], []string{"b", "c", "d"}))

	assert.True(t, segmentContains(segments[2], []string{"e"}))
	assert.Equal(t, 1, ranking.NumRankings())
}

func TestStandings_TotalOrder(t *testing.T) {
	t.Parallel()

	tour := buildTournament(t, tournament.NewBuilder[string]().
		AddPath([]string{"x", "y", "z"}))
	ranking, err := tournament.Standings(context.Background(), tour)
	require.NoError(t, err)

	require.Equal(t, 3, ranking.NumSegments())
	assert.True(t, ranking.Arbitrary().Equal(rank.NewRanking([]string{"x", "y", "z"})))
}

func TestStandings_EmptyTournament(t *testing.T) {
	t.Parallel()

	tour := buildTournament(t, tournament.NewBuilder[string]())
	ranking, err := tournament.Standings(context.Background(), tour)
	require.NoError(t, err)
	assert.Zero(t, ranking.NumSegments())
}

func TestStandings_AllTiesYieldNoSegments(t *testing.T) {
	t.Parallel()

	// Only drawn duels: the win digraph is empty, so nothing is rankable.
	tour := buildTournament(t, tournament.NewBuilder[string]().
		AddDuel("a", "b", tournament.DuelScore{LHS: 2, RHS: 2}))
	ranking, err := tournament.Standings(context.Background(), tour)
	require.NoError(t, err)
	assert.Zero(t, ranking.NumSegments())
}

func TestStandings_TwoTangles(t *testing.T) {
	t.Parallel()

	// Cycle p>q>r>p ranked wholly above cycle x>y>z>x.
	b := tournament.NewBuilder[string]().
		AddWin("p", "q").AddWin("q", "r").AddWin("r", "p").
		AddWin("x", "y").AddWin("y", "z").AddWin("z", "x")
	for _, upper := range []string{"p", "q", "r"} {
		for _, lower := range []string{"x", "y", "z"} {
			b.AddWin(upper, lower)
		}
	}
	tour := buildTournament(t, b)

	ranking, err := tournament.Standings(context.Background(), tour, tournament.WithoutTieBreak())
	require.NoError(t, err)
	require.Equal(t, 2, ranking.NumSegments())
	assert.Equal(t, []int{3, 3}, ranking.Multiplicities())
	assert.Equal(t, 9, ranking.NumRankings())

	segments := ranking.Segments()
	assert.True(t, segmentContains(segments[0], []string{"p", "q", "r"}))
	assert.True(t, segmentContains(segments[1], []string{"x", "y", "z"}))
}

func TestStandings_Cancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Large enough tangle that the DP actually polls the context.
	b := tournament.NewBuilder[int]()
	const n = 14
	for i := 0; i < n; i++ {
		b.AddWin(i, (i+1)%n)
	}
	tour := buildIntTournament(t, b)
	_, err := tournament.Standings(ctx, tour)
	require.ErrorIs(t, err, context.Canceled)
}

func buildIntTournament(t *testing.T, b *tournament.Builder[int]) *tournament.Tournament[int] {
	t.Helper()
	built, err := b.Build()
	require.NoError(t, err)
	return built
}
