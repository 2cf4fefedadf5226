package condorcet_test

import (
	"context"
	"math"
	"testing"

	"github.com/javhar/condorank/condorcet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// complicatedEntries is the five-item instance with a single optimal ranking
// (C, B, E, A, D) of cost 50, used across the engine tests.
func complicatedEntries() []entry {
	return []entry{
		{"A", "B", -4},
		{"A", "C", 2},
		{"A", "D", 1},
		{"A", "E", -8},
		{"B", "C", -128},
		{"B", "D", -32},
		{"B", "E", 512},
		{"C", "D", -16},
		{"C", "E", 256},
		{"D", "E", -64},
	}
}

// cycleEntries is the five-item cycle A>B>C>D>E>A with cost 3 and exactly
// the five rotations optimal.
func cycleEntries() []entry {
	return []entry{
		{"A", "B", 1},
		{"A", "C", 1},
		{"A", "D", -1},
		{"A", "E", -1},
		{"B", "C", 1},
		{"B", "D", 1},
		{"B", "E", -1},
		{"C", "D", 1},
		{"C", "E", 1},
		{"D", "E", 1},
	}
}

func complicatedCosts(t *testing.T) *condorcet.SubsetCosts[string] {
	t.Helper()
	m := buildMatrix(t, []string{"A", "B", "C", "D", "E"}, complicatedEntries())
	costs, err := condorcet.SubsetCostsOf(context.Background(), m)
	require.NoError(t, err)
	return costs
}

func TestSubsetCosts_Items(t *testing.T) {
	t.Parallel()

	costs := complicatedCosts(t)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, costs.Items())
	assert.Equal(t, 5, costs.NumItems())
	assert.Equal(t, 32, costs.NumMasks())
}

func TestSubsetCosts_SplitCosts(t *testing.T) {
	t.Parallel()

	costs := complicatedCosts(t)
	want := []float64{
		0, 3, 516, 515, 384, 385, 772, 769,
		48, 50, 532, 530, 416, 416, 772, 768,
		72, 67, 76, 67, 200, 193, 76, 65,
		56, 50, 28, 18, 168, 160, 12, 0,
	}
	for mask, expected := range want {
		assert.Equal(t, expected, costs.SplitCost(mask), "mask %#b", mask)
	}
}

func TestSubsetCosts_MaskSizes(t *testing.T) {
	t.Parallel()

	costs := complicatedCosts(t)
	want := []int{
		0, 1, 1, 2, 1, 2, 2, 3,
		1, 2, 2, 3, 2, 3, 3, 4,
		1, 2, 2, 3, 2, 3, 3, 4,
		2, 3, 3, 4, 3, 4, 4, 5,
	}
	for mask, expected := range want {
		assert.Equal(t, expected, costs.MaskSize(mask), "mask %#b", mask)
	}
}

func TestSubsetCosts_IncrementalCost(t *testing.T) {
	t.Parallel()

	costs := complicatedCosts(t)
	// -99 marks the NaN cells: bit is a member of mask.
	want := [][]float64{
		{0, -99, 4, -99, 0, -99, 4, -99, 0, -99, 4, -99, 0, -99, 4, -99, 8, -99, 12, -99, 8, -99, 12, -99, 8, -99, 12, -99, 8, -99, 12, -99},
		{0, 0, -99, -99, 128, 128, -99, -99, 32, 32, -99, -99, 160, 160, -99, -99, 0, 0, -99, -99, 128, 128, -99, -99, 32, 32, -99, -99, 160, 160, -99, -99},
		{0, 2, 0, 2, -99, -99, -99, -99, 16, 18, 16, 18, -99, -99, -99, -99, 0, 2, 0, 2, -99, -99, -99, -99, 16, 18, 16, 18, -99, -99, -99, -99},
		{0, 1, 0, 1, 0, 1, 0, 1, -99, -99, -99, -99, -99, -99, -99, -99, 64, 65, 64, 65, 64, 65, 64, 65, -99, -99, -99, -99, -99, -99, -99, -99},
		{0, 0, 512, 512, 256, 256, 768, 768, 0, 0, 512, 512, 256, 256, 768, 768, -99, -99, -99, -99, -99, -99, -99, -99, -99, -99, -99, -99, -99, -99, -99, -99},
	}
	for bit, row := range want {
		for mask, expected := range row {
			got := costs.IncrementalCost(bit, mask)
			if expected == -99 {
				assert.True(t, math.IsNaN(got), "bit %d mask %#b should be NaN", bit, mask)
			} else {
				assert.Equal(t, expected, got, "bit %d mask %#b", bit, mask)
			}
		}
	}
}

func TestSubsetCosts_OptimalCost(t *testing.T) {
	t.Parallel()

	costs := complicatedCosts(t)
	want := []float64{
		0, 0, 0, 0, 0, 0, 0, 2,
		0, 0, 0, 1, 0, 0, 0, 3,
		0, 0, 0, 0, 0, 2, 0, 2,
		0, 0, 32, 32, 16, 18, 48, 50,
	}
	for mask, expected := range want {
		assert.Equal(t, expected, costs.OptimalCost(mask), "mask %#b", mask)
	}
	assert.Equal(t, 50.0, costs.FullOptimalCost())
}

// DP consistency: optCost[S] never beats any single first-item decomposition
// and always matches at least one.
func TestSubsetCosts_DPConsistency(t *testing.T) {
	t.Parallel()

	costs := complicatedCosts(t)
	for mask := 1; mask < costs.NumMasks(); mask++ {
		matched := false
		for bit := 0; bit < costs.NumItems(); bit++ {
			if mask&(1<<bit) == 0 {
				continue
			}
			prev := mask ^ (1 << bit)
			candidate := costs.OptimalCost(prev) + costs.IncrementalCost(bit, prev)
			assert.LessOrEqual(t, costs.OptimalCost(mask), candidate, "mask %#b bit %d", mask, bit)
			if costs.OptimalCost(mask) == candidate {
				matched = true
			}
		}
		assert.True(t, matched, "no tight decomposition for mask %#b", mask)
	}
}

func TestSubsetCosts_MaskToItems(t *testing.T) {
	t.Parallel()

	costs := complicatedCosts(t)
	assert.Empty(t, costs.MaskToItems(0))
	assert.Equal(t, []string{"A"}, costs.MaskToItems(1))
	assert.Equal(t, []string{"A", "B", "D"}, costs.MaskToItems(11))
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, costs.MaskToItems(31))
}

func TestSubsetCostsOf_TooManyItems(t *testing.T) {
	t.Parallel()

	items := make([]string, condorcet.MaxDPItems+1)
	for i := range items {
		items[i] = string(rune('a' + i))
	}
	builder, err := condorcet.NewMatrixBuilder(items)
	require.NoError(t, err)
	_, err = condorcet.SubsetCostsOf(context.Background(), builder.Build())
	require.ErrorIs(t, err, condorcet.ErrTooManyItems)
}

func TestSubsetCostsOf_Cancellation(t *testing.T) {
	t.Parallel()

	items := make([]string, 16)
	for i := range items {
		items[i] = string(rune('a' + i))
	}
	builder, err := condorcet.NewMatrixBuilder(items)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = condorcet.SubsetCostsOf(ctx, builder.Build())
	require.ErrorIs(t, err, context.Canceled)
}
