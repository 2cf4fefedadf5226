package condorcet_test

import (
	"context"
	"fmt"

	"github.com/javhar/condorank/condorcet"
)

// ExampleOptimum_Rankings finds the unique optimal ordering of a small
// pairwise-preference instance.
func ExampleOptimum_Rankings() {
	builder, err := condorcet.NewMatrixBuilder([]string{"A", "B", "C"})
	if err != nil {
		fmt.Println(err)
		return
	}
	// B beats A, A beats C, B beats C.
	_ = builder.AddEntry("A", "B", -2)
	_ = builder.AddEntry("A", "C", 1)
	_ = builder.AddEntry("B", "C", 3)

	opt, err := condorcet.OptimumOf(context.Background(), builder.Build())
	if err != nil {
		fmt.Println(err)
		return
	}
	rankings, err := opt.Rankings(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(rankings.Cost)
	for _, r := range rankings.All {
		fmt.Println(r)
	}
	// Output:
	// 0
	// Ranking(B, A, C)
}

// ExampleOptimum_Splits picks the best single winner of a three-way cycle.
func ExampleOptimum_Splits() {
	builder, err := condorcet.NewMatrixBuilder([]string{"A", "B", "C"})
	if err != nil {
		fmt.Println(err)
		return
	}
	// A beats B strongly, B beats C, C barely beats A.
	_ = builder.AddEntry("A", "B", 4)
	_ = builder.AddEntry("B", "C", 2)
	_ = builder.AddEntry("C", "A", 1)

	opt, err := condorcet.OptimumOf(context.Background(), builder.Build())
	if err != nil {
		fmt.Println(err)
		return
	}
	splits, err := opt.Splits(1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(splits.Cost)
	for _, s := range splits.All {
		fmt.Println(s)
	}
	// Output:
	// 1
	// Split(head={A}, tail={B, C})
}
