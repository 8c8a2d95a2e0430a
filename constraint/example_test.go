package constraint_test

import (
	"fmt"

	"github.com/katalvlaran/cobs/bspline"
	"github.com/katalvlaran/cobs/constraint"
)

// ExampleBuild stacks a monotone block and a pointwise pin into one
// inequality system over the spline coefficients.
func ExampleBuild() {
	knots := []float64{0, 0, 0, 0, 0, 1, 2, 2, 2, 2, 2}
	basis, err := bspline.New(knots, 4)
	if err != nil {
		fmt.Println("basis:", err)
		return
	}

	sys, err := constraint.Build(basis, 0, 2, []constraint.Constraint{
		constraint.NewMonotone(true),
		constraint.NewPointwise(1, 0.5, constraint.OpEqual),
	})
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	fmt.Printf("rows: %d, coefficients: %d\n", sys.Len(), sys.A.Cols())
	// Output:
	// rows: 102, coefficients: 6
}
