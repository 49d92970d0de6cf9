package mlc_test

import (
	"fmt"

	"github.com/katalvlaran/bmad/dataset"
	"github.com/katalvlaran/bmad/mlc"
)

// ExampleTransformer fits four labels into two latent labels and expands a
// latent prediction back.
func ExampleTransformer() {
	ds, _ := dataset.FromRows([][]float64{
		{1, 1, 0, 0, 0.1},
		{1, 1, 0, 0, 0.2},
		{0, 0, 1, 1, 0.8},
		{0, 0, 1, 1, 0.9},
	}, 4)

	tr := mlc.NewTransformer()
	train, _ := tr.Fit(ds, 2, 0.5)
	fmt.Println("training columns:", train.NumLabels(), "latent +", train.NumFeatures(), "feature")

	row, _ := tr.TransformInstance([]float64{0, 0, 0, 0, 0.15})
	fmt.Println("prediction row:", row)

	y, _ := tr.Reconstruct([]float64{0.1, 0.7})
	fmt.Println("labels:", y)
	// Output:
	// training columns: 2 latent + 1 feature
	// prediction row: [NaN NaN 0.15]
	// labels: [0 0 1 1]
}
