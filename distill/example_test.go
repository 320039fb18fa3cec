package distill_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/qdistill/circuit"
	"github.com/katalvlaran/qdistill/distill"
)

// ExampleRun distills a noiseless entangled pair. Without noise the
// acceptance rate is exactly one and the output matches the ideal.
func ExampleRun() {
	res, err := distill.Run(context.Background(), circuit.BBPSSW, 0, 2000,
		distill.WithSeed(11))
	if err != nil {
		fmt.Println("run failed:", err)
		return
	}

	fmt.Printf("success=%.2f high_fidelity=%t\n",
		res.SuccessRate, res.FidelityEstimate > 0.99)
	// Output: success=1.00 high_fidelity=true
}

// ExampleTheory prints the closed-form prediction for the 15-to-1 code
// at one percent input noise.
func ExampleTheory() {
	pred, err := distill.Theory(circuit.Magic15Ring, 0.01)
	if err != nil {
		fmt.Println("theory failed:", err)
		return
	}

	fmt.Printf("err=%.1e success=%.3f\n", pred.OutputErrorRate, pred.PredictedSuccess)
	// Output: err=3.5e-05 success=0.754
}
