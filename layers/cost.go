package layers

import (
	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anynet"
	"github.com/unixpickle/anyvec"
)

// MeanCost evaluates c and back-propagates the mean of
// its per-element costs into grad.
// It returns the mean cost.
//
// Gradients are added to whatever grad already holds.
// If grad is empty, nothing is propagated.
func MeanCost(c anynet.Cost, desired, actual anydiff.Res, n int, grad anydiff.Grad) float64 {
	cost := c.Cost(desired, actual, n)
	upstream := cost.Output().Creator().MakeVector(cost.Output().Len())
	upstream.AddScalar(upstream.Creator().MakeNumeric(1 / float64(n)))
	mean := Sum(cost.Output()) / float64(n)
	if len(grad) > 0 {
		cost.Propagate(upstream, grad)
	}
	return mean
}

// Sum adds up the components of a vector.
//
// The numeric type must be float32 or float64; other
// types sum to 0.
func Sum(vec anyvec.Vector) float64 {
	switch data := vec.Data().(type) {
	case []float32:
		var sum float32
		for _, x := range data {
			sum += x
		}
		return float64(sum)
	case []float64:
		var sum float64
		for _, x := range data {
			sum += x
		}
		return sum
	default:
		return 0
	}
}
