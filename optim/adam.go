package optim

import (
	"math"

	"github.com/unixpickle/anynet/anysgd"
)

// NewAdam creates an anysgd.Adam with the given decay
// rates.
//
// anysgd.Adam replaces a zero decay rate with its
// default, so a zero rate is stored as the smallest
// positive float64, which behaves exactly like zero.
func NewAdam(beta1, beta2 float64) *anysgd.Adam {
	return &anysgd.Adam{
		DecayRate1: explicitRate(beta1),
		DecayRate2: explicitRate(beta2),
	}
}

func explicitRate(beta float64) float64 {
	if beta == 0 {
		return math.SmallestNonzeroFloat64
	}
	return beta
}
