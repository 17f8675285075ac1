package layers

import (
	"math"
	"math/rand"

	"github.com/unixpickle/anynet"
	"github.com/unixpickle/anynet/anyconv"
	"github.com/unixpickle/anyvec"
)

// NewFC creates an anynet.FC whose weights are drawn
// from gen, using the same variance as anynet.NewFC.
//
// If gen is nil, the global source from math/rand is
// used.
func NewFC(c anyvec.Creator, in, out int, gen *rand.Rand) *anynet.FC {
	res := anynet.NewFCZero(c, in, out)
	anyvec.Rand(res.Weights.Vector, anyvec.Normal, gen)
	res.Weights.Vector.Scale(c.MakeNumeric(1 / math.Sqrt(float64(in))))
	return res
}

// InitConv initializes a convolutional layer with filters
// drawn from gen, using the same variance as
// anyconv.Conv.InitRand.
// The Conver is set as well.
//
// If gen is nil, the global source from math/rand is
// used.
func InitConv(c anyvec.Creator, conv *anyconv.Conv, gen *rand.Rand) {
	conv.InitZero(c)
	fanIn := conv.FilterWidth * conv.FilterHeight * conv.InputDepth
	anyvec.Rand(conv.Filters.Vector, anyvec.Normal, gen)
	conv.Filters.Vector.Scale(c.MakeNumeric(1 / math.Sqrt(float64(fanIn))))
}
