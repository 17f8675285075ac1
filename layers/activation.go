// Package layers extends anynet with the layers and
// helpers the age GAN needs: a leaky rectifier, seeded
// initializers, strided downsampling blocks, and mean cost
// propagation.
package layers

import "github.com/unixpickle/anydiff"

// LeakyReLU is a rectifier which lets negative inputs
// through, scaled by Slope.
//
// It computes max(x, 0) + Slope*min(x, 0).
type LeakyReLU struct {
	Slope float64
}

// Apply applies the activation function.
func (l *LeakyReLU) Apply(in anydiff.Res, n int) anydiff.Res {
	c := in.Output().Creator()
	return anydiff.Pool(in, func(in anydiff.Res) anydiff.Res {
		// x*slope + (1-slope)*max(x, 0)
		return anydiff.Add(
			anydiff.Scale(in, c.MakeNumeric(l.Slope)),
			anydiff.Scale(anydiff.ClipPos(in), c.MakeNumeric(1-l.Slope)),
		)
	})
}
