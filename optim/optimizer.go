// Package optim applies gradient descent to independent
// sets of parameters, such as the two networks of a GAN.
package optim

import (
	"fmt"

	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anynet/anysgd"
)

// An Optimizer owns a set of parameters and applies
// gradient descent steps to them.
//
// Each network in a GAN gets its own Optimizer, so that
// one network's step never touches the other network's
// parameters.
type Optimizer struct {
	// Params are the variables updated by Step.
	Params []*anydiff.Var

	// Transformer, if non-nil, is used to transform each
	// gradient before the step.
	Transformer anysgd.Transformer

	// Rater determines the learning rate for each step.
	Rater anysgd.Rater

	// Steps counts the steps applied so far.
	Steps int
}

// NewGrad creates a zero gradient for o.Params.
func (o *Optimizer) NewGrad() anydiff.Grad {
	return anydiff.NewGrad(o.Params...)
}

// Step applies one descent step using the entries of
// grad which belong to o.Params.
//
// The caller keeps ownership of grad; it is not modified,
// so a caller may keep accumulating into it.
// Every parameter must have an entry in grad.
func (o *Optimizer) Step(grad anydiff.Grad, epoch float64) {
	own := anydiff.Grad{}
	for _, p := range o.Params {
		vec, ok := grad[p]
		if !ok {
			panic(fmt.Sprintf("missing gradient for parameter of length %d",
				p.Vector.Len()))
		}
		own[p] = vec.Copy()
	}
	if o.Transformer != nil {
		own = o.Transformer.Transform(own)
	}
	rate := o.Rater.Rate(epoch)
	for _, v := range own {
		v.Scale(v.Creator().MakeNumeric(-rate))
	}
	own.AddToVars()
	o.Steps++
}
