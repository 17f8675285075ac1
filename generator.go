// Package agegan trains a generative adversarial network
// which synthesizes face images conditioned on an age.
//
// The generator maps noise and a target age to an image.
// The discriminator scores an image together with the age
// it claims to depict.
package agegan

import (
	"fmt"
	"math/rand"

	"github.com/unixpickle/agegan/layers"
	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anynet"
	"github.com/unixpickle/anyvec"
)

const (
	generatorHidden1 = 128
	generatorHidden2 = 256
)

// A Generator produces images from noise vectors and
// target ages.
//
// Each output image is a row-major, depth-minor RGB
// tensor with values in [-1, 1].
type Generator struct {
	NoiseSize  int
	Resolution int

	Mixer anynet.Mixer
	Net   anynet.Net
}

// NewGenerator creates a randomized Generator.
//
// If gen is nil, the global source from math/rand is
// used.
func NewGenerator(c anyvec.Creator, noiseSize, resolution int,
	gen *rand.Rand) *Generator {
	return &Generator{
		NoiseSize:  noiseSize,
		Resolution: resolution,
		Mixer:      anynet.ConcatMixer{},
		Net: anynet.Net{
			layers.NewFC(c, noiseSize+1, generatorHidden1, gen),
			anynet.ReLU,
			layers.NewFC(c, generatorHidden1, generatorHidden2, gen),
			anynet.ReLU,
			layers.NewFC(c, generatorHidden2, imageSize(resolution), gen),
			anynet.Tanh,
		},
	}
}

// ImageSize returns the number of components in each
// generated image.
func (g *Generator) ImageSize() int {
	return imageSize(g.Resolution)
}

// Generate produces a batch of n images.
//
// The noise packs n vectors of NoiseSize components, and
// ages packs n scalars.
func (g *Generator) Generate(noise, ages anydiff.Res, n int) anydiff.Res {
	if noise.Output().Len() != n*g.NoiseSize {
		panic(fmt.Sprintf("noise length should be %d, but got %d",
			n*g.NoiseSize, noise.Output().Len()))
	}
	if ages.Output().Len() != n {
		panic(fmt.Sprintf("expected %d ages but got %d", n, ages.Output().Len()))
	}
	return g.Net.Apply(g.Mixer.Mix(noise, ages, n), n)
}

// Parameters returns the parameters of the network.
func (g *Generator) Parameters() []*anydiff.Var {
	return g.Net.Parameters()
}

func imageSize(resolution int) int {
	return resolution * resolution * 3
}
