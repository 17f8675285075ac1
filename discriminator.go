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
	discFilters1   = 32
	discFilters2   = 64
	discFilterSize = 4
	discAgeEmbed   = 128
)

// A Discriminator estimates the probability that an
// image is a real face of the given age.
type Discriminator struct {
	Resolution int

	// Image extracts features from the images.
	Image anynet.Net

	// Age embeds each age into a feature vector.
	Age *anynet.FC

	Mixer  anynet.Mixer
	Output *anynet.FC
}

// NewDiscriminator creates a randomized Discriminator.
// The resolution must be divisible by 4.
//
// If gen is nil, the global source from math/rand is
// used.
func NewDiscriminator(c anyvec.Creator, resolution int, leakySlope float64,
	gen *rand.Rand) *Discriminator {
	if resolution%4 != 0 {
		panic(fmt.Sprintf("resolution %d is not divisible by 4", resolution))
	}
	first := layers.DownsampleSpec{
		InputWidth:  resolution,
		InputHeight: resolution,
		InputDepth:  3,
		FilterCount: discFilters1,
		FilterSize:  discFilterSize,
		Stride:      2,
		Padding:     1,
	}
	second := layers.DownsampleSpec{
		InputWidth:  first.OutputWidth(),
		InputHeight: first.OutputHeight(),
		InputDepth:  discFilters1,
		FilterCount: discFilters2,
		FilterSize:  discFilterSize,
		Stride:      2,
		Padding:     1,
	}

	var imageNet anynet.Net
	imageNet = append(imageNet, layers.NewDownsampler(c, first, gen)...)
	imageNet = append(imageNet, &layers.LeakyReLU{Slope: leakySlope})
	imageNet = append(imageNet, layers.NewDownsampler(c, second, gen)...)
	imageNet = append(imageNet, &layers.LeakyReLU{Slope: leakySlope})

	return &Discriminator{
		Resolution: resolution,
		Image:      imageNet,
		Age:        layers.NewFC(c, 1, discAgeEmbed, gen),
		Mixer:      anynet.ConcatMixer{},
		Output:     layers.NewFC(c, second.OutputSize()+discAgeEmbed, 1, gen),
	}
}

// Logits computes one pre-sigmoid score per image.
//
// The images pack n image tensors, and ages packs n
// scalars.
func (d *Discriminator) Logits(images, ages anydiff.Res, n int) anydiff.Res {
	if images.Output().Len() != n*imageSize(d.Resolution) {
		panic(fmt.Sprintf("images length should be %d, but got %d",
			n*imageSize(d.Resolution), images.Output().Len()))
	}
	if ages.Output().Len() != n {
		panic(fmt.Sprintf("expected %d ages but got %d", n, ages.Output().Len()))
	}
	features := d.Image.Apply(images, n)
	embedded := d.Age.Apply(ages, n)
	return d.Output.Apply(d.Mixer.Mix(features, embedded, n), n)
}

// Discriminate computes the probability of each image
// being real.
func (d *Discriminator) Discriminate(images, ages anydiff.Res, n int) anydiff.Res {
	return anydiff.Sigmoid(d.Logits(images, ages, n))
}

// Parameters returns the image network's parameters,
// followed by the age embedding's and the output layer's.
func (d *Discriminator) Parameters() []*anydiff.Var {
	return anynet.AllParameters(d.Image, d.Age, d.Output)
}
