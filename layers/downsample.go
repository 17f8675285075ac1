package layers

import (
	"math/rand"

	"github.com/unixpickle/anynet"
	"github.com/unixpickle/anynet/anyconv"
	"github.com/unixpickle/anyvec"
)

// A DownsampleSpec describes a zero-padded, strided
// convolution over square windows.
type DownsampleSpec struct {
	InputWidth  int
	InputHeight int
	InputDepth  int

	FilterCount int
	FilterSize  int
	Stride      int
	Padding     int
}

// OutputWidth returns the width of the output tensor.
func (d *DownsampleSpec) OutputWidth() int {
	return convOutputSize(d.InputWidth+2*d.Padding, d.FilterSize, d.Stride)
}

// OutputHeight returns the height of the output tensor.
func (d *DownsampleSpec) OutputHeight() int {
	return convOutputSize(d.InputHeight+2*d.Padding, d.FilterSize, d.Stride)
}

// OutputSize returns the number of components in each
// output tensor.
func (d *DownsampleSpec) OutputSize() int {
	return d.OutputWidth() * d.OutputHeight() * d.FilterCount
}

// NewDownsampler creates a randomized anyconv.Padding and
// anyconv.Conv pair implementing d.
// When the padding is 0, the Padding layer is omitted.
//
// If gen is nil, the global source from math/rand is
// used.
func NewDownsampler(c anyvec.Creator, d DownsampleSpec, gen *rand.Rand) anynet.Net {
	var res anynet.Net
	if d.Padding > 0 {
		res = append(res, &anyconv.Padding{
			InputWidth:    d.InputWidth,
			InputHeight:   d.InputHeight,
			InputDepth:    d.InputDepth,
			PaddingTop:    d.Padding,
			PaddingRight:  d.Padding,
			PaddingBottom: d.Padding,
			PaddingLeft:   d.Padding,
		})
	}
	conv := &anyconv.Conv{
		FilterCount:  d.FilterCount,
		FilterWidth:  d.FilterSize,
		FilterHeight: d.FilterSize,
		StrideX:      d.Stride,
		StrideY:      d.Stride,
		InputWidth:   d.InputWidth + 2*d.Padding,
		InputHeight:  d.InputHeight + 2*d.Padding,
		InputDepth:   d.InputDepth,
	}
	InitConv(c, conv, gen)
	return append(res, conv)
}

func convOutputSize(in, filter, stride int) int {
	res := 1 + (in-filter)/stride
	if res < 0 {
		return 0
	}
	return res
}
