package facedata

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anynet/anyconv"
	"github.com/unixpickle/anyvec"
)

// A Transform turns decoded images into fixed-size,
// normalized tensors.
//
// Images are resized to Resolution x Resolution with
// bilinear interpolation, then mapped from [0, 1] to
// [-1, 1] with a per-channel mean and deviation of 0.5.
//
// A Transform may be used from multiple Goroutines.
type Transform struct {
	Creator    anyvec.Creator
	Resolution int

	resizeLock sync.Mutex
	resizers   map[image.Point]*anyconv.Resize
}

// TensorSize returns the number of components in every
// output tensor.
func (t *Transform) TensorSize() int {
	return t.Resolution * t.Resolution * 3
}

// Load decodes an image file and transforms it.
func (t *Transform) Load(path string) (anyvec.Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return t.Apply(img), nil
}

// Apply transforms a decoded image.
func (t *Transform) Apply(img image.Image) anyvec.Vector {
	tensor := anyconv.ImageToTensor(t.Creator, img)
	size := img.Bounds().Size()
	if size.X != t.Resolution || size.Y != t.Resolution {
		resized := t.resizer(size).Apply(anydiff.NewConst(tensor), 1)
		tensor = resized.Output()
	}
	Normalize(tensor)
	return tensor
}

func (t *Transform) resizer(size image.Point) *anyconv.Resize {
	t.resizeLock.Lock()
	defer t.resizeLock.Unlock()
	if t.resizers == nil {
		t.resizers = map[image.Point]*anyconv.Resize{}
	}
	if r, ok := t.resizers[size]; ok {
		return r
	}
	r := &anyconv.Resize{
		Depth:        3,
		InputWidth:   size.X,
		InputHeight:  size.Y,
		OutputWidth:  t.Resolution,
		OutputHeight: t.Resolution,
	}
	t.resizers[size] = r
	return r
}

// Normalize maps a tensor with values in [0, 1] to the
// range [-1, 1] in place, computing (x-0.5)/0.5 for every
// component.
func Normalize(v anyvec.Vector) {
	v.AddScalar(v.Creator().MakeNumeric(-0.5))
	v.Scale(v.Creator().MakeNumeric(2))
}

// Denormalize inverts Normalize in place, computing
// x/2+0.5 for every component.
func Denormalize(v anyvec.Vector) {
	v.Scale(v.Creator().MakeNumeric(0.5))
	v.AddScalar(v.Creator().MakeNumeric(0.5))
}
