package facedata

import (
	"errors"
	"fmt"

	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/essentials"
)

// A Fetcher loads the samples of a List and packs them
// into a Batch.
type Fetcher struct {
	// MaxGos specifies the maximum goroutines to use
	// simultaneously for loading samples.
	// If it is 0, GOMAXPROCS is used.
	MaxGos int
}

// Fetch produces a *Batch containing every sample in l,
// in order.
// The list may not be empty, and every image must have
// the same number of components.
func (f *Fetcher) Fetch(l List) (*Batch, error) {
	if l.Len() == 0 {
		return nil, errors.New("fetch batch: empty batch")
	}

	samples := make([]*Sample, l.Len())
	errs := make([]error, l.Len())
	essentials.ConcurrentMap(f.MaxGos, l.Len(), func(i int) {
		samples[i], errs[i] = l.GetSample(i)
	})
	for _, err := range errs {
		if err != nil {
			return nil, essentials.AddCtx("fetch batch", err)
		}
	}
	return Pack(samples)
}

// Pack joins samples into a Batch, preserving their
// order.
func Pack(samples []*Sample) (*Batch, error) {
	if len(samples) == 0 {
		return nil, errors.New("pack batch: empty batch")
	}
	c := samples[0].Image.Creator()
	images := make([]anyvec.Vector, len(samples))
	ages := make([]float64, len(samples))
	for i, s := range samples {
		if s.Image.Len() != samples[0].Image.Len() {
			return nil, fmt.Errorf("pack batch: sample %d has %d components, expected %d",
				i, s.Image.Len(), samples[0].Image.Len())
		}
		images[i] = s.Image
		ages[i] = s.Age
	}
	return &Batch{
		Images: anydiff.NewConst(c.Concat(images...)),
		Ages:   anydiff.NewConst(c.MakeVectorData(c.MakeNumericList(ages))),
		Num:    len(samples),
	}, nil
}
