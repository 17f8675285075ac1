// Package facedata loads age-labeled face images and
// packs them into training batches.
//
// Files follow the UTKFace naming convention, where the
// leading underscore-separated token of the file name is
// the age of the pictured person, as in
// "25_0_3_20170119.jpg".
package facedata

import (
	"fmt"

	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anynet/anysgd"
	"github.com/unixpickle/anyvec"
)

// A Sample is one face image and its age label.
//
// The image is a normalized tensor, as produced by a
// Transform, with values in [-1, 1].
type Sample struct {
	Image anyvec.Vector
	Age   float64
}

// A List is an anysgd.SampleList of face samples.
type List interface {
	anysgd.SampleList

	GetSample(idx int) (*Sample, error)
}

// A SliceList is a List with predetermined samples.
type SliceList []*Sample

// Len returns the number of samples.
func (s SliceList) Len() int {
	return len(s)
}

// Swap swaps two samples.
func (s SliceList) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Slice copies a sub-slice of the list.
func (s SliceList) Slice(i, j int) anysgd.SampleList {
	return append(SliceList{}, s[i:j]...)
}

// GetSample returns the sample at the index.
func (s SliceList) GetSample(idx int) (*Sample, error) {
	return s[idx], nil
}

// A Batch stores images and ages in a packed format.
//
// The i-th age belongs to the i-th image.
type Batch struct {
	Images *anydiff.Const
	Ages   *anydiff.Const
	Num    int
}

// A DataFault indicates that a file could not be turned
// into a sample, either because its name carries no age
// or because it could not be decoded.
type DataFault struct {
	Path string
	Err  error
}

// Error returns a message describing the fault.
func (d *DataFault) Error() string {
	return fmt.Sprintf("data fault: %s: %v", d.Path, d.Err)
}

// Unwrap returns the underlying error.
func (d *DataFault) Unwrap() error {
	return d.Err
}
