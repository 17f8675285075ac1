package layers

import (
	"math/rand"
	"testing"

	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anynet/anyconv"
	"github.com/unixpickle/anyvec/anyvec64"
)

func TestNewFCSeeded(t *testing.T) {
	c := anyvec64.DefaultCreator{}
	fc1 := NewFC(c, 5, 3, rand.New(rand.NewSource(42)))
	fc2 := NewFC(c, 5, 3, rand.New(rand.NewSource(42)))
	fc3 := NewFC(c, 5, 3, rand.New(rand.NewSource(43)))

	if fc1.InCount != 5 || fc1.OutCount != 3 || fc1.Weights.Vector.Len() != 15 ||
		fc1.Biases.Vector.Len() != 3 {
		t.Fatal("unexpected FC dimensions")
	}
	if !sameData(fc1.Weights, fc2.Weights) {
		t.Error("equal seeds gave different weights")
	}
	if sameData(fc1.Weights, fc3.Weights) {
		t.Error("different seeds gave equal weights")
	}
	for _, x := range fc1.Biases.Vector.Data().([]float64) {
		if x != 0 {
			t.Error("biases should start at zero")
		}
	}
}

func TestInitConvSeeded(t *testing.T) {
	c := anyvec64.DefaultCreator{}
	makeConv := func(seed int64) *anyconv.Conv {
		conv := &anyconv.Conv{
			FilterCount:  2,
			FilterWidth:  3,
			FilterHeight: 3,
			StrideX:      1,
			StrideY:      1,
			InputWidth:   5,
			InputHeight:  5,
			InputDepth:   2,
		}
		InitConv(c, conv, rand.New(rand.NewSource(seed)))
		return conv
	}
	conv1 := makeConv(7)
	conv2 := makeConv(7)
	if conv1.Conver == nil {
		t.Fatal("Conver should be set")
	}
	if conv1.Filters.Vector.Len() != 2*3*3*2 {
		t.Errorf("unexpected filter count: %d", conv1.Filters.Vector.Len())
	}
	if !sameData(conv1.Filters, conv2.Filters) {
		t.Error("equal seeds gave different filters")
	}
}

func sameData(v1, v2 *anydiff.Var) bool {
	d1 := v1.Vector.Data().([]float64)
	d2 := v2.Vector.Data().([]float64)
	if len(d1) != len(d2) {
		return false
	}
	for i, x := range d1 {
		if d2[i] != x {
			return false
		}
	}
	return true
}
