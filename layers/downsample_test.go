package layers

import (
	"testing"

	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/anyvec/anyvec32"
)

func TestDownsamplerHalves(t *testing.T) {
	for _, size := range []int{4, 8, 64} {
		ds := DownsampleSpec{
			InputWidth:  size,
			InputHeight: size,
			InputDepth:  3,
			FilterCount: 5,
			FilterSize:  4,
			Stride:      2,
			Padding:     1,
		}
		if ds.OutputWidth() != size/2 || ds.OutputHeight() != size/2 {
			t.Errorf("size %d: expected %dx%d output but got %dx%d", size, size/2,
				size/2, ds.OutputWidth(), ds.OutputHeight())
		}

		net := NewDownsampler(anyvec32.CurrentCreator(), ds, nil)
		if len(net) != 2 {
			t.Fatalf("expected padding and conv but got %d layers", len(net))
		}
		for _, batch := range []int{1, 3} {
			in := anyvec32.MakeVector(size * size * 3 * batch)
			anyvec.Rand(in, anyvec.Normal, nil)
			out := net.Apply(anydiff.NewConst(in), batch).Output()
			if out.Len() != ds.OutputSize()*batch {
				t.Errorf("size %d batch %d: expected %d outputs but got %d", size,
					batch, ds.OutputSize()*batch, out.Len())
			}
		}
	}
}

func TestDownsamplerNoPadding(t *testing.T) {
	ds := DownsampleSpec{
		InputWidth:  6,
		InputHeight: 6,
		InputDepth:  2,
		FilterCount: 3,
		FilterSize:  2,
		Stride:      2,
	}
	net := NewDownsampler(anyvec32.CurrentCreator(), ds, nil)
	if len(net) != 1 {
		t.Fatalf("expected a lone conv but got %d layers", len(net))
	}
	if len(net.Parameters()) != 2 {
		t.Errorf("expected 2 parameters but got %d", len(net.Parameters()))
	}
}
