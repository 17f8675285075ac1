package optim

import (
	"math/rand"
	"testing"

	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anynet/anysgd"
	"github.com/unixpickle/anyvec/anyvec64"
)

func TestOptimizerStep(t *testing.T) {
	owned := anydiff.NewVar(anyvec64.MakeVectorData([]float64{1, 2}))
	other := anydiff.NewVar(anyvec64.MakeVectorData([]float64{5}))

	o := &Optimizer{Params: []*anydiff.Var{owned}, Rater: anysgd.ConstRater(0.5)}
	grad := anydiff.Grad{
		owned: anyvec64.MakeVectorData([]float64{2, -2}),
		other: anyvec64.MakeVectorData([]float64{100}),
	}
	o.Step(grad, 0)

	if o.Steps != 1 {
		t.Errorf("expected 1 step but got %d", o.Steps)
	}
	expected := []float64{0, 3}
	for i, x := range owned.Vector.Data().([]float64) {
		if x != expected[i] {
			t.Errorf("owned %d: expected %f but got %f", i, expected[i], x)
		}
	}
	if other.Vector.Data().([]float64)[0] != 5 {
		t.Error("step modified a parameter it does not own")
	}
	if g := grad[owned].Data().([]float64); g[0] != 2 || g[1] != -2 {
		t.Error("step modified the caller's gradient")
	}
}

func TestOptimizerNewGrad(t *testing.T) {
	v := anydiff.NewVar(anyvec64.MakeVectorData([]float64{1, 2, 3}))
	o := &Optimizer{Params: []*anydiff.Var{v}, Rater: anysgd.ConstRater(1)}
	grad := o.NewGrad()
	if len(grad) != 1 || grad[v].Len() != 3 {
		t.Fatal("unexpected gradient layout")
	}
	for _, x := range grad[v].Data().([]float64) {
		if x != 0 {
			t.Error("gradient should start at zero")
		}
	}
}

type intList []int

func (l intList) Len() int {
	return len(l)
}

func (l intList) Swap(i, j int) {
	l[i], l[j] = l[j], l[i]
}

func (l intList) Slice(i, j int) anysgd.SampleList {
	return append(intList{}, l[i:j]...)
}

func TestShuffleDeterministic(t *testing.T) {
	l1 := intList{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	l2 := append(intList{}, l1...)
	Shuffle(l1, rand.New(rand.NewSource(42)))
	Shuffle(l2, rand.New(rand.NewSource(42)))

	seen := map[int]bool{}
	for i, x := range l1 {
		if l2[i] != x {
			t.Fatal("same seed gave different orders")
		}
		seen[x] = true
	}
	if len(seen) != 10 {
		t.Error("shuffle lost elements")
	}
}
