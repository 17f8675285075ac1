package agegan

import (
	"math"
	"math/rand"

	"github.com/unixpickle/agegan/facedata"
	"github.com/unixpickle/agegan/layers"
	"github.com/unixpickle/agegan/optim"
	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anynet"
	"github.com/unixpickle/anynet/anysgd"
	"github.com/unixpickle/anyvec"
)

// StepResult summarizes one adversarial training step.
type StepResult struct {
	DiscRealLoss float64
	DiscFakeLoss float64
	GenLoss      float64

	// FakeImages and FakeAges store the synthetic batch
	// produced during the step.
	FakeImages anyvec.Vector
	FakeAges   anyvec.Vector
	Num        int
}

// DiscLoss returns the total discriminator loss.
func (s *StepResult) DiscLoss() float64 {
	return s.DiscRealLoss + s.DiscFakeLoss
}

// FakeSample extracts the i-th synthetic sample.
func (s *StepResult) FakeSample(i int) *facedata.Sample {
	size := s.FakeImages.Len() / s.Num
	return &facedata.Sample{
		Image: s.FakeImages.Slice(i*size, (i+1)*size).Copy(),
		Age:   vectorComponent(s.FakeAges, i),
	}
}

// A Trainer performs adversarial training steps.
type Trainer struct {
	Generator     *Generator
	Discriminator *Discriminator

	GenOpt  *optim.Optimizer
	DiscOpt *optim.Optimizer

	// Cost is applied to discriminator logits.
	// If it is nil, anynet.SigmoidCE is used.
	Cost anynet.Cost

	AgeOffset float64
	Mode      GradientMode

	// Rand is used to sample noise.
	// If it is nil, the global source from math/rand is
	// used.
	Rand *rand.Rand

	discGrad anydiff.Grad
}

// NewTrainer creates a Trainer which updates both
// networks with Adam.
func NewTrainer(g *Generator, d *Discriminator, cfg Config, gen *rand.Rand) *Trainer {
	makeOpt := func(params []*anydiff.Var) *optim.Optimizer {
		return &optim.Optimizer{
			Params:      params,
			Transformer: optim.NewAdam(cfg.Beta1, cfg.Beta2),
			Rater:       anysgd.ConstRater(cfg.LearnRate),
		}
	}
	return &Trainer{
		Generator:     g,
		Discriminator: d,
		GenOpt:        makeOpt(g.Parameters()),
		DiscOpt:       makeOpt(d.Parameters()),
		AgeOffset:     cfg.AgeOffset,
		Mode:          cfg.GradientMode,
		Rand:          gen,
	}
}

// DiscGrad returns the discriminator gradient used by the
// most recent step.
func (t *Trainer) DiscGrad() anydiff.Grad {
	return t.discGrad
}

// Step trains both networks on a batch of real samples.
//
// The discriminator learns to label the real batch 1 and
// a synthetic batch 0, after which the generator learns
// to make the updated discriminator label its synthetic
// batch 1.
//
// If a loss is not finite, a *NumericFault is returned
// and the affected network is not updated.
// The accumulated discriminator gradient is discarded as
// well, so the Trainer may keep stepping after a fault.
func (t *Trainer) Step(b *facedata.Batch, epoch float64) (*StepResult, error) {
	n := b.Num
	c := b.Images.Output().Creator()
	if t.discGrad == nil || t.Mode == ResetGradients {
		t.discGrad = t.DiscOpt.NewGrad()
	}
	res := &StepResult{Num: n}

	realLogits := t.Discriminator.Logits(b.Images, b.Ages, n)
	res.DiscRealLoss = layers.MeanCost(t.cost(), labels(c, n, 1), realLogits, n,
		t.discGrad)

	noise := c.MakeVector(n * t.Generator.NoiseSize)
	anyvec.Rand(noise, anyvec.Normal, t.Rand)
	fakeAges := anydiff.NewConst(AgedAges(b.Ages.Output(), t.AgeOffset))
	fake := t.Generator.Generate(anydiff.NewConst(noise), fakeAges, n)

	frozen := anydiff.NewConst(fake.Output())
	fakeLogits := t.Discriminator.Logits(frozen, fakeAges, n)
	res.DiscFakeLoss = layers.MeanCost(t.cost(), labels(c, n, 0), fakeLogits, n,
		t.discGrad)

	if err := checkFinite("d_loss_real", res.DiscRealLoss); err != nil {
		t.discGrad = nil
		return nil, err
	}
	if err := checkFinite("d_loss_fake", res.DiscFakeLoss); err != nil {
		t.discGrad = nil
		return nil, err
	}
	t.DiscOpt.Step(t.discGrad, epoch)

	genGrad := t.GenOpt.NewGrad()
	if t.Mode == AccumulateGradients {
		for v, vec := range t.discGrad {
			genGrad[v] = vec
		}
	}
	genLogits := t.Discriminator.Logits(fake, fakeAges, n)
	res.GenLoss = layers.MeanCost(t.cost(), labels(c, n, 1), genLogits, n, genGrad)
	if err := checkFinite("g_loss", res.GenLoss); err != nil {
		t.discGrad = nil
		return nil, err
	}
	t.GenOpt.Step(genGrad, epoch)

	res.FakeImages = fake.Output()
	res.FakeAges = fakeAges.Output()
	return res, nil
}

func (t *Trainer) cost() anynet.Cost {
	if t.Cost == nil {
		return anynet.SigmoidCE{}
	}
	return t.Cost
}

// AgedAges adds offset to a copy of ages.
func AgedAges(ages anyvec.Vector, offset float64) anyvec.Vector {
	res := ages.Copy()
	res.AddScalar(res.Creator().MakeNumeric(offset))
	return res
}

func labels(c anyvec.Creator, n int, value float64) *anydiff.Const {
	vec := c.MakeVector(n)
	vec.AddScalar(c.MakeNumeric(value))
	return anydiff.NewConst(vec)
}

func checkFinite(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return &NumericFault{Loss: name, Value: value}
	}
	return nil
}

func vectorComponent(vec anyvec.Vector, i int) float64 {
	switch data := vec.Data().(type) {
	case []float32:
		return float64(data[i])
	case []float64:
		return data[i]
	default:
		panic("unsupported numeric type")
	}
}
