package agegan

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/unixpickle/agegan/facedata"
	"github.com/unixpickle/agegan/optim"
	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/essentials"
)

// A Session runs a full training loop over a List.
type Session struct {
	Config  Config
	Samples facedata.List
	Fetcher *facedata.Fetcher
	Trainer *Trainer

	// Reporter, if non-nil, is called every
	// Config.ReportEvery batches.
	Reporter Reporter

	// HeldOut is the real sample shown in every report.
	HeldOut *facedata.Sample

	// LastStep is the result of the latest step.
	LastStep *StepResult

	rand *rand.Rand
}

// NewSession creates the networks and optimizers for a
// training run.
//
// The first sample of the list is loaded and kept as the
// real sample for reports.
func NewSession(c anyvec.Creator, cfg Config, samples facedata.List) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, essentials.AddCtx("new session", err)
	}
	if samples.Len() == 0 {
		return nil, errors.New("new session: no samples")
	}
	heldOut, err := samples.GetSample(0)
	if err != nil {
		return nil, essentials.AddCtx("new session", err)
	}
	if heldOut.Image.Len() != imageSize(cfg.Resolution) {
		return nil, fmt.Errorf("new session: sample has %d components but resolution "+
			"%d needs %d", heldOut.Image.Len(), cfg.Resolution, imageSize(cfg.Resolution))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := rand.New(rand.NewSource(seed))

	g := NewGenerator(c, cfg.NoiseSize, cfg.Resolution, gen)
	d := NewDiscriminator(c, cfg.Resolution, cfg.LeakySlope, gen)

	return &Session{
		Config:  cfg,
		Samples: samples,
		Fetcher: &facedata.Fetcher{MaxGos: cfg.Workers},
		Trainer: NewTrainer(g, d, cfg, gen),
		HeldOut: heldOut,
		rand:    gen,
	}, nil
}

// NumBatches returns the number of batches per epoch.
// The last batch may be smaller than the others.
func (s *Session) NumBatches() int {
	return (s.Samples.Len() + s.Config.BatchSize - 1) / s.Config.BatchSize
}

// Run trains for Config.Epochs epochs.
//
// If done is closed, training stops before the next step
// and Run returns nil.
func (s *Session) Run(done <-chan struct{}) error {
	for epoch := 0; epoch < s.Config.Epochs; epoch++ {
		start := time.Now()
		stopped, err := s.runEpoch(epoch, done)
		if err != nil {
			return err
		}
		if stopped {
			log.Println("Training stopped.")
			return nil
		}
		log.Printf("Epoch %d total duration: %.2f seconds", epoch+1,
			time.Since(start).Seconds())
	}
	return nil
}

func (s *Session) runEpoch(epoch int, done <-chan struct{}) (stopped bool, err error) {
	optim.Shuffle(s.Samples, s.rand)
	numBatches := s.NumBatches()
	for i := 0; i < numBatches; i++ {
		select {
		case <-done:
			return true, nil
		default:
		}

		batchStart := time.Now()
		end := essentials.MinInt((i+1)*s.Config.BatchSize, s.Samples.Len())
		sub := s.Samples.Slice(i*s.Config.BatchSize, end).(facedata.List)
		batch, err := s.Fetcher.Fetch(sub)
		if err != nil {
			return false, essentials.AddCtx(fmt.Sprintf("epoch %d batch %d", epoch+1, i+1),
				err)
		}

		progress := float64(epoch) + float64(i)/float64(numBatches)
		res, err := s.Trainer.Step(batch, progress)
		if err != nil {
			return false, essentials.AddCtx(fmt.Sprintf("epoch %d batch %d", epoch+1, i+1),
				err)
		}
		s.LastStep = res

		if (i+1)%s.Config.ReportEvery == 0 {
			log.Printf("Epoch [%d/%d], Batch [%d/%d], d_loss: %.4f, g_loss: %.4f",
				epoch+1, s.Config.Epochs, i+1, numBatches, res.DiscLoss(), res.GenLoss)
			if s.Reporter != nil {
				s.Reporter.Report(&Report{
					Epoch:      epoch + 1,
					NumEpochs:  s.Config.Epochs,
					Batch:      i + 1,
					NumBatches: numBatches,
					Losses:     res,
					Real:       s.HeldOut,
					Fake:       res.FakeSample(0),
				})
			}
		}
		if s.Config.Verbose {
			log.Printf("Batch %d, duration: %.2f seconds", i+1,
				time.Since(batchStart).Seconds())
		}
	}
	return false, nil
}
