package agegan

import (
	"errors"
	"fmt"
	"strings"
)

// GradientMode determines how the discriminator gradient
// is managed across training steps.
type GradientMode int

const (
	// AccumulateGradients never clears the discriminator
	// gradient: every step adds the real pass, the fake
	// pass and the generator pass into one running sum,
	// and each discriminator step applies that sum.
	AccumulateGradients GradientMode = iota

	// ResetGradients clears the discriminator gradient at
	// the start of every step, so each discriminator step
	// only applies the real and fake passes of that step.
	ResetGradients
)

// ParseGradientMode parses "accumulate" or "reset".
func ParseGradientMode(s string) (GradientMode, error) {
	switch strings.ToLower(s) {
	case "accumulate":
		return AccumulateGradients, nil
	case "reset":
		return ResetGradients, nil
	default:
		return 0, fmt.Errorf("unknown gradient mode: %s", s)
	}
}

// String returns the name accepted by ParseGradientMode.
func (g GradientMode) String() string {
	switch g {
	case AccumulateGradients:
		return "accumulate"
	case ResetGradients:
		return "reset"
	default:
		return fmt.Sprintf("GradientMode(%d)", int(g))
	}
}

// Config captures the knobs of a training run.
type Config struct {
	// NoiseSize is the dimensionality of the generator's
	// noise input.
	NoiseSize int

	// AgeOffset is added to every real age to obtain the
	// age the generator is conditioned on.
	AgeOffset float64

	BatchSize int
	Epochs    int

	// LearnRate, Beta1 and Beta2 configure the Adam
	// optimizers of both networks.
	LearnRate float64
	Beta1     float64
	Beta2     float64

	// ReportEvery is the number of batches between
	// progress reports.
	ReportEvery int

	// Resolution is the width and height of every image.
	// It must be divisible by 4.
	Resolution int

	// LeakySlope is the negative slope of the
	// discriminator's leaky rectifiers.
	LeakySlope float64

	// Seed seeds parameter initialization, shuffling and
	// noise.
	// If it is 0, a time-based seed is used.
	Seed int64

	GradientMode GradientMode

	// Workers limits the goroutines used to decode
	// images.
	// If it is 0, GOMAXPROCS is used.
	Workers int

	// Verbose enables per-batch timing logs.
	Verbose bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		NoiseSize:    100,
		AgeOffset:    30,
		BatchSize:    16,
		Epochs:       10,
		LearnRate:    0.0002,
		Beta1:        0.5,
		Beta2:        0.999,
		ReportEvery:  50,
		Resolution:   64,
		LeakySlope:   0.2,
		GradientMode: AccumulateGradients,
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.NoiseSize <= 0 {
		return fmt.Errorf("noise size must be > 0 (got %d)", c.NoiseSize)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be > 0 (got %d)", c.BatchSize)
	}
	if c.Epochs < 0 {
		return fmt.Errorf("epochs must be >= 0 (got %d)", c.Epochs)
	}
	if c.LearnRate <= 0 {
		return fmt.Errorf("learning rate must be > 0 (got %f)", c.LearnRate)
	}
	if c.Beta1 < 0 || c.Beta1 >= 1 || c.Beta2 < 0 || c.Beta2 >= 1 {
		return fmt.Errorf("betas must be in [0, 1) (got %f, %f)", c.Beta1, c.Beta2)
	}
	if c.ReportEvery <= 0 {
		return fmt.Errorf("report interval must be > 0 (got %d)", c.ReportEvery)
	}
	if c.Resolution <= 0 || c.Resolution%4 != 0 {
		return fmt.Errorf("resolution must be a positive multiple of 4 (got %d)",
			c.Resolution)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", c.Workers)
	}
	if c.GradientMode != AccumulateGradients && c.GradientMode != ResetGradients {
		return fmt.Errorf("invalid gradient mode: %v", c.GradientMode)
	}
	return nil
}
