// Command utkface trains an age-conditioned GAN on a
// directory of UTKFace images.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/unixpickle/agegan"
	"github.com/unixpickle/agegan/facedata"
	"github.com/unixpickle/agegan/render"
	"github.com/unixpickle/anynet/anyconv"
	"github.com/unixpickle/anyvec/anyvec32"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/rip"
)

func main() {
	cfg := agegan.DefaultConfig()

	var dataDir string
	var outDir string
	var gradMode string
	var skipInvalid bool
	var parallelConv bool

	flag.StringVar(&dataDir, "data", "UTKFace", "directory of labeled face images")
	flag.StringVar(&outDir, "out", "", "directory for comparison images (empty to disable)")
	flag.StringVar(&gradMode, "grad-mode", cfg.GradientMode.String(),
		"discriminator gradient policy (accumulate or reset)")
	flag.BoolVar(&skipInvalid, "skip-invalid", false, "skip files without an age label")
	flag.BoolVar(&parallelConv, "parallel-conv", false, "parallelize convolutions")
	flag.IntVar(&cfg.NoiseSize, "noise", cfg.NoiseSize, "noise vector size")
	flag.Float64Var(&cfg.AgeOffset, "age-offset", cfg.AgeOffset, "years added to each age")
	flag.IntVar(&cfg.BatchSize, "batch", cfg.BatchSize, "batch size")
	flag.IntVar(&cfg.Epochs, "epochs", cfg.Epochs, "number of epochs")
	flag.Float64Var(&cfg.LearnRate, "step", cfg.LearnRate, "learning rate")
	flag.Float64Var(&cfg.Beta1, "beta1", cfg.Beta1, "Adam first moment decay")
	flag.Float64Var(&cfg.Beta2, "beta2", cfg.Beta2, "Adam second moment decay")
	flag.IntVar(&cfg.ReportEvery, "report", cfg.ReportEvery, "batches between reports")
	flag.IntVar(&cfg.Resolution, "resolution", cfg.Resolution, "image width and height")
	flag.Float64Var(&cfg.LeakySlope, "leaky", cfg.LeakySlope, "leaky ReLU slope")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 for time-based)")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "image decoding goroutines")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "log per-batch durations")
	flag.Parse()

	mode, err := agegan.ParseGradientMode(gradMode)
	if err != nil {
		essentials.Die(err)
	}
	cfg.GradientMode = mode

	if parallelConv {
		anyconv.SetConverMaker(anyconv.MakeParallelConver)
	}

	creator := anyvec32.CurrentCreator()

	log.Println("Listing samples...")
	transform := &facedata.Transform{Creator: creator, Resolution: cfg.Resolution}
	samples, err := facedata.ListDir(dataDir, transform, facedata.ListOptions{
		SkipInvalid: skipInvalid,
	})
	if err != nil {
		essentials.Die(essentials.AddCtx("load samples", err))
	}
	log.Printf("Found %d samples.", samples.Len())

	log.Println("Setting up...")
	session, err := agegan.NewSession(creator, cfg, samples)
	if err != nil {
		essentials.Die(err)
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			essentials.Die(err)
		}
		session.Reporter = &render.PNG{Dir: outDir, Resolution: cfg.Resolution}
	} else {
		session.Reporter = agegan.LogReporter{}
	}

	log.Println("Press ctrl+c once to stop...")
	if err := session.Run(rip.NewRIP().Chan()); err != nil {
		essentials.Die(err)
	}
}
