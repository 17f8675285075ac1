package agegan

import (
	"log"

	"github.com/unixpickle/agegan/facedata"
)

// A Report describes the state of training at a
// reporting interval.
type Report struct {
	// Epoch and Batch are 1-based.
	Epoch      int
	NumEpochs  int
	Batch      int
	NumBatches int

	Losses *StepResult

	// Real is a fixed real sample, and Fake is the first
	// synthetic sample of the latest batch.
	Real *facedata.Sample
	Fake *facedata.Sample
}

// A Reporter is notified periodically during training.
type Reporter interface {
	Report(r *Report)
}

// ReporterFunc is a Reporter which calls a function.
type ReporterFunc func(r *Report)

// Report calls f(r).
func (f ReporterFunc) Report(r *Report) {
	f(r)
}

// LogReporter logs the ages of each report's samples.
type LogReporter struct{}

// Report logs the real and synthetic ages.
func (l LogReporter) Report(r *Report) {
	log.Printf("real age: %.0f, synthetic age: %.0f", r.Real.Age, r.Fake.Age)
}
