package agegan

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/unixpickle/agegan/facedata"
	"github.com/unixpickle/anyvec/anyvec32"
)

func TestSessionEpoch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Epochs = 1
	cfg.Seed = 1337
	cfg.BatchSize = 16
	cfg.ReportEvery = 1
	list := testDirList(t, 16, cfg.Resolution)
	session, err := NewSession(anyvec32.CurrentCreator(), cfg, list)
	if err != nil {
		t.Fatal(err)
	}
	var reports []*Report
	session.Reporter = ReporterFunc(func(r *Report) {
		reports = append(reports, r)
	})
	if err := session.Run(nil); err != nil {
		t.Fatal(err)
	}

	if session.Trainer.DiscOpt.Steps != 1 || session.Trainer.GenOpt.Steps != 1 {
		t.Errorf("unexpected step counts: %d, %d", session.Trainer.DiscOpt.Steps,
			session.Trainer.GenOpt.Steps)
	}
	res := session.LastStep
	for _, loss := range []float64{res.DiscRealLoss, res.DiscFakeLoss, res.GenLoss} {
		if math.IsNaN(loss) || math.IsInf(loss, 0) {
			t.Errorf("bad loss: %f", loss)
		}
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report but got %d", len(reports))
	}
	r := reports[0]
	if r.Epoch != 1 || r.Batch != 1 || r.NumBatches != 1 {
		t.Errorf("unexpected report position: %+v", r)
	}
	if r.Real.Age != 25 {
		t.Errorf("held-out sample should have age 25 but got %f", r.Real.Age)
	}
	if r.Fake.Age < 55 || r.Fake.Age > 70 {
		t.Errorf("unexpected synthetic age: %f", r.Fake.Age)
	}
}

func TestSessionShortBatch(t *testing.T) {
	list := testDirList(t, 5, testResolution)
	cfg := testConfig()
	cfg.BatchSize = 2
	cfg.Epochs = 2
	cfg.ReportEvery = 2
	session, err := NewSession(anyvec32.CurrentCreator(), cfg, list)
	if err != nil {
		t.Fatal(err)
	}
	var numReports int
	session.Reporter = ReporterFunc(func(r *Report) {
		numReports++
	})
	if err := session.Run(nil); err != nil {
		t.Fatal(err)
	}
	if session.NumBatches() != 3 {
		t.Errorf("expected 3 batches but got %d", session.NumBatches())
	}
	if session.Trainer.GenOpt.Steps != 6 {
		t.Errorf("expected 6 steps but got %d", session.Trainer.GenOpt.Steps)
	}
	if session.LastStep.Num != 1 {
		t.Errorf("last batch should have 1 sample but got %d", session.LastStep.Num)
	}
	if numReports != 2 {
		t.Errorf("expected 2 reports but got %d", numReports)
	}
}

func TestSessionStop(t *testing.T) {
	list := testDirList(t, 4, testResolution)
	session, err := NewSession(anyvec32.CurrentCreator(), testConfig(), list)
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan struct{})
	close(done)
	if err := session.Run(done); err != nil {
		t.Fatal(err)
	}
	if session.Trainer.DiscOpt.Steps != 0 {
		t.Error("training should not start after stop")
	}
}

func TestSessionErrors(t *testing.T) {
	c := anyvec32.CurrentCreator()
	if _, err := NewSession(c, testConfig(), facedata.SliceList{}); err == nil {
		t.Error("expected error for empty list")
	}
	bad := testConfig()
	bad.Resolution = 6
	if _, err := NewSession(c, bad, testDirList(t, 1, testResolution)); err == nil {
		t.Error("expected error for invalid config")
	}
	wrongSize := testConfig()
	wrongSize.Resolution = 12
	if _, err := NewSession(c, wrongSize, testDirList(t, 1, testResolution)); err == nil {
		t.Error("expected error for mismatched resolution")
	}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.NoiseSize = testNoise
	cfg.Resolution = testResolution
	cfg.Epochs = 1
	cfg.Seed = 1337
	return cfg
}

func testDirList(t *testing.T, n, resolution int) *facedata.DirList {
	const size = 8
	dir := t.TempDir()
	for i := 0; i < n; i++ {
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30),
					B: uint8(i * 10), A: 0xff})
			}
		}
		path := filepath.Join(dir, fmt.Sprintf("%d_0_0.jpg", 25+i))
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		err = jpeg.Encode(f, img, nil)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
	}
	transform := &facedata.Transform{
		Creator:    anyvec32.CurrentCreator(),
		Resolution: resolution,
	}
	list, err := facedata.ListDir(dir, transform, facedata.ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	return list
}
