// Package render writes training reports as images.
package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/unixpickle/agegan"
	"github.com/unixpickle/agegan/facedata"
	"github.com/unixpickle/anynet/anyconv"
	"github.com/unixpickle/essentials"
)

// PNG is an agegan.Reporter which saves the real and
// synthetic samples of each report side by side.
type PNG struct {
	// Dir is the output directory.
	Dir string

	// Resolution is the width and height of each sample.
	Resolution int
}

// Report writes the report's comparison image.
// Failures are logged, not returned.
func (p *PNG) Report(r *agegan.Report) {
	if _, err := p.Write(r); err != nil {
		log.Println("render:", err)
	}
}

// Write saves the comparison image for r and returns its
// path.
func (p *PNG) Write(r *agegan.Report) (string, error) {
	img := SideBySide(p.Resolution, r)
	path := filepath.Join(p.Dir, Filename(r))
	f, err := os.Create(path)
	if err != nil {
		return "", essentials.AddCtx("write report", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", essentials.AddCtx("write report", err)
	}
	return path, nil
}

// Filename returns the name of the image for a report.
func Filename(r *agegan.Report) string {
	return fmt.Sprintf("epoch%03d_batch%05d_real%.0f_fake%.0f.png", r.Epoch, r.Batch,
		r.Real.Age, r.Fake.Age)
}

// SideBySide places the real sample on the left and the
// synthetic sample on the right.
func SideBySide(resolution int, r *agegan.Report) image.Image {
	res := image.NewRGBA(image.Rect(0, 0, resolution*2, resolution))
	for i, sample := range []*facedata.Sample{r.Real, r.Fake} {
		tensor := sample.Image.Copy()
		facedata.Denormalize(tensor)
		sub := anyconv.TensorToImage(resolution, resolution, tensor)
		dest := image.Rect(i*resolution, 0, (i+1)*resolution, resolution)
		draw.Draw(res, dest, sub, image.Point{}, draw.Src)
	}
	return res
}
