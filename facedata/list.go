package facedata

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/unixpickle/anynet/anysgd"
	"github.com/unixpickle/essentials"
)

// ListOptions controls which files ListDir accepts.
type ListOptions struct {
	// Extensions lists the accepted file extensions,
	// including the leading dot.
	// Matching is case-insensitive.
	// If empty, only ".jpg" files are listed.
	Extensions []string

	// SkipInvalid makes ListDir log and skip files whose
	// names carry no age, rather than failing.
	SkipInvalid bool
}

// An Entry is a file and the age parsed from its name.
type Entry struct {
	Path string
	Age  float64
}

// A DirList is a List which decodes images lazily, every
// time a sample is requested.
type DirList struct {
	Entries   []Entry
	Transform *Transform
}

// ListDir lists the image files in dir.
//
// Entries are sorted by file name, so that the first
// sample is the same on every run.
// A file whose name carries no age causes a *DataFault,
// unless opts.SkipInvalid is set.
func ListDir(dir string, t *Transform, opts ListOptions) (*DirList, error) {
	listing, err := os.ReadDir(dir)
	if err != nil {
		return nil, essentials.AddCtx("list samples", err)
	}
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".jpg"}
	}
	res := &DirList{Transform: t}
	for _, item := range listing {
		if item.IsDir() || !hasExtension(item.Name(), exts) {
			continue
		}
		path := filepath.Join(dir, item.Name())
		age, err := ParseAge(item.Name())
		if err != nil {
			fault := &DataFault{Path: path, Err: err}
			if !opts.SkipInvalid {
				return nil, fault
			}
			log.Printf("skipping %s: %v", path, err)
			continue
		}
		res.Entries = append(res.Entries, Entry{Path: path, Age: age})
	}
	return res, nil
}

// ParseAge extracts the age from a file name of the form
// "<age>_<other fields>.<ext>".
// The age must be a plain non-negative integer.
func ParseAge(name string) (float64, error) {
	token := strings.SplitN(filepath.Base(name), "_", 2)[0]
	if token == "" {
		return 0, errors.New("missing age token")
	}
	for _, ch := range token {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("parse age: invalid age token %q", token)
		}
	}
	age, err := strconv.Atoi(token)
	if err != nil {
		return 0, essentials.AddCtx("parse age", err)
	}
	return float64(age), nil
}

// Len returns the number of samples.
func (d *DirList) Len() int {
	return len(d.Entries)
}

// Swap swaps two samples.
func (d *DirList) Swap(i, j int) {
	d.Entries[i], d.Entries[j] = d.Entries[j], d.Entries[i]
}

// Slice copies a sub-slice of the list.
// The Transform is shared.
func (d *DirList) Slice(i, j int) anysgd.SampleList {
	return &DirList{
		Entries:   append([]Entry{}, d.Entries[i:j]...),
		Transform: d.Transform,
	}
}

// GetSample decodes and transforms the file at the index.
// Decoding failures are reported as a *DataFault.
func (d *DirList) GetSample(idx int) (*Sample, error) {
	entry := d.Entries[idx]
	img, err := d.Transform.Load(entry.Path)
	if err != nil {
		return nil, &DataFault{Path: entry.Path, Err: err}
	}
	return &Sample{Image: img, Age: entry.Age}, nil
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, x := range exts {
		if strings.ToLower(x) == ext {
			return true
		}
	}
	return false
}
