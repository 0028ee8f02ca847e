package data

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// ErrLengthMismatch is returned when evidence and labels differ in length.
var ErrLengthMismatch = errors.New("evidence and labels differ in length")

// Dataset holds feature vectors and their labels as parallel slices.
type Dataset struct {
	Evidence [][]float64
	Labels   []int
	Features []string // feature names in vector order
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.Labels) }

// Positives counts samples labelled 1.
func (d *Dataset) Positives() int {
	return lo.Count(d.Labels, 1)
}

// Negatives counts samples labelled 0.
func (d *Dataset) Negatives() int {
	return lo.Count(d.Labels, 0)
}

// Validate checks the parallel-slice invariant and that every vector has
// one value per feature.
func (d *Dataset) Validate() error {
	if len(d.Evidence) != len(d.Labels) {
		return fmt.Errorf("%w: %d vectors, %d labels", ErrLengthMismatch, len(d.Evidence), len(d.Labels))
	}
	if len(d.Features) == 0 {
		return nil
	}
	for i, x := range d.Evidence {
		if len(x) != len(d.Features) {
			return fmt.Errorf("sample %d has %d values, want %d", i, len(x), len(d.Features))
		}
	}
	return nil
}

// Subset returns a dataset built from the samples at idx, in that order.
// Vectors are shared with d.
func (d *Dataset) Subset(idx []int) *Dataset {
	out := &Dataset{
		Evidence: make([][]float64, len(idx)),
		Labels:   make([]int, len(idx)),
		Features: d.Features,
	}
	for i, j := range idx {
		out.Evidence[i] = d.Evidence[j]
		out.Labels[i] = d.Labels[j]
	}
	return out
}
