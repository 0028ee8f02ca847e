package model

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// KNN is a k-nearest-neighbor classifier for 0/1 labels. Training vectors
// are indexed in a k-d tree; distances are Euclidean.
type KNN struct {
	K    int
	dims int
	tree *kdtree.Tree
}

// NewKNN creates and returns a new KNN model.
func NewKNN(k int) *KNN {
	return &KNN{K: k}
}

// TrainModel fits a 1-nearest-neighbor classifier on X and y.
func TrainModel(X [][]float64, y []int) (*KNN, error) {
	m := NewKNN(1)
	if err := m.Fit(X, y); err != nil {
		return nil, err
	}
	return m, nil
}

// Fit indexes the training data. X and y are not modified or retained
// beyond the vectors themselves.
func (m *KNN) Fit(X [][]float64, y []int) error {
	if m.K < 1 {
		return invalidf("k must be at least 1, got %d", m.K)
	}
	if len(X) == 0 {
		return &InvalidInputError{Err: ErrEmpty}
	}
	if len(X) != len(y) {
		return invalidf("%d feature vectors but %d labels", len(X), len(y))
	}
	dims := len(X[0])
	if dims == 0 {
		return invalidf("feature vectors are empty")
	}

	pts := make(samples, len(X))
	for i, x := range X {
		if len(x) != dims {
			return invalidf("vector %d has %d features, want %d", i, len(x), dims)
		}
		if j, ok := nonFinite(x); ok {
			return invalidf("vector %d feature %d is %v", i, j, x[j])
		}
		if y[i] != 0 && y[i] != 1 {
			return invalidf("label %d is %d, want 0 or 1", i, y[i])
		}
		pts[i] = sample{x: x, label: y[i]}
	}

	m.dims = dims
	m.tree = kdtree.New(pts, false)
	return nil
}

// Predict returns the predicted label for each row of X.
func (m *KNN) Predict(X [][]float64) ([]int, error) {
	if m.tree == nil {
		return nil, &InvalidInputError{Err: ErrNotFitted}
	}
	out := make([]int, len(X))
	for i, x := range X {
		if len(x) != m.dims {
			return nil, invalidf("vector %d has %d features, want %d", i, len(x), m.dims)
		}
		if j, ok := nonFinite(x); ok {
			return nil, invalidf("vector %d feature %d is %v", i, j, x[j])
		}
		out[i] = m.predictSingle(x)
	}
	return out, nil
}

// predictSingle labels one point from its K nearest training samples.
func (m *KNN) predictSingle(xi []float64) int {
	q := sample{x: xi}
	if m.K == 1 {
		nearest, _ := m.tree.Nearest(q)
		return nearest.(sample).label
	}

	keeper := kdtree.NewNKeeper(m.K)
	m.tree.NearestSet(keeper, q)

	// The keeper starts with an empty sentinel that survives when the
	// tree holds fewer than K samples.
	votes, n := 0, 0
	for _, c := range keeper.Heap {
		s, ok := c.Comparable.(sample)
		if !ok {
			continue
		}
		votes += s.label
		n++
	}

	// For binary labels (0/1), a simple majority vote determines the prediction.
	if float64(votes)/float64(n) >= 0.5 {
		return 1
	}
	return 0
}

// nonFinite reports the first NaN or infinite element of x.
func nonFinite(x []float64) (int, bool) {
	for j, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return j, true
		}
	}
	return 0, false
}

// sample is a training vector with its label, stored in the k-d tree.
type sample struct {
	x     []float64
	label int
}

func (p sample) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.x[d] - c.(sample).x[d]
}

func (p sample) Dims() int { return len(p.x) }

// Distance returns the squared Euclidean distance, which orders
// neighbors the same way as the Euclidean distance.
func (p sample) Distance(c kdtree.Comparable) float64 {
	return euclidSquared(p.x, c.(sample).x)
}

type samples []sample

func (s samples) Index(i int) kdtree.Comparable         { return s[i] }
func (s samples) Len() int                              { return len(s) }
func (s samples) Pivot(d kdtree.Dim) int                { return plane{Dim: d, samples: s}.Pivot() }
func (s samples) Slice(start, end int) kdtree.Interface { return s[start:end] }

// plane sorts samples along a single dimension for partitioning.
type plane struct {
	kdtree.Dim
	samples
}

func (p plane) Less(i, j int) bool { return p.samples[i].x[p.Dim] < p.samples[j].x[p.Dim] }
func (p plane) Pivot() int         { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.samples = p.samples[start:end]
	return p
}
func (p plane) Swap(i, j int) { p.samples[i], p.samples[j] = p.samples[j], p.samples[i] }

// euclidSquared computes the squared Euclidean distance between two vectors.
func euclidSquared(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
