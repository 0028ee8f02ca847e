package loader

import (
	"math"
	"math/rand"

	"github.com/subra9minion/Shopping/pkg/data"
)

// TestSize is the fraction of samples held out for evaluation.
const TestSize = 0.4

// NewRand returns a source seeded with seed. Any value, zero included,
// gives a reproducible split; pass a nil *rand.Rand to TrainTestSplit for
// an unseeded one.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// TrainTestSplit shuffles ds and splits it into train and test sets.
// The test set holds ceil(n*testRatio) samples. A nil rng uses the global
// generator, so the split differs between runs.
func TrainTestSplit(ds *data.Dataset, testRatio float64, rng *rand.Rand) (train, test *data.Dataset) {
	n := ds.Len()
	indices := permutation(n, rng)
	nTest := TestCount(n, testRatio)
	return ds.Subset(indices[nTest:]), ds.Subset(indices[:nTest])
}

// TestCount returns the size of the test partition for n samples.
func TestCount(n int, testRatio float64) int {
	if testRatio <= 0 {
		return 0
	}
	if testRatio >= 1 {
		return n
	}
	return int(math.Ceil(float64(n) * testRatio))
}

func permutation(n int, rng *rand.Rand) []int {
	if rng == nil {
		return rand.Perm(n)
	}
	return rng.Perm(n)
}
