package loader

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subra9minion/Shopping/pkg/data"
)

func indexed(n int) *data.Dataset {
	ds := &data.Dataset{Features: []string{"id"}}
	for i := 0; i < n; i++ {
		ds.Evidence = append(ds.Evidence, []float64{float64(i)})
		ds.Labels = append(ds.Labels, i%2)
	}
	return ds
}

func TestTestCount(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0},
		{1, 1},
		{3, 2},
		{10, 4},
		{11, 5},
		{12330, 4932},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TestCount(tt.n, TestSize), "n=%d", tt.n)
	}
	assert.Equal(t, 0, TestCount(5, 0))
	assert.Equal(t, 5, TestCount(5, 1))
}

func TestTrainTestSplitPartitions(t *testing.T) {
	ds := indexed(25)
	train, test := TrainTestSplit(ds, TestSize, NewRand(7))

	assert.Equal(t, 10, test.Len())
	assert.Equal(t, 15, train.Len())
	require.NoError(t, train.Validate())
	require.NoError(t, test.Validate())

	var ids []int
	for _, part := range []*data.Dataset{train, test} {
		for i, x := range part.Evidence {
			id := int(x[0])
			assert.Equal(t, id%2, part.Labels[i], "label must follow its vector")
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	for i, id := range ids {
		assert.Equal(t, i, id)
	}
}

func TestTrainTestSplitSeeded(t *testing.T) {
	ds := indexed(50)
	trainA, testA := TrainTestSplit(ds, TestSize, NewRand(42))
	trainB, testB := TrainTestSplit(ds, TestSize, NewRand(42))
	assert.Equal(t, trainA.Evidence, trainB.Evidence)
	assert.Equal(t, testA.Labels, testB.Labels)
}

func TestTrainTestSplitLeavesInputUntouched(t *testing.T) {
	ds := indexed(20)
	TrainTestSplit(ds, TestSize, nil)
	for i, x := range ds.Evidence {
		assert.Equal(t, float64(i), x[0])
	}
}

func TestNewRandZeroIsReproducible(t *testing.T) {
	ds := indexed(30)
	trainA, testA := TrainTestSplit(ds, TestSize, NewRand(0))
	trainB, testB := TrainTestSplit(ds, TestSize, NewRand(0))
	assert.Equal(t, trainA.Evidence, trainB.Evidence)
	assert.Equal(t, testA.Evidence, testB.Evidence)
}
