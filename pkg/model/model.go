package model

// Classifier is a supervised binary classifier over dense feature vectors.
type Classifier interface {
	Fit(X [][]float64, y []int) error
	Predict(X [][]float64) ([]int, error)
}

var _ Classifier = (*KNN)(nil)
