package stats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// StandardScaler standardizes each column to zero mean and unit variance
// using statistics learned from the data passed to Fit.
type StandardScaler struct {
	Mean []float64
	Std  []float64
	fit  bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

// Fit records the population mean and standard deviation of every column.
// Columns with zero variance get a standard deviation of 1.
func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return fmt.Errorf("scaler: no rows to fit")
	}
	m, err := dense(X)
	if err != nil {
		return err
	}
	_, c := m.Dims()
	s.Mean = make([]float64, c)
	s.Std = make([]float64, c)
	col := make([]float64, len(X))
	for j := 0; j < c; j++ {
		mat.Col(col, j, m)
		s.Mean[j], s.Std[j] = stat.PopMeanStdDev(col, nil)
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}
	s.fit = true
	return nil
}

// Transform returns a standardized copy of X.
func (s *StandardScaler) Transform(X [][]float64) ([][]float64, error) {
	if !s.fit {
		return nil, fmt.Errorf("scaler: transform before fit")
	}
	if len(X) == 0 {
		return [][]float64{}, nil
	}
	m, err := dense(X)
	if err != nil {
		return nil, err
	}
	if _, c := m.Dims(); c != len(s.Mean) {
		return nil, fmt.Errorf("scaler: got %d columns, fitted on %d", c, len(s.Mean))
	}
	m.Apply(func(_, j int, v float64) float64 {
		return (v - s.Mean[j]) / s.Std[j]
	}, m)

	out := make([][]float64, len(X))
	for i := range out {
		out[i] = m.RawRowView(i)
	}
	return out, nil
}

// FitTransform fits on X and returns X standardized.
func (s *StandardScaler) FitTransform(X [][]float64) ([][]float64, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// dense copies a rectangular [][]float64 into a new matrix.
func dense(X [][]float64) (*mat.Dense, error) {
	r, c := len(X), len(X[0])
	if c == 0 {
		return nil, fmt.Errorf("scaler: rows are empty")
	}
	m := mat.NewDense(r, c, nil)
	for i, row := range X {
		if len(row) != c {
			return nil, fmt.Errorf("scaler: row %d has %d columns, want %d", i, len(row), c)
		}
		m.SetRow(i, row)
	}
	return m, nil
}
