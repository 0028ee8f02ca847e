package pipeline

// Transformer interface for fit/transform pattern.
type Transformer interface {
	Fit(X [][]float64) error
	Transform(X [][]float64) ([][]float64, error)
}

// Pipeline chains multiple transformers.
type Pipeline struct {
	steps []Transformer
}

func NewPipeline(steps ...Transformer) *Pipeline {
	return &Pipeline{steps: steps}
}

// Len returns the number of steps.
func (p *Pipeline) Len() int { return len(p.steps) }

// FitTransform fits every step on the output of the previous one and
// returns the fully transformed X.
func (p *Pipeline) FitTransform(X [][]float64) ([][]float64, error) {
	for _, step := range p.steps {
		if err := step.Fit(X); err != nil {
			return nil, err
		}
		var err error
		if X, err = step.Transform(X); err != nil {
			return nil, err
		}
	}
	return X, nil
}

func (p *Pipeline) Transform(X [][]float64) ([][]float64, error) {
	for _, step := range p.steps {
		var err error
		if X, err = step.Transform(X); err != nil {
			return nil, err
		}
	}
	return X, nil
}
