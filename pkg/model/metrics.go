package model

// Confusion holds the binary confusion counts for 0/1 labels.
type Confusion struct {
	TP, FN int // actual 1
	TN, FP int // actual 0
}

// NewConfusion tallies actual against predicted labels. Any label other than 1
// counts as negative.
func NewConfusion(actual, predicted []int) (Confusion, error) {
	var c Confusion
	if len(actual) != len(predicted) {
		return c, invalidf("%d actual labels but %d predictions", len(actual), len(predicted))
	}
	for i := range actual {
		switch {
		case actual[i] == 1 && predicted[i] == 1:
			c.TP++
		case actual[i] == 1:
			c.FN++
		case predicted[i] == 1:
			c.FP++
		default:
			c.TN++
		}
	}
	return c, nil
}

func (c Confusion) Positives() int { return c.TP + c.FN }
func (c Confusion) Negatives() int { return c.TN + c.FP }
func (c Confusion) Correct() int   { return c.TP + c.TN }
func (c Confusion) Incorrect() int { return c.FN + c.FP }

// Sensitivity is the true positive rate TP / (TP + FN).
func (c Confusion) Sensitivity() (float64, error) {
	if c.Positives() == 0 {
		return 0, &EvaluationError{Metric: "sensitivity", Class: 1}
	}
	return float64(c.TP) / float64(c.Positives()), nil
}

// Specificity is the true negative rate TN / (TN + FP).
func (c Confusion) Specificity() (float64, error) {
	if c.Negatives() == 0 {
		return 0, &EvaluationError{Metric: "specificity", Class: 0}
	}
	return float64(c.TN) / float64(c.Negatives()), nil
}

// Accuracy is the fraction of correct predictions, 0 for no predictions.
func (c Confusion) Accuracy() float64 {
	n := c.Correct() + c.Incorrect()
	if n == 0 {
		return 0
	}
	return float64(c.Correct()) / float64(n)
}

// Sensitivity returns the proportion of actual positives predicted as positive.
func Sensitivity(actual, predicted []int) (float64, error) {
	c, err := NewConfusion(actual, predicted)
	if err != nil {
		return 0, err
	}
	return c.Sensitivity()
}

// Specificity returns the proportion of actual negatives predicted as negative.
func Specificity(actual, predicted []int) (float64, error) {
	c, err := NewConfusion(actual, predicted)
	if err != nil {
		return 0, err
	}
	return c.Specificity()
}

// Evaluate returns sensitivity and specificity together. It fails if either
// class is missing from actual.
func Evaluate(actual, predicted []int) (sensitivity, specificity float64, err error) {
	c, err := NewConfusion(actual, predicted)
	if err != nil {
		return 0, 0, err
	}
	if sensitivity, err = c.Sensitivity(); err != nil {
		return 0, 0, err
	}
	if specificity, err = c.Specificity(); err != nil {
		return 0, 0, err
	}
	return sensitivity, specificity, nil
}
