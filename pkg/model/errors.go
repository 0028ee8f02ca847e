package model

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty     = errors.New("empty dataset")
	ErrNotFitted = errors.New("model is not fitted")
)

// InvalidInputError reports training or prediction data the model cannot use.
type InvalidInputError struct {
	Reason string
	Err    error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil && e.Reason != "" {
		return fmt.Sprintf("invalid input: %s: %v", e.Reason, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid input: %v", e.Err)
	}
	return "invalid input: " + e.Reason
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

func invalidf(format string, args ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// EvaluationError reports a rate that cannot be computed because the
// reference class never occurs among the actual labels.
type EvaluationError struct {
	Metric string
	Class  int
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("cannot compute %s: no actual labels of class %d", e.Metric, e.Class)
}
