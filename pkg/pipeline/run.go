package pipeline

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/subra9minion/Shopping/pkg/data"
	"github.com/subra9minion/Shopping/pkg/loader"
	"github.com/subra9minion/Shopping/pkg/model"
	"github.com/subra9minion/Shopping/pkg/stats"
)

// Config holds the settings of one train/evaluate run.
type Config struct {
	Path             string
	TestSize         float64 // fraction held out for evaluation
	Seed             *int64  // nil leaves the split unseeded
	Neighbors        int
	Scale            bool // standardize features using training statistics
	LegacySpecialDay bool // read SpecialDay from the PageValues column
	Logger           logrus.FieldLogger
}

// DefaultConfig returns the reference run: 1-NN, 40% test split, unseeded.
func DefaultConfig() Config {
	return Config{
		TestSize:  loader.TestSize,
		Neighbors: 1,
	}
}

// Result is the outcome of a run.
type Result struct {
	Confusion   model.Confusion
	Sensitivity float64
	Specificity float64
	TrainSize   int
	TestSize    int
}

// Run loads the session log, splits it, fits the classifier on the training
// part and evaluates it on the rest.
func Run(cfg Config) (*Result, error) {
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	opts := []data.Option{data.WithLogger(log)}
	if cfg.LegacySpecialDay {
		opts = append(opts, data.WithLegacySpecialDay())
	}
	ds, err := data.Load(cfg.Path, opts...)
	if err != nil {
		return nil, fmt.Errorf("load data: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("load data: %w", err)
	}

	var rng *rand.Rand
	fields := logrus.Fields{"seed": "none"}
	if cfg.Seed != nil {
		rng = loader.NewRand(*cfg.Seed)
		fields["seed"] = *cfg.Seed
	}
	train, test := loader.TrainTestSplit(ds, cfg.TestSize, rng)
	fields["train"], fields["test"] = train.Len(), test.Len()
	log.WithFields(fields).Debug("split dataset")

	prep := NewPipeline()
	if cfg.Scale {
		prep = NewPipeline(stats.NewStandardScaler())
	}
	XTrain, XTest := train.Evidence, test.Evidence
	if prep.Len() > 0 {
		if XTrain, err = prep.FitTransform(train.Evidence); err != nil {
			return nil, fmt.Errorf("preprocess training data: %w", err)
		}
		if XTest, err = prep.Transform(test.Evidence); err != nil {
			return nil, fmt.Errorf("preprocess test data: %w", err)
		}
	}

	knn := model.NewKNN(cfg.Neighbors)
	if err := knn.Fit(XTrain, train.Labels); err != nil {
		return nil, fmt.Errorf("train model: %w", err)
	}
	predictions, err := knn.Predict(XTest)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	log.WithField("k", cfg.Neighbors).Debug("predicted test set")

	conf, err := model.NewConfusion(test.Labels, predictions)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	sensitivity, err := conf.Sensitivity()
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	specificity, err := conf.Specificity()
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	return &Result{
		Confusion:   conf,
		Sensitivity: sensitivity,
		Specificity: specificity,
		TrainSize:   train.Len(),
		TestSize:    test.Len(),
	}, nil
}
