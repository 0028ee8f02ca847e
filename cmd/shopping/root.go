package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/subra9minion/Shopping/pkg/pipeline"
	"github.com/subra9minion/Shopping/pkg/report"
)

// UsageError is returned for a malformed command line.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := pipeline.DefaultConfig()
	var (
		seed     int64
		plotPath string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "shopping <path-to-csv>",
		Short: "Predict purchases from shopping session logs with a nearest-neighbor classifier",
		Long: "shopping trains a k-nearest-neighbor classifier on a random 60% of the sessions in\n" +
			"the given CSV file and reports how well it predicts purchases on the remaining 40%.\n" +
			"The split is unseeded unless --seed is given, so results vary between runs.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &UsageError{Err: fmt.Errorf("expected exactly 1 argument, got %d", len(args))}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Path = args[0]
			if cmd.Flags().Changed("seed") {
				cfg.Seed = &seed
			}
			cfg.Logger = newLogger(stderr, verbose).WithField("run", uuid.NewString())

			res, err := pipeline.Run(cfg)
			if err != nil {
				return err
			}

			summary := report.Summary{
				Confusion:   res.Confusion,
				Sensitivity: res.Sensitivity,
				Specificity: res.Specificity,
			}
			if err := report.Write(cmd.OutOrStdout(), summary); err != nil {
				return err
			}
			if plotPath != "" {
				if err := report.SavePlot(summary, plotPath); err != nil {
					return err
				}
				cfg.Logger.WithField("path", plotPath).Info("saved plot")
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	flags := cmd.Flags()
	flags.Int64Var(&seed, "seed", 0, "Seed for a reproducible train/test split (unseeded when omitted)")
	flags.IntVarP(&cfg.Neighbors, "neighbors", "k", cfg.Neighbors, "Number of neighbors that vote on a prediction")
	flags.BoolVar(&cfg.Scale, "scale", false, "Standardize features using training set statistics")
	flags.BoolVar(&cfg.LegacySpecialDay, "legacy-special-day", false, "Read SpecialDay from the PageValues column (compatibility with earlier results)")
	flags.StringVar(&plotPath, "plot", "", "Save a chart of the confusion counts to this file (png, svg, pdf)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.WarnLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}
