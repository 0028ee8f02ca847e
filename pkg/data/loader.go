package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

type options struct {
	schema Schema
	log    logrus.FieldLogger
}

// Option configures Load and Read.
type Option func(*options)

// WithLegacySpecialDay reads the SpecialDay feature from the PageValues column.
func WithLegacySpecialDay() Option {
	return func(o *options) { o.schema = SessionSchema(true) }
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.log = l }
}

func newOptions(opts []Option) *options {
	o := &options{schema: SessionSchema(false)}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.log = l
	}
	return o
}

// Load reads the session log at path. The file is closed before Load returns.
func Load(path string, opts ...Option) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer file.Close()

	ds, err := read(bufio.NewReader(file), path, newOptions(opts))
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// Read parses a session log from r.
func Read(r io.Reader, opts ...Option) (*Dataset, error) {
	return read(r, "", newOptions(opts))
}

func read(r io.Reader, path string, o *options) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ParseError{Path: path, Err: ErrMissingHeader}
	}
	if err != nil {
		return nil, csvError(path, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	missing := lo.Filter(o.schema.Columns(), func(col string, _ int) bool {
		_, ok := index[col]
		return !ok
	})
	if len(missing) > 0 {
		return nil, &ParseError{Path: path, Column: missing[0], Err: fmt.Errorf("required column missing (%d missing in total)", len(missing))}
	}

	// Resolve the extraction steps against the header once.
	cols := make([]int, len(o.schema.Fields))
	for i, f := range o.schema.Fields {
		cols[i] = index[f.Column]
	}
	labelCol := index[o.schema.Label]

	ds := &Dataset{Features: o.schema.FeatureNames()}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(path, err)
		}
		line, _ := reader.FieldPos(0)

		x := make([]float64, len(cols))
		for i, f := range o.schema.Fields {
			v, err := f.Kind.Convert(rec[cols[i]])
			if err != nil {
				return nil, &ParseError{Path: path, Line: line, Column: f.Column, Err: err}
			}
			x[i] = v
		}
		ds.Evidence = append(ds.Evidence, x)
		ds.Labels = append(ds.Labels, Flag(rec[labelCol]))
	}

	o.log.WithFields(logrus.Fields{
		"rows":      ds.Len(),
		"positives": ds.Positives(),
		"negatives": ds.Negatives(),
	}).Debug("loaded session log")
	return ds, nil
}

func csvError(path string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &ParseError{Path: path, Line: perr.Line, Err: perr.Err}
	}
	return &ParseError{Path: path, Err: err}
}
