package dataset

import (
	"encoding/csv"
	"errors"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ErrNoValidSamples indicates that a file was read but every row was
// rejected by validation, leaving nothing to fit.
var ErrNoValidSamples = errors.New("dataset: no valid samples")

// Sample is one observed point: independent variable, measured value, and
// measurement uncertainty. Samples are immutable once validated.
type Sample struct {
	X   float64
	Y   float64
	Err float64
}

type Dataset []Sample

// Validator reports whether a parsed row is physically acceptable.
type Validator func(s Sample) bool

// ReadOptions control how a CSV data file is interpreted.
type ReadOptions struct {
	// Comment, when non-zero, causes lines starting with this rune to be
	// skipped entirely.
	Comment rune
	// SkipHeader drops the first row unconditionally.
	SkipHeader bool
	// Validate filters parsed rows; rows it rejects are dropped, never
	// fatal. Nil accepts everything.
	Validate Validator
}

// ReadCSV reads a three-column data file, dropping malformed and invalid
// rows. A row must have at least three fields and all three must parse as
// floats; anything else is excluded rather than reported.
func ReadCSV(path string, opts ReadOptions) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	if opts.Comment != 0 {
		r.Comment = opts.Comment
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	ds := make(Dataset, 0, len(records))
	for i, record := range records {
		if i == 0 && opts.SkipHeader {
			continue
		}
		s, ok := parseRow(record)
		if !ok {
			continue
		}
		if opts.Validate != nil && !opts.Validate(s) {
			continue
		}
		ds = append(ds, s)
	}

	return ds, nil
}

func parseRow(record []string) (Sample, bool) {
	if len(record) < 3 {
		return Sample{}, false
	}
	vals := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
		if err != nil {
			return Sample{}, false
		}
		vals[i] = v
	}
	return Sample{X: vals[0], Y: vals[1], Err: vals[2]}, true
}

// Merge concatenates datasets and sorts the result by the independent
// variable.
func Merge(sets ...Dataset) Dataset {
	var merged Dataset
	for _, ds := range sets {
		merged = append(merged, ds...)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].X < merged[j].X })
	return merged
}

// ScaleX returns a copy of the dataset with every independent variable
// multiplied by factor (e.g. hours to seconds).
func (d Dataset) ScaleX(factor float64) Dataset {
	scaled := make(Dataset, len(d))
	for i, s := range d {
		scaled[i] = Sample{X: s.X * factor, Y: s.Y, Err: s.Err}
	}
	return scaled
}

func (d Dataset) Xs() []float64 {
	xs := make([]float64, len(d))
	for i, s := range d {
		xs[i] = s.X
	}
	return xs
}

func (d Dataset) Ys() []float64 {
	ys := make([]float64, len(d))
	for i, s := range d {
		ys[i] = s.Y
	}
	return ys
}

func (d Dataset) Errs() []float64 {
	errs := make([]float64, len(d))
	for i, s := range d {
		errs[i] = s.Err
	}
	return errs
}

// TransmissionValidator accepts rows of the tunnelling data file: energy
// within the barrier, transmission coefficient within [0, 1], positive
// uncertainty.
func TransmissionValidator(barrierHeight float64) Validator {
	return func(s Sample) bool {
		if !finite(s) {
			return false
		}
		return s.X >= 0 && s.X <= barrierHeight &&
			s.Y >= 0 && s.Y <= 1 &&
			s.Err > 0
	}
}

// ActivityValidator accepts rows of the decay data files: finite values,
// positive uncertainty, percentage uncertainty below 100%.
func ActivityValidator() Validator {
	return func(s Sample) bool {
		if !finite(s) {
			return false
		}
		return s.Err > 0 && s.Err/s.Y < 1
	}
}

func finite(s Sample) bool {
	for _, v := range []float64{s.X, s.Y, s.Err} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
