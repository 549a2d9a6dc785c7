package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrRagged       = errors.New("stats: rows have different lengths")
	ErrInvalidRange = errors.New("stats: invalid range")
	ErrZeroFactor   = errors.New("stats: factor must not be zero")
	ErrInvalidAxis  = errors.New("stats: invalid axis")
)

// Axis selects the dimension a helper reduces over.
type Axis int

const (
	// AxisColumns reduces each column, the equivalent of axis 0.
	AxisColumns Axis = iota
	// AxisRows reduces each row, the equivalent of axis 1.
	AxisRows
)

// StdErr returns the standard error of the mean of x, computed from the
// population standard deviation. If ignoreNaN is true NaN values are left
// out, otherwise a single NaN makes the result NaN. The result is NaN when
// no value is left.
func StdErr(x []float64, ignoreNaN bool) float64 {
	if ignoreNaN {
		x = dropNaN(x)
	}
	n := len(x)
	if n == 0 {
		return math.NaN()
	}
	_, variance := stat.PopMeanVariance(x, nil)
	return math.Sqrt(variance) / math.Sqrt(float64(n))
}

// StdErrAxis returns the standard error of each column or row of x. Every
// row must have the same length.
func StdErrAxis(x [][]float64, axis Axis, ignoreNaN bool) ([]float64, error) {
	cols, err := width(x)
	if err != nil {
		return nil, err
	}
	switch axis {
	case AxisRows:
		se := make([]float64, len(x))
		for i, row := range x {
			se[i] = StdErr(row, ignoreNaN)
		}
		return se, nil
	case AxisColumns:
		se := make([]float64, cols)
		col := make([]float64, len(x))
		for j := 0; j < cols; j++ {
			for i, row := range x {
				col[i] = row[j]
			}
			se[j] = StdErr(col, ignoreNaN)
		}
		return se, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalidAxis, axis)
}

// ZScore returns the standard score of each value of x using the mean and
// population standard deviation of the non-NaN values. NaN values stay NaN.
// Every score is NaN if the standard deviation is zero.
func ZScore(x []float64) []float64 {
	out := make([]float64, len(x))
	valid := dropNaN(x)
	if len(valid) == 0 {
		copy(out, x)
		return out
	}
	mean, variance := stat.PopMeanVariance(valid, nil)
	std := math.Sqrt(variance)
	for i, v := range x {
		if std == 0 || math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		out[i] = stat.StdScore(v, mean, std)
	}
	return out
}

// Rescale linearly maps the non-NaN values of x onto [lo, hi], the minimum
// going to lo and the maximum to hi. When every value is equal they all map
// to lo. NaN values stay NaN.
func Rescale(x []float64, lo, hi float64) ([]float64, error) {
	if !(lo < hi) {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, lo, hi)
	}
	out := make([]float64, len(x))
	valid := dropNaN(x)
	if len(valid) == 0 {
		copy(out, x)
		return out, nil
	}
	low, high := floats.Min(valid), floats.Max(valid)
	span := high - low
	for i, v := range x {
		switch {
		case math.IsNaN(v):
			out[i] = v
		case span == 0:
			out[i] = lo
		default:
			out[i] = lo + (v-low)/span*(hi-lo)
		}
	}
	return out, nil
}

// dropNaN returns the values of x that are not NaN. x is returned as is when
// it holds no NaN.
func dropNaN(x []float64) []float64 {
	if !floats.HasNaN(x) {
		return x
	}
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// width returns the common length of the rows of x.
func width(x [][]float64) (int, error) {
	if len(x) == 0 {
		return 0, nil
	}
	n := len(x[0])
	for i, row := range x {
		if len(row) != n {
			return 0, fmt.Errorf("%w: row %d has %d values, want %d", ErrRagged, i, len(row), n)
		}
	}
	return n, nil
}
