package lagrange

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// ResidualStats summarizes the absolute residuals |f(x_i) - y_i| of a
// function against a set of samples. Interpolants reproduce their own sample
// points up to rounding, so these numbers measure floating point error, not
// fit quality; for points the interpolant was not built from they measure
// both.
type ResidualStats struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// Residuals evaluates f at every x and returns statistics over the absolute
// residuals against y. It returns an error if the slices differ in length or
// are empty.
func Residuals(f func(float64) float64, x, y []float64) (ResidualStats, error) {
	if len(x) != len(y) {
		return ResidualStats{}, fmt.Errorf("cannot Residuals: %d x values for %d y values", len(x), len(y))
	}
	if len(x) == 0 {
		return ResidualStats{}, fmt.Errorf("cannot Residuals: no samples")
	}

	res := make([]float64, len(x))
	for i := range x {
		r := f(x[i]) - y[i]
		if r < 0 {
			r = -r
		}
		res[i] = r
	}

	var s ResidualStats
	var err error
	if s.Min, err = stats.Min(res); err != nil {
		return ResidualStats{}, err
	}
	if s.Max, err = stats.Max(res); err != nil {
		return ResidualStats{}, err
	}
	if s.Mean, err = stats.Mean(res); err != nil {
		return ResidualStats{}, err
	}
	if s.Median, err = stats.Median(res); err != nil {
		return ResidualStats{}, err
	}
	if s.StdDev, err = stats.StandardDeviation(res); err != nil {
		return ResidualStats{}, err
	}
	return s, nil
}

func (s ResidualStats) String() string {
	return fmt.Sprintf("min=%.3e max=%.3e mean=%.3e median=%.3e std=%.3e",
		s.Min, s.Max, s.Mean, s.Median, s.StdDev)
}
