// Package incidence turns a cause registry into theoretical survival and
// cumulative incidence curves by numerically integrating the hazards over a
// uniform time grid.
package incidence

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// TimeGrid is an ordered sequence of evenly spaced time points starting at 0.
//
// A run uses two independent grids: a fine one for integration and a coarse
// one for reporting.  They are never shared, so integration error stays
// decoupled from plotting resolution.
type TimeGrid struct {
	Points []float64
	Step   float64
}

// NewTimeGrid returns n evenly spaced points from 0 through horizon.
func NewTimeGrid(horizon float64, n int) (TimeGrid, error) {
	if n < 2 {
		return TimeGrid{}, fmt.Errorf("incidence: grid needs at least 2 points, got %d", n)
	}
	if horizon <= 0 {
		return TimeGrid{}, fmt.Errorf("incidence: horizon must be positive, got %v", horizon)
	}
	return TimeGrid{
		Points: floats.Span(make([]float64, n), 0, horizon),
		Step:   horizon / float64(n-1),
	}, nil
}

// Horizon returns the last grid point.
func (g TimeGrid) Horizon() float64 {
	return g.Points[len(g.Points)-1]
}

// StepInterp evaluates a right-continuous step function, given by its jump
// times and post-jump values, at each point of at.  Before the first jump the
// value is 0.  times must be sorted ascending.
func StepInterp(times, values []float64, at []float64) []float64 {
	out := make([]float64, len(at))
	for i, t := range at {
		// Index of the last jump at or before t.
		j := sort.SearchFloat64s(times, t)
		if j < len(times) && times[j] == t {
			j++
		}
		if j == 0 {
			out[i] = 0
			continue
		}
		out[i] = values[j-1]
	}
	return out
}
