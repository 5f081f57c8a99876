package estimate

import (
	"sort"

	"github.com/kshedden/duration"
)

// censorDist estimates the censoring survival function G by reversing the
// status indicator: censoring becomes the event and every real event becomes
// a censored observation, then the usual Kaplan-Meier applies.
type censorDist struct {
	times []float64
	probs []float64
}

func newCensorDist(durations []float64, events []int) *censorDist {
	tim := make([]float64, len(durations))
	rev := make([]float64, len(durations))
	for i := range durations {
		tim[i] = durations[i]
		if events[i] == 0 {
			rev[i] = 1
		}
	}

	sf := duration.NewSurvfuncRight(survStream(tim, rev), "Time", "Status").Done()

	cd := &censorDist{}
	cd.times = append(cd.times, sf.Time()...)
	cd.probs = append(cd.probs, sf.SurvProb()...)
	return cd
}

// weightFloor bounds the inverse-probability weights: G is clamped below at
// this value so a nearly exhausted risk set cannot blow up a single row.
const weightFloor = 0.05

// at returns G(t-), the probability of remaining uncensored just before t,
// clamped to weightFloor.
func (cd *censorDist) at(t float64) float64 {
	// Index of the first jump at or after t; the left limit is the value
	// after the previous jump.
	j := sort.SearchFloat64s(cd.times, t)
	if j == 0 {
		return 1
	}
	g := cd.probs[j-1]
	if g < weightFloor {
		return weightFloor
	}
	return g
}
