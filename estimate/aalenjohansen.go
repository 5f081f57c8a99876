package estimate

import (
	"fmt"

	"github.com/kshedden/dstream/dstream"
	"github.com/kshedden/duration"
)

// AalenJohansen estimates a cause's cumulative incidence from censored
// competing-risks records.  The all-cause Kaplan-Meier survival and risk
// sets come from the duration package; this adapter only accumulates the
// per-cause increments S(t-) * d_k(t) / n(t) over the distinct event times.
type AalenJohansen struct {
	times  []float64
	values []float64
	se     []float64
}

// NewAalenJohansen returns an unfitted estimator.
func NewAalenJohansen() *AalenJohansen {
	return &AalenJohansen{}
}

// survStream wraps time and status columns in the columnar form the
// duration package consumes.
func survStream(time, status []float64) dstream.Dstream {
	var z [][]interface{}
	z = append(z, []interface{}{time})
	z = append(z, []interface{}{status})
	return dstream.NewFromArrays(z, []string{"Time", "Status"})
}

// Fit estimates the cumulative incidence of eventOfInterest.
func (aj *AalenJohansen) Fit(durations []float64, events []int, eventOfInterest int) error {
	if len(durations) != len(events) {
		return fmt.Errorf("estimate: %d durations but %d events", len(durations), len(events))
	}
	if len(durations) == 0 {
		return fmt.Errorf("estimate: no records")
	}

	// All-cause status: any event counts as a death for the overall
	// survival curve; only censored records are 0.
	tim := make([]float64, len(durations))
	status := make([]float64, len(durations))
	for i := range durations {
		tim[i] = durations[i]
		if events[i] != 0 {
			status[i] = 1
		}
	}

	sf := duration.NewSurvfuncRight(survStream(tim, status), "Time", "Status").Done()
	times := sf.Time()
	nrisk := sf.NumRisk()
	sp := sf.SurvProb()
	spse := sf.SurvProbSE()

	// Count events of the cause of interest at each distinct event time.
	dk := make(map[float64]float64)
	for i := range durations {
		if events[i] == eventOfInterest {
			dk[durations[i]]++
		}
	}

	aj.times = make([]float64, len(times))
	aj.values = make([]float64, len(times))
	aj.se = make([]float64, len(times))
	copy(aj.times, times)
	copy(aj.se, spse)

	cum := 0.0
	sprev := 1.0
	for i, t := range times {
		cum += sprev * dk[t] / nrisk[i]
		aj.values[i] = cum
		sprev = sp[i]
	}

	return nil
}

// CumulativeIncidence returns the fitted step function: jump times and
// post-jump values.
func (aj *AalenJohansen) CumulativeIncidence() (times, values []float64) {
	return aj.times, aj.values
}

// StdErr returns the standard errors of the underlying all-cause survival
// estimate at the jump times, aligned with CumulativeIncidence.  It is a
// rough scale for the estimation noise, not a full incidence variance.
func (aj *AalenJohansen) StdErr() []float64 {
	return aj.se
}
