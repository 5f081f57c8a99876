// Package estimate defines the two estimator capabilities the comparison
// pipeline consumes and provides default adapters for both.  The pipeline
// depends only on these contracts, never on estimator internals.
package estimate

import "gonum.org/v1/gonum/mat"

// IncidenceFitter is the nonparametric-estimator capability: fit on the
// observed records for one event of interest, then report the estimated
// cumulative incidence as a step function.
type IncidenceFitter interface {

	// Fit estimates the cumulative incidence of eventOfInterest from the
	// censored records (events use 0 as the censoring marker).
	Fit(durations []float64, events []int, eventOfInterest int) error

	// CumulativeIncidence returns the jump times and post-jump values of
	// the fitted step function.
	CumulativeIncidence() (times, values []float64)
}

// IncidencePredictor is the predictive-estimator capability: fit on
// covariates plus the observed records, then predict a cumulative incidence
// curve for one covariate row on an arbitrary time grid.
type IncidencePredictor interface {
	Fit(x mat.Matrix, durations []float64, events []int) error
	PredictCumulativeIncidence(xrow []float64, grid []float64) ([]float64, error)
}

// BoostingConfig is the configuration surface of the predictive estimator.
// The comparison driver forwards it verbatim and interprets none of it.
type BoostingConfig struct {

	// LearningRate shrinks each boosting step.
	LearningRate float64

	// Iterations is the number of boosting rounds.
	Iterations int

	// MaxLeafNodes bounds the size of each tree.
	MaxLeafNodes int

	// HardZeroFraction is the share of training rows pinned to a zero
	// incidence target at time zero.
	HardZeroFraction float64

	// Loss selects the training objective.
	Loss string

	// EventOfInterest selects the cause whose incidence is modeled.
	EventOfInterest int

	// ShowProgress toggles per-round progress reporting.
	ShowProgress bool

	// Seed fixes the estimator's internal randomness.
	Seed uint64
}

// DefaultBoostingConfig returns the settings used by the canonical
// comparison run.
func DefaultBoostingConfig() BoostingConfig {
	return BoostingConfig{
		LearningRate:     0.03,
		Iterations:       300,
		MaxLeafNodes:     8,
		HardZeroFraction: 0.1,
		Loss:             "ibs",
		EventOfInterest:  1,
		ShowProgress:     false,
		Seed:             0,
	}
}
