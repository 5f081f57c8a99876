// Package compare orchestrates one full validation run: generate a censored
// competing-risks dataset, integrate the theoretical curves, invoke the
// estimator collaborators, and align everything on shared grids.
package compare

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/glemaitre/hazardous/competing"
	"github.com/glemaitre/hazardous/estimate"
	"github.com/glemaitre/hazardous/incidence"
)

// Default grid resolutions.  The fine grid feeds the integrator; see the
// Integrate doc for why it must stay fine.  The coarse grid is for
// reporting only.
const (
	DefaultFinePoints   = 100000
	DefaultCoarsePoints = 100
)

// Driver runs the comparison pipeline.  Zero values fall back to the
// documented defaults; NewFitter defaults to the Aalen-Johansen adapter and
// a nil NewPredictor skips the boosting comparison.
type Driver struct {
	Registry *competing.Registry
	N        int
	Seed     uint64

	// Horizon is the last grid point of both grids.
	Horizon float64

	// CensorHigh is the upper bound of the uniform censoring draw;
	// 0 means 1.2 times the horizon.
	CensorHigh float64

	// FinePoints and CoarsePoints size the two grids.
	FinePoints   int
	CoarsePoints int

	// NewFitter builds a fresh nonparametric estimator per cause.
	NewFitter func() estimate.IncidenceFitter

	// NewPredictor builds a fresh predictive estimator per cause from the
	// forwarded configuration.  Optional.
	NewPredictor func(estimate.BoostingConfig) estimate.IncidencePredictor

	// Boosting is forwarded to NewPredictor with only EventOfInterest
	// rewritten per cause.
	Boosting estimate.BoostingConfig
}

// CauseComparison aligns the three curves of one cause.
type CauseComparison struct {
	EventID int

	// Theoretical cumulative incidence on the fine grid.
	Theoretical []float64

	// Nonparametric step estimate: raw jumps, plus the curve aligned to
	// the coarse grid by step interpolation.
	StepTimes     []float64
	StepValues    []float64
	Nonparametric []float64

	// Boosted prediction on the coarse grid; nil when no predictor ran.
	Boosted []float64
}

// RunResult is the outcome of one full run.
type RunResult struct {
	Dataset           *competing.Dataset
	CensoringFraction float64
	Fine              incidence.TimeGrid
	Coarse            incidence.TimeGrid
	Curves            *incidence.Curves
	Causes            []CauseComparison
}

// Run executes one run.  All randomness flows from a single source seeded
// with Seed, sampler draws first, censoring draws second; repeating a run
// with the same settings reproduces it bit for bit.
func (d *Driver) Run() (*RunResult, error) {
	if d.Registry == nil {
		return nil, fmt.Errorf("compare: nil registry")
	}
	if d.N <= 0 {
		return nil, fmt.Errorf("compare: sample size %d", d.N)
	}
	if d.Horizon <= 0 {
		return nil, fmt.Errorf("compare: horizon %v", d.Horizon)
	}

	censorHigh := d.CensorHigh
	if censorHigh == 0 {
		censorHigh = 1.2 * d.Horizon
	}
	finePoints := d.FinePoints
	if finePoints == 0 {
		finePoints = DefaultFinePoints
	}
	coarsePoints := d.CoarsePoints
	if coarsePoints == 0 {
		coarsePoints = DefaultCoarsePoints
	}
	newFitter := d.NewFitter
	if newFitter == nil {
		newFitter = func() estimate.IncidenceFitter { return estimate.NewAalenJohansen() }
	}

	fine, err := incidence.NewTimeGrid(d.Horizon, finePoints)
	if err != nil {
		return nil, err
	}
	coarse, err := incidence.NewTimeGrid(d.Horizon, coarsePoints)
	if err != nil {
		return nil, err
	}

	src := rand.NewSource(d.Seed)
	latent := d.Registry.Sample(src, d.N)
	observed := competing.Censor(src, latent.Resolve(), censorHigh)
	ds := competing.NewDataset(observed)

	curves := incidence.Integrate(d.Registry, fine)

	res := &RunResult{
		Dataset:           ds,
		CensoringFraction: competing.CensoringFraction(observed),
		Fine:              fine,
		Coarse:            coarse,
		Curves:            curves,
	}

	x := ds.DummyCovariates()
	xrow := make([]float64, 1)

	for _, cs := range d.Registry.Causes() {
		cc := CauseComparison{
			EventID:     cs.EventID,
			Theoretical: curves.IncidenceFor(cs.EventID),
		}

		fitter := newFitter()
		if err := fitter.Fit(ds.Durations, ds.Events, cs.EventID); err != nil {
			return nil, fmt.Errorf("compare: nonparametric fit for event %d: %w", cs.EventID, err)
		}
		cc.StepTimes, cc.StepValues = fitter.CumulativeIncidence()
		cc.Nonparametric = incidence.StepInterp(cc.StepTimes, cc.StepValues, coarse.Points)

		if d.NewPredictor != nil {
			cfg := d.Boosting
			cfg.EventOfInterest = cs.EventID
			pred := d.NewPredictor(cfg)
			if err := pred.Fit(x, ds.Durations, ds.Events); err != nil {
				return nil, fmt.Errorf("compare: boosting fit for event %d: %w", cs.EventID, err)
			}
			cc.Boosted, err = pred.PredictCumulativeIncidence(xrow, coarse.Points)
			if err != nil {
				return nil, fmt.Errorf("compare: boosting predict for event %d: %w", cs.EventID, err)
			}
		}

		res.Causes = append(res.Causes, cc)
	}

	return res, nil
}
