package compare

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/glemaitre/hazardous/competing"
	"github.com/glemaitre/hazardous/estimate"
	"github.com/glemaitre/hazardous/incidence"
)

func scenarioRegistry(t *testing.T) *competing.Registry {
	t.Helper()
	reg, err := competing.NewRegistry(
		competing.CauseSpec{EventID: 1, Shape: 0.5, Scale: 10000},
		competing.CauseSpec{EventID: 2, Shape: 1, Scale: 3000},
		competing.CauseSpec{EventID: 3, Shape: 5, Scale: 2000},
	)
	require.NoError(t, err)
	return reg
}

func scenarioDriver(t *testing.T) *Driver {
	t.Helper()
	return &Driver{
		Registry: scenarioRegistry(t),
		N:        5000,
		Seed:     0,
		Horizon:  3000,
	}
}

// The canonical scenario: the nonparametric estimate must track the
// theoretical incidence of every cause on the coarse grid, past the first
// few points where both curves are numerically noisy.
func TestRunScenario(t *testing.T) {
	res, err := scenarioDriver(t).Run()
	require.NoError(t, err)

	require.Greater(t, res.CensoringFraction, 0.0)
	require.Less(t, res.CensoringFraction, 1.0)
	require.Len(t, res.Causes, 3)

	for _, cc := range res.Causes {
		require.Len(t, cc.Theoretical, len(res.Fine.Points))
		require.Len(t, cc.Nonparametric, len(res.Coarse.Points))
		require.Nil(t, cc.Boosted)

		theo := incidence.StepInterp(res.Fine.Points, cc.Theoretical, res.Coarse.Points)
		for i := 5; i < len(res.Coarse.Points); i++ {
			require.InDelta(t, theo[i], cc.Nonparametric[i], 0.02,
				"event %d, coarse point %d (t=%v)", cc.EventID, i, res.Coarse.Points[i])
		}
	}
}

func TestRunReproducible(t *testing.T) {
	a, err := scenarioDriver(t).Run()
	require.NoError(t, err)
	b, err := scenarioDriver(t).Run()
	require.NoError(t, err)

	require.Equal(t, a.Dataset.Durations, b.Dataset.Durations)
	require.Equal(t, a.Dataset.Events, b.Dataset.Events)
	require.Equal(t, a.CensoringFraction, b.CensoringFraction)
	for k := range a.Causes {
		require.True(t, floats.Equal(a.Causes[k].Theoretical, b.Causes[k].Theoretical))
		require.Equal(t, a.Causes[k].Nonparametric, b.Causes[k].Nonparametric)
	}
}

// Varying the censoring bound changes the censored fraction of the records
// but cannot move the theoretical curves, which never see censoring.
func TestTheoreticalIndependentOfCensoring(t *testing.T) {
	tight := scenarioDriver(t)
	tight.CensorHigh = 0.5 * 3000
	loose := scenarioDriver(t)
	loose.CensorHigh = 10 * 3000

	a, err := tight.Run()
	require.NoError(t, err)
	b, err := loose.Run()
	require.NoError(t, err)

	require.Greater(t, a.CensoringFraction, b.CensoringFraction)
	for k := range a.Causes {
		require.True(t, floats.Equal(a.Causes[k].Theoretical, b.Causes[k].Theoretical))
	}
	require.True(t, floats.Equal(a.Curves.Survival, b.Curves.Survival))
}

// stubPredictor records the forwarded configuration and returns a fixed
// curve, standing in for the boosting collaborator.
type stubPredictor struct {
	cfg  estimate.BoostingConfig
	seen *[]estimate.BoostingConfig
}

func (s *stubPredictor) Fit(x mat.Matrix, durations []float64, events []int) error {
	*s.seen = append(*s.seen, s.cfg)
	return nil
}

func (s *stubPredictor) PredictCumulativeIncidence(xrow []float64, grid []float64) ([]float64, error) {
	out := make([]float64, len(grid))
	for i := range out {
		out[i] = math.Min(1, float64(i)*0.01)
	}
	return out, nil
}

func TestRunForwardsBoostingConfig(t *testing.T) {
	var seen []estimate.BoostingConfig

	d := scenarioDriver(t)
	d.N = 200
	d.FinePoints = 2000
	d.Boosting = estimate.DefaultBoostingConfig()
	d.Boosting.LearningRate = 0.05
	d.NewPredictor = func(cfg estimate.BoostingConfig) estimate.IncidencePredictor {
		return &stubPredictor{cfg: cfg, seen: &seen}
	}

	res, err := d.Run()
	require.NoError(t, err)

	require.Len(t, seen, 3)
	for k, cfg := range seen {
		require.Equal(t, res.Causes[k].EventID, cfg.EventOfInterest, "driver rewrites only the event of interest")
		require.Equal(t, 0.05, cfg.LearningRate, "everything else is forwarded verbatim")
	}
	for _, cc := range res.Causes {
		require.Len(t, cc.Boosted, len(res.Coarse.Points))
	}
}

func TestRunValidation(t *testing.T) {
	_, err := (&Driver{}).Run()
	require.Error(t, err)

	d := scenarioDriver(t)
	d.N = 0
	_, err = d.Run()
	require.Error(t, err)

	d = scenarioDriver(t)
	d.Horizon = 0
	_, err = d.Run()
	require.Error(t, err)
}
