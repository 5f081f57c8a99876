package incidence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/glemaitre/hazardous/competing"
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

func TestNewTimeGrid(t *testing.T) {
	g, err := NewTimeGrid(10, 101)
	require.NoError(t, err)
	require.Len(t, g.Points, 101)
	require.Equal(t, 0.0, g.Points[0])
	require.Equal(t, 10.0, g.Horizon())
	require.InDelta(t, 0.1, g.Step, 1e-12)
	for i := 1; i < len(g.Points); i++ {
		require.Greater(t, g.Points[i], g.Points[i-1])
	}

	_, err = NewTimeGrid(10, 1)
	require.Error(t, err)
	_, err = NewTimeGrid(0, 100)
	require.Error(t, err)
}

func TestHazardZeroAtOrigin(t *testing.T) {
	// Shape < 1 diverges at 0 under the raw formula; the override pins it.
	c := competing.CauseSpec{EventID: 1, Shape: 0.5, Scale: 10000}
	require.Equal(t, 0.0, c.Hazard(0))
	require.False(t, math.IsInf(c.Hazard(1e-9), 1) || math.IsNaN(c.Hazard(1e-9)))
	require.Greater(t, c.Hazard(1), 0.0)
}

func TestIntegrateBoundaryAndMonotone(t *testing.T) {
	reg := scenarioRegistry(t)
	g, err := NewTimeGrid(3000, 100000)
	require.NoError(t, err)

	c := Integrate(reg, g)

	require.Equal(t, 1.0, c.Survival[0])
	for _, cif := range c.Incidence {
		require.Equal(t, 0.0, cif[0])
	}

	for i := 1; i < len(g.Points); i++ {
		require.LessOrEqual(t, c.Survival[i], c.Survival[i-1], "survival must be non-increasing")
		for k := range c.Incidence {
			require.GreaterOrEqual(t, c.Incidence[k][i], c.Incidence[k][i-1], "incidence must be non-decreasing")
		}
	}
}

// Sum of the cause incidences plus the all-cause survival is 1 at every
// grid point, up to discretization error.
func TestCompetingRisksIdentity(t *testing.T) {
	reg := scenarioRegistry(t)
	g, err := NewTimeGrid(3000, 100000)
	require.NoError(t, err)

	c := Integrate(reg, g)

	for i := range g.Points {
		total := c.Survival[i]
		for k := range c.Incidence {
			total += c.Incidence[k][i]
		}
		require.InDelta(t, 1.0, total, 0.02, "at grid point %d", i)
	}
}

// With shape 1 every hazard is constant and the integrals have closed
// forms: S(t) = exp(-r t) and CIF_k(t) = (r_k / r) (1 - exp(-r t)).
func TestIntegrateExponentialClosedForm(t *testing.T) {
	reg, err := competing.NewRegistry(
		competing.CauseSpec{EventID: 1, Shape: 1, Scale: 2000},
		competing.CauseSpec{EventID: 2, Shape: 1, Scale: 4000},
	)
	require.NoError(t, err)

	g, err := NewTimeGrid(3000, 200000)
	require.NoError(t, err)
	c := Integrate(reg, g)

	r1, r2 := 1/2000.0, 1/4000.0
	r := r1 + r2
	for i, tt := range g.Points {
		require.InDelta(t, math.Exp(-r*tt), c.Survival[i], 1e-3)
		require.InDelta(t, r1/r*(1-math.Exp(-r*tt)), c.Incidence[0][i], 1e-3)
		require.InDelta(t, r2/r*(1-math.Exp(-r*tt)), c.Incidence[1][i], 1e-3)
	}
}

// The curves are a pure function of grid and causes; two computations agree
// exactly.
func TestIntegrateDeterministic(t *testing.T) {
	reg := scenarioRegistry(t)
	g, err := NewTimeGrid(3000, 10000)
	require.NoError(t, err)

	a := Integrate(reg, g)
	b := Integrate(reg, g)

	require.True(t, floats.Equal(a.Survival, b.Survival))
	for k := range a.Incidence {
		require.True(t, floats.Equal(a.Incidence[k], b.Incidence[k]))
	}
}

func TestIncidenceFor(t *testing.T) {
	reg := scenarioRegistry(t)
	g, err := NewTimeGrid(3000, 1000)
	require.NoError(t, err)
	c := Integrate(reg, g)

	require.Equal(t, c.Incidence[1], c.IncidenceFor(2))
	require.Nil(t, c.IncidenceFor(99))
}

func TestStepInterp(t *testing.T) {
	times := []float64{1, 3, 5}
	values := []float64{0.2, 0.5, 0.9}

	got := StepInterp(times, values, []float64{0, 0.5, 1, 2, 3, 4, 5, 10})
	want := []float64{0, 0, 0.2, 0.2, 0.5, 0.5, 0.9, 0.9}
	require.Equal(t, want, got)

	require.Equal(t, []float64{0, 0}, StepInterp(nil, nil, []float64{0, 1}))
}
