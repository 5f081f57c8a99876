package estimate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Censoring at t=2 and t=3 out of four subjects: the reversed-status
// Kaplan-Meier drops to 2/3 after t=2 and 1/3 after t=3.
func TestCensorDistLeftLimit(t *testing.T) {
	durations := []float64{1, 2, 3, 4}
	events := []int{1, 0, 0, 1}

	cd := newCensorDist(durations, events)

	require.InDelta(t, 1.0, cd.at(0.5), 1e-12)
	require.InDelta(t, 1.0, cd.at(2), 1e-12, "left limit excludes the jump at t")
	require.InDelta(t, 2.0/3, cd.at(2.5), 1e-12)
	require.InDelta(t, 2.0/3, cd.at(3), 1e-12)
	require.InDelta(t, 1.0/3, cd.at(4), 1e-12)
}

func TestCensorDistWeightFloor(t *testing.T) {
	// Heavy censoring pushes G toward zero; the floor caps the weights.
	durations := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	events := []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 1}

	cd := newCensorDist(durations, events)
	require.GreaterOrEqual(t, cd.at(10), weightFloor)
}

func TestGradientBoostingGuards(t *testing.T) {
	g := NewGradientBoostingIncidence(DefaultBoostingConfig())

	_, err := g.PredictCumulativeIncidence([]float64{0}, []float64{0, 1})
	require.Error(t, err, "predict before fit")
}
