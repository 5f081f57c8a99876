package competing

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LatentMatrix holds the independently sampled latent event times for one
// simulation run: one row per subject, one column per cause, in registry
// order.  It exists only to be resolved into observations.
type LatentMatrix struct {
	times  *mat.Dense
	causes []CauseSpec
}

// Sample draws n latent event times per cause from that cause's Weibull
// distribution.  Draws are cause-major: all n variates for the first cause,
// then the next, so a fixed source seed reproduces the matrix exactly.  The
// source is shared and advanced in place; censoring draws must come after.
func (r *Registry) Sample(src rand.Source, n int) *LatentMatrix {
	m := mat.NewDense(n, len(r.causes), nil)
	for j, c := range r.causes {
		w := distuv.Weibull{K: c.Shape, Lambda: c.Scale, Src: src}
		for i := 0; i < n; i++ {
			m.Set(i, j, w.Rand())
		}
	}
	return &LatentMatrix{times: m, causes: r.Causes()}
}

// Len returns the number of subjects.
func (lm *LatentMatrix) Len() int {
	n, _ := lm.times.Dims()
	return n
}

// At returns the latent time of subject i for the cause at column j.
func (lm *LatentMatrix) At(i, j int) float64 {
	return lm.times.At(i, j)
}

// Resolve applies the competing-risks rule: each subject experiences the
// cause whose latent time is smallest, all other latent times are discarded.
// Ties have probability zero under continuous distributions and fall to the
// first minimal column.  The result is uncensored.
func (lm *LatentMatrix) Resolve() []Observation {
	n, k := lm.times.Dims()
	obs := make([]Observation, n)
	for i := 0; i < n; i++ {
		jmin := 0
		tmin := lm.times.At(i, 0)
		for j := 1; j < k; j++ {
			if t := lm.times.At(i, j); t < tmin {
				tmin = t
				jmin = j
			}
		}
		obs[i] = Observation{Duration: tmin, Event: lm.causes[jmin].EventID}
	}
	return obs
}
