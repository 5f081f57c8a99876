package competing

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Censor draws one independent censoring time per subject, uniform on
// [0, high), and combines it with the uncensored observations: the observed
// duration is the minimum of event and censoring time, and the event marker
// becomes Censored exactly when the censoring time is strictly smaller.
//
// Censoring is independent of the cause mechanism by construction.  That
// independence is what lets the theoretical incidence curves, computed with
// no reference to censoring, remain valid ground truth for estimators that
// consume the censored records.  Raising high dilutes censoring, lowering it
// increases the censored fraction; it controls the rate, it cannot remove it.
//
// Draws happen in subject order from the same source the sampler advanced,
// so a run is reproducible only if sampling happened first.
func Censor(src rand.Source, obs []Observation, high float64) []Observation {
	u := distuv.Uniform{Min: 0, Max: high, Src: src}
	out := make([]Observation, len(obs))
	for i, o := range obs {
		ct := u.Rand()
		if ct < o.Duration {
			out[i] = Observation{Duration: ct, Event: Censored}
		} else {
			out[i] = o
		}
	}
	return out
}

// CensoringFraction returns the share of censored records.
func CensoringFraction(obs []Observation) float64 {
	if len(obs) == 0 {
		return 0
	}
	var c int
	for _, o := range obs {
		if o.Event == Censored {
			c++
		}
	}
	return float64(c) / float64(len(obs))
}
