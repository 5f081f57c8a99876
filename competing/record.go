package competing

// Censored is the event marker of a censored observation.
const Censored = 0

// Observation describes one subject in the generated data set.
type Observation struct {

	// Observed follow-up time: the event time if the event was seen,
	// otherwise the censoring time.
	Duration float64

	// EventID of the cause that occurred, or Censored (0) if the
	// censoring time came first.
	Event int
}
