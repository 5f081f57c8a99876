package competing

import (
	"github.com/kshedden/dstream/dstream"

	"gonum.org/v1/gonum/mat"
)

// Dataset is the tabular handoff to the external estimators: a duration and
// an event column, row-aligned to subjects.
type Dataset struct {
	Durations []float64
	Events    []int
}

// NewDataset copies the observed records into column form.
func NewDataset(obs []Observation) *Dataset {
	d := &Dataset{
		Durations: make([]float64, len(obs)),
		Events:    make([]int, len(obs)),
	}
	for i, o := range obs {
		d.Durations[i] = o.Duration
		d.Events[i] = o.Event
	}
	return d
}

// Len returns the number of subjects.
func (d *Dataset) Len() int {
	return len(d.Durations)
}

// DummyCovariates returns an n x 1 matrix of zeros.  The predictive
// estimators require at least one feature; a constant column carries no
// information, which is the point when only marginal calibration is studied.
func (d *Dataset) DummyCovariates() *mat.Dense {
	return mat.NewDense(d.Len(), 1, nil)
}

// Dstream returns the dataset as a columnar stream with variables
// "duration" and "event", the input format of the estimator libraries.
func (d *Dataset) Dstream() dstream.Dstream {
	du := make([]float64, len(d.Durations))
	copy(du, d.Durations)
	ev := make([]float64, len(d.Events))
	for i, e := range d.Events {
		ev[i] = float64(e)
	}
	var z [][]interface{}
	z = append(z, []interface{}{du})
	z = append(z, []interface{}{ev})
	return dstream.NewFromArrays(z, []string{"duration", "event"})
}
