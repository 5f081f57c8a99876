package compare

import (
	"fmt"
	"io"

	"github.com/glemaitre/hazardous/competing"
	"github.com/glemaitre/hazardous/incidence"
)

// WriteObserved writes the observed dataset as CSV with a duration and an
// event column, one row per subject.
func WriteObserved(w io.Writer, ds *competing.Dataset) error {
	if _, err := fmt.Fprintf(w, "duration,event\n"); err != nil {
		return err
	}
	for i := range ds.Durations {
		if _, err := fmt.Fprintf(w, "%f,%d\n", ds.Durations[i], ds.Events[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteCurves writes one cause's aligned curves on the coarse grid as CSV.
// The theoretical curve is carried over from the fine grid by step
// interpolation so the rows stay comparable.
func WriteCurves(w io.Writer, res *RunResult, cc CauseComparison) error {
	theo := incidence.StepInterp(res.Fine.Points, cc.Theoretical, res.Coarse.Points)

	if _, err := fmt.Fprintf(w, "time,theoretical,nonparametric,boosted\n"); err != nil {
		return err
	}
	for i, t := range res.Coarse.Points {
		b := ""
		if cc.Boosted != nil {
			b = fmt.Sprintf("%f", cc.Boosted[i])
		}
		if _, err := fmt.Fprintf(w, "%f,%f,%f,%s\n", t, theo[i], cc.Nonparametric[i], b); err != nil {
			return err
		}
	}
	return nil
}
