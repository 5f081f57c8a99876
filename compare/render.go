package compare

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Colors roughly matching the usual matplotlib cycle.
var (
	colorTheoretical = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	colorEstimate    = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	colorBoosted     = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
)

// thin keeps every k-th point so the fine integration grid does not bloat
// the plot file.
func thin(xs, ys []float64, k int) plotter.XYs {
	var pts plotter.XYs
	for i := 0; i < len(xs); i += k {
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return pts
}

func pairs(xs, ys []float64) plotter.XYs {
	return thin(xs, ys, 1)
}

// Render writes one PNG per cause into dir, each overlaying the theoretical
// incidence (dashed), the nonparametric estimate, and, when present, the
// boosted prediction.
func Render(res *RunResult, dir string) error {
	for _, cc := range res.Causes {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("Event %d (%.1f%% censoring)", cc.EventID, 100*res.CensoringFraction)
		p.X.Label.Text = "time"
		p.Y.Label.Text = "cumulative incidence"
		p.Y.Min = 0

		k := len(res.Fine.Points) / len(res.Coarse.Points)
		if k < 1 {
			k = 1
		}
		theo, err := plotter.NewLine(thin(res.Fine.Points, cc.Theoretical, k))
		if err != nil {
			return err
		}
		theo.LineStyle.Color = colorTheoretical
		theo.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(theo)
		p.Legend.Add("theoretical incidence", theo)

		np, err := plotter.NewLine(pairs(res.Coarse.Points, cc.Nonparametric))
		if err != nil {
			return err
		}
		np.LineStyle.Color = colorEstimate
		p.Add(np)
		p.Legend.Add("nonparametric", np)

		if cc.Boosted != nil {
			gb, err := plotter.NewLine(pairs(res.Coarse.Points, cc.Boosted))
			if err != nil {
				return err
			}
			gb.LineStyle.Color = colorBoosted
			p.Add(gb)
			p.Legend.Add("boosted", gb)
		}

		p.Legend.Top = false
		p.Legend.Left = false

		fname := filepath.Join(dir, fmt.Sprintf("incidence_event_%d.png", cc.EventID))
		if err := p.Save(5*vg.Inch, 4*vg.Inch, fname); err != nil {
			return err
		}
	}
	return nil
}
