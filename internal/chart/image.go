package chart

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Export writes the series as a line chart image. The format follows
// the file extension: png, svg or pdf.
func Export(title, xLabel, yLabel, filename string, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("no series to plot")
	}

	switch ext := filepath.Ext(filename); ext {
	case ".png", ".svg", ".pdf":
	default:
		return fmt.Errorf("unsupported image format %q (use png, svg or pdf)", ext)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	for i, s := range series {
		pts := make(plotter.XYs, len(s.X))
		for k := range s.X {
			pts[k] = plotter.XY{X: s.X[k], Y: s.Y[k]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
		if s.Name != "" {
			p.Legend.Add(s.Name, line)
		}
	}
	p.Legend.Top = true

	return p.Save(7*vg.Inch, 5*vg.Inch, filename)
}
