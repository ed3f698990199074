// Package chart renders hydrostatic and stability curves, either as
// terminal graphs or as image files (png, svg, pdf).
package chart

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Series is one named line of a chart.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// ASCII renders the series as a terminal line graph. The x samples are
// assumed evenly spaced (asciigraph plots against the sample index), so
// the caption carries the real x range.
func ASCII(title, xLabel string, series ...Series) string {
	if len(series) == 0 {
		return ""
	}

	data := make([][]float64, len(series))
	var names []string
	for i, s := range series {
		data[i] = s.Y
		names = append(names, s.Name)
	}

	first := series[0]
	caption := fmt.Sprintf("%s  [%s %.2f … %.2f]", title, xLabel, first.X[0], first.X[len(first.X)-1])

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(15),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(graph)
	sb.WriteString("\n")
	if len(names) > 1 {
		sb.WriteString("  series: ")
		sb.WriteString(strings.Join(names, ", "))
		sb.WriteString("\n")
	}
	return sb.String()
}
