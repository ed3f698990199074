package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gohydro/internal/chart"
	"github.com/alexiusacademia/gohydro/internal/curves"
	"github.com/alexiusacademia/gohydro/internal/hull"
	"github.com/alexiusacademia/gohydro/internal/hydro"
	"github.com/alexiusacademia/gohydro/internal/report"
	"github.com/spf13/cobra"
)

var (
	curvesFile        string
	curvesTypes       []string
	curvesMinDraft    float64
	curvesMaxDraft    float64
	curvesPoints      int
	curvesRho         float64
	curvesKG          float64
	curvesExtrapolate bool
	curvesShowChart   bool
	curvesExportFile  string
	curvesXlsxFile    string
)

var curvesCmd = &cobra.Command{
	Use:   "curves",
	Short: "Generate hydrostatic curves over a draft range",
	Long: `Sweep the hydrostatic calculator over an evenly spaced draft range
and tabulate the requested properties as curves.

Available curve types:
  displacement, volume, kb, lcb, lcf, bmt, gmt, awp, iwp,
  cb, cp, cm, cwp

The gmt curve requires --kg. Without --types all curves are generated.

Examples:
  gohydro curves -f barge.json --min 1 --max 6
  gohydro curves -f barge.json --min 1 --max 6 --types displacement,kb,gmt --kg 4
  gohydro curves -f barge.json --min 1 --max 6 --xlsx hydrostatics.xlsx`,
	Run: runCurves,
}

func init() {
	rootCmd.AddCommand(curvesCmd)

	curvesCmd.Flags().StringVarP(&curvesFile, "file", "f", "", "Path to hull offsets JSON file [required]")
	curvesCmd.MarkFlagRequired("file")
	curvesCmd.Flags().Float64Var(&curvesMinDraft, "min", 0, "Minimum draft (m) [required]")
	curvesCmd.MarkFlagRequired("min")
	curvesCmd.Flags().Float64Var(&curvesMaxDraft, "max", 0, "Maximum draft (m) [required]")
	curvesCmd.MarkFlagRequired("max")

	curvesCmd.Flags().StringSliceVarP(&curvesTypes, "types", "t", nil, "Curve types (comma separated, default all)")
	curvesCmd.Flags().IntVarP(&curvesPoints, "points", "n", curves.DefaultPoints, "Number of draft samples")
	curvesCmd.Flags().Float64Var(&curvesRho, "rho", 1025, "Fluid density (kg/m³)")
	curvesCmd.Flags().Float64Var(&curvesKG, "kg", 0, "Vertical center of gravity above keel (m)")
	curvesCmd.Flags().BoolVar(&curvesExtrapolate, "extrapolate", false, "Extrapolate above the highest tabulated waterline")
	curvesCmd.Flags().BoolVar(&curvesShowChart, "chart", false, "Show ASCII charts")
	curvesCmd.Flags().StringVarP(&curvesExportFile, "output", "o", "", "Export chart to file (png, svg, pdf)")
	curvesCmd.Flags().StringVar(&curvesXlsxFile, "xlsx", "", "Export hydrostatics table to an Excel file")
}

func runCurves(cmd *cobra.Command, args []string) {
	h, err := hull.LoadFromFile(curvesFile)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}
	calc, err := hydro.NewCalculator(h)
	if err != nil {
		fmt.Printf("Error building geometry: %v\n", err)
		return
	}
	calc.AllowExtrapolation = curvesExtrapolate

	lc := hydro.Loadcase{Rho: curvesRho}
	if cmd.Flags().Changed("kg") {
		kg := curvesKG
		lc.KG = &kg
	}

	var types []curves.Type
	for _, t := range curvesTypes {
		types = append(types, curves.Type(strings.TrimSpace(t)))
	}

	out, err := curves.Generate(calc, lc, types, curvesMinDraft, curvesMaxDraft, curvesPoints)
	if err != nil {
		fmt.Printf("Error generating curves: %v\n", err)
		return
	}

	// stable presentation order
	var ordered []*curves.Curve
	for _, t := range curves.AllTypes {
		if c, ok := out[t]; ok {
			ordered = append(ordered, c)
		}
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     HYDROSTATIC CURVES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Draft (m)")
	for _, c := range ordered {
		fmt.Fprintf(w, "\t%s", c.YLabel)
	}
	fmt.Fprintln(w)
	for j := range ordered[0].Points {
		fmt.Fprintf(w, "  %.3f", ordered[0].Points[j].X)
		for _, c := range ordered {
			fmt.Fprintf(w, "\t%.4g", c.Points[j].Y)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Println()

	if curvesShowChart {
		for _, c := range ordered {
			s := curveSeries(c)
			fmt.Println(chart.ASCII(c.YLabel, "draft", s))
		}
	}

	if curvesExportFile != "" {
		series := make([]chart.Series, len(ordered))
		for i, c := range ordered {
			series[i] = curveSeries(c)
		}
		if err := chart.Export("Hydrostatic Curves", "Draft (m)", "", curvesExportFile, series...); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
			return
		}
		fmt.Printf("Chart exported to: %s\n", curvesExportFile)
	}

	if curvesXlsxFile != "" {
		if err := report.WriteExcel(out, curvesXlsxFile); err != nil {
			fmt.Printf("Error exporting workbook: %v\n", err)
			return
		}
		fmt.Printf("Workbook exported to: %s\n", curvesXlsxFile)
	}
}

func curveSeries(c *curves.Curve) chart.Series {
	s := chart.Series{Name: string(c.Type)}
	for _, p := range c.Points {
		s.X = append(s.X, p.X)
		s.Y = append(s.Y, p.Y)
	}
	return s
}
