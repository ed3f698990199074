package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gohydro/internal/chart"
	"github.com/alexiusacademia/gohydro/internal/curves"
	"github.com/alexiusacademia/gohydro/internal/hull"
	"github.com/alexiusacademia/gohydro/internal/hydro"
	"github.com/spf13/cobra"
)

var (
	bonjeanFile       string
	bonjeanShowChart  bool
	bonjeanExportFile string
)

var bonjeanCmd = &cobra.Command{
	Use:   "bonjean",
	Short: "Generate Bonjean sectional-area curves",
	Long: `Compute the Bonjean curve of every station: the immersed sectional
area as a function of draft, sampled at the tabulated waterlines.

Examples:
  gohydro bonjean --file barge.json
  gohydro bonjean -f barge.json --chart
  gohydro bonjean -f barge.json -o bonjean.png`,
	Run: runBonjean,
}

func init() {
	rootCmd.AddCommand(bonjeanCmd)

	bonjeanCmd.Flags().StringVarP(&bonjeanFile, "file", "f", "", "Path to hull offsets JSON file [required]")
	bonjeanCmd.MarkFlagRequired("file")

	bonjeanCmd.Flags().BoolVar(&bonjeanShowChart, "chart", false, "Show ASCII chart of the curves")
	bonjeanCmd.Flags().StringVarP(&bonjeanExportFile, "output", "o", "", "Export chart to file (png, svg, pdf)")
}

func runBonjean(cmd *cobra.Command, args []string) {
	h, err := hull.LoadFromFile(bonjeanFile)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}
	calc, err := hydro.NewCalculator(h)
	if err != nil {
		fmt.Printf("Error building geometry: %v\n", err)
		return
	}

	bj, err := curves.Bonjean(calc)
	if err != nil {
		fmt.Printf("Error generating Bonjean curves: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BONJEAN CURVES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Draft (m)")
	for _, c := range bj {
		fmt.Fprintf(w, "\tSt %d (x=%.1f)", c.Station, c.StationX)
	}
	fmt.Fprintln(w)
	for j := range bj[0].Points {
		fmt.Fprintf(w, "  %.3f", bj[0].Points[j].Draft)
		for _, c := range bj {
			fmt.Fprintf(w, "\t%.2f", c.Points[j].Area)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("  Sectional areas in m².")
	fmt.Println()

	series := make([]chart.Series, len(bj))
	for i, c := range bj {
		s := chart.Series{Name: fmt.Sprintf("st %d", c.Station)}
		for _, p := range c.Points {
			s.X = append(s.X, p.Draft)
			s.Y = append(s.Y, p.Area)
		}
		series[i] = s
	}

	if bonjeanShowChart {
		fmt.Println(chart.ASCII("Bonjean curves (m²)", "draft", series...))
	}
	if bonjeanExportFile != "" {
		if err := chart.Export("Bonjean Curves", "Draft (m)", "Sectional area (m²)", bonjeanExportFile, series...); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
			return
		}
		fmt.Printf("Chart exported to: %s\n", bonjeanExportFile)
	}
}
