package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gohydro/internal/chart"
	"github.com/alexiusacademia/gohydro/internal/hull"
	"github.com/alexiusacademia/gohydro/internal/hydro"
	"github.com/alexiusacademia/gohydro/internal/stability"
	"github.com/spf13/cobra"
)

var (
	gzFile       string
	gzDraft      float64
	gzRho        float64
	gzKG         float64
	gzMinAngle   float64
	gzMaxAngle   float64
	gzStep       float64
	gzMethod     string
	gzShowChart  bool
	gzExportFile string
)

var gzCmd = &cobra.Command{
	Use:   "gz",
	Short: "Generate a righting-arm (GZ/KN) stability curve",
	Long: `Sweep a heel-angle range at a fixed draft and compute the righting
arm GZ and the cross-curve value KN at each angle, then derive the
stability summary: maximum GZ, vanishing angle and the areas under the
curve in meter-radians.

Methods:
  wallsided  - wall-sided approximation from upright hydrostatics,
               valid for small to moderate heel
  immersion  - full re-immersion of the heeled sections, valid to
               large angles

Examples:
  gohydro gz -f barge.json --draft 5 --kg 4
  gohydro gz -f barge.json --draft 5 --kg 4 --to 80 --step 2 --method immersion
  gohydro gz -f barge.json --draft 5 --kg 4 --chart -o gz.png`,
	Run: runGZ,
}

func init() {
	rootCmd.AddCommand(gzCmd)

	gzCmd.Flags().StringVarP(&gzFile, "file", "f", "", "Path to hull offsets JSON file [required]")
	gzCmd.MarkFlagRequired("file")
	gzCmd.Flags().Float64VarP(&gzDraft, "draft", "d", 0, "Draft (m) [required]")
	gzCmd.MarkFlagRequired("draft")
	gzCmd.Flags().Float64Var(&gzKG, "kg", 0, "Vertical center of gravity above keel (m) [required]")
	gzCmd.MarkFlagRequired("kg")

	gzCmd.Flags().Float64Var(&gzRho, "rho", 1025, "Fluid density (kg/m³)")
	gzCmd.Flags().Float64Var(&gzMinAngle, "from", 0, "Start heel angle (deg)")
	gzCmd.Flags().Float64Var(&gzMaxAngle, "to", 60, "End heel angle (deg)")
	gzCmd.Flags().Float64Var(&gzStep, "step", 5, "Heel angle increment (deg)")
	gzCmd.Flags().StringVarP(&gzMethod, "method", "m", string(stability.WallSided), "KN method: wallsided or immersion")
	gzCmd.Flags().BoolVar(&gzShowChart, "chart", false, "Show ASCII chart of the GZ curve")
	gzCmd.Flags().StringVarP(&gzExportFile, "output", "o", "", "Export chart to file (png, svg, pdf)")
}

func runGZ(cmd *cobra.Command, args []string) {
	h, err := hull.LoadFromFile(gzFile)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}
	calc, err := hydro.NewCalculator(h)
	if err != nil {
		fmt.Printf("Error building geometry: %v\n", err)
		return
	}

	method, err := stability.ParseMethod(gzMethod)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	kg := gzKG
	lc := hydro.Loadcase{Rho: gzRho, KG: &kg}

	curve, err := stability.Generate(calc, lc, gzDraft, gzMinAngle, gzMaxAngle, gzStep, method)
	if err != nil {
		fmt.Printf("Error generating stability curve: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     STABILITY CURVE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Method:\t%s\n", curve.Method)
	fmt.Fprintf(w, "  Draft:\t%.3f m\n", curve.Draft)
	fmt.Fprintf(w, "  KG:\t%.3f m\n", curve.KG)
	fmt.Fprintf(w, "  Displacement:\t%.0f kg\n", curve.Displacement)
	fmt.Fprintf(w, "  Initial GMt:\t%.3f m\n", curve.InitialGMT)
	w.Flush()
	fmt.Println()

	fmt.Println("RIGHTING ARMS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Heel (deg)\tKN (m)\tGZ (m)\n")
	fmt.Fprintf(w, "  ──────────\t──────\t──────\n")
	for _, p := range curve.Points {
		fmt.Fprintf(w, "  %.1f\t%.4f\t%.4f\n", p.Angle, p.KN, p.GZ)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("SUMMARY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max GZ:\t%.4f m at %.1f°\n", curve.MaxGZ, curve.AngleAtMaxGZ)
	if curve.Truncated {
		fmt.Fprintf(w, "  Vanishing angle:\tnot reached within sweep (GZ still positive at %.1f°)\n", curve.VanishingAngle)
	} else {
		fmt.Fprintf(w, "  Vanishing angle:\t%.2f°\n", curve.VanishingAngle)
	}
	fmt.Fprintf(w, "  Area 0–30°:\t%.4f m·rad\n", curve.AreaTo30)
	fmt.Fprintf(w, "  Area 30°–vanishing:\t%.4f m·rad\n", curve.Area30ToVanishing)
	w.Flush()
	fmt.Println()

	gzSeries := chart.Series{Name: "GZ"}
	knSeries := chart.Series{Name: "KN"}
	for _, p := range curve.Points {
		gzSeries.X = append(gzSeries.X, p.Angle)
		gzSeries.Y = append(gzSeries.Y, p.GZ)
		knSeries.X = append(knSeries.X, p.Angle)
		knSeries.Y = append(knSeries.Y, p.KN)
	}

	if gzShowChart {
		fmt.Println(chart.ASCII("GZ (m)", "heel°", gzSeries))
	}
	if gzExportFile != "" {
		if err := chart.Export("Righting Arm Curve", "Heel (deg)", "Lever (m)", gzExportFile, gzSeries, knSeries); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
			return
		}
		fmt.Printf("Chart exported to: %s\n", gzExportFile)
	}
}
