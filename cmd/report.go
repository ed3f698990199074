package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gohydro/internal/hull"
	"github.com/alexiusacademia/gohydro/internal/hydro"
	"github.com/alexiusacademia/gohydro/internal/report"
	"github.com/alexiusacademia/gohydro/internal/stability"
	"github.com/spf13/cobra"
)

var (
	reportFile     string
	reportOut      string
	reportDraft    float64
	reportRho      float64
	reportKG       float64
	reportMaxAngle float64
	reportStep     float64
	reportMethod   string
	reportNoGZ     bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export a PDF hydrostatics & stability report",
	Long: `Compute hydrostatics at a draft and, unless --no-gz is given, a GZ
curve, and write both to a PDF report.

Examples:
  gohydro report -f barge.json --draft 5 --kg 4 --output barge.pdf
  gohydro report -f barge.json --draft 5 --no-gz --output barge.pdf`,
	Run: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportFile, "file", "f", "", "Path to hull offsets JSON file [required]")
	reportCmd.MarkFlagRequired("file")
	reportCmd.Flags().StringVarP(&reportOut, "output", "o", "", "Output PDF file [required]")
	reportCmd.MarkFlagRequired("output")
	reportCmd.Flags().Float64VarP(&reportDraft, "draft", "d", 0, "Draft (m) [required]")
	reportCmd.MarkFlagRequired("draft")

	reportCmd.Flags().Float64Var(&reportRho, "rho", 1025, "Fluid density (kg/m³)")
	reportCmd.Flags().Float64Var(&reportKG, "kg", 0, "Vertical center of gravity above keel (m)")
	reportCmd.Flags().Float64Var(&reportMaxAngle, "to", 60, "End heel angle for the GZ sweep (deg)")
	reportCmd.Flags().Float64Var(&reportStep, "step", 5, "Heel angle increment (deg)")
	reportCmd.Flags().StringVarP(&reportMethod, "method", "m", string(stability.WallSided), "KN method: wallsided or immersion")
	reportCmd.Flags().BoolVar(&reportNoGZ, "no-gz", false, "Skip the stability section")
}

func runReport(cmd *cobra.Command, args []string) {
	h, err := hull.LoadFromFile(reportFile)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}
	calc, err := hydro.NewCalculator(h)
	if err != nil {
		fmt.Printf("Error building geometry: %v\n", err)
		return
	}

	lc := hydro.Loadcase{Rho: reportRho}
	if cmd.Flags().Changed("kg") {
		kg := reportKG
		lc.KG = &kg
	}

	res, err := calc.ComputeAt(reportDraft, lc)
	if err != nil {
		fmt.Printf("Error computing hydrostatics: %v\n", err)
		return
	}

	in := report.PDFInput{Hull: h, Loadcase: lc, Result: res}

	if !reportNoGZ {
		if lc.KG == nil {
			fmt.Println("Error: the stability section requires --kg (or pass --no-gz)")
			return
		}
		method, err := stability.ParseMethod(reportMethod)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		curve, err := stability.Generate(calc, lc, reportDraft, 0, reportMaxAngle, reportStep, method)
		if err != nil {
			fmt.Printf("Error generating stability curve: %v\n", err)
			return
		}
		in.Stability = curve
	}

	if err := report.WritePDF(in, reportOut); err != nil {
		fmt.Printf("Error writing report: %v\n", err)
		return
	}
	fmt.Printf("Report written to: %s\n", reportOut)
}
