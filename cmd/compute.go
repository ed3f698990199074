package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gohydro/internal/hull"
	"github.com/alexiusacademia/gohydro/internal/hydro"
	"github.com/spf13/cobra"
)

var (
	computeFile        string
	computeDraft       float64
	computeRho         float64
	computeKG          float64
	computeExtrapolate bool
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute hydrostatics at a single draft",
	Long: `Calculate the full set of hydrostatic properties of a hull at one
draft: displacement, centers of buoyancy, metacentric data, waterplane
properties and form coefficients.

Supply --kg to also get the metacentric heights GMt and GMl.

Drafts above the highest tabulated waterline are rejected unless
--extrapolate is given, which extends the offsets table linearly using
the slope of the two topmost waterlines.

Examples:
  gohydro compute --file barge.json --draft 5
  gohydro compute -f barge.json -d 5 --rho 1025 --kg 4.0`,
	Run: runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)

	computeCmd.Flags().StringVarP(&computeFile, "file", "f", "", "Path to hull offsets JSON file [required]")
	computeCmd.MarkFlagRequired("file")
	computeCmd.Flags().Float64VarP(&computeDraft, "draft", "d", 0, "Draft (m) [required]")
	computeCmd.MarkFlagRequired("draft")

	computeCmd.Flags().Float64Var(&computeRho, "rho", 1025, "Fluid density (kg/m³)")
	computeCmd.Flags().Float64Var(&computeKG, "kg", 0, "Vertical center of gravity above keel (m)")
	computeCmd.Flags().BoolVar(&computeExtrapolate, "extrapolate", false, "Extrapolate above the highest tabulated waterline")
}

func loadcaseFromFlags(cmd *cobra.Command) hydro.Loadcase {
	lc := hydro.Loadcase{Rho: computeRho}
	if cmd.Flags().Changed("kg") {
		kg := computeKG
		lc.KG = &kg
	}
	return lc
}

func runCompute(cmd *cobra.Command, args []string) {
	h, err := hull.LoadFromFile(computeFile)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}

	calc, err := hydro.NewCalculator(h)
	if err != nil {
		fmt.Printf("Error building geometry: %v\n", err)
		return
	}
	calc.AllowExtrapolation = computeExtrapolate

	res, err := calc.ComputeAt(computeDraft, loadcaseFromFlags(cmd))
	if err != nil {
		fmt.Printf("Error computing hydrostatics: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     HYDROSTATIC PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if h.Name != "" {
		fmt.Printf("  Vessel: %s\n", h.Name)
	}
	if h.Description != "" {
		fmt.Printf("  Description: %s\n", h.Description)
	}
	fmt.Println()

	fmt.Println("PRINCIPAL DIMENSIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Lpp:\t%.2f m\n", h.Lpp)
	fmt.Fprintf(w, "  Beam:\t%.2f m\n", h.Beam)
	fmt.Fprintf(w, "  Stations:\t%d\n", len(h.Stations))
	fmt.Fprintf(w, "  Waterlines:\t%d\n", len(h.Waterlines))
	w.Flush()
	fmt.Println()

	fmt.Println("DISPLACEMENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Draft:\t%.3f m\n", res.Draft)
	fmt.Fprintf(w, "  Displaced volume:\t%.2f m³\n", res.Volume)
	fmt.Fprintf(w, "  Displacement:\t%.0f kg\n", res.Displacement)
	w.Flush()
	fmt.Println()

	fmt.Println("CENTERS AND METACENTRIC DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  KB:\t%.3f m\n", res.KB)
	fmt.Fprintf(w, "  LCB:\t%.3f m\n", res.LCB)
	fmt.Fprintf(w, "  TCB:\t%.3f m\n", res.TCB)
	fmt.Fprintf(w, "  BMt:\t%.3f m\n", res.BMt)
	fmt.Fprintf(w, "  BMl:\t%.3f m\n", res.BMl)
	if res.GMt != nil {
		fmt.Fprintf(w, "  GMt:\t%.3f m\n", *res.GMt)
	}
	if res.GMl != nil {
		fmt.Fprintf(w, "  GMl:\t%.3f m\n", *res.GMl)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("WATERPLANE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Awp:\t%.2f m²\n", res.Awp)
	fmt.Fprintf(w, "  LCF:\t%.3f m\n", res.LCF)
	fmt.Fprintf(w, "  Iwp (transverse):\t%.2f m⁴\n", res.Iwp)
	fmt.Fprintf(w, "  Iwp (longitudinal):\t%.2f m⁴\n", res.IwpL)
	fmt.Fprintf(w, "  Midship area:\t%.2f m²\n", res.MidshipArea)
	w.Flush()
	fmt.Println()

	fmt.Println("FORM COEFFICIENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cb (block):\t%.4f\n", res.Cb)
	fmt.Fprintf(w, "  Cp (prismatic):\t%.4f\n", res.Cp)
	fmt.Fprintf(w, "  Cm (midship):\t%.4f\n", res.Cm)
	fmt.Fprintf(w, "  Cwp (waterplane):\t%.4f\n", res.Cwp)
	w.Flush()
	fmt.Println()
}
