package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gohydro/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gohydro",
	Short: "Ship Hydrostatics & Stability Calculator",
	Long: `gohydro - Go Ship Hydrostatics Calculator

A CLI tool for computing hydrostatic and stability properties of a
ship hull from a discretized offsets table.

This tool helps naval architects evaluate:
  - Displacement, centers of buoyancy and metacentric data
  - Form coefficients (Cb, Cp, Cm, Cwp)
  - Bonjean sectional-area curves
  - Hydrostatic property curves over a draft range
  - Large-angle righting-arm (GZ/KN) stability curves

The hull is defined in a JSON offsets file with stations, waterlines
and half-breadths; all results are in the units of the input geometry.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gohydro v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Ship Hydrostatics & Stability Calculator             ║")
		fmt.Printf("  ║   %s ©  %s                               ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for hydrostatic and stability calculations of")
		fmt.Println("  ship hulls defined by offsets tables.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Hydrostatics at a single draft (compute)")
		fmt.Println("    • Bonjean sectional-area curves (bonjean)")
		fmt.Println("    • Hydrostatic curves over a draft range (curves)")
		fmt.Println("    • GZ/KN stability curves (gz)")
		fmt.Println("    • PDF report and Excel table export (report, curves --xlsx)")
		fmt.Println("    • JSON calculation API (serve)")
		fmt.Println()
		fmt.Println("  Use 'gohydro --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
