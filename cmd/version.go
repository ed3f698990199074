package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gohydro/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gohydro",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gohydro v%s\n", version.Version)
		fmt.Println("Ship Hydrostatics & Stability Calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
