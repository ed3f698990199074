package cmd

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/alexiusacademia/gohydro/internal/api"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculation engine as a JSON API",
	Long: `Start a stateless HTTP server exposing the calculation engine.
Every request carries the hull definition and the calculation
parameters; nothing is stored between requests.

Endpoints:
  GET  /api/health
  POST /api/hydrostatics
  POST /api/bonjean
  POST /api/curves
  POST /api/gz

Example:
  gohydro serve --port 8080`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
}

func runServe(cmd *cobra.Command, args []string) {
	addr := fmt.Sprintf(":%d", servePort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Printf("gohydro API listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
