// Package main implements the resume_agent CLI and HTTP API server for résumé analysis.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_agent",
	Short: "Resume Analyzer CLI and HTTP API Server",
	Long:  "Resume Analyzer scores résumés for ATS compatibility, identifies skills and gaps, matches candidates against company requirement profiles and renders structured résumés to LaTeX.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
