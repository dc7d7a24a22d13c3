// =============================================================================
// Sales Report Generator - Main Entry Point
// =============================================================================
//
// Entry point for the sales report generator. It initializes the Cobra CLI
// and delegates command execution to the cmd package.
//
// USAGE:
//   report-generator serve      - Run the HTTP upload service
//   report-generator generate   - Convert one workbook to a PDF report
//   report-generator version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Core pipeline (parsing, metrics, charts, PDF composition)
//   - pkg/       : Shared filesystem utilities
//
// =============================================================================

package main

import (
	"github.com/linkresults/report-generator/cmd"
)

func main() {
	cmd.Execute()
}
