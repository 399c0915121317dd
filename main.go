// =============================================================================
// UML Models - Main Entry Point
// =============================================================================
//
// This is the main entry point for the UML Models CLI application. It
// delegates command execution to the cmd package.
//
// USAGE:
//   umlmodels create-folders            - Create a diagram folder per app
//   umlmodels create-models <app>       - Generate models.py from the diagram
//   umlmodels compare-models <app>      - Diff models.py against the diagram
//   umlmodels export-dictionary <app>   - Export the diagram as XLSX
//   umlmodels version                   - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Diagram loading, translation, rendering, diffing
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/uml-models/cmd"
)

func main() {
	cmd.Execute()
}
