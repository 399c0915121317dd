// =============================================================================
// UML Models - Create Models Command
// =============================================================================
//
// COMMAND USAGE:
//   umlmodels create-models <app> [--dry-run]
//
// WORKFLOW:
//   1. Read <base>/src/uml_diagrams/<app>/<app>.xml
//   2. Refuse if <base>/<app>/models.py already has content
//   3. Write the generated models (or print them with --dry-run)
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/uml-models/internal/generator"
	"github.com/ginjaninja78/uml-models/internal/validation"
)

// dryRun prints the generated models instead of writing them.
var dryRun bool

var createModelsCmd = &cobra.Command{
	Use:   "create-models <app>",
	Short: "Generate models.py of an app from its diagram",
	Long: `Generate <base>/<app>/models.py from the app's draw.io diagram.

An existing models.py with content is never overwritten. Use --dry-run to
print the generated source without writing it.`,
	Args: requireApp,
	RunE: runCreateModels,
}

func runCreateModels(cmd *cobra.Command, args []string) error {
	app := args[0]

	result, err := newGenerator("create-models").CreateModels(app, generator.Options{DryRun: dryRun})
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Fprint(cmd.OutOrStdout(), result.Source)
		return nil
	}

	out := newConsole(cmd)
	out.Success("Models for %s written to %s", app, result.OutputFile)
	out.Notice("%s", lintSummary(result.Lint))
	if !result.Lint.Clean() {
		out.Notice("%s", validation.FormatIssues(result.Lint.Issues))
	}
	return nil
}

// lintSummary describes what the diagram lint inspected.
func lintSummary(lint *validation.Result) string {
	return fmt.Sprintf("Checked %d entities and %d fields, %d issue(s)",
		lint.EntitiesChecked, lint.FieldsChecked, len(lint.Issues))
}

func init() {
	createModelsCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Print the generated models instead of writing them",
	)

	rootCmd.AddCommand(createModelsCmd)
}
