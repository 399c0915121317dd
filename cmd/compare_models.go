package cmd

import (
	"github.com/spf13/cobra"
)

// compareModelsCmd diffs an existing models.py against its diagram.
var compareModelsCmd = &cobra.Command{
	Use:   "compare-models <app>",
	Short: "Compare models.py of an app against its diagram",
	Long: `Render the app's diagram and compare it line by line with the existing
<base>/<app>/models.py. The report is written to
<base>/src/uml_diagrams/logs/<app>/diff_log.txt, replacing any previous one.`,
	Args: requireApp,
	RunE: runCompareModels,
}

func runCompareModels(cmd *cobra.Command, args []string) error {
	app := args[0]

	cmp, err := newGenerator("compare-models").CompareModels(app)
	if err != nil {
		return err
	}

	out := newConsole(cmd)
	out.Success("Comparison for %s written to %s", app, cmp.LogFile)
	if cmp.Report.HasChanges() {
		out.Notice("%d added, %d removed", len(cmp.Report.Added), len(cmp.Report.Removed))
	} else {
		out.Notice("No differences")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(compareModelsCmd)
}
