package cmd

import (
	"github.com/spf13/cobra"
)

var exportDictionaryCmd = &cobra.Command{
	Use:   "export-dictionary <app>",
	Short: "Export the diagram of an app as an XLSX data dictionary",
	Long: `Write <base>/src/uml_diagrams/<app>/<app>_dictionary.xlsx with one row per
entity and one row per field, using the same translation as create-models.`,
	Args: requireApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := newGenerator("export-dictionary").ExportDictionary(args[0])
		if err != nil {
			return err
		}
		newConsole(cmd).Success("Data dictionary written to %s", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportDictionaryCmd)
}
