package cmd

import (
	"github.com/spf13/cobra"
)

// createFoldersCmd creates the diagram folders of the project apps.
var createFoldersCmd = &cobra.Command{
	Use:     "create-folders",
	Aliases: []string{"createappfolders"},
	Short:   "Create a diagram folder for every project app",
	Long: `Create <base>/src/uml_diagrams/ and one folder per installed app.

Apps starting with "django." and apps not matching app_name_pattern are
skipped. Existing folders are left as they are.`,
	Args: cobra.NoArgs,
	RunE: runCreateFolders,
}

func runCreateFolders(cmd *cobra.Command, args []string) error {
	out := newConsole(cmd)

	created, err := newGenerator("create-folders").CreateFolders()
	if err != nil {
		return err
	}

	if len(created) == 0 {
		out.Notice("No project apps configured")
		return nil
	}
	for _, dir := range created {
		out.Success("Created folder %s", dir)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(createFoldersCmd)
}
