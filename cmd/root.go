// =============================================================================
// UML Models - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Every action of the
// tool is a subcommand attached here.
//
// COBRA CLI STRUCTURE:
//   rootCmd (umlmodels)
//   ├── createFoldersCmd    (umlmodels create-folders, alias createappfolders)
//   ├── createModelsCmd     (umlmodels create-models <app>)
//   ├── compareModelsCmd    (umlmodels compare-models <app>)
//   ├── exportDictionaryCmd (umlmodels export-dictionary <app>)
//   └── versionCmd          (umlmodels version)
//
// CONFIGURATION:
//   Before any subcommand runs, the root command:
//   1. Loads the .env file (--env-file)
//   2. Loads the YAML configuration (--config) and applies flag overrides
//   3. Sets up logging (--log-level, --verbose)
//
// =============================================================================

package cmd

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/uml-models/internal/config"
	"github.com/ginjaninja78/uml-models/internal/console"
	"github.com/ginjaninja78/uml-models/internal/generator"
	"github.com/ginjaninja78/uml-models/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// envFile holds the path to an optional .env file.
var envFile string

// baseDir overrides the project root from the configuration.
var baseDir string

// logLevel overrides the log level from the configuration.
var logLevel string

// verbose forces debug logging.
var verbose bool

// Populated by setup before a subcommand runs.
var (
	appConfig *config.Config
	logger    *logrus.Logger
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "umlmodels",
	Short: "UML Models - Generate Django models from draw.io UML diagrams",

	Long: `UML Models reads the draw.io diagram of a Django app and generates the
app's models.py from it. It can also compare an existing models.py against
the diagram and export the diagram as a data dictionary workbook.

Project Layout:
  <base>/src/uml_diagrams/<app>/<app>.xml        Diagram of an app
  <base>/<app>/models.py                         Generated models
  <base>/src/uml_diagrams/logs/<app>/diff_log.txt Comparison report

Example Usage:
  umlmodels create-folders           # Create a diagram folder per app
  umlmodels create-models library    # Generate library/models.py
  umlmodels compare-models library   # Diff library/models.py against the diagram`,

	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the CLI. Any error is printed to stderr and the process exits
// with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		console.New(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()).Error("Error: %v", err)
		os.Exit(1)
	}
}

// =============================================================================
// SETUP
// =============================================================================

// setup loads the configuration and the logger shared by the subcommands.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if baseDir != "" {
		cfg.BaseDir = baseDir
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if verbose {
		level = "debug"
	}

	appConfig = cfg
	logger = logging.SetupLogging(level, cmd.ErrOrStderr())
	logger.WithField("config", cfgFile).Debugf("Project root %s", cfg.BaseDir)

	return nil
}

// newGenerator returns a generator bound to the loaded configuration.
func newGenerator(action string) *generator.Generator {
	return generator.New(appConfig, logging.WithRun(logger, action))
}

// newConsole returns a console bound to the command's writers.
func newConsole(cmd *cobra.Command) *console.Console {
	return console.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// requireApp validates the single app argument. It runs before setup, so a
// missing app never touches the filesystem.
func requireApp(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return generator.ErrMissingArgument
	}
	return cobra.MaximumNArgs(1)(cmd, args)
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().StringVar(
		&envFile,
		"env-file",
		".env",
		"Path to a .env file with UML_* variables",
	)

	rootCmd.PersistentFlags().StringVar(
		&baseDir,
		"base-dir",
		"",
		"Project root (overrides base_dir and UML_BASE_DIR)",
	)

	rootCmd.PersistentFlags().StringVar(
		&logLevel,
		"log-level",
		"",
		"Log level: debug, info, warn, error",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
