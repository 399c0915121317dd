// =============================================================================
// UML Models - Configuration Module
// =============================================================================
//
// This module loads the project configuration. It replaces the settings a
// Django project would provide (BASE_DIR, INSTALLED_APPS) and adds the knobs
// of the diagram dialect.
//
// SOURCES (later wins):
//   1. Built-in defaults
//   2. The YAML file (uml.yaml by default, optional)
//   3. Environment variables, optionally loaded from a .env file
//
// ENVIRONMENT VARIABLES:
//   UML_BASE_DIR        - Project root
//   UML_INSTALLED_APPS  - Comma separated list of apps
//   UML_LOG_LEVEL       - debug, info, warn, error
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file looked up when none is given.
const DefaultConfigFile = "uml.yaml"

// Environment variable names.
const (
	EnvBaseDir       = "UML_BASE_DIR"
	EnvInstalledApps = "UML_INSTALLED_APPS"
	EnvLogLevel      = "UML_LOG_LEVEL"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the project configuration.
type Config struct {
	// =========================================================================
	// PROJECT LAYOUT
	// =========================================================================

	// BaseDir is the project root. Generated models are written to
	// <BaseDir>/<app>/<ModelsFile>.
	// Default: "."
	BaseDir string `yaml:"base_dir"`

	// DiagramsDir is the diagrams folder, relative to BaseDir.
	// Diagrams are read from <BaseDir>/<DiagramsDir>/<app>/<app>.xml.
	// Default: "src/uml_diagrams"
	DiagramsDir string `yaml:"diagrams_dir"`

	// LogsDir is the diff log folder, relative to DiagramsDir.
	// Default: "logs"
	LogsDir string `yaml:"logs_dir"`

	// ModelsFile is the name of the generated model file inside an app.
	// Default: "models.py"
	ModelsFile string `yaml:"models_file"`

	// =========================================================================
	// APPS
	// =========================================================================

	// InstalledApps lists the project apps. Apps starting with "django."
	// or not matching AppNamePattern get no diagram folder.
	InstalledApps []string `yaml:"installed_apps"`

	// AppNamePattern is the regular expression an app name must match to
	// get a diagram folder.
	// Default: "^[a-z_][a-z0-9_]*$"
	AppNamePattern string `yaml:"app_name_pattern"`

	// =========================================================================
	// DIAGRAM DIALECT
	// =========================================================================

	// TableMarker is the style substring identifying a table header cell.
	// Default: "shape=table"
	TableMarker string `yaml:"table_marker"`

	// =========================================================================
	// LOGGING
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "warn"
	LogLevel string `yaml:"log_level"`

	appPattern *regexp.Regexp
}

// =============================================================================
// LOADING FUNCTIONS
// =============================================================================

// Load reads the configuration file at path, overlays the environment and
// applies defaults. A missing file is not an error; defaults are used.
func Load(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Run on defaults.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyEnvironment(&config)
	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadEnvFile loads variables from a .env file into the process environment.
// Variables already set are left alone. A missing file is ignored.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Default returns a validated configuration rooted at baseDir.
func Default(baseDir string) *Config {
	config := &Config{BaseDir: baseDir}
	applyDefaults(config)
	config.appPattern = regexp.MustCompile(config.AppNamePattern)
	return config
}

// applyEnvironment overlays environment variables on the file values.
func applyEnvironment(config *Config) {
	if v := os.Getenv(EnvBaseDir); v != "" {
		config.BaseDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv(EnvInstalledApps); v != "" {
		var apps []string
		for _, app := range strings.Split(v, ",") {
			if app = strings.TrimSpace(app); app != "" {
				apps = append(apps, app)
			}
		}
		config.InstalledApps = apps
	}
}

// applyDefaults sets default values for any unset option.
func applyDefaults(config *Config) {
	if config.BaseDir == "" {
		config.BaseDir = "."
	}
	if config.DiagramsDir == "" {
		config.DiagramsDir = filepath.Join("src", "uml_diagrams")
	}
	if config.LogsDir == "" {
		config.LogsDir = "logs"
	}
	if config.ModelsFile == "" {
		config.ModelsFile = "models.py"
	}
	if config.AppNamePattern == "" {
		config.AppNamePattern = `^[a-z_][a-z0-9_]*$`
	}
	if config.TableMarker == "" {
		config.TableMarker = "shape=table"
	}
	if config.LogLevel == "" {
		config.LogLevel = "warn"
	}
}

// Validate checks the configuration and compiles the app name pattern.
func (c *Config) Validate() error {
	pattern, err := regexp.Compile(c.AppNamePattern)
	if err != nil {
		return fmt.Errorf("%w: app_name_pattern: %v", ErrInvalidConfig, err)
	}
	c.appPattern = pattern

	if strings.TrimSpace(c.TableMarker) == "" {
		return fmt.Errorf("%w: table_marker must not be blank", ErrInvalidConfig)
	}
	if filepath.IsAbs(c.DiagramsDir) {
		return fmt.Errorf("%w: diagrams_dir must be relative to base_dir", ErrInvalidConfig)
	}
	if strings.ContainsRune(c.ModelsFile, filepath.Separator) {
		return fmt.Errorf("%w: models_file must be a file name", ErrInvalidConfig)
	}

	return nil
}

// =============================================================================
// APP FILTERING
// =============================================================================

// ProjectApps returns the installed apps that get a diagram folder, in
// configuration order.
func (c *Config) ProjectApps() []string {
	var apps []string
	for _, app := range c.InstalledApps {
		if c.IsProjectApp(app) {
			apps = append(apps, app)
		}
	}
	return apps
}

// IsProjectApp reports whether app is a project app rather than a
// framework one.
func (c *Config) IsProjectApp(app string) bool {
	if strings.HasPrefix(app, "django.") {
		return false
	}
	pattern := c.appPattern
	if pattern == nil {
		pattern = regexp.MustCompile(c.AppNamePattern)
	}
	return pattern.MatchString(app)
}
