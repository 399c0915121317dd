// =============================================================================
// UML Models - Generator
// =============================================================================
//
// This module orchestrates the commands. Each operation is a single
// synchronous batch: read the diagram (and for comparisons the model file),
// compute in memory, write at most one file.
//
// PIPELINES:
//   create-models:
//     1. Resolve paths for the app
//     2. Refuse if the model file is already populated
//     3. Load diagram -> extract entities -> translate fields -> render
//     4. Write the model file
//
//   compare-models:
//     1. Both the diagram and the model file must exist
//     2. Load diagram -> extract -> translate -> render
//     3. Diff the rendered text against the model file
//     4. Write the diff log (always overwritten)
//
//   create-folders:
//     Create the diagrams root and one folder per project app.
//
//   export-dictionary:
//     Load diagram -> extract -> translate -> XLSX workbook
//
// =============================================================================

package generator

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ginjaninja78/uml-models/internal/config"
	"github.com/ginjaninja78/uml-models/internal/diagram"
	"github.com/ginjaninja78/uml-models/internal/dictionary"
	"github.com/ginjaninja78/uml-models/internal/differ"
	"github.com/ginjaninja78/uml-models/internal/extractor"
	"github.com/ginjaninja78/uml-models/internal/renderer"
	"github.com/ginjaninja78/uml-models/internal/translator"
	"github.com/ginjaninja78/uml-models/internal/types"
	"github.com/ginjaninja78/uml-models/internal/validation"
	"github.com/ginjaninja78/uml-models/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURES
// =============================================================================

// Result is the outcome of create-models.
type Result struct {
	// App is the app the models were generated for.
	App string

	// OutputFile is the model file path. It is set on dry runs as well.
	OutputFile string

	// Source is the rendered model source.
	Source string

	// Entities is the number of entities rendered.
	Entities int

	// Written is false on dry runs.
	Written bool

	// Lint holds the advisory findings of the diagram.
	Lint *validation.Result
}

// Comparison is the outcome of compare-models.
type Comparison struct {
	App     string
	LogFile string
	Report  *differ.Report
}

// Options tunes create-models.
type Options struct {
	// DryRun renders the models without writing them.
	DryRun bool
}

// =============================================================================
// GENERATOR STRUCTURE
// =============================================================================

// Generator runs the commands against one project layout.
type Generator struct {
	config *config.Config
	files  *utils.FileManager
	logger *logrus.Entry
}

// New creates a Generator for cfg.
func New(cfg *config.Config, logger *logrus.Entry) *Generator {
	return &Generator{
		config: cfg,
		files:  utils.NewFileManager(cfg.BaseDir, cfg.DiagramsDir, cfg.LogsDir, cfg.ModelsFile),
		logger: logger,
	}
}

// Files exposes the path layout.
func (g *Generator) Files() *utils.FileManager {
	return g.files
}

// =============================================================================
// CREATE FOLDERS
// =============================================================================

// CreateFolders creates the diagrams root and a folder per project app, and
// returns the app folders in configuration order.
func (g *Generator) CreateFolders() ([]string, error) {
	root := g.files.DiagramsRoot()
	if err := utils.EnsureDirectories(root); err != nil {
		return nil, err
	}

	var created []string
	for _, app := range g.config.ProjectApps() {
		dir := g.files.AppDiagramDir(app)
		if err := utils.EnsureDirectories(dir); err != nil {
			return created, err
		}
		g.logger.WithField("app", app).Debugf("Created folder %s", dir)
		created = append(created, dir)
	}

	skipped := len(g.config.InstalledApps) - len(created)
	g.logger.Infof("Created %d app folder(s) under %s, skipped %d", len(created), root, skipped)

	return created, nil
}

// =============================================================================
// CREATE MODELS
// =============================================================================

// CreateModels renders the diagram of app into its model file.
func (g *Generator) CreateModels(app string, opts Options) (*Result, error) {
	if app == "" {
		return nil, ErrMissingArgument
	}

	diagramPath := g.files.DiagramPath(app)
	modelsPath := g.files.ModelsPath(app)
	log := g.logger.WithField("app", app)

	if !utils.FileExists(diagramPath) {
		return nil, fmt.Errorf("UML diagram not found: %s: %w", diagramPath, ErrDiagramNotFound)
	}

	populated, err := utils.IsPopulated(modelsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect %s: %w", modelsPath, err)
	}
	if populated && !opts.DryRun {
		return nil, fmt.Errorf("%w: %s", ErrOutputAlreadyPopulated, modelsPath)
	}

	catalog, lint, err := g.translate(diagramPath)
	if err != nil {
		return nil, err
	}

	result := &Result{
		App:        app,
		OutputFile: modelsPath,
		Source:     renderer.Render(catalog),
		Entities:   catalog.Len(),
		Lint:       lint,
	}

	if opts.DryRun {
		log.Debug("Dry run, model file not written")
		return result, nil
	}

	if err := utils.WriteTextFile(modelsPath, result.Source); err != nil {
		return nil, err
	}
	result.Written = true
	log.Infof("Wrote %d entities to %s", result.Entities, modelsPath)

	return result, nil
}

// =============================================================================
// COMPARE MODELS
// =============================================================================

// CompareModels diffs the model file of app against its diagram and writes
// the report to the app's diff log.
func (g *Generator) CompareModels(app string) (*Comparison, error) {
	if app == "" {
		return nil, ErrMissingArgument
	}

	diagramPath := g.files.DiagramPath(app)
	modelsPath := g.files.ModelsPath(app)
	log := g.logger.WithField("app", app)

	if !utils.FileExists(diagramPath) || !utils.FileExists(modelsPath) {
		return nil, fmt.Errorf("%w: %s, %s", ErrComparisonInputsMissing, diagramPath, modelsPath)
	}

	existing, err := os.ReadFile(modelsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrComparisonInputsMissing, modelsPath)
		}
		return nil, fmt.Errorf("failed to read %s: %w", modelsPath, err)
	}

	catalog, _, err := g.translate(diagramPath)
	if err != nil {
		return nil, err
	}

	report := differ.Diff(renderer.Render(catalog), string(existing))
	logPath := g.files.DiffLogPath(app)

	if err := utils.WriteTextFile(logPath, report.String()); err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"added":   len(report.Added),
		"removed": len(report.Removed),
	}).Infof("Wrote diff log %s", logPath)

	return &Comparison{App: app, LogFile: logPath, Report: report}, nil
}

// =============================================================================
// EXPORT DICTIONARY
// =============================================================================

// ExportDictionary writes the data dictionary workbook of app and returns
// its path.
func (g *Generator) ExportDictionary(app string) (string, error) {
	if app == "" {
		return "", ErrMissingArgument
	}

	diagramPath := g.files.DiagramPath(app)
	if !utils.FileExists(diagramPath) {
		return "", fmt.Errorf("UML diagram not found: %s: %w", diagramPath, ErrDiagramNotFound)
	}

	catalog, _, err := g.translate(diagramPath)
	if err != nil {
		return "", err
	}

	path := g.files.DictionaryPath(app)
	id, err := dictionary.Export(catalog, app, path)
	if err != nil {
		return "", err
	}
	g.logger.WithFields(logrus.Fields{"app": app, "workbook_id": id}).Infof("Wrote data dictionary %s", path)

	return path, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// translate runs the loader, extractor and translator over one diagram and
// lints the result.
func (g *Generator) translate(diagramPath string) (*types.Catalog, *validation.Result, error) {
	cells, err := diagram.Load(diagramPath)
	if err != nil {
		return nil, nil, err
	}
	g.logger.Debugf("Read %d cells from %s", len(cells), diagramPath)

	catalog := extractor.Extract(cells, g.config.TableMarker)
	translator.TranslateCatalog(catalog)

	lint := validation.Validate(catalog)
	for _, issue := range lint.Issues {
		g.logger.Warn(issue.Error())
	}

	g.logger.Debugf("Linted %d entities and %d fields, %d issue(s)",
		lint.EntitiesChecked, lint.FieldsChecked, len(lint.Issues))

	return catalog, lint, nil
}
