// =============================================================================
// UML Models - File Manager Utility
// =============================================================================
//
// This module knows where things live in a project and performs the small
// amount of file I/O the commands need:
//   - Path layout (diagrams, generated models, diff logs, dictionaries)
//   - Directory scaffolding
//   - Existence / emptiness checks
//   - Plain (non-atomic) file writes
//
// PROJECT LAYOUT:
//   <base>/
//   ├── <app>/models.py                           (generated models)
//   └── src/uml_diagrams/
//       ├── <app>/<app>.xml                       (diagram)
//       ├── <app>/<app>_dictionary.xlsx           (data dictionary)
//       └── logs/<app>/diff_log.txt               (comparison report)
//
// =============================================================================

package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DiffLogFile is the name of the comparison report inside an app's log dir.
const DiffLogFile = "diff_log.txt"

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager resolves project paths.
type FileManager struct {
	// BaseDir is the project root.
	BaseDir string

	// DiagramsDir is the diagrams folder, relative to BaseDir.
	DiagramsDir string

	// LogsDir is the diff log folder, relative to DiagramsDir.
	LogsDir string

	// ModelsFile is the generated file name inside an app folder.
	ModelsFile string
}

// NewFileManager creates a FileManager for the given layout.
func NewFileManager(baseDir, diagramsDir, logsDir, modelsFile string) *FileManager {
	return &FileManager{
		BaseDir:     baseDir,
		DiagramsDir: diagramsDir,
		LogsDir:     logsDir,
		ModelsFile:  modelsFile,
	}
}

// =============================================================================
// PATH LAYOUT
// =============================================================================

// DiagramsRoot returns <base>/<diagrams>.
func (fm *FileManager) DiagramsRoot() string {
	return filepath.Join(fm.BaseDir, fm.DiagramsDir)
}

// AppDiagramDir returns the diagram folder of an app.
func (fm *FileManager) AppDiagramDir(app string) string {
	return filepath.Join(fm.DiagramsRoot(), app)
}

// DiagramPath returns <base>/<diagrams>/<app>/<app>.xml.
func (fm *FileManager) DiagramPath(app string) string {
	return filepath.Join(fm.AppDiagramDir(app), app+".xml")
}

// ModelsPath returns <base>/<app>/<models file>.
func (fm *FileManager) ModelsPath(app string) string {
	return filepath.Join(fm.BaseDir, app, fm.ModelsFile)
}

// DiffLogDir returns <base>/<diagrams>/<logs>/<app>.
func (fm *FileManager) DiffLogDir(app string) string {
	return filepath.Join(fm.DiagramsRoot(), fm.LogsDir, app)
}

// DiffLogPath returns the comparison report path of an app.
func (fm *FileManager) DiffLogPath(app string) string {
	return filepath.Join(fm.DiffLogDir(app), DiffLogFile)
}

// DictionaryPath returns the data dictionary workbook path of an app.
func (fm *FileManager) DictionaryPath(app string) string {
	return filepath.Join(fm.AppDiagramDir(app), app+"_dictionary.xlsx")
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDirectories creates every directory in dirs if missing.
func EnsureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// =============================================================================
// FILE OPERATIONS
// =============================================================================

// WriteTextFile writes content to path, creating the parent directory.
// The write is not atomic: a crash can leave a partial file.
func WriteTextFile(path, content string) error {
	if err := EnsureDirectories(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

// GetFileSize returns the size of a file in bytes.
func GetFileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// IsPopulated reports whether path exists and holds at least one byte.
func IsPopulated(path string) (bool, error) {
	size, err := GetFileSize(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return size > 0, nil
}
