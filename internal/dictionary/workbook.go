// =============================================================================
// UML Models - Data Dictionary Export
// =============================================================================
//
// This module writes the translated catalog of an app to an XLSX workbook,
// so the diagram can be reviewed by people who will never read models.py.
//
// WORKBOOK STRUCTURE:
//
//   Sheet "Entities"
//   | Entity | Fields |
//   |--------|--------|
//   | Book   | 3      |
//
//   Sheet "Fields"
//   | Entity | Field     | Declared Type | Target Type  | Max Length | Nullable | Relation |
//   |--------|-----------|---------------|--------------|------------|----------|----------|
//   | Book   | title     | char          | text-bounded | 255        | no       |          |
//   | Book   | author_fk | int           | relation     |            | yes      | Author   |
//
//   Sheet "Metadata"
//   | Key         | Value                                |
//   | App         | library                              |
//   | Workbook ID | 0f8fad5b-d9cb-469f-a165-70867728950e |
//
// =============================================================================

package dictionary

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/uml-models/internal/types"
)

// Sheet names.
const (
	EntitiesSheet = "Entities"
	FieldsSheet   = "Fields"
	MetadataSheet = "Metadata"
)

var (
	entityHeader   = []interface{}{"Entity", "Fields"}
	fieldHeader    = []interface{}{"Entity", "Field", "Declared Type", "Target Type", "Max Length", "Nullable", "Relation"}
	metadataHeader = []interface{}{"Key", "Value"}
)

// =============================================================================
// EXPORT
// =============================================================================

// Export writes the catalog of app to an XLSX workbook at path and returns
// the generated workbook id. Descriptors must already be resolved.
func Export(catalog *types.Catalog, app, path string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", fmt.Errorf("failed to create header style: %w", err)
	}

	// The default sheet becomes the entity index.
	if err := f.SetSheetName(f.GetSheetName(0), EntitiesSheet); err != nil {
		return "", fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{FieldsSheet, MetadataSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return "", fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	entityRows := [][]interface{}{entityHeader}
	fieldRows := [][]interface{}{fieldHeader}

	for _, entity := range catalog.Entities() {
		entityRows = append(entityRows, []interface{}{entity.Name, len(entity.Fields)})

		for _, field := range entity.Fields {
			fieldRows = append(fieldRows, fieldRow(entity.Name, field))
		}
	}

	workbookID := uuid.NewString()
	metadataRows := [][]interface{}{
		metadataHeader,
		{"App", app},
		{"Workbook ID", workbookID},
	}

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{EntitiesSheet, entityRows},
		{FieldsSheet, fieldRows},
		{MetadataSheet, metadataRows},
	}

	for _, sheet := range sheets {
		if err := writeRows(f, sheet.name, sheet.rows); err != nil {
			return "", err
		}
		if err := f.SetRowStyle(sheet.name, 1, 1, headerStyle); err != nil {
			return "", fmt.Errorf("failed to style header of %s: %w", sheet.name, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook %s: %w", path, err)
	}

	return workbookID, nil
}

// fieldRow flattens one field into a row of the Fields sheet.
func fieldRow(entity string, field types.Field) []interface{} {
	desc := field.Descriptor

	maxLength := ""
	if desc.MaxLength > 0 {
		maxLength = fmt.Sprintf("%d", desc.MaxLength)
	}

	nullable := "yes"
	if !desc.Nullable {
		nullable = "no"
	}

	return []interface{}{
		entity,
		field.Decl.Name,
		field.Decl.DeclaredType,
		desc.Type.String(),
		maxLength,
		nullable,
		desc.RelationTarget,
	}
}

// writeRows writes rows starting at A1.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to resolve cell for row %d: %w", i+1, err)
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
