// =============================================================================
// UML Models - Entity Extractor
// =============================================================================
//
// This module walks the flat list of diagram cells and groups field rows
// under the entity (table) they belong to.
//
// MATCHING RULES:
//   A cell is an entity declaration when it has a value and its style
//   contains the table marker. A cell is a field when it has a value and its
//   parent attribute equals the name of an entity that is already registered.
//
// ORDERING:
//   Cells are consumed in document order. A field whose table cell appears
//   later in the document is dropped, and a table declared twice keeps its
//   first position but loses the fields gathered so far. Both are relied on
//   by existing diagrams and are kept as-is.
//
// =============================================================================

package extractor

import (
	"strings"

	"github.com/ginjaninja78/uml-models/internal/types"
)

// DefaultTableMarker identifies a table header in the cell style.
const DefaultTableMarker = "shape=table"

// minFieldTokens is the number of tokens a field row needs (name and type).
const minFieldTokens = 2

// =============================================================================
// EXTRACTION
// =============================================================================

// Extract builds the entity catalog from cells. An empty marker falls back
// to DefaultTableMarker.
func Extract(cells []types.RawCell, marker string) *types.Catalog {
	if marker == "" {
		marker = DefaultTableMarker
	}

	catalog := types.NewCatalog()

	for _, cell := range cells {
		if cell.Value == "" {
			continue
		}

		if IsTable(cell, marker) {
			catalog.Register(cell.Value)
			continue
		}

		entity, ok := catalog.Get(cell.Parent)
		if !ok {
			continue
		}

		decl, ok := ParseField(cell.Value)
		if !ok {
			continue
		}

		entity.Fields = append(entity.Fields, types.Field{Decl: decl})
	}

	return catalog
}

// IsTable reports whether the cell declares an entity.
func IsTable(cell types.RawCell, marker string) bool {
	return cell.Value != "" && strings.Contains(cell.Style, marker)
}

// ParseField splits a field row into name, declared type and constraints.
// Rows with fewer than two tokens are not fields.
func ParseField(value string) (types.FieldDecl, bool) {
	parts := strings.Fields(value)
	if len(parts) < minFieldTokens {
		return types.FieldDecl{}, false
	}

	constraints := make([]string, 0, len(parts)-minFieldTokens)
	for _, token := range parts[minFieldTokens:] {
		constraints = append(constraints, strings.ToUpper(token))
	}

	return types.FieldDecl{
		Name:         parts[0],
		DeclaredType: strings.ToLower(parts[1]),
		Constraints:  constraints,
	}, true
}
