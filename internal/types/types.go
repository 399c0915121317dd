// =============================================================================
// UML Models - Shared Types
// =============================================================================
//
// This package contains the types shared across the translation pipeline to
// avoid import cycles. Types defined here are used by:
//   - diagram     (RawCell)
//   - extractor   (Catalog, Entity, FieldDecl)
//   - translator  (FieldDescriptor)
//   - renderer    (Catalog, FieldDescriptor)
//   - dictionary  (Catalog)
//
// =============================================================================

package types

// =============================================================================
// DIAGRAM TYPES
// =============================================================================

// RawCell is one graphical node (an mxCell element) read from the diagram.
// It only lives for the duration of a single parse.
type RawCell struct {
	// ID is the opaque cell identifier.
	ID string

	// Value is the trimmed display text. It may be empty.
	Value string

	// Style is the free-text style descriptor of the cell.
	// A table header carries the table marker (e.g. "shape=table").
	Style string

	// Parent is the value of the cell's parent attribute, empty for
	// top-level cells.
	Parent string
}

// =============================================================================
// ENTITY TYPES
// =============================================================================

// FieldDecl is a field row parsed out of a diagram cell.
type FieldDecl struct {
	// Name is the first whitespace-separated token.
	Name string

	// DeclaredType is the second token, lower-cased.
	DeclaredType string

	// Constraints are the remaining tokens, upper-cased.
	// Example: "title char not null" -> ["NOT", "NULL"]
	Constraints []string
}

// Field pairs a declaration with its resolved descriptor.
// The descriptor is empty until the entity has been translated.
type Field struct {
	Decl       FieldDecl
	Descriptor FieldDescriptor
}

// Entity is a named model to be generated.
type Entity struct {
	// Name is the entity name as written in the table header cell.
	Name string

	// Fields are kept in the document order of the matching cells.
	Fields []Field
}

// =============================================================================
// FIELD DESCRIPTOR TYPES
// =============================================================================

// TargetType is the resolved target-schema type of a field.
type TargetType int

const (
	// UnboundedText is the fallback for any unknown declared type.
	UnboundedText TargetType = iota
	Integer
	BoundedText
	Date
	Relation
)

// String returns the target type name.
func (t TargetType) String() string {
	switch t {
	case Integer:
		return "integer"
	case BoundedText:
		return "text-bounded"
	case Date:
		return "date"
	case Relation:
		return "relation"
	default:
		return "text-unbounded"
	}
}

// FieldDescriptor is the resolved, render-ready representation of a field.
type FieldDescriptor struct {
	// Name is the field name carried over from the declaration.
	Name string

	// Type is the resolved target type.
	Type TargetType

	// MaxLength is only set for BoundedText.
	MaxLength int

	// Nullable is true unless the constraints contained "NOT NULL".
	Nullable bool

	// RelationTarget is the referenced entity name, only set for Relation.
	// It is not checked against the parsed entities.
	RelationTarget string
}
