// =============================================================================
// UML Models - Field Translator
// =============================================================================
//
// This module turns a parsed field row into a field descriptor: the target
// type, the nullability and, for foreign keys, the referenced entity.
//
// TYPE TABLE (declared type is matched case-insensitively):
//   | Declared | Target                 |
//   |----------|------------------------|
//   | int      | integer                |
//   | char     | bounded text (255)     |
//   | date     | date                   |
//   | other    | unbounded text         |
//
// NULLABILITY:
//   Fields are nullable unless the constraints contain "NOT NULL". A bare
//   "NULL" token changes nothing.
//
// RELATIONS:
//   A field whose name contains "FK" (any case) becomes a relation to the
//   entity named by the part before the first underscore, capitalized:
//   "author_fk" -> "Author". The relation replaces the type and nullability
//   resolved above. The target is not checked against the diagram.
//
// =============================================================================

package translator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ginjaninja78/uml-models/internal/types"
)

// BoundedTextLength is the max length given to "char" fields.
const BoundedTextLength = 255

const (
	notNullMarker  = "NOT NULL"
	relationMarker = "FK"
)

// =============================================================================
// TRANSLATION FUNCTIONS
// =============================================================================

// Translate maps one field declaration to its descriptor.
func Translate(decl types.FieldDecl) types.FieldDescriptor {
	desc := types.FieldDescriptor{
		Name:     decl.Name,
		Nullable: true,
	}

	switch decl.DeclaredType {
	case "int":
		desc.Type = types.Integer
	case "char":
		desc.Type = types.BoundedText
		desc.MaxLength = BoundedTextLength
	case "date":
		desc.Type = types.Date
	default:
		desc.Type = types.UnboundedText
	}

	if strings.Contains(strings.Join(decl.Constraints, " "), notNullMarker) {
		desc.Nullable = false
	}

	if IsRelation(decl.Name) {
		desc = types.FieldDescriptor{
			Name:           decl.Name,
			Type:           types.Relation,
			Nullable:       true,
			RelationTarget: RelationTarget(decl.Name),
		}
	}

	return desc
}

// TranslateEntity resolves the descriptors of every field of e in place.
func TranslateEntity(e *types.Entity) {
	for i := range e.Fields {
		e.Fields[i].Descriptor = Translate(e.Fields[i].Decl)
	}
}

// TranslateCatalog resolves every entity in the catalog.
func TranslateCatalog(catalog *types.Catalog) {
	for _, e := range catalog.Entities() {
		TranslateEntity(e)
	}
}

// IsKnownType reports whether a lower-cased declared type has its own
// mapping. Anything else is rendered as unbounded text.
func IsKnownType(declared string) bool {
	switch declared {
	case "int", "char", "date":
		return true
	}
	return false
}

// IsRelation reports whether a field name marks a foreign key.
func IsRelation(name string) bool {
	return strings.Contains(strings.ToUpper(name), relationMarker)
}

// RelationTarget derives the referenced entity from a foreign-key field name.
// Example: "author_fk" -> "Author", "BOOK_FK" -> "Book"
func RelationTarget(name string) string {
	prefix, _, _ := strings.Cut(name, "_")
	return capitalize(prefix)
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
