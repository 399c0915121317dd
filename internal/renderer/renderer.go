// =============================================================================
// UML Models - Model Renderer
// =============================================================================
//
// This module writes the translated catalog out as Django model source.
//
// OUTPUT STRUCTURE:
//
//   from django.db import models
//
//   class Book(models.Model):
//       title = models.CharField(max_length=255, null=False)
//       author_fk = models.ForeignKey("Author", on_delete=models.CASCADE)
//
//   class Author(models.Model):
//       pass
//
// DETERMINISM:
//   Entities come out in catalog order and fields in stored order, so the
//   same diagram always renders to the same bytes. The differ relies on it.
//
// =============================================================================

package renderer

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/uml-models/internal/types"
)

// Preamble is the first line of every generated file.
const Preamble = "from django.db import models"

// Placeholder is the body of an entity without fields.
const Placeholder = "pass"

const indent = "    "

// =============================================================================
// RENDERING FUNCTIONS
// =============================================================================

// Render produces the model source for the catalog. Descriptors must have
// been resolved by the translator.
func Render(catalog *types.Catalog) string {
	var b strings.Builder

	b.WriteString(Preamble)
	b.WriteString("\n\n")

	for _, entity := range catalog.Entities() {
		writeEntity(&b, entity)
	}

	return b.String()
}

// writeEntity writes one class block followed by a blank line.
func writeEntity(b *strings.Builder, entity *types.Entity) {
	fmt.Fprintf(b, "class %s(models.Model):\n", entity.Name)

	if len(entity.Fields) == 0 {
		b.WriteString(indent + Placeholder + "\n\n")
		return
	}

	for _, field := range entity.Fields {
		b.WriteString(FieldLine(field.Descriptor))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// FieldLine renders the assignment line of a single field, indented.
func FieldLine(desc types.FieldDescriptor) string {
	return fmt.Sprintf("%s%s = %s", indent, desc.Name, FieldExpr(desc))
}

// FieldExpr renders the Django field constructor for a descriptor.
func FieldExpr(desc types.FieldDescriptor) string {
	if desc.Type == types.Relation {
		return fmt.Sprintf("models.ForeignKey(%q, on_delete=models.CASCADE)", desc.RelationTarget)
	}

	var args []string
	var constructor string

	switch desc.Type {
	case types.Integer:
		constructor = "IntegerField"
	case types.BoundedText:
		constructor = "CharField"
		args = append(args, fmt.Sprintf("max_length=%d", desc.MaxLength))
	case types.Date:
		constructor = "DateField"
	default:
		constructor = "TextField"
	}

	if !desc.Nullable {
		args = append(args, "null=False")
	}

	return fmt.Sprintf("models.%s(%s)", constructor, strings.Join(args, ", "))
}
