// =============================================================================
// UML Models - Diagram Lint
// =============================================================================
//
// This module inspects a translated catalog for diagram mistakes that the
// translation silently tolerates. Findings are advisory: they are logged and
// reported, and never change the generated models.
//
// CHECKS:
//   - Entity and field names that are not Python identifiers
//   - Declared types without a mapping (rendered as TextField)
//   - Duplicate field names within an entity (the later one wins in Python)
//   - Relations to entities not declared in the diagram
//
// =============================================================================

package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ginjaninja78/uml-models/internal/translator"
	"github.com/ginjaninja78/uml-models/internal/types"
)

// identifierPattern matches a Python identifier (ASCII subset).
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Rule names.
const (
	RuleIdentifier       = "identifier"
	RuleUnknownType      = "unknown-type"
	RuleDuplicateField   = "duplicate-field"
	RuleDanglingRelation = "dangling-relation"
)

// =============================================================================
// ISSUE TYPES
// =============================================================================

// Issue is a single lint finding.
type Issue struct {
	// Entity is the entity the finding belongs to.
	Entity string

	// Field is empty for entity-level findings.
	Field string

	// Rule is the check that produced the finding.
	Rule string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (i *Issue) Error() string {
	if i.Field == "" {
		return fmt.Sprintf("[%s] %s: %s", i.Rule, i.Entity, i.Message)
	}
	return fmt.Sprintf("[%s] %s.%s: %s", i.Rule, i.Entity, i.Field, i.Message)
}

// Result holds the findings of one lint run.
type Result struct {
	Issues []*Issue

	// EntitiesChecked and FieldsChecked count what was inspected.
	EntitiesChecked int
	FieldsChecked   int
}

// Clean reports whether nothing was found.
func (r *Result) Clean() bool {
	return len(r.Issues) == 0
}

// =============================================================================
// VALIDATION FUNCTIONS
// =============================================================================

// Validate lints a catalog whose descriptors have been resolved.
func Validate(catalog *types.Catalog) *Result {
	result := &Result{}

	for _, entity := range catalog.Entities() {
		result.EntitiesChecked++

		if !identifierPattern.MatchString(entity.Name) {
			result.add(entity.Name, "", RuleIdentifier, "entity name is not a valid class name")
		}

		seen := make(map[string]bool, len(entity.Fields))
		for _, field := range entity.Fields {
			result.FieldsChecked++
			result.Issues = append(result.Issues, validateField(catalog, entity.Name, field)...)

			if seen[field.Decl.Name] {
				result.add(entity.Name, field.Decl.Name, RuleDuplicateField, "field is declared more than once")
			}
			seen[field.Decl.Name] = true
		}
	}

	return result
}

// validateField runs the per-field checks.
func validateField(catalog *types.Catalog, entity string, field types.Field) []*Issue {
	var issues []*Issue
	name := field.Decl.Name
	desc := field.Descriptor

	if !identifierPattern.MatchString(name) {
		issues = append(issues, &Issue{
			Entity: entity, Field: name, Rule: RuleIdentifier,
			Message: "field name is not a valid attribute name",
		})
	}

	if desc.Type == types.Relation {
		if !catalog.Has(desc.RelationTarget) {
			issues = append(issues, &Issue{
				Entity: entity, Field: name, Rule: RuleDanglingRelation,
				Message: fmt.Sprintf("references undeclared entity %q", desc.RelationTarget),
			})
		}
		return issues
	}

	if !translator.IsKnownType(field.Decl.DeclaredType) {
		issues = append(issues, &Issue{
			Entity: entity, Field: name, Rule: RuleUnknownType,
			Message: fmt.Sprintf("type %q is rendered as TextField", field.Decl.DeclaredType),
		})
	}

	return issues
}

func (r *Result) add(entity, field, rule, message string) {
	r.Issues = append(r.Issues, &Issue{Entity: entity, Field: field, Rule: rule, Message: message})
}

// =============================================================================
// OUTPUT FUNCTIONS
// =============================================================================

// FormatIssues formats findings one per line.
func FormatIssues(issues []*Issue) string {
	if len(issues) == 0 {
		return "No issues found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issue(s):\n", len(issues)))
	for _, issue := range issues {
		sb.WriteString("  ")
		sb.WriteString(issue.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}
