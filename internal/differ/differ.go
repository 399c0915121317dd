// =============================================================================
// UML Models - Differ
// =============================================================================
//
// This module compares freshly rendered model source with the model file on
// disk. Both texts are split on "\n" and treated as sets of lines:
//
//   Added   = rendered lines that are not in the existing file
//   Removed = existing lines that are not in the rendered text
//
// Duplicates collapse and line order is ignored. Lines inside a section come
// out in set iteration order, which is not stable between runs.
//
// REPORT FORMAT:
//   Differences found:
//
//   Added:
//   <line>
//   Removed:
//   <line>
//
// =============================================================================

package differ

import "strings"

// Header is the first line of every report.
const Header = "Differences found:"

// lineSet is an unordered set of lines.
type lineSet map[string]struct{}

func newLineSet(text string) lineSet {
	set := make(lineSet)
	for _, line := range strings.Split(text, "\n") {
		set[line] = struct{}{}
	}
	return set
}

// minus returns the lines of s not present in other, in map order.
func (s lineSet) minus(other lineSet) []string {
	var result []string
	for line := range s {
		if _, ok := other[line]; !ok {
			result = append(result, line)
		}
	}
	return result
}

// =============================================================================
// REPORT
// =============================================================================

// Report holds the outcome of a comparison.
type Report struct {
	// Added are lines the diagram produces that the model file lacks.
	Added []string

	// Removed are lines of the model file the diagram no longer produces.
	Removed []string
}

// Diff compares the rendered text against the existing text.
func Diff(rendered, existing string) *Report {
	renderedLines := newLineSet(rendered)
	existingLines := newLineSet(existing)

	return &Report{
		Added:   renderedLines.minus(existingLines),
		Removed: existingLines.minus(renderedLines),
	}
}

// HasChanges reports whether either section is non-empty.
func (r *Report) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0
}

// String renders the report text written to the diff log.
func (r *Report) String() string {
	var b strings.Builder

	b.WriteString(Header + "\n")
	if len(r.Added) > 0 {
		b.WriteString("\nAdded:\n")
		b.WriteString(strings.Join(r.Added, "\n"))
	}
	if len(r.Removed) > 0 {
		b.WriteString("\nRemoved:\n")
		b.WriteString(strings.Join(r.Removed, "\n"))
	}

	return b.String()
}
