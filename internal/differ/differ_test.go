package differ

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const rendered = "from django.db import models\n\n" +
	"class Book(models.Model):\n" +
	"    title = models.CharField(max_length=255)\n\n"

func TestDiff_IdenticalTexts(t *testing.T) {
	report := Diff(rendered, rendered)

	assert.False(t, report.HasChanges())
	assert.Empty(t, report.Added)
	assert.Empty(t, report.Removed)
	assert.Equal(t, Header+"\n", report.String())
}

func TestDiff_OrderAndDuplicatesIgnored(t *testing.T) {
	existing := "class Book(models.Model):\n" +
		"    title = models.CharField(max_length=255)\n" +
		"    title = models.CharField(max_length=255)\n" +
		"from django.db import models\n\n\n"

	assert.False(t, Diff(rendered, existing).HasChanges())
}

func TestDiff_RemovedLine(t *testing.T) {
	existing := rendered + "    legacy = models.TextField()\n"

	report := Diff(rendered, existing)
	assert.Empty(t, report.Added)
	assert.Equal(t, []string{"    legacy = models.TextField()"}, report.Removed)

	out := report.String()
	assert.True(t, strings.HasPrefix(out, Header+"\n"))
	assert.Contains(t, out, "\nRemoved:\n    legacy = models.TextField()")
	assert.NotContains(t, out, "Added:")
}

func TestDiff_AddedLine(t *testing.T) {
	existing := strings.Replace(rendered, "    title = models.CharField(max_length=255)\n", "", 1)

	report := Diff(rendered, existing)
	assert.Equal(t, []string{"    title = models.CharField(max_length=255)"}, report.Added)
	assert.Empty(t, report.Removed)
	assert.Contains(t, report.String(), "\nAdded:\n    title = models.CharField(max_length=255)")
	assert.NotContains(t, report.String(), "Removed:")
}

func TestDiff_BothSections(t *testing.T) {
	report := Diff("a\nb\nc", "b\nc\nd\ne")

	assert.ElementsMatch(t, []string{"a"}, report.Added)
	assert.ElementsMatch(t, []string{"d", "e"}, report.Removed)

	out := report.String()
	addedAt := strings.Index(out, "Added:")
	removedAt := strings.Index(out, "Removed:")
	assert.True(t, addedAt > 0 && removedAt > addedAt)
}
