package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/uml-models/internal/diagram"
	"github.com/ginjaninja78/uml-models/internal/types"
)

func table(id, name string) types.RawCell {
	return types.RawCell{ID: id, Value: name, Style: "shape=table;startSize=30;", Parent: "1"}
}

func row(id, value, parent string) types.RawCell {
	return types.RawCell{ID: id, Value: value, Style: "text;", Parent: parent}
}

func fieldNames(e *types.Entity) []string {
	var names []string
	for _, f := range e.Fields {
		names = append(names, f.Decl.Name)
	}
	return names
}

func TestExtract_GroupsFieldsUnderTables(t *testing.T) {
	cells := []types.RawCell{
		{ID: "0"},
		{ID: "1", Parent: "0"},
		table("2", "Book"),
		row("3", "title char NOT NULL", "Book"),
		row("4", "published date", "Book"),
		table("5", "Author"),
		row("6", "name char", "Author"),
	}

	catalog := Extract(cells, DefaultTableMarker)
	require.Equal(t, 2, catalog.Len())

	entities := catalog.Entities()
	assert.Equal(t, "Book", entities[0].Name)
	assert.Equal(t, []string{"title", "published"}, fieldNames(entities[0]))
	assert.Equal(t, "Author", entities[1].Name)
	assert.Equal(t, []string{"name"}, fieldNames(entities[1]))

	title := entities[0].Fields[0].Decl
	assert.Equal(t, "char", title.DeclaredType)
	assert.Equal(t, []string{"NOT", "NULL"}, title.Constraints)
}

func TestExtract_NoTables(t *testing.T) {
	cells := []types.RawCell{
		row("1", "title char", "Book"),
		{ID: "2", Value: "free text", Style: "rounded=1;"},
	}

	catalog := Extract(cells, DefaultTableMarker)
	assert.Equal(t, 0, catalog.Len())
	assert.Empty(t, catalog.Entities())
}

func TestExtract_ForwardReferenceIsDropped(t *testing.T) {
	cells := []types.RawCell{
		row("1", "title char", "Book"),
		table("2", "Book"),
		row("3", "isbn char", "Book"),
	}

	catalog := Extract(cells, DefaultTableMarker)
	book, ok := catalog.Get("Book")
	require.True(t, ok)
	assert.Equal(t, []string{"isbn"}, fieldNames(book))
}

func TestExtract_RedeclarationResetsFieldsAndKeepsPosition(t *testing.T) {
	cells := []types.RawCell{
		table("1", "Book"),
		row("2", "title char", "Book"),
		table("3", "Author"),
		table("4", "Book"),
		row("5", "isbn char", "Book"),
	}

	catalog := Extract(cells, DefaultTableMarker)
	require.Equal(t, 2, catalog.Len())

	entities := catalog.Entities()
	assert.Equal(t, "Book", entities[0].Name)
	assert.Equal(t, []string{"isbn"}, fieldNames(entities[0]))
	assert.Equal(t, "Author", entities[1].Name)
}

func TestExtract_UnmatchedParentIsExcluded(t *testing.T) {
	cells := []types.RawCell{
		table("1", "Book"),
		row("2", "author_fk int NOT NULL", "2"),
		row("3", "title char", "Magazine"),
	}

	catalog := Extract(cells, DefaultTableMarker)
	book, _ := catalog.Get("Book")
	assert.Empty(t, book.Fields)
	assert.False(t, catalog.Has("Magazine"))
}

func TestExtract_SingleTokenRowIsDropped(t *testing.T) {
	cells := []types.RawCell{
		table("1", "Book"),
		row("2", "title", "Book"),
		row("3", "pages int whatever UNIQUE", "Book"),
	}

	catalog := Extract(cells, DefaultTableMarker)
	book, _ := catalog.Get("Book")
	require.Len(t, book.Fields, 1)
	assert.Equal(t, "pages", book.Fields[0].Decl.Name)
	assert.Equal(t, []string{"WHATEVER", "UNIQUE"}, book.Fields[0].Decl.Constraints)
}

func TestExtract_TableCellIsNeverAField(t *testing.T) {
	cells := []types.RawCell{
		table("1", "Book"),
		{ID: "2", Value: "Chapter title", Style: "shape=table;", Parent: "Book"},
	}

	catalog := Extract(cells, DefaultTableMarker)
	book, _ := catalog.Get("Book")
	assert.Empty(t, book.Fields)
	assert.True(t, catalog.Has("Chapter title"))
}

func TestExtract_EmptyValueIsIgnored(t *testing.T) {
	cells := []types.RawCell{
		{ID: "1", Value: "", Style: "shape=table;"},
		table("2", "Book"),
		row("3", "", "Book"),
	}

	catalog := Extract(cells, DefaultTableMarker)
	assert.Equal(t, 1, catalog.Len())
	book, _ := catalog.Get("Book")
	assert.Empty(t, book.Fields)
}

func TestExtract_CustomMarker(t *testing.T) {
	cells := []types.RawCell{
		{ID: "1", Value: "Book", Style: "swimlane;"},
		row("2", "title char", "Book"),
	}

	assert.Equal(t, 0, Extract(cells, "").Len())

	catalog := Extract(cells, "swimlane")
	book, ok := catalog.Get("Book")
	require.True(t, ok)
	assert.Len(t, book.Fields, 1)
}

func TestParseField(t *testing.T) {
	decl, ok := ParseField("Title  CHAR\tnot null")
	require.True(t, ok)
	assert.Equal(t, "Title", decl.Name)
	assert.Equal(t, "char", decl.DeclaredType)
	assert.Equal(t, []string{"NOT", "NULL"}, decl.Constraints)

	decl, ok = ParseField("id int")
	require.True(t, ok)
	assert.Empty(t, decl.Constraints)

	_, ok = ParseField("lonely")
	assert.False(t, ok)

	_, ok = ParseField("   ")
	assert.False(t, ok)
}

// A table cell whose value is only whitespace declares nothing, so rows
// without a parent cannot attach to an entity named "".
func TestExtract_WhitespaceTableDeclaresNoEntity(t *testing.T) {
	cells, err := diagram.Parse(strings.NewReader(`<mxfile><root>
  <mxCell id="2" value="   " style="shape=table;"/>
  <mxCell id="3" value="title char"/>
</root></mxfile>`))
	require.NoError(t, err)

	catalog := Extract(cells, DefaultTableMarker)
	assert.Equal(t, 0, catalog.Len())
	assert.False(t, catalog.Has(""))
}
