package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/uml-models/internal/extractor"
	"github.com/ginjaninja78/uml-models/internal/types"
)

func decl(t *testing.T, value string) types.FieldDecl {
	t.Helper()
	d, ok := extractor.ParseField(value)
	require.True(t, ok, "expected %q to parse", value)
	return d
}

func TestTranslate_TypeTable(t *testing.T) {
	tests := []struct {
		value     string
		want      types.TargetType
		maxLength int
	}{
		{"count int", types.Integer, 0},
		{"count INT", types.Integer, 0},
		{"count Int", types.Integer, 0},
		{"title char", types.BoundedText, BoundedTextLength},
		{"born date", types.Date, 0},
		{"bio text", types.UnboundedText, 0},
		{"price decimal", types.UnboundedText, 0},
		{"weird ???", types.UnboundedText, 0},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			desc := Translate(decl(t, tt.value))
			assert.Equal(t, tt.want, desc.Type)
			assert.Equal(t, tt.maxLength, desc.MaxLength)
			assert.True(t, desc.Nullable)
			assert.Empty(t, desc.RelationTarget)
		})
	}
}

func TestTranslate_Nullability(t *testing.T) {
	tests := []struct {
		value    string
		nullable bool
	}{
		{"title char NOT NULL", false},
		{"title char not null", false},
		{"title char Not Null UNIQUE", false},
		{"title char NULL", true},
		{"title char", true},
		{"title char NOT", true},
		{"title char PRIMARY KEY", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.nullable, Translate(decl(t, tt.value)).Nullable)
		})
	}
}

func TestTranslate_RelationOverridesType(t *testing.T) {
	desc := Translate(decl(t, "author_fk int NOT NULL"))

	assert.Equal(t, types.Relation, desc.Type)
	assert.Equal(t, "Author", desc.RelationTarget)
	assert.Equal(t, "author_fk", desc.Name)
	assert.Zero(t, desc.MaxLength)
	assert.True(t, desc.Nullable)
}

func TestTranslate_DanglingRelationIsKept(t *testing.T) {
	desc := Translate(decl(t, "publisher_fk char"))
	assert.Equal(t, types.Relation, desc.Type)
	assert.Equal(t, "Publisher", desc.RelationTarget)
}

func TestRelationTarget(t *testing.T) {
	assert.Equal(t, "Author", RelationTarget("author_fk"))
	assert.Equal(t, "Book", RelationTarget("BOOK_FK"))
	assert.Equal(t, "Fkauthor", RelationTarget("fkAuthor"))
	assert.Equal(t, "Main", RelationTarget("main_author_fk"))
	assert.Equal(t, "", RelationTarget("_fk"))
}

func TestIsRelation(t *testing.T) {
	assert.True(t, IsRelation("author_fk"))
	assert.True(t, IsRelation("FK_author"))
	assert.True(t, IsRelation("mfkx"))
	assert.False(t, IsRelation("author_id"))
}

func TestTranslateCatalog(t *testing.T) {
	catalog := types.NewCatalog()
	book := catalog.Register("Book")
	book.Fields = append(book.Fields,
		types.Field{Decl: decl(t, "title char NOT NULL")},
		types.Field{Decl: decl(t, "author_fk int")},
	)
	catalog.Register("Author")

	TranslateCatalog(catalog)

	require.Len(t, book.Fields, 2)
	assert.Equal(t, types.BoundedText, book.Fields[0].Descriptor.Type)
	assert.False(t, book.Fields[0].Descriptor.Nullable)
	assert.Equal(t, types.Relation, book.Fields[1].Descriptor.Type)
}

func TestIsKnownType(t *testing.T) {
	for _, declared := range []string{"int", "char", "date"} {
		assert.True(t, IsKnownType(declared), declared)
	}
	for _, declared := range []string{"varchar", "text", "INT", ""} {
		assert.False(t, IsKnownType(declared), declared)
	}
}
