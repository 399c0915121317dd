package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ginjaninja78/uml-models/internal/translator"
	"github.com/ginjaninja78/uml-models/internal/types"
)

func entityWith(catalog *types.Catalog, name string, fields ...types.FieldDecl) {
	e := catalog.Register(name)
	for _, d := range fields {
		e.Fields = append(e.Fields, types.Field{Decl: d})
	}
	translator.TranslateEntity(e)
}

func TestRender_EmptyCatalogIsPreambleOnly(t *testing.T) {
	assert.Equal(t, Preamble+"\n\n", Render(types.NewCatalog()))
}

func TestRender_EntityWithoutFields(t *testing.T) {
	catalog := types.NewCatalog()
	entityWith(catalog, "Author")

	want := "from django.db import models\n\n" +
		"class Author(models.Model):\n" +
		"    pass\n\n"
	assert.Equal(t, want, Render(catalog))
}

func TestRender_FieldsAndOrder(t *testing.T) {
	catalog := types.NewCatalog()
	entityWith(catalog, "Book",
		types.FieldDecl{Name: "title", DeclaredType: "char", Constraints: []string{"NOT", "NULL"}},
		types.FieldDecl{Name: "pages", DeclaredType: "int"},
		types.FieldDecl{Name: "published", DeclaredType: "date", Constraints: []string{"NOT", "NULL"}},
		types.FieldDecl{Name: "summary", DeclaredType: "blob"},
		types.FieldDecl{Name: "author_fk", DeclaredType: "int", Constraints: []string{"NOT", "NULL"}},
	)
	entityWith(catalog, "Author")

	want := "from django.db import models\n\n" +
		"class Book(models.Model):\n" +
		"    title = models.CharField(max_length=255, null=False)\n" +
		"    pages = models.IntegerField()\n" +
		"    published = models.DateField(null=False)\n" +
		"    summary = models.TextField()\n" +
		"    author_fk = models.ForeignKey(\"Author\", on_delete=models.CASCADE)\n\n" +
		"class Author(models.Model):\n" +
		"    pass\n\n"
	assert.Equal(t, want, Render(catalog))
}

func TestRender_IsDeterministic(t *testing.T) {
	catalog := types.NewCatalog()
	for _, name := range []string{"Zeta", "Alpha", "Mu", "Beta"} {
		entityWith(catalog, name, types.FieldDecl{Name: "id", DeclaredType: "int"})
	}

	first := Render(catalog)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Render(catalog))
	}
}

func TestFieldExpr_BoundedAndUnboundedDiffer(t *testing.T) {
	bounded := FieldExpr(types.FieldDescriptor{Type: types.BoundedText, MaxLength: 255, Nullable: true})
	unbounded := FieldExpr(types.FieldDescriptor{Type: types.UnboundedText, Nullable: true})

	assert.Equal(t, "models.CharField(max_length=255)", bounded)
	assert.Equal(t, "models.TextField()", unbounded)
}
