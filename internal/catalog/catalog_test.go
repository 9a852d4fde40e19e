package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/marketpulse/internal/types"
)

func TestNew_BuildsIndexes(t *testing.T) {
	cat, err := New([]types.Item{
		{ID: "job-1", Type: types.ItemTypeJob, Title: "ML Engineer", Slug: "ml-engineer"},
		{ID: "job-2", Type: types.ItemTypeJob, Title: "Data Scientist", Slug: "data-scientist"},
		{ID: "co-1", Type: types.ItemTypeCompany, Title: "Anthropic", Slug: "anthropic"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, cat.Len())
	assert.Len(t, cat.ItemsOfType(types.ItemTypeJob), 2)
	assert.Len(t, cat.ItemsOfType(types.ItemTypeCompany), 1)
	assert.Empty(t, cat.ItemsOfType(types.ItemTypeArticle))

	got := cat.Get("co-1")
	require.NotNil(t, got)
	assert.Equal(t, "Anthropic", got.Title)
	assert.Nil(t, cat.Get("missing"))
}

func TestNew_FillsSlugFromTitle(t *testing.T) {
	cat, err := New([]types.Item{
		{ID: "job-1", Type: types.ItemTypeJob, Title: "Senior ML Engineer (Zürich)"},
	})
	require.NoError(t, err)

	item := cat.Get("job-1")
	require.NotNil(t, item)
	assert.Equal(t, "senior-ml-engineer-zurich", item.Slug)
	assert.Equal(t, "/jobs/senior-ml-engineer-zurich/", item.URLPath())
}

func TestNew_KeepsExplicitSlug(t *testing.T) {
	cat, err := New([]types.Item{
		{ID: "job-1", Type: types.ItemTypeJob, Title: "ML Engineer", Slug: "custom-slug"},
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", cat.Get("job-1").Slug)
}

func TestNew_RejectsDuplicateID(t *testing.T) {
	_, err := New([]types.Item{
		{ID: "job-1", Type: types.ItemTypeJob, Title: "First"},
		{ID: "job-1", Type: types.ItemTypeJob, Title: "Second"},
	})
	require.Error(t, err)

	var dupErr *DuplicateIDError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "job-1", dupErr.ID)
}

func TestNew_RejectsInvalidItem(t *testing.T) {
	_, err := New([]types.Item{
		{ID: "job-1", Type: types.ItemTypeJob, Title: "Fine"},
		{ID: "job-2", Type: types.ItemTypeJob}, // missing title
	})
	require.Error(t, err)

	var invErr *InvalidItemError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, 1, invErr.Index)
	assert.Equal(t, "job-2", invErr.ID)
}

func TestLoadFile_ValidCatalog(t *testing.T) {
	path := writeTempCatalog(t, `{
		"items": [
			{"id": "job-1", "type": "job", "title": "ML Engineer", "related_child_count": 0},
			{"id": "loc-1", "type": "location_landing", "title": "Jobs in Berlin", "related_child_count": 7}
		]
	}`)

	cat, err := LoadFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())
	assert.Equal(t, 7, cat.Get("loc-1").RelatedChildCount)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"), "")
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadFile_MalformedJSON(t *testing.T) {
	path := writeTempCatalog(t, `{"items": [`)

	_, err := LoadFile(path, "")
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadFile_SchemaRejectsUnknownType(t *testing.T) {
	schemaPath := writeTempSchema(t)
	path := writeTempCatalog(t, `{
		"items": [
			{"id": "x-1", "type": "widget", "title": "Not a real type", "related_child_count": 0}
		]
	}`)

	_, err := LoadFile(path, schemaPath)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Message, "schema validation")
}

func writeTempCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeTempSchema(t *testing.T) string {
	t.Helper()
	schema := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["items"],
		"properties": {
			"items": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["id", "type", "title"],
					"properties": {
						"id": {"type": "string"},
						"type": {"enum": ["job", "company", "article", "tool", "salary_page", "location_landing", "skill_landing", "tag_page"]},
						"title": {"type": "string"}
					}
				}
			}
		}
	}`
	path := filepath.Join(t.TempDir(), "catalog.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(schema), 0o644))
	return path
}
