package photo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalogDedupSameAsset(t *testing.T) {
	// Two records pointing at the same service identifier with different
	// sizing must collapse to the first one.
	records := []Record{
		{ID: "hero", Title: "Sunset", URL: "https://cache.example.com/is/image/prod/photo-1:Wide-Hor"},
		{ID: "dupe", Title: "Sunset again", URL: "https://cache.example.com/is/image/prod/photo-1:Tall?wid=900"},
	}
	got := BuildCatalog(records)
	require.Len(t, got, 1)
	assert.Equal(t, "hero", got[0].ID)
}

func TestBuildCatalogPreservesOrder(t *testing.T) {
	records := []Record{
		{ID: "a", Title: "A", URL: "https://cache.example.com/is/image/prod/photo-a"},
		{ID: "b", Title: "B", URL: "https://photos.example.org/b.jpg"},
		{ID: "a2", Title: "A again", URL: "https://cache.example.com/is/image/prod/photo-a:Wide"},
		{ID: "c", Title: "C", URL: "https://media.example.com/content/dam/resort/c.jpg"},
	}
	got := BuildCatalog(records)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestBuildCatalogSourcesEndWithCanonical(t *testing.T) {
	records := []Record{
		{ID: "x", Title: "X", URL: "https://cache.example.com/is/image/prod/photo-x"},
		{ID: "y", Title: "Y", URL: "not a parseable url"},
	}
	for _, p := range BuildCatalog(records) {
		require.NotEmpty(t, p.Sources)
		var want string
		for _, rec := range records {
			if rec.ID == p.ID {
				want = rec.URL
			}
		}
		assert.Equal(t, want, p.Sources[len(p.Sources)-1])
	}
}

func TestBuildCatalogEmpty(t *testing.T) {
	assert.Empty(t, BuildCatalog(nil))
}
