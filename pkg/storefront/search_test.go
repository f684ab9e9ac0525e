package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture() []Product {
	return []Product{
		{ID: "p1", Name: "Midnight Serenity", Category: CategoryCollection, Description: "Crafted with precision and elegance"},
		{ID: "p2", Name: "Ocean Master Pro", Category: CategorySpotlight, Description: "Professional deep-sea diving watch"},
		{ID: "p3", Name: "Nova Classic", Category: CategoryCollection, Description: "Minimal everyday luxury watch"},
	}
}

func TestSearchProducts(t *testing.T) {
	products := searchFixture()

	t.Run("Name match", func(t *testing.T) {
		got := SearchProducts("midnight", products)
		require.Len(t, got, 1)
		assert.Equal(t, "p1", got[0].ID)
	})

	t.Run("Description match", func(t *testing.T) {
		got := SearchProducts("diving", products)
		require.Len(t, got, 1)
		assert.Equal(t, "p2", got[0].ID)
	})

	t.Run("Category match", func(t *testing.T) {
		got := SearchProducts("spotlight", products)
		require.Len(t, got, 1)
		assert.Equal(t, "p2", got[0].ID)
	})

	t.Run("Word prefix match", func(t *testing.T) {
		got := SearchProducts("seren", products)
		require.Len(t, got, 1)
		assert.Equal(t, "p1", got[0].ID)
	})

	t.Run("Multiple results", func(t *testing.T) {
		got := SearchProducts("watch", products)
		assert.Len(t, got, 2)
	})

	t.Run("No match", func(t *testing.T) {
		assert.Empty(t, SearchProducts("chronograph", products))
	})

	t.Run("Blank query", func(t *testing.T) {
		assert.Empty(t, SearchProducts("   ", products))
		assert.Empty(t, SearchProducts("", products))
	})

	t.Run("Empty catalog", func(t *testing.T) {
		assert.Empty(t, SearchProducts("watch", nil))
	})
}
