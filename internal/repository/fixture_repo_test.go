package repository_test

import (
	"testing"

	"pricex-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureCatalogFindByID(t *testing.T) {
	catalog := repository.NewFixtureCatalog()

	t.Run("known ids", func(t *testing.T) {
		product, err := catalog.FindByID("1")
		require.NoError(t, err)
		assert.Equal(t, "iPhone 15 Pro Max", product.Name)
		assert.Equal(t, 4.8, product.Rating)
		assert.Equal(t, 1234, product.ReviewCount)

		product, err = catalog.FindByID("2")
		require.NoError(t, err)
		assert.Equal(t, "Samsung Galaxy S24 Ultra", product.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		product, err := catalog.FindByID("999")
		assert.Nil(t, product)
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	})
}

func TestFixtureCatalogSearchByName(t *testing.T) {
	catalog := repository.NewFixtureCatalog()

	t.Run("case-insensitive substring", func(t *testing.T) {
		matches, err := catalog.SearchByName("IPHONE")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "1", matches[0].ID)
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		matches, err := catalog.SearchByName("")
		require.NoError(t, err)
		assert.Len(t, matches, 2)
	})

	t.Run("no match", func(t *testing.T) {
		matches, err := catalog.SearchByName("pixel")
		require.NoError(t, err)
		assert.NotNil(t, matches)
		assert.Empty(t, matches)
	})
}

func TestFixtureCatalogTrending(t *testing.T) {
	catalog := repository.NewFixtureCatalog()

	t.Run("limit below the dataset size", func(t *testing.T) {
		trending, err := catalog.Trending(1)
		require.NoError(t, err)
		assert.Len(t, trending, 1)
	})

	t.Run("limit above the dataset size is clamped", func(t *testing.T) {
		trending, err := catalog.Trending(50)
		require.NoError(t, err)
		assert.Len(t, trending, 2)
	})
}
