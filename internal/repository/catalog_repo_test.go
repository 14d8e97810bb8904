package repository_test

import (
	"testing"

	"pricex-backend/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestCatalogRepoFindByIDRejectsMalformedID(t *testing.T) {
	// Malformed ids must short-circuit to not-found before any query
	// hits the uuid-typed column; a nil handle proves no query runs.
	catalog := repository.NewCatalogRepo(nil)

	for _, id := range []string{"999", "abc", ""} {
		product, err := catalog.FindByID(id)
		assert.Nil(t, product, id)
		assert.ErrorIs(t, err, repository.ErrProductNotFound, id)
	}
}
