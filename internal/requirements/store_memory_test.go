package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unify/internal/framework"
	"unify/pkg/platform/sentinel"
)

func TestNewInMemoryStore_AcceptsCleanCatalog(t *testing.T) {
	store, err := NewInMemoryStore(testCatalog(), testCategories)

	require.NoError(t, err)
	require.NotNil(t, store)
}

func TestNewInMemoryStore_RejectsDuplicateCategoryAssignment(t *testing.T) {
	reqs := testCatalog()
	// Same control ID claimed by a second category.
	reqs = append(reqs, SourceRequirement{
		ID: "r1", Framework: framework.ISO27001, Code: "A.5.9",
		Title: "Inventory of assets", Description: "Duplicate claim.",
		Category: "access-control",
	})

	_, err := NewInMemoryStore(reqs, testCategories)

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrIntegrity)
	assert.Contains(t, err.Error(), "A.5.9")
}

func TestNewInMemoryStore_RejectsStaleCategoryTags(t *testing.T) {
	reqs := testCatalog()
	// Legacy free-text tag duplicating the category assignment.
	reqs[0].Tags = []string{"Asset-Management", "legacy"}

	_, err := NewInMemoryStore(reqs, testCategories)

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrIntegrity)
	assert.Contains(t, err.Error(), "stale category tag")
}

func TestNewInMemoryStore_RejectsMissingCategory(t *testing.T) {
	reqs := testCatalog()
	reqs[0].Category = ""

	_, err := NewInMemoryStore(reqs, testCategories)

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrIntegrity)
}

func TestNewInMemoryStore_AllowsHarmlessTags(t *testing.T) {
	reqs := testCatalog()
	reqs[0].Tags = []string{"annex-a", "organizational"}

	_, err := NewInMemoryStore(reqs, testCategories)

	require.NoError(t, err)
}
