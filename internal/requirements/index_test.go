package requirements

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unify/internal/framework"
)

var testCategories = []Category{
	{ID: "asset-management", Name: "Asset Management"},
	{ID: "access-control", Name: "Access Control"},
}

func testCatalog() []SourceRequirement {
	return []SourceRequirement{
		{ID: "r1", Framework: framework.ISO27001, Code: "A.5.9", Title: "Inventory of assets", Description: "An inventory of information assets shall be maintained.", Category: "asset-management"},
		{ID: "r2", Framework: framework.ISO27001, Code: "A.5.10", Title: "Acceptable use", Description: "Rules for acceptable use must be established.", Category: "asset-management"},
		{ID: "r3", Framework: framework.CISControls, Tier: framework.TierIG1, Code: "1.1", Title: "Asset inventory", Description: "Establish and maintain a detailed enterprise asset inventory.", Category: "asset-management"},
		{ID: "r4", Framework: framework.CISControls, Tier: framework.TierIG2, Code: "1.2", Title: "Unauthorized assets", Description: "Ensure a process exists to address unauthorized assets.", Category: "asset-management"},
		{ID: "r5", Framework: framework.CISControls, Tier: framework.TierIG3, Code: "1.5", Title: "Passive discovery", Description: "Use a passive discovery tool to identify assets.", Category: "asset-management"},
		{ID: "r6", Framework: framework.GDPR, Code: "Article 30", Title: "Records of processing", Description: "Controllers must maintain records of processing activities.", Category: "asset-management"},
		{ID: "r7", Framework: framework.ISO27001, Code: "A.9.1.1", Title: "Access control policy", Description: "An access control policy shall be established.", Category: "access-control"},
	}
}

func activeSet(t *testing.T, sel framework.Selection) framework.ActiveSet {
	t.Helper()
	return framework.NewResolver().Resolve(sel)
}

func TestControlsFor_FiltersByCategoryAndFramework(t *testing.T) {
	ix := NewIndex(testCatalog(), testCategories)
	active := activeSet(t, framework.Selection{Enabled: map[framework.ID]bool{framework.ISO27001: true}})

	controls := ix.ControlsFor("asset-management", active)

	require.Len(t, controls, 2)
	for _, c := range controls {
		assert.Equal(t, framework.ISO27001, c.Framework)
		assert.Equal(t, "asset-management", c.Category)
	}
}

func TestControlsFor_ExcludesUnselectedFrameworks(t *testing.T) {
	// Exclusivity: controls of frameworks absent from the selection never
	// appear among the results.
	ix := NewIndex(testCatalog(), testCategories)
	active := activeSet(t, framework.Selection{Enabled: map[framework.ID]bool{framework.GDPR: true}})

	for _, c := range ix.ControlsFor("asset-management", active) {
		assert.Equal(t, framework.GDPR, c.Framework)
	}
}

func TestControlsFor_TierFilter(t *testing.T) {
	ix := NewIndex(testCatalog(), testCategories)
	active := activeSet(t, framework.Selection{
		Enabled: map[framework.ID]bool{framework.CISControls: true},
		Tier:    framework.TierIG2,
	})

	controls := ix.ControlsFor("asset-management", active)

	codes := make([]string, len(controls))
	for i, c := range controls {
		codes[i] = c.Code
	}
	assert.Equal(t, []string{"1.1", "1.2"}, codes, "ig1 and ig2 controls included, ig3-only excluded")
}

func TestControlsFor_StableOrder(t *testing.T) {
	ix := NewIndex(testCatalog(), testCategories)
	active := activeSet(t, framework.Selection{Enabled: map[framework.ID]bool{
		framework.ISO27001:    true,
		framework.CISControls: true,
		framework.GDPR:        true,
	}})

	controls := ix.ControlsFor("asset-management", active)

	var got []string
	for _, c := range controls {
		got = append(got, string(c.Framework)+"/"+c.Code)
	}
	// Framework declaration order, then control-code lexical order.
	assert.Equal(t, []string{
		"iso27001/A.5.10",
		"iso27001/A.5.9",
		"cisControls/1.1",
		"cisControls/1.2",
		"cisControls/1.5",
		"gdpr/Article 30",
	}, got)
}

func TestControlsFor_EmptySelection(t *testing.T) {
	ix := NewIndex(testCatalog(), testCategories)

	assert.Empty(t, ix.ControlsFor("asset-management", framework.ActiveSet{}))
}

func TestLoadIndex(t *testing.T) {
	store, err := NewInMemoryStore(testCatalog(), testCategories)
	require.NoError(t, err)

	ix, err := LoadIndex(context.Background(), store)
	require.NoError(t, err)

	cats := ix.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, "Access Control", cats[0].Name)
	assert.Equal(t, 7, ix.ControlCount())
}
