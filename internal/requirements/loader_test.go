package requirements

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unify/internal/framework"
)

const iso27001Catalog = `
framework: iso27001
categories:
  - id: asset-management
    name: Asset Management
requirements:
  - id: iso-a59
    code: A.5.9
    title: Inventory of information and other associated assets
    description: An inventory of information and other associated assets shall be developed and maintained.
    category: asset-management
  - id: iso-a510
    code: A.5.10
    title: Acceptable use of information
    description: Rules for the acceptable use of information must be established.
    category: asset-management
`

const cisCatalog = `
framework: cisControls
categories:
  - id: asset-management
    name: Asset Management
requirements:
  - id: cis-11
    tier: ig1
    code: "1.1"
    title: Establish and Maintain Detailed Enterprise Asset Inventory
    description: Establish and maintain an accurate, detailed, and up-to-date inventory of all enterprise assets.
    category: asset-management
`

func TestLoadCatalogDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "iso27001.yaml"), []byte(iso27001Catalog), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cis.yml"), []byte(cisCatalog), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	reqs, categories, err := LoadCatalogDir(dir)
	require.NoError(t, err)

	require.Len(t, reqs, 3)
	require.Len(t, categories, 1, "shared category declared once across files")
	assert.Equal(t, "asset-management", categories[0].ID)

	byID := make(map[string]SourceRequirement, len(reqs))
	for _, r := range reqs {
		byID[r.ID] = r
	}
	assert.Equal(t, framework.CISControls, byID["cis-11"].Framework)
	assert.Equal(t, framework.TierIG1, byID["cis-11"].Tier)
	assert.Equal(t, framework.ISO27001, byID["iso-a59"].Framework)
}

func TestLoadCatalogDir_MissingFramework(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("requirements: []"), 0o600))

	_, _, err := LoadCatalogDir(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing framework identifier")
}

func TestLoadCatalogDir_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(":\n  - ["), 0o600))

	_, _, err := LoadCatalogDir(dir)

	require.Error(t, err)
}
