package requirements

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"unify/internal/framework"
)

// catalogFile is the YAML shape of one control-library file. One file per
// framework is the authoring convention, but nothing enforces it.
type catalogFile struct {
	Framework  string `yaml:"framework"`
	Categories []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"categories"`
	Requirements []struct {
		ID          string   `yaml:"id"`
		Tier        string   `yaml:"tier"`
		Code        string   `yaml:"code"`
		Title       string   `yaml:"title"`
		Description string   `yaml:"description"`
		Category    string   `yaml:"category"`
		Tags        []string `yaml:"tags"`
	} `yaml:"requirements"`
}

// LoadCatalogDir reads every .yaml/.yml file in dir and merges them into one
// control library. The result is validated for integrity by the store that
// consumes it.
func LoadCatalogDir(dir string) ([]SourceRequirement, []Category, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read catalog dir: %w", err)
	}

	var reqs []SourceRequirement
	var categories []Category
	seenCategories := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, nil, fmt.Errorf("read catalog file %s: %w", entry.Name(), err)
		}

		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, nil, fmt.Errorf("parse catalog file %s: %w", entry.Name(), err)
		}
		if file.Framework == "" {
			return nil, nil, fmt.Errorf("catalog file %s: missing framework identifier", entry.Name())
		}

		for _, c := range file.Categories {
			if _, ok := seenCategories[c.ID]; ok {
				continue
			}
			seenCategories[c.ID] = struct{}{}
			categories = append(categories, Category{ID: c.ID, Name: c.Name})
		}

		for _, r := range file.Requirements {
			reqs = append(reqs, SourceRequirement{
				ID:          r.ID,
				Framework:   framework.ID(file.Framework),
				Tier:        framework.Tier(r.Tier),
				Code:        r.Code,
				Title:       r.Title,
				Description: r.Description,
				Category:    r.Category,
				Tags:        r.Tags,
			})
		}
	}

	return reqs, categories, nil
}
