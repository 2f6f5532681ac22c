package templates

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"unify/internal/unified"
)

// templateFile is the YAML shape of one template file.
type templateFile struct {
	Category string `yaml:"category"`
	Title    string `yaml:"title"`
	Slots    []struct {
		Letter   string   `yaml:"letter"`
		Title    string   `yaml:"title"`
		Baseline string   `yaml:"baseline"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"slots"`
	Groups []struct {
		Name string `yaml:"name"`
		From string `yaml:"from"`
		To   string `yaml:"to"`
	} `yaml:"groups"`
}

// LoadDir reads every .yaml/.yml file in dir as one template each.
// Structural validation happens in New, not here.
func LoadDir(dir string) ([]unified.Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read templates dir: %w", err)
	}

	var tpls []unified.Template
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
			return nil, fmt.Errorf("read template file %s: %w", entry.Name(), err)
		}

		var file templateFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse template file %s: %w", entry.Name(), err)
		}
		if file.Category == "" {
			return nil, fmt.Errorf("template file %s: missing category", entry.Name())
		}

		tpl := unified.Template{CategoryID: file.Category, Title: file.Title}
		for _, s := range file.Slots {
			tpl.Slots = append(tpl.Slots, unified.Slot{
				Letter:   s.Letter,
				Title:    s.Title,
				Baseline: s.Baseline,
				Keywords: s.Keywords,
			})
		}
		for _, g := range file.Groups {
			tpl.Groups = append(tpl.Groups, unified.Group{Name: g.Name, From: g.From, To: g.To})
		}
		tpls = append(tpls, tpl)
	}

	return tpls, nil
}
