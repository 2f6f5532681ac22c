// Package templates serves the unified requirement templates: the fixed,
// lettered skeletons each category's synthesized output is organized into.
// Templates are static configuration, loaded once at startup and read-only
// afterwards.
package templates

import (
	"fmt"

	"unify/internal/unified"
)

// Store holds the loaded templates, keyed by category.
type Store struct {
	byCategory map[string]*unified.Template
}

// New validates the templates and builds the store.
func New(tpls []unified.Template) (*Store, error) {
	byCategory := make(map[string]*unified.Template, len(tpls))
	for i := range tpls {
		tpl := tpls[i]
		if err := validateTemplate(&tpl); err != nil {
			return nil, fmt.Errorf("template %q: %w", tpl.CategoryID, err)
		}
		if _, exists := byCategory[tpl.CategoryID]; exists {
			return nil, fmt.Errorf("template %q: duplicate category", tpl.CategoryID)
		}
		byCategory[tpl.CategoryID] = &tpl
	}
	return &Store{byCategory: byCategory}, nil
}

// TemplateFor returns the template for a category. The second return value
// is false when the category has no synthesis rules; callers surface that as
// a user-facing outcome, never a crash.
func (s *Store) TemplateFor(categoryID string) (*unified.Template, bool) {
	tpl, ok := s.byCategory[categoryID]
	return tpl, ok
}

// validateTemplate enforces the structural rules every template must satisfy:
// letters lowercase, unique, and densely ordered from "a"; every slot with at
// least one keyword; group ranges within the slot range.
func validateTemplate(tpl *unified.Template) error {
	if len(tpl.Slots) == 0 {
		return fmt.Errorf("no slots")
	}
	for i, slot := range tpl.Slots {
		want := string(rune('a' + i))
		if slot.Letter != want {
			return fmt.Errorf("slot %d: letter %q, want %q (letters must be dense from 'a')", i, slot.Letter, want)
		}
		if len(slot.Keywords) == 0 {
			return fmt.Errorf("slot %q: no matching keywords", slot.Letter)
		}
	}
	last := tpl.Slots[len(tpl.Slots)-1].Letter
	for _, g := range tpl.Groups {
		if g.From > g.To {
			return fmt.Errorf("group %q: range %s-%s is inverted", g.Name, g.From, g.To)
		}
		if g.From < "a" || g.To > last {
			return fmt.Errorf("group %q: range %s-%s outside slots a-%s", g.Name, g.From, g.To, last)
		}
	}
	return nil
}
