package requirements

import (
	"context"
	"sort"

	"unify/internal/framework"
)

// Index assigns every source control to exactly one unified category and
// serves per-category, per-selection control sets. Built once per batch run
// from a Store; immutable afterwards.
type Index struct {
	byCategory map[string][]SourceRequirement
	categories []Category
	total      int
}

// LoadIndex fetches the catalog from the store and builds the index. The
// store enforces the single-category invariant when loading, so the index
// never has to merge or deduplicate category memberships at query time.
func LoadIndex(ctx context.Context, store Store) (*Index, error) {
	reqs, err := store.ListRequirements(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return NewIndex(reqs, categories), nil
}

// NewIndex builds an index from an already-validated catalog. Controls are
// pre-sorted per category by framework declaration order, then control-code
// lexical order, so query results are reproducible.
func NewIndex(reqs []SourceRequirement, categories []Category) *Index {
	byCategory := make(map[string][]SourceRequirement)
	for _, r := range reqs {
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}
	for _, controls := range byCategory {
		sort.SliceStable(controls, func(i, j int) bool {
			di, dj := framework.DeclarationIndex(controls[i].Framework), framework.DeclarationIndex(controls[j].Framework)
			if di != dj {
				return di < dj
			}
			return controls[i].Code < controls[j].Code
		})
	}
	return &Index{
		byCategory: byCategory,
		categories: append([]Category{}, categories...),
		total:      len(reqs),
	}
}

// ControlsFor returns the category's controls whose framework and tier are
// present in the active set, in stable order.
func (ix *Index) ControlsFor(categoryID string, active framework.ActiveSet) []SourceRequirement {
	var out []SourceRequirement
	for _, r := range ix.byCategory[categoryID] {
		if active.Includes(r.Framework, r.Tier) {
			out = append(out, r)
		}
	}
	return out
}

// ControlCount returns the number of source controls across all categories.
func (ix *Index) ControlCount() int {
	return ix.total
}

// Categories returns the unified categories the index was loaded with.
func (ix *Index) Categories() []Category {
	return append([]Category{}, ix.categories...)
}
