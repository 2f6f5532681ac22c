package framework

// Resolver expands a user's framework selection into the concrete set of
// active frameworks and tiers. This is pure domain logic - no I/O, no side
// effects. The function depends only on its input and the static catalog.
type Resolver struct {
	catalog []Framework
}

// NewResolver constructs a resolver over the built-in catalog.
func NewResolver() *Resolver {
	return NewResolverWithCatalog(Catalog)
}

// NewResolverWithCatalog constructs a resolver over an explicit catalog.
// Tests use this to exercise tier rules without the full built-in set.
func NewResolverWithCatalog(catalog []Framework) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve turns a selection into an ActiveSet, honoring tier containment.
//
// Rules:
//   - An empty selection resolves to an empty set, not an error.
//   - Identifiers not present in the catalog are ignored. The surrounding
//     system allows speculative forward-compatible keys, so unknown IDs are
//     expected input.
//   - Enabling a tiered framework with tier igN includes the union of all
//     tiers up to and including igN.
//   - Enabling a tiered framework without a tier value includes the full
//     catalog (no tier constraint). See DESIGN.md for this policy choice.
//
// Output order follows catalog declaration order regardless of map iteration
// order, so resolution is deterministic.
func (r *Resolver) Resolve(sel Selection) ActiveSet {
	if len(sel.Enabled) == 0 {
		return ActiveSet{}
	}

	active := make(ActiveSet, 0, len(sel.Enabled))
	for _, f := range r.catalog {
		if !sel.Enabled[f.ID] {
			continue
		}
		active = append(active, ActiveFramework{
			ID:    f.ID,
			Tiers: containedTiers(f, sel.Tier),
		})
	}
	return active
}

// containedTiers returns the union of tiers up to and including the selected
// tier, nil when the framework is untiered or no tier was selected.
func containedTiers(f Framework, selected Tier) []Tier {
	if !f.Tiered() || selected == "" {
		return nil
	}
	for i, t := range f.Tiers {
		if t == selected {
			tiers := make([]Tier, i+1)
			copy(tiers, f.Tiers[:i+1])
			return tiers
		}
	}
	// Selected tier not declared by this framework: treat as no constraint
	// rather than excluding the framework the user asked for.
	return nil
}
