package framework

import (
	"sort"
	"strings"
)

// ActiveSet is the resolved, ordered set of frameworks (and their included
// tiers) used as the filter for everything downstream. Order follows catalog
// declaration order, which keeps all derived output deterministic.
type ActiveSet []ActiveFramework

// Empty reports whether the set contains no frameworks.
func (s ActiveSet) Empty() bool {
	return len(s) == 0
}

// IDs returns the framework IDs in declaration order.
func (s ActiveSet) IDs() []ID {
	ids := make([]ID, len(s))
	for i, a := range s {
		ids[i] = a.ID
	}
	return ids
}

// Includes reports whether a control belonging to the given framework and
// tagged with the given tier passes the filter. An empty tier matches any
// tier constraint.
func (s ActiveSet) Includes(id ID, tier Tier) bool {
	for _, a := range s {
		if a.ID == id {
			return a.includesTier(tier)
		}
	}
	return false
}

// Key renders a canonical text form of the set, e.g.
// "cisControls[ig1,ig2];iso27001". Identical selections always produce
// identical keys, so the key is safe to use for cache fingerprints.
func (s ActiveSet) Key() string {
	if len(s) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(s))
	for _, a := range s {
		if a.Tiers == nil {
			parts = append(parts, string(a.ID))
			continue
		}
		tiers := make([]string, len(a.Tiers))
		for i, t := range a.Tiers {
			tiers[i] = string(t)
		}
		sort.Strings(tiers)
		parts = append(parts, string(a.ID)+"["+strings.Join(tiers, ",")+"]")
	}
	return strings.Join(parts, ";")
}
