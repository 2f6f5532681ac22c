package requirements

import (
	"fmt"
	"strings"

	"unify/pkg/platform/sentinel"
)

// ValidateIntegrity enforces the single-category invariant over a loaded
// catalog: every control is claimed by exactly one unified category.
//
// Two defect shapes are rejected, both observed in the legacy control
// library:
//   - the same control ID appearing under two different categories
//   - a free-text tag naming a unified category, duplicating (or
//     contradicting) the structured assignment
//
// Violations fail fast and loud at load time. Tolerating them at query time
// silently produces duplicated unified content downstream.
func ValidateIntegrity(reqs []SourceRequirement, categories []Category) error {
	known := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		known[strings.ToLower(c.ID)] = struct{}{}
	}

	assigned := make(map[string]string, len(reqs))
	var violations []string

	for _, r := range reqs {
		if r.Category == "" {
			violations = append(violations, fmt.Sprintf("%s/%s: no category assigned", r.Framework, r.Code))
			continue
		}
		if prev, ok := assigned[r.ID]; ok && prev != r.Category {
			violations = append(violations, fmt.Sprintf("%s/%s: assigned to both %q and %q", r.Framework, r.Code, prev, r.Category))
			continue
		}
		assigned[r.ID] = r.Category

		for _, tag := range r.Tags {
			if _, isCategory := known[strings.ToLower(strings.TrimSpace(tag))]; isCategory {
				violations = append(violations, fmt.Sprintf("%s/%s: stale category tag %q must be purged", r.Framework, r.Code, tag))
			}
		}
	}

	if len(violations) > 0 {
		return fmt.Errorf("%w: %s", sentinel.ErrIntegrity, strings.Join(violations, "; "))
	}
	return nil
}
