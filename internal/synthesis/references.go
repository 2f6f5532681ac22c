package synthesis

import (
	"sort"
	"strings"

	"unify/internal/framework"
	"unify/internal/requirements"
	"unify/internal/unified"
	pstrings "unify/pkg/platform/strings"
)

// groupContributions groups a slot's assigned controls by framework in
// catalog declaration order, each framework's control codes sorted.
func groupContributions(controls []requirements.SourceRequirement) []unified.Contribution {
	codesByFramework := make(map[framework.ID][]string)
	for _, c := range controls {
		codesByFramework[c.Framework] = append(codesByFramework[c.Framework], c.Code)
	}

	ids := make([]framework.ID, 0, len(codesByFramework))
	for id := range codesByFramework {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return framework.DeclarationIndex(ids[i]) < framework.DeclarationIndex(ids[j])
	})

	contribs := make([]unified.Contribution, 0, len(ids))
	for _, id := range ids {
		codes := pstrings.DedupeAndTrim(codesByFramework[id])
		sort.Strings(codes)
		contribs = append(contribs, unified.Contribution{Framework: id, Codes: codes})
	}
	return contribs
}

// buildReferences renders the framework-reference string for a slot, e.g.
// "ISO/IEC 27001: A.5.9, A.5.10; CIS Controls v8: 1.1".
func buildReferences(contribs []unified.Contribution) string {
	parts := make([]string, 0, len(contribs))
	for _, c := range contribs {
		parts = append(parts, framework.DisplayName(c.Framework)+": "+strings.Join(c.Codes, ", "))
	}
	return strings.Join(parts, "; ")
}
