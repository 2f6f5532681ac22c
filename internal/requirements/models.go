package requirements

import "unify/internal/framework"

// SourceRequirement is one atomic control defined by a specific framework.
// Long-lived reference data; the engine only reads it.
//
// A source requirement belongs to exactly one unified category. The legacy
// control library also carried free-text tags; a tag that names a category is
// a stale duplicate of the assignment and is rejected at load time (see
// Integrity).
type SourceRequirement struct {
	ID          string
	Framework   framework.ID
	Tier        framework.Tier // "" for untiered frameworks
	Code        string         // e.g. "A.9.1.1", "Article 6", "1.1"
	Title       string
	Description string
	Category    string // unified category ID, exactly one
	Tags        []string
}

// Category is a framework-agnostic grouping of related obligations. The set
// is stable and small (a few dozen).
type Category struct {
	ID   string
	Name string
}
