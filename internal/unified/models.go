// Package unified holds the domain model for unified requirements: the
// lettered templates categories are synthesized into, the generated output,
// and the coverage validation over it.
package unified

import "unify/internal/framework"

// Slot is one lettered sub-requirement position within a template: a single
// lowercase letter (unique and densely ordered within the template), a
// working title, a baseline description, and the keywords source controls are
// matched against.
type Slot struct {
	Letter   string
	Title    string
	Baseline string
	Keywords []string
}

// Group names a fixed letter range rendered as its own sub-section.
// Declarative presentation metadata on the template; never derived from slot
// content, so new categories need no code changes.
type Group struct {
	Name string
	From string // first letter, inclusive
	To   string // last letter, inclusive
}

// Contains reports whether the letter falls inside the group's range.
func (g Group) Contains(letter string) bool {
	return letter >= g.From && letter <= g.To
}

// Template is the fixed skeleton of sub-requirements one category's unified
// output is organized into. Static configuration, loaded once.
type Template struct {
	CategoryID string
	Title      string
	Slots      []Slot
	Groups     []Group
}

// Letters returns the template's slot letters in order.
func (t *Template) Letters() []string {
	letters := make([]string, len(t.Slots))
	for i, s := range t.Slots {
		letters[i] = s.Letter
	}
	return letters
}

// Contribution is one framework's share of a generated sub-requirement: the
// framework plus its contributing control codes, sorted.
type Contribution struct {
	Framework framework.ID
	Codes     []string
}

// GeneratedSub is one synthesized lettered sub-requirement. Ephemeral,
// recomputed on every request.
type GeneratedSub struct {
	Letter        string
	Title         string
	Description   string
	Contributions []Contribution
	References    string
}

// GeneratedRequirement is the synthesized unified requirement for one
// category under one framework selection. Only slots that received at least
// one contributing control appear in Subs.
type GeneratedRequirement struct {
	CategoryID string
	Title      string
	Subs       []GeneratedSub
	Groups     []Group
}

// FilledLetters returns the letters of slots that received contributions.
func (g *GeneratedRequirement) FilledLetters() map[string]struct{} {
	filled := make(map[string]struct{}, len(g.Subs))
	for _, sub := range g.Subs {
		filled[sub.Letter] = struct{}{}
	}
	return filled
}

// ValidationResult reports the completeness of a synthesized category.
// Derived, never stored.
type ValidationResult struct {
	IsValid             bool
	Coverage            int // 0-100
	MissingRequirements []string
	Suggestions         []string
}
