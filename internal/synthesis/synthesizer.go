// Package synthesis matches source controls into a category's template
// slots, condenses their text, deduplicates overlapping obligations across
// frameworks, and emits framework-reference annotations.
package synthesis

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
	"unicode"

	"unify/internal/framework"
	"unify/internal/requirements"
	"unify/internal/synthesis/metrics"
	"unify/internal/unified"
	"unify/internal/unified/templates"
)

// maxClausesPerSlot caps the synthesized description. When more distinct
// obligations remain after deduplication, the highest-authority frameworks'
// clauses win.
const maxClausesPerSlot = 2

// Outcome classifies a synthesis result. The empty conditions are expected,
// recoverable states carried as values, never as errors.
type Outcome string

const (
	OutcomeGenerated      Outcome = "generated"
	OutcomeNoTemplate     Outcome = "no_template"
	OutcomeNoRequirements Outcome = "no_requirements"
)

// Result is the outcome of synthesizing one category. Requirement and
// Template are set only for OutcomeGenerated; Message carries the
// user-facing explanation for the other outcomes.
type Result struct {
	Outcome     Outcome
	Message     string
	Requirement *unified.GeneratedRequirement
	Template    *unified.Template
}

// Synthesizer matches controls against templates. Stateless between calls;
// safe for concurrent use.
type Synthesizer struct {
	templates *templates.Store
	extractor ClauseExtractor
	authority map[framework.ID]int
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithExtractor replaces the default regex clause extractor.
func WithExtractor(e ClauseExtractor) Option {
	return func(s *Synthesizer) {
		if e != nil {
			s.extractor = e
		}
	}
}

// WithAuthorityOrder overrides the framework authority ranking used to pick
// clauses when a slot collects more than it can keep.
func WithAuthorityOrder(order []framework.ID) Option {
	return func(s *Synthesizer) {
		if len(order) > 0 {
			s.authority = authorityRanks(order)
		}
	}
}

// WithLogger sets a logger for synthesis diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synthesizer) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Synthesizer) {
		s.metrics = m
	}
}

// New constructs a Synthesizer over the given template store.
func New(tpls *templates.Store, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		templates: tpls,
		extractor: NewRegexExtractor(),
		authority: authorityRanks(framework.DefaultAuthorityOrder),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize produces the unified requirement for one category from its
// pre-filtered control set. Output is deterministic given deterministic
// control ordering: same category, same controls, same result bytes.
func (s *Synthesizer) Synthesize(ctx context.Context, categoryID string, controls []requirements.SourceRequirement) (*Result, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveSynthesizeLatency(categoryID, time.Since(start))
	}()

	tpl, ok := s.templates.TemplateFor(categoryID)
	if !ok {
		s.metrics.IncrementOutcome(string(OutcomeNoTemplate))
		return &Result{
			Outcome: OutcomeNoTemplate,
			Message: fmt.Sprintf("no unified requirement template exists for category %q", categoryID),
		}, nil
	}

	if len(controls) == 0 {
		s.metrics.IncrementOutcome(string(OutcomeNoRequirements))
		return &Result{
			Outcome: OutcomeNoRequirements,
			Message: fmt.Sprintf("no requirements matched the selected frameworks for category %q", categoryID),
		}, nil
	}

	assigned, unmatched := assignSlots(tpl, controls)
	s.metrics.AddUnmatchedControls(unmatched)
	if unmatched > 0 && s.logger != nil {
		s.logger.DebugContext(ctx, "controls matched no slot",
			"category", categoryID,
			"unmatched", unmatched,
		)
	}

	gen := &unified.GeneratedRequirement{
		CategoryID: tpl.CategoryID,
		Title:      tpl.Title,
		Groups:     append([]unified.Group{}, tpl.Groups...),
	}

	for i, slot := range tpl.Slots {
		slotControls := assigned[i]
		if len(slotControls) == 0 {
			continue
		}
		contribs := groupContributions(slotControls)
		gen.Subs = append(gen.Subs, unified.GeneratedSub{
			Letter:        slot.Letter,
			Title:         slot.Title,
			Description:   s.condense(slot, slotControls),
			Contributions: contribs,
			References:    buildReferences(contribs),
		})
	}

	s.metrics.IncrementOutcome(string(OutcomeGenerated))
	return &Result{Outcome: OutcomeGenerated, Requirement: gen, Template: tpl}, nil
}

// assignSlots partitions controls over template slots. Each control goes to
// the slot it scores highest against; ties break toward the earlier slot
// (first-match-wins by template order). This strict partitioning is a design
// simplification, not semantic truth: a control genuinely relevant to two
// slots contributes only to one. Controls scoring zero everywhere are
// dropped, not errored.
func assignSlots(tpl *unified.Template, controls []requirements.SourceRequirement) (map[int][]requirements.SourceRequirement, int) {
	assigned := make(map[int][]requirements.SourceRequirement)
	unmatched := 0

	for _, control := range controls {
		text := strings.ToLower(control.Title + " " + control.Description)
		bestSlot, bestScore := -1, 0
		for i, slot := range tpl.Slots {
			score := keywordScore(text, slot.Keywords)
			if score > bestScore {
				bestSlot, bestScore = i, score
			}
		}
		if bestSlot < 0 {
			unmatched++
			continue
		}
		assigned[bestSlot] = append(assigned[bestSlot], control)
	}
	return assigned, unmatched
}

// keywordScore counts how many of the slot's keywords appear in the
// control's lowercased title+description.
func keywordScore(loweredText string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if strings.Contains(loweredText, strings.ToLower(kw)) {
			score++
		}
	}
	return score
}

type clauseCandidate struct {
	text string
	rank int
}

// condense builds a slot's synthesized description: extract obligation
// clauses from every contributing control, collapse near-duplicates across
// frameworks, and keep at most maxClausesPerSlot, preferring the
// highest-authority framework. Falls back to the slot's baseline text when
// no control yields an extractable clause.
func (s *Synthesizer) condense(slot unified.Slot, controls []requirements.SourceRequirement) string {
	var candidates []clauseCandidate
	seen := make(map[string]int)

	for _, control := range controls {
		rank := s.authorityRank(control.Framework)
		for _, clause := range s.extractor.Extract(control.Description) {
			key := clauseKey(clause)
			if idx, dup := seen[key]; dup {
				// Same obligation stated by another framework: keep the
				// higher-authority wording.
				if rank < candidates[idx].rank {
					candidates[idx] = clauseCandidate{text: clause, rank: rank}
				}
				continue
			}
			seen[key] = len(candidates)
			candidates = append(candidates, clauseCandidate{text: clause, rank: rank})
		}
	}

	if len(candidates) == 0 {
		return slot.Baseline
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].rank < candidates[j].rank
	})
	if len(candidates) > maxClausesPerSlot {
		candidates = candidates[:maxClausesPerSlot]
	}

	clauses := make([]string, len(candidates))
	for i, c := range candidates {
		clauses[i] = c.text
	}
	return sentence(strings.Join(clauses, "; "))
}

func (s *Synthesizer) authorityRank(id framework.ID) int {
	if rank, ok := s.authority[id]; ok {
		return rank
	}
	return len(s.authority)
}

func authorityRanks(order []framework.ID) map[framework.ID]int {
	ranks := make(map[framework.ID]int, len(order))
	for i, id := range order {
		ranks[id] = i
	}
	return ranks
}

// sentence capitalizes the first rune and terminates with a period.
func sentence(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes) + "."
}
