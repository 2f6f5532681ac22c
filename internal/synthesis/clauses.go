package synthesis

import (
	"regexp"
	"strings"

	pstrings "unify/pkg/platform/strings"
)

// ClauseExtractor pulls short imperative clauses out of control text. The
// extraction is heuristic; keeping it behind this interface lets the
// heuristic be swapped or tested independently of synthesis orchestration.
type ClauseExtractor interface {
	Extract(text string) []string
}

// RegexExtractor finds modal obligations ("must ...", "shall ...",
// "should ...", "requires ...", "includes ...") up to the end of the
// sentence or clause.
type RegexExtractor struct {
	re *regexp.Regexp
}

// NewRegexExtractor constructs the default clause extractor.
func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{
		re: regexp.MustCompile(`(?i)\b(?:must|shall|should|requires?|includes?)\b[^.;:]*`),
	}
}

func (e *RegexExtractor) Extract(text string) []string {
	matches := e.re.FindAllString(text, -1)
	clauses := make([]string, 0, len(matches))
	for _, m := range matches {
		clause := pstrings.TrimTerminalPunct(m)
		// A bare modal with nothing behind it is noise, not an obligation.
		if len(strings.Fields(clause)) < 2 {
			continue
		}
		clauses = append(clauses, clause)
	}
	return clauses
}

// clauseStopwords are dropped when computing a clause's dedup key. Modal
// verbs and articles vary freely between frameworks stating the same
// obligation ("must maintain an inventory" vs "shall maintain inventory").
var clauseStopwords = map[string]struct{}{
	"must": {}, "shall": {}, "should": {}, "will": {},
	"requires": {}, "require": {}, "required": {},
	"includes": {}, "include": {},
	"a": {}, "an": {}, "the": {}, "be": {},
}

// clauseKey normalizes a clause for near-duplicate detection: case and
// whitespace folded, stopwords removed. Clauses with equal keys are the same
// obligation.
func clauseKey(clause string) string {
	fields := strings.Fields(pstrings.Fold(clause))
	kept := fields[:0]
	for _, f := range fields {
		if _, skip := clauseStopwords[f]; !skip {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}
