package unified

import "math"

// Validate computes the completeness of a generated requirement against its
// template. This is pure domain logic - no I/O, no side effects.
//
// Coverage is the percentage of slots with at least one contributing control,
// rounded to the nearest integer. A template with zero slots scores 0; that
// state should not occur but must not divide by zero.
func Validate(generated *GeneratedRequirement, template *Template) ValidationResult {
	total := len(template.Slots)
	if total == 0 {
		return ValidationResult{
			Suggestions: []string{"no sections found for category " + template.CategoryID},
		}
	}

	filled := generated.FilledLetters()

	var missing []string
	for _, slot := range template.Slots {
		if _, ok := filled[slot.Letter]; !ok {
			missing = append(missing, slot.Letter)
		}
	}

	covered := total - len(missing)
	result := ValidationResult{
		IsValid:             covered > 0,
		Coverage:            int(math.Round(100 * float64(covered) / float64(total))),
		MissingRequirements: missing,
	}

	switch {
	case covered == 0:
		result.Suggestions = []string{"no selected framework contributes controls to this category; enable additional frameworks"}
	case len(missing) > 0:
		result.Suggestions = []string{"enable additional frameworks to fill the remaining sub-requirements"}
	}

	return result
}
