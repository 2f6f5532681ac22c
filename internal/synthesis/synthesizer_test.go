package synthesis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unify/internal/framework"
	"unify/internal/requirements"
	"unify/internal/unified"
	"unify/internal/unified/templates"
)

func newTestSynthesizer(t *testing.T, opts ...Option) *Synthesizer {
	t.Helper()
	store, err := templates.New(templates.Defaults)
	require.NoError(t, err)
	return New(store, opts...)
}

func TestSynthesize_PartialFill(t *testing.T) {
	// Two ISO 27001 controls matching slots a and c of the seven-slot
	// asset-management template.
	s := newTestSynthesizer(t)
	controls := []requirements.SourceRequirement{
		{ID: "r1", Framework: framework.ISO27001, Code: "A.5.9", Title: "Inventory of assets",
			Description: "An inventory of information assets shall be developed and maintained.", Category: "asset-management"},
		{ID: "r2", Framework: framework.ISO27001, Code: "A.5.10", Title: "Acceptable use of information",
			Description: "Rules for the acceptable use of information must be documented.", Category: "asset-management"},
	}

	result, err := s.Synthesize(context.Background(), "asset-management", controls)
	require.NoError(t, err)
	require.Equal(t, OutcomeGenerated, result.Outcome)

	gen := result.Requirement
	require.Len(t, gen.Subs, 2)
	assert.Equal(t, "a", gen.Subs[0].Letter)
	assert.Equal(t, "c", gen.Subs[1].Letter)

	validation := unified.Validate(gen, result.Template)
	assert.True(t, validation.IsValid)
	assert.Equal(t, 29, validation.Coverage)
	assert.Equal(t, []string{"b", "d", "e", "f", "g"}, validation.MissingRequirements)
}

func TestSynthesize_NoTemplate(t *testing.T) {
	s := newTestSynthesizer(t)

	result, err := s.Synthesize(context.Background(), "diagramming", []requirements.SourceRequirement{
		{ID: "r1", Framework: framework.ISO27001, Code: "A.1", Title: "x", Description: "y", Category: "diagramming"},
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeNoTemplate, result.Outcome)
	assert.Contains(t, result.Message, "diagramming")
	assert.Nil(t, result.Requirement)
}

func TestSynthesize_NoControls(t *testing.T) {
	s := newTestSynthesizer(t)

	result, err := s.Synthesize(context.Background(), "asset-management", nil)

	require.NoError(t, err)
	assert.Equal(t, OutcomeNoRequirements, result.Outcome)
	assert.Contains(t, result.Message, "asset-management")
}

func TestSynthesize_CollapsesNearDuplicateClauses(t *testing.T) {
	// Two frameworks stating the same obligation produce one clause but both
	// frameworks' codes in the reference string.
	s := newTestSynthesizer(t)
	controls := []requirements.SourceRequirement{
		{ID: "r1", Framework: framework.ISO27001, Code: "A.5.9", Title: "Inventory of assets",
			Description: "The organization must maintain an inventory.", Category: "asset-management"},
		{ID: "r2", Framework: framework.CISControls, Tier: framework.TierIG1, Code: "1.1", Title: "Asset inventory",
			Description: "The enterprise shall maintain inventory.", Category: "asset-management"},
	}

	result, err := s.Synthesize(context.Background(), "asset-management", controls)
	require.NoError(t, err)
	require.Equal(t, OutcomeGenerated, result.Outcome)

	require.Len(t, result.Requirement.Subs, 1)
	sub := result.Requirement.Subs[0]

	assert.Equal(t, "Must maintain an inventory.", sub.Description, "one clause, not two")
	assert.Equal(t, "ISO/IEC 27001: A.5.9; CIS Controls v8: 1.1", sub.References)
	require.Len(t, sub.Contributions, 2)
}

func TestSynthesize_CapsClausesByAuthority(t *testing.T) {
	s := newTestSynthesizer(t)
	controls := []requirements.SourceRequirement{
		{ID: "r1", Framework: framework.GDPR, Code: "Article 30", Title: "Records of processing inventory",
			Description: "Controllers must maintain records of processing.", Category: "asset-management"},
		{ID: "r2", Framework: framework.ISO27001, Code: "A.5.9", Title: "Inventory of assets",
			Description: "An inventory shall be developed for all assets. Asset entries must be reviewed annually.", Category: "asset-management"},
	}

	result, err := s.Synthesize(context.Background(), "asset-management", controls)
	require.NoError(t, err)

	require.Len(t, result.Requirement.Subs, 1)
	desc := result.Requirement.Subs[0].Description
	// Three distinct clauses, capped at two; ISO 27001 outranks GDPR.
	assert.Equal(t, "Shall be developed for all assets; must be reviewed annually.", desc)
}

func TestSynthesize_BaselineFallback(t *testing.T) {
	// Controls without extractable modal clauses fall back to the slot's
	// baseline description.
	s := newTestSynthesizer(t)
	controls := []requirements.SourceRequirement{
		{ID: "r1", Framework: framework.CISControls, Tier: framework.TierIG1, Code: "1.1", Title: "Asset inventory",
			Description: "Establish and maintain a detailed enterprise asset inventory.", Category: "asset-management"},
	}

	result, err := s.Synthesize(context.Background(), "asset-management", controls)
	require.NoError(t, err)

	require.Len(t, result.Requirement.Subs, 1)
	assert.Equal(t, "Maintain a complete, current inventory of information assets.", result.Requirement.Subs[0].Description)
}

func TestSynthesize_DropsUnmatchedControls(t *testing.T) {
	s := newTestSynthesizer(t)
	controls := []requirements.SourceRequirement{
		{ID: "r1", Framework: framework.ISO27001, Code: "A.5.9", Title: "Inventory of assets",
			Description: "An inventory shall be maintained.", Category: "asset-management"},
		{ID: "r2", Framework: framework.ISO27001, Code: "A.99", Title: "Quantum telepathy",
			Description: "Completely unrelated to any slot.", Category: "asset-management"},
	}

	result, err := s.Synthesize(context.Background(), "asset-management", controls)
	require.NoError(t, err)

	require.Len(t, result.Requirement.Subs, 1)
	assert.Equal(t, "a", result.Requirement.Subs[0].Letter)
}

func TestSynthesize_FirstMatchWinsOnTies(t *testing.T) {
	// A control scoring equally against two slots lands in the earlier one.
	s := newTestSynthesizer(t)
	controls := []requirements.SourceRequirement{
		{ID: "r1", Framework: framework.ISO27001, Code: "A.5.9", Title: "Inventory accountability",
			Description: "Each inventory entry shall name an accountable party.", Category: "asset-management"},
	}

	result, err := s.Synthesize(context.Background(), "asset-management", controls)
	require.NoError(t, err)

	require.Len(t, result.Requirement.Subs, 1)
	assert.Equal(t, "a", result.Requirement.Subs[0].Letter)
}

func TestSynthesize_Deterministic(t *testing.T) {
	s := newTestSynthesizer(t)
	controls := []requirements.SourceRequirement{
		{ID: "r1", Framework: framework.ISO27001, Code: "A.5.9", Title: "Inventory of assets",
			Description: "An inventory shall be maintained.", Category: "asset-management"},
		{ID: "r2", Framework: framework.CISControls, Tier: framework.TierIG1, Code: "1.1", Title: "Asset inventory",
			Description: "Establish and maintain a detailed asset inventory; entries must be current.", Category: "asset-management"},
		{ID: "r3", Framework: framework.GDPR, Code: "Article 30", Title: "Records of processing classification",
			Description: "Processing records must be classified by sensitivity.", Category: "asset-management"},
	}

	first, err := s.Synthesize(context.Background(), "asset-management", controls)
	require.NoError(t, err)
	second, err := s.Synthesize(context.Background(), "asset-management", controls)
	require.NoError(t, err)

	assert.Equal(t, first.Requirement, second.Requirement)
}

func TestSynthesize_GroupsCarriedFromTemplate(t *testing.T) {
	s := newTestSynthesizer(t)
	controls := []requirements.SourceRequirement{
		{ID: "r1", Framework: framework.ISO27001, Code: "5.2", Title: "Policy",
			Description: "Top management shall establish an information security policy.", Category: "governance"},
	}

	result, err := s.Synthesize(context.Background(), "governance", controls)
	require.NoError(t, err)

	require.Len(t, result.Requirement.Groups, 3)
	assert.Equal(t, "Core Programme", result.Requirement.Groups[0].Name)
}
