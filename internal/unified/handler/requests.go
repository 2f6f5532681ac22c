package handler

import (
	"strings"

	"unify/internal/framework"
	dErrors "unify/pkg/domain-errors"
)

// SelectionPayload is the framework selection portion of request bodies.
// Enabled keys the selection allows speculative forward-compatible
// identifiers, so unknown keys pass validation and are ignored downstream.
type SelectionPayload struct {
	Enabled map[string]bool `json:"enabled"`
	Tier    string          `json:"tier,omitempty"`
}

var knownTiers = map[string]bool{
	"":                        true,
	string(framework.TierIG1): true,
	string(framework.TierIG2): true,
	string(framework.TierIG3): true,
}

func (p *SelectionPayload) validate() error {
	p.Tier = strings.TrimSpace(p.Tier)
	if !knownTiers[p.Tier] {
		return dErrors.New(dErrors.CodeBadRequest, "tier must be one of ig1, ig2, ig3")
	}
	return nil
}

// Selection converts the payload to the domain selection.
func (p SelectionPayload) Selection() framework.Selection {
	enabled := make(map[framework.ID]bool, len(p.Enabled))
	for id, on := range p.Enabled {
		enabled[framework.ID(id)] = on
	}
	return framework.Selection{Enabled: enabled, Tier: framework.Tier(p.Tier)}
}

// GenerateRequest is the HTTP request body for POST /unified/generate.
type GenerateRequest struct {
	Category   string           `json:"category"`
	Frameworks SelectionPayload `json:"frameworks"`
}

// Validate validates the request.
func (r *GenerateRequest) Validate() error {
	r.Category = strings.TrimSpace(r.Category)
	if r.Category == "" {
		return dErrors.New(dErrors.CodeBadRequest, "category is required")
	}
	return r.Frameworks.validate()
}

// GenerateAllRequest is the HTTP request body for POST /unified/generate-all.
// An empty categories list means every known category.
type GenerateAllRequest struct {
	Frameworks SelectionPayload `json:"frameworks"`
	Categories []string         `json:"categories,omitempty"`
}

// Validate validates the request.
func (r *GenerateAllRequest) Validate() error {
	trimmed := r.Categories[:0]
	for _, c := range r.Categories {
		if c = strings.TrimSpace(c); c != "" {
			trimmed = append(trimmed, c)
		}
	}
	r.Categories = trimmed
	return r.Frameworks.validate()
}
