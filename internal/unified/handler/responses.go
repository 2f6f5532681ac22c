package handler

import (
	"unify/internal/orchestrator"
	"unify/internal/requirements"
	"unify/internal/unified"
)

// GenerateResponse is the HTTP response for one category's generation.
type GenerateResponse struct {
	Category    string               `json:"category"`
	Status      string               `json:"status"`
	Message     string               `json:"message,omitempty"`
	Requirement *RequirementResponse `json:"requirement,omitempty"`
	Validation  *ValidationResponse  `json:"validation,omitempty"`
}

// RequirementResponse is the synthesized unified requirement.
type RequirementResponse struct {
	CategoryID string          `json:"category_id"`
	Title      string          `json:"title"`
	Subs       []SubResponse   `json:"subs"`
	Groups     []GroupResponse `json:"groups,omitempty"`
}

// SubResponse is one lettered sub-requirement.
type SubResponse struct {
	Letter        string                 `json:"letter"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Contributions []ContributionResponse `json:"contributions"`
	References    string                 `json:"references"`
}

// ContributionResponse is one framework's share of a sub-requirement.
type ContributionResponse struct {
	Framework string   `json:"framework"`
	Codes     []string `json:"codes"`
}

// GroupResponse is a named letter range.
type GroupResponse struct {
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

// ValidationResponse is the coverage report for a generated requirement.
type ValidationResponse struct {
	IsValid             bool     `json:"is_valid"`
	Coverage            int      `json:"coverage"`
	MissingRequirements []string `json:"missing_requirements"`
	Suggestions         []string `json:"suggestions,omitempty"`
}

// BatchResponse is the HTTP response for POST /unified/generate-all.
type BatchResponse struct {
	Selection string             `json:"selection"`
	Results   []GenerateResponse `json:"results"`
	Stats     StatsResponse      `json:"stats"`
}

// StatsResponse aggregates a batch run.
type StatsResponse struct {
	Categories          int     `json:"categories"`
	TotalItems          int     `json:"total_items"`
	AvgItemsPerCategory float64 `json:"avg_items_per_category"`
}

// CategoryResponse is one known unified category.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FromCategoryResult converts a domain result to an HTTP response.
func FromCategoryResult(result *orchestrator.CategoryResult) *GenerateResponse {
	resp := &GenerateResponse{
		Category: result.CategoryID,
		Status:   string(result.Status),
		Message:  result.Message,
	}
	if result.Requirement != nil {
		resp.Requirement = fromRequirement(result.Requirement)
	}
	if result.Validation != nil {
		resp.Validation = &ValidationResponse{
			IsValid:             result.Validation.IsValid,
			Coverage:            result.Validation.Coverage,
			MissingRequirements: result.Validation.MissingRequirements,
			Suggestions:         result.Validation.Suggestions,
		}
	}
	return resp
}

// FromBatchResult converts a batch outcome to an HTTP response.
func FromBatchResult(batch *orchestrator.BatchResult) *BatchResponse {
	results := make([]GenerateResponse, len(batch.Results))
	for i := range batch.Results {
		results[i] = *FromCategoryResult(&batch.Results[i])
	}
	return &BatchResponse{
		Selection: batch.SelectionKey,
		Results:   results,
		Stats: StatsResponse{
			Categories:          batch.Stats.Categories,
			TotalItems:          batch.Stats.TotalItems,
			AvgItemsPerCategory: batch.Stats.AvgItemsPerCategory,
		},
	}
}

// FromCategories converts the category list to an HTTP response.
func FromCategories(categories []requirements.Category) []CategoryResponse {
	resp := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = CategoryResponse{ID: c.ID, Name: c.Name}
	}
	return resp
}

func fromRequirement(gen *unified.GeneratedRequirement) *RequirementResponse {
	subs := make([]SubResponse, len(gen.Subs))
	for i, sub := range gen.Subs {
		contribs := make([]ContributionResponse, len(sub.Contributions))
		for j, c := range sub.Contributions {
			contribs[j] = ContributionResponse{Framework: string(c.Framework), Codes: c.Codes}
		}
		subs[i] = SubResponse{
			Letter:        sub.Letter,
			Title:         sub.Title,
			Description:   sub.Description,
			Contributions: contribs,
			References:    sub.References,
		}
	}

	groups := make([]GroupResponse, len(gen.Groups))
	for i, g := range gen.Groups {
		groups[i] = GroupResponse{Name: g.Name, From: g.From, To: g.To}
	}

	return &RequirementResponse{
		CategoryID: gen.CategoryID,
		Title:      gen.Title,
		Subs:       subs,
		Groups:     groups,
	}
}
