package requirements

import (
	"context"
	"sort"
	"sync"
)

// InMemoryStore serves a fixed control library from memory. Used in tests and
// for deployments that load the catalog from YAML files at startup.
type InMemoryStore struct {
	mu         sync.RWMutex
	reqs       []SourceRequirement
	categories []Category
}

// NewInMemoryStore validates the catalog's integrity and builds the store.
// Catalogs violating the single-category invariant are rejected outright.
func NewInMemoryStore(reqs []SourceRequirement, categories []Category) (*InMemoryStore, error) {
	if err := ValidateIntegrity(reqs, categories); err != nil {
		return nil, err
	}

	cats := append([]Category{}, categories...)
	sort.Slice(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name })

	return &InMemoryStore{
		reqs:       append([]SourceRequirement{}, reqs...),
		categories: cats,
	}, nil
}

func (s *InMemoryStore) ListRequirements(_ context.Context) ([]SourceRequirement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]SourceRequirement{}, s.reqs...), nil
}

func (s *InMemoryStore) ListCategories(_ context.Context) ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Category{}, s.categories...), nil
}
