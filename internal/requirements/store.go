package requirements

import "context"

// Store is the read interface over the persisted control library. The engine
// loads the full catalog once per batch run and queries the in-memory index
// afterwards, so implementations only need cheap bulk reads.
type Store interface {
	// ListRequirements returns every active source requirement. Implementations
	// must reject catalogs that violate the single-category invariant with an
	// error wrapping sentinel.ErrIntegrity.
	ListRequirements(ctx context.Context) ([]SourceRequirement, error)

	// ListCategories returns the unified categories in stable (name) order.
	ListCategories(ctx context.Context) ([]Category, error)
}
