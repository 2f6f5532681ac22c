package requirements

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"unify/internal/framework"
)

// PostgresStore reads the control library from PostgreSQL. The schema mirrors
// the product's requirements_library / standards_library tables.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs a PostgreSQL-backed control library store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) ListRequirements(ctx context.Context) ([]SourceRequirement, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT r.id, r.framework_id, COALESCE(r.tier, ''), r.control_code,
		       r.title, r.description, r.category_id, COALESCE(r.tags, '{}')
		FROM requirements_library r
		WHERE r.is_active
		ORDER BY r.framework_id, r.control_code`)
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}
	defer rows.Close()

	var reqs []SourceRequirement
	for rows.Next() {
		var r SourceRequirement
		var fw, tier string
		if err := rows.Scan(&r.ID, &fw, &tier, &r.Code, &r.Title, &r.Description, &r.Category, &r.Tags); err != nil {
			return nil, fmt.Errorf("scan requirement: %w", err)
		}
		r.Framework = framework.ID(fw)
		r.Tier = framework.Tier(tier)
		reqs = append(reqs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}

	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	// Fail fast on catalogs that violate the single-category invariant; see
	// ValidateIntegrity for the defect shapes this guards against.
	if err := ValidateIntegrity(reqs, categories); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (s *PostgresStore) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name FROM unified_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
