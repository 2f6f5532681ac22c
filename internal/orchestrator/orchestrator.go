// Package orchestrator runs unified requirement generation across
// categories: it resolves the framework selection once, fans the categories
// out over a bounded worker pool, and aggregates per-category results and
// run statistics. Failures stay inside their category; one bad category
// never voids a batch.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"unify/internal/audit"
	"unify/internal/framework"
	"unify/internal/orchestrator/metrics"
	"unify/internal/requirements"
	"unify/internal/synthesis"
	"unify/internal/unified"
)

const defaultWorkerLimit = 4

// Status classifies one category's batch entry.
type Status string

const (
	StatusGenerated      Status = "generated"
	StatusNoTemplate     Status = "no_template"
	StatusNoRequirements Status = "no_requirements"
	StatusError          Status = "error"
)

// CategoryResult is one category's outcome within a run. Requirement and
// Validation are set only for StatusGenerated.
type CategoryResult struct {
	CategoryID  string
	Status      Status
	Message     string
	Requirement *unified.GeneratedRequirement
	Validation  *unified.ValidationResult
}

// Stats aggregates a batch run.
type Stats struct {
	Categories          int
	TotalItems          int
	AvgItemsPerCategory float64
}

// BatchResult is the full outcome of one generate-all run: one entry per
// requested category, in request order.
type BatchResult struct {
	SelectionKey string
	Results      []CategoryResult
	Stats        Stats
}

// Service coordinates resolution, lookup, synthesis, caching and audit.
type Service struct {
	resolver *framework.Resolver
	index    *requirements.Index
	synth    *synthesis.Synthesizer
	cache    Cache
	auditor  *audit.Publisher
	limit    int
	tracer   trace.Tracer
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// Option configures the Service.
type Option func(*Service)

// WithCache attaches a generation-result cache.
func WithCache(cache Cache) Option {
	return func(s *Service) { s.cache = cache }
}

// WithAuditor attaches the audit publisher run events are emitted through.
func WithAuditor(auditor *audit.Publisher) Option {
	return func(s *Service) { s.auditor = auditor }
}

// WithWorkerLimit bounds concurrent category synthesis.
func WithWorkerLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithLogger sets a logger for run diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New constructs the orchestration service.
func New(resolver *framework.Resolver, index *requirements.Index, synth *synthesis.Synthesizer, opts ...Option) *Service {
	s := &Service{
		resolver: resolver,
		index:    index,
		synth:    synth,
		limit:    defaultWorkerLimit,
		tracer:   otel.Tracer("unify/orchestrator"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Categories lists the known unified categories.
func (s *Service) Categories() []requirements.Category {
	return s.index.Categories()
}

// GenerateForCategory produces the unified requirement for one category
// under the given selection.
func (s *Service) GenerateForCategory(ctx context.Context, categoryID string, sel framework.Selection) (*CategoryResult, error) {
	active := s.resolver.Resolve(sel)

	result, err := s.generateOne(ctx, categoryID, active)
	if err != nil {
		return nil, err
	}

	s.emitAudit(ctx, audit.ActionGenerate, active.Key(), []string{categoryID}, []CategoryResult{*result})
	return result, nil
}

// GenerateAll produces unified requirements for the requested categories, or
// for every known category when none are named. The selection is resolved
// once; each category is synthesized in isolation on a bounded pool.
func (s *Service) GenerateAll(ctx context.Context, sel framework.Selection, categories []string) (*BatchResult, error) {
	start := time.Now()
	active := s.resolver.Resolve(sel)

	if len(categories) == 0 {
		known := s.index.Categories()
		categories = make([]string, len(known))
		for i, c := range known {
			categories[i] = c.ID
		}
	}

	ctx, span := s.tracer.Start(ctx, "orchestrator.GenerateAll",
		trace.WithAttributes(
			attribute.String("selection", active.Key()),
			attribute.Int("categories", len(categories)),
		))
	defer span.End()

	results := make([]CategoryResult, len(categories))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)
	for i, categoryID := range categories {
		g.Go(func() error {
			result, err := s.generateOne(gctx, categoryID, active)
			if err != nil {
				// Contained: the category reports its failure, the batch
				// carries on.
				s.metrics.IncrementCategoryResult(string(StatusError))
				if s.logger != nil {
					s.logger.ErrorContext(gctx, "category generation failed",
						"category", categoryID,
						"error", err,
					)
				}
				results[i] = CategoryResult{
					CategoryID: categoryID,
					Status:     StatusError,
					Message:    fmt.Sprintf("generation failed for category %q", categoryID),
				}
				return nil
			}
			results[i] = *result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch := &BatchResult{
		SelectionKey: active.Key(),
		Results:      results,
		Stats:        computeStats(results),
	}

	s.metrics.ObserveBatchLatency(time.Since(start))
	s.emitAudit(ctx, audit.ActionGenerateAll, active.Key(), categories, results)

	if s.logger != nil {
		s.logger.InfoContext(ctx, "batch generation complete",
			"selection", active.Key(),
			"categories", len(categories),
			"generated", batch.Stats.Categories,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
	return batch, nil
}

func (s *Service) generateOne(ctx context.Context, categoryID string, active framework.ActiveSet) (*CategoryResult, error) {
	ctx, span := s.tracer.Start(ctx, "orchestrator.generateOne",
		trace.WithAttributes(attribute.String("category", categoryID)))
	defer span.End()

	key := CacheKey(categoryID, active)
	if cached := s.cacheGet(ctx, key); cached != nil {
		return cached, nil
	}

	controls := s.index.ControlsFor(categoryID, active)
	synthesized, err := s.synth.Synthesize(ctx, categoryID, controls)
	if err != nil {
		return nil, fmt.Errorf("synthesize %s: %w", categoryID, err)
	}

	result := &CategoryResult{
		CategoryID: categoryID,
		Status:     Status(synthesized.Outcome),
		Message:    synthesized.Message,
	}
	if synthesized.Outcome == synthesis.OutcomeGenerated {
		validation := unified.Validate(synthesized.Requirement, synthesized.Template)
		result.Requirement = synthesized.Requirement
		result.Validation = &validation
	}

	s.metrics.IncrementCategoryResult(string(result.Status))
	s.cacheSet(ctx, key, result)
	return result, nil
}

// cacheGet returns a cached result or nil. Cache trouble degrades to a miss.
func (s *Service) cacheGet(ctx context.Context, key string) *CategoryResult {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.metrics.IncrementCacheMiss()
		return nil
	}
	s.metrics.IncrementCacheHit()
	return cached
}

func (s *Service) cacheSet(ctx context.Context, key string, result *CategoryResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, result); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "result cache write failed", "error", err)
	}
}

func (s *Service) emitAudit(ctx context.Context, action audit.Action, selectionKey string, categories []string, results []CategoryResult) {
	if s.auditor == nil {
		return
	}

	generated, failed, items := 0, 0, 0
	for _, r := range results {
		switch r.Status {
		case StatusGenerated:
			generated++
			items += len(r.Requirement.Subs)
		case StatusError:
			failed++
		}
	}

	err := s.auditor.Emit(ctx, audit.Event{
		Action:       action,
		SelectionKey: selectionKey,
		Categories:   categories,
		Generated:    generated,
		Failed:       failed,
		TotalItems:   items,
	})
	if err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", string(action), "error", err)
	}
}

func computeStats(results []CategoryResult) Stats {
	stats := Stats{}
	for _, r := range results {
		if r.Status != StatusGenerated {
			continue
		}
		stats.Categories++
		stats.TotalItems += len(r.Requirement.Subs)
	}
	if stats.Categories > 0 {
		avg := float64(stats.TotalItems) / float64(stats.Categories)
		stats.AvgItemsPerCategory = math.Round(avg*100) / 100
	}
	return stats
}
