package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"unify/internal/audit"
	"unify/internal/framework"
	"unify/internal/orchestrator"
	orchmetrics "unify/internal/orchestrator/metrics"
	"unify/internal/platform/config"
	"unify/internal/platform/httpserver"
	"unify/internal/platform/kafka"
	"unify/internal/platform/logger"
	platformmetrics "unify/internal/platform/metrics"
	platformredis "unify/internal/platform/redis"
	"unify/internal/requirements"
	"unify/internal/synthesis"
	synthmetrics "unify/internal/synthesis/metrics"
	"unify/internal/unified/handler"
	"unify/internal/unified/templates"
	"unify/pkg/platform/middleware/requestmeta"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	appMetrics := platformmetrics.New()

	store, pool, err := buildControlStore(ctx, cfg)
	if err != nil {
		log.Error("control library store init failed", "error", err)
		os.Exit(1)
	}
	if pool != nil {
		defer pool.Close()
	}

	index, err := requirements.LoadIndex(ctx, store)
	if err != nil {
		log.Error("control library load failed", "error", err)
		os.Exit(1)
	}
	appMetrics.SetControlsLoaded(index.ControlCount())

	tplStore, err := buildTemplateStore(cfg)
	if err != nil {
		log.Error("template store init failed", "error", err)
		os.Exit(1)
	}

	synth := synthesis.New(tplStore,
		synthesis.WithLogger(log),
		synthesis.WithMetrics(synthmetrics.New()),
		synthesis.WithAuthorityOrder(parseAuthorityOrder(cfg.AuthorityOrder)),
	)

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis init failed", "error", err)
		os.Exit(1)
	}
	var cache orchestrator.Cache = orchestrator.NewMemoryCache()
	if redisClient != nil {
		cache = orchestrator.NewRedisCache(redisClient.Client, cfg.CacheTTL)
		defer redisClient.Close()
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		log.Error("kafka init failed", "error", err)
		os.Exit(1)
	}
	auditOpts := []audit.PublisherOption{audit.WithAsyncBuffer(256)}
	if producer != nil {
		auditOpts = append(auditOpts, audit.WithSink(audit.NewKafkaSink(producer)))
		defer producer.Close()
	}
	auditor := audit.NewPublisher(audit.NewInMemoryStore(), auditOpts...)
	defer auditor.Close()

	orch := orchestrator.New(framework.NewResolver(), index, synth,
		orchestrator.WithCache(cache),
		orchestrator.WithAuditor(auditor),
		orchestrator.WithWorkerLimit(cfg.WorkerLimit),
		orchestrator.WithLogger(log),
		orchestrator.WithMetrics(orchmetrics.New()),
	)

	router := chi.NewRouter()
	router.Use(requestmeta.Middleware)
	router.Use(appMetrics.Middleware)
	handler.New(orch, log).Register(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		if pool != nil {
			if err := pool.Ping(r.Context()); err != nil {
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting unify server",
		"addr", cfg.Addr,
		"controls", index.ControlCount(),
		"categories", len(index.Categories()),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// buildControlStore picks the control-library backend: Postgres when a URL
// is configured, a YAML catalog directory otherwise, an empty in-memory
// store as the last resort.
func buildControlStore(ctx context.Context, cfg config.Server) (requirements.Store, *pgxpool.Pool, error) {
	if cfg.PostgresURL != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return requirements.NewPostgresStore(pool), pool, nil
	}

	if cfg.CatalogDir != "" {
		reqs, categories, err := requirements.LoadCatalogDir(cfg.CatalogDir)
		if err != nil {
			return nil, nil, err
		}
		store, err := requirements.NewInMemoryStore(reqs, categories)
		return store, nil, err
	}

	store, err := requirements.NewInMemoryStore(nil, nil)
	return store, nil, err
}

func buildTemplateStore(cfg config.Server) (*templates.Store, error) {
	if cfg.TemplateDir != "" {
		tpls, err := templates.LoadDir(cfg.TemplateDir)
		if err != nil {
			return nil, err
		}
		return templates.New(tpls)
	}
	return templates.New(templates.Defaults)
}

func parseAuthorityOrder(order []string) []framework.ID {
	ids := make([]framework.ID, len(order))
	for i, id := range order {
		ids[i] = framework.ID(id)
	}
	return ids
}
