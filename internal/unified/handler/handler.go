package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"unify/internal/framework"
	"unify/internal/orchestrator"
	"unify/internal/requirements"
	"unify/pkg/platform/httputil"
	"unify/pkg/requestcontext"
)

// Service defines the interface for unified requirement operations.
type Service interface {
	GenerateForCategory(ctx context.Context, categoryID string, sel framework.Selection) (*orchestrator.CategoryResult, error)
	GenerateAll(ctx context.Context, sel framework.Selection, categories []string) (*orchestrator.BatchResult, error)
	Categories() []requirements.Category
}

// Handler wires unified requirement endpoints to the orchestration service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a unified requirements handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts unified requirement endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/unified/generate", h.HandleGenerate)
	r.Post("/unified/generate-all", h.HandleGenerateAll)
	r.Get("/unified/categories", h.HandleCategories)
}

// HandleGenerate handles POST /unified/generate requests.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.Decode[GenerateRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.GenerateForCategory(ctx, req.Category, req.Frameworks.Selection())
	if err != nil {
		h.logger.ErrorContext(ctx, "unified generation failed",
			"request_id", requestID,
			"category", req.Category,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "unified requirement generated",
		"request_id", requestID,
		"category", req.Category,
		"status", string(result.Status),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromCategoryResult(result))
}

// HandleGenerateAll handles POST /unified/generate-all requests.
func (h *Handler) HandleGenerateAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.Decode[GenerateAllRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	batch, err := h.service.GenerateAll(ctx, req.Frameworks.Selection(), req.Categories)
	if err != nil {
		h.logger.ErrorContext(ctx, "batch generation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "batch generation served",
		"request_id", requestID,
		"selection", batch.SelectionKey,
		"categories", len(batch.Results),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromBatchResult(batch))
}

// HandleCategories handles GET /unified/categories requests.
func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.service.Categories()
	httputil.WriteJSON(w, http.StatusOK, FromCategories(categories))
}
