// Package handler exposes the country read API and the admin refresh endpoint
// over HTTP.
package handler

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"atlas/internal/country/models"
	"atlas/internal/country/service"
	"atlas/internal/platform/middleware"
	dErrors "atlas/pkg/domain-errors"
	"atlas/pkg/platform/httputil"
)

type Service interface {
	List(ctx context.Context, query service.ListQuery) (*models.Page, error)
	GetByCode(ctx context.Context, code string) (*models.Country, error)
	Regions(ctx context.Context, regionsCSV string) ([]models.RegionAggregate, error)
	Languages(ctx context.Context) ([]models.LanguageAggregate, error)
	Statistics(ctx context.Context) (*models.Statistics, error)
	Refresh(ctx context.Context) (*service.RefreshResult, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the country read endpoints.
func (h *Handler) Register(r chi.Router) {
	r.Get("/countries", h.HandleList)
	r.Get("/countries/{code}", h.HandleGetByCode)
	r.Get("/countries/regions", h.HandleRegions)
	r.Get("/countries/languages", h.HandleLanguages)
	r.Get("/countries/statistics", h.HandleStatistics)
}

// RegisterAdmin mounts the refresh endpoint; the caller wraps the router with
// auth middleware.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/admin/countries/refresh", h.HandleRefresh)
}

// HandleList implements GET /countries.
//
// Query: region (CSV), minPopulation, maxPopulation, page, limit.
// Output: { "currentPage": 1, "totalPages": 13, "totalRecords": 250, "items": [...] }
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query, err := parseListQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	page, err := h.service.List(ctx, query)
	if err != nil {
		h.logError(ctx, "failed to list countries", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}

// HandleGetByCode implements GET /countries/{code}.
func (h *Handler) HandleGetByCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := chi.URLParam(r, "code")

	country, err := h.service.GetByCode(ctx, code)
	if err != nil {
		h.logError(ctx, "failed to get country", err, "code", code)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, country)
}

// HandleRegions implements GET /countries/regions.
//
// Query: regions (CSV, optional; empty means all regions).
func (h *Handler) HandleRegions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	aggregates, err := h.service.Regions(ctx, r.URL.Query().Get("regions"))
	if err != nil {
		h.logError(ctx, "failed to aggregate regions", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, aggregates)
}

// HandleLanguages implements GET /countries/languages.
func (h *Handler) HandleLanguages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	aggregates, err := h.service.Languages(ctx)
	if err != nil {
		h.logError(ctx, "failed to aggregate languages", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, aggregates)
}

// HandleStatistics implements GET /countries/statistics.
func (h *Handler) HandleStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.service.Statistics(ctx)
	if err != nil {
		h.logError(ctx, "failed to compute statistics", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
}

// HandleRefresh implements POST /admin/countries/refresh.
//
// Output: { "fetched": 250, "refreshedAt": "..." }
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.service.Refresh(ctx)
	if err != nil {
		h.logError(ctx, "dataset refresh failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// parseListQuery extracts and validates listing parameters. Unparseable
// numbers are rejected up front; range checks happen in the service.
func parseListQuery(r *http.Request) (service.ListQuery, error) {
	q := r.URL.Query()
	query := service.ListQuery{Region: strings.TrimSpace(q.Get("region"))}

	var err error
	if query.MinPopulation, err = parseOptionalInt64(q.Get("minPopulation")); err != nil {
		return service.ListQuery{}, dErrors.New(dErrors.CodeValidation, "minPopulation must be an integer")
	}
	if query.MaxPopulation, err = parseOptionalInt64(q.Get("maxPopulation")); err != nil {
		return service.ListQuery{}, dErrors.New(dErrors.CodeValidation, "maxPopulation must be an integer")
	}
	if query.Page, err = parseOptionalInt(q.Get("page")); err != nil {
		return service.ListQuery{}, dErrors.New(dErrors.CodeValidation, "page must be an integer")
	}
	if query.Limit, err = parseOptionalInt(q.Get("limit")); err != nil {
		return service.ListQuery{}, dErrors.New(dErrors.CodeValidation, "limit must be an integer")
	}
	return query, nil
}

func parseOptionalInt64(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOptionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func (h *Handler) logError(ctx context.Context, msg string, err error, args ...any) {
	fields := append([]any{"error", err, "request_id", middleware.GetRequestID(ctx)}, args...)
	if dErrors.HasCode(err, dErrors.CodeNotFound) || dErrors.HasCode(err, dErrors.CodeValidation) {
		h.logger.WarnContext(ctx, msg, fields...)
		return
	}
	h.logger.ErrorContext(ctx, msg, fields...)
}
