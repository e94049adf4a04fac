// Package service implements the cache-aside query/aggregation engine and the
// dataset refresh pipeline for country data.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,Cache,Provider

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	countrymetrics "atlas/internal/country/metrics"
	"atlas/internal/country/models"
	"atlas/internal/country/tracer"
	dErrors "atlas/pkg/domain-errors"
	"atlas/pkg/platform/sentinel"
)

// Pagination bounds. Limit defaults to 20 and is capped at 100.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Store is the relational system of record for country data.
type Store interface {
	FindByCode(ctx context.Context, code string) (*models.Country, error)
	FindFiltered(ctx context.Context, filter models.Filter) ([]models.Country, int, error)
	ListAll(ctx context.Context) ([]models.Country, error)
	FindByRegion(ctx context.Context, region string) ([]models.Country, error)
	ReplaceAll(ctx context.Context, countries []models.Country) error
	Count(ctx context.Context) (int, error)
	LargestByArea(ctx context.Context) (*models.CountryArea, error)
	SmallestByPopulation(ctx context.Context) (*models.CountryPeople, error)
	RegionPopulations(ctx context.Context, regions []string) ([]models.RegionSum, error)
	TopLanguage(ctx context.Context) (*models.LanguageRank, error)
}

// Cache is the key-value fast path. Implementations return
// sentinel.ErrNotFound on a miss.
type Cache interface {
	GetList(ctx context.Context) ([]models.Country, error)
	SetList(ctx context.Context, countries []models.Country) error
	DeleteList(ctx context.Context) error
	GetCountry(ctx context.Context, code string) (*models.Country, error)
	SetCountry(ctx context.Context, code string, country *models.Country) error
	GetRegions(ctx context.Context, key string) ([]models.RegionAggregate, error)
	SetRegions(ctx context.Context, key string, aggregates []models.RegionAggregate) error
	GetLanguages(ctx context.Context) ([]models.LanguageAggregate, error)
	SetLanguages(ctx context.Context, aggregates []models.LanguageAggregate) error
	GetStatistics(ctx context.Context) (*models.Statistics, error)
	SetStatistics(ctx context.Context, stats *models.Statistics) error
	DeleteDerived(ctx context.Context) error
}

// RegionsKeyFunc derives the cache key for a region-aggregate request.
type RegionsKeyFunc func(regions []string) string

// Provider is the upstream country-data source consumed by the refresh
// pipeline.
type Provider interface {
	FetchAll(ctx context.Context) ([]models.Country, error)
}

// Service serves all country read paths with a cache-aside policy and owns the
// dataset refresh. Cache failures are non-fatal on reads: a failed lookup
// degrades to a store query, a failed backfill is logged and ignored. Store
// failures always propagate.
type Service struct {
	store      Store
	cache      Cache
	provider   Provider
	regionsKey RegionsKeyFunc
	logger     *slog.Logger
	metrics    *countrymetrics.Metrics
	tracer     tracer.Tracer
}

// Option configures the service.
type Option func(s *Service)

// WithLogger injects a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics injects the country metrics set.
func WithMetrics(m *countrymetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer injects a tracer; defaults to a no-op.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs the country service.
func New(store Store, cache Cache, provider Provider, regionsKey RegionsKeyFunc, opts ...Option) *Service {
	s := &Service{
		store:      store,
		cache:      cache,
		provider:   provider,
		regionsKey: regionsKey,
		logger:     slog.Default(),
		tracer:     tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListQuery carries the parsed listing parameters. All provided predicates
// combine with AND.
type ListQuery struct {
	Region        string
	MinPopulation *int64
	MaxPopulation *int64
	Page          int
	Limit         int
}

// toFilter validates pagination bounds defensively and normalizes the region
// parameter into title-cased fragments.
func (q ListQuery) toFilter() (models.Filter, error) {
	page := q.Page
	if page == 0 {
		page = DefaultPage
	}
	if page < 1 {
		return models.Filter{}, dErrors.New(dErrors.CodeValidation, "page must be >= 1")
	}
	limit := q.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 || limit > MaxLimit {
		return models.Filter{}, dErrors.New(dErrors.CodeValidation, "limit must be between 1 and 100")
	}
	return models.Filter{
		Regions:       TitleCaseRegions(q.Region),
		MinPopulation: q.MinPopulation,
		MaxPopulation: q.MaxPopulation,
		Page:          page,
		Limit:         limit,
	}, nil
}

// List returns a filtered, paginated country page. On a cache hit the filter
// and pagination run in-process over the full cached list; on a miss they run
// server-side in the store and the full unfiltered list is cached afterwards
// so subsequent reads converge onto the cache path.
func (s *Service) List(ctx context.Context, query ListQuery) (*models.Page, error) {
	ctx, span := s.tracer.Start(ctx, "country.List")
	var err error
	defer func() { span.End(err) }()

	filter, err := query.toFilter()
	if err != nil {
		return nil, err
	}

	cached, cacheErr := s.cache.GetList(ctx)
	if cacheErr == nil {
		var matched []models.Country
		for i := range cached {
			if filter.Matches(&cached[i]) {
				matched = append(matched, cached[i])
			}
		}
		if len(matched) == 0 {
			err = dErrors.New(dErrors.CodeNotFound, "no countries found for the specified query")
			return nil, err
		}
		return paginate(matched, filter), nil
	}
	s.reportCacheFailure(ctx, "list", cacheErr)

	items, total, storeErr := s.store.FindFiltered(ctx, filter)
	if storeErr != nil {
		err = dErrors.Wrap(storeErr, dErrors.CodeInternal, "failed to query countries")
		return nil, err
	}
	if total == 0 {
		err = dErrors.New(dErrors.CodeNotFound, "no countries found for the specified query")
		return nil, err
	}

	s.backfillList(ctx)

	return &models.Page{
		CurrentPage:  filter.Page,
		TotalPages:   totalPages(total, filter.Limit),
		TotalRecords: total,
		Items:        items,
	}, nil
}

// GetByCode returns a single country by its 3-letter code.
func (s *Service) GetByCode(ctx context.Context, code string) (*models.Country, error) {
	ctx, span := s.tracer.Start(ctx, "country.GetByCode", tracer.Attribute{Key: "code", Value: code})
	var err error
	defer func() { span.End(err) }()

	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 || !isAlpha(code) {
		err = dErrors.New(dErrors.CodeValidation, "country code must be 3 letters")
		return nil, err
	}

	cached, cacheErr := s.cache.GetCountry(ctx, code)
	if cacheErr == nil {
		return cached, nil
	}
	s.reportCacheFailure(ctx, "country", cacheErr)

	country, storeErr := s.store.FindByCode(ctx, code)
	if storeErr != nil {
		if errors.Is(storeErr, sentinel.ErrNotFound) {
			err = dErrors.New(dErrors.CodeNotFound, "country not found")
			return nil, err
		}
		err = dErrors.Wrap(storeErr, dErrors.CodeInternal, "failed to query country")
		return nil, err
	}

	if setErr := s.cache.SetCountry(ctx, code, country); setErr != nil {
		s.logger.WarnContext(ctx, "country cache backfill failed", "code", code, "error", setErr)
	}
	return country, nil
}

// Regions returns region population roll-ups, each carrying the denormalized
// list of constituent countries. The regionsCSV parameter narrows the result;
// empty means every region.
func (s *Service) Regions(ctx context.Context, regionsCSV string) ([]models.RegionAggregate, error) {
	ctx, span := s.tracer.Start(ctx, "country.Regions")
	var err error
	defer func() { span.End(err) }()

	regions := SplitCSV(regionsCSV)
	key := s.regionsKey(regions)

	cached, cacheErr := s.cache.GetRegions(ctx, key)
	if cacheErr == nil {
		return cached, nil
	}
	s.reportCacheFailure(ctx, "regions", cacheErr)

	sums, storeErr := s.store.RegionPopulations(ctx, regions)
	if storeErr != nil {
		err = dErrors.Wrap(storeErr, dErrors.CodeInternal, "failed to aggregate regions")
		return nil, err
	}
	if len(sums) == 0 {
		err = dErrors.New(dErrors.CodeNotFound, "no regions found for the specified query")
		return nil, err
	}

	// Two-pass assembly: aggregate first, then hydrate each matched region.
	aggregates := make([]models.RegionAggregate, 0, len(sums))
	for _, sum := range sums {
		countries, hydrateErr := s.store.FindByRegion(ctx, sum.Name)
		if hydrateErr != nil {
			err = dErrors.Wrap(hydrateErr, dErrors.CodeInternal, "failed to load region countries")
			return nil, err
		}
		aggregates = append(aggregates, models.RegionAggregate{
			Name:            sum.Name,
			Countries:       countries,
			TotalPopulation: sum.TotalPopulation,
		})
	}

	if setErr := s.cache.SetRegions(ctx, key, aggregates); setErr != nil {
		s.logger.WarnContext(ctx, "regions cache backfill failed", "key", key, "error", setErr)
	}
	return aggregates, nil
}

// Languages returns the inverted per-language view of the dataset. A country
// contributes its full population to every language it speaks. An empty
// dataset yields an empty list, not an error.
func (s *Service) Languages(ctx context.Context) ([]models.LanguageAggregate, error) {
	ctx, span := s.tracer.Start(ctx, "country.Languages")
	var err error
	defer func() { span.End(err) }()

	cached, cacheErr := s.cache.GetLanguages(ctx)
	if cacheErr == nil {
		return cached, nil
	}
	s.reportCacheFailure(ctx, "languages", cacheErr)

	countries, storeErr := s.store.ListAll(ctx)
	if storeErr != nil {
		err = dErrors.Wrap(storeErr, dErrors.CodeInternal, "failed to list countries")
		return nil, err
	}

	aggregates := invertLanguages(countries)

	if setErr := s.cache.SetLanguages(ctx, aggregates); setErr != nil {
		s.logger.WarnContext(ctx, "languages cache backfill failed", "error", setErr)
	}
	return aggregates, nil
}

// Statistics returns the global snapshot, recomputed in full on a cache miss
// from four independent store queries.
func (s *Service) Statistics(ctx context.Context) (*models.Statistics, error) {
	ctx, span := s.tracer.Start(ctx, "country.Statistics")
	var err error
	defer func() { span.End(err) }()

	cached, cacheErr := s.cache.GetStatistics(ctx)
	if cacheErr == nil {
		return cached, nil
	}
	s.reportCacheFailure(ctx, "statistics", cacheErr)

	total, storeErr := s.store.Count(ctx)
	if storeErr != nil {
		err = dErrors.Wrap(storeErr, dErrors.CodeInternal, "failed to count countries")
		return nil, err
	}
	largest, storeErr := s.store.LargestByArea(ctx)
	if storeErr != nil {
		err = s.translateStatsErr(storeErr, "failed to find largest country")
		return nil, err
	}
	smallest, storeErr := s.store.SmallestByPopulation(ctx)
	if storeErr != nil {
		err = s.translateStatsErr(storeErr, "failed to find smallest country")
		return nil, err
	}
	topLanguage, storeErr := s.store.TopLanguage(ctx)
	if storeErr != nil {
		err = s.translateStatsErr(storeErr, "failed to find most spoken language")
		return nil, err
	}

	stats := &models.Statistics{
		TotalCountries:              total,
		LargestCountryByArea:        *largest,
		SmallestCountryByPopulation: *smallest,
		MostWidelySpokenLanguage:    *topLanguage,
	}

	if setErr := s.cache.SetStatistics(ctx, stats); setErr != nil {
		s.logger.WarnContext(ctx, "statistics cache backfill failed", "error", setErr)
	}
	return stats, nil
}

func (s *Service) translateStatsErr(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "no countries found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

// backfillList caches the full unfiltered list after a miss so cache and store
// converge. Failures here never affect the response.
func (s *Service) backfillList(ctx context.Context) {
	all, err := s.store.ListAll(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "list backfill query failed", "error", err)
		return
	}
	if err := s.cache.SetList(ctx, all); err != nil {
		s.logger.WarnContext(ctx, "list cache backfill failed", "error", err)
	}
}

// reportCacheFailure logs unexpected cache errors. An ordinary miss is the
// expected cache-aside path and stays quiet.
func (s *Service) reportCacheFailure(ctx context.Context, view string, err error) {
	if errors.Is(err, sentinel.ErrNotFound) {
		return
	}
	s.logger.WarnContext(ctx, "cache degraded to miss", "view", view, "error", err)
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
