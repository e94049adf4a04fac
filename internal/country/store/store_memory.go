package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"atlas/internal/country/models"
	"atlas/pkg/platform/sentinel"
)

// Error Contract:
// All store methods follow this error pattern:
// - Return ErrNotFound (wrapped) when the requested entity does not exist
// - Return nil for successful operations
// - Return wrapped errors with context for infrastructure failures

// InMemoryStore keeps countries in memory for tests and cache-less development.
// Records pass through the store-shape codec on the way in and out so both
// backends exercise the exact same representation boundary.
type InMemoryStore struct {
	mu        sync.RWMutex
	countries map[string]*models.StoreShape
}

// NewMemory constructs an empty in-memory country store.
func NewMemory() *InMemoryStore {
	return &InMemoryStore{countries: make(map[string]*models.StoreShape)}
}

func (s *InMemoryStore) FindByCode(_ context.Context, code string) (*models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if shape, ok := s.countries[code]; ok {
		return models.FromStoreShape(shape)
	}
	return nil, fmt.Errorf("country not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryStore) FindFiltered(ctx context.Context, filter models.Filter) ([]models.Country, int, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	var matched []models.Country
	for i := range all {
		if filter.Matches(&all[i]) {
			matched = append(matched, all[i])
		}
	}

	total := len(matched)
	start := (filter.Page - 1) * filter.Limit
	if start >= total {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (s *InMemoryStore) ListAll(_ context.Context) ([]models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	codes := make([]string, 0, len(s.countries))
	for code := range s.countries {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	countries := make([]models.Country, 0, len(codes))
	for _, code := range codes {
		country, err := models.FromStoreShape(s.countries[code])
		if err != nil {
			return nil, err
		}
		countries = append(countries, *country)
	}
	return countries, nil
}

func (s *InMemoryStore) FindByRegion(ctx context.Context, region string) ([]models.Country, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var matched []models.Country
	for i := range all {
		if all[i].Region == region {
			matched = append(matched, all[i])
		}
	}
	return matched, nil
}

func (s *InMemoryStore) ReplaceAll(_ context.Context, countries []models.Country) error {
	replacement := make(map[string]*models.StoreShape, len(countries))
	for i := range countries {
		shape, err := models.ToStoreShape(&countries[i])
		if err != nil {
			return err
		}
		replacement[shape.CCA3] = shape
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.countries = replacement
	return nil
}

func (s *InMemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.countries), nil
}

func (s *InMemoryStore) LargestByArea(ctx context.Context) (*models.CountryArea, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no countries: %w", sentinel.ErrNotFound)
	}
	largest := &all[0]
	for i := range all {
		if all[i].Area > largest.Area {
			largest = &all[i]
		}
	}
	return &models.CountryArea{Name: largest.CommonName, Area: largest.Area}, nil
}

func (s *InMemoryStore) SmallestByPopulation(ctx context.Context) (*models.CountryPeople, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no countries: %w", sentinel.ErrNotFound)
	}
	smallest := &all[0]
	for i := range all {
		if all[i].Population < smallest.Population {
			smallest = &all[i]
		}
	}
	return &models.CountryPeople{Name: smallest.CommonName, Population: smallest.Population}, nil
}

func (s *InMemoryStore) RegionPopulations(ctx context.Context, regions []string) ([]models.RegionSum, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(regions))
	for _, region := range regions {
		wanted[strings.ToLower(region)] = true
	}

	totals := make(map[string]int64)
	for i := range all {
		region := all[i].Region
		if len(wanted) > 0 && !wanted[strings.ToLower(region)] {
			continue
		}
		totals[region] += all[i].Population
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	sums := make([]models.RegionSum, 0, len(names))
	for _, name := range names {
		sums = append(sums, models.RegionSum{Name: name, TotalPopulation: totals[name]})
	}
	return sums, nil
}

func (s *InMemoryStore) TopLanguage(ctx context.Context) (*models.LanguageRank, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64)
	for i := range all {
		for _, name := range all[i].Languages {
			totals[name] += all[i].Population
		}
	}
	if len(totals) == 0 {
		return nil, fmt.Errorf("no languages: %w", sentinel.ErrNotFound)
	}

	var top models.LanguageRank
	for name, speakers := range totals {
		if speakers > top.NumberOfSpeakers ||
			(speakers == top.NumberOfSpeakers && (top.Language == "" || name < top.Language)) {
			top = models.LanguageRank{Language: name, NumberOfSpeakers: speakers}
		}
	}
	return &top, nil
}
