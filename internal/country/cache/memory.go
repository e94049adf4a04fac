package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"atlas/internal/country/models"
	"atlas/pkg/platform/sentinel"
)

// MemoryCache is a map-backed cache for tests and cache-less development.
// Values round-trip through JSON exactly like the Redis implementation so both
// exercise the same representation boundary.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// NewMemory constructs an empty in-memory cache with the given TTL.
func NewMemory(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *MemoryCache) GetList(_ context.Context) ([]models.Country, error) {
	var countries []models.Country
	if err := c.get(keyCountries, &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

func (c *MemoryCache) SetList(_ context.Context, countries []models.Country) error {
	return c.set(keyCountries, countries)
}

func (c *MemoryCache) DeleteList(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, keyCountries)
	return nil
}

func (c *MemoryCache) GetCountry(_ context.Context, code string) (*models.Country, error) {
	var country models.Country
	if err := c.get(CountryKey(code), &country); err != nil {
		return nil, err
	}
	return &country, nil
}

func (c *MemoryCache) SetCountry(_ context.Context, code string, country *models.Country) error {
	if country == nil {
		return fmt.Errorf("country is required")
	}
	return c.set(CountryKey(code), country)
}

func (c *MemoryCache) GetRegions(_ context.Context, key string) ([]models.RegionAggregate, error) {
	var aggregates []models.RegionAggregate
	if err := c.get(key, &aggregates); err != nil {
		return nil, err
	}
	return aggregates, nil
}

func (c *MemoryCache) SetRegions(_ context.Context, key string, aggregates []models.RegionAggregate) error {
	return c.set(key, aggregates)
}

func (c *MemoryCache) GetLanguages(_ context.Context) ([]models.LanguageAggregate, error) {
	var aggregates []models.LanguageAggregate
	if err := c.get(keyLanguages, &aggregates); err != nil {
		return nil, err
	}
	return aggregates, nil
}

func (c *MemoryCache) SetLanguages(_ context.Context, aggregates []models.LanguageAggregate) error {
	return c.set(keyLanguages, aggregates)
}

func (c *MemoryCache) GetStatistics(_ context.Context) (*models.Statistics, error) {
	var stats models.Statistics
	if err := c.get(keyStatistics, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *MemoryCache) SetStatistics(_ context.Context, stats *models.Statistics) error {
	if stats == nil {
		return fmt.Errorf("statistics is required")
	}
	return c.set(keyStatistics, stats)
}

func (c *MemoryCache) DeleteDerived(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, keyLanguages)
	delete(c.entries, keyStatistics)
	for key := range c.entries {
		if strings.HasPrefix(key, keyRegionsPrefix) {
			delete(c.entries, key)
		}
	}
	return nil
}

// Delete removes an arbitrary key; tests use it to force miss paths.
func (c *MemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *MemoryCache) get(key string, target any) error {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expiresAt) {
		return fmt.Errorf("cache miss for %s: %w", key, sentinel.ErrNotFound)
	}
	if err := json.Unmarshal(entry.payload, target); err != nil {
		return fmt.Errorf("decode %s cache: %w", key, err)
	}
	return nil
}

func (c *MemoryCache) set(key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s cache: %w", key, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{payload: payload, expiresAt: c.now().Add(c.ttl)}
	return nil
}
