// Package cache implements the key-value side of the cache-aside read path.
// Records are stored natively (whole-value JSON), so the cache codec is the
// identity mapping over the canonical models.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	countrymetrics "atlas/internal/country/metrics"
	"atlas/internal/country/models"
	"atlas/pkg/platform/sentinel"
)

// Cache keys. The region key is parameterized by the requested region list;
// regionKeyIndex tracks issued region keys so a refresh can invalidate them.
const (
	keyCountries     = "countries"
	keyCountryPrefix = "country:"
	keyRegionsPrefix = "regionsPopulation:"
	keyRegionsIndex  = "regionsPopulation:index"
	keyLanguages     = "languages"
	keyStatistics    = "statistics"
)

// RedisCache persists country views in Redis with TTL-based eviction.
type RedisCache struct {
	client  *redis.Client
	ttl     time.Duration
	metrics *countrymetrics.Metrics
}

// NewRedis constructs a Redis-backed country cache.
// Usage: pass a configured Redis client; metrics may be nil.
func NewRedis(client *redis.Client, ttl time.Duration, metrics *countrymetrics.Metrics) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, metrics: metrics}
}

// CountryKey derives the single-record cache key from a country code.
func CountryKey(code string) string {
	return keyCountryPrefix + strings.ToUpper(code)
}

// RegionsKey derives the region-aggregate cache key from the normalized,
// comma-joined region list (possibly empty).
func RegionsKey(regions []string) string {
	return keyRegionsPrefix + strings.Join(regions, ",")
}

// GetList loads the full unfiltered country list.
func (c *RedisCache) GetList(ctx context.Context) ([]models.Country, error) {
	var countries []models.Country
	if err := c.get(ctx, keyCountries, "list", &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// SetList replaces the full-list entry.
func (c *RedisCache) SetList(ctx context.Context, countries []models.Country) error {
	return c.set(ctx, keyCountries, countries)
}

// DeleteList removes the full-list entry.
func (c *RedisCache) DeleteList(ctx context.Context) error {
	if err := c.client.Del(ctx, keyCountries).Err(); err != nil {
		return fmt.Errorf("delete countries cache: %w", err)
	}
	return nil
}

// GetCountry loads a cached single record by code.
func (c *RedisCache) GetCountry(ctx context.Context, code string) (*models.Country, error) {
	var country models.Country
	if err := c.get(ctx, CountryKey(code), "country", &country); err != nil {
		return nil, err
	}
	return &country, nil
}

// SetCountry caches a single record under its uppercased code.
func (c *RedisCache) SetCountry(ctx context.Context, code string, country *models.Country) error {
	if country == nil {
		return fmt.Errorf("country is required")
	}
	return c.set(ctx, CountryKey(code), country)
}

// GetRegions loads a cached region-aggregate list for the given key.
func (c *RedisCache) GetRegions(ctx context.Context, key string) ([]models.RegionAggregate, error) {
	var aggregates []models.RegionAggregate
	if err := c.get(ctx, key, "regions", &aggregates); err != nil {
		return nil, err
	}
	return aggregates, nil
}

// SetRegions caches a region-aggregate list and records the key in the region
// index so DeleteDerived can find it later.
func (c *RedisCache) SetRegions(ctx context.Context, key string, aggregates []models.RegionAggregate) error {
	if err := c.set(ctx, key, aggregates); err != nil {
		return err
	}
	pipe := c.client.Pipeline()
	pipe.SAdd(ctx, keyRegionsIndex, key)
	pipe.Expire(ctx, keyRegionsIndex, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("index regions key: %w", err)
	}
	return nil
}

// GetLanguages loads the cached language aggregates.
func (c *RedisCache) GetLanguages(ctx context.Context) ([]models.LanguageAggregate, error) {
	var aggregates []models.LanguageAggregate
	if err := c.get(ctx, keyLanguages, "languages", &aggregates); err != nil {
		return nil, err
	}
	return aggregates, nil
}

// SetLanguages caches the language aggregates.
func (c *RedisCache) SetLanguages(ctx context.Context, aggregates []models.LanguageAggregate) error {
	return c.set(ctx, keyLanguages, aggregates)
}

// GetStatistics loads the cached statistics snapshot.
func (c *RedisCache) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	var stats models.Statistics
	if err := c.get(ctx, keyStatistics, "statistics", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SetStatistics caches the statistics snapshot as one object.
func (c *RedisCache) SetStatistics(ctx context.Context, stats *models.Statistics) error {
	if stats == nil {
		return fmt.Errorf("statistics is required")
	}
	return c.set(ctx, keyStatistics, stats)
}

// DeleteDerived removes every derived-aggregate entry: languages, statistics,
// and all region keys recorded in the index. Called by the refresh pipeline so
// aggregates never outlive the dataset they were computed from.
func (c *RedisCache) DeleteDerived(ctx context.Context) error {
	keys := []string{keyLanguages, keyStatistics}

	regionKeys, err := c.client.SMembers(ctx, keyRegionsIndex).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("list region keys: %w", err)
	}
	keys = append(keys, regionKeys...)
	keys = append(keys, keyRegionsIndex)

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete derived caches: %w", err)
	}
	return nil
}

// get loads and decodes a single key, recording hit/miss metrics.
// A missing key maps to sentinel.ErrNotFound.
func (c *RedisCache) get(ctx context.Context, key, view string, target any) error {
	start := time.Now()
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.recordMiss(view, start)
			return fmt.Errorf("cache miss for %s: %w", key, sentinel.ErrNotFound)
		}
		return fmt.Errorf("get %s cache: %w", key, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s cache: %w", key, err)
	}
	c.recordHit(view, start)
	return nil
}

func (c *RedisCache) set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s cache: %w", key, err)
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("set %s cache: %w", key, err)
	}
	return nil
}

func (c *RedisCache) recordHit(view string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordCacheHit(view)
	c.metrics.ObserveLookupDuration(view, time.Since(start).Seconds())
}

func (c *RedisCache) recordMiss(view string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordCacheMiss(view)
	c.metrics.ObserveLookupDuration(view, time.Since(start).Seconds())
}
