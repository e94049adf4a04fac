package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/internal/country/models"
	"atlas/pkg/platform/sentinel"
)

func testCountry(code, name, region string, population int64, area float64, languages map[string]string) models.Country {
	return models.Country{
		CommonName:   name,
		OfficialName: "The " + name,
		CCA2:         code[:2],
		CCA3:         code,
		Region:       region,
		Population:   population,
		Area:         area,
		Languages:    languages,
		Capital:      []string{name + " City"},
	}
}

func seededStore(t *testing.T) *InMemoryStore {
	t.Helper()
	s := NewMemory()
	err := s.ReplaceAll(context.Background(), []models.Country{
		testCountry("FRA", "France", "Europe", 67_000_000, 551_695, map[string]string{"fra": "French"}),
		testCountry("DEU", "Germany", "Europe", 83_000_000, 357_022, map[string]string{"deu": "German"}),
		testCountry("JPN", "Japan", "Asia", 125_000_000, 377_975, map[string]string{"jpn": "Japanese"}),
		testCountry("BEL", "Belgium", "Europe", 11_500_000, 30_528, map[string]string{"fra": "French", "nld": "Dutch"}),
	})
	require.NoError(t, err)
	return s
}

func TestFindByCode(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	got, err := s.FindByCode(ctx, "FRA")
	require.NoError(t, err)
	assert.Equal(t, "France", got.CommonName)
	assert.Equal(t, []string{"France City"}, got.Capital)

	_, err = s.FindByCode(ctx, "ZZZ")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestFindFiltered(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	minPop := int64(50_000_000)
	items, total, err := s.FindFiltered(ctx, models.Filter{
		Regions:       []string{"Europe"},
		MinPopulation: &minPop,
		Page:          1,
		Limit:         20,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "DEU", items[0].CCA3)
	assert.Equal(t, "FRA", items[1].CCA3)
}

func TestFindFiltered_Pagination(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	items, total, err := s.FindFiltered(ctx, models.Filter{Page: 2, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, items, 1)
	assert.Equal(t, "JPN", items[0].CCA3)

	items, total, err = s.FindFiltered(ctx, models.Filter{Page: 9, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Empty(t, items)
}

func TestListAll_DeterministicOrder(t *testing.T) {
	s := seededStore(t)

	all, err := s.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "BEL", all[0].CCA3)
	assert.Equal(t, "JPN", all[3].CCA3)
}

func TestReplaceAll_IsFullReplacement(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	err := s.ReplaceAll(ctx, []models.Country{
		testCountry("ITA", "Italy", "Europe", 59_000_000, 301_340, map[string]string{"ita": "Italian"}),
	})
	require.NoError(t, err)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = s.FindByCode(ctx, "FRA")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestFindByRegion(t *testing.T) {
	s := seededStore(t)

	europe, err := s.FindByRegion(context.Background(), "Europe")
	require.NoError(t, err)
	assert.Len(t, europe, 3)

	empty, err := s.FindByRegion(context.Background(), "Antarctica")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRegionPopulations(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	sums, err := s.RegionPopulations(ctx, nil)
	require.NoError(t, err)
	require.Len(t, sums, 2)
	assert.Equal(t, models.RegionSum{Name: "Asia", TotalPopulation: 125_000_000}, sums[0])
	assert.Equal(t, models.RegionSum{Name: "Europe", TotalPopulation: 161_500_000}, sums[1])

	// Region matching ignores case.
	sums, err = s.RegionPopulations(ctx, []string{"eUrOpE"})
	require.NoError(t, err)
	require.Len(t, sums, 1)
	assert.Equal(t, "Europe", sums[0].Name)
}

func TestStatisticsQueries(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	largest, err := s.LargestByArea(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.CountryArea{Name: "France", Area: 551_695}, largest)

	smallest, err := s.SmallestByPopulation(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.CountryPeople{Name: "Belgium", Population: 11_500_000}, smallest)

	top, err := s.TopLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.LanguageRank{Language: "Japanese", NumberOfSpeakers: 125_000_000}, top)
}

func TestStatisticsQueries_EmptyStore(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	_, err := s.LargestByArea(ctx)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	_, err = s.SmallestByPopulation(ctx)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	_, err = s.TopLanguage(ctx)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestTopLanguage_TieBreaksLexicographically(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	require.NoError(t, s.ReplaceAll(ctx, []models.Country{
		testCountry("AAA", "Alpha", "Europe", 10, 1, map[string]string{"x": "Xish"}),
		testCountry("BBB", "Beta", "Europe", 10, 1, map[string]string{"a": "Aish"}),
	}))

	top, err := s.TopLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Aish", top.Language)
	assert.Equal(t, int64(10), top.NumberOfSpeakers)
}
