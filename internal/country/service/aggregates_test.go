package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/mock/gomock"

	"atlas/internal/country/models"
	dErrors "atlas/pkg/domain-errors"
	"atlas/pkg/platform/sentinel"
)

func cacheMiss(key string) error {
	return fmt.Errorf("cache miss for %s: %w", key, sentinel.ErrNotFound)
}

func (s *ServiceSuite) TestRegions_CacheHit() {
	cached := []models.RegionAggregate{{Name: "Europe", TotalPopulation: 161_500_000}}
	s.mockCache.EXPECT().GetRegions(gomock.Any(), "regionsPopulation:Europe").Return(cached, nil)

	got, err := s.service.Regions(context.Background(), "Europe")

	s.Require().NoError(err)
	s.Equal(cached, got)
}

func (s *ServiceSuite) TestRegions_CacheMissAggregatesAndHydrates() {
	dataset := s.testDataset()
	europe := []models.Country{dataset[0], dataset[1], dataset[3]}
	asia := []models.Country{dataset[2]}

	s.mockCache.EXPECT().GetRegions(gomock.Any(), "regionsPopulation:").
		Return(nil, cacheMiss("regionsPopulation:"))
	s.mockStore.EXPECT().RegionPopulations(gomock.Any(), gomock.Nil()).Return([]models.RegionSum{
		{Name: "Asia", TotalPopulation: 125_000_000},
		{Name: "Europe", TotalPopulation: 161_500_000},
	}, nil)
	s.mockStore.EXPECT().FindByRegion(gomock.Any(), "Asia").Return(asia, nil)
	s.mockStore.EXPECT().FindByRegion(gomock.Any(), "Europe").Return(europe, nil)
	s.mockCache.EXPECT().SetRegions(gomock.Any(), "regionsPopulation:", gomock.Any()).Return(nil)

	got, err := s.service.Regions(context.Background(), "")

	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("Asia", got[0].Name)
	s.Len(got[0].Countries, 1)
	s.Equal("Europe", got[1].Name)
	s.Len(got[1].Countries, 3)
	s.Equal(int64(161_500_000), got[1].TotalPopulation)
}

func (s *ServiceSuite) TestRegions_KeyPreservesRequestedSpelling() {
	s.mockCache.EXPECT().GetRegions(gomock.Any(), "regionsPopulation:europe,ASIA").
		Return(nil, cacheMiss("regionsPopulation:europe,ASIA"))
	s.mockStore.EXPECT().RegionPopulations(gomock.Any(), []string{"europe", "ASIA"}).
		Return([]models.RegionSum{{Name: "Europe", TotalPopulation: 1}}, nil)
	s.mockStore.EXPECT().FindByRegion(gomock.Any(), "Europe").
		Return([]models.Country{s.newTestCountry("FRA", "France", "Europe", 1)}, nil)
	s.mockCache.EXPECT().SetRegions(gomock.Any(), "regionsPopulation:europe,ASIA", gomock.Any()).Return(nil)

	_, err := s.service.Regions(context.Background(), " europe , ASIA ")

	s.Require().NoError(err)
}

func (s *ServiceSuite) TestRegions_NoMatchesIsNotFound() {
	s.mockCache.EXPECT().GetRegions(gomock.Any(), gomock.Any()).
		Return(nil, cacheMiss("regionsPopulation:Atlantis"))
	s.mockStore.EXPECT().RegionPopulations(gomock.Any(), []string{"Atlantis"}).Return(nil, nil)

	_, err := s.service.Regions(context.Background(), "Atlantis")

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestLanguages_CacheMissInvertsDataset() {
	dataset := s.testDataset()

	s.mockCache.EXPECT().GetLanguages(gomock.Any()).Return(nil, cacheMiss("languages"))
	s.mockStore.EXPECT().ListAll(gomock.Any()).Return(dataset, nil)
	s.mockCache.EXPECT().SetLanguages(gomock.Any(), gomock.Any()).Return(nil)

	got, err := s.service.Languages(context.Background())

	s.Require().NoError(err)
	byName := make(map[string]models.LanguageAggregate, len(got))
	for _, agg := range got {
		byName[agg.Language] = agg
	}

	// French: France (67M) + Belgium (11.5M), each counted with its full population.
	s.Equal(int64(78_500_000), byName["French"].TotalSpeakers)
	s.ElementsMatch([]string{"Belgium", "France"}, byName["French"].Countries)

	// German: Germany + Belgium.
	s.Equal(int64(94_500_000), byName["German"].TotalSpeakers)

	// Single-country languages carry that country's population verbatim.
	s.Equal(int64(125_000_000), byName["Japanese"].TotalSpeakers)
	s.Equal(int64(11_500_000), byName["Dutch"].TotalSpeakers)
}

func (s *ServiceSuite) TestLanguages_EmptyDatasetFailsOpen() {
	s.mockCache.EXPECT().GetLanguages(gomock.Any()).Return(nil, cacheMiss("languages"))
	s.mockStore.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	s.mockCache.EXPECT().SetLanguages(gomock.Any(), gomock.Any()).Return(nil)

	got, err := s.service.Languages(context.Background())

	s.Require().NoError(err)
	s.Empty(got)
}

func (s *ServiceSuite) TestLanguages_SortedByName() {
	dataset := s.testDataset()

	s.mockCache.EXPECT().GetLanguages(gomock.Any()).Return(nil, cacheMiss("languages"))
	s.mockStore.EXPECT().ListAll(gomock.Any()).Return(dataset, nil)
	s.mockCache.EXPECT().SetLanguages(gomock.Any(), gomock.Any()).Return(nil)

	got, err := s.service.Languages(context.Background())

	s.Require().NoError(err)
	for i := 1; i < len(got); i++ {
		s.Less(got[i-1].Language, got[i].Language)
	}
}

func (s *ServiceSuite) TestStatistics_CacheMissRecomputes() {
	s.mockCache.EXPECT().GetStatistics(gomock.Any()).Return(nil, cacheMiss("statistics"))
	s.mockStore.EXPECT().Count(gomock.Any()).Return(4, nil)
	s.mockStore.EXPECT().LargestByArea(gomock.Any()).
		Return(&models.CountryArea{Name: "Japan", Area: 12_500_000}, nil)
	s.mockStore.EXPECT().SmallestByPopulation(gomock.Any()).
		Return(&models.CountryPeople{Name: "Belgium", Population: 11_500_000}, nil)
	s.mockStore.EXPECT().TopLanguage(gomock.Any()).
		Return(&models.LanguageRank{Language: "Japanese", NumberOfSpeakers: 125_000_000}, nil)
	s.mockCache.EXPECT().SetStatistics(gomock.Any(), gomock.Any()).Return(nil)

	got, err := s.service.Statistics(context.Background())

	s.Require().NoError(err)
	s.Equal(4, got.TotalCountries)
	s.Equal("Japan", got.LargestCountryByArea.Name)
	s.Equal("Belgium", got.SmallestCountryByPopulation.Name)
	s.Equal("Japanese", got.MostWidelySpokenLanguage.Language)
}

func (s *ServiceSuite) TestStatistics_CacheHitSkipsStore() {
	cached := &models.Statistics{TotalCountries: 4}
	s.mockCache.EXPECT().GetStatistics(gomock.Any()).Return(cached, nil)

	got, err := s.service.Statistics(context.Background())

	s.Require().NoError(err)
	s.Equal(cached, got)
}

func (s *ServiceSuite) TestStatistics_EmptyStoreIsNotFound() {
	s.mockCache.EXPECT().GetStatistics(gomock.Any()).Return(nil, cacheMiss("statistics"))
	s.mockStore.EXPECT().Count(gomock.Any()).Return(0, nil)
	s.mockStore.EXPECT().LargestByArea(gomock.Any()).
		Return(nil, fmt.Errorf("no countries: %w", sentinel.ErrNotFound))

	_, err := s.service.Statistics(context.Background())

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestStatistics_StoreErrorPropagates() {
	s.mockCache.EXPECT().GetStatistics(gomock.Any()).Return(nil, cacheMiss("statistics"))
	s.mockStore.EXPECT().Count(gomock.Any()).Return(0, errors.New("connection reset"))

	_, err := s.service.Statistics(context.Background())

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}
