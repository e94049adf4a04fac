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

func (s *ServiceSuite) TestList_CacheHitFiltersInProcess() {
	dataset := s.testDataset()
	s.mockCache.EXPECT().GetList(gomock.Any()).Return(dataset, nil)

	page, err := s.service.List(context.Background(), ListQuery{Region: "europe"})

	s.Require().NoError(err)
	s.Equal(1, page.CurrentPage)
	s.Equal(1, page.TotalPages)
	s.Equal(3, page.TotalRecords)
	s.Len(page.Items, 3)
	for _, c := range page.Items {
		s.Equal("Europe", c.Region)
	}
}

func (s *ServiceSuite) TestList_CacheHitAppliesPopulationBounds() {
	dataset := s.testDataset()
	s.mockCache.EXPECT().GetList(gomock.Any()).Return(dataset, nil)

	minPop := int64(50_000_000)
	maxPop := int64(100_000_000)
	page, err := s.service.List(context.Background(), ListQuery{
		Region:        "Europe",
		MinPopulation: &minPop,
		MaxPopulation: &maxPop,
	})

	s.Require().NoError(err)
	s.Equal(2, page.TotalRecords)
	names := []string{page.Items[0].CommonName, page.Items[1].CommonName}
	s.ElementsMatch([]string{"France", "Germany"}, names)
}

func (s *ServiceSuite) TestList_CacheHitPaginates() {
	dataset := s.testDataset()
	s.mockCache.EXPECT().GetList(gomock.Any()).Return(dataset, nil)

	page, err := s.service.List(context.Background(), ListQuery{Page: 2, Limit: 3})

	s.Require().NoError(err)
	s.Equal(2, page.CurrentPage)
	s.Equal(2, page.TotalPages)
	s.Equal(4, page.TotalRecords)
	s.Len(page.Items, 1)
}

func (s *ServiceSuite) TestList_CacheHitPastEndPageIsEmpty() {
	dataset := s.testDataset()
	s.mockCache.EXPECT().GetList(gomock.Any()).Return(dataset, nil)

	page, err := s.service.List(context.Background(), ListQuery{Page: 9, Limit: 10})

	s.Require().NoError(err)
	s.Equal(9, page.CurrentPage)
	s.Equal(4, page.TotalRecords)
	s.Empty(page.Items)
}

func (s *ServiceSuite) TestList_CacheHitNoMatchesIsNotFound() {
	dataset := s.testDataset()
	s.mockCache.EXPECT().GetList(gomock.Any()).Return(dataset, nil)

	_, err := s.service.List(context.Background(), ListQuery{Region: "Antarctica"})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestList_CacheMissQueriesStoreAndBackfills() {
	dataset := s.testDataset()
	europe := dataset[:2]

	s.mockCache.EXPECT().GetList(gomock.Any()).
		Return(nil, fmt.Errorf("cache miss: %w", sentinel.ErrNotFound))
	s.mockStore.EXPECT().FindFiltered(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.Filter) ([]models.Country, int, error) {
			s.Equal([]string{"Europe"}, filter.Regions)
			s.Equal(1, filter.Page)
			s.Equal(DefaultLimit, filter.Limit)
			return europe, 3, nil
		})
	s.mockStore.EXPECT().ListAll(gomock.Any()).Return(dataset, nil)
	s.mockCache.EXPECT().SetList(gomock.Any(), dataset).Return(nil)

	page, err := s.service.List(context.Background(), ListQuery{Region: "EUROPE"})

	s.Require().NoError(err)
	s.Equal(3, page.TotalRecords)
	s.Equal(europe, page.Items)
}

func (s *ServiceSuite) TestList_CacheErrorDegradesToStore() {
	dataset := s.testDataset()

	s.mockCache.EXPECT().GetList(gomock.Any()).Return(nil, errors.New("redis connection refused"))
	s.mockStore.EXPECT().FindFiltered(gomock.Any(), gomock.Any()).Return(dataset, 4, nil)
	s.mockStore.EXPECT().ListAll(gomock.Any()).Return(dataset, nil)
	s.mockCache.EXPECT().SetList(gomock.Any(), dataset).Return(nil)

	page, err := s.service.List(context.Background(), ListQuery{})

	s.Require().NoError(err)
	s.Equal(4, page.TotalRecords)
}

func (s *ServiceSuite) TestList_BackfillFailureIsNonFatal() {
	dataset := s.testDataset()

	s.mockCache.EXPECT().GetList(gomock.Any()).
		Return(nil, fmt.Errorf("cache miss: %w", sentinel.ErrNotFound))
	s.mockStore.EXPECT().FindFiltered(gomock.Any(), gomock.Any()).Return(dataset, 4, nil)
	s.mockStore.EXPECT().ListAll(gomock.Any()).Return(dataset, nil)
	s.mockCache.EXPECT().SetList(gomock.Any(), dataset).Return(errors.New("redis write failed"))

	page, err := s.service.List(context.Background(), ListQuery{})

	s.Require().NoError(err)
	s.Equal(4, page.TotalRecords)
}

func (s *ServiceSuite) TestList_StoreEmptyResultIsNotFound() {
	s.mockCache.EXPECT().GetList(gomock.Any()).
		Return(nil, fmt.Errorf("cache miss: %w", sentinel.ErrNotFound))
	s.mockStore.EXPECT().FindFiltered(gomock.Any(), gomock.Any()).Return(nil, 0, nil)

	_, err := s.service.List(context.Background(), ListQuery{Region: "Atlantis"})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestList_StoreErrorPropagates() {
	s.mockCache.EXPECT().GetList(gomock.Any()).
		Return(nil, fmt.Errorf("cache miss: %w", sentinel.ErrNotFound))
	s.mockStore.EXPECT().FindFiltered(gomock.Any(), gomock.Any()).
		Return(nil, 0, errors.New("connection reset"))

	_, err := s.service.List(context.Background(), ListQuery{})

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *ServiceSuite) TestList_RejectsInvalidPagination() {
	cases := []struct {
		name  string
		query ListQuery
	}{
		{"negative page", ListQuery{Page: -1}},
		{"negative limit", ListQuery{Limit: -5}},
		{"limit above cap", ListQuery{Limit: 101}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.List(context.Background(), tc.query)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}

func (s *ServiceSuite) TestGetByCode_CacheHit() {
	country := s.newTestCountry("FRA", "France", "Europe", 67_000_000)
	s.mockCache.EXPECT().GetCountry(gomock.Any(), "FRA").Return(&country, nil)

	got, err := s.service.GetByCode(context.Background(), "fra")

	s.Require().NoError(err)
	s.Equal("France", got.CommonName)
}

func (s *ServiceSuite) TestGetByCode_CacheMissBackfills() {
	country := s.newTestCountry("JPN", "Japan", "Asia", 125_000_000)

	s.mockCache.EXPECT().GetCountry(gomock.Any(), "JPN").
		Return(nil, fmt.Errorf("cache miss: %w", sentinel.ErrNotFound))
	s.mockStore.EXPECT().FindByCode(gomock.Any(), "JPN").Return(&country, nil)
	s.mockCache.EXPECT().SetCountry(gomock.Any(), "JPN", &country).Return(nil)

	got, err := s.service.GetByCode(context.Background(), "jpn")

	s.Require().NoError(err)
	s.Equal("Japan", got.CommonName)
}

func (s *ServiceSuite) TestGetByCode_UnknownCodeIsNotFound() {
	s.mockCache.EXPECT().GetCountry(gomock.Any(), "ZZZ").
		Return(nil, fmt.Errorf("cache miss: %w", sentinel.ErrNotFound))
	s.mockStore.EXPECT().FindByCode(gomock.Any(), "ZZZ").
		Return(nil, fmt.Errorf("country ZZZ: %w", sentinel.ErrNotFound))

	_, err := s.service.GetByCode(context.Background(), "ZZZ")

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestGetByCode_RejectsMalformedCodes() {
	for _, code := range []string{"", "FR", "FRAN", "F1A", "12"} {
		_, err := s.service.GetByCode(context.Background(), code)
		s.Require().Error(err, "code %q", code)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation), "code %q", code)
	}
}
