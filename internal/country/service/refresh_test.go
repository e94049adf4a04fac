package service

import (
	"context"
	"errors"

	"go.uber.org/mock/gomock"

	dErrors "atlas/pkg/domain-errors"
)

func (s *ServiceSuite) TestRefresh_ReplacesStoreAndCache() {
	dataset := s.testDataset()

	s.mockProvider.EXPECT().FetchAll(gomock.Any()).Return(dataset, nil)
	s.mockStore.EXPECT().ReplaceAll(gomock.Any(), dataset).Return(nil)
	s.mockCache.EXPECT().DeleteList(gomock.Any()).Return(nil)
	s.mockCache.EXPECT().SetList(gomock.Any(), dataset).Return(nil)
	s.mockCache.EXPECT().DeleteDerived(gomock.Any()).Return(nil)

	result, err := s.service.Refresh(context.Background())

	s.Require().NoError(err)
	s.Equal(len(dataset), result.Fetched)
	s.False(result.Refreshed.IsZero())
}

func (s *ServiceSuite) TestRefresh_ProviderFailureAborts() {
	s.mockProvider.EXPECT().FetchAll(gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeUpstream, "provider returned status 503"))

	_, err := s.service.Refresh(context.Background())

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUpstream))
}

func (s *ServiceSuite) TestRefresh_EmptyDatasetRejected() {
	s.mockProvider.EXPECT().FetchAll(gomock.Any()).Return(nil, nil)

	_, err := s.service.Refresh(context.Background())

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUpstream))
}

func (s *ServiceSuite) TestRefresh_StoreFailureFailsRefresh() {
	dataset := s.testDataset()

	s.mockProvider.EXPECT().FetchAll(gomock.Any()).Return(dataset, nil)
	s.mockStore.EXPECT().ReplaceAll(gomock.Any(), dataset).Return(errors.New("deadlock detected"))
	s.mockCache.EXPECT().DeleteList(gomock.Any()).Return(nil).AnyTimes()
	s.mockCache.EXPECT().SetList(gomock.Any(), dataset).Return(nil).AnyTimes()

	_, err := s.service.Refresh(context.Background())

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *ServiceSuite) TestRefresh_CacheFailureIsNonFatal() {
	dataset := s.testDataset()

	s.mockProvider.EXPECT().FetchAll(gomock.Any()).Return(dataset, nil)
	s.mockStore.EXPECT().ReplaceAll(gomock.Any(), dataset).Return(nil)
	s.mockCache.EXPECT().DeleteList(gomock.Any()).Return(errors.New("redis down"))
	s.mockCache.EXPECT().DeleteDerived(gomock.Any()).Return(errors.New("redis down"))

	result, err := s.service.Refresh(context.Background())

	s.Require().NoError(err)
	s.Equal(len(dataset), result.Fetched)
}

func (s *ServiceSuite) TestRefresh_InvalidatesDerivedAggregates() {
	dataset := s.testDataset()

	s.mockProvider.EXPECT().FetchAll(gomock.Any()).Return(dataset, nil)
	s.mockStore.EXPECT().ReplaceAll(gomock.Any(), dataset).Return(nil)
	s.mockCache.EXPECT().DeleteList(gomock.Any()).Return(nil)
	s.mockCache.EXPECT().SetList(gomock.Any(), dataset).Return(nil)
	derived := s.mockCache.EXPECT().DeleteDerived(gomock.Any()).Return(nil)
	derived.Times(1)

	_, err := s.service.Refresh(context.Background())

	s.Require().NoError(err)
}
