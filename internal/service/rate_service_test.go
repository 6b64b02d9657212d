package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/internal/service/mocks"
	"github.com/giftbar/ledger/pkg/uow"
	uowmocks "github.com/giftbar/ledger/pkg/uow/mocks"
)

type RateServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUOW      *uowmocks.MockUOW
	mockRateRepo *mocks.MockRateRepository
	mockFetcher  *mocks.MockQuoteFetcher
	rateService  *RateService
}

func TestRateServiceSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}

func (s *RateServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockRateRepo = mocks.NewMockRateRepository(s.mockCtrl)
	s.mockFetcher = mocks.NewMockQuoteFetcher(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.RateRepoName)).
		Return(s.mockRateRepo, nil).AnyTimes()

	rateService, servErr := NewRateService(s.mockUOW, s.mockFetcher)
	s.Require().NoError(servErr)
	s.rateService = rateService
}

func (s *RateServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RateServiceTestSuite) TestGetRateOperatorWins() {
	s.mockRateRepo.EXPECT().Get(gomock.Any()).
		Return(&domain.SystemRate{ID: 1, Rate: usd("40.00")}, nil)

	rate, err := s.rateService.GetRate(context.Background())
	s.Require().NoError(err)
	s.True(rate.Equal(usd("40.00")))
}

func (s *RateServiceTestSuite) TestGetRateFetchesAndCaches() {
	// Операторского курса нет: первая выборка идет во внешний источник,
	// вторая обслуживается из кеша без обращения к нему.
	s.mockRateRepo.EXPECT().Get(gomock.Any()).
		Return(nil, domain.ErrRecordNotFound).Times(2)
	s.mockFetcher.EXPECT().FetchRate(gomock.Any()).Return(usd("36.50"), nil)

	first, firstErr := s.rateService.GetRate(context.Background())
	s.Require().NoError(firstErr)
	s.True(first.Equal(usd("36.50")))

	second, secondErr := s.rateService.GetRate(context.Background())
	s.Require().NoError(secondErr)
	s.True(second.Equal(usd("36.50")))
}

func (s *RateServiceTestSuite) TestGetRateFetchFailure() {
	s.mockRateRepo.EXPECT().Get(gomock.Any()).
		Return(nil, domain.ErrRecordNotFound)
	fetchErr := errors.New("quote source is down")
	s.mockFetcher.EXPECT().FetchRate(gomock.Any()).Return(usd("0"), fetchErr)

	_, err := s.rateService.GetRate(context.Background())
	s.Require().ErrorIs(err, fetchErr)
}

func (s *RateServiceTestSuite) TestSetOperatorRate() {
	s.mockRateRepo.EXPECT().Upsert(gomock.Any(), usd("41.25")).
		Return(&domain.SystemRate{ID: 1, Rate: usd("41.25")}, nil)

	rate, err := s.rateService.SetOperatorRate(context.Background(), usd("41.25"))
	s.Require().NoError(err)
	s.True(rate.Rate.Equal(usd("41.25")))
}

func (s *RateServiceTestSuite) TestSetOperatorRateRejectsNonPositive() {
	_, err := s.rateService.SetOperatorRate(context.Background(), usd("0"))
	var validationErr *domain.ValidationError
	s.Require().ErrorAs(err, &validationErr)
}
