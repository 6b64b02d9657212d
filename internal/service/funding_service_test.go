package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/internal/service/mocks"
	"github.com/giftbar/ledger/pkg/uow"
	uowmocks "github.com/giftbar/ledger/pkg/uow/mocks"
)

type FundingServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockUOW          *uowmocks.MockUOW
	mockTX           *uowmocks.MockTX
	mockFundingRepo  *mocks.MockFundingRepository
	mockCustomerRepo *mocks.MockCustomerRepository
	mockAccountRepo  *mocks.MockAccountRepository
	mockMovementRepo *mocks.MockMovementRepository
	mockRateRepo     *mocks.MockRateRepository
	mockFetcher      *mocks.MockQuoteFetcher
	fundingService   *FundingService
}

func TestFundingServiceSuite(t *testing.T) {
	suite.Run(t, new(FundingServiceTestSuite))
}

func (s *FundingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockFundingRepo = mocks.NewMockFundingRepository(s.mockCtrl)
	s.mockCustomerRepo = mocks.NewMockCustomerRepository(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockMovementRepo = mocks.NewMockMovementRepository(s.mockCtrl)
	s.mockRateRepo = mocks.NewMockRateRepository(s.mockCtrl)
	s.mockFetcher = mocks.NewMockQuoteFetcher(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.FundingRepoName)).
		Return(s.mockFundingRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.RateRepoName)).
		Return(s.mockRateRepo, nil).AnyTimes()

	rateService, rateErr := NewRateService(s.mockUOW, s.mockFetcher)
	s.Require().NoError(rateErr)

	fundingService, servErr := NewFundingService(s.mockUOW, rateService)
	s.Require().NoError(servErr)
	s.fundingService = fundingService
}

func (s *FundingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *FundingServiceTestSuite) expectDo() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *FundingServiceTestSuite) expectTxRepos() {
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.FundingRepoName)).
		Return(s.mockFundingRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.CustomerRepoName)).
		Return(s.mockCustomerRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.MovementRepoName)).
		Return(s.mockMovementRepo, nil).AnyTimes()
}

func (s *FundingServiceTestSuite) TestRecordSuccessfulStripe() {
	customerID := int64(1)

	s.expectDo()
	s.expectTxRepos()

	created := &domain.Funding{
		ID:         20,
		CustomerID: customerID,
		Amount:     usd("25.00"),
		Platform:   domain.PlatformStripe,
		Status:     domain.FundingStatusSuccessful,
		Reference:  "pi_123",
		Fee:        usd("1.05"),
	}
	s.mockFundingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil)

	s.mockCustomerRepo.EXPECT().GetByIDForUpdate(gomock.Any(), customerID).
		Return(testCustomer(customerID, "10.00"), nil)
	s.mockCustomerRepo.EXPECT().UpdateBalance(gomock.Any(), customerID, usd("35.00")).
		Return(testCustomer(customerID, "35.00"), nil)

	stripeAccount := testAccount(4, "stripe", domain.CurrencyUSD, "500.00")
	s.mockAccountRepo.EXPECT().GetByNameForUpdate(gomock.Any(), "stripe").Return(stripeAccount, nil)
	s.mockAccountRepo.EXPECT().UpdateBalance(gomock.Any(), stripeAccount.ID, usd("525.00")).
		Return(stripeAccount, nil)

	s.mockMovementRepo.EXPECT().NextGroupingID(gomock.Any()).Return(int64(50), nil)
	s.mockMovementRepo.EXPECT().CreateGroup(gomock.Any(), int64(50), []repoargs.CreateMovement{
		{Type: domain.MovementFunding, FundingID: &created.ID},
	}).Return([]domain.Movement{{GroupingID: 50}}, nil)

	funding, err := s.fundingService.Record(context.Background(), RecordFundingArgs{
		CustomerID: customerID,
		Amount:     usd("25.00"),
		Platform:   domain.PlatformStripe,
		Status:     domain.FundingStatusSuccessful,
		Reference:  "pi_123",
		Fee:        usd("1.05"),
	})
	s.Require().NoError(err)
	s.Equal(created.ID, funding.ID)
}

func (s *FundingServiceTestSuite) TestRecordMercantilCreditsLocalCurrency() {
	customerID := int64(1)
	rate := usd("10.0")

	// Курс нужен для зачисления на счет в локальной валюте и не передан
	// шлюзом: берется действующий до открытия транзакции.
	s.mockRateRepo.EXPECT().Get(gomock.Any()).
		Return(&domain.SystemRate{ID: 1, Rate: rate}, nil)

	s.expectDo()
	s.expectTxRepos()

	created := &domain.Funding{
		ID:         21,
		CustomerID: customerID,
		Amount:     usd("25.00"),
		Platform:   domain.PlatformMercantil,
		Status:     domain.FundingStatusSuccessful,
		Reference:  "mp_456",
		Rate:       &rate,
	}
	s.mockFundingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateFunding) (*domain.Funding, error) {
			s.Require().NotNil(args.Rate)
			s.True(args.Rate.Equal(rate))
			return created, nil
		})

	s.mockCustomerRepo.EXPECT().GetByIDForUpdate(gomock.Any(), customerID).
		Return(testCustomer(customerID, "0.00"), nil)
	s.mockCustomerRepo.EXPECT().UpdateBalance(gomock.Any(), customerID, usd("25.00")).
		Return(testCustomer(customerID, "25.00"), nil)

	mercantilAccount := testAccount(5, "mercantil", domain.CurrencyVES, "1000.00")
	s.mockAccountRepo.EXPECT().GetByNameForUpdate(gomock.Any(), "mercantil").Return(mercantilAccount, nil)
	// 25.00 USD по курсу 10.0 дают 250.00 VES.
	s.mockAccountRepo.EXPECT().UpdateBalance(gomock.Any(), mercantilAccount.ID, usd("1250.00")).
		Return(mercantilAccount, nil)

	s.mockMovementRepo.EXPECT().NextGroupingID(gomock.Any()).Return(int64(51), nil)
	s.mockMovementRepo.EXPECT().CreateGroup(gomock.Any(), int64(51), gomock.Any()).
		Return([]domain.Movement{{GroupingID: 51}}, nil)

	_, err := s.fundingService.Record(context.Background(), RecordFundingArgs{
		CustomerID: customerID,
		Amount:     usd("25.00"),
		Platform:   domain.PlatformMercantil,
		Status:     domain.FundingStatusSuccessful,
		Reference:  "mp_456",
	})
	s.Require().NoError(err)
}

func (s *FundingServiceTestSuite) TestRecordFailedMovesNoMoney() {
	errText := "card declined"

	s.expectDo()
	s.expectTxRepos()

	created := &domain.Funding{
		ID:        22,
		Amount:    usd("25.00"),
		Platform:  domain.PlatformStripe,
		Status:    domain.FundingStatusFailed,
		Reference: "pi_789",
		Error:     &errText,
	}
	s.mockFundingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil)

	funding, err := s.fundingService.Record(context.Background(), RecordFundingArgs{
		CustomerID: 1,
		Amount:     usd("25.00"),
		Platform:   domain.PlatformStripe,
		Status:     domain.FundingStatusFailed,
		Reference:  "pi_789",
		Error:      &errText,
	})
	s.Require().NoError(err)
	s.Equal(domain.FundingStatusFailed, funding.Status)
}

func (s *FundingServiceTestSuite) TestRecordDuplicateReference() {
	s.expectDo()
	s.expectTxRepos()
	s.mockFundingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)

	_, err := s.fundingService.Record(context.Background(), RecordFundingArgs{
		CustomerID: 1,
		Amount:     usd("25.00"),
		Platform:   domain.PlatformStripe,
		Status:     domain.FundingStatusSuccessful,
		Reference:  "pi_123",
	})
	var validationErr *domain.ValidationError
	s.Require().ErrorAs(err, &validationErr)
}

func (s *FundingServiceTestSuite) TestForceComplete() {
	fundingID, customerID := int64(22), int64(1)
	failed := &domain.Funding{
		ID:         fundingID,
		CustomerID: customerID,
		Amount:     usd("25.00"),
		Platform:   domain.PlatformStripe,
		Status:     domain.FundingStatusFailed,
		Reference:  "pi_789",
	}
	s.mockFundingRepo.EXPECT().GetByID(gomock.Any(), fundingID).Return(failed, nil)

	s.expectDo()
	s.expectTxRepos()

	s.mockFundingRepo.EXPECT().GetByIDForUpdate(gomock.Any(), fundingID).Return(failed, nil)

	completed := *failed
	completed.Status = domain.FundingStatusSuccessful
	s.mockFundingRepo.EXPECT().UpdateStatus(gomock.Any(), fundingID, domain.FundingStatusSuccessful, nil, nil).
		Return(&completed, nil)

	s.mockCustomerRepo.EXPECT().GetByIDForUpdate(gomock.Any(), customerID).
		Return(testCustomer(customerID, "0.00"), nil)
	s.mockCustomerRepo.EXPECT().UpdateBalance(gomock.Any(), customerID, usd("25.00")).
		Return(testCustomer(customerID, "25.00"), nil)

	stripeAccount := testAccount(4, "stripe", domain.CurrencyUSD, "500.00")
	s.mockAccountRepo.EXPECT().GetByNameForUpdate(gomock.Any(), "stripe").Return(stripeAccount, nil)
	s.mockAccountRepo.EXPECT().UpdateBalance(gomock.Any(), stripeAccount.ID, usd("525.00")).
		Return(stripeAccount, nil)

	s.mockMovementRepo.EXPECT().NextGroupingID(gomock.Any()).Return(int64(52), nil)
	s.mockMovementRepo.EXPECT().CreateGroup(gomock.Any(), int64(52), []repoargs.CreateMovement{
		{Type: domain.MovementAdminFunding, FundingID: &fundingID},
	}).Return([]domain.Movement{{GroupingID: 52}}, nil)

	funding, err := s.fundingService.ForceComplete(context.Background(), fundingID)
	s.Require().NoError(err)
	s.Equal(domain.FundingStatusSuccessful, funding.Status)
}

func (s *FundingServiceTestSuite) TestForceCompleteMercantilPersistsRate() {
	fundingID, customerID := int64(24), int64(1)
	rate := usd("10.0")
	failed := &domain.Funding{
		ID:         fundingID,
		CustomerID: customerID,
		Amount:     usd("25.00"),
		Platform:   domain.PlatformMercantil,
		Status:     domain.FundingStatusFailed,
		Reference:  "mp_790",
	}
	s.mockFundingRepo.EXPECT().GetByID(gomock.Any(), fundingID).Return(failed, nil)

	// Курс не был зафиксирован при записи неуспешного пополнения: берется
	// действующий до открытия транзакции.
	s.mockRateRepo.EXPECT().Get(gomock.Any()).
		Return(&domain.SystemRate{ID: 1, Rate: rate}, nil)

	s.expectDo()
	s.expectTxRepos()

	s.mockFundingRepo.EXPECT().GetByIDForUpdate(gomock.Any(), fundingID).Return(failed, nil)

	completed := *failed
	completed.Status = domain.FundingStatusSuccessful
	completed.Rate = &rate
	// Разрешенный курс уходит в ту же запись, что и смена статуса.
	s.mockFundingRepo.EXPECT().
		UpdateStatus(gomock.Any(), fundingID, domain.FundingStatusSuccessful, nil, gomock.Not(gomock.Nil())).
		DoAndReturn(func(
			_ context.Context, _ int64, _ domain.FundingStatus, _ *string, persisted *decimal.Decimal,
		) (*domain.Funding, error) {
			s.Require().NotNil(persisted)
			s.True(persisted.Equal(rate))
			return &completed, nil
		})

	s.mockCustomerRepo.EXPECT().GetByIDForUpdate(gomock.Any(), customerID).
		Return(testCustomer(customerID, "0.00"), nil)
	s.mockCustomerRepo.EXPECT().UpdateBalance(gomock.Any(), customerID, usd("25.00")).
		Return(testCustomer(customerID, "25.00"), nil)

	mercantilAccount := testAccount(5, "mercantil", domain.CurrencyVES, "1000.00")
	s.mockAccountRepo.EXPECT().GetByNameForUpdate(gomock.Any(), "mercantil").Return(mercantilAccount, nil)
	s.mockAccountRepo.EXPECT().UpdateBalance(gomock.Any(), mercantilAccount.ID, usd("1250.00")).
		Return(mercantilAccount, nil)

	s.mockMovementRepo.EXPECT().NextGroupingID(gomock.Any()).Return(int64(53), nil)
	s.mockMovementRepo.EXPECT().CreateGroup(gomock.Any(), int64(53), []repoargs.CreateMovement{
		{Type: domain.MovementAdminFunding, FundingID: &fundingID},
	}).Return([]domain.Movement{{GroupingID: 53}}, nil)

	funding, err := s.fundingService.ForceComplete(context.Background(), fundingID)
	s.Require().NoError(err)
	s.Require().NotNil(funding.Rate)
	s.True(funding.Rate.Equal(rate))
}

func (s *FundingServiceTestSuite) TestForceCompleteAlreadySuccessful() {
	fundingID := int64(23)
	successful := &domain.Funding{
		ID:       fundingID,
		Amount:   usd("25.00"),
		Platform: domain.PlatformStripe,
		Status:   domain.FundingStatusSuccessful,
	}
	s.mockFundingRepo.EXPECT().GetByID(gomock.Any(), fundingID).Return(successful, nil)

	s.expectDo()
	s.expectTxRepos()
	s.mockFundingRepo.EXPECT().GetByIDForUpdate(gomock.Any(), fundingID).Return(successful, nil)

	_, err := s.fundingService.ForceComplete(context.Background(), fundingID)
	var validationErr *domain.ValidationError
	s.Require().ErrorAs(err, &validationErr)
}

func (s *FundingServiceTestSuite) TestRecordValidation() {
	testCases := []struct {
		name string
		args RecordFundingArgs
	}{
		{name: "non-positive amount", args: RecordFundingArgs{
			CustomerID: 1, Amount: decimal.Zero, Platform: domain.PlatformStripe,
			Status: domain.FundingStatusSuccessful, Reference: "x",
		}},
		{name: "unknown platform", args: RecordFundingArgs{
			CustomerID: 1, Amount: usd("5.00"), Platform: "VENMO",
			Status: domain.FundingStatusSuccessful, Reference: "x",
		}},
		{name: "blank reference", args: RecordFundingArgs{
			CustomerID: 1, Amount: usd("5.00"), Platform: domain.PlatformStripe,
			Status: domain.FundingStatusSuccessful, Reference: "  ",
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.fundingService.Record(context.Background(), tc.args)
			var validationErr *domain.ValidationError
			s.Require().ErrorAs(err, &validationErr)
		})
	}
}
