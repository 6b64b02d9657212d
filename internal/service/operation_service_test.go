package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/internal/service/mocks"
	"github.com/giftbar/ledger/pkg/uow"
	uowmocks "github.com/giftbar/ledger/pkg/uow/mocks"
)

type OperationServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockUOW          *uowmocks.MockUOW
	mockTX           *uowmocks.MockTX
	mockAccountRepo  *mocks.MockAccountRepository
	mockOpRepo       *mocks.MockOperationRepository
	mockMovementRepo *mocks.MockMovementRepository
	mockRateRepo     *mocks.MockRateRepository
	mockFetcher      *mocks.MockQuoteFetcher
	operationService *OperationService
}

func TestOperationServiceSuite(t *testing.T) {
	suite.Run(t, new(OperationServiceTestSuite))
}

func (s *OperationServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockOpRepo = mocks.NewMockOperationRepository(s.mockCtrl)
	s.mockMovementRepo = mocks.NewMockMovementRepository(s.mockCtrl)
	s.mockRateRepo = mocks.NewMockRateRepository(s.mockCtrl)
	s.mockFetcher = mocks.NewMockQuoteFetcher(s.mockCtrl)

	// Мок получения репозиториев из uow. Выполняется в инициализации сервисов.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OperationRepoName)).
		Return(s.mockOpRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.RateRepoName)).
		Return(s.mockRateRepo, nil).AnyTimes()

	rateService, rateErr := NewRateService(s.mockUOW, s.mockFetcher)
	s.Require().NoError(rateErr)

	operationService, servErr := NewOperationService(s.mockUOW, rateService)
	s.Require().NoError(servErr)
	s.operationService = operationService
}

func (s *OperationServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectDo подменяет транзакцию: fn выполняется сразу на mockTX.
func (s *OperationServiceTestSuite) expectDo() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *OperationServiceTestSuite) expectTxRepos() {
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OperationRepoName)).
		Return(s.mockOpRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.MovementRepoName)).
		Return(s.mockMovementRepo, nil).AnyTimes()
}

func usd(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func testAccount(id int64, name string, currency domain.Currency, balance string) *domain.FundAccount {
	return &domain.FundAccount{
		ID:        id,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Name:      name,
		Currency:  currency,
		Balance:   usd(balance),
	}
}

func (s *OperationServiceTestSuite) TestCreateWithdrawal() {
	originID := int64(1)
	origin := testAccount(originID, "main", domain.CurrencyUSD, "40.00")

	// Курс для операции без обмена берется из операторской записи.
	s.mockRateRepo.EXPECT().Get(gomock.Any()).
		Return(&domain.SystemRate{ID: 1, Rate: usd("36.50")}, nil)

	s.expectDo()
	s.expectTxRepos()

	s.mockAccountRepo.EXPECT().GetByIDForUpdate(gomock.Any(), originID).Return(origin, nil)
	s.mockAccountRepo.EXPECT().UpdateBalance(gomock.Any(), originID, usd("20.01")).
		Return(testAccount(originID, "main", domain.CurrencyUSD, "20.01"), nil)

	createdOp := &domain.FundOperation{
		ID:            10,
		Amount:        usd("-19.99"),
		OriginAccount: origin,
		Rate:          usd("36.50"),
	}
	s.mockOpRepo.EXPECT().Create(gomock.Any(), repoargs.CreateOperation{
		Amount:          usd("-19.99"),
		OriginAccountID: &originID,
		Rate:            usd("36.50"),
		Commission:      decimal.Zero,
	}).Return(createdOp, nil)

	s.mockMovementRepo.EXPECT().NextGroupingID(gomock.Any()).Return(int64(7), nil)
	s.mockMovementRepo.EXPECT().CreateGroup(gomock.Any(), int64(7), []repoargs.CreateMovement{
		{Type: domain.MovementAdminWithdrawal, OperationID: &createdOp.ID},
	}).Return([]domain.Movement{{ID: 1, Type: domain.MovementAdminWithdrawal, GroupingID: 7}}, nil)

	operation, err := s.operationService.Create(context.Background(), CreateOperationArgs{
		Amount:          usd("-19.99"),
		OriginAccountID: &originID,
		Commission:      decimal.Zero,
	})
	s.Require().NoError(err)
	s.Equal(createdOp.ID, operation.ID)
}

func (s *OperationServiceTestSuite) TestCreateExchange() {
	originID, destID := int64(1), int64(2)
	origin := testAccount(originID, "main", domain.CurrencyUSD, "50.00")
	destination := testAccount(destID, "local", domain.CurrencyVES, "0.00")

	// Чтение валют до транзакции.
	s.mockAccountRepo.EXPECT().GetByID(gomock.Any(), originID).Return(origin, nil)
	s.mockAccountRepo.EXPECT().GetByID(gomock.Any(), destID).Return(destination, nil)
	s.mockRateRepo.EXPECT().Get(gomock.Any()).
		Return(&domain.SystemRate{ID: 1, Rate: usd("10.0")}, nil)

	s.expectDo()
	s.expectTxRepos()

	s.mockAccountRepo.EXPECT().GetByIDForUpdate(gomock.Any(), originID).Return(origin, nil)
	s.mockAccountRepo.EXPECT().GetByIDForUpdate(gomock.Any(), destID).Return(destination, nil)
	s.mockAccountRepo.EXPECT().UpdateBalance(gomock.Any(), originID, usd("45.00")).
		Return(testAccount(originID, "main", domain.CurrencyUSD, "45.00"), nil)
	s.mockAccountRepo.EXPECT().UpdateBalance(gomock.Any(), destID, usd("50.00")).
		Return(testAccount(destID, "local", domain.CurrencyVES, "50.00"), nil)

	createdOp := &domain.FundOperation{
		ID:                 11,
		Amount:             usd("5.00"),
		OriginAccount:      origin,
		DestinationAccount: destination,
		Rate:               usd("10.0"),
	}
	s.mockOpRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(createdOp, nil)

	s.mockMovementRepo.EXPECT().NextGroupingID(gomock.Any()).Return(int64(8), nil)
	s.mockMovementRepo.EXPECT().CreateGroup(gomock.Any(), int64(8), []repoargs.CreateMovement{
		{Type: domain.MovementExchangeOrigin, OperationID: &createdOp.ID},
		{Type: domain.MovementExchangeDest, OperationID: &createdOp.ID},
	}).Return([]domain.Movement{
		{ID: 1, Type: domain.MovementExchangeOrigin, GroupingID: 8},
		{ID: 2, Type: domain.MovementExchangeDest, GroupingID: 8},
	}, nil)

	operation, err := s.operationService.Create(context.Background(), CreateOperationArgs{
		Amount:               usd("5.00"),
		OriginAccountID:      &originID,
		DestinationAccountID: &destID,
		Commission:           decimal.Zero,
	})
	s.Require().NoError(err)
	s.True(operation.IsExchange())
}

func (s *OperationServiceTestSuite) TestCreateSameCurrencyForcesRateOne() {
	originID, destID := int64(1), int64(2)
	origin := testAccount(originID, "main", domain.CurrencyUSD, "50.00")
	destination := testAccount(destID, "reserve", domain.CurrencyUSD, "0.00")

	// Валюты совпадают, обращения к курсу быть не должно.
	s.mockAccountRepo.EXPECT().GetByID(gomock.Any(), originID).Return(origin, nil)
	s.mockAccountRepo.EXPECT().GetByID(gomock.Any(), destID).Return(destination, nil)

	s.expectDo()
	s.expectTxRepos()

	s.mockAccountRepo.EXPECT().GetByIDForUpdate(gomock.Any(), originID).Return(origin, nil)
	s.mockAccountRepo.EXPECT().GetByIDForUpdate(gomock.Any(), destID).Return(destination, nil)
	s.mockAccountRepo.EXPECT().UpdateBalance(gomock.Any(), originID, usd("45.00")).
		Return(origin, nil)
	s.mockAccountRepo.EXPECT().UpdateBalance(gomock.Any(), destID, usd("5.00")).
		Return(destination, nil)

	createdOp := &domain.FundOperation{
		ID:                 12,
		Amount:             usd("5.00"),
		OriginAccount:      origin,
		DestinationAccount: destination,
		Rate:               decimal.NewFromInt(1),
	}
	s.mockOpRepo.EXPECT().Create(gomock.Any(), repoargs.CreateOperation{
		Amount:               usd("5.00"),
		OriginAccountID:      &originID,
		DestinationAccountID: &destID,
		Rate:                 decimal.NewFromInt(1),
		Commission:           decimal.Zero,
	}).Return(createdOp, nil)

	s.mockMovementRepo.EXPECT().NextGroupingID(gomock.Any()).Return(int64(9), nil)
	s.mockMovementRepo.EXPECT().CreateGroup(gomock.Any(), int64(9), gomock.Any()).
		Return([]domain.Movement{{}, {}}, nil)

	_, err := s.operationService.Create(context.Background(), CreateOperationArgs{
		Amount:               usd("5.00"),
		OriginAccountID:      &originID,
		DestinationAccountID: &destID,
		Commission:           decimal.Zero,
	})
	s.Require().NoError(err)
}

func (s *OperationServiceTestSuite) TestCreateInsufficientFunds() {
	originID := int64(1)
	origin := testAccount(originID, "main", domain.CurrencyUSD, "10.00")

	s.mockRateRepo.EXPECT().Get(gomock.Any()).
		Return(&domain.SystemRate{ID: 1, Rate: usd("36.50")}, nil)

	s.expectDo()
	s.expectTxRepos()
	s.mockAccountRepo.EXPECT().GetByIDForUpdate(gomock.Any(), originID).Return(origin, nil)

	_, err := s.operationService.Create(context.Background(), CreateOperationArgs{
		Amount:          usd("-20.00"),
		OriginAccountID: &originID,
	})
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
}

func (s *OperationServiceTestSuite) TestCreateValidation() {
	originID, destID := int64(1), int64(2)

	testCases := []struct {
		name string
		args CreateOperationArgs
	}{
		{name: "zero amount", args: CreateOperationArgs{Amount: decimal.Zero, DestinationAccountID: &destID}},
		{name: "no accounts", args: CreateOperationArgs{Amount: usd("5.00")}},
		{name: "negative without origin", args: CreateOperationArgs{Amount: usd("-5.00"), DestinationAccountID: &destID}},
		{name: "negative with destination", args: CreateOperationArgs{
			Amount: usd("-5.00"), OriginAccountID: &originID, DestinationAccountID: &destID,
		}},
		{name: "positive without destination", args: CreateOperationArgs{Amount: usd("5.00"), OriginAccountID: &originID}},
		{name: "same account", args: CreateOperationArgs{
			Amount: usd("5.00"), OriginAccountID: &originID, DestinationAccountID: &originID,
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.operationService.Create(context.Background(), tc.args)
			var validationErr *domain.ValidationError
			s.Require().ErrorAs(err, &validationErr)
		})
	}
}

func (s *OperationServiceTestSuite) TestCreateExchangeCommissionExceedsAmount() {
	originID, destID := int64(1), int64(2)
	origin := testAccount(originID, "main", domain.CurrencyUSD, "50.00")
	destination := testAccount(destID, "reserve", domain.CurrencyUSD, "0.00")

	s.mockAccountRepo.EXPECT().GetByID(gomock.Any(), originID).Return(origin, nil)
	s.mockAccountRepo.EXPECT().GetByID(gomock.Any(), destID).Return(destination, nil)

	s.expectDo()
	s.expectTxRepos()

	// До изменения балансов дело дойти не должно, UpdateBalance не ожидается.
	s.mockAccountRepo.EXPECT().GetByIDForUpdate(gomock.Any(), originID).Return(origin, nil)
	s.mockAccountRepo.EXPECT().GetByIDForUpdate(gomock.Any(), destID).Return(destination, nil)

	_, err := s.operationService.Create(context.Background(), CreateOperationArgs{
		Amount:               usd("5.00"),
		OriginAccountID:      &originID,
		DestinationAccountID: &destID,
		Commission:           usd("10.00"),
	})

	var validationErr *domain.ValidationError
	s.Require().ErrorAs(err, &validationErr)
	s.Equal("commission", validationErr.Field)
}

func (s *OperationServiceTestSuite) TestSequentialWithdrawalsRecheckBalance() {
	originID := int64(1)

	s.mockRateRepo.EXPECT().Get(gomock.Any()).
		Return(&domain.SystemRate{ID: 1, Rate: usd("36.50")}, nil).Times(2)

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).Times(2)
	s.expectTxRepos()

	// Первый вывод видит исходный баланс и проходит.
	s.mockAccountRepo.EXPECT().GetByIDForUpdate(gomock.Any(), originID).
		Return(testAccount(originID, "main", domain.CurrencyUSD, "30.00"), nil)
	s.mockAccountRepo.EXPECT().UpdateBalance(gomock.Any(), originID, usd("10.00")).
		Return(testAccount(originID, "main", domain.CurrencyUSD, "10.00"), nil)

	createdOp := &domain.FundOperation{
		ID:            21,
		Amount:        usd("-20.00"),
		OriginAccount: testAccount(originID, "main", domain.CurrencyUSD, "10.00"),
		Rate:          usd("36.50"),
	}
	s.mockOpRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(createdOp, nil)
	s.mockMovementRepo.EXPECT().NextGroupingID(gomock.Any()).Return(int64(15), nil)
	s.mockMovementRepo.EXPECT().CreateGroup(gomock.Any(), int64(15), gomock.Any()).
		Return([]domain.Movement{{ID: 1, GroupingID: 15}}, nil)

	args := CreateOperationArgs{
		Amount:          usd("-20.00"),
		OriginAccountID: &originID,
	}
	first, firstErr := s.operationService.Create(context.Background(), args)
	s.Require().NoError(firstErr)
	s.True(first.OriginAccount.Balance.Equal(usd("10.00")))

	// Второй вывод валидируется уже против списанного баланса и отклоняется
	// до каких-либо изменений.
	s.mockAccountRepo.EXPECT().GetByIDForUpdate(gomock.Any(), originID).
		Return(testAccount(originID, "main", domain.CurrencyUSD, "10.00"), nil)

	_, secondErr := s.operationService.Create(context.Background(), args)
	s.Require().ErrorIs(secondErr, domain.ErrInsufficientFunds)
}
