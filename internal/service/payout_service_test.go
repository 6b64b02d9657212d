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

type PayoutServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockUOW          *uowmocks.MockUOW
	mockTX           *uowmocks.MockTX
	mockStoreRepo    *mocks.MockStoreRepository
	mockPurchaseRepo *mocks.MockPurchaseRepository
	mockAccountRepo  *mocks.MockAccountRepository
	mockPaymentRepo  *mocks.MockStorePaymentRepository
	mockMovementRepo *mocks.MockMovementRepository
	mockRateRepo     *mocks.MockRateRepository
	mockFetcher      *mocks.MockQuoteFetcher
	payoutService    *PayoutService
}

func TestPayoutServiceSuite(t *testing.T) {
	suite.Run(t, new(PayoutServiceTestSuite))
}

func (s *PayoutServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockStoreRepo = mocks.NewMockStoreRepository(s.mockCtrl)
	s.mockPurchaseRepo = mocks.NewMockPurchaseRepository(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockPaymentRepo = mocks.NewMockStorePaymentRepository(s.mockCtrl)
	s.mockMovementRepo = mocks.NewMockMovementRepository(s.mockCtrl)
	s.mockRateRepo = mocks.NewMockRateRepository(s.mockCtrl)
	s.mockFetcher = mocks.NewMockQuoteFetcher(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.StorePaymentRepoName)).
		Return(s.mockPaymentRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.RateRepoName)).
		Return(s.mockRateRepo, nil).AnyTimes()

	rateService, rateErr := NewRateService(s.mockUOW, s.mockFetcher)
	s.Require().NoError(rateErr)

	payoutService, servErr := NewPayoutService(s.mockUOW, rateService)
	s.Require().NoError(servErr)
	s.payoutService = payoutService
}

func (s *PayoutServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PayoutServiceTestSuite) expectDo() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *PayoutServiceTestSuite) expectTxRepos() {
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.StoreRepoName)).
		Return(s.mockStoreRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.PurchaseRepoName)).
		Return(s.mockPurchaseRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.StorePaymentRepoName)).
		Return(s.mockPaymentRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.MovementRepoName)).
		Return(s.mockMovementRepo, nil).AnyTimes()
}

func testStore(id int64, commission string) *domain.Store {
	return &domain.Store{
		ID:                   id,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
		Name:                 "bar",
		CommissionPercentage: usd(commission),
	}
}

func deliveredPurchases(storeID int64, amounts ...string) []domain.Purchase {
	purchases := make([]domain.Purchase, len(amounts))
	for i, amount := range amounts {
		purchases[i] = domain.Purchase{
			ID:      int64(i + 1),
			StoreID: storeID,
			Amount:  usd(amount),
			Status:  domain.PurchaseStatusDelivered,
		}
	}
	return purchases
}

func (s *PayoutServiceTestSuite) TestCreate() {
	storeID, originID := int64(3), int64(1)
	store := testStore(storeID, "0.20")
	origin := testAccount(originID, "main", domain.CurrencyUSD, "100.00")

	s.mockRateRepo.EXPECT().Get(gomock.Any()).
		Return(&domain.SystemRate{ID: 1, Rate: usd("36.50")}, nil)

	s.expectDo()
	s.expectTxRepos()

	s.mockStoreRepo.EXPECT().GetByID(gomock.Any(), storeID).Return(store, nil)
	s.mockPurchaseRepo.EXPECT().ListUnpaidDeliveredForUpdate(gomock.Any(), storeID).
		Return(deliveredPurchases(storeID, "10.00", "20.00", "30.00"), nil)
	s.mockAccountRepo.EXPECT().GetByIDForUpdate(gomock.Any(), originID).Return(origin, nil)

	payment := &domain.StorePayment{
		ID:              5,
		StoreID:         storeID,
		Amount:          usd("48.00"),
		Reference:       12,
		OriginAccountID: originID,
		Rate:            usd("36.50"),
	}
	s.mockPaymentRepo.EXPECT().Create(gomock.Any(), repoargs.CreateStorePayment{
		StoreID:         storeID,
		Amount:          usd("48.00"),
		OriginAccountID: originID,
		Rate:            usd("36.50"),
	}).Return(payment, nil)

	s.mockPurchaseRepo.EXPECT().AttachToPayment(gomock.Any(), []int64{1, 2, 3}, payment.ID).
		Return(int64(3), nil)
	s.mockAccountRepo.EXPECT().UpdateBalance(gomock.Any(), originID, usd("52.00")).
		Return(testAccount(originID, "main", domain.CurrencyUSD, "52.00"), nil)

	s.mockMovementRepo.EXPECT().NextGroupingID(gomock.Any()).Return(int64(20), nil)
	s.mockMovementRepo.EXPECT().CreateGroup(gomock.Any(), int64(20), []repoargs.CreateMovement{
		{Type: domain.MovementAdminBarPayment, StorePaymentID: &payment.ID},
	}).Return([]domain.Movement{{ID: 1, Type: domain.MovementAdminBarPayment, GroupingID: 20}}, nil)

	created, err := s.payoutService.Create(context.Background(), CreatePayoutArgs{
		StoreID:         storeID,
		OriginAccountID: originID,
		Amount:          usd("48.00"),
	})
	s.Require().NoError(err)
	s.Equal("000012", created.ReferenceNumber())
}

func (s *PayoutServiceTestSuite) TestCreateAmountMismatch() {
	storeID, originID := int64(3), int64(1)
	store := testStore(storeID, "0.20")

	s.mockRateRepo.EXPECT().Get(gomock.Any()).
		Return(&domain.SystemRate{ID: 1, Rate: usd("36.50")}, nil)

	s.expectDo()
	s.expectTxRepos()

	s.mockStoreRepo.EXPECT().GetByID(gomock.Any(), storeID).Return(store, nil)
	s.mockPurchaseRepo.EXPECT().ListUnpaidDeliveredForUpdate(gomock.Any(), storeID).
		Return(deliveredPurchases(storeID, "10.00", "20.00", "30.00"), nil)

	_, err := s.payoutService.Create(context.Background(), CreatePayoutArgs{
		StoreID:         storeID,
		OriginAccountID: originID,
		Amount:          usd("48.01"),
	})

	var mismatchErr *domain.AmountMismatchError
	s.Require().ErrorAs(err, &mismatchErr)
	s.True(mismatchErr.Owed.Equal(usd("48.00")))
}

func (s *PayoutServiceTestSuite) TestCreateVESOriginExtractsConverted() {
	storeID, originID := int64(3), int64(2)
	store := testStore(storeID, "0.20")
	origin := testAccount(originID, "local", domain.CurrencyVES, "2000.00")

	s.mockRateRepo.EXPECT().Get(gomock.Any()).
		Return(&domain.SystemRate{ID: 1, Rate: usd("10.0")}, nil)

	s.expectDo()
	s.expectTxRepos()

	s.mockStoreRepo.EXPECT().GetByID(gomock.Any(), storeID).Return(store, nil)
	s.mockPurchaseRepo.EXPECT().ListUnpaidDeliveredForUpdate(gomock.Any(), storeID).
		Return(deliveredPurchases(storeID, "60.00"), nil)
	s.mockAccountRepo.EXPECT().GetByIDForUpdate(gomock.Any(), originID).Return(origin, nil)

	payment := &domain.StorePayment{ID: 6, StoreID: storeID, Amount: usd("48.00"), Reference: 13}
	s.mockPaymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(payment, nil)
	s.mockPurchaseRepo.EXPECT().AttachToPayment(gomock.Any(), []int64{1}, payment.ID).
		Return(int64(1), nil)

	// Со счета в локальной валюте списывается сумма по курсу: 48.00 * 10.0.
	s.mockAccountRepo.EXPECT().UpdateBalance(gomock.Any(), originID, usd("1520.00")).
		Return(origin, nil)

	s.mockMovementRepo.EXPECT().NextGroupingID(gomock.Any()).Return(int64(21), nil)
	s.mockMovementRepo.EXPECT().CreateGroup(gomock.Any(), int64(21), gomock.Any()).
		Return([]domain.Movement{{}}, nil)

	_, err := s.payoutService.Create(context.Background(), CreatePayoutArgs{
		StoreID:         storeID,
		OriginAccountID: originID,
		Amount:          usd("48.00"),
	})
	s.Require().NoError(err)
}

func (s *PayoutServiceTestSuite) TestCreateInsufficientFunds() {
	storeID, originID := int64(3), int64(1)
	store := testStore(storeID, "0.20")
	origin := testAccount(originID, "main", domain.CurrencyUSD, "10.00")

	s.mockRateRepo.EXPECT().Get(gomock.Any()).
		Return(&domain.SystemRate{ID: 1, Rate: usd("36.50")}, nil)

	s.expectDo()
	s.expectTxRepos()

	s.mockStoreRepo.EXPECT().GetByID(gomock.Any(), storeID).Return(store, nil)
	s.mockPurchaseRepo.EXPECT().ListUnpaidDeliveredForUpdate(gomock.Any(), storeID).
		Return(deliveredPurchases(storeID, "10.00", "20.00", "30.00"), nil)
	s.mockAccountRepo.EXPECT().GetByIDForUpdate(gomock.Any(), originID).Return(origin, nil)

	_, err := s.payoutService.Create(context.Background(), CreatePayoutArgs{
		StoreID:         storeID,
		OriginAccountID: originID,
		Amount:          usd("48.00"),
	})
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
}

func (s *PayoutServiceTestSuite) TestCreateNonPositiveAmount() {
	_, err := s.payoutService.Create(context.Background(), CreatePayoutArgs{
		StoreID:         3,
		OriginAccountID: 1,
		Amount:          decimal.Zero,
	})
	var validationErr *domain.ValidationError
	s.Require().ErrorAs(err, &validationErr)
}
