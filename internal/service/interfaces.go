package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type AccountRepository interface {
	Create(ctx context.Context, args repoargs.CreateAccount) (*domain.FundAccount, error)
	GetByID(ctx context.Context, id int64) (*domain.FundAccount, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.FundAccount, error)
	GetByName(ctx context.Context, name string) (*domain.FundAccount, error)
	GetByNameForUpdate(ctx context.Context, name string) (*domain.FundAccount, error)
	List(ctx context.Context) ([]domain.FundAccount, error)
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) (*domain.FundAccount, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, args repoargs.CreateCustomer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Customer, error)
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) (*domain.Customer, error)
}

type StoreRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Store, error)
	List(ctx context.Context) ([]domain.Store, error)
	Balances(ctx context.Context, storeID *int64) ([]domain.StoreBalance, error)
}

type PurchaseRepository interface {
	Create(ctx context.Context, args repoargs.CreatePurchase) (*domain.Purchase, error)
	GetByID(ctx context.Context, id int64) (*domain.Purchase, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Purchase, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PurchaseStatus) (*domain.Purchase, error)
	ListUnpaidDeliveredForUpdate(ctx context.Context, storeID int64) ([]domain.Purchase, error)
	AttachToPayment(ctx context.Context, purchaseIDs []int64, paymentID int64) (int64, error)
	ListExpiredPending(ctx context.Context, now time.Time) ([]domain.Purchase, error)
}

type MovementRepository interface {
	NextGroupingID(ctx context.Context) (int64, error)
	CreateGroup(ctx context.Context, groupingID int64, movements []repoargs.CreateMovement) ([]domain.Movement, error)
	List(ctx context.Context, filter repoargs.MovementFilter) ([]domain.Movement, error)
	GetByGroupingID(ctx context.Context, groupingID int64) ([]domain.Movement, error)
}

type OperationRepository interface {
	Create(ctx context.Context, args repoargs.CreateOperation) (*domain.FundOperation, error)
	GetByID(ctx context.Context, id int64) (*domain.FundOperation, error)
	List(ctx context.Context, limit uint) ([]domain.FundOperation, error)
}

type StorePaymentRepository interface {
	Create(ctx context.Context, args repoargs.CreateStorePayment) (*domain.StorePayment, error)
	GetByID(ctx context.Context, id int64) (*domain.StorePayment, error)
	List(ctx context.Context, storeID *int64, limit uint) ([]domain.StorePayment, error)
}

type FundingRepository interface {
	Create(ctx context.Context, args repoargs.CreateFunding) (*domain.Funding, error)
	GetByID(ctx context.Context, id int64) (*domain.Funding, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Funding, error)
	UpdateStatus(
		ctx context.Context,
		id int64,
		status domain.FundingStatus,
		fundingErr *string,
		rate *decimal.Decimal,
	) (*domain.Funding, error)
	List(ctx context.Context, limit uint) ([]domain.Funding, error)
}

type RateRepository interface {
	Get(ctx context.Context) (*domain.SystemRate, error)
	Upsert(ctx context.Context, value decimal.Decimal) (*domain.SystemRate, error)
	Delete(ctx context.Context) error
}

// QuoteFetcher внешний источник котировки USD/VES. Один вызов - один HTTP
// запрос, без ретраев внутри.
type QuoteFetcher interface {
	FetchRate(ctx context.Context) (decimal.Decimal, error)
}
