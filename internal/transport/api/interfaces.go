package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/internal/service"
)

// AccountServicer интерфейс исключительно для моков.
type AccountServicer interface {
	CreateAccount(ctx context.Context, args repoargs.CreateAccount) (*domain.FundAccount, error)
	GetAccount(ctx context.Context, id int64) (*domain.FundAccount, error)
	ListAccounts(ctx context.Context) ([]domain.FundAccount, error)
	CreateCustomer(ctx context.Context, args repoargs.CreateCustomer) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
}

type OperationServicer interface {
	Create(ctx context.Context, args service.CreateOperationArgs) (*domain.FundOperation, error)
	GetByID(ctx context.Context, id int64) (*domain.FundOperation, error)
	List(ctx context.Context, limit uint) ([]domain.FundOperation, error)
}

type StoreServicer interface {
	ListStores(ctx context.Context) ([]domain.Store, error)
	CalculateStoreBalance(ctx context.Context, storeID *int64) ([]domain.StoreBalance, error)
}

type PayoutServicer interface {
	Create(ctx context.Context, args service.CreatePayoutArgs) (*domain.StorePayment, error)
	GetByID(ctx context.Context, id int64) (*domain.StorePayment, error)
	List(ctx context.Context, storeID *int64, limit uint) ([]domain.StorePayment, error)
}

type MovementServicer interface {
	List(ctx context.Context, filter repoargs.MovementFilter) ([]service.MovementView, error)
	GetGroup(ctx context.Context, groupingID int64) ([]service.MovementView, error)
}

type FundingServicer interface {
	Record(ctx context.Context, args service.RecordFundingArgs) (*domain.Funding, error)
	ForceComplete(ctx context.Context, id int64) (*domain.Funding, error)
	GetByID(ctx context.Context, id int64) (*domain.Funding, error)
	List(ctx context.Context, limit uint) ([]domain.Funding, error)
}

type RateServicer interface {
	GetRate(ctx context.Context) (decimal.Decimal, error)
	SetOperatorRate(ctx context.Context, rate decimal.Decimal) (*domain.SystemRate, error)
	ClearOperatorRate(ctx context.Context) error
}

type PurchaseServicer interface {
	CreateGift(ctx context.Context, args service.CreateGiftArgs) (*domain.Purchase, error)
	GetByID(ctx context.Context, id int64) (*domain.Purchase, error)
	Accept(ctx context.Context, id int64) (*domain.Purchase, error)
	Claim(ctx context.Context, id int64) (*domain.Purchase, error)
	Deliver(ctx context.Context, id int64) (*domain.Purchase, error)
	Reject(ctx context.Context, id int64) (*domain.Purchase, error)
}
