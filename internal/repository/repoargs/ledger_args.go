package repoargs

import (
	"time"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateOperation struct {
	Amount               decimal.Decimal
	OriginAccountID      *int64
	DestinationAccountID *int64
	Rate                 decimal.Decimal
	Commission           decimal.Decimal
}

// CreateMovement одна запись журнала. Должна удовлетворять
// domain.Movement.Validate: ровно одна ссылка допустимого для типа вида.
type CreateMovement struct {
	Type           domain.MovementType
	PurchaseID     *int64
	FundingID      *int64
	OperationID    *int64
	StorePaymentID *int64
}

type MovementFilter struct {
	Type  *domain.MovementType
	Limit uint
}

type CreatePurchase struct {
	CustomerID           int64
	StoreID              int64
	GiftRecipientID      *int64
	Amount               decimal.Decimal
	CommissionPercentage decimal.Decimal
	GiftExpiresAt        time.Time
}

type CreateStorePayment struct {
	StoreID         int64
	Amount          decimal.Decimal
	OriginAccountID int64
	Rate            decimal.Decimal
}

type CreateFunding struct {
	CustomerID int64
	Amount     decimal.Decimal
	Platform   domain.FundingPlatform
	Status     domain.FundingStatus
	Reference  string
	Fee        decimal.Decimal
	Error      *string
	Rate       *decimal.Decimal
}
