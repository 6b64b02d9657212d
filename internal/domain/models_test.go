package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

func TestMovementValidate(t *testing.T) {
	cases := []struct {
		name     string
		movement Movement
		wantErr  bool
	}{
		{
			name:     "gift sent with purchase",
			movement: Movement{Type: MovementGiftSent, PurchaseID: ptr(1)},
		},
		{
			name:     "funding with funding ref",
			movement: Movement{Type: MovementFunding, FundingID: ptr(1)},
		},
		{
			name:     "admin funding may reference operation",
			movement: Movement{Type: MovementAdminFunding, OperationID: ptr(1)},
		},
		{
			name:     "admin funding may reference funding",
			movement: Movement{Type: MovementAdminFunding, FundingID: ptr(1)},
		},
		{
			name:     "bar payment with store payment",
			movement: Movement{Type: MovementAdminBarPayment, StorePaymentID: ptr(1)},
		},
		{
			name:     "no reference",
			movement: Movement{Type: MovementGiftSent},
			wantErr:  true,
		},
		{
			name:     "two references",
			movement: Movement{Type: MovementGiftSent, PurchaseID: ptr(1), FundingID: ptr(2)},
			wantErr:  true,
		},
		{
			name:     "funding type with purchase ref",
			movement: Movement{Type: MovementFunding, PurchaseID: ptr(1)},
			wantErr:  true,
		},
		{
			name:     "exchange leg with store payment ref",
			movement: Movement{Type: MovementExchangeOrigin, StorePaymentID: ptr(1)},
			wantErr:  true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.movement.Validate()
			if c.wantErr {
				var valErr *ValidationError
				require.Error(t, err)
				require.ErrorAs(t, err, &valErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestFundOperationDerivedAmounts(t *testing.T) {
	usdAcc := &FundAccount{ID: 1, Currency: CurrencyUSD}
	vesAcc := &FundAccount{ID: 2, Currency: CurrencyVES}
	rate := decimal.NewFromFloat(10.0)

	t.Run("exchange from usd", func(t *testing.T) {
		op := FundOperation{
			Amount:             decimal.RequireFromString("5.00"),
			OriginAccount:      usdAcc,
			DestinationAccount: vesAcc,
			Rate:               rate,
		}
		assert.True(t, op.IsExchange())
		assert.Equal(t, "5.00", op.AmountUSD().StringFixed(2))
		assert.Equal(t, "50.00", op.AmountLocal().StringFixed(2))
	})

	t.Run("exchange from ves", func(t *testing.T) {
		op := FundOperation{
			Amount:             decimal.RequireFromString("50.00"),
			OriginAccount:      vesAcc,
			DestinationAccount: usdAcc,
			Rate:               rate,
		}
		assert.Equal(t, "50.00", op.AmountLocal().StringFixed(2))
		assert.Equal(t, "5.00", op.AmountUSD().StringFixed(2))
	})

	t.Run("withdrawal from usd account", func(t *testing.T) {
		op := FundOperation{
			Amount:        decimal.RequireFromString("-19.99"),
			OriginAccount: usdAcc,
			Rate:          rate,
		}
		assert.False(t, op.IsExchange())
		assert.Equal(t, "-19.99", op.AmountUSD().StringFixed(2))
		assert.Equal(t, "-199.90", op.AmountLocal().StringFixed(2))
	})

	t.Run("deposit into ves account", func(t *testing.T) {
		op := FundOperation{
			Amount:             decimal.RequireFromString("100.00"),
			DestinationAccount: vesAcc,
			Rate:               rate,
		}
		assert.Equal(t, "100.00", op.AmountLocal().StringFixed(2))
		assert.Equal(t, "10.00", op.AmountUSD().StringFixed(2))
	})
}

func TestDisplayAmount(t *testing.T) {
	purchase := &Purchase{
		Amount:               decimal.RequireFromString("15.50"),
		CommissionPercentage: decimal.RequireFromString("0.20"),
	}
	usdAcc := &FundAccount{Currency: CurrencyUSD}
	vesAcc := &FundAccount{Currency: CurrencyVES}
	op := &FundOperation{
		Amount:             decimal.RequireFromString("5.00"),
		OriginAccount:      usdAcc,
		DestinationAccount: vesAcc,
		Rate:               decimal.NewFromFloat(10.0),
		Commission:         decimal.RequireFromString("1.00"),
	}

	cases := []struct {
		name string
		typ  MovementType
		refs MovementRefs
		want string
	}{
		{name: "gift sent", typ: MovementGiftSent, refs: MovementRefs{Purchase: purchase}, want: "15.50"},
		{name: "gift refunded", typ: MovementGiftRefunded, refs: MovementRefs{Purchase: purchase}, want: "13.18"},
		{name: "bar claim payment", typ: MovementBarClaimPayment, refs: MovementRefs{Purchase: purchase}, want: "12.40"},
		{
			name: "funding",
			typ:  MovementFunding,
			refs: MovementRefs{Funding: &Funding{Amount: decimal.RequireFromString("30.00")}},
			want: "30.00",
		},
		{name: "exchange origin", typ: MovementExchangeOrigin, refs: MovementRefs{Operation: op}, want: "5.00"},
		{name: "exchange destination", typ: MovementExchangeDest, refs: MovementRefs{Operation: op}, want: "4.00"},
		{
			name: "admin bar payment",
			typ:  MovementAdminBarPayment,
			refs: MovementRefs{StorePayment: &StorePayment{Amount: decimal.RequireFromString("48.00")}},
			want: "48.00",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := DisplayAmount(c.typ, c.refs)
			require.NoError(t, err)
			assert.Equal(t, c.want, got.StringFixed(2))
		})
	}

	_, err := DisplayAmount(MovementType("BOGUS"), MovementRefs{})
	require.Error(t, err)
}

func TestGiftExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name     string
		purchase Purchase
		want     bool
	}{
		{
			name:     "pending past deadline",
			purchase: Purchase{GiftRecipientID: ptr(2), Status: PurchaseStatusPending, GiftExpiresAt: past},
			want:     true,
		},
		{
			name:     "pending before deadline",
			purchase: Purchase{GiftRecipientID: ptr(2), Status: PurchaseStatusPending, GiftExpiresAt: future},
		},
		{
			name:     "accepted gift does not expire",
			purchase: Purchase{GiftRecipientID: ptr(2), Status: PurchaseStatusAccepted, GiftExpiresAt: past},
		},
		{
			name:     "claimed gift does not expire",
			purchase: Purchase{GiftRecipientID: ptr(2), Status: PurchaseStatusClaimed, GiftExpiresAt: past},
		},
		{
			name:     "not a gift",
			purchase: Purchase{Status: PurchaseStatusPending, GiftExpiresAt: past},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.purchase.GiftExpired(now))
		})
	}
}
