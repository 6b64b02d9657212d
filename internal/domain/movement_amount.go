package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MovementRefs связанные сущности записи журнала, подгруженные для чтения.
// Заполняется только ссылка, соответствующая записи.
type MovementRefs struct {
	Purchase     *Purchase
	Funding      *Funding
	Operation    *FundOperation
	StorePayment *StorePayment
}

type displayAmountFn func(refs MovementRefs) decimal.Decimal

// displayAmountFns по одной функции расчета отображаемой суммы на каждый тип
// записи. Диспетчеризация происходит один раз по типу, без повторного ветвления
// в местах чтения.
var displayAmountFns = map[MovementType]displayAmountFn{
	MovementGiftSent:     purchaseAmount,
	MovementGiftReceived: purchaseAmount,
	MovementGiftAccepted: purchaseAmount,
	MovementGiftRejected: purchaseAmount,
	MovementGiftExpired:  purchaseAmount,
	MovementGiftClaimed:  purchaseAmount,
	MovementGiftRefunded: func(refs MovementRefs) decimal.Decimal {
		return GiftRefundAmount(refs.Purchase.Amount)
	},
	MovementBarClaimPayment: func(refs MovementRefs) decimal.Decimal {
		return RoundMoney(refs.Purchase.Amount.Sub(refs.Purchase.CommissionAmount()))
	},
	MovementFunding: fundingAmount,
	MovementAdminFunding: func(refs MovementRefs) decimal.Decimal {
		// ADMIN_FUNDING возникает и при принудительном завершении пополнения,
		// и при административном депозите на счет.
		if refs.Funding != nil {
			return fundingAmount(refs)
		}
		return refs.Operation.AmountUSD()
	},
	MovementAdminWithdrawal: operationAmountUSD,
	MovementExchangeOrigin:  operationAmountUSD,
	MovementExchangeDest: func(refs MovementRefs) decimal.Decimal {
		return RoundMoney(refs.Operation.AmountUSD().Sub(refs.Operation.Commission))
	},
	MovementAdminBarPayment: func(refs MovementRefs) decimal.Decimal {
		return refs.StorePayment.Amount
	},
}

func purchaseAmount(refs MovementRefs) decimal.Decimal     { return refs.Purchase.Amount }
func fundingAmount(refs MovementRefs) decimal.Decimal      { return refs.Funding.Amount }
func operationAmountUSD(refs MovementRefs) decimal.Decimal { return refs.Operation.AmountUSD() }

// DisplayAmount отображаемая сумма записи журнала. Ошибка возвращается только
// для неизвестного типа записи.
func DisplayAmount(t MovementType, refs MovementRefs) (decimal.Decimal, error) {
	fn, ok := displayAmountFns[t]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("display amount: unknown movement type %s", t)
	}
	return fn(refs), nil
}
