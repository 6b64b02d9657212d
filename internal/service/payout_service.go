package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/pkg/uow"
)

// PayoutService проводит расчеты с магазинами. Частичные выплаты не
// поддерживаются: запрошенная сумма обязана совпасть с пересчитанным на
// момент проверки остатком магазина.
type PayoutService struct {
	uow         uow.UOW
	paymentRepo StorePaymentRepository
	rates       *RateService
}

func NewPayoutService(u uow.UOW, rates *RateService) (*PayoutService, error) {
	paymentRepo, err := uow.GetRepositoryAs[StorePaymentRepository](u, uow.RepositoryName(repoargs.StorePaymentRepoName))
	if err != nil {
		return nil, err
	}
	return &PayoutService{
		uow:         u,
		paymentRepo: paymentRepo,
		rates:       rates,
	}, nil
}

type CreatePayoutArgs struct {
	StoreID         int64
	OriginAccountID int64
	Amount          decimal.Decimal
}

// Create проводит выплату магазину.
//
// Алгоритм работы:
//  1. Курс берется заранее, до открытия транзакции.
//  2. Внутри одной транзакции: пересчет остатка магазина по заблокированным
//     неоплаченным покупкам, сверка суммы, блокировка счета списания,
//     проверка достаточности средств, запись выплаты со следующим сквозным
//     номером, привязка покупок, списание со счета и одна запись журнала
//     типа ADMIN_BAR_PAYMENT.
//
// Несовпадение суммы возвращается как *domain.AmountMismatchError: остаток
// магазина мог измениться между чтением и запросом выплаты.
func (p *PayoutService) Create(ctx context.Context, args CreatePayoutArgs) (*domain.StorePayment, error) {
	if !args.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "payout amount must be positive")
	}

	rate, rateErr := p.rates.GetRate(ctx)
	if rateErr != nil {
		return nil, rateErr
	}

	var payment *domain.StorePayment
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		created, err := p.createInTx(c, tx, args, rate)
		if err != nil {
			return err
		}
		payment = created
		return nil
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return payment, nil
}

func (p *PayoutService) GetByID(ctx context.Context, id int64) (*domain.StorePayment, error) {
	payment, err := p.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return payment, nil
}

func (p *PayoutService) List(ctx context.Context, storeID *int64, limit uint) ([]domain.StorePayment, error) {
	payments, err := p.paymentRepo.List(ctx, storeID, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return payments, nil
}

func (p *PayoutService) createInTx(
	ctx context.Context,
	tx uow.TX,
	args CreatePayoutArgs,
	rate decimal.Decimal,
) (*domain.StorePayment, error) {
	storeRepo, storeErr := uow.GetAs[StoreRepository](tx, uow.RepositoryName(repoargs.StoreRepoName))
	if storeErr != nil {
		return nil, storeErr //nolint:wrapcheck
	}
	purchaseRepo, purchErr := uow.GetAs[PurchaseRepository](tx, uow.RepositoryName(repoargs.PurchaseRepoName))
	if purchErr != nil {
		return nil, purchErr //nolint:wrapcheck
	}
	accountRepo, accErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if accErr != nil {
		return nil, accErr //nolint:wrapcheck
	}
	paymentRepo, payErr := uow.GetAs[StorePaymentRepository](tx, uow.RepositoryName(repoargs.StorePaymentRepoName))
	if payErr != nil {
		return nil, payErr //nolint:wrapcheck
	}
	movementRepo, movErr := uow.GetAs[MovementRepository](tx, uow.RepositoryName(repoargs.MovementRepoName))
	if movErr != nil {
		return nil, movErr //nolint:wrapcheck
	}

	store, getStoreErr := storeRepo.GetByID(ctx, args.StoreID)
	if getStoreErr != nil {
		return nil, getStoreErr //nolint:wrapcheck
	}

	purchases, listErr := purchaseRepo.ListUnpaidDeliveredForUpdate(ctx, store.ID)
	if listErr != nil {
		return nil, listErr //nolint:wrapcheck
	}

	owed := outstandingBalance(store, purchases)
	if !args.Amount.Equal(owed) {
		return nil, &domain.AmountMismatchError{
			StoreID:   store.ID,
			Requested: args.Amount,
			Owed:      owed,
		}
	}

	origin, lockErr := accountRepo.GetByIDForUpdate(ctx, args.OriginAccountID)
	if lockErr != nil {
		return nil, lockErr //nolint:wrapcheck
	}

	amountToExtract := domain.Convert(args.Amount, domain.CurrencyUSD, origin.Currency, rate)
	if origin.Balance.LessThan(amountToExtract) {
		return nil, fmt.Errorf("account %s: %w", origin.Name, domain.ErrInsufficientFunds)
	}

	payment, createErr := paymentRepo.Create(ctx, repoargs.CreateStorePayment{
		StoreID:         store.ID,
		Amount:          args.Amount,
		OriginAccountID: origin.ID,
		Rate:            rate,
	})
	if createErr != nil {
		return nil, fmt.Errorf("recording store payment: %w", createErr)
	}

	purchaseIDs := make([]int64, len(purchases))
	for i, purchase := range purchases {
		purchaseIDs[i] = purchase.ID
	}
	attached, attachErr := purchaseRepo.AttachToPayment(ctx, purchaseIDs, payment.ID)
	if attachErr != nil {
		return nil, attachErr //nolint:wrapcheck
	}
	if attached != int64(len(purchaseIDs)) {
		return nil, domain.NewConsistencyError(
			"payout purchase attachment",
			fmt.Sprintf("expected %d purchases attached to payment %d, got %d", len(purchaseIDs), payment.ID, attached),
		)
	}

	if _, err := accountRepo.UpdateBalance(ctx, origin.ID, origin.Balance.Sub(amountToExtract)); err != nil {
		return nil, fmt.Errorf("debiting account %s: %w", origin.Name, err)
	}

	groupingID, seqErr := movementRepo.NextGroupingID(ctx)
	if seqErr != nil {
		return nil, seqErr //nolint:wrapcheck
	}
	_, emitErr := movementRepo.CreateGroup(ctx, groupingID, []repoargs.CreateMovement{
		{Type: domain.MovementAdminBarPayment, StorePaymentID: &payment.ID},
	})
	if emitErr != nil {
		return nil, fmt.Errorf("emitting payout movement: %w", emitErr)
	}

	return payment, nil
}

// outstandingBalance остаток магазина по набору его неоплаченных доставленных
// покупок: сумма за вычетом комиссии платформы, округленная до центов.
func outstandingBalance(store *domain.Store, purchases []domain.Purchase) decimal.Decimal {
	total := decimal.Zero
	for _, purchase := range purchases {
		total = total.Add(purchase.Amount)
	}
	return domain.RoundMoney(total.Mul(decimal.NewFromInt(1).Sub(store.CommissionPercentage)))
}
