package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/pkg/uow"
)

// PurchaseService ведет жизненный цикл покупок-подарков: создание за счет
// баланса клиента, принятие, выдачу в магазине и отклонение с частичным
// возвратом. Каждый денежный переход атомарен вместе со своими записями
// журнала.
type PurchaseService struct {
	uow          uow.UOW
	purchaseRepo PurchaseRepository
	giftTTL      time.Duration
}

func NewPurchaseService(u uow.UOW, giftTTL time.Duration) (*PurchaseService, error) {
	purchaseRepo, err := uow.GetRepositoryAs[PurchaseRepository](u, uow.RepositoryName(repoargs.PurchaseRepoName))
	if err != nil {
		return nil, err
	}
	return &PurchaseService{
		uow:          u,
		purchaseRepo: purchaseRepo,
		giftTTL:      giftTTL,
	}, nil
}

type CreateGiftArgs struct {
	CustomerID      int64
	StoreID         int64
	GiftRecipientID *int64
	Amount          decimal.Decimal
}

// CreateGift создает покупку, списывая ее стоимость с баланса клиента.
// Комиссия магазина фиксируется в покупке на момент создания. Для покупки
// с получателем-подарком создается группа записей {GIFT_SENT, GIFT_RECEIVED}.
func (p *PurchaseService) CreateGift(ctx context.Context, args CreateGiftArgs) (*domain.Purchase, error) {
	if !args.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "purchase amount must be positive")
	}
	if args.GiftRecipientID != nil && *args.GiftRecipientID == args.CustomerID {
		return nil, domain.NewValidationError("gift_recipient_id", "customer cannot gift to themselves")
	}

	var purchase *domain.Purchase
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		created, err := p.createGiftInTx(c, tx, args)
		if err != nil {
			return err
		}
		purchase = created
		return nil
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return purchase, nil
}

func (p *PurchaseService) GetByID(ctx context.Context, id int64) (*domain.Purchase, error) {
	purchase, err := p.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return purchase, nil
}

// Accept получатель принимает подарок. Допустим только из статуса PENDING и
// до истечения срока.
func (p *PurchaseService) Accept(ctx context.Context, id int64) (*domain.Purchase, error) {
	return p.transition(ctx, id, domain.PurchaseStatusAccepted)
}

// Claim получатель предъявляет подарок в магазине. Денег не двигает, записей
// журнала не создает.
func (p *PurchaseService) Claim(ctx context.Context, id int64) (*domain.Purchase, error) {
	return p.transition(ctx, id, domain.PurchaseStatusClaimed)
}

// Deliver магазин выдал покупку. Создается группа {GIFT_CLAIMED,
// BAR_CLAIM_PAYMENT}: с этого момента покупка попадает в задолженность
// платформы перед магазином.
func (p *PurchaseService) Deliver(ctx context.Context, id int64) (*domain.Purchase, error) {
	return p.transition(ctx, id, domain.PurchaseStatusDelivered)
}

// Reject получатель отклонил подарок. Клиенту возвращается сумма за вычетом
// удержания, создается группа {GIFT_REFUNDED, GIFT_REJECTED}.
func (p *PurchaseService) Reject(ctx context.Context, id int64) (*domain.Purchase, error) {
	var purchase *domain.Purchase
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		rejected, err := p.rejectInTx(c, tx, id, false)
		if err != nil {
			return err
		}
		purchase = rejected
		return nil
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return purchase, nil
}

// ExpireOverdue отклоняет подарки с истекшим сроком принятия. Каждый подарок
// обрабатывается в своей транзакции, чтобы одна сбойная покупка не откатывала
// остальные. Возвращает число отклоненных подарков и накопленные ошибки.
func (p *PurchaseService) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	overdue, listErr := p.purchaseRepo.ListExpiredPending(ctx, now)
	if listErr != nil {
		return 0, listErr //nolint:wrapcheck
	}

	var expired int
	var errs []error
	for _, purchase := range overdue {
		txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			_, err := p.rejectInTx(c, tx, purchase.ID, true)
			return err
		})
		if txErr != nil {
			errs = append(errs, fmt.Errorf("expiring purchase %d: %w", purchase.ID, txErr))
			continue
		}
		expired++
	}
	return expired, errors.Join(errs...)
}

func (p *PurchaseService) createGiftInTx(
	ctx context.Context,
	tx uow.TX,
	args CreateGiftArgs,
) (*domain.Purchase, error) {
	storeRepo, storeErr := uow.GetAs[StoreRepository](tx, uow.RepositoryName(repoargs.StoreRepoName))
	if storeErr != nil {
		return nil, storeErr //nolint:wrapcheck
	}
	customerRepo, custErr := uow.GetAs[CustomerRepository](tx, uow.RepositoryName(repoargs.CustomerRepoName))
	if custErr != nil {
		return nil, custErr //nolint:wrapcheck
	}
	purchaseRepo, purchErr := uow.GetAs[PurchaseRepository](tx, uow.RepositoryName(repoargs.PurchaseRepoName))
	if purchErr != nil {
		return nil, purchErr //nolint:wrapcheck
	}

	store, getStoreErr := storeRepo.GetByID(ctx, args.StoreID)
	if getStoreErr != nil {
		return nil, getStoreErr //nolint:wrapcheck
	}

	customer, lockErr := customerRepo.GetByIDForUpdate(ctx, args.CustomerID)
	if lockErr != nil {
		return nil, lockErr //nolint:wrapcheck
	}
	if customer.Balance.LessThan(args.Amount) {
		return nil, fmt.Errorf("customer %s: %w", customer.Username, domain.ErrInsufficientFunds)
	}
	if _, err := customerRepo.UpdateBalance(ctx, customer.ID, customer.Balance.Sub(args.Amount)); err != nil {
		return nil, fmt.Errorf("debiting customer %d: %w", customer.ID, err)
	}

	purchase, createErr := purchaseRepo.Create(ctx, repoargs.CreatePurchase{
		CustomerID:           args.CustomerID,
		StoreID:              args.StoreID,
		GiftRecipientID:      args.GiftRecipientID,
		Amount:               args.Amount,
		CommissionPercentage: store.CommissionPercentage,
		GiftExpiresAt:        time.Now().Add(p.giftTTL),
	})
	if createErr != nil {
		return nil, fmt.Errorf("recording purchase: %w", createErr)
	}

	if args.GiftRecipientID != nil {
		if err := emitPurchaseMovements(ctx, tx, purchase.ID,
			domain.MovementGiftSent, domain.MovementGiftReceived); err != nil {
			return nil, err
		}
	}
	return purchase, nil
}

// transition выполняет переход статуса без движения денег по правилам:
// PENDING -> ACCEPTED -> CLAIMED -> DELIVERED, выдача возможна и напрямую из
// ACCEPTED.
func (p *PurchaseService) transition(
	ctx context.Context,
	id int64,
	target domain.PurchaseStatus,
) (*domain.Purchase, error) {
	var purchase *domain.Purchase
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		purchaseRepo, repoErr := uow.GetAs[PurchaseRepository](tx, uow.RepositoryName(repoargs.PurchaseRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		current, lockErr := purchaseRepo.GetByIDForUpdate(c, id)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if err := validateTransition(current, target); err != nil {
			return err
		}

		updated, updErr := purchaseRepo.UpdateStatus(c, id, target)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		switch target {
		case domain.PurchaseStatusAccepted:
			if err := emitPurchaseMovements(c, tx, id, domain.MovementGiftAccepted); err != nil {
				return err
			}
		case domain.PurchaseStatusDelivered:
			if err := emitPurchaseMovements(c, tx, id,
				domain.MovementGiftClaimed, domain.MovementBarClaimPayment); err != nil {
				return err
			}
		}

		purchase = updated
		return nil
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return purchase, nil
}

func validateTransition(current *domain.Purchase, target domain.PurchaseStatus) error {
	allowed := map[domain.PurchaseStatus][]domain.PurchaseStatus{
		domain.PurchaseStatusAccepted:  {domain.PurchaseStatusPending},
		domain.PurchaseStatusClaimed:   {domain.PurchaseStatusAccepted},
		domain.PurchaseStatusDelivered: {domain.PurchaseStatusAccepted, domain.PurchaseStatusClaimed},
	}
	from, ok := allowed[target]
	if !ok {
		return domain.NewValidationError("status", fmt.Sprintf("unsupported transition target %s", target))
	}
	for _, status := range from {
		if current.Status == status {
			if target == domain.PurchaseStatusAccepted && current.GiftExpired(time.Now()) {
				return domain.NewValidationError("status", fmt.Sprintf("gift %d has expired", current.ID))
			}
			return nil
		}
	}
	return domain.NewValidationError(
		"status",
		fmt.Sprintf("purchase %d cannot go from %s to %s", current.ID, current.Status, target),
	)
}

// rejectInTx отклоняет покупку и возвращает клиенту сумму за вычетом
// удержания. expired выбирает вторую запись группы: GIFT_EXPIRED вместо
// GIFT_REJECTED.
func (p *PurchaseService) rejectInTx(
	ctx context.Context,
	tx uow.TX,
	id int64,
	expired bool,
) (*domain.Purchase, error) {
	purchaseRepo, repoErr := uow.GetAs[PurchaseRepository](tx, uow.RepositoryName(repoargs.PurchaseRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	customerRepo, custErr := uow.GetAs[CustomerRepository](tx, uow.RepositoryName(repoargs.CustomerRepoName))
	if custErr != nil {
		return nil, custErr //nolint:wrapcheck
	}

	current, lockErr := purchaseRepo.GetByIDForUpdate(ctx, id)
	if lockErr != nil {
		return nil, lockErr //nolint:wrapcheck
	}
	switch current.Status {
	case domain.PurchaseStatusDelivered, domain.PurchaseStatusRejected:
		return nil, domain.NewValidationError(
			"status",
			fmt.Sprintf("purchase %d cannot be rejected from %s", current.ID, current.Status),
		)
	}
	// Истекает только непринятый подарок. Подарок, принятый между выборкой
	// и блокировкой, под истечение уже не попадает.
	if expired && current.Status != domain.PurchaseStatusPending {
		return nil, domain.NewValidationError(
			"status",
			fmt.Sprintf("purchase %d is %s and no longer expires", current.ID, current.Status),
		)
	}

	customer, custLockErr := customerRepo.GetByIDForUpdate(ctx, current.CustomerID)
	if custLockErr != nil {
		return nil, custLockErr //nolint:wrapcheck
	}
	refund := domain.GiftRefundAmount(current.Amount)
	if _, err := customerRepo.UpdateBalance(ctx, customer.ID, customer.Balance.Add(refund)); err != nil {
		return nil, fmt.Errorf("refunding customer %d: %w", customer.ID, err)
	}

	updated, updErr := purchaseRepo.UpdateStatus(ctx, id, domain.PurchaseStatusRejected)
	if updErr != nil {
		return nil, updErr //nolint:wrapcheck
	}

	second := domain.MovementGiftRejected
	if expired {
		second = domain.MovementGiftExpired
	}
	if err := emitPurchaseMovements(ctx, tx, id, domain.MovementGiftRefunded, second); err != nil {
		return nil, err
	}
	return updated, nil
}

// emitPurchaseMovements пишет группу записей журнала, ссылающихся на покупку.
func emitPurchaseMovements(
	ctx context.Context,
	tx uow.TX,
	purchaseID int64,
	types ...domain.MovementType,
) error {
	movementRepo, repoErr := uow.GetAs[MovementRepository](tx, uow.RepositoryName(repoargs.MovementRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}

	groupingID, seqErr := movementRepo.NextGroupingID(ctx)
	if seqErr != nil {
		return seqErr //nolint:wrapcheck
	}

	entries := make([]repoargs.CreateMovement, len(types))
	for i, movementType := range types {
		id := purchaseID
		entries[i] = repoargs.CreateMovement{Type: movementType, PurchaseID: &id}
	}
	if _, err := movementRepo.CreateGroup(ctx, groupingID, entries); err != nil {
		return fmt.Errorf("emitting purchase movements: %w", err)
	}
	return nil
}
