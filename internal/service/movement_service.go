package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/pkg/uow"
)

// MovementService читает журнал движений для административного экрана.
// Журнал неизменяем, сервис только дополняет записи отображаемыми суммами.
type MovementService struct {
	uow          uow.UOW
	movementRepo MovementRepository
	purchaseRepo PurchaseRepository
	fundingRepo  FundingRepository
	opRepo       OperationRepository
	paymentRepo  StorePaymentRepository
}

func NewMovementService(u uow.UOW) (*MovementService, error) {
	movementRepo, movErr := uow.GetRepositoryAs[MovementRepository](u, uow.RepositoryName(repoargs.MovementRepoName))
	if movErr != nil {
		return nil, movErr
	}
	purchaseRepo, purchErr := uow.GetRepositoryAs[PurchaseRepository](u, uow.RepositoryName(repoargs.PurchaseRepoName))
	if purchErr != nil {
		return nil, purchErr
	}
	fundingRepo, fundErr := uow.GetRepositoryAs[FundingRepository](u, uow.RepositoryName(repoargs.FundingRepoName))
	if fundErr != nil {
		return nil, fundErr
	}
	opRepo, opErr := uow.GetRepositoryAs[OperationRepository](u, uow.RepositoryName(repoargs.OperationRepoName))
	if opErr != nil {
		return nil, opErr
	}
	paymentRepo, payErr := uow.GetRepositoryAs[StorePaymentRepository](u, uow.RepositoryName(repoargs.StorePaymentRepoName))
	if payErr != nil {
		return nil, payErr
	}
	return &MovementService{
		uow:          u,
		movementRepo: movementRepo,
		purchaseRepo: purchaseRepo,
		fundingRepo:  fundingRepo,
		opRepo:       opRepo,
		paymentRepo:  paymentRepo,
	}, nil
}

// MovementView запись журнала вместе с вычисленной отображаемой суммой.
type MovementView struct {
	Movement domain.Movement
	Amount   decimal.Decimal
}

// List возвращает записи журнала с суммами. Связанные сущности подгружаются
// по ссылкам записей; повторные ссылки на одну сущность читаются один раз.
func (m *MovementService) List(ctx context.Context, filter repoargs.MovementFilter) ([]MovementView, error) {
	movements, err := m.movementRepo.List(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return m.buildViews(ctx, movements)
}

// GetGroup возвращает все записи одной бизнес-транзакции.
func (m *MovementService) GetGroup(ctx context.Context, groupingID int64) ([]MovementView, error) {
	movements, err := m.movementRepo.GetByGroupingID(ctx, groupingID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if len(movements) == 0 {
		return nil, domain.ErrRecordNotFound
	}
	return m.buildViews(ctx, movements)
}

func (m *MovementService) buildViews(ctx context.Context, movements []domain.Movement) ([]MovementView, error) {
	loader := newRefLoader(m)
	views := make([]MovementView, len(movements))
	for i, movement := range movements {
		refs, refsErr := loader.load(ctx, movement)
		if refsErr != nil {
			return nil, fmt.Errorf("loading references of movement %d: %w", movement.ID, refsErr)
		}
		amount, amountErr := domain.DisplayAmount(movement.Type, refs)
		if amountErr != nil {
			return nil, amountErr //nolint:wrapcheck
		}
		views[i] = MovementView{Movement: movement, Amount: amount}
	}
	return views, nil
}

// refLoader кеширует подгруженные сущности в пределах одного запроса списка:
// записи одной группы ссылаются на одну и ту же сущность.
type refLoader struct {
	svc       *MovementService
	purchases map[int64]*domain.Purchase
	fundings  map[int64]*domain.Funding
	ops       map[int64]*domain.FundOperation
	payments  map[int64]*domain.StorePayment
}

func newRefLoader(svc *MovementService) *refLoader {
	return &refLoader{
		svc:       svc,
		purchases: make(map[int64]*domain.Purchase),
		fundings:  make(map[int64]*domain.Funding),
		ops:       make(map[int64]*domain.FundOperation),
		payments:  make(map[int64]*domain.StorePayment),
	}
}

func (l *refLoader) load(ctx context.Context, movement domain.Movement) (domain.MovementRefs, error) {
	var refs domain.MovementRefs
	switch {
	case movement.PurchaseID != nil:
		purchase, ok := l.purchases[*movement.PurchaseID]
		if !ok {
			loaded, err := l.svc.purchaseRepo.GetByID(ctx, *movement.PurchaseID)
			if err != nil {
				return refs, err //nolint:wrapcheck
			}
			l.purchases[*movement.PurchaseID] = loaded
			purchase = loaded
		}
		refs.Purchase = purchase
	case movement.FundingID != nil:
		funding, ok := l.fundings[*movement.FundingID]
		if !ok {
			loaded, err := l.svc.fundingRepo.GetByID(ctx, *movement.FundingID)
			if err != nil {
				return refs, err //nolint:wrapcheck
			}
			l.fundings[*movement.FundingID] = loaded
			funding = loaded
		}
		refs.Funding = funding
	case movement.OperationID != nil:
		operation, ok := l.ops[*movement.OperationID]
		if !ok {
			loaded, err := l.svc.opRepo.GetByID(ctx, *movement.OperationID)
			if err != nil {
				return refs, err //nolint:wrapcheck
			}
			l.ops[*movement.OperationID] = loaded
			operation = loaded
		}
		refs.Operation = operation
	case movement.StorePaymentID != nil:
		payment, ok := l.payments[*movement.StorePaymentID]
		if !ok {
			loaded, err := l.svc.paymentRepo.GetByID(ctx, *movement.StorePaymentID)
			if err != nil {
				return refs, err //nolint:wrapcheck
			}
			l.payments[*movement.StorePaymentID] = loaded
			payment = loaded
		}
		refs.StorePayment = payment
	default:
		return refs, domain.NewConsistencyError(
			"movement reference",
			fmt.Sprintf("movement %d has no reference", movement.ID),
		)
	}
	return refs, nil
}
