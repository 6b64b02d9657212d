package service

import (
	"context"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/pkg/uow"
)

// BalanceService считает текущую задолженность платформы перед магазинами.
// Результат каждый раз считается заново: статусы покупок меняются постоянно
// и кешировать его нельзя.
type BalanceService struct {
	uow       uow.UOW
	storeRepo StoreRepository
}

func NewBalanceService(u uow.UOW) (*BalanceService, error) {
	storeRepo, err := uow.GetRepositoryAs[StoreRepository](u, uow.RepositoryName(repoargs.StoreRepoName))
	if err != nil {
		return nil, err
	}
	return &BalanceService{
		uow:       u,
		storeRepo: storeRepo,
	}, nil
}

// CalculateStoreBalance возвращает остатки магазинов: сумму доставленных и не
// привязанных к выплате покупок за вычетом комиссии. storeID == nil считает
// по всем магазинам; магазин без покупок получает ровно 0.
func (b *BalanceService) CalculateStoreBalance(
	ctx context.Context,
	storeID *int64,
) ([]domain.StoreBalance, error) {
	balances, err := b.storeRepo.Balances(ctx, storeID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return balances, nil
}

func (b *BalanceService) ListStores(ctx context.Context) ([]domain.Store, error) {
	stores, err := b.storeRepo.List(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return stores, nil
}
