package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/pkg/uow"
)

// RateService отдает действующий курс USD/VES. Порядок разрешения:
// операторский курс из БД, затем закешированная котировка, затем свежий
// запрос к внешнему источнику. Кеш общий на процесс, сам по себе не
// протухает; фоновый Refresher периодически его обновляет.
type RateService struct {
	uow      uow.UOW
	rateRepo RateRepository
	fetcher  QuoteFetcher

	mu     sync.RWMutex
	cached decimal.Decimal
	hasVal bool
}

func NewRateService(u uow.UOW, fetcher QuoteFetcher) (*RateService, error) {
	rateRepo, err := uow.GetRepositoryAs[RateRepository](u, uow.RepositoryName(repoargs.RateRepoName))
	if err != nil {
		return nil, err
	}
	return &RateService{
		uow:      u,
		rateRepo: rateRepo,
		fetcher:  fetcher,
	}, nil
}

// GetRate возвращает действующий курс. Ошибка внешнего источника доходит до
// вызывающего как есть, подмена устаревшим значением сверх описанного
// порядка не делается.
func (r *RateService) GetRate(ctx context.Context) (decimal.Decimal, error) {
	systemRate, err := r.rateRepo.Get(ctx)
	if err == nil {
		return systemRate.Rate, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return decimal.Decimal{}, fmt.Errorf("reading operator rate: %w", err)
	}

	r.mu.RLock()
	cached, ok := r.cached, r.hasVal
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	return r.RefreshQuote(ctx)
}

// RefreshQuote запрашивает свежую котировку и кладет ее в кеш. Вызывается
// фоновым Refresher и как последняя ступень GetRate.
func (r *RateService) RefreshQuote(ctx context.Context) (decimal.Decimal, error) {
	rate, err := r.fetcher.FetchRate(ctx)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("fetching rate quote: %w", err)
	}
	if !rate.IsPositive() {
		return decimal.Decimal{}, domain.NewValidationError("rate", fmt.Sprintf("quoted rate %s is not positive", rate))
	}

	r.mu.Lock()
	r.cached = rate
	r.hasVal = true
	r.mu.Unlock()

	return rate, nil
}

// SetOperatorRate выставляет операторский курс, который с этого момента
// перекрывает котировки источника.
func (r *RateService) SetOperatorRate(ctx context.Context, rate decimal.Decimal) (*domain.SystemRate, error) {
	if !rate.IsPositive() {
		return nil, domain.NewValidationError("rate", "rate must be positive")
	}
	systemRate, err := r.rateRepo.Upsert(ctx, rate)
	if err != nil {
		return nil, fmt.Errorf("setting operator rate: %w", err)
	}
	return systemRate, nil
}

// ClearOperatorRate снимает операторский курс.
func (r *RateService) ClearOperatorRate(ctx context.Context) error {
	if err := r.rateRepo.Delete(ctx); err != nil {
		return fmt.Errorf("clearing operator rate: %w", err)
	}
	return nil
}
