package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/pkg/uow"
)

// FundingService фиксирует пополнения балансов клиентов, приходящие от
// платежных шлюзов уже с разрешенным исходом. Успешное пополнение зачисляет
// деньги клиенту и на именной счет платформы-шлюза.
type FundingService struct {
	uow         uow.UOW
	fundingRepo FundingRepository
	rates       *RateService
}

func NewFundingService(u uow.UOW, rates *RateService) (*FundingService, error) {
	fundingRepo, err := uow.GetRepositoryAs[FundingRepository](u, uow.RepositoryName(repoargs.FundingRepoName))
	if err != nil {
		return nil, err
	}
	return &FundingService{
		uow:         u,
		fundingRepo: fundingRepo,
		rates:       rates,
	}, nil
}

type RecordFundingArgs struct {
	CustomerID int64
	Amount     decimal.Decimal
	Platform   domain.FundingPlatform
	Status     domain.FundingStatus
	Reference  string
	Fee        decimal.Decimal
	Error      *string
	Rate       *decimal.Decimal
}

// Record записывает исход пополнения. Повторный reference шлюза возвращает
// *domain.ValidationError: один вебхук обрабатывается ровно один раз.
// Неуспешное пополнение сохраняется с текстом ошибки и денег не двигает.
func (f *FundingService) Record(ctx context.Context, args RecordFundingArgs) (*domain.Funding, error) {
	if err := validateFundingArgs(args); err != nil {
		return nil, err
	}

	rate, rateErr := f.resolveFundingRate(ctx, args.Platform, args.Status, args.Rate)
	if rateErr != nil {
		return nil, rateErr
	}
	if rate != nil {
		args.Rate = rate
	}

	var funding *domain.Funding
	txErr := f.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		created, err := f.recordInTx(c, tx, args)
		if err != nil {
			return err
		}
		funding = created
		return nil
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return funding, nil
}

// ForceComplete административное завершение пополнения, которое шлюз счел
// неуспешным, а деньги по факту пришли. Допустимо только из статуса FAILED.
// Зачисления те же, что при успешном пополнении, но запись журнала получает
// тип ADMIN_FUNDING.
func (f *FundingService) ForceComplete(ctx context.Context, id int64) (*domain.Funding, error) {
	existing, getErr := f.fundingRepo.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr //nolint:wrapcheck
	}

	rate, rateErr := f.resolveFundingRate(ctx, existing.Platform, domain.FundingStatusSuccessful, existing.Rate)
	if rateErr != nil {
		return nil, rateErr
	}

	var funding *domain.Funding
	txErr := f.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		completed, err := f.forceCompleteInTx(c, tx, id, rate)
		if err != nil {
			return err
		}
		funding = completed
		return nil
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return funding, nil
}

func (f *FundingService) GetByID(ctx context.Context, id int64) (*domain.Funding, error) {
	funding, err := f.fundingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return funding, nil
}

func (f *FundingService) List(ctx context.Context, limit uint) ([]domain.Funding, error) {
	fundings, err := f.fundingRepo.List(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return fundings, nil
}

func validateFundingArgs(args RecordFundingArgs) error {
	if !args.Amount.IsPositive() {
		return domain.NewValidationError("amount", "funding amount must be positive")
	}
	if !args.Platform.Valid() {
		return domain.NewValidationError("platform", fmt.Sprintf("unsupported platform %s", args.Platform))
	}
	if strings.TrimSpace(args.Reference) == "" {
		return domain.NewValidationError("reference", "funding reference is blank")
	}
	if args.Fee.IsNegative() {
		return domain.NewValidationError("fee", "fee is negative")
	}
	return nil
}

// resolveFundingRate возвращает курс для зачисления на счет платформы с
// локальной валютой. Для успешного пополнения через Mercantil курс обязателен:
// если шлюз его не передал, берется действующий. Обращение к источнику
// происходит до открытия транзакции.
func (f *FundingService) resolveFundingRate(
	ctx context.Context,
	platform domain.FundingPlatform,
	status domain.FundingStatus,
	existing *decimal.Decimal,
) (*decimal.Decimal, error) {
	if existing != nil || status != domain.FundingStatusSuccessful || platform != domain.PlatformMercantil {
		return existing, nil
	}
	rate, err := f.rates.GetRate(ctx)
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

func (f *FundingService) recordInTx(
	ctx context.Context,
	tx uow.TX,
	args RecordFundingArgs,
) (*domain.Funding, error) {
	fundingRepo, repoErr := uow.GetAs[FundingRepository](tx, uow.RepositoryName(repoargs.FundingRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}

	funding, createErr := fundingRepo.Create(ctx, repoargs.CreateFunding{
		CustomerID: args.CustomerID,
		Amount:     args.Amount,
		Platform:   args.Platform,
		Status:     args.Status,
		Reference:  args.Reference,
		Fee:        args.Fee,
		Error:      args.Error,
		Rate:       args.Rate,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			return nil, domain.NewValidationError(
				"reference",
				fmt.Sprintf("funding %s has already been recorded", args.Reference),
			)
		}
		return nil, fmt.Errorf("recording funding: %w", createErr)
	}

	if funding.Status == domain.FundingStatusSuccessful {
		if err := creditFunding(ctx, tx, funding); err != nil {
			return nil, err
		}
		if err := emitFundingMovement(ctx, tx, funding.ID, domain.MovementFunding); err != nil {
			return nil, err
		}
	}
	return funding, nil
}

func (f *FundingService) forceCompleteInTx(
	ctx context.Context,
	tx uow.TX,
	id int64,
	rate *decimal.Decimal,
) (*domain.Funding, error) {
	fundingRepo, repoErr := uow.GetAs[FundingRepository](tx, uow.RepositoryName(repoargs.FundingRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}

	current, lockErr := fundingRepo.GetByIDForUpdate(ctx, id)
	if lockErr != nil {
		return nil, lockErr //nolint:wrapcheck
	}
	if current.Status != domain.FundingStatusFailed {
		return nil, domain.NewValidationError(
			"status",
			fmt.Sprintf("funding %d is %s, only failed fundings can be force-completed", id, current.Status),
		)
	}

	// Разрешенный курс записывается вместе со статусом, чтобы сумма
	// зачисления в локальной валюте восстанавливалась из самой записи.
	funding, updErr := fundingRepo.UpdateStatus(ctx, id, domain.FundingStatusSuccessful, nil, rate)
	if updErr != nil {
		return nil, updErr //nolint:wrapcheck
	}

	if err := creditFunding(ctx, tx, funding); err != nil {
		return nil, err
	}
	if err := emitFundingMovement(ctx, tx, funding.ID, domain.MovementAdminFunding); err != nil {
		return nil, err
	}
	return funding, nil
}

// creditFunding зачисляет сумму пополнения клиенту и на именной счет
// платформы. Счет платформы в локальной валюте кредитуется по курсу
// пополнения.
func creditFunding(ctx context.Context, tx uow.TX, funding *domain.Funding) error {
	customerRepo, custErr := uow.GetAs[CustomerRepository](tx, uow.RepositoryName(repoargs.CustomerRepoName))
	if custErr != nil {
		return custErr //nolint:wrapcheck
	}
	accountRepo, accErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if accErr != nil {
		return accErr //nolint:wrapcheck
	}

	customer, custLockErr := customerRepo.GetByIDForUpdate(ctx, funding.CustomerID)
	if custLockErr != nil {
		return custLockErr //nolint:wrapcheck
	}
	if _, err := customerRepo.UpdateBalance(ctx, customer.ID, customer.Balance.Add(funding.Amount)); err != nil {
		return fmt.Errorf("crediting customer %d: %w", customer.ID, err)
	}

	account, accLockErr := accountRepo.GetByNameForUpdate(ctx, funding.Platform.AccountName())
	if accLockErr != nil {
		return accLockErr //nolint:wrapcheck
	}

	credit := funding.Amount
	if account.Currency != domain.CurrencyUSD {
		if funding.Rate == nil {
			return domain.NewValidationError(
				"rate",
				fmt.Sprintf("funding %d needs an exchange rate to credit account %s", funding.ID, account.Name),
			)
		}
		credit = domain.Convert(funding.Amount, domain.CurrencyUSD, account.Currency, *funding.Rate)
	}
	if _, err := accountRepo.UpdateBalance(ctx, account.ID, account.Balance.Add(credit)); err != nil {
		return fmt.Errorf("crediting account %s: %w", account.Name, err)
	}
	return nil
}

func emitFundingMovement(ctx context.Context, tx uow.TX, fundingID int64, movementType domain.MovementType) error {
	movementRepo, repoErr := uow.GetAs[MovementRepository](tx, uow.RepositoryName(repoargs.MovementRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}

	groupingID, seqErr := movementRepo.NextGroupingID(ctx)
	if seqErr != nil {
		return seqErr //nolint:wrapcheck
	}
	_, err := movementRepo.CreateGroup(ctx, groupingID, []repoargs.CreateMovement{
		{Type: movementType, FundingID: &fundingID},
	})
	if err != nil {
		return fmt.Errorf("emitting funding movement: %w", err)
	}
	return nil
}
