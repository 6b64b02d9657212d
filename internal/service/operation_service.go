package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/pkg/uow"
)

// OperationService выполняет административные операции с деньгами: депозиты,
// выводы и обмен валюты между счетами компании.
type OperationService struct {
	uow         uow.UOW
	opRepo      OperationRepository
	accountRepo AccountRepository
	rates       *RateService
}

func NewOperationService(u uow.UOW, rates *RateService) (*OperationService, error) {
	opRepo, opErr := uow.GetRepositoryAs[OperationRepository](u, uow.RepositoryName(repoargs.OperationRepoName))
	if opErr != nil {
		return nil, opErr
	}
	accountRepo, accErr := uow.GetRepositoryAs[AccountRepository](u, uow.RepositoryName(repoargs.AccountRepoName))
	if accErr != nil {
		return nil, accErr
	}
	return &OperationService{
		uow:         u,
		opRepo:      opRepo,
		accountRepo: accountRepo,
		rates:       rates,
	}, nil
}

type CreateOperationArgs struct {
	Amount               decimal.Decimal
	OriginAccountID      *int64
	DestinationAccountID *int64
	Commission           decimal.Decimal
}

// Create проводит операцию.
//
// Алгоритм работы:
//  1. Валидация суммы и комбинации счетов.
//  2. Разрешение курса: для обмена между счетами одной валюты курс
//     принудительно равен 1, иначе берется действующий курс. Обращение к
//     внешнему источнику происходит здесь, до открытия транзакции.
//  3. Внутри одной транзакции: блокировка затронутых счетов, проверка
//     достаточности средств, изменение балансов, запись операции и
//     сгруппированных записей журнала.
//
// Недостаточность средств возвращается как domain.ErrInsufficientFunds,
// ошибки входных данных как *domain.ValidationError.
func (o *OperationService) Create(ctx context.Context, args CreateOperationArgs) (*domain.FundOperation, error) {
	if err := validateOperationArgs(args); err != nil {
		return nil, err
	}

	rate, rateErr := o.resolveRate(ctx, args)
	if rateErr != nil {
		return nil, rateErr
	}

	var operation *domain.FundOperation
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		op, err := o.createInTx(c, tx, args, rate)
		if err != nil {
			return err
		}
		operation = op
		return nil
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return operation, nil
}

func (o *OperationService) GetByID(ctx context.Context, id int64) (*domain.FundOperation, error) {
	operation, err := o.opRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return operation, nil
}

func (o *OperationService) List(ctx context.Context, limit uint) ([]domain.FundOperation, error) {
	operations, err := o.opRepo.List(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return operations, nil
}

func validateOperationArgs(args CreateOperationArgs) error {
	if args.Amount.IsZero() {
		return domain.NewValidationError("amount", "amount is zero")
	}
	if args.OriginAccountID == nil && args.DestinationAccountID == nil {
		return domain.NewValidationError("accounts", "neither origin nor destination account set")
	}
	if args.Amount.IsNegative() {
		if args.OriginAccountID == nil {
			return domain.NewValidationError("origin_account", "withdrawal requires an origin account")
		}
		if args.DestinationAccountID != nil {
			return domain.NewValidationError("destination_account", "withdrawal cannot have a destination account")
		}
	}
	if args.Amount.IsPositive() && args.DestinationAccountID == nil {
		return domain.NewValidationError("destination_account", "deposit requires a destination account")
	}
	if args.OriginAccountID != nil && args.DestinationAccountID != nil &&
		*args.OriginAccountID == *args.DestinationAccountID {
		return domain.NewValidationError("accounts", "origin and destination are the same account")
	}
	if args.Commission.IsNegative() {
		return domain.NewValidationError("commission", "commission is negative")
	}
	return nil
}

// resolveRate определяет курс операции до открытия транзакции. Счета здесь
// читаются без блокировки, только ради валют; валюта счета неизменяема,
// поэтому решение остается верным и внутри транзакции.
func (o *OperationService) resolveRate(ctx context.Context, args CreateOperationArgs) (decimal.Decimal, error) {
	if args.OriginAccountID == nil || args.DestinationAccountID == nil {
		return o.rates.GetRate(ctx)
	}

	origin, originErr := o.accountRepo.GetByID(ctx, *args.OriginAccountID)
	if originErr != nil {
		return decimal.Decimal{}, originErr //nolint:wrapcheck
	}
	destination, destErr := o.accountRepo.GetByID(ctx, *args.DestinationAccountID)
	if destErr != nil {
		return decimal.Decimal{}, destErr //nolint:wrapcheck
	}

	if origin.Currency == destination.Currency {
		return decimal.NewFromInt(1), nil
	}
	return o.rates.GetRate(ctx)
}

func (o *OperationService) createInTx(
	ctx context.Context,
	tx uow.TX,
	args CreateOperationArgs,
	rate decimal.Decimal,
) (*domain.FundOperation, error) {
	accountRepo, accErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if accErr != nil {
		return nil, accErr //nolint:wrapcheck
	}
	opRepo, opErr := uow.GetAs[OperationRepository](tx, uow.RepositoryName(repoargs.OperationRepoName))
	if opErr != nil {
		return nil, opErr //nolint:wrapcheck
	}
	movementRepo, movErr := uow.GetAs[MovementRepository](tx, uow.RepositoryName(repoargs.MovementRepoName))
	if movErr != nil {
		return nil, movErr //nolint:wrapcheck
	}

	origin, destination, lockErr := lockOperationAccounts(ctx, accountRepo, args)
	if lockErr != nil {
		return nil, lockErr
	}

	if origin != nil && destination != nil {
		if origin.Currency == destination.Currency {
			rate = decimal.NewFromInt(1)
		}
		credited := domain.Convert(args.Amount, origin.Currency, destination.Currency, rate).
			Sub(args.Commission)
		if credited.IsNegative() {
			return nil, domain.NewValidationError(
				"commission",
				fmt.Sprintf("commission %s exceeds the converted amount", args.Commission),
			)
		}
	}

	if origin != nil && origin.Balance.LessThan(args.Amount.Abs()) {
		return nil, fmt.Errorf("account %s: %w", origin.Name, domain.ErrInsufficientFunds)
	}

	if err := applyOperationBalances(ctx, accountRepo, origin, destination, args, rate); err != nil {
		return nil, err
	}

	operation, createErr := opRepo.Create(ctx, repoargs.CreateOperation{
		Amount:               args.Amount,
		OriginAccountID:      args.OriginAccountID,
		DestinationAccountID: args.DestinationAccountID,
		Rate:                 rate,
		Commission:           args.Commission,
	})
	if createErr != nil {
		return nil, fmt.Errorf("recording operation: %w", createErr)
	}

	if err := emitOperationMovements(ctx, movementRepo, operation); err != nil {
		return nil, err
	}
	return operation, nil
}

// lockOperationAccounts блокирует затронутые счета. Порядок блокировки по
// возрастанию id, одинаковый для всех конкурентов, исключает взаимные
// блокировки.
func lockOperationAccounts(
	ctx context.Context,
	accountRepo AccountRepository,
	args CreateOperationArgs,
) (origin, destination *domain.FundAccount, err error) {
	ids := make([]int64, 0, 2)
	if args.OriginAccountID != nil {
		ids = append(ids, *args.OriginAccountID)
	}
	if args.DestinationAccountID != nil {
		ids = append(ids, *args.DestinationAccountID)
	}
	if len(ids) == 2 && ids[0] > ids[1] {
		ids[0], ids[1] = ids[1], ids[0]
	}

	locked := make(map[int64]*domain.FundAccount, len(ids))
	for _, id := range ids {
		account, lockErr := accountRepo.GetByIDForUpdate(ctx, id)
		if lockErr != nil {
			return nil, nil, lockErr //nolint:wrapcheck
		}
		locked[id] = account
	}

	if args.OriginAccountID != nil {
		origin = locked[*args.OriginAccountID]
	}
	if args.DestinationAccountID != nil {
		destination = locked[*args.DestinationAccountID]
	}
	return origin, destination, nil
}

func applyOperationBalances(
	ctx context.Context,
	accountRepo AccountRepository,
	origin, destination *domain.FundAccount,
	args CreateOperationArgs,
	rate decimal.Decimal,
) error {
	if origin != nil && destination != nil {
		destAmount := domain.Convert(args.Amount, origin.Currency, destination.Currency, rate).
			Sub(args.Commission)

		if _, err := accountRepo.UpdateBalance(ctx, origin.ID, origin.Balance.Sub(args.Amount)); err != nil {
			return fmt.Errorf("debiting account %s: %w", origin.Name, err)
		}
		if _, err := accountRepo.UpdateBalance(ctx, destination.ID, destination.Balance.Add(destAmount)); err != nil {
			return fmt.Errorf("crediting account %s: %w", destination.Name, err)
		}
		return nil
	}

	if destination != nil {
		if _, err := accountRepo.UpdateBalance(ctx, destination.ID, destination.Balance.Add(args.Amount)); err != nil {
			return fmt.Errorf("crediting account %s: %w", destination.Name, err)
		}
		return nil
	}

	// Вывод средств: сумма отрицательная, баланс уменьшается.
	if _, err := accountRepo.UpdateBalance(ctx, origin.ID, origin.Balance.Add(args.Amount)); err != nil {
		return fmt.Errorf("debiting account %s: %w", origin.Name, err)
	}
	return nil
}

func emitOperationMovements(
	ctx context.Context,
	movementRepo MovementRepository,
	operation *domain.FundOperation,
) error {
	groupingID, seqErr := movementRepo.NextGroupingID(ctx)
	if seqErr != nil {
		return seqErr //nolint:wrapcheck
	}

	var entries []repoargs.CreateMovement
	switch {
	case operation.IsExchange():
		entries = []repoargs.CreateMovement{
			{Type: domain.MovementExchangeOrigin, OperationID: &operation.ID},
			{Type: domain.MovementExchangeDest, OperationID: &operation.ID},
		}
	case operation.Amount.IsPositive():
		entries = []repoargs.CreateMovement{{Type: domain.MovementAdminFunding, OperationID: &operation.ID}}
	default:
		entries = []repoargs.CreateMovement{{Type: domain.MovementAdminWithdrawal, OperationID: &operation.ID}}
	}

	if _, err := movementRepo.CreateGroup(ctx, groupingID, entries); err != nil {
		return fmt.Errorf("emitting operation movements: %w", err)
	}
	return nil
}
