package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/giftbar/ledger/internal/domain"
	"github.com/giftbar/ledger/internal/repository/repoargs"
	"github.com/giftbar/ledger/pkg/uow"
)

// AccountService управляет административными счетами и клиентами.
type AccountService struct {
	uow          uow.UOW
	accountRepo  AccountRepository
	customerRepo CustomerRepository
}

func NewAccountService(u uow.UOW) (*AccountService, error) {
	accountRepo, accErr := uow.GetRepositoryAs[AccountRepository](u, uow.RepositoryName(repoargs.AccountRepoName))
	if accErr != nil {
		return nil, accErr
	}
	customerRepo, custErr := uow.GetRepositoryAs[CustomerRepository](u, uow.RepositoryName(repoargs.CustomerRepoName))
	if custErr != nil {
		return nil, custErr
	}
	return &AccountService{
		uow:          u,
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
	}, nil
}

// CreateAccount создает административный счет. Имя уникально без учета
// регистра, начальный баланс не может быть отрицательным.
func (a *AccountService) CreateAccount(
	ctx context.Context,
	args repoargs.CreateAccount,
) (*domain.FundAccount, error) {
	if strings.TrimSpace(args.Name) == "" {
		return nil, domain.NewValidationError("name", "account name is blank")
	}
	if !args.Currency.Valid() {
		return nil, domain.NewValidationError("currency", fmt.Sprintf("unsupported currency %s", args.Currency))
	}
	if args.Balance.IsNegative() {
		return nil, domain.NewValidationError("balance", "initial balance is negative")
	}

	account, err := a.accountRepo.Create(ctx, args)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.NewValidationError("name", fmt.Sprintf("account %s already exists", args.Name))
		}
		return nil, fmt.Errorf("creating account: %w", err)
	}
	return account, nil
}

func (a *AccountService) GetAccount(ctx context.Context, id int64) (*domain.FundAccount, error) {
	account, err := a.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return account, nil
}

func (a *AccountService) ListAccounts(ctx context.Context) ([]domain.FundAccount, error) {
	accounts, err := a.accountRepo.List(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return accounts, nil
}

func (a *AccountService) CreateCustomer(
	ctx context.Context,
	args repoargs.CreateCustomer,
) (*domain.Customer, error) {
	if strings.TrimSpace(args.Username) == "" {
		return nil, domain.NewValidationError("username", "username is blank")
	}
	if args.Balance.IsNegative() {
		return nil, domain.NewValidationError("balance", "initial balance is negative")
	}

	customer, err := a.customerRepo.Create(ctx, args)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.NewValidationError("username", fmt.Sprintf("customer %s already exists", args.Username))
		}
		return nil, fmt.Errorf("creating customer: %w", err)
	}
	return customer, nil
}

func (a *AccountService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := a.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return customer, nil
}
