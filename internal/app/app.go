package app

import (
	"context"
	"fmt"

	"github.com/giftbar/ledger/internal/repository/repoargs"

	"github.com/giftbar/ledger/internal/transport/gifts"
	"github.com/giftbar/ledger/internal/transport/rates"

	"github.com/giftbar/ledger/pkg/uow"

	"github.com/giftbar/ledger/internal/config"
	"github.com/giftbar/ledger/internal/repository/pgrepo"
	"github.com/giftbar/ledger/internal/service"
	"github.com/giftbar/ledger/internal/transport/api"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	quoteClient := rates.NewHTTPClient(a.Config.RateQuoteURL)

	services, sErr := service.Factory(unitOfWork, quoteClient, a.Config.GiftTTL)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:            a.Logger,
		AccountService:    services.AccountService,
		OperationService:  services.OperationService,
		StoreService:      services.BalanceService,
		PayoutService:     services.PayoutService,
		MovementService:   services.MovementService,
		FundingService:    services.FundingService,
		RateService:       services.RateService,
		PurchaseService:   services.PurchaseService,
		JWTSecretKey:      []byte(a.Config.JWTAdminSecret),
		AdminPasswordHash: a.Config.AdminPasswordHash,
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	refresher := rates.NewRefresher(services.RateService, a.Config.RateRefreshInterval, a.Logger)
	go refresher.Run(notifyCtx)

	expirer := gifts.NewExpirer(services.PurchaseService, a.Config.GiftExpireInterval, a.Logger)
	go expirer.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.AccountRepoName:      func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewAccountRepository(dbtx) },
		repoargs.CustomerRepoName:     func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewCustomerRepository(dbtx) },
		repoargs.StoreRepoName:        func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewStoreRepository(dbtx) },
		repoargs.PurchaseRepoName:     func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewPurchaseRepository(dbtx) },
		repoargs.MovementRepoName:     func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewMovementRepository(dbtx) },
		repoargs.OperationRepoName:    func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewOperationRepository(dbtx) },
		repoargs.StorePaymentRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewStorePaymentRepository(dbtx) },
		repoargs.FundingRepoName:      func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewFundingRepository(dbtx) },
		repoargs.RateRepoName:         func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewRateRepository(dbtx) },
	}

	for name, factoryFn := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factoryFn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
